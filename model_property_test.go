package genvec_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	genvec "github.com/g770728y/generation-indices"
	"github.com/g770728y/generation-indices/internal/model"
)

type opKind int

const (
	opInsert opKind = iota
	opGet
	opRemove
	opGetAndRemove
	opReset
)

func (k opKind) String() string {
	switch k {
	case opInsert:
		return "Insert"
	case opGet:
		return "Get"
	case opRemove:
		return "Remove"
	case opGetAndRemove:
		return "GetAndRemove"
	case opReset:
		return "Reset"
	}

	return fmt.Sprintf("opKind(%d)", int(k))
}

// nextOp picks an operation; resets are rare so the store gets to grow.
func nextOp(rng *rand.Rand) opKind {
	switch n := rng.Intn(100); {
	case n < 40:
		return opInsert
	case n < 65:
		return opGet
	case n < 85:
		return opRemove
	case n < 99:
		return opGetAndRemove
	default:
		return opReset
	}
}

// pickHandle returns a handle the store has issued before, live or not.
func pickHandle(rng *rand.Rand, issued []genvec.Handle) genvec.Handle {
	return issued[rng.Intn(len(issued))]
}

// This file contains the core *state-model property test*.
//
// It is deterministic (seeded): seed N is the subtest name.
func TestVecMatchesModel(t *testing.T) {
	seedCount := 50
	opsPerSeed := 2000

	for seedIndex := 0; seedIndex < seedCount; seedIndex++ {
		seed := int64(seedIndex + 1)

		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewSource(seed))
			store := genvec.New[int]()
			ref := model.New[int]()

			var issued []genvec.Handle

			for step := 0; step < opsPerSeed; step++ {
				op := nextOp(rng)
				if len(issued) == 0 {
					op = opInsert
				}

				switch op {
				case opInsert:
					x := rng.Int()
					h := store.Insert(x)
					require.Equal(t, ref.Insert(x), h, "step %d: %s handle mismatch", step, op)
					issued = append(issued, h)

				case opGet:
					h := pickHandle(rng, issued)
					gotX, gotOK := store.Get(h)
					wantX, wantOK := ref.Get(h)
					require.Equal(t, wantOK, gotOK, "step %d: %s(%s) liveness mismatch", step, op, h)
					require.Equal(t, wantX, gotX, "step %d: %s(%s) value mismatch", step, op, h)

				case opRemove:
					h := pickHandle(rng, issued)
					store.Remove(h)
					ref.Remove(h)
					require.False(t, store.Contains(h), "step %d: %s left %s live", step, op, h)

				case opGetAndRemove:
					h := pickHandle(rng, issued)
					gotX, gotOK := store.GetAndRemove(h)
					wantX, wantOK := ref.Remove(h)
					require.Equal(t, wantOK, gotOK, "step %d: %s(%s) liveness mismatch", step, op, h)
					require.Equal(t, wantX, gotX, "step %d: %s(%s) value mismatch", step, op, h)

				case opReset:
					store.Reset()
					ref.Reset()
				}

				require.Equal(t, ref.Len(), store.Len(), "step %d: %s Len mismatch", step, op)
				require.Equal(t, ref.Cap(), store.Cap(), "step %d: %s Cap mismatch", step, op)
			}

			compareObservableState(t, store, ref)
		})
	}
}

// compareObservableState resolves every live handle of the model through
// the real store and checks that nothing else is live.
func compareObservableState(t *testing.T, store *genvec.Vec[int], ref *model.Store[int]) {
	t.Helper()

	got := make(map[genvec.Handle]int, store.Len())
	for _, h := range ref.Handles() {
		x, ok := store.Get(h)
		require.True(t, ok, "model handle %s is not live in the store", h)
		got[h] = x
	}

	diff := cmp.Diff(ref.Live, got)
	assert.Empty(t, diff, "live values mismatch")
	assert.Equal(t, len(got), store.Len(), "store holds values the model does not know")
}

func TestVecRemoveDoesNotAffectOtherHandles(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	v := genvec.New[int]()

	live := make(map[genvec.Handle]int)
	for i := 0; i < 500; i++ {
		live[v.Insert(i)] = i
	}

	for h := range live {
		if rng.Intn(2) == 0 {
			continue
		}
		v.Remove(h)
		delete(live, h)

		got := make(map[genvec.Handle]int, len(live))
		for lh := range live {
			x, ok := v.Get(lh)
			require.True(t, ok, "handle %s stopped resolving after removing %s", lh, h)
			got[lh] = x
		}
		require.Empty(t, cmp.Diff(live, got), "values changed after removing %s", h)
	}
	assert.Equal(t, len(live), v.Len())
}
