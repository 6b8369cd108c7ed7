package bst

import (
	"math/rand"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzInsertKeepsOrder -fuzztime=10s

// assertTreeMatchesModel checks a tree against a plain slice of the values
// inserted so far.
func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model []int) {
	t.Helper()
	sorted := slices.Clone(model)
	slices.Sort(sorted)
	got := tree.Values()
	if diff := gocmp.Diff(sorted, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("in-order values do not match model (-want +got):\n%s", diff)
	}
	if tree.Len() != len(model) {
		t.Fatalf("len mismatch: got=%d want=%d", tree.Len(), len(model))
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	for _, v := range model {
		node := tree.Find(v)
		if node == nil || node.Value() != v {
			t.Fatalf("inserted value %d not found", v)
		}
	}
}

func TestRandomizedProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	r := rand.New(rand.NewSource(4711))
	for round := 0; round < 50; round++ {
		tree := New[int]()
		var model []int
		n := r.Intn(200)
		for i := 0; i < n; i++ {
			v := 2 * r.Intn(100) // even values only
			tree.Insert(v)
			model = append(model, v)
		}
		assertTreeMatchesModel(t, tree, model)
		for odd := -1; odd < 200; odd += 2 {
			if tree.Find(odd) != nil {
				t.Fatalf("found %d, which has never been inserted", odd)
			}
		}
		if n > 0 && tree.Height() > n {
			t.Fatalf("height %d exceeds node count %d", tree.Height(), n)
		}
	}
}

func FuzzInsertKeepsOrder(f *testing.F) {
	f.Add([]byte{3, 5, 4, 7, 6, 1, 2})
	f.Add([]byte{1, 2, 3, 4, 5})
	f.Add([]byte{3, 3, 3})
	f.Fuzz(func(t *testing.T, input []byte) {
		tree := New[int]()
		model := make([]int, 0, len(input))
		for _, b := range input {
			tree.Insert(int(b))
			model = append(model, int(b))
		}
		assertTreeMatchesModel(t, tree, model)
	})
}
