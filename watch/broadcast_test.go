package watch

import (
	"context"
	"testing"
	"time"

	"github.com/npillmayer/bst"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func receive[V any](t *testing.T, events <-chan bst.Event[V]) bst.Event[V] {
	t.Helper()
	select {
	case e, ok := <-events:
		if !ok {
			t.Fatalf("event channel closed prematurely")
		}
		return e
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
	return bst.Event[V]{}
}

func TestBroadcastInsertions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := New[int](ctx)
	defer b.Close()
	first, ok := b.Subscribe(ctx, 16)
	if !ok {
		t.Fatalf("cannot subscribe to fresh broadcaster")
	}
	second, ok := b.Subscribe(ctx, 16)
	if !ok {
		t.Fatalf("cannot subscribe to fresh broadcaster")
	}
	cfg := bst.OrderedConfig[int]()
	cfg.Observer = b
	tree, err := bst.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.Insert(3)
	tree.Insert(5)
	tree.Insert(4)
	tree.Find(4)
	want := []bst.Event[int]{
		{Op: bst.OpInsert, Value: 3, Depth: 0, Found: true},
		{Op: bst.OpInsert, Value: 5, Depth: 1, Found: true},
		{Op: bst.OpInsert, Value: 4, Depth: 2, Found: true},
		{Op: bst.OpFind, Value: 4, Depth: 2, Found: true},
	}
	for _, sub := range []<-chan bst.Event[int]{first, second} {
		for i, w := range want {
			if e := receive(t, sub); e != w {
				t.Errorf("event #%d: expected %+v, got %+v", i, w, e)
			}
		}
	}
}

func TestCloseEndsSubscriptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bst")
	defer teardown()
	//
	b := New[string](nil)
	events, ok := b.Subscribe(context.Background(), 4)
	if !ok {
		t.Fatalf("cannot subscribe to fresh broadcaster")
	}
	b.Close()
	select {
	case _, open := <-events:
		if open {
			t.Errorf("expected no events after close")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("subscription not closed after broadcaster closed")
	}
	if _, ok := b.Subscribe(context.Background(), 4); ok {
		t.Errorf("subscribing to closed broadcaster should fail")
	}
	b.Observe(bst.Event[string]{Op: bst.OpInsert, Value: "late"}) // must not block
}
