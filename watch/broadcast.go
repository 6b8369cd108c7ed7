package watch

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bst"
)

// Broadcaster publishes tree events to subscribers.
// Broadcaster implements interface bst.Observer.
type Broadcaster[V any] struct {
	cast *caster.Caster // fan-out of events to subscriber channels
}

var _ bst.Observer[int] = (*Broadcaster[int])(nil)

// New creates a broadcaster. When ctx is done, the broadcaster is closed and all
// subscriber channels are closed as well. ctx may be nil.
func New[V any](ctx context.Context) *Broadcaster[V] {
	return &Broadcaster[V]{
		cast: caster.New(ctx),
	}
}

// Observe publishes e to all current subscribers. Observe blocks while a
// subscriber's buffer is full. After the broadcaster has been closed, events
// are dropped.
// (Part of interface bst.Observer)
func (b *Broadcaster[V]) Observe(e bst.Event[V]) {
	if !b.cast.Pub(e) {
		tracer().Debugf("watch: broadcaster closed, dropping %s event for %v", e.Op, e.Value)
	}
}

// Subscribe creates a subscription with an event buffer of the given capacity.
// The returned channel is closed when ctx is done or the broadcaster is closed.
// Subscribe returns false if the broadcaster has already been closed. If the
// broadcaster is closed concurrently, the returned channel may be closed already.
func (b *Broadcaster[V]) Subscribe(ctx context.Context, capacity uint) (<-chan bst.Event[V], bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-b.cast.Done():
		return nil, false
	default:
	}
	raw, ok := b.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	events := make(chan bst.Event[V], capacity)
	go func(in <-chan interface{}, out chan<- bst.Event[V]) {
		defer close(out)
		for m := range in {
			e, ok := m.(bst.Event[V])
			if !ok {
				tracer().Errorf("watch: unexpected message of type %T", m)
				continue
			}
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}(raw, events)
	return events, true
}

// Close closes the broadcaster and all of its subscriptions. Close returns after
// the broadcaster has shut down; subsequent calls to Subscribe will fail.
func (b *Broadcaster[V]) Close() {
	b.cast.Close()
	<-b.cast.Done()
}
