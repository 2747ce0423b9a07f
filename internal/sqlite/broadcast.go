package sqlite

import "sync"

// broadcaster fans a change signal out to subscribers. Signals are
// level-triggered: a pending signal absorbs later ones, because every
// wakeup re-reads the full result set anyway.
type broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]chan struct{})}
}

func (b *broadcaster) subscribe() (int, <-chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	ch := make(chan struct{}, 1)
	b.subs[id] = ch
	return id, ch
}

func (b *broadcaster) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, id)
}

func (b *broadcaster) broadcast() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
