package biotope

import "slices"

// Observer receives a read-only snapshot after every seed, round and
// placement. It must not call back into the biotope.
type Observer func(v *View)

// Subscription identifies a registered observer.
type Subscription uint64

// Subscribe registers fn and returns the handle to remove it with.
func (b *Biotope) Subscribe(fn Observer) Subscription {
	if fn == nil {
		return 0
	}
	if b.observers == nil {
		b.observers = map[Subscription]Observer{}
	}
	b.nextObserve++
	b.observers[b.nextObserve] = fn
	return b.nextObserve
}

// Unsubscribe removes an observer. Unknown handles are ignored.
func (b *Biotope) Unsubscribe(id Subscription) {
	delete(b.observers, id)
}

// Observers returns the number of registered observers.
func (b *Biotope) Observers() int { return len(b.observers) }

// notify fans a fresh view out to observers in subscription order. Nested
// notifications caused by a misbehaving observer are dropped.
func (b *Biotope) notify() {
	if b.notifying || len(b.observers) == 0 {
		return
	}
	b.notifying = true
	defer func() { b.notifying = false }()

	ids := make([]Subscription, 0, len(b.observers))
	for id := range b.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	v := b.View()
	for _, id := range ids {
		fn, ok := b.observers[id]
		if !ok {
			continue
		}
		fn(v)
	}
}
