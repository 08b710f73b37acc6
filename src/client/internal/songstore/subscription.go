package songstore

import "sync"

// Subscription hands snapshots to one consumer. Snapshots queue up in an
// unbounded mailbox so a slow consumer never blocks the store and never
// misses an update
type Subscription struct {
	store *Store
	out   chan Snapshot

	mutex    sync.Mutex
	pending  []Snapshot
	finished bool

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newSubscription(store *Store) *Subscription {
	sub := &Subscription{
		store: store,
		out:   make(chan Snapshot),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}

	go sub.pump()
	return sub
}

// C is closed after Close, or after the store is closed and every
// pending snapshot was received
func (s *Subscription) C() <-chan Snapshot {
	return s.out
}

// Close stops delivery right away, pending snapshots are dropped
func (s *Subscription) Close() {
	s.store.unsubscribe(s)
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *Subscription) deliver(snapshot Snapshot) {
	s.mutex.Lock()
	s.pending = append(s.pending, snapshot)
	s.mutex.Unlock()

	s.signal()
}

func (s *Subscription) finish() {
	s.mutex.Lock()
	s.finished = true
	s.mutex.Unlock()

	s.signal()
}

func (s *Subscription) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Subscription) pump() {
	defer close(s.out)

	for {
		s.mutex.Lock()
		if len(s.pending) == 0 {
			finished := s.finished
			s.mutex.Unlock()

			if finished {
				return
			}

			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}

		next := s.pending[0]
		s.pending[0] = Snapshot{}
		s.pending = s.pending[1:]
		s.mutex.Unlock()

		select {
		case s.out <- next:
		case <-s.done:
			return
		}
	}
}
