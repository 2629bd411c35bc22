package store

import (
	"sync"
	"testing"
	"time"
)

type testState struct {
	A int
	B string
}

func TestStateReturnsCopy(t *testing.T) {
	s := New(testState{A: 1, B: "one"})

	got := s.State()
	got.A = 99

	if s.State().A != 1 {
		t.Errorf("mutating the returned snapshot changed the store: A = %d", s.State().A)
	}
}

func TestPatchKeepsUntouchedFields(t *testing.T) {
	s := New(testState{A: 1, B: "one"})

	s.Patch(func(st *testState) {
		st.A = 2
	})

	got := s.State()
	if got.A != 2 {
		t.Errorf("expected A = 2, got %d", got.A)
	}
	if got.B != "one" {
		t.Errorf("expected B to carry over, got %q", got.B)
	}
}

func TestReplaceDropsPriorFields(t *testing.T) {
	s := New(testState{A: 1, B: "one"})

	s.Replace(testState{A: 5})

	got := s.State()
	if got.A != 5 {
		t.Errorf("expected A = 5, got %d", got.A)
	}
	if got.B != "" {
		t.Errorf("expected B cleared by Replace, got %q", got.B)
	}
}

func TestSubscribeReceivesEveryUpdate(t *testing.T) {
	s := New(testState{})

	var seen []testState
	unsub := s.Subscribe(func(st testState) {
		seen = append(seen, st)
	})
	defer unsub()

	s.Patch(func(st *testState) { st.A = 1 })
	s.Patch(func(st *testState) { st.A = 2 })
	s.Replace(testState{A: 3, B: "replaced"})

	if len(seen) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(seen))
	}
	if seen[0].A != 1 || seen[1].A != 2 || seen[2].A != 3 {
		t.Errorf("notifications out of order: %+v", seen)
	}
	if seen[2].B != "replaced" {
		t.Errorf("subscriber saw stale state: %+v", seen[2])
	}
}

func TestSubscriberSeesFullStateSynchronously(t *testing.T) {
	s := New(testState{B: "keep"})

	notified := false
	unsub := s.Subscribe(func(st testState) {
		notified = true
		if st.A != 7 || st.B != "keep" {
			t.Errorf("subscriber saw partial state: %+v", st)
		}
	})
	defer unsub()

	s.Patch(func(st *testState) { st.A = 7 })

	// Patch returns only after draining subscribers.
	if !notified {
		t.Error("subscriber was not invoked before Patch returned")
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := New(testState{})

	count := 0
	unsub := s.Subscribe(func(testState) { count++ })

	s.Patch(func(st *testState) { st.A = 1 })
	unsub()
	s.Patch(func(st *testState) { st.A = 2 })

	if count != 1 {
		t.Errorf("expected 1 notification after unsubscribe, got %d", count)
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	s := New(testState{})

	unsub := s.Subscribe(func(testState) {})
	other := 0
	defer s.Subscribe(func(testState) { other++ })()

	unsub()
	unsub() // must not remove the other subscription

	s.Patch(func(st *testState) { st.A = 1 })
	if other != 1 {
		t.Errorf("double-unsubscribe removed an unrelated listener: got %d notifications", other)
	}
}

func TestMultipleSubscribersEachNotified(t *testing.T) {
	s := New(testState{})

	var a, b int
	defer s.Subscribe(func(testState) { a++ })()
	defer s.Subscribe(func(testState) { b++ })()

	s.Patch(func(st *testState) { st.A = 1 })
	s.Replace(testState{A: 2})

	if a != 2 || b != 2 {
		t.Errorf("expected both subscribers to see 2 updates, got %d and %d", a, b)
	}
}

func TestIndependentStores(t *testing.T) {
	s1 := New(testState{A: 1})
	s2 := New(testState{A: 2})

	notified := 0
	defer s2.Subscribe(func(testState) { notified++ })()

	s1.Patch(func(st *testState) { st.A = 10 })

	if notified != 0 {
		t.Error("update to one store notified a subscriber of another")
	}
	if s2.State().A != 2 {
		t.Errorf("unrelated store changed: A = %d", s2.State().A)
	}
}

func TestConcurrentPatchesCommitFully(t *testing.T) {
	s := New(testState{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Patch(func(st *testState) { st.A++ })
		}()
	}
	wg.Wait()

	if got := s.State().A; got != 50 {
		t.Errorf("expected 50 committed increments, got %d", got)
	}
}

func TestNotificationsFollowCommitOrderAcrossGoroutines(t *testing.T) {
	s := New(testState{})

	var mu sync.Mutex
	var observed []int
	firstEntered := make(chan struct{})
	release := make(chan struct{})

	s.Subscribe(func(st testState) {
		mu.Lock()
		observed = append(observed, st.A)
		count := len(observed)
		mu.Unlock()

		if count == 1 {
			close(firstEntered)
			<-release
		}
	})

	go s.Patch(func(st *testState) { st.A = 1 })
	<-firstEntered

	// A second producer commits while the first notification is still in
	// flight; it must wait until the first update has fully drained.
	secondDone := make(chan struct{})
	go func() {
		s.Patch(func(st *testState) { st.A = 2 })
		close(secondDone)
	}()

	select {
	case <-secondDone:
		t.Fatal("second update drained while the first notification was still pending")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)

	select {
	case <-secondDone:
	case <-time.After(time.Second):
		t.Fatal("second update never completed")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(observed) != 2 || observed[0] != 1 || observed[1] != 2 {
		t.Fatalf("expected snapshots in commit order [1 2], got %v", observed)
	}
}
