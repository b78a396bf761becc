package telegram

import (
	"sync"
	"testing"
	"time"
)

func TestChatQueue_KeepsOrderPerChat(t *testing.T) {
	q := newChatQueue()

	var mu sync.Mutex
	var order []int
	record := func(n int) {
		mu.Lock()
		order = append(order, n)
		mu.Unlock()
	}

	release := make(chan struct{})
	otherChatDone := make(chan struct{})
	done := make(chan struct{})

	q.enqueue(1, func() { <-release; record(1) })
	q.enqueue(1, func() { record(2) })
	q.enqueue(2, func() { close(otherChatDone) })
	q.enqueue(1, func() { record(3); close(done) })

	select {
	case <-otherChatDone:
	case <-time.After(time.Second):
		t.Fatal("a blocked chat must not hold back other chats")
	}

	mu.Lock()
	if len(order) != 0 {
		t.Fatalf("jobs ran ahead of the blocked one: %v", order)
	}
	mu.Unlock()

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queue did not drain")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

func TestChatQueue_RestartsAfterDrain(t *testing.T) {
	q := newChatQueue()

	for i := 0; i < 2; i++ {
		done := make(chan struct{})
		q.enqueue(7, func() { close(done) })
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("round %d: job never ran", i)
		}
		// Wait for the drainer to release the chat.
		deadline := time.Now().Add(time.Second)
		for {
			q.mu.Lock()
			_, running := q.chats[7]
			q.mu.Unlock()
			if !running {
				break
			}
			if time.Now().After(deadline) {
				t.Fatalf("round %d: drainer never exited", i)
			}
			time.Sleep(time.Millisecond)
		}
	}
}
