package telegram

import "sync"

// chatQueue runs jobs one at a time per chat, in arrival order. Different
// chats drain independently. A chat holds a map entry only while its
// drainer goroutine is alive.
type chatQueue struct {
	mu    sync.Mutex
	chats map[int64][]func()
}

func newChatQueue() *chatQueue {
	return &chatQueue{chats: make(map[int64][]func())}
}

// enqueue schedules job after everything already queued for chatID.
func (q *chatQueue) enqueue(chatID int64, job func()) {
	q.mu.Lock()
	jobs, running := q.chats[chatID]
	q.chats[chatID] = append(jobs, job)
	q.mu.Unlock()

	if !running {
		go q.drain(chatID)
	}
}

func (q *chatQueue) drain(chatID int64) {
	for {
		q.mu.Lock()
		jobs := q.chats[chatID]
		if len(jobs) == 0 {
			delete(q.chats, chatID)
			q.mu.Unlock()
			return
		}
		job := jobs[0]
		q.chats[chatID] = jobs[1:]
		q.mu.Unlock()

		job()
	}
}
