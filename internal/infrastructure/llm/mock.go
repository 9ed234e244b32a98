package llm

import (
	"context"
	"strings"
	"sync"
)

// MockFallbackReply is streamed when no canned reply is queued.
const MockFallbackReply = "Это тестовый ответ uni.kz. Подключите LLM-провайдера, чтобы получить настоящий совет."

// MockStreamer returns canned replies in FIFO order, split into words.
// Safe for concurrent use.
type MockStreamer struct {
	mu      sync.Mutex
	replies []mockReply
	Calls   []Request
}

type mockReply struct {
	fragments []string
	err       error
}

// NewMockStreamer creates a mock streamer with the given replies.
func NewMockStreamer(replies ...string) *MockStreamer {
	m := &MockStreamer{}
	for _, r := range replies {
		m.AddReply(r)
	}
	return m
}

// AddReply queues a reply streamed word by word.
func (m *MockStreamer) AddReply(reply string) {
	m.AddFragments(splitWords(reply)...)
}

// AddFragments queues a reply streamed as exactly these fragments.
func (m *MockStreamer) AddFragments(fragments ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, mockReply{fragments: fragments})
}

// AddError queues a failure. Fragments are emitted before err is returned.
func (m *MockStreamer) AddError(err error, fragments ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, mockReply{fragments: fragments, err: err})
}

func (m *MockStreamer) Stream(ctx context.Context, req Request, emit func(string) error) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	reply := mockReply{fragments: splitWords(MockFallbackReply)}
	if len(m.replies) > 0 {
		reply = m.replies[0]
		m.replies = m.replies[1:]
	}
	m.mu.Unlock()

	for _, f := range reply.fragments {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f == "" {
			continue
		}
		if err := emit(f); err != nil {
			return err
		}
	}
	return reply.err
}

func (m *MockStreamer) ModelID() string {
	return "mock"
}

// CallCount returns the number of Stream calls made.
func (m *MockStreamer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// splitWords keeps the separating space on each word so the fragments
// concatenate back to the input.
func splitWords(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, " ")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
