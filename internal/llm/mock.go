package llm

import (
	"context"
	"errors"
	"sync"
)

var ErrMockExhausted = errors.New("mock llm: response queue exhausted")

// MockResponse is one scripted reply; a non-nil Err is returned instead of Text.
type MockResponse struct {
	Text string
	Err  error
}

// MockClient replays a queue of responses and records every request.
type MockClient struct {
	mu            sync.Mutex
	ResponseQueue []MockResponse
	Requests      []Request
}

func NewMockClient(responses ...string) *MockClient {
	m := &MockClient{}
	for _, r := range responses {
		m.ResponseQueue = append(m.ResponseQueue, MockResponse{Text: r})
	}
	return m
}

func (m *MockClient) Push(text string) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResponseQueue = append(m.ResponseQueue, MockResponse{Text: text})
	return m
}

func (m *MockClient) PushErr(err error) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResponseQueue = append(m.ResponseQueue, MockResponse{Err: err})
	return m
}

func (m *MockClient) Generate(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msgs := make([]Message, len(req.Messages))
	copy(msgs, req.Messages)
	req.Messages = msgs
	m.Requests = append(m.Requests, req)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(m.ResponseQueue) == 0 {
		return "", ErrMockExhausted
	}
	next := m.ResponseQueue[0]
	m.ResponseQueue = m.ResponseQueue[1:]
	if next.Err != nil {
		return "", next.Err
	}
	return next.Text, nil
}

func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
