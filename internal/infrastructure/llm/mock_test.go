package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, s Streamer, req Request) ([]string, error) {
	t.Helper()
	var got []string
	err := s.Stream(context.Background(), req, func(f string) error {
		got = append(got, f)
		return nil
	})
	return got, err
}

func TestMockStreamer_FIFO(t *testing.T) {
	m := NewMockStreamer("first reply", "second")

	got, err := collect(t, m, Request{System: "sys"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first ", "reply"}, got)

	got, err = collect(t, m, Request{})
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, got)

	assert.Equal(t, 2, m.CallCount())
	assert.Equal(t, "sys", m.Calls[0].System)
}

func TestMockStreamer_FallbackWhenEmpty(t *testing.T) {
	m := NewMockStreamer()
	got, err := collect(t, m, Request{})
	require.NoError(t, err)
	assert.Equal(t, MockFallbackReply, strings.Join(got, ""))
}

func TestMockStreamer_QueuedError(t *testing.T) {
	boom := &Error{Kind: KindUnavailable, Provider: "mock"}
	m := NewMockStreamer()
	m.AddError(boom, "partial")

	got, err := collect(t, m, Request{})
	assert.Equal(t, []string{"partial"}, got)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, KindUnavailable, KindOf(err))
}

func TestMockStreamer_CanceledContext(t *testing.T) {
	m := NewMockStreamer("a b c")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := m.Stream(ctx, Request{}, func(string) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockStreamer_Concurrent(t *testing.T) {
	m := NewMockStreamer()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Stream(context.Background(), Request{}, func(string) error { return nil })
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, m.CallCount())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindRateLimited, KindOf(classifyStatus("groq", 429, errors.New("x"))))
	assert.Equal(t, KindUnavailable, KindOf(classifyStatus("groq", 0, errors.New("dial"))))
	assert.ErrorIs(t, classifyStatus("groq", 0, context.Canceled), context.Canceled)
	assert.Equal(t, "rate_limited", KindRateLimited.String())
}
