package llm

import (
	"context"
	"log"
	"time"
)

// LoggingStreamer is a decorator that logs every completion with its
// latency and outcome.
type LoggingStreamer struct {
	inner    Streamer
	provider string
	logger   *log.Logger
}

// WithLogging wraps a Streamer with request logging.
func WithLogging(s Streamer, provider string, logger *log.Logger) Streamer {
	if logger == nil {
		return s
	}
	return &LoggingStreamer{inner: s, provider: provider, logger: logger}
}

func (l *LoggingStreamer) Stream(ctx context.Context, req Request, emit func(string) error) error {
	start := time.Now()
	fragments, chars := 0, 0

	err := l.inner.Stream(ctx, req, func(fragment string) error {
		fragments++
		chars += len(fragment)
		return emit(fragment)
	})

	latency := time.Since(start).Milliseconds()
	if err != nil {
		l.logger.Printf("completion failed provider=%s model=%s turns=%d fragments=%d latency_ms=%d err=%v",
			l.provider, l.inner.ModelID(), len(req.Messages), fragments, latency, err)
		return err
	}
	l.logger.Printf("completion provider=%s model=%s turns=%d fragments=%d bytes=%d latency_ms=%d",
		l.provider, l.inner.ModelID(), len(req.Messages), fragments, chars, latency)
	return nil
}

func (l *LoggingStreamer) ModelID() string {
	return l.inner.ModelID()
}
