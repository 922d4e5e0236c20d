package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type timeoutClient struct {
	next    LLMClient
	timeout time.Duration
}

// WithTimeout bounds every call to d.
func WithTimeout(c LLMClient, d time.Duration) LLMClient {
	return &timeoutClient{next: c, timeout: d}
}

func (t *timeoutClient) Close() error { return Close(t.next) }

func (t *timeoutClient) Generate(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Generate(ctx, req)
}

type loggingClient struct {
	next   LLMClient
	logger *zap.Logger
}

func WithLogging(c LLMClient, logger *zap.Logger) LLMClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &loggingClient{next: c, logger: logger}
}

func (l *loggingClient) Close() error { return Close(l.next) }

func (l *loggingClient) Generate(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	resp, err := l.next.Generate(ctx, req)
	fields := []zap.Field{
		zap.Int("messages", len(req.Messages)),
		zap.Bool("json", req.JSON),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		l.logger.Warn("llm call failed", append(fields, zap.Error(err))...)
		return "", err
	}
	l.logger.Debug("llm call", append(fields, zap.Int("response_chars", len(resp)))...)
	return resp, nil
}
