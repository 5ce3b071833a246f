package deadlinecloud

import (
	"net/http"
	"sync"
	"time"

	"github.com/gojek/heimdall/v7"
	"go.uber.org/zap"
)

// requestLogger is a heimdall.Plugin that logs each SDK round trip at debug level.
type requestLogger struct {
	log *zap.Logger

	mu      sync.Mutex
	started map[*http.Request]time.Time
}

var _ heimdall.Plugin = (*requestLogger)(nil)

func newRequestLogger(log *zap.Logger) *requestLogger {
	return &requestLogger{log: log, started: make(map[*http.Request]time.Time)}
}

func (p *requestLogger) OnRequestStart(req *http.Request) {
	p.mu.Lock()
	p.started[req] = time.Now()
	p.mu.Unlock()
}

func (p *requestLogger) elapsed(req *http.Request) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	start, ok := p.started[req]
	if !ok {
		return 0
	}
	delete(p.started, req)
	return time.Since(start)
}

func (p *requestLogger) OnRequestEnd(req *http.Request, resp *http.Response) {
	p.log.Debug("request",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", p.elapsed(req)),
	)
}

func (p *requestLogger) OnError(req *http.Request, err error) {
	p.log.Debug("request failed",
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.Duration("duration", p.elapsed(req)),
		zap.Error(err),
	)
}
