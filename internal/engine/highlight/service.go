package highlight

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Request asks for highlighting of a line range at a specific buffer
// version. Lines holds the text of lines StartLine..StartLine+len-1 at
// the time the request was made.
type Request struct {
	Doc       uuid.UUID
	Version   uint64
	Language  string
	StartLine int
	Lines     []string
}

// Result carries the spans produced for a request. The engine compares
// Version against the current buffer version and discards the result if
// they no longer match.
type Result struct {
	Doc     uuid.UUID
	Version uint64
	Spans   []Span
}

// Service runs highlighters on a background goroutine. Submit is
// non-blocking: if the worker is busy, the pending request is replaced
// so only the most recent range is tokenized.
type Service struct {
	registry *Registry

	mu      sync.Mutex
	pending *Request
	wake    chan struct{}
	results chan Result

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates and starts a highlight service using the given
// registry. Close must be called to release the worker goroutine.
func NewService(registry *Registry) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		registry: registry,
		wake:     make(chan struct{}, 1),
		results:  make(chan Result, 8),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go s.run(ctx)
	return s
}

// Submit queues a request, replacing any request not yet picked up.
func (s *Service) Submit(req Request) {
	s.mu.Lock()
	s.pending = &req
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Results returns the channel on which completed results are delivered.
// Results for versions the buffer has moved past must be ignored by the
// consumer.
func (s *Service) Results() <-chan Result {
	return s.results
}

// Close stops the worker goroutine and waits for it to exit.
func (s *Service) Close() {
	s.cancel()
	<-s.done
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		}

		s.mu.Lock()
		req := s.pending
		s.pending = nil
		s.mu.Unlock()
		if req == nil {
			continue
		}

		h := s.registry.Lookup(req.Language)
		if h == nil {
			continue
		}
		res := Result{
			Doc:     req.Doc,
			Version: req.Version,
			Spans:   h.Highlight(req.StartLine, req.Lines),
		}

		select {
		case s.results <- res:
		case <-ctx.Done():
			return
		}
	}
}
