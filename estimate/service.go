package estimate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mdobak/go-xerrors"

	"github.com/Sogni-AI/sogni-photobooth-sub003/service"
)

// Status is the tri-state the UI renders for the estimator.
// Estimator health never blocks interaction: failures surface as
// StatusUnavailable, not as errors to the caller
type Status uint8

const (
	StatusIdle        Status = iota // no request issued yet
	StatusLoading                   // request in flight
	StatusReady                     // Estimate holds the latest quote
	StatusUnavailable               // estimator failed or declined
)

// Snapshot is the estimator state at one point in time.
// JobCount records which derived job count the snapshot answers for,
// so the UI can tell a fresh quote from a stale one
type Snapshot struct {
	Status   Status
	Estimate Estimate
	JobCount int
}

// requestTimeout bounds a single estimator round trip
const requestTimeout = 10 * time.Second

// Service manages asynchronous cost estimation for the picker.
//
// The planner recomputes its job count eagerly and calls Request on
// every state change; the service treats the result as an
// independently-arriving value. Ordering guarantee is last request
// wins: a response for a superseded request is discarded, since
// flashing a stale cost is worse than waiting for the current one.
//
// Requests are suppressed entirely while the service is disabled
// (popup hidden)
type Service struct {
	client Client
	width  int
	height int
	log    *slog.Logger

	enabled atomic.Bool
	current atomic.Pointer[Snapshot]

	// generation stamps each issued request; applyMu serializes
	// response application so only the newest generation lands
	generation atomic.Int64
	applyMu    sync.Mutex
	applied    int64

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

var _ service.Service = (*Service)(nil)

// NewService creates an estimator service; call Init before use
func NewService() *Service {
	return &Service{
		stopCh: make(chan struct{}),
		log:    slog.Default(),
	}
}

// Name implements Service
func (s *Service) Name() string {
	return "estimate"
}

// Dependencies implements Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: Client - estimator transport (required)
// args[1]: int - output width in pixels
// args[2]: int - output height in pixels
func (s *Service) Init(args ...any) error {
	if len(args) < 1 {
		return fmt.Errorf("estimate service requires a client")
	}
	client, ok := args[0].(Client)
	if !ok || client == nil {
		return fmt.Errorf("estimate service requires a client, got %T", args[0])
	}
	s.client = client

	s.width, s.height = 1024, 1024
	if len(args) > 1 {
		if w, ok := args[1].(int); ok && w > 0 {
			s.width = w
		}
	}
	if len(args) > 2 {
		if h, ok := args[2].(int); ok && h > 0 {
			s.height = h
		}
	}
	return nil
}

// Start implements Service
func (s *Service) Start() error {
	return nil
}

// Stop implements Service
func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.wg.Wait()
	return nil
}

// SetEnabled gates request dispatch; disable while the popup is hidden
func (s *Service) SetEnabled(on bool) {
	s.enabled.Store(on)
}

// Current returns the latest snapshot for rendering
func (s *Service) Current() Snapshot {
	if snap := s.current.Load(); snap != nil {
		return *snap
	}
	return Snapshot{Status: StatusIdle}
}

// Request issues an asynchronous estimate for the given job count.
// Fire-and-forget: the result arrives via Current. Requests issued
// while disabled, and responses superseded by a newer request, are
// dropped silently
func (s *Service) Request(jobCount int) {
	if !s.enabled.Load() {
		return
	}

	gen := s.generation.Add(1)
	s.apply(gen, Snapshot{Status: StatusLoading, JobCount: jobCount})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		select {
		case <-s.stopCh:
			return
		default:
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		est, err := s.client.EstimateCost(ctx, Request{
			Width:    s.width,
			Height:   s.height,
			JobCount: jobCount,
		})
		if err != nil {
			s.log.Error("cost estimate failed", slog.Any("error", xerrors.New(err)))
			s.apply(gen, Snapshot{Status: StatusUnavailable, JobCount: jobCount})
			return
		}
		s.apply(gen, Snapshot{Status: StatusReady, Estimate: est, JobCount: jobCount})
	}()
}

// apply stores a snapshot unless a newer generation already landed
func (s *Service) apply(gen int64, snap Snapshot) {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()
	if gen < s.applied {
		return
	}
	s.applied = gen
	s.current.Store(&snap)
}
