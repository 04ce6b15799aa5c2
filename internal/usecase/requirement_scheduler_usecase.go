package usecase

import (
	"context"
	"log"
	"procuredesk/internal/usecase/interfaces"
	"sort"
	"sync"
	"time"
)

const (
	DefaultPollInterval = 10 * time.Second
	// The discovery window is deliberately wider than the poll interval so a
	// slow cycle cannot drop a requirement created while it ran. Re-discovery
	// across overlapping windows is harmless: the processed set dedupes.
	DefaultDiscoveryWindow = 30 * time.Second
)

// ProcessedSet records which requirement ids have already been dispatched
// during this process's lifetime. Ids are never removed; a restart starts
// empty. Guarded by a mutex because the HTTP status endpoint reads it while
// the scheduler writes.
type ProcessedSet struct {
	mu  sync.RWMutex
	ids map[int64]time.Time
}

func NewProcessedSet() *ProcessedSet {
	return &ProcessedSet{ids: make(map[int64]time.Time)}
}

// Mark records reqID as processed and returns false if it already was.
func (s *ProcessedSet) Mark(reqID int64, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[reqID]; ok {
		return false
	}
	s.ids[reqID] = at
	return true
}

func (s *ProcessedSet) Contains(reqID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[reqID]
	return ok
}

func (s *ProcessedSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// IDs returns the processed ids sorted ascending.
func (s *ProcessedSet) IDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SchedulerStatus is the operator-facing snapshot served by the HTTP
// status endpoint.
type SchedulerStatus struct {
	ProcessedCount int       `json:"processed_count"`
	ProcessedIDs   []int64   `json:"processed_ids"`
	LastPollAt     time.Time `json:"last_poll_at"`
	PollInterval   string    `json:"poll_interval"`
}

// ISchedulerInspector exposes read-only scheduler state to the HTTP layer.
type ISchedulerInspector interface {
	Status() SchedulerStatus
}

// SchedulerConfig tunes the discovery loop. Zero values fall back to the
// defaults above.
type SchedulerConfig struct {
	PollInterval    time.Duration
	DiscoveryWindow time.Duration
}

func (c SchedulerConfig) withDefaults() SchedulerConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.DiscoveryWindow <= 0 {
		c.DiscoveryWindow = DefaultDiscoveryWindow
	}
	return c
}

// RequirementScheduler continuously discovers newly created requirements,
// notifies vendors, waits out each requirement's quotation freeze deadline
// and then runs the evaluation pipeline, at most once per id per process
// lifetime.
//
// Discovery and dispatch are strictly sequential: one requirement's
// notify → wait → evaluate lifecycle completes before the next candidate
// is looked at.
type RequirementScheduler struct {
	repo      interfaces.IRequirementRepository
	notifier  interfaces.IVendorNotifier
	pipeline  IEvaluationUseCase
	clock     Clock
	processed *ProcessedSet
	cfg       SchedulerConfig

	mu         sync.RWMutex
	lastPollAt time.Time
}

var _ ISchedulerInspector = (*RequirementScheduler)(nil)

func NewRequirementScheduler(
	repo interfaces.IRequirementRepository,
	notifier interfaces.IVendorNotifier,
	pipeline IEvaluationUseCase,
	clock Clock,
	cfg SchedulerConfig,
) *RequirementScheduler {
	if clock == nil {
		clock = NewRealClock()
	}
	return &RequirementScheduler{
		repo:      repo,
		notifier:  notifier,
		pipeline:  pipeline,
		clock:     clock,
		processed: NewProcessedSet(),
		cfg:       cfg.withDefaults(),
	}
}

// Run polls until ctx is cancelled. Poll and pipeline failures are logged
// and the loop continues with the next cycle; only cancellation stops it.
func (s *RequirementScheduler) Run(ctx context.Context) error {
	log.Printf("[scheduler] started poll_interval=%s discovery_window=%s",
		s.cfg.PollInterval, s.cfg.DiscoveryWindow)
	for {
		if err := ctx.Err(); err != nil {
			log.Printf("[scheduler] stopping: %v", err)
			return err
		}

		dispatched, err := s.PollOnce(ctx)
		if err != nil {
			log.Printf("[scheduler] poll cycle failed err=%v", err)
		} else if dispatched > 0 {
			log.Printf("[scheduler] poll cycle done dispatched=%d processed_total=%d",
				dispatched, s.processed.Len())
		}

		if !s.sleep(ctx, s.cfg.PollInterval) {
			log.Printf("[scheduler] stopping: %v", ctx.Err())
			return ctx.Err()
		}
	}
}

// PollOnce runs a single discovery cycle: query the recency window, then
// notify, wait and dispatch each candidate not yet processed. Returns the
// number of requirements dispatched this cycle.
func (s *RequirementScheduler) PollOnce(ctx context.Context) (int, error) {
	log.Printf("[scheduler] checking for new requirements")
	s.setLastPollAt(s.clock.Now())

	candidates, err := s.repo.ListCreatedSince(ctx, s.cfg.DiscoveryWindow)
	if err != nil {
		return 0, err
	}

	// Deterministic processing order for a given snapshot.
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

	dispatched := 0
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return dispatched, err
		}
		if s.processed.Contains(candidate.ID) {
			continue
		}

		log.Printf("[scheduler] new requirement detected req_id=%d freeze_at=%s",
			candidate.ID, candidate.QuotationFreezeAt.Format(time.RFC3339))

		// Best-effort: vendors missing a ping is not a reason to skip the
		// evaluation of their quotations.
		if err := s.notifier.NotifyRequirementOpen(ctx, candidate.ID); err != nil {
			log.Printf("[scheduler] vendor notification failed req_id=%d err=%v", candidate.ID, err)
		}

		if !s.waitForFreeze(ctx, candidate.ID, candidate.QuotationFreezeAt) {
			return dispatched, ctx.Err()
		}

		log.Printf("[scheduler] triggering evaluation pipeline req_id=%d", candidate.ID)
		report, err := s.pipeline.EvaluateRequirement(ctx, candidate.ID)
		if err != nil {
			log.Printf("[scheduler] pipeline failed req_id=%d err=%v", candidate.ID, err)
		} else {
			log.Printf("[scheduler] pipeline complete req_id=%d vendors=%d accepted=%d rejected=%d",
				candidate.ID, len(report.Results), report.Accepted(), report.Rejected())
		}

		// Marked even on failure: the overlapping discovery window would
		// otherwise re-notify and re-wait on the same requirement forever.
		// A failed run is terminal for this id for the life of the process.
		s.processed.Mark(candidate.ID, s.clock.Now())
		dispatched++
	}
	return dispatched, nil
}

// Status implements ISchedulerInspector.
func (s *RequirementScheduler) Status() SchedulerStatus {
	s.mu.RLock()
	lastPoll := s.lastPollAt
	s.mu.RUnlock()
	return SchedulerStatus{
		ProcessedCount: s.processed.Len(),
		ProcessedIDs:   s.processed.IDs(),
		LastPollAt:     lastPoll,
		PollInterval:   s.cfg.PollInterval.String(),
	}
}

// Processed exposes the set for wiring and tests.
func (s *RequirementScheduler) Processed() *ProcessedSet {
	return s.processed
}

// waitForFreeze blocks until freezeAt, reporting remaining time at
// one-second granularity. A deadline already in the past means no wait.
// Returns false if ctx was cancelled mid-wait.
func (s *RequirementScheduler) waitForFreeze(ctx context.Context, reqID int64, freezeAt time.Time) bool {
	remaining := freezeAt.Sub(s.clock.Now())
	if remaining <= 0 {
		log.Printf("[scheduler] freeze deadline already passed req_id=%d", reqID)
		return true
	}

	log.Printf("[scheduler] waiting %s until freeze time req_id=%d", remaining.Round(time.Second), reqID)
	for remaining > 0 {
		if ctx.Err() != nil {
			return false
		}
		step := time.Second
		if remaining < step {
			step = remaining
		}
		s.clock.Sleep(step)
		remaining -= step
		if remaining > 0 && remaining%time.Second == 0 {
			log.Printf("[scheduler] freeze countdown req_id=%d remaining=%s", reqID, remaining)
		}
	}
	log.Printf("[scheduler] freeze time over req_id=%d", reqID)
	return true
}

// sleep blocks for d via the injected clock, bailing out early only on
// context cancellation. Returns false when cancelled.
func (s *RequirementScheduler) sleep(ctx context.Context, d time.Duration) bool {
	remaining := d
	for remaining > 0 {
		if ctx.Err() != nil {
			return false
		}
		step := time.Second
		if remaining < step {
			step = remaining
		}
		s.clock.Sleep(step)
		remaining -= step
	}
	return ctx.Err() == nil
}

func (s *RequirementScheduler) setLastPollAt(t time.Time) {
	s.mu.Lock()
	s.lastPollAt = t
	s.mu.Unlock()
}
