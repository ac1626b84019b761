package passive

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/metrics"
	"github.com/osse101/LootForge_Go/internal/repository"
	"github.com/osse101/LootForge_Go/internal/worker"
)

// Enqueuer is the slice of worker.Pool the scheduler needs
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
	EnqueueAfter(delay time.Duration, job worker.Job) bool
}

// SchedulerConfig tunes recalculation retries
type SchedulerConfig struct {
	MaxAttempts int
	RetryDelay  time.Duration
}

// Scheduler turns inventory change events into background recalculations.
// Failed jobs back off exponentially; after MaxAttempts they are written to
// the dead-letter log and parked until the next sweep.
type Scheduler struct {
	svc        Service
	pool       Enqueuer
	deadLetter *event.DeadLetterWriter
	cfg        SchedulerConfig

	mu     sync.Mutex
	parked map[string]struct{}

	players  repository.PlayerDirectory
	sweeping sync.Mutex
	cursor   string
}

// NewScheduler creates a scheduler. deadLetter may be nil.
func NewScheduler(svc Service, pool Enqueuer, deadLetter *event.DeadLetterWriter, cfg SchedulerConfig) *Scheduler {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = DefaultRecalcMaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRecalcRetryDelay
	}
	return &Scheduler{
		svc:        svc,
		pool:       pool,
		deadLetter: deadLetter,
		cfg:        cfg,
		parked:     make(map[string]struct{}),
	}
}

// WithPlayers makes Sweep walk every registered player, which recovers
// recalculations lost before their event was published.
func (s *Scheduler) WithPlayers(players repository.PlayerDirectory) *Scheduler {
	s.players = players
	return s
}

// Register subscribes the scheduler to inventory changes
func (s *Scheduler) Register(bus event.Bus) {
	bus.Subscribe(event.InventoryChanged, s.HandleInventoryChanged)
}

// HandleInventoryChanged enqueues one recalculation per affected player. It
// fails only when the queue is full, which hands the event back to the
// resilient publisher for a later retry.
func (s *Scheduler) HandleInventoryChanged(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.InventoryChangedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("decode %s payload: %w", evt.Type, err)
	}

	var rejected []string
	for _, playerID := range payload.PlayerIDs {
		if playerID == "" {
			continue
		}
		if !s.pool.TryEnqueue(s.job(playerID, 1)) {
			rejected = append(rejected, playerID)
		}
	}
	if len(rejected) > 0 {
		logger.FromContext(ctx).Warn(LogMsgRecalcEnqueueFailed, "players", rejected)
		return fmt.Errorf("%s: %d players", ErrContextQueueFull, len(rejected))
	}
	return nil
}

// RecalculateJob recalculates one player's stats
type RecalculateJob struct {
	scheduler *Scheduler
	PlayerID  string
	Attempt   int
}

func (s *Scheduler) job(playerID string, attempt int) *RecalculateJob {
	return &RecalculateJob{scheduler: s, PlayerID: playerID, Attempt: attempt}
}

// Process implements worker.Job
func (j *RecalculateJob) Process(ctx context.Context) error {
	start := time.Now()
	_, err := j.scheduler.svc.Recalculate(ctx, j.PlayerID)
	metrics.RecalculationDuration.Observe(time.Since(start).Seconds())

	if err == nil {
		metrics.Recalculations.WithLabelValues(metrics.RecalcResultOK).Inc()
		return nil
	}

	metrics.Recalculations.WithLabelValues(metrics.RecalcResultFailed).Inc()
	j.scheduler.retry(j, err)
	return err
}

func (s *Scheduler) retry(j *RecalculateJob, cause error) {
	if j.Attempt >= s.cfg.MaxAttempts {
		s.park(j, cause)
		return
	}

	delay := event.CalculateRetryDelay(s.cfg.RetryDelay, j.Attempt)
	if !s.pool.EnqueueAfter(delay, s.job(j.PlayerID, j.Attempt+1)) {
		s.park(j, cause)
		return
	}
	logger.Warn(LogMsgRecalcFailed,
		LogFieldPlayerID, j.PlayerID,
		LogFieldAttempt, j.Attempt,
		LogFieldDelay, delay,
		LogFieldError, cause)
}

// park dead-letters a recalculation and remembers the player for Sweep
func (s *Scheduler) park(j *RecalculateJob, cause error) {
	metrics.Recalculations.WithLabelValues(metrics.RecalcResultDeadLettered).Inc()
	logger.Error(LogMsgRecalcDeadLettered,
		LogFieldPlayerID, j.PlayerID,
		LogFieldAttempt, j.Attempt,
		LogFieldError, cause)

	if s.deadLetter != nil {
		evt := event.NewInventoryChangedEvent(domain.ChangeReasonManual, j.PlayerID)
		if err := s.deadLetter.Write(evt, j.Attempt, cause); err != nil {
			logger.Error(LogMsgDeadLetterWriteError, LogFieldPlayerID, j.PlayerID, LogFieldError, err)
		}
	}

	s.mu.Lock()
	s.parked[j.PlayerID] = struct{}{}
	s.mu.Unlock()
}

// Park marks players for the next sweep without running a job now. Used for
// inventory changes whose event delivery was abandoned.
func (s *Scheduler) Park(playerIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range playerIDs {
		if id != "" {
			s.parked[id] = struct{}{}
		}
	}
}

// Parked returns the players whose recalculation is waiting for a sweep
func (s *Scheduler) Parked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.parked))
	for id := range s.parked {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Sweep requeues parked players, then walks the player directory one page
// at a time. A full queue ends the tick; the walk resumes from the same
// cursor on the next one. Overlapping sweeps skip.
func (s *Scheduler) Sweep(ctx context.Context) error {
	if !s.sweeping.TryLock() {
		return nil
	}
	defer s.sweeping.Unlock()

	log := logger.FromContext(ctx)

	requeued := 0
	for _, playerID := range s.Parked() {
		if !s.pool.TryEnqueue(s.job(playerID, 1)) {
			return nil
		}
		s.mu.Lock()
		delete(s.parked, playerID)
		s.mu.Unlock()
		requeued++
	}
	if requeued > 0 {
		log.Info(LogMsgSweepRequeued, LogFieldCount, requeued)
	}

	if s.players == nil {
		return nil
	}
	return s.sweepDirectory(ctx)
}

func (s *Scheduler) sweepDirectory(ctx context.Context) error {
	log := logger.FromContext(ctx)
	enqueued := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ids, err := s.players.ListPlayerIDs(ctx, s.cursor, SweepPageSize)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextListPlayers, err)
		}
		for _, id := range ids {
			if !s.pool.TryEnqueue(s.job(id, 1)) {
				log.Warn(LogMsgSweepPaused, LogFieldCount, enqueued, LogFieldCursor, s.cursor)
				return nil
			}
			s.cursor = id
			enqueued++
		}
		if len(ids) < SweepPageSize {
			s.cursor = ""
			log.Info(LogMsgSweepPassComplete, LogFieldCount, enqueued)
			return nil
		}
	}
}

// SweepJob adapts Sweep for periodic scheduling
func (s *Scheduler) SweepJob() worker.Job {
	return worker.JobFunc(s.Sweep)
}
