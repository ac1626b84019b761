package passive

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/repository"
	"github.com/osse101/LootForge_Go/internal/worker"
)

// MockRepository implements repository.Player for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreatePlayer(ctx context.Context, player *domain.Player, unlocks domain.Unlocks) error {
	args := m.Called(ctx, player, unlocks)
	return args.Error(0)
}

func (m *MockRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) GetUnlocks(ctx context.Context, playerID string) (*domain.Unlocks, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unlocks), args.Error(1)
}

func (m *MockRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockRepository) SaveStats(ctx context.Context, playerID string, stats domain.PassiveAggregate) error {
	args := m.Called(ctx, playerID, stats)
	return args.Error(0)
}

var _ repository.Player = (*MockRepository)(nil)

// MockService implements Service for testing
type MockService struct {
	mock.Mock
}

func (m *MockService) Recalculate(ctx context.Context, playerID string) (*domain.PassiveAggregate, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PassiveAggregate), args.Error(1)
}

func (m *MockService) GetStats(ctx context.Context, playerID string) (*domain.PassiveAggregate, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PassiveAggregate), args.Error(1)
}

// fakeQueue records jobs instead of running them
type fakeQueue struct {
	mu      sync.Mutex
	full    bool
	stopped bool
	jobs    []worker.Job
	delayed []worker.Job
	delays  []time.Duration

	// capacity caps len(jobs) when positive
	capacity int
}

func (q *fakeQueue) TryEnqueue(job worker.Job) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.full || (q.capacity > 0 && len(q.jobs) >= q.capacity) {
		return false
	}
	q.jobs = append(q.jobs, job)
	return true
}

func (q *fakeQueue) EnqueueAfter(delay time.Duration, job worker.Job) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return false
	}
	q.delayed = append(q.delayed, job)
	q.delays = append(q.delays, delay)
	return true
}

// popDelayed removes and returns the oldest delayed job
func (q *fakeQueue) popDelayed() worker.Job {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.delayed) == 0 {
		return nil
	}
	j := q.delayed[0]
	q.delayed = q.delayed[1:]
	return j
}

// drain removes and returns the player ids of every queued recalculation
func (q *fakeQueue) drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	ids := make([]string, 0, len(q.jobs))
	for _, j := range q.jobs {
		ids = append(ids, j.(*RecalculateJob).PlayerID)
	}
	q.jobs = nil
	return ids
}

// fakeDirectory pages over a fixed sorted id list
type fakeDirectory struct {
	ids   []string
	err   error
	calls int
}

func (d *fakeDirectory) ListPlayerIDs(_ context.Context, after string, limit int) ([]string, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	var out []string
	for _, id := range d.ids {
		if id > after && len(out) < limit {
			out = append(out, id)
		}
	}
	return out, nil
}
