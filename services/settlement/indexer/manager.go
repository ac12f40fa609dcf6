package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/metrics"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	nrpkg "github.com/piresc/nebengjek-settlement/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

const (
	defaultLeaseGrace = 30 * time.Second
	leaseCallTimeout  = 5 * time.Second
)

// ErrManagerClosed is returned by Start after Shutdown
var ErrManagerClosed = errors.New("indexer manager is shut down")

// Manager runs one Task per transfer reference. Runs are guarded by an
// in-process map and, when a lease store is set, by a lease shared with
// other replicas.
type Manager struct {
	indexer   *Indexer
	leaseRepo settlement.LeaseRepo
	metrics   metrics.Metrics
	nrApp     *newrelic.Application
	owner     string
	leaseTTL  time.Duration

	baseCtx context.Context
	stop    context.CancelFunc

	mu     sync.Mutex
	tasks  map[string]*Task
	closed bool
	wg     sync.WaitGroup
}

// NewManager creates a manager. leaseRepo, m and nrApp may be nil.
func NewManager(cfg models.IndexerConfig, indexer *Indexer, leaseRepo settlement.LeaseRepo, m metrics.Metrics, nrApp *newrelic.Application) *Manager {
	if m == nil {
		m = metrics.NewNoop()
	}
	grace := cfg.LeaseGrace
	if grace <= 0 {
		grace = defaultLeaseGrace
	}

	ctx, stop := context.WithCancel(context.Background())
	return &Manager{
		indexer:   indexer,
		leaseRepo: leaseRepo,
		metrics:   m,
		nrApp:     nrApp,
		owner:     uuid.NewString(),
		leaseTTL:  indexer.Timeout() + grace,
		baseCtx:   ctx,
		stop:      stop,
		tasks:     make(map[string]*Task),
	}
}

// Start launches a run for req and returns at once
func (m *Manager) Start(req settlement.WatchRequest) (*Task, error) {
	reference := req.Reference.String()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrManagerClosed
	}
	if _, ok := m.tasks[reference]; ok {
		return nil, fmt.Errorf("%w: %s", settlement.ErrIndexerAlreadyRunning, reference)
	}

	ctx, cancel := context.WithCancel(m.baseCtx)
	task := newTask(reference, cancel)
	m.tasks[reference] = task
	m.wg.Add(1)

	go m.run(ctx, task, req)
	return task, nil
}

// Watch starts a run without handing back the task
func (m *Manager) Watch(req settlement.WatchRequest) error {
	_, err := m.Start(req)
	return err
}

// Running returns the number of runs in progress
func (m *Manager) Running() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Shutdown cancels every run and waits for them to return or ctx to end.
// Cancelled transfers stay Pending and are picked up by the next resume.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.stop()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) run(ctx context.Context, task *Task, req settlement.WatchRequest) {
	defer m.wg.Done()

	ctx, end := nrpkg.BackgroundTransaction(ctx, m.nrApp, "Indexer/Run")
	defer end()

	held, err := m.acquireLease(ctx, task.Reference)
	if err != nil || !held {
		if err == nil {
			err = fmt.Errorf("%w: lease held by another replica", settlement.ErrIndexerAlreadyRunning)
		}
		logger.WarnCtx(ctx, "Indexer not started",
			logger.Reference(task.Reference),
			logger.Err(err))
		m.complete(task, settlement.Verdict{}, err)
		return
	}

	m.metrics.IndexerStarted()
	logger.InfoCtx(ctx, "Indexer started", logger.Reference(task.Reference))

	start := time.Now()
	verdict, attempts, err := m.indexer.Run(ctx, req)
	elapsed := time.Since(start)

	outcome := outcomeOf(verdict, err)
	m.metrics.IndexerFinished(outcome, attempts, elapsed)

	fields := []logger.Field{
		logger.Reference(task.Reference),
		logger.String("outcome", outcome),
		logger.Int("attempts", attempts),
		logger.Duration("elapsed", elapsed),
	}
	switch outcome {
	case OutcomeFailed:
		nrpkg.NoticeTransactionError(nrpkg.FromContext(ctx), err)
		logger.ErrorCtx(ctx, "Indexer failed", append(fields, logger.Err(err))...)
	case OutcomeCancelled, OutcomeSuperseded:
		logger.InfoCtx(ctx, "Indexer stopped", append(fields, logger.Err(err))...)
	default:
		logger.InfoCtx(ctx, "Indexer finished", fields...)
	}

	m.releaseLease(task.Reference)
	m.complete(task, verdict, err)
}

// complete forgets the task before closing Done so a finished reference
// can be started again
func (m *Manager) complete(task *Task, verdict settlement.Verdict, err error) {
	m.mu.Lock()
	delete(m.tasks, task.Reference)
	m.mu.Unlock()
	task.cancel()
	task.finish(verdict, err)
}

func (m *Manager) acquireLease(ctx context.Context, reference string) (bool, error) {
	if m.leaseRepo == nil {
		return true, nil
	}
	ctx, cancel := context.WithTimeout(ctx, leaseCallTimeout)
	defer cancel()
	return m.leaseRepo.AcquireIndexerLease(ctx, reference, m.owner, m.leaseTTL)
}

func (m *Manager) releaseLease(reference string) {
	if m.leaseRepo == nil {
		return
	}
	// the run context may already be cancelled
	ctx, cancel := context.WithTimeout(context.Background(), leaseCallTimeout)
	defer cancel()
	if err := m.leaseRepo.ReleaseIndexerLease(ctx, reference, m.owner); err != nil {
		logger.Warn("Failed to release indexer lease",
			logger.Reference(reference),
			logger.Err(err))
	}
}

func outcomeOf(verdict settlement.Verdict, err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return OutcomeCancelled
	case errors.Is(err, settlement.ErrAlreadyFinalized):
		return OutcomeSuperseded
	case errors.Is(err, settlement.ErrCandidateMismatch):
		return OutcomeUnmatched
	case err != nil:
		return OutcomeFailed
	case verdict.Status == models.TransferStatusCompleted:
		return OutcomeCompleted
	default:
		return OutcomeRejected
	}
}
