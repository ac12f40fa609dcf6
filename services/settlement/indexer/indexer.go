package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

const (
	DefaultPollInterval = 2 * time.Second
	DefaultTimeout      = 60 * time.Second
)

// Outcome labels used for logs and metrics
const (
	OutcomeCompleted  = "completed"
	OutcomeRejected   = "rejected"
	OutcomeSuperseded = "superseded"
	OutcomeCancelled  = "cancelled"
	OutcomeUnmatched  = "unmatched"
	OutcomeFailed     = "failed"
)

// Task is the handle of one indexer run
type Task struct {
	Reference string

	done   chan struct{}
	cancel context.CancelFunc

	mu       sync.Mutex
	err      error
	verdict  settlement.Verdict
	finished bool
}

func newTask(reference string, cancel context.CancelFunc) *Task {
	return &Task{Reference: reference, done: make(chan struct{}), cancel: cancel}
}

// Done is closed when the run ends
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err is the error the run ended with. Nil while running or when a
// verdict was written.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Outcome returns the verdict written by the run. ok is false while the
// run is in progress or when it ended with an error.
func (t *Task) Outcome() (verdict settlement.Verdict, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.verdict, t.finished && t.err == nil
}

// Cancel stops the run. The transfer stays Pending.
func (t *Task) Cancel() {
	t.cancel()
}

func (t *Task) finish(verdict settlement.Verdict, err error) {
	t.mu.Lock()
	t.verdict = verdict
	t.err = err
	t.finished = true
	t.mu.Unlock()
	close(t.done)
}

// Indexer polls the ledger for the transaction carrying a reference and
// finalizes the transfer once it is found and checked
type Indexer struct {
	ledgerGW     settlement.LedgerGW
	searcher     *Searcher
	verifier     settlement.TransferVerifier
	finalizer    settlement.Finalizer
	pollInterval time.Duration
	timeout      time.Duration
}

func NewIndexer(cfg models.IndexerConfig, ledgerGW settlement.LedgerGW, verifier settlement.TransferVerifier, finalizer settlement.Finalizer) *Indexer {
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Indexer{
		ledgerGW:     ledgerGW,
		searcher:     NewSearcher(ledgerGW, cfg.PageLimit, cfg.MaxPages),
		verifier:     verifier,
		finalizer:    finalizer,
		pollInterval: poll,
		timeout:      timeout,
	}
}

// Timeout is how long a run polls before giving up on the reference
func (ix *Indexer) Timeout() time.Duration {
	return ix.timeout
}

// Run polls until the reference resolves to a verdict or the timeout passes,
// then writes the verdict. A timeout with nothing located is a Rejected
// verdict without a signature. Located transactions that do not settle the
// transfer are skipped; if one was seen when the timeout passes the run ends
// with ErrCandidateMismatch and the transfer stays Pending. Any other failure
// also ends the run with the error. attempts counts the polls made.
func (ix *Indexer) Run(ctx context.Context, req settlement.WatchRequest) (verdict settlement.Verdict, attempts int, err error) {
	reference := req.Reference.String()

	deadline := time.NewTimer(ix.timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(ix.pollInterval)
	defer ticker.Stop()

	var mismatch error
	for {
		attempts++
		verdict, err = ix.attempt(ctx, req)
		if err == nil {
			break
		}
		switch {
		case errors.Is(err, settlement.ErrCandidateMismatch):
			mismatch = err
			logger.WarnCtx(ctx, "Located transaction does not settle transfer",
				logger.Reference(reference),
				logger.Int("attempt", attempts),
				logger.Err(err))
		case errors.Is(err, settlement.ErrReferenceNotFound):
			logger.DebugCtx(ctx, "Reference not on ledger yet",
				logger.Reference(reference),
				logger.Int("attempt", attempts))
		default:
			return settlement.Verdict{}, attempts, err
		}

		select {
		case <-ctx.Done():
			return settlement.Verdict{}, attempts, ctx.Err()
		case <-deadline.C:
			if mismatch != nil {
				return settlement.Verdict{}, attempts, mismatch
			}
			verdict = settlement.Verdict{
				Status: models.TransferStatusRejected,
				Reason: fmt.Errorf("%w after %s", settlement.ErrReferenceNotFound, ix.timeout),
			}
		case <-ticker.C:
			continue
		}
		break
	}

	if err := ix.finalizer.Finalize(ctx, reference, req.PaymentID, verdict); err != nil {
		return verdict, attempts, err
	}
	return verdict, attempts, nil
}

// attempt locates the reference once. ErrReferenceNotFound means try again
// later. ErrCandidateMismatch means the newest transaction carrying the
// reference is unreadable or fails verification; reference tags are public,
// so such a transaction says nothing about the transfer.
func (ix *Indexer) attempt(ctx context.Context, req settlement.WatchRequest) (settlement.Verdict, error) {
	info, err := ix.searcher.FindReference(ctx, req.Reference)
	if err != nil {
		return settlement.Verdict{}, err
	}

	landed, err := ix.ledgerGW.GetTransaction(ctx, info.Signature)
	if errors.Is(err, rpc.ErrNotFound) {
		// listed but not yet readable at our commitment
		return settlement.Verdict{}, settlement.ErrReferenceNotFound
	}
	if errors.Is(err, ledger.ErrMalformedTransaction) {
		return settlement.Verdict{}, fmt.Errorf("%w: %s: %w", settlement.ErrCandidateMismatch, info.Signature, err)
	}
	if err != nil {
		return settlement.Verdict{}, err
	}

	verdict, err := ix.verifier.Verify(landed, req.Expectation)
	if err != nil {
		return settlement.Verdict{}, fmt.Errorf("%w: %s: %w", settlement.ErrCandidateMismatch, info.Signature, err)
	}
	return verdict, nil
}
