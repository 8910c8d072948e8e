package recon

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/internal/entity"
	"github.com/petarmilev/invoice-recon/internal/repository"
)

// Service orchestrates a reconciliation run: load both documents, compare,
// persist the results atomically and return the stored view.
type Service struct {
	documents   repository.DocumentRepository
	pairs       repository.PairRepository
	validations repository.ValidationRepository
	logger      *slog.Logger

	mu        sync.Mutex
	pairLocks map[uuid.UUID]*pairLock
}

// pairLock is a refcounted mutex entry; the refcount lets lockPair drop the
// map entry once the last holder releases it.
type pairLock struct {
	mu   sync.Mutex
	refs int
}

func NewService(
	documents repository.DocumentRepository,
	pairs repository.PairRepository,
	validations repository.ValidationRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		documents:   documents,
		pairs:       pairs,
		validations: validations,
		logger:      logger,
		pairLocks:   make(map[uuid.UUID]*pairLock),
	}
}

// lockPair serializes runs for the same pair so concurrent re-validations
// cannot interleave their delete-and-insert cycles. Different pairs run
// in parallel. Entries are removed once the last holder releases them, so
// the map stays bounded by the number of in-flight runs.
func (s *Service) lockPair(pairID uuid.UUID) func() {
	s.mu.Lock()
	lock, ok := s.pairLocks[pairID]
	if !ok {
		lock = &pairLock{}
		s.pairLocks[pairID] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()
		s.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(s.pairLocks, pairID)
		}
		s.mu.Unlock()
	}
}

// Reconcile runs a full validation of the given order against the given
// invoice. Both documents must exist with the expected type; re-running the
// same pair replaces any previous results.
func (s *Service) Reconcile(ctx context.Context, orderID, invoiceID uuid.UUID) (*entity.PairView, entity.Totals, entity.Totals, error) {
	var zero entity.Totals

	order, err := s.documents.GetByID(ctx, orderID, constants.DocumentTypeOrder)
	if err != nil {
		return nil, zero, zero, err
	}
	invoice, err := s.documents.GetByID(ctx, invoiceID, constants.DocumentTypeInvoice)
	if err != nil {
		return nil, zero, zero, err
	}

	pair, err := s.pairs.GetOrCreate(ctx, orderID, invoiceID)
	if err != nil {
		return nil, zero, zero, err
	}

	unlock := s.lockPair(pair.ID)
	defer unlock()

	report := Compare(order, invoice, time.Now())
	s.logger.Info("reconciliation computed",
		"pair_id", pair.ID,
		"results", len(report.Results),
		"final_status", report.Summary.FinalStatus)

	if err := s.validations.ReplaceForPair(ctx, pair.ID, report.Results, report.Summary); err != nil {
		return nil, zero, zero, err
	}

	view, err := s.View(ctx, pair.ID)
	if err != nil {
		return nil, zero, zero, err
	}
	return view, report.OrderTotals, report.InvoiceTotals, nil
}

// View loads the stored state of one pair: both documents, the persisted
// validation results in insertion order and the summary (nil before the
// first run).
func (s *Service) View(ctx context.Context, pairID uuid.UUID) (*entity.PairView, error) {
	pair, err := s.pairs.GetByID(ctx, pairID)
	if err != nil {
		return nil, err
	}
	order, err := s.documents.GetByID(ctx, pair.OrderID, constants.DocumentTypeOrder)
	if err != nil {
		return nil, err
	}
	invoice, err := s.documents.GetByID(ctx, pair.InvoiceID, constants.DocumentTypeInvoice)
	if err != nil {
		return nil, err
	}
	results, err := s.validations.ListForPair(ctx, pairID)
	if err != nil {
		return nil, err
	}
	summary, err := s.validations.GetSummary(ctx, pairID)
	if err != nil {
		return nil, err
	}
	return &entity.PairView{
		Pair:        *pair,
		Order:       order,
		Invoice:     invoice,
		Validations: results,
		Summary:     summary,
	}, nil
}

// ListViews returns every known pair with its stored validation state.
func (s *Service) ListViews(ctx context.Context) ([]*entity.PairView, error) {
	pairs, err := s.pairs.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*entity.PairView, 0, len(pairs))
	for _, pair := range pairs {
		view, err := s.View(ctx, pair.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
