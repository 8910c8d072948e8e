package recon

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/entity"
	"github.com/petarmilev/invoice-recon/internal/repository"
)

func newTestService(t *testing.T) (*Service, repository.DocumentRepository) {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dbRes, err := repository.InitDatabase(ctx, common.LoadConfig(), true, logger)
	require.NoError(t, err)
	t.Cleanup(dbRes.Cleanup)

	documents := repository.NewDocumentRepository(dbRes.Client, logger)
	pairs := repository.NewPairRepository(dbRes.Client, logger)
	validations := repository.NewValidationRepository(dbRes.Client, logger)
	return NewService(documents, pairs, validations, logger), documents
}

func createDoc(t *testing.T, documents repository.DocumentRepository, docType constants.DocumentType, items ...entity.LineItem) *entity.Document {
	t.Helper()
	doc, err := documents.Create(context.Background(), &repository.CreateDocumentRequest{
		Type:     docType,
		Currency: constants.MKD,
		Items:    items,
	})
	require.NoError(t, err)
	return doc
}

func TestServiceReconcilePersistsResults(t *testing.T) {
	svc, documents := newTestService(t)
	ctx := context.Background()

	order := createDoc(t, documents, constants.DocumentTypeOrder,
		entity.LineItem{Name: "Box", Qty: 2, UnitPrice: 100, VATPercent: 18},
		entity.LineItem{Name: "Tape", Qty: 1, UnitPrice: 10, VATPercent: 18},
	)
	invoice := createDoc(t, documents, constants.DocumentTypeInvoice,
		entity.LineItem{Name: "Box", Qty: 2, UnitPrice: 100, VATPercent: 18},
	)

	view, orderTotals, _, err := svc.Reconcile(ctx, order.ID, invoice.ID)
	require.NoError(t, err)

	assert.Equal(t, order.ID, view.Pair.OrderID)
	assert.Equal(t, invoice.ID, view.Pair.InvoiceID)
	require.NotNil(t, view.Summary)
	assert.Equal(t, constants.StatusError, view.Summary.ItemsStatus)
	assert.Equal(t, constants.StatusError, view.Summary.FinalStatus)
	assert.NotEmpty(t, view.Validations)
	assert.InDelta(t, 210.0, orderTotals.Subtotal, 1e-9)

	// The stored view is reachable independently of the run that produced it.
	stored, err := svc.View(ctx, view.Pair.ID)
	require.NoError(t, err)
	assert.Equal(t, len(view.Validations), len(stored.Validations))
	assert.Equal(t, view.Summary.FinalStatus, stored.Summary.FinalStatus)
}

func TestServiceReconcileRerunReplacesResults(t *testing.T) {
	svc, documents := newTestService(t)
	ctx := context.Background()

	order := createDoc(t, documents, constants.DocumentTypeOrder,
		entity.LineItem{Name: "Box", Qty: 2, UnitPrice: 100, VATPercent: 18},
	)
	invoice := createDoc(t, documents, constants.DocumentTypeInvoice,
		entity.LineItem{Name: "Box", Qty: 3, UnitPrice: 100, VATPercent: 18},
	)

	first, _, _, err := svc.Reconcile(ctx, order.ID, invoice.ID)
	require.NoError(t, err)
	second, _, _, err := svc.Reconcile(ctx, order.ID, invoice.ID)
	require.NoError(t, err)

	// Same pair row, and re-running does not accumulate duplicate results.
	assert.Equal(t, first.Pair.ID, second.Pair.ID)
	assert.Equal(t, len(first.Validations), len(second.Validations))
	assert.Equal(t, first.Summary.FinalStatus, second.Summary.FinalStatus)
}

func TestServiceReconcileMissingDocuments(t *testing.T) {
	svc, documents := newTestService(t)
	ctx := context.Background()

	order := createDoc(t, documents, constants.DocumentTypeOrder)
	invoice := createDoc(t, documents, constants.DocumentTypeInvoice)

	t.Run("unknown order id", func(t *testing.T) {
		_, _, _, err := svc.Reconcile(ctx, uuid.New(), invoice.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("unknown invoice id", func(t *testing.T) {
		_, _, _, err := svc.Reconcile(ctx, order.ID, uuid.New())
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("swapped document types", func(t *testing.T) {
		_, _, _, err := svc.Reconcile(ctx, invoice.ID, order.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestServiceReleasesPairLocks(t *testing.T) {
	svc, documents := newTestService(t)
	ctx := context.Background()

	order := createDoc(t, documents, constants.DocumentTypeOrder,
		entity.LineItem{Name: "Box", Qty: 1, UnitPrice: 50, VATPercent: 18},
	)
	invoice := createDoc(t, documents, constants.DocumentTypeInvoice,
		entity.LineItem{Name: "Box", Qty: 1, UnitPrice: 50, VATPercent: 18},
	)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _, err := svc.Reconcile(ctx, order.ID, invoice.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Once no run is in flight the per-pair lock table must be empty again.
	svc.mu.Lock()
	held := len(svc.pairLocks)
	svc.mu.Unlock()
	assert.Zero(t, held)
}

func TestServiceListViews(t *testing.T) {
	svc, documents := newTestService(t)
	ctx := context.Background()

	order := createDoc(t, documents, constants.DocumentTypeOrder,
		entity.LineItem{Name: "Box", Qty: 1, UnitPrice: 50, VATPercent: 18},
	)
	invoice := createDoc(t, documents, constants.DocumentTypeInvoice,
		entity.LineItem{Name: "Box", Qty: 1, UnitPrice: 50, VATPercent: 18},
	)

	_, _, _, err := svc.Reconcile(ctx, order.ID, invoice.ID)
	require.NoError(t, err)

	views, err := svc.ListViews(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, constants.StatusValid, views[0].Summary.FinalStatus)
	require.NotNil(t, views[0].Order)
	require.Len(t, views[0].Order.Items, 1)
}
