package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/petarmilev/invoice-recon/gen/ent"
	entpair "github.com/petarmilev/invoice-recon/gen/ent/documentpair"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/entity"
	"github.com/petarmilev/invoice-recon/internal/utils"
)

type PairRepository interface {
	// GetOrCreate returns the pair for (orderID, invoiceID), creating it on
	// first reconciliation. Pairs are unique per id combination.
	GetOrCreate(ctx context.Context, orderID, invoiceID uuid.UUID) (*entity.DocumentPair, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentPair, error)
	List(ctx context.Context) ([]*entity.DocumentPair, error)
}

type pairRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPairRepository(entc *ent.Client, logger *slog.Logger) PairRepository {
	return &pairRepo{ent: entc, logger: logger}
}

func (r *pairRepo) GetOrCreate(ctx context.Context, orderID, invoiceID uuid.UUID) (*entity.DocumentPair, error) {
	row, err := r.ent.DocumentPair.Query().
		Where(entpair.OrderID(orderID), entpair.InvoiceID(invoiceID)).
		Only(ctx)
	if err == nil {
		return utils.ToPair(row), nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to query pair", "order_id", orderID, "invoice_id", invoiceID, "error", err)
		return nil, err
	}

	row, err = r.ent.DocumentPair.Create().
		SetOrderID(orderID).
		SetInvoiceID(invoiceID).
		Save(ctx)
	if err != nil {
		// Lost a race with a concurrent first reconciliation of the same
		// pair; the unique index guarantees exactly one row exists now.
		if ent.IsConstraintError(err) {
			row, err = r.ent.DocumentPair.Query().
				Where(entpair.OrderID(orderID), entpair.InvoiceID(invoiceID)).
				Only(ctx)
			if err == nil {
				return utils.ToPair(row), nil
			}
		}
		r.logger.Error("failed to create pair", "order_id", orderID, "invoice_id", invoiceID, "error", err)
		return nil, err
	}
	r.logger.Info("pair created", "id", row.ID, "order_id", orderID, "invoice_id", invoiceID)
	return utils.ToPair(row), nil
}

func (r *pairRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentPair, error) {
	row, err := r.ent.DocumentPair.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("pair %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return utils.ToPair(row), nil
}

func (r *pairRepo) List(ctx context.Context) ([]*entity.DocumentPair, error) {
	rows, err := r.ent.DocumentPair.Query().
		Order(entpair.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list pairs", "error", err)
		return nil, err
	}
	result := make([]*entity.DocumentPair, len(rows))
	for i, row := range rows {
		result[i] = utils.ToPair(row)
	}
	return result, nil
}
