package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/petarmilev/invoice-recon/gen/ent"
	entresult "github.com/petarmilev/invoice-recon/gen/ent/validationresult"
	entsummary "github.com/petarmilev/invoice-recon/gen/ent/validationsummary"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/entity"
	"github.com/petarmilev/invoice-recon/internal/utils"
)

type ValidationRepository interface {
	// ReplaceForPair atomically swaps the pair's validation state: all
	// prior results are deleted, the new set inserted and the summary
	// upserted by pair id, in one transaction. Readers never observe a
	// partially-cleared result set.
	ReplaceForPair(ctx context.Context, pairID uuid.UUID, results []entity.ValidationResult, summary entity.ValidationSummary) error
	ListForPair(ctx context.Context, pairID uuid.UUID) ([]entity.ValidationResult, error)
	GetSummary(ctx context.Context, pairID uuid.UUID) (*entity.ValidationSummary, error)
}

type validationRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewValidationRepository(entc *ent.Client, logger *slog.Logger) ValidationRepository {
	return &validationRepo{ent: entc, logger: logger}
}

func (r *validationRepo) ReplaceForPair(ctx context.Context, pairID uuid.UUID, results []entity.ValidationResult, summary entity.ValidationSummary) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return common.WrapError(err, "begin tx")
	}

	if _, err := tx.ValidationResult.Delete().
		Where(entresult.PairID(pairID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to delete prior validation results", "pair_id", pairID, "error", err)
		return err
	}

	for _, res := range results {
		if _, err := tx.ValidationResult.Create().
			SetPairID(pairID).
			SetCategory(string(res.Category)).
			SetMessage(res.Message).
			SetSeverity(string(res.Severity)).
			Save(ctx); err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to insert validation result", "pair_id", pairID, "error", err)
			return err
		}
	}

	existing, err := tx.ValidationSummary.Query().
		Where(entsummary.PairID(pairID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetItemsStatus(string(summary.ItemsStatus)).
			SetVatStatus(string(summary.VATStatus)).
			SetDatesStatus(string(summary.DatesStatus)).
			SetTotalsStatus(string(summary.TotalsStatus)).
			SetFinalStatus(string(summary.FinalStatus)).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = tx.ValidationSummary.Create().
			SetPairID(pairID).
			SetItemsStatus(string(summary.ItemsStatus)).
			SetVatStatus(string(summary.VATStatus)).
			SetDatesStatus(string(summary.DatesStatus)).
			SetTotalsStatus(string(summary.TotalsStatus)).
			SetFinalStatus(string(summary.FinalStatus)).
			Save(ctx)
	}
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to upsert validation summary", "pair_id", pairID, "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		return common.WrapError(err, "commit validation run")
	}
	r.logger.Info("validation run persisted", "pair_id", pairID, "results", len(results), "final_status", summary.FinalStatus)
	return nil
}

func (r *validationRepo) ListForPair(ctx context.Context, pairID uuid.UUID) ([]entity.ValidationResult, error) {
	rows, err := r.ent.ValidationResult.Query().
		Where(entresult.PairID(pairID)).
		Order(entresult.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list validation results", "pair_id", pairID, "error", err)
		return nil, err
	}
	result := make([]entity.ValidationResult, len(rows))
	for i, row := range rows {
		result[i] = utils.ToValidationResult(row)
	}
	return result, nil
}

func (r *validationRepo) GetSummary(ctx context.Context, pairID uuid.UUID) (*entity.ValidationSummary, error) {
	row, err := r.ent.ValidationSummary.Query().
		Where(entsummary.PairID(pairID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get validation summary", "pair_id", pairID, "error", err)
		return nil, err
	}
	return utils.ToValidationSummary(row), nil
}
