// Code generated by ent, DO NOT EDIT.

package validationsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/petarmilev/invoice-recon/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLTE(FieldID, id))
}

// PairID applies equality check predicate on the "pair_id" field. It's identical to PairIDEQ.
func PairID(v uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldPairID, v))
}

// ItemsStatus applies equality check predicate on the "items_status" field. It's identical to ItemsStatusEQ.
func ItemsStatus(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldItemsStatus, v))
}

// VatStatus applies equality check predicate on the "vat_status" field. It's identical to VatStatusEQ.
func VatStatus(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldVatStatus, v))
}

// DatesStatus applies equality check predicate on the "dates_status" field. It's identical to DatesStatusEQ.
func DatesStatus(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldDatesStatus, v))
}

// TotalsStatus applies equality check predicate on the "totals_status" field. It's identical to TotalsStatusEQ.
func TotalsStatus(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldTotalsStatus, v))
}

// FinalStatus applies equality check predicate on the "final_status" field. It's identical to FinalStatusEQ.
func FinalStatus(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldFinalStatus, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// PairIDEQ applies the EQ predicate on the "pair_id" field.
func PairIDEQ(v uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldPairID, v))
}

// PairIDNEQ applies the NEQ predicate on the "pair_id" field.
func PairIDNEQ(v uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNEQ(FieldPairID, v))
}

// PairIDIn applies the In predicate on the "pair_id" field.
func PairIDIn(vs ...uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldIn(FieldPairID, vs...))
}

// PairIDNotIn applies the NotIn predicate on the "pair_id" field.
func PairIDNotIn(vs ...uuid.UUID) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNotIn(FieldPairID, vs...))
}

// ItemsStatusEQ applies the EQ predicate on the "items_status" field.
func ItemsStatusEQ(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldItemsStatus, v))
}

// ItemsStatusNEQ applies the NEQ predicate on the "items_status" field.
func ItemsStatusNEQ(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNEQ(FieldItemsStatus, v))
}

// ItemsStatusIn applies the In predicate on the "items_status" field.
func ItemsStatusIn(vs ...string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldIn(FieldItemsStatus, vs...))
}

// ItemsStatusNotIn applies the NotIn predicate on the "items_status" field.
func ItemsStatusNotIn(vs ...string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNotIn(FieldItemsStatus, vs...))
}

// ItemsStatusGT applies the GT predicate on the "items_status" field.
func ItemsStatusGT(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGT(FieldItemsStatus, v))
}

// ItemsStatusGTE applies the GTE predicate on the "items_status" field.
func ItemsStatusGTE(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGTE(FieldItemsStatus, v))
}

// ItemsStatusLT applies the LT predicate on the "items_status" field.
func ItemsStatusLT(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLT(FieldItemsStatus, v))
}

// ItemsStatusLTE applies the LTE predicate on the "items_status" field.
func ItemsStatusLTE(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLTE(FieldItemsStatus, v))
}

// ItemsStatusContains applies the Contains predicate on the "items_status" field.
func ItemsStatusContains(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldContains(FieldItemsStatus, v))
}

// ItemsStatusHasPrefix applies the HasPrefix predicate on the "items_status" field.
func ItemsStatusHasPrefix(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldHasPrefix(FieldItemsStatus, v))
}

// ItemsStatusHasSuffix applies the HasSuffix predicate on the "items_status" field.
func ItemsStatusHasSuffix(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldHasSuffix(FieldItemsStatus, v))
}

// ItemsStatusEqualFold applies the EqualFold predicate on the "items_status" field.
func ItemsStatusEqualFold(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEqualFold(FieldItemsStatus, v))
}

// ItemsStatusContainsFold applies the ContainsFold predicate on the "items_status" field.
func ItemsStatusContainsFold(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldContainsFold(FieldItemsStatus, v))
}

// VatStatusEQ applies the EQ predicate on the "vat_status" field.
func VatStatusEQ(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldVatStatus, v))
}

// VatStatusNEQ applies the NEQ predicate on the "vat_status" field.
func VatStatusNEQ(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNEQ(FieldVatStatus, v))
}

// VatStatusIn applies the In predicate on the "vat_status" field.
func VatStatusIn(vs ...string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldIn(FieldVatStatus, vs...))
}

// VatStatusNotIn applies the NotIn predicate on the "vat_status" field.
func VatStatusNotIn(vs ...string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNotIn(FieldVatStatus, vs...))
}

// VatStatusGT applies the GT predicate on the "vat_status" field.
func VatStatusGT(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGT(FieldVatStatus, v))
}

// VatStatusGTE applies the GTE predicate on the "vat_status" field.
func VatStatusGTE(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGTE(FieldVatStatus, v))
}

// VatStatusLT applies the LT predicate on the "vat_status" field.
func VatStatusLT(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLT(FieldVatStatus, v))
}

// VatStatusLTE applies the LTE predicate on the "vat_status" field.
func VatStatusLTE(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLTE(FieldVatStatus, v))
}

// VatStatusContains applies the Contains predicate on the "vat_status" field.
func VatStatusContains(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldContains(FieldVatStatus, v))
}

// VatStatusHasPrefix applies the HasPrefix predicate on the "vat_status" field.
func VatStatusHasPrefix(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldHasPrefix(FieldVatStatus, v))
}

// VatStatusHasSuffix applies the HasSuffix predicate on the "vat_status" field.
func VatStatusHasSuffix(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldHasSuffix(FieldVatStatus, v))
}

// VatStatusEqualFold applies the EqualFold predicate on the "vat_status" field.
func VatStatusEqualFold(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEqualFold(FieldVatStatus, v))
}

// VatStatusContainsFold applies the ContainsFold predicate on the "vat_status" field.
func VatStatusContainsFold(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldContainsFold(FieldVatStatus, v))
}

// DatesStatusEQ applies the EQ predicate on the "dates_status" field.
func DatesStatusEQ(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldDatesStatus, v))
}

// DatesStatusNEQ applies the NEQ predicate on the "dates_status" field.
func DatesStatusNEQ(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNEQ(FieldDatesStatus, v))
}

// DatesStatusIn applies the In predicate on the "dates_status" field.
func DatesStatusIn(vs ...string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldIn(FieldDatesStatus, vs...))
}

// DatesStatusNotIn applies the NotIn predicate on the "dates_status" field.
func DatesStatusNotIn(vs ...string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNotIn(FieldDatesStatus, vs...))
}

// DatesStatusGT applies the GT predicate on the "dates_status" field.
func DatesStatusGT(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGT(FieldDatesStatus, v))
}

// DatesStatusGTE applies the GTE predicate on the "dates_status" field.
func DatesStatusGTE(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGTE(FieldDatesStatus, v))
}

// DatesStatusLT applies the LT predicate on the "dates_status" field.
func DatesStatusLT(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLT(FieldDatesStatus, v))
}

// DatesStatusLTE applies the LTE predicate on the "dates_status" field.
func DatesStatusLTE(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLTE(FieldDatesStatus, v))
}

// DatesStatusContains applies the Contains predicate on the "dates_status" field.
func DatesStatusContains(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldContains(FieldDatesStatus, v))
}

// DatesStatusHasPrefix applies the HasPrefix predicate on the "dates_status" field.
func DatesStatusHasPrefix(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldHasPrefix(FieldDatesStatus, v))
}

// DatesStatusHasSuffix applies the HasSuffix predicate on the "dates_status" field.
func DatesStatusHasSuffix(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldHasSuffix(FieldDatesStatus, v))
}

// DatesStatusEqualFold applies the EqualFold predicate on the "dates_status" field.
func DatesStatusEqualFold(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEqualFold(FieldDatesStatus, v))
}

// DatesStatusContainsFold applies the ContainsFold predicate on the "dates_status" field.
func DatesStatusContainsFold(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldContainsFold(FieldDatesStatus, v))
}

// TotalsStatusEQ applies the EQ predicate on the "totals_status" field.
func TotalsStatusEQ(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldTotalsStatus, v))
}

// TotalsStatusNEQ applies the NEQ predicate on the "totals_status" field.
func TotalsStatusNEQ(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNEQ(FieldTotalsStatus, v))
}

// TotalsStatusIn applies the In predicate on the "totals_status" field.
func TotalsStatusIn(vs ...string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldIn(FieldTotalsStatus, vs...))
}

// TotalsStatusNotIn applies the NotIn predicate on the "totals_status" field.
func TotalsStatusNotIn(vs ...string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNotIn(FieldTotalsStatus, vs...))
}

// TotalsStatusGT applies the GT predicate on the "totals_status" field.
func TotalsStatusGT(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGT(FieldTotalsStatus, v))
}

// TotalsStatusGTE applies the GTE predicate on the "totals_status" field.
func TotalsStatusGTE(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGTE(FieldTotalsStatus, v))
}

// TotalsStatusLT applies the LT predicate on the "totals_status" field.
func TotalsStatusLT(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLT(FieldTotalsStatus, v))
}

// TotalsStatusLTE applies the LTE predicate on the "totals_status" field.
func TotalsStatusLTE(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLTE(FieldTotalsStatus, v))
}

// TotalsStatusContains applies the Contains predicate on the "totals_status" field.
func TotalsStatusContains(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldContains(FieldTotalsStatus, v))
}

// TotalsStatusHasPrefix applies the HasPrefix predicate on the "totals_status" field.
func TotalsStatusHasPrefix(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldHasPrefix(FieldTotalsStatus, v))
}

// TotalsStatusHasSuffix applies the HasSuffix predicate on the "totals_status" field.
func TotalsStatusHasSuffix(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldHasSuffix(FieldTotalsStatus, v))
}

// TotalsStatusEqualFold applies the EqualFold predicate on the "totals_status" field.
func TotalsStatusEqualFold(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEqualFold(FieldTotalsStatus, v))
}

// TotalsStatusContainsFold applies the ContainsFold predicate on the "totals_status" field.
func TotalsStatusContainsFold(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldContainsFold(FieldTotalsStatus, v))
}

// FinalStatusEQ applies the EQ predicate on the "final_status" field.
func FinalStatusEQ(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldFinalStatus, v))
}

// FinalStatusNEQ applies the NEQ predicate on the "final_status" field.
func FinalStatusNEQ(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNEQ(FieldFinalStatus, v))
}

// FinalStatusIn applies the In predicate on the "final_status" field.
func FinalStatusIn(vs ...string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldIn(FieldFinalStatus, vs...))
}

// FinalStatusNotIn applies the NotIn predicate on the "final_status" field.
func FinalStatusNotIn(vs ...string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNotIn(FieldFinalStatus, vs...))
}

// FinalStatusGT applies the GT predicate on the "final_status" field.
func FinalStatusGT(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGT(FieldFinalStatus, v))
}

// FinalStatusGTE applies the GTE predicate on the "final_status" field.
func FinalStatusGTE(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGTE(FieldFinalStatus, v))
}

// FinalStatusLT applies the LT predicate on the "final_status" field.
func FinalStatusLT(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLT(FieldFinalStatus, v))
}

// FinalStatusLTE applies the LTE predicate on the "final_status" field.
func FinalStatusLTE(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLTE(FieldFinalStatus, v))
}

// FinalStatusContains applies the Contains predicate on the "final_status" field.
func FinalStatusContains(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldContains(FieldFinalStatus, v))
}

// FinalStatusHasPrefix applies the HasPrefix predicate on the "final_status" field.
func FinalStatusHasPrefix(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldHasPrefix(FieldFinalStatus, v))
}

// FinalStatusHasSuffix applies the HasSuffix predicate on the "final_status" field.
func FinalStatusHasSuffix(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldHasSuffix(FieldFinalStatus, v))
}

// FinalStatusEqualFold applies the EqualFold predicate on the "final_status" field.
func FinalStatusEqualFold(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEqualFold(FieldFinalStatus, v))
}

// FinalStatusContainsFold applies the ContainsFold predicate on the "final_status" field.
func FinalStatusContainsFold(v string) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldContainsFold(FieldFinalStatus, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPair applies the HasEdge predicate on the "pair" edge.
func HasPair() predicate.ValidationSummary {
	return predicate.ValidationSummary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, PairTable, PairColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPairWith applies the HasEdge predicate on the "pair" edge with a given conditions (other predicates).
func HasPairWith(preds ...predicate.DocumentPair) predicate.ValidationSummary {
	return predicate.ValidationSummary(func(s *sql.Selector) {
		step := newPairStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationSummary) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationSummary) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationSummary) predicate.ValidationSummary {
	return predicate.ValidationSummary(sql.NotPredicates(p))
}
