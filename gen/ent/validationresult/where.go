// Code generated by ent, DO NOT EDIT.

package validationresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/petarmilev/invoice-recon/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldLTE(FieldID, id))
}

// PairID applies equality check predicate on the "pair_id" field. It's identical to PairIDEQ.
func PairID(v uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldPairID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldCategory, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldMessage, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldSeverity, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldCreatedAt, v))
}

// PairIDEQ applies the EQ predicate on the "pair_id" field.
func PairIDEQ(v uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldPairID, v))
}

// PairIDNEQ applies the NEQ predicate on the "pair_id" field.
func PairIDNEQ(v uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNEQ(FieldPairID, v))
}

// PairIDIn applies the In predicate on the "pair_id" field.
func PairIDIn(vs ...uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldIn(FieldPairID, vs...))
}

// PairIDNotIn applies the NotIn predicate on the "pair_id" field.
func PairIDNotIn(vs ...uuid.UUID) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNotIn(FieldPairID, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldContainsFold(FieldCategory, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldContainsFold(FieldMessage, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldContainsFold(FieldSeverity, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ValidationResult {
	return predicate.ValidationResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPair applies the HasEdge predicate on the "pair" edge.
func HasPair() predicate.ValidationResult {
	return predicate.ValidationResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PairTable, PairColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPairWith applies the HasEdge predicate on the "pair" edge with a given conditions (other predicates).
func HasPairWith(preds ...predicate.DocumentPair) predicate.ValidationResult {
	return predicate.ValidationResult(func(s *sql.Selector) {
		step := newPairStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationResult) predicate.ValidationResult {
	return predicate.ValidationResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationResult) predicate.ValidationResult {
	return predicate.ValidationResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationResult) predicate.ValidationResult {
	return predicate.ValidationResult(sql.NotPredicates(p))
}
