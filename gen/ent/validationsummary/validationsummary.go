// Code generated by ent, DO NOT EDIT.

package validationsummary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the validationsummary type in the database.
	Label = "validation_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPairID holds the string denoting the pair_id field in the database.
	FieldPairID = "pair_id"
	// FieldItemsStatus holds the string denoting the items_status field in the database.
	FieldItemsStatus = "items_status"
	// FieldVatStatus holds the string denoting the vat_status field in the database.
	FieldVatStatus = "vat_status"
	// FieldDatesStatus holds the string denoting the dates_status field in the database.
	FieldDatesStatus = "dates_status"
	// FieldTotalsStatus holds the string denoting the totals_status field in the database.
	FieldTotalsStatus = "totals_status"
	// FieldFinalStatus holds the string denoting the final_status field in the database.
	FieldFinalStatus = "final_status"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePair holds the string denoting the pair edge name in mutations.
	EdgePair = "pair"
	// Table holds the table name of the validationsummary in the database.
	Table = "validation_summaries"
	// PairTable is the table that holds the pair relation/edge.
	PairTable = "validation_summaries"
	// PairInverseTable is the table name for the DocumentPair entity.
	// It exists in this package in order to avoid circular dependency with the "documentpair" package.
	PairInverseTable = "document_pairs"
	// PairColumn is the table column denoting the pair relation/edge.
	PairColumn = "pair_id"
)

// Columns holds all SQL columns for validationsummary fields.
var Columns = []string{
	FieldID,
	FieldPairID,
	FieldItemsStatus,
	FieldVatStatus,
	FieldDatesStatus,
	FieldTotalsStatus,
	FieldFinalStatus,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ItemsStatusValidator is a validator for the "items_status" field. It is called by the builders before save.
	ItemsStatusValidator func(string) error
	// VatStatusValidator is a validator for the "vat_status" field. It is called by the builders before save.
	VatStatusValidator func(string) error
	// DatesStatusValidator is a validator for the "dates_status" field. It is called by the builders before save.
	DatesStatusValidator func(string) error
	// TotalsStatusValidator is a validator for the "totals_status" field. It is called by the builders before save.
	TotalsStatusValidator func(string) error
	// FinalStatusValidator is a validator for the "final_status" field. It is called by the builders before save.
	FinalStatusValidator func(string) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ValidationSummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPairID orders the results by the pair_id field.
func ByPairID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPairID, opts...).ToFunc()
}

// ByItemsStatus orders the results by the items_status field.
func ByItemsStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsStatus, opts...).ToFunc()
}

// ByVatStatus orders the results by the vat_status field.
func ByVatStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatStatus, opts...).ToFunc()
}

// ByDatesStatus orders the results by the dates_status field.
func ByDatesStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDatesStatus, opts...).ToFunc()
}

// ByTotalsStatus orders the results by the totals_status field.
func ByTotalsStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalsStatus, opts...).ToFunc()
}

// ByFinalStatus orders the results by the final_status field.
func ByFinalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalStatus, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPairField orders the results by pair field.
func ByPairField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPairStep(), sql.OrderByField(field, opts...))
	}
}
func newPairStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PairInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, PairTable, PairColumn),
	)
}
