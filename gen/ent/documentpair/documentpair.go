// Code generated by ent, DO NOT EDIT.

package documentpair

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the documentpair type in the database.
	Label = "document_pair"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrderID holds the string denoting the order_id field in the database.
	FieldOrderID = "order_id"
	// FieldInvoiceID holds the string denoting the invoice_id field in the database.
	FieldInvoiceID = "invoice_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeValidations holds the string denoting the validations edge name in mutations.
	EdgeValidations = "validations"
	// EdgeSummary holds the string denoting the summary edge name in mutations.
	EdgeSummary = "summary"
	// Table holds the table name of the documentpair in the database.
	Table = "document_pairs"
	// ValidationsTable is the table that holds the validations relation/edge.
	ValidationsTable = "validation_results"
	// ValidationsInverseTable is the table name for the ValidationResult entity.
	// It exists in this package in order to avoid circular dependency with the "validationresult" package.
	ValidationsInverseTable = "validation_results"
	// ValidationsColumn is the table column denoting the validations relation/edge.
	ValidationsColumn = "pair_id"
	// SummaryTable is the table that holds the summary relation/edge.
	SummaryTable = "validation_summaries"
	// SummaryInverseTable is the table name for the ValidationSummary entity.
	// It exists in this package in order to avoid circular dependency with the "validationsummary" package.
	SummaryInverseTable = "validation_summaries"
	// SummaryColumn is the table column denoting the summary relation/edge.
	SummaryColumn = "pair_id"
)

// Columns holds all SQL columns for documentpair fields.
var Columns = []string{
	FieldID,
	FieldOrderID,
	FieldInvoiceID,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DocumentPair queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrderID orders the results by the order_id field.
func ByOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderID, opts...).ToFunc()
}

// ByInvoiceID orders the results by the invoice_id field.
func ByInvoiceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByValidationsCount orders the results by validations count.
func ByValidationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newValidationsStep(), opts...)
	}
}

// ByValidations orders the results by validations terms.
func ByValidations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newValidationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySummaryField orders the results by summary field.
func BySummaryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummaryStep(), sql.OrderByField(field, opts...))
	}
}
func newValidationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ValidationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ValidationsTable, ValidationsColumn),
	)
}
func newSummaryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummaryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SummaryTable, SummaryColumn),
	)
}
