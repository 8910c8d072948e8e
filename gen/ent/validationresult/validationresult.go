// Code generated by ent, DO NOT EDIT.

package validationresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the validationresult type in the database.
	Label = "validation_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPairID holds the string denoting the pair_id field in the database.
	FieldPairID = "pair_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePair holds the string denoting the pair edge name in mutations.
	EdgePair = "pair"
	// Table holds the table name of the validationresult in the database.
	Table = "validation_results"
	// PairTable is the table that holds the pair relation/edge.
	PairTable = "validation_results"
	// PairInverseTable is the table name for the DocumentPair entity.
	// It exists in this package in order to avoid circular dependency with the "documentpair" package.
	PairInverseTable = "document_pairs"
	// PairColumn is the table column denoting the pair relation/edge.
	PairColumn = "pair_id"
)

// Columns holds all SQL columns for validationresult fields.
var Columns = []string{
	FieldID,
	FieldPairID,
	FieldCategory,
	FieldMessage,
	FieldSeverity,
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
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// MessageValidator is a validator for the "message" field. It is called by the builders before save.
	MessageValidator func(string) error
	// SeverityValidator is a validator for the "severity" field. It is called by the builders before save.
	SeverityValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ValidationResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPairID orders the results by the pair_id field.
func ByPairID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPairID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.M2O, true, PairTable, PairColumn),
	)
}
