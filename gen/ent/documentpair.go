// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/petarmilev/invoice-recon/gen/ent/documentpair"
	"github.com/petarmilev/invoice-recon/gen/ent/validationsummary"
)

// DocumentPair is the model entity for the DocumentPair schema.
type DocumentPair struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID uuid.UUID `json:"order_id,omitempty"`
	// InvoiceID holds the value of the "invoice_id" field.
	InvoiceID uuid.UUID `json:"invoice_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentPairQuery when eager-loading is set.
	Edges        DocumentPairEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentPairEdges holds the relations/edges for other nodes in the graph.
type DocumentPairEdges struct {
	// Validations holds the value of the validations edge.
	Validations []*ValidationResult `json:"validations,omitempty"`
	// Summary holds the value of the summary edge.
	Summary *ValidationSummary `json:"summary,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ValidationsOrErr returns the Validations value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentPairEdges) ValidationsOrErr() ([]*ValidationResult, error) {
	if e.loadedTypes[0] {
		return e.Validations, nil
	}
	return nil, &NotLoadedError{edge: "validations"}
}

// SummaryOrErr returns the Summary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentPairEdges) SummaryOrErr() (*ValidationSummary, error) {
	if e.Summary != nil {
		return e.Summary, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: validationsummary.Label}
	}
	return nil, &NotLoadedError{edge: "summary"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentPair) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentpair.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case documentpair.FieldID, documentpair.FieldOrderID, documentpair.FieldInvoiceID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentPair fields.
func (_m *DocumentPair) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentpair.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documentpair.FieldOrderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value != nil {
				_m.OrderID = *value
			}
		case documentpair.FieldInvoiceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_id", values[i])
			} else if value != nil {
				_m.InvoiceID = *value
			}
		case documentpair.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentPair.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentPair) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryValidations queries the "validations" edge of the DocumentPair entity.
func (_m *DocumentPair) QueryValidations() *ValidationResultQuery {
	return NewDocumentPairClient(_m.config).QueryValidations(_m)
}

// QuerySummary queries the "summary" edge of the DocumentPair entity.
func (_m *DocumentPair) QuerySummary() *ValidationSummaryQuery {
	return NewDocumentPairClient(_m.config).QuerySummary(_m)
}

// Update returns a builder for updating this DocumentPair.
// Note that you need to call DocumentPair.Unwrap() before calling this method if this DocumentPair
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentPair) Update() *DocumentPairUpdateOne {
	return NewDocumentPairClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentPair entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentPair) Unwrap() *DocumentPair {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentPair is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentPair) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentPair(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("order_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderID))
	builder.WriteString(", ")
	builder.WriteString("invoice_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvoiceID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentPairs is a parsable slice of DocumentPair.
type DocumentPairs []*DocumentPair
