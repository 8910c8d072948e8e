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
	"github.com/petarmilev/invoice-recon/gen/ent/validationresult"
)

// ValidationResult is the model entity for the ValidationResult schema.
type ValidationResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PairID holds the value of the "pair_id" field.
	PairID uuid.UUID `json:"pair_id,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity string `json:"severity,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ValidationResultQuery when eager-loading is set.
	Edges        ValidationResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ValidationResultEdges holds the relations/edges for other nodes in the graph.
type ValidationResultEdges struct {
	// Pair holds the value of the pair edge.
	Pair *DocumentPair `json:"pair,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PairOrErr returns the Pair value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ValidationResultEdges) PairOrErr() (*DocumentPair, error) {
	if e.Pair != nil {
		return e.Pair, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentpair.Label}
	}
	return nil, &NotLoadedError{edge: "pair"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationresult.FieldCategory, validationresult.FieldMessage, validationresult.FieldSeverity:
			values[i] = new(sql.NullString)
		case validationresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case validationresult.FieldID, validationresult.FieldPairID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationResult fields.
func (_m *ValidationResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case validationresult.FieldPairID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field pair_id", values[i])
			} else if value != nil {
				_m.PairID = *value
			}
		case validationresult.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case validationresult.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case validationresult.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case validationresult.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationResult.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPair queries the "pair" edge of the ValidationResult entity.
func (_m *ValidationResult) QueryPair() *DocumentPairQuery {
	return NewValidationResultClient(_m.config).QueryPair(_m)
}

// Update returns a builder for updating this ValidationResult.
// Note that you need to call ValidationResult.Unwrap() before calling this method if this ValidationResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationResult) Update() *ValidationResultUpdateOne {
	return NewValidationResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationResult) Unwrap() *ValidationResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationResult) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pair_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PairID))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ValidationResults is a parsable slice of ValidationResult.
type ValidationResults []*ValidationResult
