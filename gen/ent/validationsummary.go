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

// ValidationSummary is the model entity for the ValidationSummary schema.
type ValidationSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PairID holds the value of the "pair_id" field.
	PairID uuid.UUID `json:"pair_id,omitempty"`
	// ItemsStatus holds the value of the "items_status" field.
	ItemsStatus string `json:"items_status,omitempty"`
	// VatStatus holds the value of the "vat_status" field.
	VatStatus string `json:"vat_status,omitempty"`
	// DatesStatus holds the value of the "dates_status" field.
	DatesStatus string `json:"dates_status,omitempty"`
	// TotalsStatus holds the value of the "totals_status" field.
	TotalsStatus string `json:"totals_status,omitempty"`
	// FinalStatus holds the value of the "final_status" field.
	FinalStatus string `json:"final_status,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ValidationSummaryQuery when eager-loading is set.
	Edges        ValidationSummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ValidationSummaryEdges holds the relations/edges for other nodes in the graph.
type ValidationSummaryEdges struct {
	// Pair holds the value of the pair edge.
	Pair *DocumentPair `json:"pair,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PairOrErr returns the Pair value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ValidationSummaryEdges) PairOrErr() (*DocumentPair, error) {
	if e.Pair != nil {
		return e.Pair, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentpair.Label}
	}
	return nil, &NotLoadedError{edge: "pair"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationsummary.FieldItemsStatus, validationsummary.FieldVatStatus, validationsummary.FieldDatesStatus, validationsummary.FieldTotalsStatus, validationsummary.FieldFinalStatus:
			values[i] = new(sql.NullString)
		case validationsummary.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case validationsummary.FieldID, validationsummary.FieldPairID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationSummary fields.
func (_m *ValidationSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationsummary.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case validationsummary.FieldPairID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field pair_id", values[i])
			} else if value != nil {
				_m.PairID = *value
			}
		case validationsummary.FieldItemsStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field items_status", values[i])
			} else if value.Valid {
				_m.ItemsStatus = value.String
			}
		case validationsummary.FieldVatStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vat_status", values[i])
			} else if value.Valid {
				_m.VatStatus = value.String
			}
		case validationsummary.FieldDatesStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dates_status", values[i])
			} else if value.Valid {
				_m.DatesStatus = value.String
			}
		case validationsummary.FieldTotalsStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field totals_status", values[i])
			} else if value.Valid {
				_m.TotalsStatus = value.String
			}
		case validationsummary.FieldFinalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_status", values[i])
			} else if value.Valid {
				_m.FinalStatus = value.String
			}
		case validationsummary.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationSummary.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPair queries the "pair" edge of the ValidationSummary entity.
func (_m *ValidationSummary) QueryPair() *DocumentPairQuery {
	return NewValidationSummaryClient(_m.config).QueryPair(_m)
}

// Update returns a builder for updating this ValidationSummary.
// Note that you need to call ValidationSummary.Unwrap() before calling this method if this ValidationSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationSummary) Update() *ValidationSummaryUpdateOne {
	return NewValidationSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationSummary) Unwrap() *ValidationSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationSummary) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pair_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PairID))
	builder.WriteString(", ")
	builder.WriteString("items_status=")
	builder.WriteString(_m.ItemsStatus)
	builder.WriteString(", ")
	builder.WriteString("vat_status=")
	builder.WriteString(_m.VatStatus)
	builder.WriteString(", ")
	builder.WriteString("dates_status=")
	builder.WriteString(_m.DatesStatus)
	builder.WriteString(", ")
	builder.WriteString("totals_status=")
	builder.WriteString(_m.TotalsStatus)
	builder.WriteString(", ")
	builder.WriteString("final_status=")
	builder.WriteString(_m.FinalStatus)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ValidationSummaries is a parsable slice of ValidationSummary.
type ValidationSummaries []*ValidationSummary
