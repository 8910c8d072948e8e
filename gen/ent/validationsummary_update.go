// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/petarmilev/invoice-recon/gen/ent/documentpair"
	"github.com/petarmilev/invoice-recon/gen/ent/predicate"
	"github.com/petarmilev/invoice-recon/gen/ent/validationsummary"
)

// ValidationSummaryUpdate is the builder for updating ValidationSummary entities.
type ValidationSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationSummaryMutation
}

// Where appends a list predicates to the ValidationSummaryUpdate builder.
func (_u *ValidationSummaryUpdate) Where(ps ...predicate.ValidationSummary) *ValidationSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPairID sets the "pair_id" field.
func (_u *ValidationSummaryUpdate) SetPairID(v uuid.UUID) *ValidationSummaryUpdate {
	_u.mutation.SetPairID(v)
	return _u
}

// SetNillablePairID sets the "pair_id" field if the given value is not nil.
func (_u *ValidationSummaryUpdate) SetNillablePairID(v *uuid.UUID) *ValidationSummaryUpdate {
	if v != nil {
		_u.SetPairID(*v)
	}
	return _u
}

// SetItemsStatus sets the "items_status" field.
func (_u *ValidationSummaryUpdate) SetItemsStatus(v string) *ValidationSummaryUpdate {
	_u.mutation.SetItemsStatus(v)
	return _u
}

// SetNillableItemsStatus sets the "items_status" field if the given value is not nil.
func (_u *ValidationSummaryUpdate) SetNillableItemsStatus(v *string) *ValidationSummaryUpdate {
	if v != nil {
		_u.SetItemsStatus(*v)
	}
	return _u
}

// SetVatStatus sets the "vat_status" field.
func (_u *ValidationSummaryUpdate) SetVatStatus(v string) *ValidationSummaryUpdate {
	_u.mutation.SetVatStatus(v)
	return _u
}

// SetNillableVatStatus sets the "vat_status" field if the given value is not nil.
func (_u *ValidationSummaryUpdate) SetNillableVatStatus(v *string) *ValidationSummaryUpdate {
	if v != nil {
		_u.SetVatStatus(*v)
	}
	return _u
}

// SetDatesStatus sets the "dates_status" field.
func (_u *ValidationSummaryUpdate) SetDatesStatus(v string) *ValidationSummaryUpdate {
	_u.mutation.SetDatesStatus(v)
	return _u
}

// SetNillableDatesStatus sets the "dates_status" field if the given value is not nil.
func (_u *ValidationSummaryUpdate) SetNillableDatesStatus(v *string) *ValidationSummaryUpdate {
	if v != nil {
		_u.SetDatesStatus(*v)
	}
	return _u
}

// SetTotalsStatus sets the "totals_status" field.
func (_u *ValidationSummaryUpdate) SetTotalsStatus(v string) *ValidationSummaryUpdate {
	_u.mutation.SetTotalsStatus(v)
	return _u
}

// SetNillableTotalsStatus sets the "totals_status" field if the given value is not nil.
func (_u *ValidationSummaryUpdate) SetNillableTotalsStatus(v *string) *ValidationSummaryUpdate {
	if v != nil {
		_u.SetTotalsStatus(*v)
	}
	return _u
}

// SetFinalStatus sets the "final_status" field.
func (_u *ValidationSummaryUpdate) SetFinalStatus(v string) *ValidationSummaryUpdate {
	_u.mutation.SetFinalStatus(v)
	return _u
}

// SetNillableFinalStatus sets the "final_status" field if the given value is not nil.
func (_u *ValidationSummaryUpdate) SetNillableFinalStatus(v *string) *ValidationSummaryUpdate {
	if v != nil {
		_u.SetFinalStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ValidationSummaryUpdate) SetUpdatedAt(v time.Time) *ValidationSummaryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPair sets the "pair" edge to the DocumentPair entity.
func (_u *ValidationSummaryUpdate) SetPair(v *DocumentPair) *ValidationSummaryUpdate {
	return _u.SetPairID(v.ID)
}

// Mutation returns the ValidationSummaryMutation object of the builder.
func (_u *ValidationSummaryUpdate) Mutation() *ValidationSummaryMutation {
	return _u.mutation
}

// ClearPair clears the "pair" edge to the DocumentPair entity.
func (_u *ValidationSummaryUpdate) ClearPair() *ValidationSummaryUpdate {
	_u.mutation.ClearPair()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationSummaryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ValidationSummaryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := validationsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationSummaryUpdate) check() error {
	if v, ok := _u.mutation.ItemsStatus(); ok {
		if err := validationsummary.ItemsStatusValidator(v); err != nil {
			return &ValidationError{Name: "items_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.items_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VatStatus(); ok {
		if err := validationsummary.VatStatusValidator(v); err != nil {
			return &ValidationError{Name: "vat_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.vat_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatesStatus(); ok {
		if err := validationsummary.DatesStatusValidator(v); err != nil {
			return &ValidationError{Name: "dates_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.dates_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalsStatus(); ok {
		if err := validationsummary.TotalsStatusValidator(v); err != nil {
			return &ValidationError{Name: "totals_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.totals_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinalStatus(); ok {
		if err := validationsummary.FinalStatusValidator(v); err != nil {
			return &ValidationError{Name: "final_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.final_status": %w`, err)}
		}
	}
	if _u.mutation.PairCleared() && len(_u.mutation.PairIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationSummary.pair"`)
	}
	return nil
}

func (_u *ValidationSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationsummary.Table, validationsummary.Columns, sqlgraph.NewFieldSpec(validationsummary.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemsStatus(); ok {
		_spec.SetField(validationsummary.FieldItemsStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.VatStatus(); ok {
		_spec.SetField(validationsummary.FieldVatStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatesStatus(); ok {
		_spec.SetField(validationsummary.FieldDatesStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalsStatus(); ok {
		_spec.SetField(validationsummary.FieldTotalsStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalStatus(); ok {
		_spec.SetField(validationsummary.FieldFinalStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(validationsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PairCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   validationsummary.PairTable,
			Columns: []string{validationsummary.PairColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PairIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   validationsummary.PairTable,
			Columns: []string{validationsummary.PairColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationSummaryUpdateOne is the builder for updating a single ValidationSummary entity.
type ValidationSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationSummaryMutation
}

// SetPairID sets the "pair_id" field.
func (_u *ValidationSummaryUpdateOne) SetPairID(v uuid.UUID) *ValidationSummaryUpdateOne {
	_u.mutation.SetPairID(v)
	return _u
}

// SetNillablePairID sets the "pair_id" field if the given value is not nil.
func (_u *ValidationSummaryUpdateOne) SetNillablePairID(v *uuid.UUID) *ValidationSummaryUpdateOne {
	if v != nil {
		_u.SetPairID(*v)
	}
	return _u
}

// SetItemsStatus sets the "items_status" field.
func (_u *ValidationSummaryUpdateOne) SetItemsStatus(v string) *ValidationSummaryUpdateOne {
	_u.mutation.SetItemsStatus(v)
	return _u
}

// SetNillableItemsStatus sets the "items_status" field if the given value is not nil.
func (_u *ValidationSummaryUpdateOne) SetNillableItemsStatus(v *string) *ValidationSummaryUpdateOne {
	if v != nil {
		_u.SetItemsStatus(*v)
	}
	return _u
}

// SetVatStatus sets the "vat_status" field.
func (_u *ValidationSummaryUpdateOne) SetVatStatus(v string) *ValidationSummaryUpdateOne {
	_u.mutation.SetVatStatus(v)
	return _u
}

// SetNillableVatStatus sets the "vat_status" field if the given value is not nil.
func (_u *ValidationSummaryUpdateOne) SetNillableVatStatus(v *string) *ValidationSummaryUpdateOne {
	if v != nil {
		_u.SetVatStatus(*v)
	}
	return _u
}

// SetDatesStatus sets the "dates_status" field.
func (_u *ValidationSummaryUpdateOne) SetDatesStatus(v string) *ValidationSummaryUpdateOne {
	_u.mutation.SetDatesStatus(v)
	return _u
}

// SetNillableDatesStatus sets the "dates_status" field if the given value is not nil.
func (_u *ValidationSummaryUpdateOne) SetNillableDatesStatus(v *string) *ValidationSummaryUpdateOne {
	if v != nil {
		_u.SetDatesStatus(*v)
	}
	return _u
}

// SetTotalsStatus sets the "totals_status" field.
func (_u *ValidationSummaryUpdateOne) SetTotalsStatus(v string) *ValidationSummaryUpdateOne {
	_u.mutation.SetTotalsStatus(v)
	return _u
}

// SetNillableTotalsStatus sets the "totals_status" field if the given value is not nil.
func (_u *ValidationSummaryUpdateOne) SetNillableTotalsStatus(v *string) *ValidationSummaryUpdateOne {
	if v != nil {
		_u.SetTotalsStatus(*v)
	}
	return _u
}

// SetFinalStatus sets the "final_status" field.
func (_u *ValidationSummaryUpdateOne) SetFinalStatus(v string) *ValidationSummaryUpdateOne {
	_u.mutation.SetFinalStatus(v)
	return _u
}

// SetNillableFinalStatus sets the "final_status" field if the given value is not nil.
func (_u *ValidationSummaryUpdateOne) SetNillableFinalStatus(v *string) *ValidationSummaryUpdateOne {
	if v != nil {
		_u.SetFinalStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ValidationSummaryUpdateOne) SetUpdatedAt(v time.Time) *ValidationSummaryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPair sets the "pair" edge to the DocumentPair entity.
func (_u *ValidationSummaryUpdateOne) SetPair(v *DocumentPair) *ValidationSummaryUpdateOne {
	return _u.SetPairID(v.ID)
}

// Mutation returns the ValidationSummaryMutation object of the builder.
func (_u *ValidationSummaryUpdateOne) Mutation() *ValidationSummaryMutation {
	return _u.mutation
}

// ClearPair clears the "pair" edge to the DocumentPair entity.
func (_u *ValidationSummaryUpdateOne) ClearPair() *ValidationSummaryUpdateOne {
	_u.mutation.ClearPair()
	return _u
}

// Where appends a list predicates to the ValidationSummaryUpdate builder.
func (_u *ValidationSummaryUpdateOne) Where(ps ...predicate.ValidationSummary) *ValidationSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationSummaryUpdateOne) Select(field string, fields ...string) *ValidationSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationSummary entity.
func (_u *ValidationSummaryUpdateOne) Save(ctx context.Context) (*ValidationSummary, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationSummaryUpdateOne) SaveX(ctx context.Context) *ValidationSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ValidationSummaryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := validationsummary.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationSummaryUpdateOne) check() error {
	if v, ok := _u.mutation.ItemsStatus(); ok {
		if err := validationsummary.ItemsStatusValidator(v); err != nil {
			return &ValidationError{Name: "items_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.items_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VatStatus(); ok {
		if err := validationsummary.VatStatusValidator(v); err != nil {
			return &ValidationError{Name: "vat_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.vat_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DatesStatus(); ok {
		if err := validationsummary.DatesStatusValidator(v); err != nil {
			return &ValidationError{Name: "dates_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.dates_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalsStatus(); ok {
		if err := validationsummary.TotalsStatusValidator(v); err != nil {
			return &ValidationError{Name: "totals_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.totals_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinalStatus(); ok {
		if err := validationsummary.FinalStatusValidator(v); err != nil {
			return &ValidationError{Name: "final_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.final_status": %w`, err)}
		}
	}
	if _u.mutation.PairCleared() && len(_u.mutation.PairIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationSummary.pair"`)
	}
	return nil
}

func (_u *ValidationSummaryUpdateOne) sqlSave(ctx context.Context) (_node *ValidationSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationsummary.Table, validationsummary.Columns, sqlgraph.NewFieldSpec(validationsummary.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationsummary.FieldID)
		for _, f := range fields {
			if !validationsummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationsummary.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemsStatus(); ok {
		_spec.SetField(validationsummary.FieldItemsStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.VatStatus(); ok {
		_spec.SetField(validationsummary.FieldVatStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.DatesStatus(); ok {
		_spec.SetField(validationsummary.FieldDatesStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalsStatus(); ok {
		_spec.SetField(validationsummary.FieldTotalsStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalStatus(); ok {
		_spec.SetField(validationsummary.FieldFinalStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(validationsummary.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PairCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   validationsummary.PairTable,
			Columns: []string{validationsummary.PairColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PairIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   validationsummary.PairTable,
			Columns: []string{validationsummary.PairColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ValidationSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationsummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
