// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/petarmilev/invoice-recon/gen/ent/documentpair"
	"github.com/petarmilev/invoice-recon/gen/ent/predicate"
	"github.com/petarmilev/invoice-recon/gen/ent/validationresult"
	"github.com/petarmilev/invoice-recon/gen/ent/validationsummary"
)

// DocumentPairUpdate is the builder for updating DocumentPair entities.
type DocumentPairUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentPairMutation
}

// Where appends a list predicates to the DocumentPairUpdate builder.
func (_u *DocumentPairUpdate) Where(ps ...predicate.DocumentPair) *DocumentPairUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *DocumentPairUpdate) SetOrderID(v uuid.UUID) *DocumentPairUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *DocumentPairUpdate) SetNillableOrderID(v *uuid.UUID) *DocumentPairUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *DocumentPairUpdate) SetInvoiceID(v uuid.UUID) *DocumentPairUpdate {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *DocumentPairUpdate) SetNillableInvoiceID(v *uuid.UUID) *DocumentPairUpdate {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// AddValidationIDs adds the "validations" edge to the ValidationResult entity by IDs.
func (_u *DocumentPairUpdate) AddValidationIDs(ids ...uuid.UUID) *DocumentPairUpdate {
	_u.mutation.AddValidationIDs(ids...)
	return _u
}

// AddValidations adds the "validations" edges to the ValidationResult entity.
func (_u *DocumentPairUpdate) AddValidations(v ...*ValidationResult) *DocumentPairUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationIDs(ids...)
}

// SetSummaryID sets the "summary" edge to the ValidationSummary entity by ID.
func (_u *DocumentPairUpdate) SetSummaryID(id uuid.UUID) *DocumentPairUpdate {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the ValidationSummary entity by ID if the given value is not nil.
func (_u *DocumentPairUpdate) SetNillableSummaryID(id *uuid.UUID) *DocumentPairUpdate {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the ValidationSummary entity.
func (_u *DocumentPairUpdate) SetSummary(v *ValidationSummary) *DocumentPairUpdate {
	return _u.SetSummaryID(v.ID)
}

// Mutation returns the DocumentPairMutation object of the builder.
func (_u *DocumentPairUpdate) Mutation() *DocumentPairMutation {
	return _u.mutation
}

// ClearValidations clears all "validations" edges to the ValidationResult entity.
func (_u *DocumentPairUpdate) ClearValidations() *DocumentPairUpdate {
	_u.mutation.ClearValidations()
	return _u
}

// RemoveValidationIDs removes the "validations" edge to ValidationResult entities by IDs.
func (_u *DocumentPairUpdate) RemoveValidationIDs(ids ...uuid.UUID) *DocumentPairUpdate {
	_u.mutation.RemoveValidationIDs(ids...)
	return _u
}

// RemoveValidations removes "validations" edges to ValidationResult entities.
func (_u *DocumentPairUpdate) RemoveValidations(v ...*ValidationResult) *DocumentPairUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationIDs(ids...)
}

// ClearSummary clears the "summary" edge to the ValidationSummary entity.
func (_u *DocumentPairUpdate) ClearSummary() *DocumentPairUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentPairUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentPairUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentPairUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentPairUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DocumentPairUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(documentpair.Table, documentpair.Columns, sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(documentpair.FieldOrderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.InvoiceID(); ok {
		_spec.SetField(documentpair.FieldInvoiceID, field.TypeUUID, value)
	}
	if _u.mutation.ValidationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentpair.ValidationsTable,
			Columns: []string{documentpair.ValidationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationsIDs(); len(nodes) > 0 && !_u.mutation.ValidationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentpair.ValidationsTable,
			Columns: []string{documentpair.ValidationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentpair.ValidationsTable,
			Columns: []string{documentpair.ValidationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummaryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentpair.SummaryTable,
			Columns: []string{documentpair.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationsummary.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentpair.SummaryTable,
			Columns: []string{documentpair.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationsummary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentpair.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentPairUpdateOne is the builder for updating a single DocumentPair entity.
type DocumentPairUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentPairMutation
}

// SetOrderID sets the "order_id" field.
func (_u *DocumentPairUpdateOne) SetOrderID(v uuid.UUID) *DocumentPairUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *DocumentPairUpdateOne) SetNillableOrderID(v *uuid.UUID) *DocumentPairUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetInvoiceID sets the "invoice_id" field.
func (_u *DocumentPairUpdateOne) SetInvoiceID(v uuid.UUID) *DocumentPairUpdateOne {
	_u.mutation.SetInvoiceID(v)
	return _u
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (_u *DocumentPairUpdateOne) SetNillableInvoiceID(v *uuid.UUID) *DocumentPairUpdateOne {
	if v != nil {
		_u.SetInvoiceID(*v)
	}
	return _u
}

// AddValidationIDs adds the "validations" edge to the ValidationResult entity by IDs.
func (_u *DocumentPairUpdateOne) AddValidationIDs(ids ...uuid.UUID) *DocumentPairUpdateOne {
	_u.mutation.AddValidationIDs(ids...)
	return _u
}

// AddValidations adds the "validations" edges to the ValidationResult entity.
func (_u *DocumentPairUpdateOne) AddValidations(v ...*ValidationResult) *DocumentPairUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddValidationIDs(ids...)
}

// SetSummaryID sets the "summary" edge to the ValidationSummary entity by ID.
func (_u *DocumentPairUpdateOne) SetSummaryID(id uuid.UUID) *DocumentPairUpdateOne {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the ValidationSummary entity by ID if the given value is not nil.
func (_u *DocumentPairUpdateOne) SetNillableSummaryID(id *uuid.UUID) *DocumentPairUpdateOne {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the ValidationSummary entity.
func (_u *DocumentPairUpdateOne) SetSummary(v *ValidationSummary) *DocumentPairUpdateOne {
	return _u.SetSummaryID(v.ID)
}

// Mutation returns the DocumentPairMutation object of the builder.
func (_u *DocumentPairUpdateOne) Mutation() *DocumentPairMutation {
	return _u.mutation
}

// ClearValidations clears all "validations" edges to the ValidationResult entity.
func (_u *DocumentPairUpdateOne) ClearValidations() *DocumentPairUpdateOne {
	_u.mutation.ClearValidations()
	return _u
}

// RemoveValidationIDs removes the "validations" edge to ValidationResult entities by IDs.
func (_u *DocumentPairUpdateOne) RemoveValidationIDs(ids ...uuid.UUID) *DocumentPairUpdateOne {
	_u.mutation.RemoveValidationIDs(ids...)
	return _u
}

// RemoveValidations removes "validations" edges to ValidationResult entities.
func (_u *DocumentPairUpdateOne) RemoveValidations(v ...*ValidationResult) *DocumentPairUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveValidationIDs(ids...)
}

// ClearSummary clears the "summary" edge to the ValidationSummary entity.
func (_u *DocumentPairUpdateOne) ClearSummary() *DocumentPairUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// Where appends a list predicates to the DocumentPairUpdate builder.
func (_u *DocumentPairUpdateOne) Where(ps ...predicate.DocumentPair) *DocumentPairUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentPairUpdateOne) Select(field string, fields ...string) *DocumentPairUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentPair entity.
func (_u *DocumentPairUpdateOne) Save(ctx context.Context) (*DocumentPair, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentPairUpdateOne) SaveX(ctx context.Context) *DocumentPair {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentPairUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentPairUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DocumentPairUpdateOne) sqlSave(ctx context.Context) (_node *DocumentPair, err error) {
	_spec := sqlgraph.NewUpdateSpec(documentpair.Table, documentpair.Columns, sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentPair.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentpair.FieldID)
		for _, f := range fields {
			if !documentpair.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentpair.FieldID {
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
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(documentpair.FieldOrderID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.InvoiceID(); ok {
		_spec.SetField(documentpair.FieldInvoiceID, field.TypeUUID, value)
	}
	if _u.mutation.ValidationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentpair.ValidationsTable,
			Columns: []string{documentpair.ValidationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedValidationsIDs(); len(nodes) > 0 && !_u.mutation.ValidationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentpair.ValidationsTable,
			Columns: []string{documentpair.ValidationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ValidationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentpair.ValidationsTable,
			Columns: []string{documentpair.ValidationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummaryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentpair.SummaryTable,
			Columns: []string{documentpair.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationsummary.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentpair.SummaryTable,
			Columns: []string{documentpair.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationsummary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentPair{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentpair.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
