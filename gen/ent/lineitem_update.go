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
	"github.com/petarmilev/invoice-recon/gen/ent/document"
	"github.com/petarmilev/invoice-recon/gen/ent/lineitem"
	"github.com/petarmilev/invoice-recon/gen/ent/predicate"
)

// LineItemUpdate is the builder for updating LineItem entities.
type LineItemUpdate struct {
	config
	hooks    []Hook
	mutation *LineItemMutation
}

// Where appends a list predicates to the LineItemUpdate builder.
func (_u *LineItemUpdate) Where(ps ...predicate.LineItem) *LineItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *LineItemUpdate) SetDocumentID(v uuid.UUID) *LineItemUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableDocumentID(v *uuid.UUID) *LineItemUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LineItemUpdate) SetName(v string) *LineItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableName(v *string) *LineItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQty sets the "qty" field.
func (_u *LineItemUpdate) SetQty(v float64) *LineItemUpdate {
	_u.mutation.ResetQty()
	_u.mutation.SetQty(v)
	return _u
}

// SetNillableQty sets the "qty" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableQty(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetQty(*v)
	}
	return _u
}

// AddQty adds value to the "qty" field.
func (_u *LineItemUpdate) AddQty(v float64) *LineItemUpdate {
	_u.mutation.AddQty(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *LineItemUpdate) SetUnitPrice(v float64) *LineItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableUnitPrice(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *LineItemUpdate) AddUnitPrice(v float64) *LineItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetVatPercent sets the "vat_percent" field.
func (_u *LineItemUpdate) SetVatPercent(v float64) *LineItemUpdate {
	_u.mutation.ResetVatPercent()
	_u.mutation.SetVatPercent(v)
	return _u
}

// SetNillableVatPercent sets the "vat_percent" field if the given value is not nil.
func (_u *LineItemUpdate) SetNillableVatPercent(v *float64) *LineItemUpdate {
	if v != nil {
		_u.SetVatPercent(*v)
	}
	return _u
}

// AddVatPercent adds value to the "vat_percent" field.
func (_u *LineItemUpdate) AddVatPercent(v float64) *LineItemUpdate {
	_u.mutation.AddVatPercent(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *LineItemUpdate) SetDocument(v *Document) *LineItemUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the LineItemMutation object of the builder.
func (_u *LineItemUpdate) Mutation() *LineItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *LineItemUpdate) ClearDocument() *LineItemUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LineItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LineItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LineItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LineItemUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lineitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LineItem.name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LineItem.document"`)
	}
	return nil
}

func (_u *LineItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lineitem.Table, lineitem.Columns, sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lineitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Qty(); ok {
		_spec.SetField(lineitem.FieldQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQty(); ok {
		_spec.AddField(lineitem.FieldQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatPercent(); ok {
		_spec.SetField(lineitem.FieldVatPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatPercent(); ok {
		_spec.AddField(lineitem.FieldVatPercent, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lineitem.DocumentTable,
			Columns: []string{lineitem.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lineitem.DocumentTable,
			Columns: []string{lineitem.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LineItemUpdateOne is the builder for updating a single LineItem entity.
type LineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LineItemMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *LineItemUpdateOne) SetDocumentID(v uuid.UUID) *LineItemUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableDocumentID(v *uuid.UUID) *LineItemUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LineItemUpdateOne) SetName(v string) *LineItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableName(v *string) *LineItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQty sets the "qty" field.
func (_u *LineItemUpdateOne) SetQty(v float64) *LineItemUpdateOne {
	_u.mutation.ResetQty()
	_u.mutation.SetQty(v)
	return _u
}

// SetNillableQty sets the "qty" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableQty(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetQty(*v)
	}
	return _u
}

// AddQty adds value to the "qty" field.
func (_u *LineItemUpdateOne) AddQty(v float64) *LineItemUpdateOne {
	_u.mutation.AddQty(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *LineItemUpdateOne) SetUnitPrice(v float64) *LineItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableUnitPrice(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *LineItemUpdateOne) AddUnitPrice(v float64) *LineItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetVatPercent sets the "vat_percent" field.
func (_u *LineItemUpdateOne) SetVatPercent(v float64) *LineItemUpdateOne {
	_u.mutation.ResetVatPercent()
	_u.mutation.SetVatPercent(v)
	return _u
}

// SetNillableVatPercent sets the "vat_percent" field if the given value is not nil.
func (_u *LineItemUpdateOne) SetNillableVatPercent(v *float64) *LineItemUpdateOne {
	if v != nil {
		_u.SetVatPercent(*v)
	}
	return _u
}

// AddVatPercent adds value to the "vat_percent" field.
func (_u *LineItemUpdateOne) AddVatPercent(v float64) *LineItemUpdateOne {
	_u.mutation.AddVatPercent(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *LineItemUpdateOne) SetDocument(v *Document) *LineItemUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the LineItemMutation object of the builder.
func (_u *LineItemUpdateOne) Mutation() *LineItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *LineItemUpdateOne) ClearDocument() *LineItemUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the LineItemUpdate builder.
func (_u *LineItemUpdateOne) Where(ps ...predicate.LineItem) *LineItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LineItemUpdateOne) Select(field string, fields ...string) *LineItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LineItem entity.
func (_u *LineItemUpdateOne) Save(ctx context.Context) (*LineItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LineItemUpdateOne) SaveX(ctx context.Context) *LineItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LineItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LineItemUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lineitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LineItem.name": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LineItem.document"`)
	}
	return nil
}

func (_u *LineItemUpdateOne) sqlSave(ctx context.Context) (_node *LineItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lineitem.Table, lineitem.Columns, sqlgraph.NewFieldSpec(lineitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lineitem.FieldID)
		for _, f := range fields {
			if !lineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lineitem.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lineitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Qty(); ok {
		_spec.SetField(lineitem.FieldQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQty(); ok {
		_spec.AddField(lineitem.FieldQty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(lineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatPercent(); ok {
		_spec.SetField(lineitem.FieldVatPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatPercent(); ok {
		_spec.AddField(lineitem.FieldVatPercent, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lineitem.DocumentTable,
			Columns: []string{lineitem.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lineitem.DocumentTable,
			Columns: []string{lineitem.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LineItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
