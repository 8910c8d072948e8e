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
	"github.com/petarmilev/invoice-recon/gen/ent/validationresult"
)

// ValidationResultUpdate is the builder for updating ValidationResult entities.
type ValidationResultUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationResultMutation
}

// Where appends a list predicates to the ValidationResultUpdate builder.
func (_u *ValidationResultUpdate) Where(ps ...predicate.ValidationResult) *ValidationResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPairID sets the "pair_id" field.
func (_u *ValidationResultUpdate) SetPairID(v uuid.UUID) *ValidationResultUpdate {
	_u.mutation.SetPairID(v)
	return _u
}

// SetNillablePairID sets the "pair_id" field if the given value is not nil.
func (_u *ValidationResultUpdate) SetNillablePairID(v *uuid.UUID) *ValidationResultUpdate {
	if v != nil {
		_u.SetPairID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ValidationResultUpdate) SetCategory(v string) *ValidationResultUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ValidationResultUpdate) SetNillableCategory(v *string) *ValidationResultUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ValidationResultUpdate) SetMessage(v string) *ValidationResultUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ValidationResultUpdate) SetNillableMessage(v *string) *ValidationResultUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ValidationResultUpdate) SetSeverity(v string) *ValidationResultUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ValidationResultUpdate) SetNillableSeverity(v *string) *ValidationResultUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ValidationResultUpdate) SetCreatedAt(v time.Time) *ValidationResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ValidationResultUpdate) SetNillableCreatedAt(v *time.Time) *ValidationResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPair sets the "pair" edge to the DocumentPair entity.
func (_u *ValidationResultUpdate) SetPair(v *DocumentPair) *ValidationResultUpdate {
	return _u.SetPairID(v.ID)
}

// Mutation returns the ValidationResultMutation object of the builder.
func (_u *ValidationResultUpdate) Mutation() *ValidationResultMutation {
	return _u.mutation
}

// ClearPair clears the "pair" edge to the DocumentPair entity.
func (_u *ValidationResultUpdate) ClearPair() *ValidationResultUpdate {
	_u.mutation.ClearPair()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationResultUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := validationresult.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ValidationResult.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := validationresult.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ValidationResult.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := validationresult.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ValidationResult.severity": %w`, err)}
		}
	}
	if _u.mutation.PairCleared() && len(_u.mutation.PairIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationResult.pair"`)
	}
	return nil
}

func (_u *ValidationResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationresult.Table, validationresult.Columns, sqlgraph.NewFieldSpec(validationresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(validationresult.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(validationresult.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(validationresult.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(validationresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PairCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationresult.PairTable,
			Columns: []string{validationresult.PairColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PairIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationresult.PairTable,
			Columns: []string{validationresult.PairColumn},
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
			err = &NotFoundError{validationresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationResultUpdateOne is the builder for updating a single ValidationResult entity.
type ValidationResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationResultMutation
}

// SetPairID sets the "pair_id" field.
func (_u *ValidationResultUpdateOne) SetPairID(v uuid.UUID) *ValidationResultUpdateOne {
	_u.mutation.SetPairID(v)
	return _u
}

// SetNillablePairID sets the "pair_id" field if the given value is not nil.
func (_u *ValidationResultUpdateOne) SetNillablePairID(v *uuid.UUID) *ValidationResultUpdateOne {
	if v != nil {
		_u.SetPairID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ValidationResultUpdateOne) SetCategory(v string) *ValidationResultUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ValidationResultUpdateOne) SetNillableCategory(v *string) *ValidationResultUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ValidationResultUpdateOne) SetMessage(v string) *ValidationResultUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ValidationResultUpdateOne) SetNillableMessage(v *string) *ValidationResultUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ValidationResultUpdateOne) SetSeverity(v string) *ValidationResultUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ValidationResultUpdateOne) SetNillableSeverity(v *string) *ValidationResultUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ValidationResultUpdateOne) SetCreatedAt(v time.Time) *ValidationResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ValidationResultUpdateOne) SetNillableCreatedAt(v *time.Time) *ValidationResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPair sets the "pair" edge to the DocumentPair entity.
func (_u *ValidationResultUpdateOne) SetPair(v *DocumentPair) *ValidationResultUpdateOne {
	return _u.SetPairID(v.ID)
}

// Mutation returns the ValidationResultMutation object of the builder.
func (_u *ValidationResultUpdateOne) Mutation() *ValidationResultMutation {
	return _u.mutation
}

// ClearPair clears the "pair" edge to the DocumentPair entity.
func (_u *ValidationResultUpdateOne) ClearPair() *ValidationResultUpdateOne {
	_u.mutation.ClearPair()
	return _u
}

// Where appends a list predicates to the ValidationResultUpdate builder.
func (_u *ValidationResultUpdateOne) Where(ps ...predicate.ValidationResult) *ValidationResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationResultUpdateOne) Select(field string, fields ...string) *ValidationResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationResult entity.
func (_u *ValidationResultUpdateOne) Save(ctx context.Context) (*ValidationResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationResultUpdateOne) SaveX(ctx context.Context) *ValidationResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationResultUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := validationresult.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ValidationResult.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := validationresult.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ValidationResult.message": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := validationresult.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ValidationResult.severity": %w`, err)}
		}
	}
	if _u.mutation.PairCleared() && len(_u.mutation.PairIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationResult.pair"`)
	}
	return nil
}

func (_u *ValidationResultUpdateOne) sqlSave(ctx context.Context) (_node *ValidationResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationresult.Table, validationresult.Columns, sqlgraph.NewFieldSpec(validationresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationresult.FieldID)
		for _, f := range fields {
			if !validationresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationresult.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(validationresult.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(validationresult.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(validationresult.FieldSeverity, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(validationresult.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PairCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationresult.PairTable,
			Columns: []string{validationresult.PairColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PairIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationresult.PairTable,
			Columns: []string{validationresult.PairColumn},
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
	_node = &ValidationResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
