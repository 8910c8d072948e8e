// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/petarmilev/invoice-recon/gen/ent/documentpair"
	"github.com/petarmilev/invoice-recon/gen/ent/validationresult"
)

// ValidationResultCreate is the builder for creating a ValidationResult entity.
type ValidationResultCreate struct {
	config
	mutation *ValidationResultMutation
	hooks    []Hook
}

// SetPairID sets the "pair_id" field.
func (_c *ValidationResultCreate) SetPairID(v uuid.UUID) *ValidationResultCreate {
	_c.mutation.SetPairID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ValidationResultCreate) SetCategory(v string) *ValidationResultCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ValidationResultCreate) SetMessage(v string) *ValidationResultCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ValidationResultCreate) SetSeverity(v string) *ValidationResultCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ValidationResultCreate) SetCreatedAt(v time.Time) *ValidationResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ValidationResultCreate) SetNillableCreatedAt(v *time.Time) *ValidationResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationResultCreate) SetID(v uuid.UUID) *ValidationResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ValidationResultCreate) SetNillableID(v *uuid.UUID) *ValidationResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPair sets the "pair" edge to the DocumentPair entity.
func (_c *ValidationResultCreate) SetPair(v *DocumentPair) *ValidationResultCreate {
	return _c.SetPairID(v.ID)
}

// Mutation returns the ValidationResultMutation object of the builder.
func (_c *ValidationResultCreate) Mutation() *ValidationResultMutation {
	return _c.mutation
}

// Save creates the ValidationResult in the database.
func (_c *ValidationResultCreate) Save(ctx context.Context) (*ValidationResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationResultCreate) SaveX(ctx context.Context) *ValidationResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := validationresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := validationresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationResultCreate) check() error {
	if _, ok := _c.mutation.PairID(); !ok {
		return &ValidationError{Name: "pair_id", err: errors.New(`ent: missing required field "ValidationResult.pair_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ValidationResult.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := validationresult.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ValidationResult.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ValidationResult.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := validationresult.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "ValidationResult.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ValidationResult.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := validationresult.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ValidationResult.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ValidationResult.created_at"`)}
	}
	if len(_c.mutation.PairIDs()) == 0 {
		return &ValidationError{Name: "pair", err: errors.New(`ent: missing required edge "ValidationResult.pair"`)}
	}
	return nil
}

func (_c *ValidationResultCreate) sqlSave(ctx context.Context) (*ValidationResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ValidationResultCreate) createSpec() (*ValidationResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationresult.Table, sqlgraph.NewFieldSpec(validationresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(validationresult.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(validationresult.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(validationresult.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(validationresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PairIDs(); len(nodes) > 0 {
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
		_node.PairID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ValidationResultCreateBulk is the builder for creating many ValidationResult entities in bulk.
type ValidationResultCreateBulk struct {
	config
	err      error
	builders []*ValidationResultCreate
}

// Save creates the ValidationResult entities in the database.
func (_c *ValidationResultCreateBulk) Save(ctx context.Context) ([]*ValidationResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ValidationResultCreateBulk) SaveX(ctx context.Context) []*ValidationResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
