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
	"github.com/petarmilev/invoice-recon/gen/ent/validationsummary"
)

// DocumentPairCreate is the builder for creating a DocumentPair entity.
type DocumentPairCreate struct {
	config
	mutation *DocumentPairMutation
	hooks    []Hook
}

// SetOrderID sets the "order_id" field.
func (_c *DocumentPairCreate) SetOrderID(v uuid.UUID) *DocumentPairCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetInvoiceID sets the "invoice_id" field.
func (_c *DocumentPairCreate) SetInvoiceID(v uuid.UUID) *DocumentPairCreate {
	_c.mutation.SetInvoiceID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentPairCreate) SetCreatedAt(v time.Time) *DocumentPairCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentPairCreate) SetNillableCreatedAt(v *time.Time) *DocumentPairCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentPairCreate) SetID(v uuid.UUID) *DocumentPairCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentPairCreate) SetNillableID(v *uuid.UUID) *DocumentPairCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddValidationIDs adds the "validations" edge to the ValidationResult entity by IDs.
func (_c *DocumentPairCreate) AddValidationIDs(ids ...uuid.UUID) *DocumentPairCreate {
	_c.mutation.AddValidationIDs(ids...)
	return _c
}

// AddValidations adds the "validations" edges to the ValidationResult entity.
func (_c *DocumentPairCreate) AddValidations(v ...*ValidationResult) *DocumentPairCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValidationIDs(ids...)
}

// SetSummaryID sets the "summary" edge to the ValidationSummary entity by ID.
func (_c *DocumentPairCreate) SetSummaryID(id uuid.UUID) *DocumentPairCreate {
	_c.mutation.SetSummaryID(id)
	return _c
}

// SetNillableSummaryID sets the "summary" edge to the ValidationSummary entity by ID if the given value is not nil.
func (_c *DocumentPairCreate) SetNillableSummaryID(id *uuid.UUID) *DocumentPairCreate {
	if id != nil {
		_c = _c.SetSummaryID(*id)
	}
	return _c
}

// SetSummary sets the "summary" edge to the ValidationSummary entity.
func (_c *DocumentPairCreate) SetSummary(v *ValidationSummary) *DocumentPairCreate {
	return _c.SetSummaryID(v.ID)
}

// Mutation returns the DocumentPairMutation object of the builder.
func (_c *DocumentPairCreate) Mutation() *DocumentPairMutation {
	return _c.mutation
}

// Save creates the DocumentPair in the database.
func (_c *DocumentPairCreate) Save(ctx context.Context) (*DocumentPair, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentPairCreate) SaveX(ctx context.Context) *DocumentPair {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentPairCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentPairCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentPairCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentpair.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documentpair.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentPairCreate) check() error {
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "DocumentPair.order_id"`)}
	}
	if _, ok := _c.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`ent: missing required field "DocumentPair.invoice_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentPair.created_at"`)}
	}
	return nil
}

func (_c *DocumentPairCreate) sqlSave(ctx context.Context) (*DocumentPair, error) {
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

func (_c *DocumentPairCreate) createSpec() (*DocumentPair, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentPair{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentpair.Table, sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(documentpair.FieldOrderID, field.TypeUUID, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.InvoiceID(); ok {
		_spec.SetField(documentpair.FieldInvoiceID, field.TypeUUID, value)
		_node.InvoiceID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentpair.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ValidationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentPairCreateBulk is the builder for creating many DocumentPair entities in bulk.
type DocumentPairCreateBulk struct {
	config
	err      error
	builders []*DocumentPairCreate
}

// Save creates the DocumentPair entities in the database.
func (_c *DocumentPairCreateBulk) Save(ctx context.Context) ([]*DocumentPair, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentPair, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentPairMutation)
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
func (_c *DocumentPairCreateBulk) SaveX(ctx context.Context) []*DocumentPair {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentPairCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentPairCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
