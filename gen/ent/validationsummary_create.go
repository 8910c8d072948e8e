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
	"github.com/petarmilev/invoice-recon/gen/ent/validationsummary"
)

// ValidationSummaryCreate is the builder for creating a ValidationSummary entity.
type ValidationSummaryCreate struct {
	config
	mutation *ValidationSummaryMutation
	hooks    []Hook
}

// SetPairID sets the "pair_id" field.
func (_c *ValidationSummaryCreate) SetPairID(v uuid.UUID) *ValidationSummaryCreate {
	_c.mutation.SetPairID(v)
	return _c
}

// SetItemsStatus sets the "items_status" field.
func (_c *ValidationSummaryCreate) SetItemsStatus(v string) *ValidationSummaryCreate {
	_c.mutation.SetItemsStatus(v)
	return _c
}

// SetVatStatus sets the "vat_status" field.
func (_c *ValidationSummaryCreate) SetVatStatus(v string) *ValidationSummaryCreate {
	_c.mutation.SetVatStatus(v)
	return _c
}

// SetDatesStatus sets the "dates_status" field.
func (_c *ValidationSummaryCreate) SetDatesStatus(v string) *ValidationSummaryCreate {
	_c.mutation.SetDatesStatus(v)
	return _c
}

// SetTotalsStatus sets the "totals_status" field.
func (_c *ValidationSummaryCreate) SetTotalsStatus(v string) *ValidationSummaryCreate {
	_c.mutation.SetTotalsStatus(v)
	return _c
}

// SetFinalStatus sets the "final_status" field.
func (_c *ValidationSummaryCreate) SetFinalStatus(v string) *ValidationSummaryCreate {
	_c.mutation.SetFinalStatus(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ValidationSummaryCreate) SetUpdatedAt(v time.Time) *ValidationSummaryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ValidationSummaryCreate) SetNillableUpdatedAt(v *time.Time) *ValidationSummaryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationSummaryCreate) SetID(v uuid.UUID) *ValidationSummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ValidationSummaryCreate) SetNillableID(v *uuid.UUID) *ValidationSummaryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPair sets the "pair" edge to the DocumentPair entity.
func (_c *ValidationSummaryCreate) SetPair(v *DocumentPair) *ValidationSummaryCreate {
	return _c.SetPairID(v.ID)
}

// Mutation returns the ValidationSummaryMutation object of the builder.
func (_c *ValidationSummaryCreate) Mutation() *ValidationSummaryMutation {
	return _c.mutation
}

// Save creates the ValidationSummary in the database.
func (_c *ValidationSummaryCreate) Save(ctx context.Context) (*ValidationSummary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationSummaryCreate) SaveX(ctx context.Context) *ValidationSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationSummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationSummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationSummaryCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := validationsummary.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := validationsummary.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationSummaryCreate) check() error {
	if _, ok := _c.mutation.PairID(); !ok {
		return &ValidationError{Name: "pair_id", err: errors.New(`ent: missing required field "ValidationSummary.pair_id"`)}
	}
	if _, ok := _c.mutation.ItemsStatus(); !ok {
		return &ValidationError{Name: "items_status", err: errors.New(`ent: missing required field "ValidationSummary.items_status"`)}
	}
	if v, ok := _c.mutation.ItemsStatus(); ok {
		if err := validationsummary.ItemsStatusValidator(v); err != nil {
			return &ValidationError{Name: "items_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.items_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VatStatus(); !ok {
		return &ValidationError{Name: "vat_status", err: errors.New(`ent: missing required field "ValidationSummary.vat_status"`)}
	}
	if v, ok := _c.mutation.VatStatus(); ok {
		if err := validationsummary.VatStatusValidator(v); err != nil {
			return &ValidationError{Name: "vat_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.vat_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DatesStatus(); !ok {
		return &ValidationError{Name: "dates_status", err: errors.New(`ent: missing required field "ValidationSummary.dates_status"`)}
	}
	if v, ok := _c.mutation.DatesStatus(); ok {
		if err := validationsummary.DatesStatusValidator(v); err != nil {
			return &ValidationError{Name: "dates_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.dates_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalsStatus(); !ok {
		return &ValidationError{Name: "totals_status", err: errors.New(`ent: missing required field "ValidationSummary.totals_status"`)}
	}
	if v, ok := _c.mutation.TotalsStatus(); ok {
		if err := validationsummary.TotalsStatusValidator(v); err != nil {
			return &ValidationError{Name: "totals_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.totals_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FinalStatus(); !ok {
		return &ValidationError{Name: "final_status", err: errors.New(`ent: missing required field "ValidationSummary.final_status"`)}
	}
	if v, ok := _c.mutation.FinalStatus(); ok {
		if err := validationsummary.FinalStatusValidator(v); err != nil {
			return &ValidationError{Name: "final_status", err: fmt.Errorf(`ent: validator failed for field "ValidationSummary.final_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ValidationSummary.updated_at"`)}
	}
	if len(_c.mutation.PairIDs()) == 0 {
		return &ValidationError{Name: "pair", err: errors.New(`ent: missing required edge "ValidationSummary.pair"`)}
	}
	return nil
}

func (_c *ValidationSummaryCreate) sqlSave(ctx context.Context) (*ValidationSummary, error) {
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

func (_c *ValidationSummaryCreate) createSpec() (*ValidationSummary, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationSummary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationsummary.Table, sqlgraph.NewFieldSpec(validationsummary.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ItemsStatus(); ok {
		_spec.SetField(validationsummary.FieldItemsStatus, field.TypeString, value)
		_node.ItemsStatus = value
	}
	if value, ok := _c.mutation.VatStatus(); ok {
		_spec.SetField(validationsummary.FieldVatStatus, field.TypeString, value)
		_node.VatStatus = value
	}
	if value, ok := _c.mutation.DatesStatus(); ok {
		_spec.SetField(validationsummary.FieldDatesStatus, field.TypeString, value)
		_node.DatesStatus = value
	}
	if value, ok := _c.mutation.TotalsStatus(); ok {
		_spec.SetField(validationsummary.FieldTotalsStatus, field.TypeString, value)
		_node.TotalsStatus = value
	}
	if value, ok := _c.mutation.FinalStatus(); ok {
		_spec.SetField(validationsummary.FieldFinalStatus, field.TypeString, value)
		_node.FinalStatus = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(validationsummary.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PairIDs(); len(nodes) > 0 {
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
		_node.PairID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ValidationSummaryCreateBulk is the builder for creating many ValidationSummary entities in bulk.
type ValidationSummaryCreateBulk struct {
	config
	err      error
	builders []*ValidationSummaryCreate
}

// Save creates the ValidationSummary entities in the database.
func (_c *ValidationSummaryCreateBulk) Save(ctx context.Context) ([]*ValidationSummary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationSummary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationSummaryMutation)
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
func (_c *ValidationSummaryCreateBulk) SaveX(ctx context.Context) []*ValidationSummary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationSummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationSummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
