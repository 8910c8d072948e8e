// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/petarmilev/invoice-recon/gen/ent/documentpair"
	"github.com/petarmilev/invoice-recon/gen/ent/predicate"
)

// DocumentPairDelete is the builder for deleting a DocumentPair entity.
type DocumentPairDelete struct {
	config
	hooks    []Hook
	mutation *DocumentPairMutation
}

// Where appends a list predicates to the DocumentPairDelete builder.
func (_d *DocumentPairDelete) Where(ps ...predicate.DocumentPair) *DocumentPairDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DocumentPairDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentPairDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DocumentPairDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(documentpair.Table, sqlgraph.NewFieldSpec(documentpair.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DocumentPairDeleteOne is the builder for deleting a single DocumentPair entity.
type DocumentPairDeleteOne struct {
	_d *DocumentPairDelete
}

// Where appends a list predicates to the DocumentPairDelete builder.
func (_d *DocumentPairDeleteOne) Where(ps ...predicate.DocumentPair) *DocumentPairDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DocumentPairDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{documentpair.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DocumentPairDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
