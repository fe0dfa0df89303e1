// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/campushr/docparser/gen/ent/teachingportfolio"
)

// TeachingPortfolioDelete is the builder for deleting a TeachingPortfolio entity.
type TeachingPortfolioDelete struct {
	config
	hooks    []Hook
	mutation *TeachingPortfolioMutation
}

// Where appends a list predicates to the TeachingPortfolioDelete builder.
func (_d *TeachingPortfolioDelete) Where(ps ...predicate.TeachingPortfolio) *TeachingPortfolioDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TeachingPortfolioDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TeachingPortfolioDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TeachingPortfolioDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(teachingportfolio.Table, sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID))
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

// TeachingPortfolioDeleteOne is the builder for deleting a single TeachingPortfolio entity.
type TeachingPortfolioDeleteOne struct {
	_d *TeachingPortfolioDelete
}

// Where appends a list predicates to the TeachingPortfolioDelete builder.
func (_d *TeachingPortfolioDeleteOne) Where(ps ...predicate.TeachingPortfolio) *TeachingPortfolioDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TeachingPortfolioDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{teachingportfolio.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TeachingPortfolioDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
