// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/teachingportfolio"
	"github.com/google/uuid"
)

// TeachingPortfolioCreate is the builder for creating a TeachingPortfolio entity.
type TeachingPortfolioCreate struct {
	config
	mutation *TeachingPortfolioMutation
	hooks    []Hook
}

// SetEmployeeID sets the "employee_id" field.
func (_c *TeachingPortfolioCreate) SetEmployeeID(v uuid.UUID) *TeachingPortfolioCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetSections sets the "sections" field.
func (_c *TeachingPortfolioCreate) SetSections(v json.RawMessage) *TeachingPortfolioCreate {
	_c.mutation.SetSections(v)
	return _c
}

// SetTeachingPhilosophy sets the "teaching_philosophy" field.
func (_c *TeachingPortfolioCreate) SetTeachingPhilosophy(v string) *TeachingPortfolioCreate {
	_c.mutation.SetTeachingPhilosophy(v)
	return _c
}

// SetNillableTeachingPhilosophy sets the "teaching_philosophy" field if the given value is not nil.
func (_c *TeachingPortfolioCreate) SetNillableTeachingPhilosophy(v *string) *TeachingPortfolioCreate {
	if v != nil {
		_c.SetTeachingPhilosophy(*v)
	}
	return _c
}

// SetFutureTeachingGoals sets the "future_teaching_goals" field.
func (_c *TeachingPortfolioCreate) SetFutureTeachingGoals(v string) *TeachingPortfolioCreate {
	_c.mutation.SetFutureTeachingGoals(v)
	return _c
}

// SetNillableFutureTeachingGoals sets the "future_teaching_goals" field if the given value is not nil.
func (_c *TeachingPortfolioCreate) SetNillableFutureTeachingGoals(v *string) *TeachingPortfolioCreate {
	if v != nil {
		_c.SetFutureTeachingGoals(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TeachingPortfolioCreate) SetCreatedAt(v time.Time) *TeachingPortfolioCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TeachingPortfolioCreate) SetNillableCreatedAt(v *time.Time) *TeachingPortfolioCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TeachingPortfolioCreate) SetUpdatedAt(v time.Time) *TeachingPortfolioCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TeachingPortfolioCreate) SetNillableUpdatedAt(v *time.Time) *TeachingPortfolioCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TeachingPortfolioCreate) SetID(v uuid.UUID) *TeachingPortfolioCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TeachingPortfolioCreate) SetNillableID(v *uuid.UUID) *TeachingPortfolioCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_c *TeachingPortfolioCreate) SetEmployee(v *Employee) *TeachingPortfolioCreate {
	return _c.SetEmployeeID(v.ID)
}

// Mutation returns the TeachingPortfolioMutation object of the builder.
func (_c *TeachingPortfolioCreate) Mutation() *TeachingPortfolioMutation {
	return _c.mutation
}

// Save creates the TeachingPortfolio in the database.
func (_c *TeachingPortfolioCreate) Save(ctx context.Context) (*TeachingPortfolio, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TeachingPortfolioCreate) SaveX(ctx context.Context) *TeachingPortfolio {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TeachingPortfolioCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TeachingPortfolioCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TeachingPortfolioCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := teachingportfolio.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := teachingportfolio.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := teachingportfolio.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TeachingPortfolioCreate) check() error {
	if _, ok := _c.mutation.EmployeeID(); !ok {
		return &ValidationError{Name: "employee_id", err: errors.New(`ent: missing required field "TeachingPortfolio.employee_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TeachingPortfolio.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TeachingPortfolio.updated_at"`)}
	}
	if len(_c.mutation.EmployeeIDs()) == 0 {
		return &ValidationError{Name: "employee", err: errors.New(`ent: missing required edge "TeachingPortfolio.employee"`)}
	}
	return nil
}

func (_c *TeachingPortfolioCreate) sqlSave(ctx context.Context) (*TeachingPortfolio, error) {
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

func (_c *TeachingPortfolioCreate) createSpec() (*TeachingPortfolio, *sqlgraph.CreateSpec) {
	var (
		_node = &TeachingPortfolio{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(teachingportfolio.Table, sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Sections(); ok {
		_spec.SetField(teachingportfolio.FieldSections, field.TypeJSON, value)
		_node.Sections = value
	}
	if value, ok := _c.mutation.TeachingPhilosophy(); ok {
		_spec.SetField(teachingportfolio.FieldTeachingPhilosophy, field.TypeString, value)
		_node.TeachingPhilosophy = value
	}
	if value, ok := _c.mutation.FutureTeachingGoals(); ok {
		_spec.SetField(teachingportfolio.FieldFutureTeachingGoals, field.TypeString, value)
		_node.FutureTeachingGoals = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(teachingportfolio.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(teachingportfolio.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EmployeeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   teachingportfolio.EmployeeTable,
			Columns: []string{teachingportfolio.EmployeeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(employee.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EmployeeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TeachingPortfolioCreateBulk is the builder for creating many TeachingPortfolio entities in bulk.
type TeachingPortfolioCreateBulk struct {
	config
	err      error
	builders []*TeachingPortfolioCreate
}

// Save creates the TeachingPortfolio entities in the database.
func (_c *TeachingPortfolioCreateBulk) Save(ctx context.Context) ([]*TeachingPortfolio, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TeachingPortfolio, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TeachingPortfolioMutation)
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
func (_c *TeachingPortfolioCreateBulk) SaveX(ctx context.Context) []*TeachingPortfolio {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TeachingPortfolioCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TeachingPortfolioCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
