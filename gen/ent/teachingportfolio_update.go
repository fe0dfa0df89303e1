// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/campushr/docparser/gen/ent/teachingportfolio"
	"github.com/google/uuid"
)

// TeachingPortfolioUpdate is the builder for updating TeachingPortfolio entities.
type TeachingPortfolioUpdate struct {
	config
	hooks    []Hook
	mutation *TeachingPortfolioMutation
}

// Where appends a list predicates to the TeachingPortfolioUpdate builder.
func (_u *TeachingPortfolioUpdate) Where(ps ...predicate.TeachingPortfolio) *TeachingPortfolioUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *TeachingPortfolioUpdate) SetEmployeeID(v uuid.UUID) *TeachingPortfolioUpdate {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *TeachingPortfolioUpdate) SetNillableEmployeeID(v *uuid.UUID) *TeachingPortfolioUpdate {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetSections sets the "sections" field.
func (_u *TeachingPortfolioUpdate) SetSections(v json.RawMessage) *TeachingPortfolioUpdate {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *TeachingPortfolioUpdate) AppendSections(v json.RawMessage) *TeachingPortfolioUpdate {
	_u.mutation.AppendSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *TeachingPortfolioUpdate) ClearSections() *TeachingPortfolioUpdate {
	_u.mutation.ClearSections()
	return _u
}

// SetTeachingPhilosophy sets the "teaching_philosophy" field.
func (_u *TeachingPortfolioUpdate) SetTeachingPhilosophy(v string) *TeachingPortfolioUpdate {
	_u.mutation.SetTeachingPhilosophy(v)
	return _u
}

// SetNillableTeachingPhilosophy sets the "teaching_philosophy" field if the given value is not nil.
func (_u *TeachingPortfolioUpdate) SetNillableTeachingPhilosophy(v *string) *TeachingPortfolioUpdate {
	if v != nil {
		_u.SetTeachingPhilosophy(*v)
	}
	return _u
}

// ClearTeachingPhilosophy clears the value of the "teaching_philosophy" field.
func (_u *TeachingPortfolioUpdate) ClearTeachingPhilosophy() *TeachingPortfolioUpdate {
	_u.mutation.ClearTeachingPhilosophy()
	return _u
}

// SetFutureTeachingGoals sets the "future_teaching_goals" field.
func (_u *TeachingPortfolioUpdate) SetFutureTeachingGoals(v string) *TeachingPortfolioUpdate {
	_u.mutation.SetFutureTeachingGoals(v)
	return _u
}

// SetNillableFutureTeachingGoals sets the "future_teaching_goals" field if the given value is not nil.
func (_u *TeachingPortfolioUpdate) SetNillableFutureTeachingGoals(v *string) *TeachingPortfolioUpdate {
	if v != nil {
		_u.SetFutureTeachingGoals(*v)
	}
	return _u
}

// ClearFutureTeachingGoals clears the value of the "future_teaching_goals" field.
func (_u *TeachingPortfolioUpdate) ClearFutureTeachingGoals() *TeachingPortfolioUpdate {
	_u.mutation.ClearFutureTeachingGoals()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TeachingPortfolioUpdate) SetCreatedAt(v time.Time) *TeachingPortfolioUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TeachingPortfolioUpdate) SetNillableCreatedAt(v *time.Time) *TeachingPortfolioUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TeachingPortfolioUpdate) SetUpdatedAt(v time.Time) *TeachingPortfolioUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *TeachingPortfolioUpdate) SetEmployee(v *Employee) *TeachingPortfolioUpdate {
	return _u.SetEmployeeID(v.ID)
}

// Mutation returns the TeachingPortfolioMutation object of the builder.
func (_u *TeachingPortfolioUpdate) Mutation() *TeachingPortfolioMutation {
	return _u.mutation
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *TeachingPortfolioUpdate) ClearEmployee() *TeachingPortfolioUpdate {
	_u.mutation.ClearEmployee()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TeachingPortfolioUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TeachingPortfolioUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TeachingPortfolioUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TeachingPortfolioUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TeachingPortfolioUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := teachingportfolio.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TeachingPortfolioUpdate) check() error {
	if _u.mutation.EmployeeCleared() && len(_u.mutation.EmployeeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TeachingPortfolio.employee"`)
	}
	return nil
}

func (_u *TeachingPortfolioUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(teachingportfolio.Table, teachingportfolio.Columns, sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(teachingportfolio.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, teachingportfolio.FieldSections, value)
		})
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(teachingportfolio.FieldSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.TeachingPhilosophy(); ok {
		_spec.SetField(teachingportfolio.FieldTeachingPhilosophy, field.TypeString, value)
	}
	if _u.mutation.TeachingPhilosophyCleared() {
		_spec.ClearField(teachingportfolio.FieldTeachingPhilosophy, field.TypeString)
	}
	if value, ok := _u.mutation.FutureTeachingGoals(); ok {
		_spec.SetField(teachingportfolio.FieldFutureTeachingGoals, field.TypeString, value)
	}
	if _u.mutation.FutureTeachingGoalsCleared() {
		_spec.ClearField(teachingportfolio.FieldFutureTeachingGoals, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(teachingportfolio.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(teachingportfolio.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmployeeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmployeeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{teachingportfolio.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TeachingPortfolioUpdateOne is the builder for updating a single TeachingPortfolio entity.
type TeachingPortfolioUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TeachingPortfolioMutation
}

// SetEmployeeID sets the "employee_id" field.
func (_u *TeachingPortfolioUpdateOne) SetEmployeeID(v uuid.UUID) *TeachingPortfolioUpdateOne {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *TeachingPortfolioUpdateOne) SetNillableEmployeeID(v *uuid.UUID) *TeachingPortfolioUpdateOne {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetSections sets the "sections" field.
func (_u *TeachingPortfolioUpdateOne) SetSections(v json.RawMessage) *TeachingPortfolioUpdateOne {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *TeachingPortfolioUpdateOne) AppendSections(v json.RawMessage) *TeachingPortfolioUpdateOne {
	_u.mutation.AppendSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *TeachingPortfolioUpdateOne) ClearSections() *TeachingPortfolioUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// SetTeachingPhilosophy sets the "teaching_philosophy" field.
func (_u *TeachingPortfolioUpdateOne) SetTeachingPhilosophy(v string) *TeachingPortfolioUpdateOne {
	_u.mutation.SetTeachingPhilosophy(v)
	return _u
}

// SetNillableTeachingPhilosophy sets the "teaching_philosophy" field if the given value is not nil.
func (_u *TeachingPortfolioUpdateOne) SetNillableTeachingPhilosophy(v *string) *TeachingPortfolioUpdateOne {
	if v != nil {
		_u.SetTeachingPhilosophy(*v)
	}
	return _u
}

// ClearTeachingPhilosophy clears the value of the "teaching_philosophy" field.
func (_u *TeachingPortfolioUpdateOne) ClearTeachingPhilosophy() *TeachingPortfolioUpdateOne {
	_u.mutation.ClearTeachingPhilosophy()
	return _u
}

// SetFutureTeachingGoals sets the "future_teaching_goals" field.
func (_u *TeachingPortfolioUpdateOne) SetFutureTeachingGoals(v string) *TeachingPortfolioUpdateOne {
	_u.mutation.SetFutureTeachingGoals(v)
	return _u
}

// SetNillableFutureTeachingGoals sets the "future_teaching_goals" field if the given value is not nil.
func (_u *TeachingPortfolioUpdateOne) SetNillableFutureTeachingGoals(v *string) *TeachingPortfolioUpdateOne {
	if v != nil {
		_u.SetFutureTeachingGoals(*v)
	}
	return _u
}

// ClearFutureTeachingGoals clears the value of the "future_teaching_goals" field.
func (_u *TeachingPortfolioUpdateOne) ClearFutureTeachingGoals() *TeachingPortfolioUpdateOne {
	_u.mutation.ClearFutureTeachingGoals()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TeachingPortfolioUpdateOne) SetCreatedAt(v time.Time) *TeachingPortfolioUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TeachingPortfolioUpdateOne) SetNillableCreatedAt(v *time.Time) *TeachingPortfolioUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TeachingPortfolioUpdateOne) SetUpdatedAt(v time.Time) *TeachingPortfolioUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *TeachingPortfolioUpdateOne) SetEmployee(v *Employee) *TeachingPortfolioUpdateOne {
	return _u.SetEmployeeID(v.ID)
}

// Mutation returns the TeachingPortfolioMutation object of the builder.
func (_u *TeachingPortfolioUpdateOne) Mutation() *TeachingPortfolioMutation {
	return _u.mutation
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *TeachingPortfolioUpdateOne) ClearEmployee() *TeachingPortfolioUpdateOne {
	_u.mutation.ClearEmployee()
	return _u
}

// Where appends a list predicates to the TeachingPortfolioUpdate builder.
func (_u *TeachingPortfolioUpdateOne) Where(ps ...predicate.TeachingPortfolio) *TeachingPortfolioUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TeachingPortfolioUpdateOne) Select(field string, fields ...string) *TeachingPortfolioUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TeachingPortfolio entity.
func (_u *TeachingPortfolioUpdateOne) Save(ctx context.Context) (*TeachingPortfolio, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TeachingPortfolioUpdateOne) SaveX(ctx context.Context) *TeachingPortfolio {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TeachingPortfolioUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TeachingPortfolioUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TeachingPortfolioUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := teachingportfolio.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TeachingPortfolioUpdateOne) check() error {
	if _u.mutation.EmployeeCleared() && len(_u.mutation.EmployeeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TeachingPortfolio.employee"`)
	}
	return nil
}

func (_u *TeachingPortfolioUpdateOne) sqlSave(ctx context.Context) (_node *TeachingPortfolio, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(teachingportfolio.Table, teachingportfolio.Columns, sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TeachingPortfolio.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, teachingportfolio.FieldID)
		for _, f := range fields {
			if !teachingportfolio.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != teachingportfolio.FieldID {
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
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(teachingportfolio.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, teachingportfolio.FieldSections, value)
		})
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(teachingportfolio.FieldSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.TeachingPhilosophy(); ok {
		_spec.SetField(teachingportfolio.FieldTeachingPhilosophy, field.TypeString, value)
	}
	if _u.mutation.TeachingPhilosophyCleared() {
		_spec.ClearField(teachingportfolio.FieldTeachingPhilosophy, field.TypeString)
	}
	if value, ok := _u.mutation.FutureTeachingGoals(); ok {
		_spec.SetField(teachingportfolio.FieldFutureTeachingGoals, field.TypeString, value)
	}
	if _u.mutation.FutureTeachingGoalsCleared() {
		_spec.ClearField(teachingportfolio.FieldFutureTeachingGoals, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(teachingportfolio.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(teachingportfolio.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmployeeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmployeeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TeachingPortfolio{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{teachingportfolio.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
