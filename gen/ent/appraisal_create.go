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
	"github.com/campushr/docparser/gen/ent/appraisal"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/parsejob"
	"github.com/google/uuid"
)

// AppraisalCreate is the builder for creating a Appraisal entity.
type AppraisalCreate struct {
	config
	mutation *AppraisalMutation
	hooks    []Hook
}

// SetEmployeeID sets the "employee_id" field.
func (_c *AppraisalCreate) SetEmployeeID(v uuid.UUID) *AppraisalCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetDateCreated sets the "date_created" field.
func (_c *AppraisalCreate) SetDateCreated(v time.Time) *AppraisalCreate {
	_c.mutation.SetDateCreated(v)
	return _c
}

// SetNillableDateCreated sets the "date_created" field if the given value is not nil.
func (_c *AppraisalCreate) SetNillableDateCreated(v *time.Time) *AppraisalCreate {
	if v != nil {
		_c.SetDateCreated(*v)
	}
	return _c
}

// SetReviewPeriodStart sets the "review_period_start" field.
func (_c *AppraisalCreate) SetReviewPeriodStart(v time.Time) *AppraisalCreate {
	_c.mutation.SetReviewPeriodStart(v)
	return _c
}

// SetNillableReviewPeriodStart sets the "review_period_start" field if the given value is not nil.
func (_c *AppraisalCreate) SetNillableReviewPeriodStart(v *time.Time) *AppraisalCreate {
	if v != nil {
		_c.SetReviewPeriodStart(*v)
	}
	return _c
}

// SetReviewPeriodEnd sets the "review_period_end" field.
func (_c *AppraisalCreate) SetReviewPeriodEnd(v time.Time) *AppraisalCreate {
	_c.mutation.SetReviewPeriodEnd(v)
	return _c
}

// SetNillableReviewPeriodEnd sets the "review_period_end" field if the given value is not nil.
func (_c *AppraisalCreate) SetNillableReviewPeriodEnd(v *time.Time) *AppraisalCreate {
	if v != nil {
		_c.SetReviewPeriodEnd(*v)
	}
	return _c
}

// SetSections sets the "sections" field.
func (_c *AppraisalCreate) SetSections(v json.RawMessage) *AppraisalCreate {
	_c.mutation.SetSections(v)
	return _c
}

// SetRatings sets the "ratings" field.
func (_c *AppraisalCreate) SetRatings(v json.RawMessage) *AppraisalCreate {
	_c.mutation.SetRatings(v)
	return _c
}

// SetComments sets the "comments" field.
func (_c *AppraisalCreate) SetComments(v json.RawMessage) *AppraisalCreate {
	_c.mutation.SetComments(v)
	return _c
}

// SetCareerAspirations sets the "career_aspirations" field.
func (_c *AppraisalCreate) SetCareerAspirations(v string) *AppraisalCreate {
	_c.mutation.SetCareerAspirations(v)
	return _c
}

// SetNillableCareerAspirations sets the "career_aspirations" field if the given value is not nil.
func (_c *AppraisalCreate) SetNillableCareerAspirations(v *string) *AppraisalCreate {
	if v != nil {
		_c.SetCareerAspirations(*v)
	}
	return _c
}

// SetOngoingResearch sets the "ongoing_research" field.
func (_c *AppraisalCreate) SetOngoingResearch(v string) *AppraisalCreate {
	_c.mutation.SetOngoingResearch(v)
	return _c
}

// SetNillableOngoingResearch sets the "ongoing_research" field if the given value is not nil.
func (_c *AppraisalCreate) SetNillableOngoingResearch(v *string) *AppraisalCreate {
	if v != nil {
		_c.SetOngoingResearch(*v)
	}
	return _c
}

// SetLastResearch sets the "last_research" field.
func (_c *AppraisalCreate) SetLastResearch(v string) *AppraisalCreate {
	_c.mutation.SetLastResearch(v)
	return _c
}

// SetNillableLastResearch sets the "last_research" field if the given value is not nil.
func (_c *AppraisalCreate) SetNillableLastResearch(v *string) *AppraisalCreate {
	if v != nil {
		_c.SetLastResearch(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppraisalCreate) SetCreatedAt(v time.Time) *AppraisalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppraisalCreate) SetNillableCreatedAt(v *time.Time) *AppraisalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppraisalCreate) SetUpdatedAt(v time.Time) *AppraisalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppraisalCreate) SetNillableUpdatedAt(v *time.Time) *AppraisalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppraisalCreate) SetID(v uuid.UUID) *AppraisalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppraisalCreate) SetNillableID(v *uuid.UUID) *AppraisalCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_c *AppraisalCreate) SetEmployee(v *Employee) *AppraisalCreate {
	return _c.SetEmployeeID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_c *AppraisalCreate) AddJobIDs(ids ...uuid.UUID) *AppraisalCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_c *AppraisalCreate) AddJobs(v ...*ParseJob) *AppraisalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the AppraisalMutation object of the builder.
func (_c *AppraisalCreate) Mutation() *AppraisalMutation {
	return _c.mutation
}

// Save creates the Appraisal in the database.
func (_c *AppraisalCreate) Save(ctx context.Context) (*Appraisal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppraisalCreate) SaveX(ctx context.Context) *Appraisal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppraisalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppraisalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppraisalCreate) defaults() {
	if _, ok := _c.mutation.DateCreated(); !ok {
		v := appraisal.DefaultDateCreated()
		_c.mutation.SetDateCreated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appraisal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appraisal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appraisal.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppraisalCreate) check() error {
	if _, ok := _c.mutation.EmployeeID(); !ok {
		return &ValidationError{Name: "employee_id", err: errors.New(`ent: missing required field "Appraisal.employee_id"`)}
	}
	if _, ok := _c.mutation.DateCreated(); !ok {
		return &ValidationError{Name: "date_created", err: errors.New(`ent: missing required field "Appraisal.date_created"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Appraisal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Appraisal.updated_at"`)}
	}
	if len(_c.mutation.EmployeeIDs()) == 0 {
		return &ValidationError{Name: "employee", err: errors.New(`ent: missing required edge "Appraisal.employee"`)}
	}
	return nil
}

func (_c *AppraisalCreate) sqlSave(ctx context.Context) (*Appraisal, error) {
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

func (_c *AppraisalCreate) createSpec() (*Appraisal, *sqlgraph.CreateSpec) {
	var (
		_node = &Appraisal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appraisal.Table, sqlgraph.NewFieldSpec(appraisal.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DateCreated(); ok {
		_spec.SetField(appraisal.FieldDateCreated, field.TypeTime, value)
		_node.DateCreated = value
	}
	if value, ok := _c.mutation.ReviewPeriodStart(); ok {
		_spec.SetField(appraisal.FieldReviewPeriodStart, field.TypeTime, value)
		_node.ReviewPeriodStart = &value
	}
	if value, ok := _c.mutation.ReviewPeriodEnd(); ok {
		_spec.SetField(appraisal.FieldReviewPeriodEnd, field.TypeTime, value)
		_node.ReviewPeriodEnd = &value
	}
	if value, ok := _c.mutation.Sections(); ok {
		_spec.SetField(appraisal.FieldSections, field.TypeJSON, value)
		_node.Sections = value
	}
	if value, ok := _c.mutation.Ratings(); ok {
		_spec.SetField(appraisal.FieldRatings, field.TypeJSON, value)
		_node.Ratings = value
	}
	if value, ok := _c.mutation.Comments(); ok {
		_spec.SetField(appraisal.FieldComments, field.TypeJSON, value)
		_node.Comments = value
	}
	if value, ok := _c.mutation.CareerAspirations(); ok {
		_spec.SetField(appraisal.FieldCareerAspirations, field.TypeString, value)
		_node.CareerAspirations = value
	}
	if value, ok := _c.mutation.OngoingResearch(); ok {
		_spec.SetField(appraisal.FieldOngoingResearch, field.TypeString, value)
		_node.OngoingResearch = value
	}
	if value, ok := _c.mutation.LastResearch(); ok {
		_spec.SetField(appraisal.FieldLastResearch, field.TypeString, value)
		_node.LastResearch = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appraisal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appraisal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EmployeeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   appraisal.EmployeeTable,
			Columns: []string{appraisal.EmployeeColumn},
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
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   appraisal.JobsTable,
			Columns: []string{appraisal.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AppraisalCreateBulk is the builder for creating many Appraisal entities in bulk.
type AppraisalCreateBulk struct {
	config
	err      error
	builders []*AppraisalCreate
}

// Save creates the Appraisal entities in the database.
func (_c *AppraisalCreateBulk) Save(ctx context.Context) ([]*Appraisal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appraisal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppraisalMutation)
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
func (_c *AppraisalCreateBulk) SaveX(ctx context.Context) []*Appraisal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppraisalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppraisalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
