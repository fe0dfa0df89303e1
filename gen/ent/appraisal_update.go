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
	"github.com/campushr/docparser/gen/ent/appraisal"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/parsejob"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/google/uuid"
)

// AppraisalUpdate is the builder for updating Appraisal entities.
type AppraisalUpdate struct {
	config
	hooks    []Hook
	mutation *AppraisalMutation
}

// Where appends a list predicates to the AppraisalUpdate builder.
func (_u *AppraisalUpdate) Where(ps ...predicate.Appraisal) *AppraisalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *AppraisalUpdate) SetEmployeeID(v uuid.UUID) *AppraisalUpdate {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *AppraisalUpdate) SetNillableEmployeeID(v *uuid.UUID) *AppraisalUpdate {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetDateCreated sets the "date_created" field.
func (_u *AppraisalUpdate) SetDateCreated(v time.Time) *AppraisalUpdate {
	_u.mutation.SetDateCreated(v)
	return _u
}

// SetNillableDateCreated sets the "date_created" field if the given value is not nil.
func (_u *AppraisalUpdate) SetNillableDateCreated(v *time.Time) *AppraisalUpdate {
	if v != nil {
		_u.SetDateCreated(*v)
	}
	return _u
}

// SetReviewPeriodStart sets the "review_period_start" field.
func (_u *AppraisalUpdate) SetReviewPeriodStart(v time.Time) *AppraisalUpdate {
	_u.mutation.SetReviewPeriodStart(v)
	return _u
}

// SetNillableReviewPeriodStart sets the "review_period_start" field if the given value is not nil.
func (_u *AppraisalUpdate) SetNillableReviewPeriodStart(v *time.Time) *AppraisalUpdate {
	if v != nil {
		_u.SetReviewPeriodStart(*v)
	}
	return _u
}

// ClearReviewPeriodStart clears the value of the "review_period_start" field.
func (_u *AppraisalUpdate) ClearReviewPeriodStart() *AppraisalUpdate {
	_u.mutation.ClearReviewPeriodStart()
	return _u
}

// SetReviewPeriodEnd sets the "review_period_end" field.
func (_u *AppraisalUpdate) SetReviewPeriodEnd(v time.Time) *AppraisalUpdate {
	_u.mutation.SetReviewPeriodEnd(v)
	return _u
}

// SetNillableReviewPeriodEnd sets the "review_period_end" field if the given value is not nil.
func (_u *AppraisalUpdate) SetNillableReviewPeriodEnd(v *time.Time) *AppraisalUpdate {
	if v != nil {
		_u.SetReviewPeriodEnd(*v)
	}
	return _u
}

// ClearReviewPeriodEnd clears the value of the "review_period_end" field.
func (_u *AppraisalUpdate) ClearReviewPeriodEnd() *AppraisalUpdate {
	_u.mutation.ClearReviewPeriodEnd()
	return _u
}

// SetSections sets the "sections" field.
func (_u *AppraisalUpdate) SetSections(v json.RawMessage) *AppraisalUpdate {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *AppraisalUpdate) AppendSections(v json.RawMessage) *AppraisalUpdate {
	_u.mutation.AppendSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *AppraisalUpdate) ClearSections() *AppraisalUpdate {
	_u.mutation.ClearSections()
	return _u
}

// SetRatings sets the "ratings" field.
func (_u *AppraisalUpdate) SetRatings(v json.RawMessage) *AppraisalUpdate {
	_u.mutation.SetRatings(v)
	return _u
}

// AppendRatings appends value to the "ratings" field.
func (_u *AppraisalUpdate) AppendRatings(v json.RawMessage) *AppraisalUpdate {
	_u.mutation.AppendRatings(v)
	return _u
}

// ClearRatings clears the value of the "ratings" field.
func (_u *AppraisalUpdate) ClearRatings() *AppraisalUpdate {
	_u.mutation.ClearRatings()
	return _u
}

// SetComments sets the "comments" field.
func (_u *AppraisalUpdate) SetComments(v json.RawMessage) *AppraisalUpdate {
	_u.mutation.SetComments(v)
	return _u
}

// AppendComments appends value to the "comments" field.
func (_u *AppraisalUpdate) AppendComments(v json.RawMessage) *AppraisalUpdate {
	_u.mutation.AppendComments(v)
	return _u
}

// ClearComments clears the value of the "comments" field.
func (_u *AppraisalUpdate) ClearComments() *AppraisalUpdate {
	_u.mutation.ClearComments()
	return _u
}

// SetCareerAspirations sets the "career_aspirations" field.
func (_u *AppraisalUpdate) SetCareerAspirations(v string) *AppraisalUpdate {
	_u.mutation.SetCareerAspirations(v)
	return _u
}

// SetNillableCareerAspirations sets the "career_aspirations" field if the given value is not nil.
func (_u *AppraisalUpdate) SetNillableCareerAspirations(v *string) *AppraisalUpdate {
	if v != nil {
		_u.SetCareerAspirations(*v)
	}
	return _u
}

// ClearCareerAspirations clears the value of the "career_aspirations" field.
func (_u *AppraisalUpdate) ClearCareerAspirations() *AppraisalUpdate {
	_u.mutation.ClearCareerAspirations()
	return _u
}

// SetOngoingResearch sets the "ongoing_research" field.
func (_u *AppraisalUpdate) SetOngoingResearch(v string) *AppraisalUpdate {
	_u.mutation.SetOngoingResearch(v)
	return _u
}

// SetNillableOngoingResearch sets the "ongoing_research" field if the given value is not nil.
func (_u *AppraisalUpdate) SetNillableOngoingResearch(v *string) *AppraisalUpdate {
	if v != nil {
		_u.SetOngoingResearch(*v)
	}
	return _u
}

// ClearOngoingResearch clears the value of the "ongoing_research" field.
func (_u *AppraisalUpdate) ClearOngoingResearch() *AppraisalUpdate {
	_u.mutation.ClearOngoingResearch()
	return _u
}

// SetLastResearch sets the "last_research" field.
func (_u *AppraisalUpdate) SetLastResearch(v string) *AppraisalUpdate {
	_u.mutation.SetLastResearch(v)
	return _u
}

// SetNillableLastResearch sets the "last_research" field if the given value is not nil.
func (_u *AppraisalUpdate) SetNillableLastResearch(v *string) *AppraisalUpdate {
	if v != nil {
		_u.SetLastResearch(*v)
	}
	return _u
}

// ClearLastResearch clears the value of the "last_research" field.
func (_u *AppraisalUpdate) ClearLastResearch() *AppraisalUpdate {
	_u.mutation.ClearLastResearch()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AppraisalUpdate) SetCreatedAt(v time.Time) *AppraisalUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AppraisalUpdate) SetNillableCreatedAt(v *time.Time) *AppraisalUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppraisalUpdate) SetUpdatedAt(v time.Time) *AppraisalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *AppraisalUpdate) SetEmployee(v *Employee) *AppraisalUpdate {
	return _u.SetEmployeeID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *AppraisalUpdate) AddJobIDs(ids ...uuid.UUID) *AppraisalUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *AppraisalUpdate) AddJobs(v ...*ParseJob) *AppraisalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the AppraisalMutation object of the builder.
func (_u *AppraisalUpdate) Mutation() *AppraisalMutation {
	return _u.mutation
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *AppraisalUpdate) ClearEmployee() *AppraisalUpdate {
	_u.mutation.ClearEmployee()
	return _u
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *AppraisalUpdate) ClearJobs() *AppraisalUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *AppraisalUpdate) RemoveJobIDs(ids ...uuid.UUID) *AppraisalUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *AppraisalUpdate) RemoveJobs(v ...*ParseJob) *AppraisalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppraisalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppraisalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppraisalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppraisalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppraisalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appraisal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppraisalUpdate) check() error {
	if _u.mutation.EmployeeCleared() && len(_u.mutation.EmployeeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Appraisal.employee"`)
	}
	return nil
}

func (_u *AppraisalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appraisal.Table, appraisal.Columns, sqlgraph.NewFieldSpec(appraisal.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DateCreated(); ok {
		_spec.SetField(appraisal.FieldDateCreated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReviewPeriodStart(); ok {
		_spec.SetField(appraisal.FieldReviewPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.ReviewPeriodStartCleared() {
		_spec.ClearField(appraisal.FieldReviewPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewPeriodEnd(); ok {
		_spec.SetField(appraisal.FieldReviewPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.ReviewPeriodEndCleared() {
		_spec.ClearField(appraisal.FieldReviewPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(appraisal.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, appraisal.FieldSections, value)
		})
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(appraisal.FieldSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Ratings(); ok {
		_spec.SetField(appraisal.FieldRatings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRatings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, appraisal.FieldRatings, value)
		})
	}
	if _u.mutation.RatingsCleared() {
		_spec.ClearField(appraisal.FieldRatings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(appraisal.FieldComments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedComments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, appraisal.FieldComments, value)
		})
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(appraisal.FieldComments, field.TypeJSON)
	}
	if value, ok := _u.mutation.CareerAspirations(); ok {
		_spec.SetField(appraisal.FieldCareerAspirations, field.TypeString, value)
	}
	if _u.mutation.CareerAspirationsCleared() {
		_spec.ClearField(appraisal.FieldCareerAspirations, field.TypeString)
	}
	if value, ok := _u.mutation.OngoingResearch(); ok {
		_spec.SetField(appraisal.FieldOngoingResearch, field.TypeString, value)
	}
	if _u.mutation.OngoingResearchCleared() {
		_spec.ClearField(appraisal.FieldOngoingResearch, field.TypeString)
	}
	if value, ok := _u.mutation.LastResearch(); ok {
		_spec.SetField(appraisal.FieldLastResearch, field.TypeString, value)
	}
	if _u.mutation.LastResearchCleared() {
		_spec.ClearField(appraisal.FieldLastResearch, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(appraisal.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appraisal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmployeeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmployeeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appraisal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppraisalUpdateOne is the builder for updating a single Appraisal entity.
type AppraisalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppraisalMutation
}

// SetEmployeeID sets the "employee_id" field.
func (_u *AppraisalUpdateOne) SetEmployeeID(v uuid.UUID) *AppraisalUpdateOne {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *AppraisalUpdateOne) SetNillableEmployeeID(v *uuid.UUID) *AppraisalUpdateOne {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// SetDateCreated sets the "date_created" field.
func (_u *AppraisalUpdateOne) SetDateCreated(v time.Time) *AppraisalUpdateOne {
	_u.mutation.SetDateCreated(v)
	return _u
}

// SetNillableDateCreated sets the "date_created" field if the given value is not nil.
func (_u *AppraisalUpdateOne) SetNillableDateCreated(v *time.Time) *AppraisalUpdateOne {
	if v != nil {
		_u.SetDateCreated(*v)
	}
	return _u
}

// SetReviewPeriodStart sets the "review_period_start" field.
func (_u *AppraisalUpdateOne) SetReviewPeriodStart(v time.Time) *AppraisalUpdateOne {
	_u.mutation.SetReviewPeriodStart(v)
	return _u
}

// SetNillableReviewPeriodStart sets the "review_period_start" field if the given value is not nil.
func (_u *AppraisalUpdateOne) SetNillableReviewPeriodStart(v *time.Time) *AppraisalUpdateOne {
	if v != nil {
		_u.SetReviewPeriodStart(*v)
	}
	return _u
}

// ClearReviewPeriodStart clears the value of the "review_period_start" field.
func (_u *AppraisalUpdateOne) ClearReviewPeriodStart() *AppraisalUpdateOne {
	_u.mutation.ClearReviewPeriodStart()
	return _u
}

// SetReviewPeriodEnd sets the "review_period_end" field.
func (_u *AppraisalUpdateOne) SetReviewPeriodEnd(v time.Time) *AppraisalUpdateOne {
	_u.mutation.SetReviewPeriodEnd(v)
	return _u
}

// SetNillableReviewPeriodEnd sets the "review_period_end" field if the given value is not nil.
func (_u *AppraisalUpdateOne) SetNillableReviewPeriodEnd(v *time.Time) *AppraisalUpdateOne {
	if v != nil {
		_u.SetReviewPeriodEnd(*v)
	}
	return _u
}

// ClearReviewPeriodEnd clears the value of the "review_period_end" field.
func (_u *AppraisalUpdateOne) ClearReviewPeriodEnd() *AppraisalUpdateOne {
	_u.mutation.ClearReviewPeriodEnd()
	return _u
}

// SetSections sets the "sections" field.
func (_u *AppraisalUpdateOne) SetSections(v json.RawMessage) *AppraisalUpdateOne {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *AppraisalUpdateOne) AppendSections(v json.RawMessage) *AppraisalUpdateOne {
	_u.mutation.AppendSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *AppraisalUpdateOne) ClearSections() *AppraisalUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// SetRatings sets the "ratings" field.
func (_u *AppraisalUpdateOne) SetRatings(v json.RawMessage) *AppraisalUpdateOne {
	_u.mutation.SetRatings(v)
	return _u
}

// AppendRatings appends value to the "ratings" field.
func (_u *AppraisalUpdateOne) AppendRatings(v json.RawMessage) *AppraisalUpdateOne {
	_u.mutation.AppendRatings(v)
	return _u
}

// ClearRatings clears the value of the "ratings" field.
func (_u *AppraisalUpdateOne) ClearRatings() *AppraisalUpdateOne {
	_u.mutation.ClearRatings()
	return _u
}

// SetComments sets the "comments" field.
func (_u *AppraisalUpdateOne) SetComments(v json.RawMessage) *AppraisalUpdateOne {
	_u.mutation.SetComments(v)
	return _u
}

// AppendComments appends value to the "comments" field.
func (_u *AppraisalUpdateOne) AppendComments(v json.RawMessage) *AppraisalUpdateOne {
	_u.mutation.AppendComments(v)
	return _u
}

// ClearComments clears the value of the "comments" field.
func (_u *AppraisalUpdateOne) ClearComments() *AppraisalUpdateOne {
	_u.mutation.ClearComments()
	return _u
}

// SetCareerAspirations sets the "career_aspirations" field.
func (_u *AppraisalUpdateOne) SetCareerAspirations(v string) *AppraisalUpdateOne {
	_u.mutation.SetCareerAspirations(v)
	return _u
}

// SetNillableCareerAspirations sets the "career_aspirations" field if the given value is not nil.
func (_u *AppraisalUpdateOne) SetNillableCareerAspirations(v *string) *AppraisalUpdateOne {
	if v != nil {
		_u.SetCareerAspirations(*v)
	}
	return _u
}

// ClearCareerAspirations clears the value of the "career_aspirations" field.
func (_u *AppraisalUpdateOne) ClearCareerAspirations() *AppraisalUpdateOne {
	_u.mutation.ClearCareerAspirations()
	return _u
}

// SetOngoingResearch sets the "ongoing_research" field.
func (_u *AppraisalUpdateOne) SetOngoingResearch(v string) *AppraisalUpdateOne {
	_u.mutation.SetOngoingResearch(v)
	return _u
}

// SetNillableOngoingResearch sets the "ongoing_research" field if the given value is not nil.
func (_u *AppraisalUpdateOne) SetNillableOngoingResearch(v *string) *AppraisalUpdateOne {
	if v != nil {
		_u.SetOngoingResearch(*v)
	}
	return _u
}

// ClearOngoingResearch clears the value of the "ongoing_research" field.
func (_u *AppraisalUpdateOne) ClearOngoingResearch() *AppraisalUpdateOne {
	_u.mutation.ClearOngoingResearch()
	return _u
}

// SetLastResearch sets the "last_research" field.
func (_u *AppraisalUpdateOne) SetLastResearch(v string) *AppraisalUpdateOne {
	_u.mutation.SetLastResearch(v)
	return _u
}

// SetNillableLastResearch sets the "last_research" field if the given value is not nil.
func (_u *AppraisalUpdateOne) SetNillableLastResearch(v *string) *AppraisalUpdateOne {
	if v != nil {
		_u.SetLastResearch(*v)
	}
	return _u
}

// ClearLastResearch clears the value of the "last_research" field.
func (_u *AppraisalUpdateOne) ClearLastResearch() *AppraisalUpdateOne {
	_u.mutation.ClearLastResearch()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AppraisalUpdateOne) SetCreatedAt(v time.Time) *AppraisalUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AppraisalUpdateOne) SetNillableCreatedAt(v *time.Time) *AppraisalUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppraisalUpdateOne) SetUpdatedAt(v time.Time) *AppraisalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmployee sets the "employee" edge to the Employee entity.
func (_u *AppraisalUpdateOne) SetEmployee(v *Employee) *AppraisalUpdateOne {
	return _u.SetEmployeeID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *AppraisalUpdateOne) AddJobIDs(ids ...uuid.UUID) *AppraisalUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *AppraisalUpdateOne) AddJobs(v ...*ParseJob) *AppraisalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the AppraisalMutation object of the builder.
func (_u *AppraisalUpdateOne) Mutation() *AppraisalMutation {
	return _u.mutation
}

// ClearEmployee clears the "employee" edge to the Employee entity.
func (_u *AppraisalUpdateOne) ClearEmployee() *AppraisalUpdateOne {
	_u.mutation.ClearEmployee()
	return _u
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *AppraisalUpdateOne) ClearJobs() *AppraisalUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *AppraisalUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *AppraisalUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *AppraisalUpdateOne) RemoveJobs(v ...*ParseJob) *AppraisalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the AppraisalUpdate builder.
func (_u *AppraisalUpdateOne) Where(ps ...predicate.Appraisal) *AppraisalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppraisalUpdateOne) Select(field string, fields ...string) *AppraisalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appraisal entity.
func (_u *AppraisalUpdateOne) Save(ctx context.Context) (*Appraisal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppraisalUpdateOne) SaveX(ctx context.Context) *Appraisal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppraisalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppraisalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppraisalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appraisal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppraisalUpdateOne) check() error {
	if _u.mutation.EmployeeCleared() && len(_u.mutation.EmployeeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Appraisal.employee"`)
	}
	return nil
}

func (_u *AppraisalUpdateOne) sqlSave(ctx context.Context) (_node *Appraisal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appraisal.Table, appraisal.Columns, sqlgraph.NewFieldSpec(appraisal.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Appraisal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appraisal.FieldID)
		for _, f := range fields {
			if !appraisal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != appraisal.FieldID {
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
	if value, ok := _u.mutation.DateCreated(); ok {
		_spec.SetField(appraisal.FieldDateCreated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReviewPeriodStart(); ok {
		_spec.SetField(appraisal.FieldReviewPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.ReviewPeriodStartCleared() {
		_spec.ClearField(appraisal.FieldReviewPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewPeriodEnd(); ok {
		_spec.SetField(appraisal.FieldReviewPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.ReviewPeriodEndCleared() {
		_spec.ClearField(appraisal.FieldReviewPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(appraisal.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, appraisal.FieldSections, value)
		})
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(appraisal.FieldSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Ratings(); ok {
		_spec.SetField(appraisal.FieldRatings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRatings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, appraisal.FieldRatings, value)
		})
	}
	if _u.mutation.RatingsCleared() {
		_spec.ClearField(appraisal.FieldRatings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Comments(); ok {
		_spec.SetField(appraisal.FieldComments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedComments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, appraisal.FieldComments, value)
		})
	}
	if _u.mutation.CommentsCleared() {
		_spec.ClearField(appraisal.FieldComments, field.TypeJSON)
	}
	if value, ok := _u.mutation.CareerAspirations(); ok {
		_spec.SetField(appraisal.FieldCareerAspirations, field.TypeString, value)
	}
	if _u.mutation.CareerAspirationsCleared() {
		_spec.ClearField(appraisal.FieldCareerAspirations, field.TypeString)
	}
	if value, ok := _u.mutation.OngoingResearch(); ok {
		_spec.SetField(appraisal.FieldOngoingResearch, field.TypeString, value)
	}
	if _u.mutation.OngoingResearchCleared() {
		_spec.ClearField(appraisal.FieldOngoingResearch, field.TypeString)
	}
	if value, ok := _u.mutation.LastResearch(); ok {
		_spec.SetField(appraisal.FieldLastResearch, field.TypeString, value)
	}
	if _u.mutation.LastResearchCleared() {
		_spec.ClearField(appraisal.FieldLastResearch, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(appraisal.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appraisal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmployeeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmployeeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Appraisal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appraisal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
