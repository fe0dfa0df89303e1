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
	"github.com/campushr/docparser/gen/ent/appraisal"
	"github.com/campushr/docparser/gen/ent/documentfile"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/campushr/docparser/gen/ent/teachingportfolio"
	"github.com/google/uuid"
)

// EmployeeUpdate is the builder for updating Employee entities.
type EmployeeUpdate struct {
	config
	hooks    []Hook
	mutation *EmployeeMutation
}

// Where appends a list predicates to the EmployeeUpdate builder.
func (_u *EmployeeUpdate) Where(ps ...predicate.Employee) *EmployeeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *EmployeeUpdate) SetFirstName(v string) *EmployeeUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableFirstName(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *EmployeeUpdate) SetLastName(v string) *EmployeeUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableLastName(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *EmployeeUpdate) ClearLastName() *EmployeeUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *EmployeeUpdate) SetEmail(v string) *EmployeeUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableEmail(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *EmployeeUpdate) ClearEmail() *EmployeeUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *EmployeeUpdate) SetPhoneNumber(v string) *EmployeeUpdate {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillablePhoneNumber(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *EmployeeUpdate) ClearPhoneNumber() *EmployeeUpdate {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetAddress sets the "address" field.
func (_u *EmployeeUpdate) SetAddress(v string) *EmployeeUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableAddress(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *EmployeeUpdate) ClearAddress() *EmployeeUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetStaffNo sets the "staff_no" field.
func (_u *EmployeeUpdate) SetStaffNo(v string) *EmployeeUpdate {
	_u.mutation.SetStaffNo(v)
	return _u
}

// SetNillableStaffNo sets the "staff_no" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableStaffNo(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetStaffNo(*v)
	}
	return _u
}

// ClearStaffNo clears the value of the "staff_no" field.
func (_u *EmployeeUpdate) ClearStaffNo() *EmployeeUpdate {
	_u.mutation.ClearStaffNo()
	return _u
}

// SetPost sets the "post" field.
func (_u *EmployeeUpdate) SetPost(v string) *EmployeeUpdate {
	_u.mutation.SetPost(v)
	return _u
}

// SetNillablePost sets the "post" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillablePost(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetPost(*v)
	}
	return _u
}

// ClearPost clears the value of the "post" field.
func (_u *EmployeeUpdate) ClearPost() *EmployeeUpdate {
	_u.mutation.ClearPost()
	return _u
}

// SetFacultyProgramme sets the "faculty_programme" field.
func (_u *EmployeeUpdate) SetFacultyProgramme(v string) *EmployeeUpdate {
	_u.mutation.SetFacultyProgramme(v)
	return _u
}

// SetNillableFacultyProgramme sets the "faculty_programme" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableFacultyProgramme(v *string) *EmployeeUpdate {
	if v != nil {
		_u.SetFacultyProgramme(*v)
	}
	return _u
}

// ClearFacultyProgramme clears the value of the "faculty_programme" field.
func (_u *EmployeeUpdate) ClearFacultyProgramme() *EmployeeUpdate {
	_u.mutation.ClearFacultyProgramme()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EmployeeUpdate) SetCreatedAt(v time.Time) *EmployeeUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EmployeeUpdate) SetNillableCreatedAt(v *time.Time) *EmployeeUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmployeeUpdate) SetUpdatedAt(v time.Time) *EmployeeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAppraisalIDs adds the "appraisals" edge to the Appraisal entity by IDs.
func (_u *EmployeeUpdate) AddAppraisalIDs(ids ...uuid.UUID) *EmployeeUpdate {
	_u.mutation.AddAppraisalIDs(ids...)
	return _u
}

// AddAppraisals adds the "appraisals" edges to the Appraisal entity.
func (_u *EmployeeUpdate) AddAppraisals(v ...*Appraisal) *EmployeeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppraisalIDs(ids...)
}

// AddPortfolioIDs adds the "portfolios" edge to the TeachingPortfolio entity by IDs.
func (_u *EmployeeUpdate) AddPortfolioIDs(ids ...uuid.UUID) *EmployeeUpdate {
	_u.mutation.AddPortfolioIDs(ids...)
	return _u
}

// AddPortfolios adds the "portfolios" edges to the TeachingPortfolio entity.
func (_u *EmployeeUpdate) AddPortfolios(v ...*TeachingPortfolio) *EmployeeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPortfolioIDs(ids...)
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by IDs.
func (_u *EmployeeUpdate) AddFileIDs(ids ...uuid.UUID) *EmployeeUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the DocumentFile entity.
func (_u *EmployeeUpdate) AddFiles(v ...*DocumentFile) *EmployeeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the EmployeeMutation object of the builder.
func (_u *EmployeeUpdate) Mutation() *EmployeeMutation {
	return _u.mutation
}

// ClearAppraisals clears all "appraisals" edges to the Appraisal entity.
func (_u *EmployeeUpdate) ClearAppraisals() *EmployeeUpdate {
	_u.mutation.ClearAppraisals()
	return _u
}

// RemoveAppraisalIDs removes the "appraisals" edge to Appraisal entities by IDs.
func (_u *EmployeeUpdate) RemoveAppraisalIDs(ids ...uuid.UUID) *EmployeeUpdate {
	_u.mutation.RemoveAppraisalIDs(ids...)
	return _u
}

// RemoveAppraisals removes "appraisals" edges to Appraisal entities.
func (_u *EmployeeUpdate) RemoveAppraisals(v ...*Appraisal) *EmployeeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppraisalIDs(ids...)
}

// ClearPortfolios clears all "portfolios" edges to the TeachingPortfolio entity.
func (_u *EmployeeUpdate) ClearPortfolios() *EmployeeUpdate {
	_u.mutation.ClearPortfolios()
	return _u
}

// RemovePortfolioIDs removes the "portfolios" edge to TeachingPortfolio entities by IDs.
func (_u *EmployeeUpdate) RemovePortfolioIDs(ids ...uuid.UUID) *EmployeeUpdate {
	_u.mutation.RemovePortfolioIDs(ids...)
	return _u
}

// RemovePortfolios removes "portfolios" edges to TeachingPortfolio entities.
func (_u *EmployeeUpdate) RemovePortfolios(v ...*TeachingPortfolio) *EmployeeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePortfolioIDs(ids...)
}

// ClearFiles clears all "files" edges to the DocumentFile entity.
func (_u *EmployeeUpdate) ClearFiles() *EmployeeUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to DocumentFile entities by IDs.
func (_u *EmployeeUpdate) RemoveFileIDs(ids ...uuid.UUID) *EmployeeUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to DocumentFile entities.
func (_u *EmployeeUpdate) RemoveFiles(v ...*DocumentFile) *EmployeeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmployeeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmployeeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmployeeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmployeeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmployeeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := employee.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmployeeUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := employee.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Employee.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StaffNo(); ok {
		if err := employee.StaffNoValidator(v); err != nil {
			return &ValidationError{Name: "staff_no", err: fmt.Errorf(`ent: validator failed for field "Employee.staff_no": %w`, err)}
		}
	}
	return nil
}

func (_u *EmployeeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(employee.Table, employee.Columns, sqlgraph.NewFieldSpec(employee.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(employee.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(employee.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(employee.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(employee.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(employee.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(employee.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(employee.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(employee.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(employee.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.StaffNo(); ok {
		_spec.SetField(employee.FieldStaffNo, field.TypeString, value)
	}
	if _u.mutation.StaffNoCleared() {
		_spec.ClearField(employee.FieldStaffNo, field.TypeString)
	}
	if value, ok := _u.mutation.Post(); ok {
		_spec.SetField(employee.FieldPost, field.TypeString, value)
	}
	if _u.mutation.PostCleared() {
		_spec.ClearField(employee.FieldPost, field.TypeString)
	}
	if value, ok := _u.mutation.FacultyProgramme(); ok {
		_spec.SetField(employee.FieldFacultyProgramme, field.TypeString, value)
	}
	if _u.mutation.FacultyProgrammeCleared() {
		_spec.ClearField(employee.FieldFacultyProgramme, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(employee.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(employee.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AppraisalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.AppraisalsTable,
			Columns: []string{employee.AppraisalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appraisal.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppraisalsIDs(); len(nodes) > 0 && !_u.mutation.AppraisalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.AppraisalsTable,
			Columns: []string{employee.AppraisalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appraisal.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppraisalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.AppraisalsTable,
			Columns: []string{employee.AppraisalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appraisal.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PortfoliosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.PortfoliosTable,
			Columns: []string{employee.PortfoliosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPortfoliosIDs(); len(nodes) > 0 && !_u.mutation.PortfoliosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.PortfoliosTable,
			Columns: []string{employee.PortfoliosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PortfoliosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.PortfoliosTable,
			Columns: []string{employee.PortfoliosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.FilesTable,
			Columns: []string{employee.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.FilesTable,
			Columns: []string{employee.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.FilesTable,
			Columns: []string{employee.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{employee.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmployeeUpdateOne is the builder for updating a single Employee entity.
type EmployeeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmployeeMutation
}

// SetFirstName sets the "first_name" field.
func (_u *EmployeeUpdateOne) SetFirstName(v string) *EmployeeUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableFirstName(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *EmployeeUpdateOne) SetLastName(v string) *EmployeeUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableLastName(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *EmployeeUpdateOne) ClearLastName() *EmployeeUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *EmployeeUpdateOne) SetEmail(v string) *EmployeeUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableEmail(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *EmployeeUpdateOne) ClearEmail() *EmployeeUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhoneNumber sets the "phone_number" field.
func (_u *EmployeeUpdateOne) SetPhoneNumber(v string) *EmployeeUpdateOne {
	_u.mutation.SetPhoneNumber(v)
	return _u
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillablePhoneNumber(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetPhoneNumber(*v)
	}
	return _u
}

// ClearPhoneNumber clears the value of the "phone_number" field.
func (_u *EmployeeUpdateOne) ClearPhoneNumber() *EmployeeUpdateOne {
	_u.mutation.ClearPhoneNumber()
	return _u
}

// SetAddress sets the "address" field.
func (_u *EmployeeUpdateOne) SetAddress(v string) *EmployeeUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableAddress(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *EmployeeUpdateOne) ClearAddress() *EmployeeUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetStaffNo sets the "staff_no" field.
func (_u *EmployeeUpdateOne) SetStaffNo(v string) *EmployeeUpdateOne {
	_u.mutation.SetStaffNo(v)
	return _u
}

// SetNillableStaffNo sets the "staff_no" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableStaffNo(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetStaffNo(*v)
	}
	return _u
}

// ClearStaffNo clears the value of the "staff_no" field.
func (_u *EmployeeUpdateOne) ClearStaffNo() *EmployeeUpdateOne {
	_u.mutation.ClearStaffNo()
	return _u
}

// SetPost sets the "post" field.
func (_u *EmployeeUpdateOne) SetPost(v string) *EmployeeUpdateOne {
	_u.mutation.SetPost(v)
	return _u
}

// SetNillablePost sets the "post" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillablePost(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetPost(*v)
	}
	return _u
}

// ClearPost clears the value of the "post" field.
func (_u *EmployeeUpdateOne) ClearPost() *EmployeeUpdateOne {
	_u.mutation.ClearPost()
	return _u
}

// SetFacultyProgramme sets the "faculty_programme" field.
func (_u *EmployeeUpdateOne) SetFacultyProgramme(v string) *EmployeeUpdateOne {
	_u.mutation.SetFacultyProgramme(v)
	return _u
}

// SetNillableFacultyProgramme sets the "faculty_programme" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableFacultyProgramme(v *string) *EmployeeUpdateOne {
	if v != nil {
		_u.SetFacultyProgramme(*v)
	}
	return _u
}

// ClearFacultyProgramme clears the value of the "faculty_programme" field.
func (_u *EmployeeUpdateOne) ClearFacultyProgramme() *EmployeeUpdateOne {
	_u.mutation.ClearFacultyProgramme()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EmployeeUpdateOne) SetCreatedAt(v time.Time) *EmployeeUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EmployeeUpdateOne) SetNillableCreatedAt(v *time.Time) *EmployeeUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EmployeeUpdateOne) SetUpdatedAt(v time.Time) *EmployeeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAppraisalIDs adds the "appraisals" edge to the Appraisal entity by IDs.
func (_u *EmployeeUpdateOne) AddAppraisalIDs(ids ...uuid.UUID) *EmployeeUpdateOne {
	_u.mutation.AddAppraisalIDs(ids...)
	return _u
}

// AddAppraisals adds the "appraisals" edges to the Appraisal entity.
func (_u *EmployeeUpdateOne) AddAppraisals(v ...*Appraisal) *EmployeeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppraisalIDs(ids...)
}

// AddPortfolioIDs adds the "portfolios" edge to the TeachingPortfolio entity by IDs.
func (_u *EmployeeUpdateOne) AddPortfolioIDs(ids ...uuid.UUID) *EmployeeUpdateOne {
	_u.mutation.AddPortfolioIDs(ids...)
	return _u
}

// AddPortfolios adds the "portfolios" edges to the TeachingPortfolio entity.
func (_u *EmployeeUpdateOne) AddPortfolios(v ...*TeachingPortfolio) *EmployeeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPortfolioIDs(ids...)
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by IDs.
func (_u *EmployeeUpdateOne) AddFileIDs(ids ...uuid.UUID) *EmployeeUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the DocumentFile entity.
func (_u *EmployeeUpdateOne) AddFiles(v ...*DocumentFile) *EmployeeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the EmployeeMutation object of the builder.
func (_u *EmployeeUpdateOne) Mutation() *EmployeeMutation {
	return _u.mutation
}

// ClearAppraisals clears all "appraisals" edges to the Appraisal entity.
func (_u *EmployeeUpdateOne) ClearAppraisals() *EmployeeUpdateOne {
	_u.mutation.ClearAppraisals()
	return _u
}

// RemoveAppraisalIDs removes the "appraisals" edge to Appraisal entities by IDs.
func (_u *EmployeeUpdateOne) RemoveAppraisalIDs(ids ...uuid.UUID) *EmployeeUpdateOne {
	_u.mutation.RemoveAppraisalIDs(ids...)
	return _u
}

// RemoveAppraisals removes "appraisals" edges to Appraisal entities.
func (_u *EmployeeUpdateOne) RemoveAppraisals(v ...*Appraisal) *EmployeeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppraisalIDs(ids...)
}

// ClearPortfolios clears all "portfolios" edges to the TeachingPortfolio entity.
func (_u *EmployeeUpdateOne) ClearPortfolios() *EmployeeUpdateOne {
	_u.mutation.ClearPortfolios()
	return _u
}

// RemovePortfolioIDs removes the "portfolios" edge to TeachingPortfolio entities by IDs.
func (_u *EmployeeUpdateOne) RemovePortfolioIDs(ids ...uuid.UUID) *EmployeeUpdateOne {
	_u.mutation.RemovePortfolioIDs(ids...)
	return _u
}

// RemovePortfolios removes "portfolios" edges to TeachingPortfolio entities.
func (_u *EmployeeUpdateOne) RemovePortfolios(v ...*TeachingPortfolio) *EmployeeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePortfolioIDs(ids...)
}

// ClearFiles clears all "files" edges to the DocumentFile entity.
func (_u *EmployeeUpdateOne) ClearFiles() *EmployeeUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to DocumentFile entities by IDs.
func (_u *EmployeeUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *EmployeeUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to DocumentFile entities.
func (_u *EmployeeUpdateOne) RemoveFiles(v ...*DocumentFile) *EmployeeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the EmployeeUpdate builder.
func (_u *EmployeeUpdateOne) Where(ps ...predicate.Employee) *EmployeeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmployeeUpdateOne) Select(field string, fields ...string) *EmployeeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Employee entity.
func (_u *EmployeeUpdateOne) Save(ctx context.Context) (*Employee, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmployeeUpdateOne) SaveX(ctx context.Context) *Employee {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmployeeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmployeeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EmployeeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := employee.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmployeeUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := employee.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Employee.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StaffNo(); ok {
		if err := employee.StaffNoValidator(v); err != nil {
			return &ValidationError{Name: "staff_no", err: fmt.Errorf(`ent: validator failed for field "Employee.staff_no": %w`, err)}
		}
	}
	return nil
}

func (_u *EmployeeUpdateOne) sqlSave(ctx context.Context) (_node *Employee, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(employee.Table, employee.Columns, sqlgraph.NewFieldSpec(employee.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Employee.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, employee.FieldID)
		for _, f := range fields {
			if !employee.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != employee.FieldID {
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
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(employee.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(employee.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(employee.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(employee.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(employee.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.PhoneNumber(); ok {
		_spec.SetField(employee.FieldPhoneNumber, field.TypeString, value)
	}
	if _u.mutation.PhoneNumberCleared() {
		_spec.ClearField(employee.FieldPhoneNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(employee.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(employee.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.StaffNo(); ok {
		_spec.SetField(employee.FieldStaffNo, field.TypeString, value)
	}
	if _u.mutation.StaffNoCleared() {
		_spec.ClearField(employee.FieldStaffNo, field.TypeString)
	}
	if value, ok := _u.mutation.Post(); ok {
		_spec.SetField(employee.FieldPost, field.TypeString, value)
	}
	if _u.mutation.PostCleared() {
		_spec.ClearField(employee.FieldPost, field.TypeString)
	}
	if value, ok := _u.mutation.FacultyProgramme(); ok {
		_spec.SetField(employee.FieldFacultyProgramme, field.TypeString, value)
	}
	if _u.mutation.FacultyProgrammeCleared() {
		_spec.ClearField(employee.FieldFacultyProgramme, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(employee.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(employee.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AppraisalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.AppraisalsTable,
			Columns: []string{employee.AppraisalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appraisal.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppraisalsIDs(); len(nodes) > 0 && !_u.mutation.AppraisalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.AppraisalsTable,
			Columns: []string{employee.AppraisalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appraisal.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppraisalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.AppraisalsTable,
			Columns: []string{employee.AppraisalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appraisal.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PortfoliosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.PortfoliosTable,
			Columns: []string{employee.PortfoliosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPortfoliosIDs(); len(nodes) > 0 && !_u.mutation.PortfoliosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.PortfoliosTable,
			Columns: []string{employee.PortfoliosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PortfoliosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.PortfoliosTable,
			Columns: []string{employee.PortfoliosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teachingportfolio.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.FilesTable,
			Columns: []string{employee.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.FilesTable,
			Columns: []string{employee.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   employee.FilesTable,
			Columns: []string{employee.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Employee{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{employee.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
