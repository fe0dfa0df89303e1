// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campushr/docparser/gen/ent/appraisal"
	"github.com/campushr/docparser/gen/ent/documentfile"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/teachingportfolio"
	"github.com/google/uuid"
)

// EmployeeCreate is the builder for creating a Employee entity.
type EmployeeCreate struct {
	config
	mutation *EmployeeMutation
	hooks    []Hook
}

// SetFirstName sets the "first_name" field.
func (_c *EmployeeCreate) SetFirstName(v string) *EmployeeCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *EmployeeCreate) SetLastName(v string) *EmployeeCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableLastName(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *EmployeeCreate) SetEmail(v string) *EmployeeCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableEmail(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhoneNumber sets the "phone_number" field.
func (_c *EmployeeCreate) SetPhoneNumber(v string) *EmployeeCreate {
	_c.mutation.SetPhoneNumber(v)
	return _c
}

// SetNillablePhoneNumber sets the "phone_number" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillablePhoneNumber(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetPhoneNumber(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *EmployeeCreate) SetAddress(v string) *EmployeeCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableAddress(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetStaffNo sets the "staff_no" field.
func (_c *EmployeeCreate) SetStaffNo(v string) *EmployeeCreate {
	_c.mutation.SetStaffNo(v)
	return _c
}

// SetNillableStaffNo sets the "staff_no" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableStaffNo(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetStaffNo(*v)
	}
	return _c
}

// SetPost sets the "post" field.
func (_c *EmployeeCreate) SetPost(v string) *EmployeeCreate {
	_c.mutation.SetPost(v)
	return _c
}

// SetNillablePost sets the "post" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillablePost(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetPost(*v)
	}
	return _c
}

// SetFacultyProgramme sets the "faculty_programme" field.
func (_c *EmployeeCreate) SetFacultyProgramme(v string) *EmployeeCreate {
	_c.mutation.SetFacultyProgramme(v)
	return _c
}

// SetNillableFacultyProgramme sets the "faculty_programme" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableFacultyProgramme(v *string) *EmployeeCreate {
	if v != nil {
		_c.SetFacultyProgramme(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmployeeCreate) SetCreatedAt(v time.Time) *EmployeeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableCreatedAt(v *time.Time) *EmployeeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EmployeeCreate) SetUpdatedAt(v time.Time) *EmployeeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableUpdatedAt(v *time.Time) *EmployeeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EmployeeCreate) SetID(v uuid.UUID) *EmployeeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EmployeeCreate) SetNillableID(v *uuid.UUID) *EmployeeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAppraisalIDs adds the "appraisals" edge to the Appraisal entity by IDs.
func (_c *EmployeeCreate) AddAppraisalIDs(ids ...uuid.UUID) *EmployeeCreate {
	_c.mutation.AddAppraisalIDs(ids...)
	return _c
}

// AddAppraisals adds the "appraisals" edges to the Appraisal entity.
func (_c *EmployeeCreate) AddAppraisals(v ...*Appraisal) *EmployeeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAppraisalIDs(ids...)
}

// AddPortfolioIDs adds the "portfolios" edge to the TeachingPortfolio entity by IDs.
func (_c *EmployeeCreate) AddPortfolioIDs(ids ...uuid.UUID) *EmployeeCreate {
	_c.mutation.AddPortfolioIDs(ids...)
	return _c
}

// AddPortfolios adds the "portfolios" edges to the TeachingPortfolio entity.
func (_c *EmployeeCreate) AddPortfolios(v ...*TeachingPortfolio) *EmployeeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPortfolioIDs(ids...)
}

// AddFileIDs adds the "files" edge to the DocumentFile entity by IDs.
func (_c *EmployeeCreate) AddFileIDs(ids ...uuid.UUID) *EmployeeCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the DocumentFile entity.
func (_c *EmployeeCreate) AddFiles(v ...*DocumentFile) *EmployeeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// Mutation returns the EmployeeMutation object of the builder.
func (_c *EmployeeCreate) Mutation() *EmployeeMutation {
	return _c.mutation
}

// Save creates the Employee in the database.
func (_c *EmployeeCreate) Save(ctx context.Context) (*Employee, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmployeeCreate) SaveX(ctx context.Context) *Employee {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmployeeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmployeeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EmployeeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := employee.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := employee.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := employee.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmployeeCreate) check() error {
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`ent: missing required field "Employee.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := employee.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`ent: validator failed for field "Employee.first_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.StaffNo(); ok {
		if err := employee.StaffNoValidator(v); err != nil {
			return &ValidationError{Name: "staff_no", err: fmt.Errorf(`ent: validator failed for field "Employee.staff_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Employee.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Employee.updated_at"`)}
	}
	return nil
}

func (_c *EmployeeCreate) sqlSave(ctx context.Context) (*Employee, error) {
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

func (_c *EmployeeCreate) createSpec() (*Employee, *sqlgraph.CreateSpec) {
	var (
		_node = &Employee{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(employee.Table, sqlgraph.NewFieldSpec(employee.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(employee.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(employee.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(employee.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.PhoneNumber(); ok {
		_spec.SetField(employee.FieldPhoneNumber, field.TypeString, value)
		_node.PhoneNumber = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(employee.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.StaffNo(); ok {
		_spec.SetField(employee.FieldStaffNo, field.TypeString, value)
		_node.StaffNo = &value
	}
	if value, ok := _c.mutation.Post(); ok {
		_spec.SetField(employee.FieldPost, field.TypeString, value)
		_node.Post = &value
	}
	if value, ok := _c.mutation.FacultyProgramme(); ok {
		_spec.SetField(employee.FieldFacultyProgramme, field.TypeString, value)
		_node.FacultyProgramme = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(employee.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(employee.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AppraisalsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PortfoliosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EmployeeCreateBulk is the builder for creating many Employee entities in bulk.
type EmployeeCreateBulk struct {
	config
	err      error
	builders []*EmployeeCreate
}

// Save creates the Employee entities in the database.
func (_c *EmployeeCreateBulk) Save(ctx context.Context) ([]*Employee, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Employee, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmployeeMutation)
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
func (_c *EmployeeCreateBulk) SaveX(ctx context.Context) []*Employee {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmployeeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmployeeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
