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
	"github.com/campushr/docparser/gen/ent/documentfile"
	"github.com/campushr/docparser/gen/ent/parsejob"
	"github.com/google/uuid"
)

// ParseJobCreate is the builder for creating a ParseJob entity.
type ParseJobCreate struct {
	config
	mutation *ParseJobMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *ParseJobCreate) SetFileID(v uuid.UUID) *ParseJobCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetAppraisalID sets the "appraisal_id" field.
func (_c *ParseJobCreate) SetAppraisalID(v uuid.UUID) *ParseJobCreate {
	_c.mutation.SetAppraisalID(v)
	return _c
}

// SetNillableAppraisalID sets the "appraisal_id" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableAppraisalID(v *uuid.UUID) *ParseJobCreate {
	if v != nil {
		_c.SetAppraisalID(*v)
	}
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *ParseJobCreate) SetDocType(v string) *ParseJobCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *ParseJobCreate) SetFormat(v string) *ParseJobCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ParseJobCreate) SetStartedAt(v time.Time) *ParseJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableStartedAt(v *time.Time) *ParseJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ParseJobCreate) SetFinishedAt(v time.Time) *ParseJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableFinishedAt(v *time.Time) *ParseJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ParseJobCreate) SetStatus(v string) *ParseJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableStatus(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ParseJobCreate) SetErrorMessage(v string) *ParseJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableErrorMessage(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPages sets the "pages" field.
func (_c *ParseJobCreate) SetPages(v int) *ParseJobCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillablePages(v *int) *ParseJobCreate {
	if v != nil {
		_c.SetPages(*v)
	}
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *ParseJobCreate) SetExtractedText(v string) *ParseJobCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableExtractedText(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetRecordJSON sets the "record_json" field.
func (_c *ParseJobCreate) SetRecordJSON(v json.RawMessage) *ParseJobCreate {
	_c.mutation.SetRecordJSON(v)
	return _c
}

// SetEmptyRecord sets the "empty_record" field.
func (_c *ParseJobCreate) SetEmptyRecord(v bool) *ParseJobCreate {
	_c.mutation.SetEmptyRecord(v)
	return _c
}

// SetNillableEmptyRecord sets the "empty_record" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableEmptyRecord(v *bool) *ParseJobCreate {
	if v != nil {
		_c.SetEmptyRecord(*v)
	}
	return _c
}

// SetExtractMethod sets the "extract_method" field.
func (_c *ParseJobCreate) SetExtractMethod(v string) *ParseJobCreate {
	_c.mutation.SetExtractMethod(v)
	return _c
}

// SetNillableExtractMethod sets the "extract_method" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableExtractMethod(v *string) *ParseJobCreate {
	if v != nil {
		_c.SetExtractMethod(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParseJobCreate) SetID(v uuid.UUID) *ParseJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ParseJobCreate) SetNillableID(v *uuid.UUID) *ParseJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the DocumentFile entity.
func (_c *ParseJobCreate) SetFile(v *DocumentFile) *ParseJobCreate {
	return _c.SetFileID(v.ID)
}

// SetAppraisal sets the "appraisal" edge to the Appraisal entity.
func (_c *ParseJobCreate) SetAppraisal(v *Appraisal) *ParseJobCreate {
	return _c.SetAppraisalID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_c *ParseJobCreate) Mutation() *ParseJobMutation {
	return _c.mutation
}

// Save creates the ParseJob in the database.
func (_c *ParseJobCreate) Save(ctx context.Context) (*ParseJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParseJobCreate) SaveX(ctx context.Context) *ParseJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParseJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := parsejob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.EmptyRecord(); !ok {
		v := parsejob.DefaultEmptyRecord
		_c.mutation.SetEmptyRecord(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := parsejob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParseJobCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "ParseJob.file_id"`)}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "ParseJob.doc_type"`)}
	}
	if v, ok := _c.mutation.DocType(); ok {
		if err := parsejob.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "ParseJob.doc_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "ParseJob.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := parsejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ParseJob.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ParseJob.started_at"`)}
	}
	if _, ok := _c.mutation.EmptyRecord(); !ok {
		return &ValidationError{Name: "empty_record", err: errors.New(`ent: missing required field "ParseJob.empty_record"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "ParseJob.file"`)}
	}
	return nil
}

func (_c *ParseJobCreate) sqlSave(ctx context.Context) (*ParseJob, error) {
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

func (_c *ParseJobCreate) createSpec() (*ParseJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ParseJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parsejob.Table, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(parsejob.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(parsejob.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(parsejob.FieldPages, field.TypeInt, value)
		_node.Pages = &value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(parsejob.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.RecordJSON(); ok {
		_spec.SetField(parsejob.FieldRecordJSON, field.TypeJSON, value)
		_node.RecordJSON = value
	}
	if value, ok := _c.mutation.EmptyRecord(); ok {
		_spec.SetField(parsejob.FieldEmptyRecord, field.TypeBool, value)
		_node.EmptyRecord = value
	}
	if value, ok := _c.mutation.ExtractMethod(); ok {
		_spec.SetField(parsejob.FieldExtractMethod, field.TypeString, value)
		_node.ExtractMethod = &value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.FileTable,
			Columns: []string{parsejob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AppraisalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   parsejob.AppraisalTable,
			Columns: []string{parsejob.AppraisalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appraisal.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AppraisalID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ParseJobCreateBulk is the builder for creating many ParseJob entities in bulk.
type ParseJobCreateBulk struct {
	config
	err      error
	builders []*ParseJobCreate
}

// Save creates the ParseJob entities in the database.
func (_c *ParseJobCreateBulk) Save(ctx context.Context) ([]*ParseJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParseJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParseJobMutation)
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
func (_c *ParseJobCreateBulk) SaveX(ctx context.Context) []*ParseJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
