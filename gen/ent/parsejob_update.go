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
	"github.com/campushr/docparser/gen/ent/documentfile"
	"github.com/campushr/docparser/gen/ent/parsejob"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/google/uuid"
)

// ParseJobUpdate is the builder for updating ParseJob entities.
type ParseJobUpdate struct {
	config
	hooks    []Hook
	mutation *ParseJobMutation
}

// Where appends a list predicates to the ParseJobUpdate builder.
func (_u *ParseJobUpdate) Where(ps ...predicate.ParseJob) *ParseJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ParseJobUpdate) SetFileID(v uuid.UUID) *ParseJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFileID(v *uuid.UUID) *ParseJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetAppraisalID sets the "appraisal_id" field.
func (_u *ParseJobUpdate) SetAppraisalID(v uuid.UUID) *ParseJobUpdate {
	_u.mutation.SetAppraisalID(v)
	return _u
}

// SetNillableAppraisalID sets the "appraisal_id" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableAppraisalID(v *uuid.UUID) *ParseJobUpdate {
	if v != nil {
		_u.SetAppraisalID(*v)
	}
	return _u
}

// ClearAppraisalID clears the value of the "appraisal_id" field.
func (_u *ParseJobUpdate) ClearAppraisalID() *ParseJobUpdate {
	_u.mutation.ClearAppraisalID()
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *ParseJobUpdate) SetDocType(v string) *ParseJobUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableDocType(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ParseJobUpdate) SetFormat(v string) *ParseJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFormat(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseJobUpdate) SetStartedAt(v time.Time) *ParseJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableStartedAt(v *time.Time) *ParseJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseJobUpdate) SetFinishedAt(v time.Time) *ParseJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableFinishedAt(v *time.Time) *ParseJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseJobUpdate) ClearFinishedAt() *ParseJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseJobUpdate) SetStatus(v string) *ParseJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableStatus(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ParseJobUpdate) ClearStatus() *ParseJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseJobUpdate) SetErrorMessage(v string) *ParseJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableErrorMessage(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseJobUpdate) ClearErrorMessage() *ParseJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPages sets the "pages" field.
func (_u *ParseJobUpdate) SetPages(v int) *ParseJobUpdate {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillablePages(v *int) *ParseJobUpdate {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *ParseJobUpdate) AddPages(v int) *ParseJobUpdate {
	_u.mutation.AddPages(v)
	return _u
}

// ClearPages clears the value of the "pages" field.
func (_u *ParseJobUpdate) ClearPages() *ParseJobUpdate {
	_u.mutation.ClearPages()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ParseJobUpdate) SetExtractedText(v string) *ParseJobUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableExtractedText(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ParseJobUpdate) ClearExtractedText() *ParseJobUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetRecordJSON sets the "record_json" field.
func (_u *ParseJobUpdate) SetRecordJSON(v json.RawMessage) *ParseJobUpdate {
	_u.mutation.SetRecordJSON(v)
	return _u
}

// AppendRecordJSON appends value to the "record_json" field.
func (_u *ParseJobUpdate) AppendRecordJSON(v json.RawMessage) *ParseJobUpdate {
	_u.mutation.AppendRecordJSON(v)
	return _u
}

// ClearRecordJSON clears the value of the "record_json" field.
func (_u *ParseJobUpdate) ClearRecordJSON() *ParseJobUpdate {
	_u.mutation.ClearRecordJSON()
	return _u
}

// SetEmptyRecord sets the "empty_record" field.
func (_u *ParseJobUpdate) SetEmptyRecord(v bool) *ParseJobUpdate {
	_u.mutation.SetEmptyRecord(v)
	return _u
}

// SetNillableEmptyRecord sets the "empty_record" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableEmptyRecord(v *bool) *ParseJobUpdate {
	if v != nil {
		_u.SetEmptyRecord(*v)
	}
	return _u
}

// SetExtractMethod sets the "extract_method" field.
func (_u *ParseJobUpdate) SetExtractMethod(v string) *ParseJobUpdate {
	_u.mutation.SetExtractMethod(v)
	return _u
}

// SetNillableExtractMethod sets the "extract_method" field if the given value is not nil.
func (_u *ParseJobUpdate) SetNillableExtractMethod(v *string) *ParseJobUpdate {
	if v != nil {
		_u.SetExtractMethod(*v)
	}
	return _u
}

// ClearExtractMethod clears the value of the "extract_method" field.
func (_u *ParseJobUpdate) ClearExtractMethod() *ParseJobUpdate {
	_u.mutation.ClearExtractMethod()
	return _u
}

// SetFile sets the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdate) SetFile(v *DocumentFile) *ParseJobUpdate {
	return _u.SetFileID(v.ID)
}

// SetAppraisal sets the "appraisal" edge to the Appraisal entity.
func (_u *ParseJobUpdate) SetAppraisal(v *Appraisal) *ParseJobUpdate {
	return _u.SetAppraisalID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_u *ParseJobUpdate) Mutation() *ParseJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdate) ClearFile() *ParseJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearAppraisal clears the "appraisal" edge to the Appraisal entity.
func (_u *ParseJobUpdate) ClearAppraisal() *ParseJobUpdate {
	_u.mutation.ClearAppraisal()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParseJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParseJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseJobUpdate) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := parsejob.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "ParseJob.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := parsejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ParseJob.format": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.file"`)
	}
	return nil
}

func (_u *ParseJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsejob.Table, parsejob.Columns, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(parsejob.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(parsejob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parsejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(parsejob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parsejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(parsejob.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(parsejob.FieldPages, field.TypeInt, value)
	}
	if _u.mutation.PagesCleared() {
		_spec.ClearField(parsejob.FieldPages, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(parsejob.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(parsejob.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.RecordJSON(); ok {
		_spec.SetField(parsejob.FieldRecordJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecordJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parsejob.FieldRecordJSON, value)
		})
	}
	if _u.mutation.RecordJSONCleared() {
		_spec.ClearField(parsejob.FieldRecordJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmptyRecord(); ok {
		_spec.SetField(parsejob.FieldEmptyRecord, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractMethod(); ok {
		_spec.SetField(parsejob.FieldExtractMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractMethodCleared() {
		_spec.ClearField(parsejob.FieldExtractMethod, field.TypeString)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppraisalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppraisalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParseJobUpdateOne is the builder for updating a single ParseJob entity.
type ParseJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParseJobMutation
}

// SetFileID sets the "file_id" field.
func (_u *ParseJobUpdateOne) SetFileID(v uuid.UUID) *ParseJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFileID(v *uuid.UUID) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetAppraisalID sets the "appraisal_id" field.
func (_u *ParseJobUpdateOne) SetAppraisalID(v uuid.UUID) *ParseJobUpdateOne {
	_u.mutation.SetAppraisalID(v)
	return _u
}

// SetNillableAppraisalID sets the "appraisal_id" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableAppraisalID(v *uuid.UUID) *ParseJobUpdateOne {
	if v != nil {
		_u.SetAppraisalID(*v)
	}
	return _u
}

// ClearAppraisalID clears the value of the "appraisal_id" field.
func (_u *ParseJobUpdateOne) ClearAppraisalID() *ParseJobUpdateOne {
	_u.mutation.ClearAppraisalID()
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *ParseJobUpdateOne) SetDocType(v string) *ParseJobUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableDocType(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *ParseJobUpdateOne) SetFormat(v string) *ParseJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFormat(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseJobUpdateOne) SetStartedAt(v time.Time) *ParseJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableStartedAt(v *time.Time) *ParseJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseJobUpdateOne) SetFinishedAt(v time.Time) *ParseJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ParseJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseJobUpdateOne) ClearFinishedAt() *ParseJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseJobUpdateOne) SetStatus(v string) *ParseJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableStatus(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ParseJobUpdateOne) ClearStatus() *ParseJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseJobUpdateOne) SetErrorMessage(v string) *ParseJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableErrorMessage(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseJobUpdateOne) ClearErrorMessage() *ParseJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPages sets the "pages" field.
func (_u *ParseJobUpdateOne) SetPages(v int) *ParseJobUpdateOne {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillablePages(v *int) *ParseJobUpdateOne {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *ParseJobUpdateOne) AddPages(v int) *ParseJobUpdateOne {
	_u.mutation.AddPages(v)
	return _u
}

// ClearPages clears the value of the "pages" field.
func (_u *ParseJobUpdateOne) ClearPages() *ParseJobUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ParseJobUpdateOne) SetExtractedText(v string) *ParseJobUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableExtractedText(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ParseJobUpdateOne) ClearExtractedText() *ParseJobUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetRecordJSON sets the "record_json" field.
func (_u *ParseJobUpdateOne) SetRecordJSON(v json.RawMessage) *ParseJobUpdateOne {
	_u.mutation.SetRecordJSON(v)
	return _u
}

// AppendRecordJSON appends value to the "record_json" field.
func (_u *ParseJobUpdateOne) AppendRecordJSON(v json.RawMessage) *ParseJobUpdateOne {
	_u.mutation.AppendRecordJSON(v)
	return _u
}

// ClearRecordJSON clears the value of the "record_json" field.
func (_u *ParseJobUpdateOne) ClearRecordJSON() *ParseJobUpdateOne {
	_u.mutation.ClearRecordJSON()
	return _u
}

// SetEmptyRecord sets the "empty_record" field.
func (_u *ParseJobUpdateOne) SetEmptyRecord(v bool) *ParseJobUpdateOne {
	_u.mutation.SetEmptyRecord(v)
	return _u
}

// SetNillableEmptyRecord sets the "empty_record" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableEmptyRecord(v *bool) *ParseJobUpdateOne {
	if v != nil {
		_u.SetEmptyRecord(*v)
	}
	return _u
}

// SetExtractMethod sets the "extract_method" field.
func (_u *ParseJobUpdateOne) SetExtractMethod(v string) *ParseJobUpdateOne {
	_u.mutation.SetExtractMethod(v)
	return _u
}

// SetNillableExtractMethod sets the "extract_method" field if the given value is not nil.
func (_u *ParseJobUpdateOne) SetNillableExtractMethod(v *string) *ParseJobUpdateOne {
	if v != nil {
		_u.SetExtractMethod(*v)
	}
	return _u
}

// ClearExtractMethod clears the value of the "extract_method" field.
func (_u *ParseJobUpdateOne) ClearExtractMethod() *ParseJobUpdateOne {
	_u.mutation.ClearExtractMethod()
	return _u
}

// SetFile sets the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdateOne) SetFile(v *DocumentFile) *ParseJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetAppraisal sets the "appraisal" edge to the Appraisal entity.
func (_u *ParseJobUpdateOne) SetAppraisal(v *Appraisal) *ParseJobUpdateOne {
	return _u.SetAppraisalID(v.ID)
}

// Mutation returns the ParseJobMutation object of the builder.
func (_u *ParseJobUpdateOne) Mutation() *ParseJobMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the DocumentFile entity.
func (_u *ParseJobUpdateOne) ClearFile() *ParseJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearAppraisal clears the "appraisal" edge to the Appraisal entity.
func (_u *ParseJobUpdateOne) ClearAppraisal() *ParseJobUpdateOne {
	_u.mutation.ClearAppraisal()
	return _u
}

// Where appends a list predicates to the ParseJobUpdate builder.
func (_u *ParseJobUpdateOne) Where(ps ...predicate.ParseJob) *ParseJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParseJobUpdateOne) Select(field string, fields ...string) *ParseJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParseJob entity.
func (_u *ParseJobUpdateOne) Save(ctx context.Context) (*ParseJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseJobUpdateOne) SaveX(ctx context.Context) *ParseJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParseJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseJobUpdateOne) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := parsejob.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "ParseJob.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := parsejob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ParseJob.format": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseJob.file"`)
	}
	return nil
}

func (_u *ParseJobUpdateOne) sqlSave(ctx context.Context) (_node *ParseJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsejob.Table, parsejob.Columns, sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParseJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parsejob.FieldID)
		for _, f := range fields {
			if !parsejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parsejob.FieldID {
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
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(parsejob.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(parsejob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parsejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parsejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parsejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parsejob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(parsejob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parsejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parsejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(parsejob.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(parsejob.FieldPages, field.TypeInt, value)
	}
	if _u.mutation.PagesCleared() {
		_spec.ClearField(parsejob.FieldPages, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(parsejob.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(parsejob.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.RecordJSON(); ok {
		_spec.SetField(parsejob.FieldRecordJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecordJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parsejob.FieldRecordJSON, value)
		})
	}
	if _u.mutation.RecordJSONCleared() {
		_spec.ClearField(parsejob.FieldRecordJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmptyRecord(); ok {
		_spec.SetField(parsejob.FieldEmptyRecord, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExtractMethod(); ok {
		_spec.SetField(parsejob.FieldExtractMethod, field.TypeString, value)
	}
	if _u.mutation.ExtractMethodCleared() {
		_spec.ClearField(parsejob.FieldExtractMethod, field.TypeString)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AppraisalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppraisalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ParseJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
