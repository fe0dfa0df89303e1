// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/campushr/docparser/gen/ent/appraisal"
	"github.com/campushr/docparser/gen/ent/documentfile"
	"github.com/campushr/docparser/gen/ent/parsejob"
	"github.com/google/uuid"
)

// ParseJob is the model entity for the ParseJob schema.
type ParseJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// AppraisalID holds the value of the "appraisal_id" field.
	AppraisalID *uuid.UUID `json:"appraisal_id,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType string `json:"doc_type,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status *string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Pages holds the value of the "pages" field.
	Pages *int `json:"pages,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText *string `json:"extracted_text,omitempty"`
	// RecordJSON holds the value of the "record_json" field.
	RecordJSON json.RawMessage `json:"record_json,omitempty"`
	// EmptyRecord holds the value of the "empty_record" field.
	EmptyRecord bool `json:"empty_record,omitempty"`
	// ExtractMethod holds the value of the "extract_method" field.
	ExtractMethod *string `json:"extract_method,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParseJobQuery when eager-loading is set.
	Edges        ParseJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParseJobEdges holds the relations/edges for other nodes in the graph.
type ParseJobEdges struct {
	// File holds the value of the file edge.
	File *DocumentFile `json:"file,omitempty"`
	// Appraisal holds the value of the appraisal edge.
	Appraisal *Appraisal `json:"appraisal,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParseJobEdges) FileOrErr() (*DocumentFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// AppraisalOrErr returns the Appraisal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParseJobEdges) AppraisalOrErr() (*Appraisal, error) {
	if e.Appraisal != nil {
		return e.Appraisal, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: appraisal.Label}
	}
	return nil, &NotLoadedError{edge: "appraisal"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParseJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parsejob.FieldAppraisalID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case parsejob.FieldRecordJSON:
			values[i] = new([]byte)
		case parsejob.FieldEmptyRecord:
			values[i] = new(sql.NullBool)
		case parsejob.FieldPages:
			values[i] = new(sql.NullInt64)
		case parsejob.FieldDocType, parsejob.FieldFormat, parsejob.FieldStatus, parsejob.FieldErrorMessage, parsejob.FieldExtractedText, parsejob.FieldExtractMethod:
			values[i] = new(sql.NullString)
		case parsejob.FieldStartedAt, parsejob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case parsejob.FieldID, parsejob.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParseJob fields.
func (_m *ParseJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parsejob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case parsejob.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case parsejob.FieldAppraisalID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field appraisal_id", values[i])
			} else if value.Valid {
				_m.AppraisalID = new(uuid.UUID)
				*_m.AppraisalID = *value.S.(*uuid.UUID)
			}
		case parsejob.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = value.String
			}
		case parsejob.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case parsejob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case parsejob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case parsejob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(string)
				*_m.Status = value.String
			}
		case parsejob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case parsejob.FieldPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pages", values[i])
			} else if value.Valid {
				_m.Pages = new(int)
				*_m.Pages = int(value.Int64)
			}
		case parsejob.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = new(string)
				*_m.ExtractedText = value.String
			}
		case parsejob.FieldRecordJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field record_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecordJSON); err != nil {
					return fmt.Errorf("unmarshal field record_json: %w", err)
				}
			}
		case parsejob.FieldEmptyRecord:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field empty_record", values[i])
			} else if value.Valid {
				_m.EmptyRecord = value.Bool
			}
		case parsejob.FieldExtractMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extract_method", values[i])
			} else if value.Valid {
				_m.ExtractMethod = new(string)
				*_m.ExtractMethod = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParseJob.
// This includes values selected through modifiers, order, etc.
func (_m *ParseJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the ParseJob entity.
func (_m *ParseJob) QueryFile() *DocumentFileQuery {
	return NewParseJobClient(_m.config).QueryFile(_m)
}

// QueryAppraisal queries the "appraisal" edge of the ParseJob entity.
func (_m *ParseJob) QueryAppraisal() *AppraisalQuery {
	return NewParseJobClient(_m.config).QueryAppraisal(_m)
}

// Update returns a builder for updating this ParseJob.
// Note that you need to call ParseJob.Unwrap() before calling this method if this ParseJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParseJob) Update() *ParseJobUpdateOne {
	return NewParseJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParseJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParseJob) Unwrap() *ParseJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParseJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParseJob) String() string {
	var builder strings.Builder
	builder.WriteString("ParseJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	if v := _m.AppraisalID; v != nil {
		builder.WriteString("appraisal_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("doc_type=")
	builder.WriteString(_m.DocType)
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Pages; v != nil {
		builder.WriteString("pages=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractedText; v != nil {
		builder.WriteString("extracted_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("record_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordJSON))
	builder.WriteString(", ")
	builder.WriteString("empty_record=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmptyRecord))
	builder.WriteString(", ")
	if v := _m.ExtractMethod; v != nil {
		builder.WriteString("extract_method=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ParseJobs is a parsable slice of ParseJob.
type ParseJobs []*ParseJob
