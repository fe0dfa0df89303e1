// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/campushr/docparser/db/ent/schema"
	"github.com/campushr/docparser/gen/ent/appraisal"
	"github.com/campushr/docparser/gen/ent/documentfile"
	"github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/gen/ent/parsejob"
	"github.com/campushr/docparser/gen/ent/teachingportfolio"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appraisalFields := schema.Appraisal{}.Fields()
	_ = appraisalFields
	// appraisalDescDateCreated is the schema descriptor for date_created field.
	appraisalDescDateCreated := appraisalFields[2].Descriptor()
	// appraisal.DefaultDateCreated holds the default value on creation for the date_created field.
	appraisal.DefaultDateCreated = appraisalDescDateCreated.Default.(func() time.Time)
	// appraisalDescCreatedAt is the schema descriptor for created_at field.
	appraisalDescCreatedAt := appraisalFields[11].Descriptor()
	// appraisal.DefaultCreatedAt holds the default value on creation for the created_at field.
	appraisal.DefaultCreatedAt = appraisalDescCreatedAt.Default.(func() time.Time)
	// appraisalDescUpdatedAt is the schema descriptor for updated_at field.
	appraisalDescUpdatedAt := appraisalFields[12].Descriptor()
	// appraisal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appraisal.DefaultUpdatedAt = appraisalDescUpdatedAt.Default.(func() time.Time)
	// appraisal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appraisal.UpdateDefaultUpdatedAt = appraisalDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appraisalDescID is the schema descriptor for id field.
	appraisalDescID := appraisalFields[0].Descriptor()
	// appraisal.DefaultID holds the default value on creation for the id field.
	appraisal.DefaultID = appraisalDescID.Default.(func() uuid.UUID)
	documentfileFields := schema.DocumentFile{}.Fields()
	_ = documentfileFields
	// documentfileDescSourcePath is the schema descriptor for source_path field.
	documentfileDescSourcePath := documentfileFields[2].Descriptor()
	// documentfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	documentfile.SourcePathValidator = documentfileDescSourcePath.Validators[0].(func(string) error)
	// documentfileDescContentHash is the schema descriptor for content_hash field.
	documentfileDescContentHash := documentfileFields[3].Descriptor()
	// documentfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	documentfile.ContentHashValidator = documentfileDescContentHash.Validators[0].(func([]byte) error)
	// documentfileDescFilename is the schema descriptor for filename field.
	documentfileDescFilename := documentfileFields[4].Descriptor()
	// documentfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	documentfile.FilenameValidator = documentfileDescFilename.Validators[0].(func(string) error)
	// documentfileDescFileExt is the schema descriptor for file_ext field.
	documentfileDescFileExt := documentfileFields[5].Descriptor()
	// documentfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	documentfile.FileExtValidator = documentfileDescFileExt.Validators[0].(func(string) error)
	// documentfileDescFileSize is the schema descriptor for file_size field.
	documentfileDescFileSize := documentfileFields[6].Descriptor()
	// documentfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	documentfile.FileSizeValidator = documentfileDescFileSize.Validators[0].(func(int) error)
	// documentfileDescUploadedAt is the schema descriptor for uploaded_at field.
	documentfileDescUploadedAt := documentfileFields[7].Descriptor()
	// documentfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	documentfile.DefaultUploadedAt = documentfileDescUploadedAt.Default.(func() time.Time)
	// documentfileDescID is the schema descriptor for id field.
	documentfileDescID := documentfileFields[0].Descriptor()
	// documentfile.DefaultID holds the default value on creation for the id field.
	documentfile.DefaultID = documentfileDescID.Default.(func() uuid.UUID)
	employeeFields := schema.Employee{}.Fields()
	_ = employeeFields
	// employeeDescFirstName is the schema descriptor for first_name field.
	employeeDescFirstName := employeeFields[1].Descriptor()
	// employee.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	employee.FirstNameValidator = employeeDescFirstName.Validators[0].(func(string) error)
	// employeeDescStaffNo is the schema descriptor for staff_no field.
	employeeDescStaffNo := employeeFields[6].Descriptor()
	// employee.StaffNoValidator is a validator for the "staff_no" field. It is called by the builders before save.
	employee.StaffNoValidator = employeeDescStaffNo.Validators[0].(func(string) error)
	// employeeDescCreatedAt is the schema descriptor for created_at field.
	employeeDescCreatedAt := employeeFields[9].Descriptor()
	// employee.DefaultCreatedAt holds the default value on creation for the created_at field.
	employee.DefaultCreatedAt = employeeDescCreatedAt.Default.(func() time.Time)
	// employeeDescUpdatedAt is the schema descriptor for updated_at field.
	employeeDescUpdatedAt := employeeFields[10].Descriptor()
	// employee.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	employee.DefaultUpdatedAt = employeeDescUpdatedAt.Default.(func() time.Time)
	// employee.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	employee.UpdateDefaultUpdatedAt = employeeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// employeeDescID is the schema descriptor for id field.
	employeeDescID := employeeFields[0].Descriptor()
	// employee.DefaultID holds the default value on creation for the id field.
	employee.DefaultID = employeeDescID.Default.(func() uuid.UUID)
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescDocType is the schema descriptor for doc_type field.
	parsejobDescDocType := parsejobFields[3].Descriptor()
	// parsejob.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	parsejob.DocTypeValidator = func() func(string) error {
		validators := parsejobDescDocType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(doc_type string) error {
			for _, fn := range fns {
				if err := fn(doc_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescFormat is the schema descriptor for format field.
	parsejobDescFormat := parsejobFields[4].Descriptor()
	// parsejob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	parsejob.FormatValidator = func() func(string) error {
		validators := parsejobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[5].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescEmptyRecord is the schema descriptor for empty_record field.
	parsejobDescEmptyRecord := parsejobFields[12].Descriptor()
	// parsejob.DefaultEmptyRecord holds the default value on creation for the empty_record field.
	parsejob.DefaultEmptyRecord = parsejobDescEmptyRecord.Default.(bool)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
	teachingportfolioFields := schema.TeachingPortfolio{}.Fields()
	_ = teachingportfolioFields
	// teachingportfolioDescCreatedAt is the schema descriptor for created_at field.
	teachingportfolioDescCreatedAt := teachingportfolioFields[5].Descriptor()
	// teachingportfolio.DefaultCreatedAt holds the default value on creation for the created_at field.
	teachingportfolio.DefaultCreatedAt = teachingportfolioDescCreatedAt.Default.(func() time.Time)
	// teachingportfolioDescUpdatedAt is the schema descriptor for updated_at field.
	teachingportfolioDescUpdatedAt := teachingportfolioFields[6].Descriptor()
	// teachingportfolio.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	teachingportfolio.DefaultUpdatedAt = teachingportfolioDescUpdatedAt.Default.(func() time.Time)
	// teachingportfolio.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	teachingportfolio.UpdateDefaultUpdatedAt = teachingportfolioDescUpdatedAt.UpdateDefault.(func() time.Time)
	// teachingportfolioDescID is the schema descriptor for id field.
	teachingportfolioDescID := teachingportfolioFields[0].Descriptor()
	// teachingportfolio.DefaultID holds the default value on creation for the id field.
	teachingportfolio.DefaultID = teachingportfolioDescID.Default.(func() uuid.UUID)
}
