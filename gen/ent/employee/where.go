// Code generated by ent, DO NOT EDIT.

package employee

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/campushr/docparser/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldID, id))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldLastName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldEmail, v))
}

// PhoneNumber applies equality check predicate on the "phone_number" field. It's identical to PhoneNumberEQ.
func PhoneNumber(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldPhoneNumber, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldAddress, v))
}

// StaffNo applies equality check predicate on the "staff_no" field. It's identical to StaffNoEQ.
func StaffNo(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldStaffNo, v))
}

// Post applies equality check predicate on the "post" field. It's identical to PostEQ.
func Post(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldPost, v))
}

// FacultyProgramme applies equality check predicate on the "faculty_programme" field. It's identical to FacultyProgrammeEQ.
func FacultyProgramme(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldFacultyProgramme, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldUpdatedAt, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameIsNil applies the IsNil predicate on the "last_name" field.
func LastNameIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldLastName))
}

// LastNameNotNil applies the NotNil predicate on the "last_name" field.
func LastNameNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldLastName))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldLastName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneNumberEQ applies the EQ predicate on the "phone_number" field.
func PhoneNumberEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldPhoneNumber, v))
}

// PhoneNumberNEQ applies the NEQ predicate on the "phone_number" field.
func PhoneNumberNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldPhoneNumber, v))
}

// PhoneNumberIn applies the In predicate on the "phone_number" field.
func PhoneNumberIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldPhoneNumber, vs...))
}

// PhoneNumberNotIn applies the NotIn predicate on the "phone_number" field.
func PhoneNumberNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldPhoneNumber, vs...))
}

// PhoneNumberGT applies the GT predicate on the "phone_number" field.
func PhoneNumberGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldPhoneNumber, v))
}

// PhoneNumberGTE applies the GTE predicate on the "phone_number" field.
func PhoneNumberGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldPhoneNumber, v))
}

// PhoneNumberLT applies the LT predicate on the "phone_number" field.
func PhoneNumberLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldPhoneNumber, v))
}

// PhoneNumberLTE applies the LTE predicate on the "phone_number" field.
func PhoneNumberLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldPhoneNumber, v))
}

// PhoneNumberContains applies the Contains predicate on the "phone_number" field.
func PhoneNumberContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldPhoneNumber, v))
}

// PhoneNumberHasPrefix applies the HasPrefix predicate on the "phone_number" field.
func PhoneNumberHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldPhoneNumber, v))
}

// PhoneNumberHasSuffix applies the HasSuffix predicate on the "phone_number" field.
func PhoneNumberHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldPhoneNumber, v))
}

// PhoneNumberIsNil applies the IsNil predicate on the "phone_number" field.
func PhoneNumberIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldPhoneNumber))
}

// PhoneNumberNotNil applies the NotNil predicate on the "phone_number" field.
func PhoneNumberNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldPhoneNumber))
}

// PhoneNumberEqualFold applies the EqualFold predicate on the "phone_number" field.
func PhoneNumberEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldPhoneNumber, v))
}

// PhoneNumberContainsFold applies the ContainsFold predicate on the "phone_number" field.
func PhoneNumberContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldPhoneNumber, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldAddress, v))
}

// StaffNoEQ applies the EQ predicate on the "staff_no" field.
func StaffNoEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldStaffNo, v))
}

// StaffNoNEQ applies the NEQ predicate on the "staff_no" field.
func StaffNoNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldStaffNo, v))
}

// StaffNoIn applies the In predicate on the "staff_no" field.
func StaffNoIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldStaffNo, vs...))
}

// StaffNoNotIn applies the NotIn predicate on the "staff_no" field.
func StaffNoNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldStaffNo, vs...))
}

// StaffNoGT applies the GT predicate on the "staff_no" field.
func StaffNoGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldStaffNo, v))
}

// StaffNoGTE applies the GTE predicate on the "staff_no" field.
func StaffNoGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldStaffNo, v))
}

// StaffNoLT applies the LT predicate on the "staff_no" field.
func StaffNoLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldStaffNo, v))
}

// StaffNoLTE applies the LTE predicate on the "staff_no" field.
func StaffNoLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldStaffNo, v))
}

// StaffNoContains applies the Contains predicate on the "staff_no" field.
func StaffNoContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldStaffNo, v))
}

// StaffNoHasPrefix applies the HasPrefix predicate on the "staff_no" field.
func StaffNoHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldStaffNo, v))
}

// StaffNoHasSuffix applies the HasSuffix predicate on the "staff_no" field.
func StaffNoHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldStaffNo, v))
}

// StaffNoIsNil applies the IsNil predicate on the "staff_no" field.
func StaffNoIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldStaffNo))
}

// StaffNoNotNil applies the NotNil predicate on the "staff_no" field.
func StaffNoNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldStaffNo))
}

// StaffNoEqualFold applies the EqualFold predicate on the "staff_no" field.
func StaffNoEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldStaffNo, v))
}

// StaffNoContainsFold applies the ContainsFold predicate on the "staff_no" field.
func StaffNoContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldStaffNo, v))
}

// PostEQ applies the EQ predicate on the "post" field.
func PostEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldPost, v))
}

// PostNEQ applies the NEQ predicate on the "post" field.
func PostNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldPost, v))
}

// PostIn applies the In predicate on the "post" field.
func PostIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldPost, vs...))
}

// PostNotIn applies the NotIn predicate on the "post" field.
func PostNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldPost, vs...))
}

// PostGT applies the GT predicate on the "post" field.
func PostGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldPost, v))
}

// PostGTE applies the GTE predicate on the "post" field.
func PostGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldPost, v))
}

// PostLT applies the LT predicate on the "post" field.
func PostLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldPost, v))
}

// PostLTE applies the LTE predicate on the "post" field.
func PostLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldPost, v))
}

// PostContains applies the Contains predicate on the "post" field.
func PostContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldPost, v))
}

// PostHasPrefix applies the HasPrefix predicate on the "post" field.
func PostHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldPost, v))
}

// PostHasSuffix applies the HasSuffix predicate on the "post" field.
func PostHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldPost, v))
}

// PostIsNil applies the IsNil predicate on the "post" field.
func PostIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldPost))
}

// PostNotNil applies the NotNil predicate on the "post" field.
func PostNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldPost))
}

// PostEqualFold applies the EqualFold predicate on the "post" field.
func PostEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldPost, v))
}

// PostContainsFold applies the ContainsFold predicate on the "post" field.
func PostContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldPost, v))
}

// FacultyProgrammeEQ applies the EQ predicate on the "faculty_programme" field.
func FacultyProgrammeEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldFacultyProgramme, v))
}

// FacultyProgrammeNEQ applies the NEQ predicate on the "faculty_programme" field.
func FacultyProgrammeNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldFacultyProgramme, v))
}

// FacultyProgrammeIn applies the In predicate on the "faculty_programme" field.
func FacultyProgrammeIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldFacultyProgramme, vs...))
}

// FacultyProgrammeNotIn applies the NotIn predicate on the "faculty_programme" field.
func FacultyProgrammeNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldFacultyProgramme, vs...))
}

// FacultyProgrammeGT applies the GT predicate on the "faculty_programme" field.
func FacultyProgrammeGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldFacultyProgramme, v))
}

// FacultyProgrammeGTE applies the GTE predicate on the "faculty_programme" field.
func FacultyProgrammeGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldFacultyProgramme, v))
}

// FacultyProgrammeLT applies the LT predicate on the "faculty_programme" field.
func FacultyProgrammeLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldFacultyProgramme, v))
}

// FacultyProgrammeLTE applies the LTE predicate on the "faculty_programme" field.
func FacultyProgrammeLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldFacultyProgramme, v))
}

// FacultyProgrammeContains applies the Contains predicate on the "faculty_programme" field.
func FacultyProgrammeContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldFacultyProgramme, v))
}

// FacultyProgrammeHasPrefix applies the HasPrefix predicate on the "faculty_programme" field.
func FacultyProgrammeHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldFacultyProgramme, v))
}

// FacultyProgrammeHasSuffix applies the HasSuffix predicate on the "faculty_programme" field.
func FacultyProgrammeHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldFacultyProgramme, v))
}

// FacultyProgrammeIsNil applies the IsNil predicate on the "faculty_programme" field.
func FacultyProgrammeIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldFacultyProgramme))
}

// FacultyProgrammeNotNil applies the NotNil predicate on the "faculty_programme" field.
func FacultyProgrammeNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldFacultyProgramme))
}

// FacultyProgrammeEqualFold applies the EqualFold predicate on the "faculty_programme" field.
func FacultyProgrammeEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldFacultyProgramme, v))
}

// FacultyProgrammeContainsFold applies the ContainsFold predicate on the "faculty_programme" field.
func FacultyProgrammeContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldFacultyProgramme, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAppraisals applies the HasEdge predicate on the "appraisals" edge.
func HasAppraisals() predicate.Employee {
	return predicate.Employee(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AppraisalsTable, AppraisalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppraisalsWith applies the HasEdge predicate on the "appraisals" edge with a given conditions (other predicates).
func HasAppraisalsWith(preds ...predicate.Appraisal) predicate.Employee {
	return predicate.Employee(func(s *sql.Selector) {
		step := newAppraisalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPortfolios applies the HasEdge predicate on the "portfolios" edge.
func HasPortfolios() predicate.Employee {
	return predicate.Employee(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PortfoliosTable, PortfoliosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPortfoliosWith applies the HasEdge predicate on the "portfolios" edge with a given conditions (other predicates).
func HasPortfoliosWith(preds ...predicate.TeachingPortfolio) predicate.Employee {
	return predicate.Employee(func(s *sql.Selector) {
		step := newPortfoliosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Employee {
	return predicate.Employee(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.DocumentFile) predicate.Employee {
	return predicate.Employee(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Employee) predicate.Employee {
	return predicate.Employee(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Employee) predicate.Employee {
	return predicate.Employee(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Employee) predicate.Employee {
	return predicate.Employee(sql.NotPredicates(p))
}
