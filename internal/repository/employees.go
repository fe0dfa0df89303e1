package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campushr/docparser/gen/ent"
	entemployee "github.com/campushr/docparser/gen/ent/employee"
	"github.com/campushr/docparser/internal/entity"
	"github.com/campushr/docparser/internal/parser"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	GetByStaffNo(ctx context.Context, staffNo string) (*entity.Employee, error)
	Create(ctx context.Context, firstName, lastName string) (*entity.Employee, error)
	// UpsertFromContact locates an employee by staff number, then by email,
	// and creates one when neither matches. Blank contact fields never
	// overwrite stored values.
	UpsertFromContact(ctx context.Context, c parser.Contact) (*entity.Employee, bool, error)
	// EnrichContact fills blank contact fields on a known employee.
	EnrichContact(ctx context.Context, id uuid.UUID, c parser.Contact) (*entity.Employee, error)
}

type employeeRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewEmployeeRepository(entc *ent.Client, logger *slog.Logger) EmployeeRepository {
	return &employeeRepo{
		ent:    entc,
		logger: logger,
	}
}

// CountEmployees is a connectivity probe used by the dbhealth tool.
func CountEmployees(ctx context.Context, entc *ent.Client) (int, error) {
	return entc.Employee.Query().Count(ctx)
}

func (r *employeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	row, err := r.ent.Employee.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get employee", "employee_id", id, "error", err)
		return nil, err
	}
	return toEmployee(row), nil
}

func (r *employeeRepo) GetByStaffNo(ctx context.Context, staffNo string) (*entity.Employee, error) {
	row, err := r.ent.Employee.Query().
		Where(entemployee.StaffNo(staffNo)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toEmployee(row), nil
}

func (r *employeeRepo) Create(ctx context.Context, firstName, lastName string) (*entity.Employee, error) {
	row, err := r.ent.Employee.Create().
		SetFirstName(firstName).
		SetLastName(lastName).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create employee", "first_name", firstName, "error", err)
		return nil, err
	}
	return toEmployee(row), nil
}

func (r *employeeRepo) EnrichContact(ctx context.Context, id uuid.UUID, c parser.Contact) (*entity.Employee, error) {
	row, err := r.ent.Employee.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	upd := row.Update()
	if c.Email != "" && strOrEmpty(row.Email) == "" {
		upd.SetEmail(c.Email)
	}
	if c.Phone != "" && strOrEmpty(row.PhoneNumber) == "" {
		upd.SetPhoneNumber(c.Phone)
	}
	if c.Address != "" && strOrEmpty(row.Address) == "" {
		upd.SetAddress(c.Address)
	}
	if c.StaffNo != "" && strOrEmpty(row.StaffNo) == "" {
		upd.SetStaffNo(c.StaffNo)
	}
	row, err = upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to enrich employee contact", "employee_id", id, "error", err)
		return nil, err
	}
	return toEmployee(row), nil
}

func (r *employeeRepo) UpsertFromContact(ctx context.Context, c parser.Contact) (*entity.Employee, bool, error) {
	var row *ent.Employee
	var err error

	if c.StaffNo != "" {
		row, err = r.ent.Employee.Query().
			Where(entemployee.StaffNo(c.StaffNo)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, false, err
		}
	}
	if row == nil && c.Email != "" {
		row, err = r.ent.Employee.Query().
			Where(entemployee.Email(c.Email)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, false, err
		}
	}

	if row != nil {
		upd := row.Update()
		if c.Email != "" && strOrEmpty(row.Email) == "" {
			upd.SetEmail(c.Email)
		}
		if c.Phone != "" && strOrEmpty(row.PhoneNumber) == "" {
			upd.SetPhoneNumber(c.Phone)
		}
		if c.Address != "" && strOrEmpty(row.Address) == "" {
			upd.SetAddress(c.Address)
		}
		if c.StaffNo != "" && strOrEmpty(row.StaffNo) == "" {
			upd.SetStaffNo(c.StaffNo)
		}
		row, err = upd.Save(ctx)
		if err != nil {
			r.logger.Error("failed to update employee from contact", "employee_id", row.ID, "error", err)
			return nil, false, err
		}
		return toEmployee(row), true, nil
	}

	firstName := c.FirstName
	if firstName == "" {
		firstName = "Unknown"
	}
	create := r.ent.Employee.Create().
		SetFirstName(firstName).
		SetLastName(c.LastName)
	if c.Email != "" {
		create.SetEmail(c.Email)
	}
	if c.Phone != "" {
		create.SetPhoneNumber(c.Phone)
	}
	if c.Address != "" {
		create.SetAddress(c.Address)
	}
	if c.StaffNo != "" {
		create.SetStaffNo(c.StaffNo)
	}
	row, err = create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create employee from contact", "staff_no", c.StaffNo, "error", err)
		return nil, false, err
	}
	r.logger.Info("created employee from parsed contact", "employee_id", row.ID, "staff_no", c.StaffNo)
	return toEmployee(row), false, nil
}
