package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/campushr/docparser/gen/ent"
	entappraisal "github.com/campushr/docparser/gen/ent/appraisal"
	entportfolio "github.com/campushr/docparser/gen/ent/teachingportfolio"
	"github.com/campushr/docparser/internal/entity"
	"github.com/campushr/docparser/internal/parser"
)

type AppraisalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appraisal, error)
	// CreateFromRecord persists a parsed appraisal record for an employee.
	// dateCreated orders the appraisal within the employee's research timeline.
	CreateFromRecord(ctx context.Context, employeeID uuid.UUID, rec *parser.Record, dateCreated time.Time) (*entity.Appraisal, error)
	// ListByEmployee returns the employee's appraisals ordered by
	// date_created ascending, oldest first.
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.Appraisal, error)
}

type appraisalRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAppraisalRepository(entc *ent.Client, logger *slog.Logger) AppraisalRepository {
	return &appraisalRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *appraisalRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appraisal, error) {
	row, err := r.ent.Appraisal.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get appraisal", "appraisal_id", id, "error", err)
		return nil, err
	}
	return toAppraisal(row), nil
}

func (r *appraisalRepo) CreateFromRecord(ctx context.Context, employeeID uuid.UUID, rec *parser.Record, dateCreated time.Time) (*entity.Appraisal, error) {
	sections, err := json.Marshal(rec.Sections)
	if err != nil {
		return nil, err
	}
	ratings, err := json.Marshal(rec.Ratings)
	if err != nil {
		return nil, err
	}
	comments, err := json.Marshal(rec.Comments)
	if err != nil {
		return nil, err
	}

	row, err := r.ent.Appraisal.Create().
		SetEmployeeID(employeeID).
		SetDateCreated(dateCreated).
		SetSections(sections).
		SetRatings(ratings).
		SetComments(comments).
		SetCareerAspirations(rec.JoinedSection(parser.SectionCareer)).
		SetOngoingResearch(strings.Join(rec.Sections[parser.SectionOngoingResearch], "\n")).
		SetLastResearch(strings.Join(rec.Sections[parser.SectionLastResearch], "\n")).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create appraisal", "employee_id", employeeID, "error", err)
		return nil, err
	}
	r.logger.Info("appraisal created", "appraisal_id", row.ID, "employee_id", employeeID)
	return toAppraisal(row), nil
}

func (r *appraisalRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.Appraisal, error) {
	rows, err := r.ent.Appraisal.Query().
		Where(entappraisal.EmployeeID(employeeID)).
		Order(entappraisal.ByDateCreated()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list appraisals", "employee_id", employeeID, "error", err)
		return nil, err
	}
	return toAppraisals(rows), nil
}

type PortfolioRepository interface {
	CreateFromRecord(ctx context.Context, employeeID uuid.UUID, rec *parser.Record) (*entity.TeachingPortfolio, error)
	GetLatestByEmployee(ctx context.Context, employeeID uuid.UUID) (*entity.TeachingPortfolio, error)
}

type portfolioRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPortfolioRepository(entc *ent.Client, logger *slog.Logger) PortfolioRepository {
	return &portfolioRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *portfolioRepo) CreateFromRecord(ctx context.Context, employeeID uuid.UUID, rec *parser.Record) (*entity.TeachingPortfolio, error) {
	sections, err := json.Marshal(rec.Sections)
	if err != nil {
		return nil, err
	}
	row, err := r.ent.TeachingPortfolio.Create().
		SetEmployeeID(employeeID).
		SetSections(sections).
		SetTeachingPhilosophy(rec.JoinedSection(parser.SectionTeachingPhilosophy)).
		SetFutureTeachingGoals(rec.JoinedSection(parser.SectionFutureGoals)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create teaching portfolio", "employee_id", employeeID, "error", err)
		return nil, err
	}
	return toPortfolio(row), nil
}

func (r *portfolioRepo) GetLatestByEmployee(ctx context.Context, employeeID uuid.UUID) (*entity.TeachingPortfolio, error) {
	row, err := r.ent.TeachingPortfolio.Query().
		Where(entportfolio.EmployeeID(employeeID)).
		Order(entportfolio.ByCreatedAt(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return toPortfolio(row), nil
}
