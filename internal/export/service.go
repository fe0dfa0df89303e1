package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/campushr/docparser/internal/entity"
	"github.com/campushr/docparser/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	appraisalsRepo repository.AppraisalRepository
	employeesRepo  repository.EmployeeRepository
	logger         *slog.Logger
}

func NewService(appraisals repository.AppraisalRepository, employees repository.EmployeeRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{appraisalsRepo: appraisals, employeesRepo: employees, logger: logger}
}

// ExportAppraisalsXLSX returns an XLSX workbook (as bytes) for the given
// employee and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all appraisals for the employee.
func (s *Service) ExportAppraisalsXLSX(ctx context.Context, employeeID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	emp, err := s.employeesRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("query employee: %w", err)
	}

	all, err := s.appraisalsRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("query appraisals: %w", err)
	}
	recs := filterByDate(all, fromDate, toDate)

	f := excelize.NewFile()
	const sheet = "Appraisals"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Employee",
		"Appraisal Date",
		"Achievements",
		"Goals",
		"Challenges",
		"Development Needs",
		"Training",
		"Career Aspirations",
		"Ratings",
		"Comments",
		"Ongoing Research",
		"Completed Research",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	name := strings.TrimSpace(emp.FirstName + " " + emp.LastName)
	row := 2
	for _, a := range recs {
		sections := decodeSections(a.Sections)
		ratings := decodeRatings(a.Ratings)
		comments := decodeComments(a.Comments)

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, name)
		write(2, a.DateCreated.Format("2006-01-02"))
		write(3, joinBucket(sections["achievements"]))
		write(4, joinBucket(sections["goals"]))
		write(5, joinBucket(sections["challenges"]))
		write(6, joinBucket(sections["development"]))
		write(7, joinBucket(sections["training"]))
		write(8, a.CareerAspirations)
		write(9, formatRatings(ratings))
		write(10, formatComments(comments))
		write(11, a.OngoingResearch)
		write(12, a.LastResearch)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("exported appraisals",
		"employee_id", employeeID,
		"rows", len(recs),
		"duration", time.Since(start),
	)
	return buf.Bytes(), nil
}

func filterByDate(rows []*entity.Appraisal, from, to *time.Time) []*entity.Appraisal {
	out := make([]*entity.Appraisal, 0, len(rows))
	for _, a := range rows {
		if from != nil && a.DateCreated.Before(*from) {
			continue
		}
		if to != nil && a.DateCreated.After(*to) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func decodeSections(raw json.RawMessage) map[string][]string {
	out := map[string][]string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func decodeRatings(raw json.RawMessage) map[string]float64 {
	out := map[string]float64{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func decodeComments(raw json.RawMessage) map[string]string {
	out := map[string]string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func joinBucket(lines []string) string {
	return strings.Join(lines, "\n")
}

func formatRatings(ratings map[string]float64) string {
	if len(ratings) == 0 {
		return ""
	}
	keys := make([]string, 0, len(ratings))
	for k := range ratings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %g", k, ratings[k]))
	}
	return strings.Join(parts, "\n")
}

func formatComments(comments map[string]string) string {
	if len(comments) == 0 {
		return ""
	}
	keys := make([]string, 0, len(comments))
	for k := range comments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, comments[k]))
	}
	return strings.Join(parts, "\n")
}
