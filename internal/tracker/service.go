package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campushr/docparser/internal/nlp"
	"github.com/campushr/docparser/internal/repository"
)

// Service resolves an employee's research status from their stored
// appraisal history.
type Service struct {
	appraisals repository.AppraisalRepository
	matcher    *nlp.Matcher
	logger     *slog.Logger
}

func NewService(appraisals repository.AppraisalRepository, matcher *nlp.Matcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{appraisals: appraisals, matcher: matcher, logger: logger}
}

// ResearchStatus runs the tracker over every appraisal of the employee,
// oldest first, and returns the partitioned outcome.
func (s *Service) ResearchStatus(ctx context.Context, employeeID uuid.UUID) (Outcome, error) {
	rows, err := s.appraisals.ListByEmployee(ctx, employeeID)
	if err != nil {
		return Outcome{}, fmt.Errorf("list appraisals: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, a := range rows {
		records = append(records, Record{
			Ongoing: a.OngoingResearch,
			History: a.LastResearch,
			Date:    a.DateCreated,
		})
	}

	t := New(s.matcher, s.logger)
	out := t.Process(ctx, records)
	s.logger.Debug("research status resolved",
		"employee_id", employeeID,
		"appraisals", len(rows),
		"items", len(t.Items()),
	)
	return out, nil
}
