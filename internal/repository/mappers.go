package repository

import (
	"github.com/campushr/docparser/gen/ent"
	"github.com/campushr/docparser/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toEmployee(e *ent.Employee) *entity.Employee {
	return &entity.Employee{
		ID:               e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Email:            strOrEmpty(e.Email),
		PhoneNumber:      strOrEmpty(e.PhoneNumber),
		Address:          strOrEmpty(e.Address),
		StaffNo:          strOrEmpty(e.StaffNo),
		Post:             strOrEmpty(e.Post),
		FacultyProgramme: strOrEmpty(e.FacultyProgramme),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func toAppraisal(a *ent.Appraisal) *entity.Appraisal {
	return &entity.Appraisal{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		DateCreated:       a.DateCreated,
		ReviewPeriodStart: a.ReviewPeriodStart,
		ReviewPeriodEnd:   a.ReviewPeriodEnd,
		Sections:          a.Sections,
		Ratings:           a.Ratings,
		Comments:          a.Comments,
		CareerAspirations: a.CareerAspirations,
		OngoingResearch:   a.OngoingResearch,
		LastResearch:      a.LastResearch,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func toPortfolio(p *ent.TeachingPortfolio) *entity.TeachingPortfolio {
	return &entity.TeachingPortfolio{
		ID:                  p.ID,
		EmployeeID:          p.EmployeeID,
		Sections:            p.Sections,
		TeachingPhilosophy:  p.TeachingPhilosophy,
		FutureTeachingGoals: p.FutureTeachingGoals,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func toDocumentFile(f *ent.DocumentFile) *entity.DocumentFile {
	return &entity.DocumentFile{
		ID:          f.ID,
		EmployeeID:  f.EmployeeID,
		SourcePath:  f.SourcePath,
		ContentHash: f.ContentHash,
		Filename:    f.Filename,
		FileExt:     f.FileExt,
		FileSize:    f.FileSize,
		UploadedAt:  f.UploadedAt,
	}
}

func toParseJob(j *ent.ParseJob) *entity.ParseJob {
	return &entity.ParseJob{
		ID:            j.ID,
		FileID:        j.FileID,
		AppraisalID:   j.AppraisalID,
		DocType:       j.DocType,
		Format:        j.Format,
		StartedAt:     j.StartedAt,
		FinishedAt:    j.FinishedAt,
		Status:        j.Status,
		ErrorMessage:  j.ErrorMessage,
		Pages:         j.Pages,
		ExtractedText: j.ExtractedText,
		RecordJSON:    j.RecordJSON,
		EmptyRecord:   j.EmptyRecord,
		ExtractMethod: j.ExtractMethod,
	}
}

func toAppraisals(rows []*ent.Appraisal) []*entity.Appraisal {
	out := make([]*entity.Appraisal, 0, len(rows))
	for _, r := range rows {
		out = append(out, toAppraisal(r))
	}
	return out
}
