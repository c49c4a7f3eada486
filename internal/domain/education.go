package domain

import (
	"context"
	"time"
)

// Education degrees and study statuses accepted at the schema boundary.
const (
	DegreeDiploma   = "diploma"
	DegreeAssociate = "associate"
	DegreeBachelor  = "bachelor"
	DegreeMaster    = "master"
	DegreeDoctorate = "doctorate"

	StudyStatusStudying  = "studying"
	StudyStatusGraduated = "graduated"
	StudyStatusDropped   = "dropped"
)

type Education struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	University  string     `json:"university"`
	Average     *float64   `json:"average,omitempty"`
	StartYear   int        `json:"start_year"`
	EndYear     *int       `json:"end_year,omitempty"`
	StudyStatus string     `json:"study_status"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type EducationPatch struct {
	Degree      *string  `json:"degree,omitempty"`
	Field       *string  `json:"field,omitempty"`
	University  *string  `json:"university,omitempty"`
	Average     *float64 `json:"average,omitempty"`
	StartYear   *int     `json:"start_year,omitempty"`
	EndYear     *int     `json:"end_year,omitempty"`
	StudyStatus *string  `json:"study_status,omitempty"`
	Description *string  `json:"description,omitempty"`
}

func (p *EducationPatch) Apply(e *Education) {
	if p.Degree != nil {
		e.Degree = *p.Degree
	}
	if p.Field != nil {
		e.Field = *p.Field
	}
	if p.University != nil {
		e.University = *p.University
	}
	if p.Average != nil {
		e.Average = p.Average
	}
	if p.StartYear != nil {
		e.StartYear = *p.StartYear
	}
	if p.EndYear != nil {
		e.EndYear = p.EndYear
	}
	if p.StudyStatus != nil {
		e.StudyStatus = *p.StudyStatus
	}
	if p.Description != nil {
		e.Description = p.Description
	}
}

type EducationRepository interface {
	Create(ctx context.Context, e *Education) error
	GetByID(ctx context.Context, id, userID int64) (*Education, error)
	ListByUser(ctx context.Context, userID int64) ([]Education, error)
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id, userID int64) error
}

type EducationUsecase interface {
	Add(ctx context.Context, e *Education) error
	List(ctx context.Context, userID int64) ([]Education, error)
	Update(ctx context.Context, userID, id int64, patch *EducationPatch) (*Education, error)
	Remove(ctx context.Context, userID, id int64) error
}
