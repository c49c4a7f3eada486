package domain

import (
	"context"
	"time"
)

type WorkExperience struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	Company          string     `json:"company"`
	Position         string     `json:"position"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CurrentlyWorking bool       `json:"currently_working"`
	JobDescription   *string    `json:"job_description,omitempty"`
	LeavingReason    *string    `json:"leaving_reason,omitempty"`
	Salary           *float64   `json:"salary,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type WorkExperiencePatch struct {
	Company          *string    `json:"company,omitempty"`
	Position         *string    `json:"position,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CurrentlyWorking *bool      `json:"currently_working,omitempty"`
	JobDescription   *string    `json:"job_description,omitempty"`
	LeavingReason    *string    `json:"leaving_reason,omitempty"`
	Salary           *float64   `json:"salary,omitempty"`
}

func (p *WorkExperiencePatch) Apply(w *WorkExperience) {
	if p.Company != nil {
		w.Company = *p.Company
	}
	if p.Position != nil {
		w.Position = *p.Position
	}
	if p.StartDate != nil {
		w.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		w.EndDate = p.EndDate
	}
	if p.CurrentlyWorking != nil {
		w.CurrentlyWorking = *p.CurrentlyWorking
	}
	if p.JobDescription != nil {
		w.JobDescription = p.JobDescription
	}
	if p.LeavingReason != nil {
		w.LeavingReason = p.LeavingReason
	}
	if p.Salary != nil {
		w.Salary = p.Salary
	}
}

type WorkExperienceRepository interface {
	Create(ctx context.Context, w *WorkExperience) error
	GetByID(ctx context.Context, id, userID int64) (*WorkExperience, error)
	ListByUser(ctx context.Context, userID int64) ([]WorkExperience, error)
	Update(ctx context.Context, w *WorkExperience) error
	Delete(ctx context.Context, id, userID int64) error
}

type WorkExperienceUsecase interface {
	Add(ctx context.Context, w *WorkExperience) error
	List(ctx context.Context, userID int64) ([]WorkExperience, error)
	Update(ctx context.Context, userID, id int64, patch *WorkExperiencePatch) (*WorkExperience, error)
	Remove(ctx context.Context, userID, id int64) error
}
