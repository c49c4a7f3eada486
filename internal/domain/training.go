package domain

import (
	"context"
	"time"
)

type TrainingCourse struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	Title          string     `json:"title"`
	Institute      string     `json:"institute"`
	DurationHours  *int       `json:"duration_hours,omitempty"`
	Year           *int       `json:"year,omitempty"`
	HasCertificate bool       `json:"has_certificate"`
	Description    *string    `json:"description,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type TrainingCoursePatch struct {
	Title          *string `json:"title,omitempty"`
	Institute      *string `json:"institute,omitempty"`
	DurationHours  *int    `json:"duration_hours,omitempty"`
	Year           *int    `json:"year,omitempty"`
	HasCertificate *bool   `json:"has_certificate,omitempty"`
	Description    *string `json:"description,omitempty"`
}

func (p *TrainingCoursePatch) Apply(t *TrainingCourse) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Institute != nil {
		t.Institute = *p.Institute
	}
	if p.DurationHours != nil {
		t.DurationHours = p.DurationHours
	}
	if p.Year != nil {
		t.Year = p.Year
	}
	if p.HasCertificate != nil {
		t.HasCertificate = *p.HasCertificate
	}
	if p.Description != nil {
		t.Description = p.Description
	}
}

type TrainingRepository interface {
	Create(ctx context.Context, t *TrainingCourse) error
	GetByID(ctx context.Context, id, userID int64) (*TrainingCourse, error)
	ListByUser(ctx context.Context, userID int64) ([]TrainingCourse, error)
	Update(ctx context.Context, t *TrainingCourse) error
	Delete(ctx context.Context, id, userID int64) error
}

type TrainingUsecase interface {
	Add(ctx context.Context, t *TrainingCourse) error
	List(ctx context.Context, userID int64) ([]TrainingCourse, error)
	Update(ctx context.Context, userID, id int64, patch *TrainingCoursePatch) (*TrainingCourse, error)
	Remove(ctx context.Context, userID, id int64) error
}
