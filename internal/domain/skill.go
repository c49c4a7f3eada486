package domain

import (
	"context"
	"time"
)

// Skill proficiency levels accepted at the schema boundary.
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
	SkillExpert       = "expert"
)

type Skill struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	Name            string     `json:"skill_name"`
	Level           string     `json:"skill_level"`
	YearsExperience *int       `json:"years_of_experience,omitempty"`
	Description     *string    `json:"description,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type SkillPatch struct {
	Name            *string `json:"skill_name,omitempty"`
	Level           *string `json:"skill_level,omitempty"`
	YearsExperience *int    `json:"years_of_experience,omitempty"`
	Description     *string `json:"description,omitempty"`
}

func (p *SkillPatch) Apply(s *Skill) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Level != nil {
		s.Level = *p.Level
	}
	if p.YearsExperience != nil {
		s.YearsExperience = p.YearsExperience
	}
	if p.Description != nil {
		s.Description = p.Description
	}
}

type SkillRepository interface {
	Create(ctx context.Context, s *Skill) error
	GetByID(ctx context.Context, id, userID int64) (*Skill, error)
	ListByUser(ctx context.Context, userID int64) ([]Skill, error)
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id, userID int64) error
}

type SkillUsecase interface {
	Add(ctx context.Context, s *Skill) error
	List(ctx context.Context, userID int64) ([]Skill, error)
	Update(ctx context.Context, userID, id int64, patch *SkillPatch) (*Skill, error)
	Remove(ctx context.Context, userID, id int64) error
}
