package domain

import (
	"context"
	"time"
)

// Language proficiency levels accepted at the schema boundary.
const (
	LevelWeak      = "weak"
	LevelMedium    = "medium"
	LevelGood      = "good"
	LevelExcellent = "excellent"
)

type LanguageSkill struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Language    string     `json:"language"`
	Reading     string     `json:"reading"`
	Writing     string     `json:"writing"`
	Speaking    string     `json:"speaking"`
	Certificate *string    `json:"certificate,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type LanguageSkillPatch struct {
	Language    *string `json:"language,omitempty"`
	Reading     *string `json:"reading,omitempty"`
	Writing     *string `json:"writing,omitempty"`
	Speaking    *string `json:"speaking,omitempty"`
	Certificate *string `json:"certificate,omitempty"`
}

func (p *LanguageSkillPatch) Apply(l *LanguageSkill) {
	if p.Language != nil {
		l.Language = *p.Language
	}
	if p.Reading != nil {
		l.Reading = *p.Reading
	}
	if p.Writing != nil {
		l.Writing = *p.Writing
	}
	if p.Speaking != nil {
		l.Speaking = *p.Speaking
	}
	if p.Certificate != nil {
		l.Certificate = p.Certificate
	}
}

type LanguageRepository interface {
	Create(ctx context.Context, l *LanguageSkill) error
	GetByID(ctx context.Context, id, userID int64) (*LanguageSkill, error)
	ListByUser(ctx context.Context, userID int64) ([]LanguageSkill, error)
	Update(ctx context.Context, l *LanguageSkill) error
	Delete(ctx context.Context, id, userID int64) error
}

type LanguageUsecase interface {
	Add(ctx context.Context, l *LanguageSkill) error
	List(ctx context.Context, userID int64) ([]LanguageSkill, error)
	Update(ctx context.Context, userID, id int64, patch *LanguageSkillPatch) (*LanguageSkill, error)
	Remove(ctx context.Context, userID, id int64) error
}
