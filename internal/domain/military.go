package domain

import (
	"context"
	"time"
)

// Military service statuses accepted at the schema boundary.
const (
	MilitaryCompleted = "completed"
	MilitaryExempt    = "exempt"
	MilitaryOngoing   = "ongoing"
	MilitaryNotServed = "not_served"
)

// MilitaryService is a single-row-per-user profile section.
type MilitaryService struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	Status        string     `json:"status"`
	ExemptionKind *string    `json:"exemption_kind,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type MilitaryServicePatch struct {
	Status        *string    `json:"status,omitempty"`
	ExemptionKind *string    `json:"exemption_kind,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

func (p *MilitaryServicePatch) Apply(m *MilitaryService) {
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.ExemptionKind != nil {
		m.ExemptionKind = p.ExemptionKind
	}
	if p.StartDate != nil {
		m.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		m.EndDate = p.EndDate
	}
}

type MilitaryRepository interface {
	Create(ctx context.Context, m *MilitaryService) error
	GetByUserID(ctx context.Context, userID int64) (*MilitaryService, error)
	Update(ctx context.Context, m *MilitaryService) error
	Delete(ctx context.Context, userID int64) error
}

type MilitaryUsecase interface {
	CreateRecord(ctx context.Context, m *MilitaryService) error
	GetRecord(ctx context.Context, userID int64) (*MilitaryService, error)
	UpdateRecord(ctx context.Context, userID int64, patch *MilitaryServicePatch) (*MilitaryService, error)
	DeleteRecord(ctx context.Context, userID int64) error
}
