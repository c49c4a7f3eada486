package domain

import (
	"context"
	"time"
)

// Gender and marital status values accepted at the schema boundary.
const (
	GenderMale   = "male"
	GenderFemale = "female"

	MaritalSingle  = "single"
	MaritalMarried = "married"
)

// Applicant is the personal-data section of a profile. One row per user.
type Applicant struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	FatherName    *string    `json:"father_name,omitempty"`
	NationalID    string     `json:"national_id"`
	BirthDate     time.Time  `json:"birth_date"`
	Gender        string     `json:"gender"`
	MaritalStatus string     `json:"marital_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type ApplicantPatch struct {
	FirstName     *string    `json:"first_name,omitempty"`
	LastName      *string    `json:"last_name,omitempty"`
	FatherName    *string    `json:"father_name,omitempty"`
	NationalID    *string    `json:"national_id,omitempty"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Gender        *string    `json:"gender,omitempty"`
	MaritalStatus *string    `json:"marital_status,omitempty"`
}

func (p *ApplicantPatch) Apply(a *Applicant) {
	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
	if p.FatherName != nil {
		a.FatherName = p.FatherName
	}
	if p.NationalID != nil {
		a.NationalID = *p.NationalID
	}
	if p.BirthDate != nil {
		a.BirthDate = *p.BirthDate
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.MaritalStatus != nil {
		a.MaritalStatus = *p.MaritalStatus
	}
}

type ApplicantRepository interface {
	Create(ctx context.Context, a *Applicant) error
	GetByUserID(ctx context.Context, userID int64) (*Applicant, error)
	Update(ctx context.Context, a *Applicant) error
	Delete(ctx context.Context, userID int64) error
}

type ApplicantUsecase interface {
	CreateProfile(ctx context.Context, a *Applicant) error
	GetProfile(ctx context.Context, userID int64) (*Applicant, error)
	UpdateProfile(ctx context.Context, userID int64, patch *ApplicantPatch) (*Applicant, error)
	DeleteProfile(ctx context.Context, userID int64) error
}
