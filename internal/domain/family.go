package domain

import (
	"context"
	"time"
)

// Family relations accepted at the schema boundary.
const (
	RelationFather  = "father"
	RelationMother  = "mother"
	RelationSpouse  = "spouse"
	RelationChild   = "child"
	RelationSibling = "sibling"
)

type FamilyMember struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Relation   string     `json:"relation"`
	FullName   string     `json:"full_name"`
	BirthYear  *int       `json:"birth_year,omitempty"`
	Education  *string    `json:"education,omitempty"`
	Occupation *string    `json:"occupation,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type FamilyMemberPatch struct {
	Relation   *string `json:"relation,omitempty"`
	FullName   *string `json:"full_name,omitempty"`
	BirthYear  *int    `json:"birth_year,omitempty"`
	Education  *string `json:"education,omitempty"`
	Occupation *string `json:"occupation,omitempty"`
}

func (p *FamilyMemberPatch) Apply(f *FamilyMember) {
	if p.Relation != nil {
		f.Relation = *p.Relation
	}
	if p.FullName != nil {
		f.FullName = *p.FullName
	}
	if p.BirthYear != nil {
		f.BirthYear = p.BirthYear
	}
	if p.Education != nil {
		f.Education = p.Education
	}
	if p.Occupation != nil {
		f.Occupation = p.Occupation
	}
}

type FamilyRepository interface {
	Create(ctx context.Context, f *FamilyMember) error
	GetByID(ctx context.Context, id, userID int64) (*FamilyMember, error)
	ListByUser(ctx context.Context, userID int64) ([]FamilyMember, error)
	Update(ctx context.Context, f *FamilyMember) error
	Delete(ctx context.Context, id, userID int64) error
}

type FamilyUsecase interface {
	Add(ctx context.Context, f *FamilyMember) error
	List(ctx context.Context, userID int64) ([]FamilyMember, error)
	Update(ctx context.Context, userID, id int64, patch *FamilyMemberPatch) (*FamilyMember, error)
	Remove(ctx context.Context, userID, id int64) error
}
