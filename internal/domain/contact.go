package domain

import (
	"context"
	"time"
)

// Housing statuses accepted at the schema boundary.
const (
	HousingOwned    = "owned"
	HousingRented   = "rented"
	HousingParental = "parental"
	HousingOther    = "other"
)

// ContactInfo is the phone/email section of a profile. One row per user.
type ContactInfo struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	Phone          string     `json:"phone"`
	EmergencyPhone *string    `json:"emergency_phone,omitempty"`
	Email          *string    `json:"email,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type ContactInfoPatch struct {
	Phone          *string `json:"phone,omitempty"`
	EmergencyPhone *string `json:"emergency_phone,omitempty"`
	Email          *string `json:"email,omitempty"`
}

func (p *ContactInfoPatch) Apply(c *ContactInfo) {
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.EmergencyPhone != nil {
		c.EmergencyPhone = p.EmergencyPhone
	}
	if p.Email != nil {
		c.Email = p.Email
	}
}

type Address struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	Province      string     `json:"province"`
	City          string     `json:"city"`
	Address       string     `json:"address"`
	PostalCode    *string    `json:"postal_code,omitempty"`
	HousingStatus string     `json:"housing_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type AddressPatch struct {
	Province      *string `json:"province,omitempty"`
	City          *string `json:"city,omitempty"`
	Address       *string `json:"address,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	HousingStatus *string `json:"housing_status,omitempty"`
}

func (p *AddressPatch) Apply(a *Address) {
	if p.Province != nil {
		a.Province = *p.Province
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.Address != nil {
		a.Address = *p.Address
	}
	if p.PostalCode != nil {
		a.PostalCode = p.PostalCode
	}
	if p.HousingStatus != nil {
		a.HousingStatus = *p.HousingStatus
	}
}

type ContactRepository interface {
	CreateInfo(ctx context.Context, c *ContactInfo) error
	GetInfoByUser(ctx context.Context, userID int64) (*ContactInfo, error)
	UpdateInfo(ctx context.Context, c *ContactInfo) error
	DeleteInfo(ctx context.Context, userID int64) error

	CreateAddress(ctx context.Context, a *Address) error
	GetAddress(ctx context.Context, id, userID int64) (*Address, error)
	ListAddresses(ctx context.Context, userID int64) ([]Address, error)
	UpdateAddress(ctx context.Context, a *Address) error
	DeleteAddress(ctx context.Context, id, userID int64) error
}

type ContactUsecase interface {
	CreateInfo(ctx context.Context, c *ContactInfo) error
	GetInfo(ctx context.Context, userID int64) (*ContactInfo, error)
	UpdateInfo(ctx context.Context, userID int64, patch *ContactInfoPatch) (*ContactInfo, error)
	DeleteInfo(ctx context.Context, userID int64) error

	AddAddress(ctx context.Context, a *Address) error
	ListAddresses(ctx context.Context, userID int64) ([]Address, error)
	UpdateAddress(ctx context.Context, userID, id int64, patch *AddressPatch) (*Address, error)
	RemoveAddress(ctx context.Context, userID, id int64) error
}
