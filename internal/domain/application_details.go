package domain

import (
	"context"
	"time"
)

// How the applicant heard about the position.
const (
	ConnectionInternet  = "internet"
	ConnectionAds       = "ads"
	ConnectionPersonal  = "personal"
	ConnectionJobAgency = "job_agency"
	ConnectionReferral  = "referral"
)

// Preferred work schedules.
const (
	ScheduleFullTime   = "full_time"
	SchedulePartTime   = "part_time"
	ScheduleDayShift   = "day_shift"
	ScheduleShiftBased = "shift_based"
	ScheduleFlexible   = "flexible"
)

// ApplicationDetails is the single-row-per-user disclosure form filled in
// before applying: how the applicant found the opening, referrer and
// relatives-in-company disclosures, availability, salary expectation, and
// health/record declarations.
type ApplicationDetails struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	ConnectionType string `json:"connection_type"`

	ReferrerName         *string `json:"referrer_name,omitempty"`
	ReferrerRelationship *string `json:"referrer_relationship,omitempty"`
	ReferrerPhone        *string `json:"referrer_phone,omitempty"`

	HasRelativesInCompany bool    `json:"has_relatives_in_company"`
	RelativeName          *string `json:"relative_name,omitempty"`
	RelativePosition      *string `json:"relative_position,omitempty"`
	RelativeRelationship  *string `json:"relative_relationship,omitempty"`

	AvailableFromDate time.Time `json:"available_from_date"`

	PreferredWorkSchedule string `json:"preferred_work_schedule"`

	ExpectedSalary float64 `json:"expected_salary"`
	SalaryCurrency string  `json:"salary_currency"`
	SalaryPeriod   string  `json:"salary_period"`

	HasHealthIssue         bool    `json:"has_health_issue"`
	HealthIssueDescription *string `json:"health_issue_description,omitempty"`

	HasDisability         bool    `json:"has_disability"`
	DisabilityDescription *string `json:"disability_description,omitempty"`

	TakesMedication   bool    `json:"takes_medication"`
	MedicationDetails *string `json:"medication_details,omitempty"`

	HasCriminalRecord     bool    `json:"has_criminal_record"`
	CriminalRecordDetails *string `json:"criminal_record_details,omitempty"`

	FavoriteSport *string `json:"favorite_sport,omitempty"`

	HasTransportation bool    `json:"has_transportation"`
	WillingToRelocate bool    `json:"willing_to_relocate"`
	OtherComments     *string `json:"other_comments,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type ApplicationDetailsPatch struct {
	ConnectionType *string `json:"connection_type,omitempty"`

	ReferrerName         *string `json:"referrer_name,omitempty"`
	ReferrerRelationship *string `json:"referrer_relationship,omitempty"`
	ReferrerPhone        *string `json:"referrer_phone,omitempty"`

	HasRelativesInCompany *bool   `json:"has_relatives_in_company,omitempty"`
	RelativeName          *string `json:"relative_name,omitempty"`
	RelativePosition      *string `json:"relative_position,omitempty"`
	RelativeRelationship  *string `json:"relative_relationship,omitempty"`

	AvailableFromDate *time.Time `json:"available_from_date,omitempty"`

	PreferredWorkSchedule *string `json:"preferred_work_schedule,omitempty"`

	ExpectedSalary *float64 `json:"expected_salary,omitempty"`
	SalaryCurrency *string  `json:"salary_currency,omitempty"`
	SalaryPeriod   *string  `json:"salary_period,omitempty"`

	HasHealthIssue         *bool   `json:"has_health_issue,omitempty"`
	HealthIssueDescription *string `json:"health_issue_description,omitempty"`

	HasDisability         *bool   `json:"has_disability,omitempty"`
	DisabilityDescription *string `json:"disability_description,omitempty"`

	TakesMedication   *bool   `json:"takes_medication,omitempty"`
	MedicationDetails *string `json:"medication_details,omitempty"`

	HasCriminalRecord     *bool   `json:"has_criminal_record,omitempty"`
	CriminalRecordDetails *string `json:"criminal_record_details,omitempty"`

	FavoriteSport *string `json:"favorite_sport,omitempty"`

	HasTransportation *bool   `json:"has_transportation,omitempty"`
	WillingToRelocate *bool   `json:"willing_to_relocate,omitempty"`
	OtherComments     *string `json:"other_comments,omitempty"`
}

func (p *ApplicationDetailsPatch) Apply(d *ApplicationDetails) {
	if p.ConnectionType != nil {
		d.ConnectionType = *p.ConnectionType
	}
	if p.ReferrerName != nil {
		d.ReferrerName = p.ReferrerName
	}
	if p.ReferrerRelationship != nil {
		d.ReferrerRelationship = p.ReferrerRelationship
	}
	if p.ReferrerPhone != nil {
		d.ReferrerPhone = p.ReferrerPhone
	}
	if p.HasRelativesInCompany != nil {
		d.HasRelativesInCompany = *p.HasRelativesInCompany
	}
	if p.RelativeName != nil {
		d.RelativeName = p.RelativeName
	}
	if p.RelativePosition != nil {
		d.RelativePosition = p.RelativePosition
	}
	if p.RelativeRelationship != nil {
		d.RelativeRelationship = p.RelativeRelationship
	}
	if p.AvailableFromDate != nil {
		d.AvailableFromDate = *p.AvailableFromDate
	}
	if p.PreferredWorkSchedule != nil {
		d.PreferredWorkSchedule = *p.PreferredWorkSchedule
	}
	if p.ExpectedSalary != nil {
		d.ExpectedSalary = *p.ExpectedSalary
	}
	if p.SalaryCurrency != nil {
		d.SalaryCurrency = *p.SalaryCurrency
	}
	if p.SalaryPeriod != nil {
		d.SalaryPeriod = *p.SalaryPeriod
	}
	if p.HasHealthIssue != nil {
		d.HasHealthIssue = *p.HasHealthIssue
	}
	if p.HealthIssueDescription != nil {
		d.HealthIssueDescription = p.HealthIssueDescription
	}
	if p.HasDisability != nil {
		d.HasDisability = *p.HasDisability
	}
	if p.DisabilityDescription != nil {
		d.DisabilityDescription = p.DisabilityDescription
	}
	if p.TakesMedication != nil {
		d.TakesMedication = *p.TakesMedication
	}
	if p.MedicationDetails != nil {
		d.MedicationDetails = p.MedicationDetails
	}
	if p.HasCriminalRecord != nil {
		d.HasCriminalRecord = *p.HasCriminalRecord
	}
	if p.CriminalRecordDetails != nil {
		d.CriminalRecordDetails = p.CriminalRecordDetails
	}
	if p.FavoriteSport != nil {
		d.FavoriteSport = p.FavoriteSport
	}
	if p.HasTransportation != nil {
		d.HasTransportation = *p.HasTransportation
	}
	if p.WillingToRelocate != nil {
		d.WillingToRelocate = *p.WillingToRelocate
	}
	if p.OtherComments != nil {
		d.OtherComments = p.OtherComments
	}
}

type ApplicationDetailsRepository interface {
	Create(ctx context.Context, d *ApplicationDetails) error
	GetByUserID(ctx context.Context, userID int64) (*ApplicationDetails, error)
	Update(ctx context.Context, d *ApplicationDetails) error
	Delete(ctx context.Context, userID int64) error
}

type ApplicationDetailsUsecase interface {
	CreateRecord(ctx context.Context, d *ApplicationDetails) error
	GetRecord(ctx context.Context, userID int64) (*ApplicationDetails, error)
	UpdateRecord(ctx context.Context, userID int64, patch *ApplicationDetailsPatch) (*ApplicationDetails, error)
	DeleteRecord(ctx context.Context, userID int64) error
}
