package postgres

import (
	"context"
	"errors"
	"time"

	"recruitment-intake-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationDetailsRepo struct {
	db *pgxpool.Pool
}

// NewApplicationDetailsRepository creates a new application details repository
func NewApplicationDetailsRepository(db *pgxpool.Pool) domain.ApplicationDetailsRepository {
	return &applicationDetailsRepo{db: db}
}

func (r *applicationDetailsRepo) Create(ctx context.Context, d *domain.ApplicationDetails) error {
	const query = `
		INSERT INTO application_details (
			user_id, connection_type,
			referrer_name, referrer_relationship, referrer_phone,
			has_relatives_in_company, relative_name, relative_position, relative_relationship,
			available_from_date, preferred_work_schedule,
			expected_salary, salary_currency, salary_period,
			has_health_issue, health_issue_description,
			has_disability, disability_description,
			takes_medication, medication_details,
			has_criminal_record, criminal_record_details,
			favorite_sport, has_transportation, willing_to_relocate, other_comments,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING id`

	d.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx, query,
		d.UserID, d.ConnectionType,
		d.ReferrerName, d.ReferrerRelationship, d.ReferrerPhone,
		d.HasRelativesInCompany, d.RelativeName, d.RelativePosition, d.RelativeRelationship,
		d.AvailableFromDate, d.PreferredWorkSchedule,
		d.ExpectedSalary, d.SalaryCurrency, d.SalaryPeriod,
		d.HasHealthIssue, d.HealthIssueDescription,
		d.HasDisability, d.DisabilityDescription,
		d.TakesMedication, d.MedicationDetails,
		d.HasCriminalRecord, d.CriminalRecordDetails,
		d.FavoriteSport, d.HasTransportation, d.WillingToRelocate, d.OtherComments,
		d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *applicationDetailsRepo) GetByUserID(ctx context.Context, userID int64) (*domain.ApplicationDetails, error) {
	const query = `
		SELECT id, user_id, connection_type,
		       referrer_name, referrer_relationship, referrer_phone,
		       has_relatives_in_company, relative_name, relative_position, relative_relationship,
		       available_from_date, preferred_work_schedule,
		       expected_salary, salary_currency, salary_period,
		       has_health_issue, health_issue_description,
		       has_disability, disability_description,
		       takes_medication, medication_details,
		       has_criminal_record, criminal_record_details,
		       favorite_sport, has_transportation, willing_to_relocate, other_comments,
		       created_at, updated_at
		FROM application_details
		WHERE user_id = $1`

	var d domain.ApplicationDetails
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&d.ID, &d.UserID, &d.ConnectionType,
		&d.ReferrerName, &d.ReferrerRelationship, &d.ReferrerPhone,
		&d.HasRelativesInCompany, &d.RelativeName, &d.RelativePosition, &d.RelativeRelationship,
		&d.AvailableFromDate, &d.PreferredWorkSchedule,
		&d.ExpectedSalary, &d.SalaryCurrency, &d.SalaryPeriod,
		&d.HasHealthIssue, &d.HealthIssueDescription,
		&d.HasDisability, &d.DisabilityDescription,
		&d.TakesMedication, &d.MedicationDetails,
		&d.HasCriminalRecord, &d.CriminalRecordDetails,
		&d.FavoriteSport, &d.HasTransportation, &d.WillingToRelocate, &d.OtherComments,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *applicationDetailsRepo) Update(ctx context.Context, d *domain.ApplicationDetails) error {
	const query = `
		UPDATE application_details
		SET connection_type = $2,
		    referrer_name = $3, referrer_relationship = $4, referrer_phone = $5,
		    has_relatives_in_company = $6, relative_name = $7, relative_position = $8, relative_relationship = $9,
		    available_from_date = $10, preferred_work_schedule = $11,
		    expected_salary = $12, salary_currency = $13, salary_period = $14,
		    has_health_issue = $15, health_issue_description = $16,
		    has_disability = $17, disability_description = $18,
		    takes_medication = $19, medication_details = $20,
		    has_criminal_record = $21, criminal_record_details = $22,
		    favorite_sport = $23, has_transportation = $24, willing_to_relocate = $25, other_comments = $26,
		    updated_at = $27
		WHERE user_id = $1`

	now := time.Now()
	result, err := r.db.Exec(ctx, query,
		d.UserID, d.ConnectionType,
		d.ReferrerName, d.ReferrerRelationship, d.ReferrerPhone,
		d.HasRelativesInCompany, d.RelativeName, d.RelativePosition, d.RelativeRelationship,
		d.AvailableFromDate, d.PreferredWorkSchedule,
		d.ExpectedSalary, d.SalaryCurrency, d.SalaryPeriod,
		d.HasHealthIssue, d.HealthIssueDescription,
		d.HasDisability, d.DisabilityDescription,
		d.TakesMedication, d.MedicationDetails,
		d.HasCriminalRecord, d.CriminalRecordDetails,
		d.FavoriteSport, d.HasTransportation, d.WillingToRelocate, d.OtherComments,
		now,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	d.UpdatedAt = &now
	return nil
}

func (r *applicationDetailsRepo) Delete(ctx context.Context, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM application_details WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
