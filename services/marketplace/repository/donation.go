package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"daansetu/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const donationColumns = `id, donor_name, contact_number, donation_type, item_name, category, "condition", description, photo_urls, location, contact_email, contact_phone, status, created_at, updated_at`

type donationRepository struct {
	db *pgxpool.Pool
}

func NewDonationRepository(database *pgxpool.Pool) domain.DonationRepo {
	return &donationRepository{
		db: database,
	}
}

func buildDonationListQuery(filter domain.DonationFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(item_name ILIKE $%d OR description ILIKE $%d OR location ILIKE $%d)", n, n, n))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + donationColumns + ` FROM donations`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	return query, args
}

func (dr *donationRepository) GetAllDonation(ctx context.Context, filter domain.DonationFilter) (*[]domain.Donation, error) {
	query, args := buildDonationListQuery(filter)

	rows, err := dr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not get all donations: %v", err)
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan donation: %v", err)
		}
		donations = append(donations, *donation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &donations, nil
}

func (dr *donationRepository) CreateDonation(ctx context.Context, donation *domain.Donation) error {
	insertQuery := `
		INSERT INTO donations (donor_name, contact_number, donation_type, item_name, category, "condition", description, photo_urls, location, contact_email, contact_phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10, $11, $12, $13, $14)
		RETURNING id;
	`

	now := time.Now().UTC()

	photos := encodePhotoUrls(donation.PhotoUrls)

	var id int
	err := dr.db.QueryRow(ctx, insertQuery,
		donation.DonorName, donation.ContactNumber, donation.DonationType, donation.ItemName,
		donation.Category, donation.Condition, donation.Description, photos,
		donation.Location, donation.ContactEmail, donation.ContactPhone, donation.Status,
		now, now,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not insert donation: %v", err)
	}

	donation.ID = id
	donation.CreatedAt = now
	donation.UpdatedAt = now

	return nil
}

func (dr *donationRepository) GetDonationByID(ctx context.Context, id int) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1;`

	donation, err := scanDonation(dr.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, fmt.Errorf("could not get donation: %v", err)
	}

	return donation, nil
}

func buildDonationUpdateQuery(id int, payload *domain.DonationUpdate) (string, []interface{}) {
	var sets []string
	var args []interface{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if payload.DonorName != nil {
		set("donor_name", *payload.DonorName)
	}
	if payload.ContactNumber != nil {
		set("contact_number", *payload.ContactNumber)
	}
	if payload.DonationType != nil {
		set("donation_type", *payload.DonationType)
	}
	if payload.ItemName != nil {
		set("item_name", *payload.ItemName)
	}
	if payload.Category != nil {
		set("category", *payload.Category)
	}
	if payload.Condition != nil {
		set(`"condition"`, *payload.Condition)
	}
	if payload.Description != nil {
		set("description", *payload.Description)
	}
	if payload.PhotoUrls != nil {
		// jsonb needs an explicit cast; pgx would otherwise bind bytes as bytea.
		args = append(args, string(payload.PhotoUrls))
		sets = append(sets, fmt.Sprintf("photo_urls = $%d::jsonb", len(args)))
	}
	if payload.Location != nil {
		set("location", *payload.Location)
	}
	if payload.ContactEmail != nil {
		set("contact_email", *payload.ContactEmail)
	}
	if payload.ContactPhone != nil {
		set("contact_phone", *payload.ContactPhone)
	}
	if payload.Status != nil {
		set("status", *payload.Status)
	}

	set("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE donations SET %s WHERE id = $%d RETURNING %s;",
		strings.Join(sets, ", "), len(args), donationColumns)

	return query, args
}

func (dr *donationRepository) UpdateDonation(ctx context.Context, id int, payload *domain.DonationUpdate) (*domain.Donation, error) {
	query, args := buildDonationUpdateQuery(id, payload)

	donation, err := scanDonation(dr.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, fmt.Errorf("could not update donation: %v", err)
	}

	return donation, nil
}

func (dr *donationRepository) DeleteDonation(ctx context.Context, id int) (*domain.Donation, error) {
	query := `DELETE FROM donations WHERE id = $1 RETURNING ` + donationColumns + `;`

	donation, err := scanDonation(dr.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, fmt.Errorf("could not delete donation: %v", err)
	}

	return donation, nil
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var donation domain.Donation
	var photos []byte

	err := row.Scan(
		&donation.ID, &donation.DonorName, &donation.ContactNumber, &donation.DonationType,
		&donation.ItemName, &donation.Category, &donation.Condition, &donation.Description,
		&photos, &donation.Location, &donation.ContactEmail, &donation.ContactPhone,
		&donation.Status, &donation.CreatedAt, &donation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(photos) > 0 {
		if err := json.Unmarshal(photos, &donation.PhotoUrls); err != nil {
			return nil, fmt.Errorf("invalid photo_urls payload: %v", err)
		}
	}

	return &donation, nil
}

// encodePhotoUrls renders the slice as a jsonb parameter, nil meaning NULL.
func encodePhotoUrls(urls []string) interface{} {
	if urls == nil {
		return nil
	}
	encoded, _ := json.Marshal(urls)
	return string(encoded)
}
