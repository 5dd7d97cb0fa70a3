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

const requestColumns = `id, donation_id, requester_name, requester_email, requester_contact, ngo_name, purpose, message, status, created_at, updated_at`

// sortColumns whitelists the sortable fields; anything else falls back to
// created_at, matching the list endpoint's contract.
var sortColumns = map[string]string{
	"createdAt":     "r.created_at",
	"updatedAt":     "r.updated_at",
	"requesterName": "r.requester_name",
	"status":        "r.status",
}

type requestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(database *pgxpool.Pool) domain.RequestRepo {
	return &requestRepository{
		db: database,
	}
}

const requestSummaryJoin = `
	SELECT r.id, r.donation_id, r.requester_name, r.requester_email, r.requester_contact, r.ngo_name, r.purpose, r.message, r.status, r.created_at, r.updated_at,
	d.id, d.donor_name, d.item_name, d.category, d."condition", d.description, d.location, d.status
	FROM requests r
	LEFT JOIN donations d ON r.donation_id = d.id`

func buildRequestListQuery(filter domain.RequestFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(r.requester_name ILIKE $%d OR r.ngo_name ILIKE $%d OR r.purpose ILIKE $%d)", n, n, n))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", len(args)))
	}
	if filter.DonationID != nil {
		args = append(args, *filter.DonationID)
		conditions = append(conditions, fmt.Sprintf("r.donation_id = $%d", len(args)))
	}

	query := requestSummaryJoin
	if len(conditions) > 0 {
		query += "\n	WHERE " + strings.Join(conditions, " AND ")
	}

	sortColumn, ok := sortColumns[filter.Sort]
	if !ok {
		sortColumn = "r.created_at"
	}
	direction := "DESC"
	if filter.Order == "asc" {
		direction = "ASC"
	}
	query += fmt.Sprintf("\n	ORDER BY %s %s", sortColumn, direction)

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	return query, args
}

func (rr *requestRepository) GetAllRequest(ctx context.Context, filter domain.RequestFilter) (*[]domain.RequestWithDonation, error) {
	query, args := buildRequestListQuery(filter)

	rows, err := rr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not get all requests: %v", err)
	}
	defer rows.Close()

	requests := []domain.RequestWithDonation{}
	for rows.Next() {
		request, err := scanRequestSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan request: %v", err)
		}
		requests = append(requests, *request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &requests, nil
}

func (rr *requestRepository) CreateRequest(ctx context.Context, request *domain.Request) error {
	insertQuery := `
		INSERT INTO requests (donation_id, requester_name, requester_email, requester_contact, ngo_name, purpose, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`

	now := time.Now().UTC()

	var id int
	err := rr.db.QueryRow(ctx, insertQuery,
		request.DonationID, request.RequesterName, request.RequesterEmail, request.RequesterContact,
		request.NgoName, request.Purpose, request.Message, request.Status,
		now, now,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not insert request: %v", err)
	}

	request.ID = id
	request.CreatedAt = now
	request.UpdatedAt = now

	return nil
}

func (rr *requestRepository) GetRequestByID(ctx context.Context, id int) (*domain.RequestDetail, error) {
	query := `
		SELECT r.id, r.donation_id, r.requester_name, r.requester_email, r.requester_contact, r.ngo_name, r.purpose, r.message, r.status, r.created_at, r.updated_at,
		d.id, d.donor_name, d.contact_number, d.donation_type, d.item_name, d.category, d."condition", d.description, d.photo_urls, d.location, d.contact_email, d.contact_phone, d.status, d.created_at, d.updated_at
		FROM requests r
		LEFT JOIN donations d ON r.donation_id = d.id
		WHERE r.id = $1;
	`

	var detail domain.RequestDetail
	var donationID *int
	var donorName, contactNumber, donationType, itemName, category, condition, description, location, status *string
	var contactEmail, contactPhone *string
	var photos []byte
	var createdAt, updatedAt *time.Time

	err := rr.db.QueryRow(ctx, query, id).Scan(
		&detail.ID, &detail.DonationID, &detail.RequesterName, &detail.RequesterEmail, &detail.RequesterContact,
		&detail.NgoName, &detail.Purpose, &detail.Message, &detail.Status, &detail.CreatedAt, &detail.UpdatedAt,
		&donationID, &donorName, &contactNumber, &donationType, &itemName, &category, &condition,
		&description, &photos, &location, &contactEmail, &contactPhone, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("could not get request: %v", err)
	}

	// A dangling donation reference joins to all-null columns.
	if donationID != nil {
		donation := domain.Donation{
			ID:            *donationID,
			DonorName:     *donorName,
			ContactNumber: *contactNumber,
			DonationType:  *donationType,
			ItemName:      *itemName,
			Category:      *category,
			Condition:     *condition,
			Description:   *description,
			Location:      *location,
			ContactEmail:  contactEmail,
			ContactPhone:  contactPhone,
			Status:        *status,
			CreatedAt:     *createdAt,
			UpdatedAt:     *updatedAt,
		}
		if len(photos) > 0 {
			if err := json.Unmarshal(photos, &donation.PhotoUrls); err != nil {
				return nil, fmt.Errorf("invalid photo_urls payload: %v", err)
			}
		}
		detail.Donation = &donation
	}

	return &detail, nil
}

func (rr *requestRepository) GetRequestSummaryByID(ctx context.Context, id int) (*domain.RequestWithDonation, error) {
	query := requestSummaryJoin + "\n	WHERE r.id = $1;"

	request, err := scanRequestSummary(rr.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("could not get request: %v", err)
	}

	return request, nil
}

func buildRequestUpdateQuery(id int, payload *domain.RequestUpdate) (string, []interface{}) {
	var sets []string
	var args []interface{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if payload.DonationID != nil {
		set("donation_id", *payload.DonationID)
	}
	if payload.RequesterName != nil {
		set("requester_name", *payload.RequesterName)
	}
	if payload.RequesterEmail != nil {
		set("requester_email", *payload.RequesterEmail)
	}
	if payload.RequesterContact != nil {
		set("requester_contact", *payload.RequesterContact)
	}
	if payload.NgoName != nil {
		set("ngo_name", *payload.NgoName)
	}
	if payload.Purpose != nil {
		set("purpose", *payload.Purpose)
	}
	if payload.Message != nil {
		// A supplied empty message clears the column to NULL.
		if *payload.Message == "" {
			set("message", nil)
		} else {
			set("message", *payload.Message)
		}
	}
	if payload.Status != nil {
		set("status", *payload.Status)
	}

	set("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE requests SET %s WHERE id = $%d RETURNING %s;",
		strings.Join(sets, ", "), len(args), requestColumns)

	return query, args
}

func (rr *requestRepository) UpdateRequest(ctx context.Context, id int, payload *domain.RequestUpdate) (*domain.Request, error) {
	query, args := buildRequestUpdateQuery(id, payload)

	request, err := scanRequest(rr.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("could not update request: %v", err)
	}

	return request, nil
}

func (rr *requestRepository) DeleteRequest(ctx context.Context, id int) (*domain.Request, error) {
	query := `DELETE FROM requests WHERE id = $1 RETURNING ` + requestColumns + `;`

	request, err := scanRequest(rr.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("could not delete request: %v", err)
	}

	return request, nil
}

func scanRequest(row pgx.Row) (*domain.Request, error) {
	var request domain.Request

	err := row.Scan(
		&request.ID, &request.DonationID, &request.RequesterName, &request.RequesterEmail,
		&request.RequesterContact, &request.NgoName, &request.Purpose, &request.Message,
		&request.Status, &request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &request, nil
}

func scanRequestSummary(row pgx.Row) (*domain.RequestWithDonation, error) {
	var request domain.RequestWithDonation
	var donationID *int
	var donorName, itemName, category, condition, description, location, status *string

	err := row.Scan(
		&request.ID, &request.DonationID, &request.RequesterName, &request.RequesterEmail,
		&request.RequesterContact, &request.NgoName, &request.Purpose, &request.Message,
		&request.Status, &request.CreatedAt, &request.UpdatedAt,
		&donationID, &donorName, &itemName, &category, &condition, &description, &location, &status,
	)
	if err != nil {
		return nil, err
	}

	if donationID != nil {
		request.Donation = &domain.DonationSummary{
			ID:          *donationID,
			DonorName:   *donorName,
			ItemName:    *itemName,
			Category:    *category,
			Condition:   *condition,
			Description: *description,
			Location:    *location,
			Status:      *status,
		}
	}

	return &request, nil
}
