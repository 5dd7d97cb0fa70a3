package usecase

import (
	"context"
	"errors"
	"time"

	"daansetu/domain"
	"daansetu/validation"
)

type requestUC struct {
	requestRepo  domain.RequestRepo
	donationRepo domain.DonationRepo
	TimeOut      time.Duration
}

func NewRequestUseCase(repo domain.RequestRepo, donationRepo domain.DonationRepo, timeOut time.Duration) domain.RequestUseCase {
	return &requestUC{
		requestRepo:  repo,
		donationRepo: donationRepo,
		TimeOut:      timeOut,
	}
}

func (rUC *requestUC) GetAllRequestUC(ctx context.Context, filter domain.RequestFilter) (*[]domain.RequestWithDonation, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	requests, err := rUC.requestRepo.GetAllRequest(ctx, filter)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (rUC *requestUC) CreateRequestUC(ctx context.Context, input *domain.RequestInput) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	if vErr := validation.RequestCreate(input); vErr != nil {
		return nil, vErr
	}

	// Referential check against the donation store. A missing donation is a
	// client error here, not a 404.
	if err := rUC.donationExists(ctx, input.DonationID, "DONATION_NOT_FOUND", "Donation not found"); err != nil {
		return nil, err
	}

	request := &domain.Request{
		DonationID:       input.DonationID,
		RequesterName:    input.RequesterName,
		RequesterEmail:   input.RequesterEmail,
		RequesterContact: input.RequesterContact,
		NgoName:          input.NgoName,
		Purpose:          input.Purpose,
		Message:          input.Message,
		Status:           input.Status,
	}

	if err := rUC.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (rUC *requestUC) GetRequestByIDUC(ctx context.Context, id int) (*domain.RequestDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	request, err := rUC.requestRepo.GetRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (rUC *requestUC) GetRequestSummaryByIDUC(ctx context.Context, id int) (*domain.RequestWithDonation, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	request, err := rUC.requestRepo.GetRequestSummaryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return request, nil
}

// UpdateRequestUC backs the PUT form. It reports a missing request before any
// field validation, which is the order clients of the PUT route rely on.
func (rUC *requestUC) UpdateRequestUC(ctx context.Context, id int, payload *domain.RequestUpdate) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	if _, err := rUC.requestRepo.GetRequestSummaryByID(ctx, id); err != nil {
		return nil, err
	}

	if vErr := validation.RequestUpdate(payload); vErr != nil {
		return nil, vErr
	}

	if payload.DonationID != nil {
		if err := rUC.donationExists(ctx, *payload.DonationID, "DONATION_NOT_FOUND", "Donation not found"); err != nil {
			return nil, err
		}
	}

	request, err := rUC.requestRepo.UpdateRequest(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return request, nil
}

// PatchRequestUC backs the PATCH form, which validates before the existence
// check and uses a different donation-reference code than PUT.
func (rUC *requestUC) PatchRequestUC(ctx context.Context, id int, payload *domain.RequestUpdate) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	if vErr := validation.RequestPatch(payload); vErr != nil {
		return nil, vErr
	}

	if payload.DonationID != nil {
		if err := rUC.donationExists(ctx, *payload.DonationID, "INVALID_DONATION_ID", "Referenced donation does not exist"); err != nil {
			return nil, err
		}
	}

	request, err := rUC.requestRepo.UpdateRequest(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (rUC *requestUC) DeleteRequestUC(ctx context.Context, id int) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, rUC.TimeOut)
	defer cancel()

	request, err := rUC.requestRepo.DeleteRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (rUC *requestUC) donationExists(ctx context.Context, donationID int, code, message string) error {
	_, err := rUC.donationRepo.GetDonationByID(ctx, donationID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return domain.Invalid(code, message)
		}
		return err
	}
	return nil
}
