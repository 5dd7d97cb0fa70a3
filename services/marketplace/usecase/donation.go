package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"daansetu/domain"
	"daansetu/validation"
)

type donationUC struct {
	donationRepo domain.DonationRepo
	TimeOut      time.Duration
}

func NewDonationUseCase(repo domain.DonationRepo, timeOut time.Duration) domain.DonationUseCase {
	return &donationUC{
		donationRepo: repo,
		TimeOut:      timeOut,
	}
}

func (dUC *donationUC) GetAllDonationUC(ctx context.Context, filter domain.DonationFilter) (*[]domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	donations, err := dUC.donationRepo.GetAllDonation(ctx, filter)
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (dUC *donationUC) CreateDonationUC(ctx context.Context, input *domain.DonationInput) (*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	if vErr := validation.DonationCreate(input); vErr != nil {
		return nil, vErr
	}

	var photoUrls []string
	if len(input.PhotoUrls) > 0 {
		if err := json.Unmarshal(input.PhotoUrls, &photoUrls); err != nil {
			return nil, domain.Invalid("INVALID_PHOTO_URLS", "Photo URLs must be an array")
		}
	}

	donation := &domain.Donation{
		DonorName:     input.DonorName,
		ContactNumber: input.ContactNumber,
		DonationType:  input.DonationType,
		ItemName:      input.ItemName,
		Category:      input.Category,
		Condition:     input.Condition,
		Description:   input.Description,
		PhotoUrls:     photoUrls,
		Location:      input.Location,
		ContactEmail:  input.ContactEmail,
		ContactPhone:  input.ContactPhone,
		Status:        input.Status,
	}

	if err := dUC.donationRepo.CreateDonation(ctx, donation); err != nil {
		return nil, fmt.Errorf("could not create donation: %w", err)
	}
	return donation, nil
}

func (dUC *donationUC) GetDonationByIDUC(ctx context.Context, id int) (*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	donation, err := dUC.donationRepo.GetDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return donation, nil
}

func (dUC *donationUC) UpdateDonationUC(ctx context.Context, id int, payload *domain.DonationUpdate) (*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	if vErr := validation.DonationUpdate(payload); vErr != nil {
		return nil, vErr
	}

	donation, err := dUC.donationRepo.UpdateDonation(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	return donation, nil
}

func (dUC *donationUC) DeleteDonationUC(ctx context.Context, id int) (*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, dUC.TimeOut)
	defer cancel()

	donation, err := dUC.donationRepo.DeleteDonation(ctx, id)
	if err != nil {
		return nil, err
	}
	return donation, nil
}
