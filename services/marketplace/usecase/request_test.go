package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"daansetu/domain"
)

func seedDonation(t *testing.T, donations *fakeDonationRepo) *domain.Donation {
	t.Helper()
	uc := NewDonationUseCase(donations, time.Second)
	created, err := uc.CreateDonationUC(context.Background(), donationInput())
	if err != nil {
		t.Fatalf("seed donation: %v", err)
	}
	return created
}

func requestInput(donationID int) *domain.RequestInput {
	return &domain.RequestInput{
		DonationID:       donationID,
		RequesterName:    "Ravi Kumar",
		RequesterEmail:   " Ravi@HelpingHands.ORG ",
		RequesterContact: "9123456780",
		NgoName:          "Helping Hands",
		Purpose:          "Winter drive",
	}
}

func TestCreateRequestResolvesDonation(t *testing.T) {
	donations := newFakeDonationRepo()
	requests := newFakeRequestRepo(donations)
	uc := NewRequestUseCase(requests, donations, time.Second)

	donation := seedDonation(t, donations)

	created, err := uc.CreateRequestUC(context.Background(), requestInput(donation.ID))
	if err != nil {
		t.Fatalf("CreateRequestUC() error = %v", err)
	}
	if created.Status != "pending" {
		t.Errorf("Status = %q, want default pending", created.Status)
	}
	if created.RequesterEmail != "ravi@helpinghands.org" {
		t.Errorf("RequesterEmail = %q, want normalized", created.RequesterEmail)
	}
}

func TestCreateRequestUnknownDonation(t *testing.T) {
	donations := newFakeDonationRepo()
	uc := NewRequestUseCase(newFakeRequestRepo(donations), donations, time.Second)

	_, err := uc.CreateRequestUC(context.Background(), requestInput(99))
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || vErr.Code != "DONATION_NOT_FOUND" {
		t.Fatalf("CreateRequestUC() = %v, want DONATION_NOT_FOUND validation error", err)
	}
}

// PUT and PATCH report a missing donation reference with different codes.
func TestUpdateDonationRefCodes(t *testing.T) {
	donations := newFakeDonationRepo()
	requests := newFakeRequestRepo(donations)
	uc := NewRequestUseCase(requests, donations, time.Second)

	donation := seedDonation(t, donations)
	created, err := uc.CreateRequestUC(context.Background(), requestInput(donation.ID))
	if err != nil {
		t.Fatalf("CreateRequestUC() error = %v", err)
	}

	missing := 12345
	var vErr *domain.ValidationError

	_, err = uc.UpdateRequestUC(context.Background(), created.ID, &domain.RequestUpdate{DonationID: &missing})
	if !errors.As(err, &vErr) || vErr.Code != "DONATION_NOT_FOUND" {
		t.Errorf("UpdateRequestUC() = %v, want DONATION_NOT_FOUND", err)
	}

	_, err = uc.PatchRequestUC(context.Background(), created.ID, &domain.RequestUpdate{DonationID: &missing})
	if !errors.As(err, &vErr) || vErr.Code != "INVALID_DONATION_ID" {
		t.Errorf("PatchRequestUC() = %v, want INVALID_DONATION_ID", err)
	}
}

func TestUpdateRequestMissingReportsNotFoundFirst(t *testing.T) {
	donations := newFakeDonationRepo()
	uc := NewRequestUseCase(newFakeRequestRepo(donations), donations, time.Second)

	// The PUT form reports the missing request even when the payload is bad.
	bad := "nope"
	_, err := uc.UpdateRequestUC(context.Background(), 7, &domain.RequestUpdate{RequesterEmail: &bad})
	var nfErr *domain.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("UpdateRequestUC() = %v, want NotFoundError before validation", err)
	}
}

func TestPatchStatusRoundTrip(t *testing.T) {
	donations := newFakeDonationRepo()
	requests := newFakeRequestRepo(donations)
	uc := NewRequestUseCase(requests, donations, time.Second)

	donation := seedDonation(t, donations)
	created, err := uc.CreateRequestUC(context.Background(), requestInput(donation.ID))
	if err != nil {
		t.Fatalf("CreateRequestUC() error = %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	status := "approved"
	updated, err := uc.PatchRequestUC(context.Background(), created.ID, &domain.RequestUpdate{Status: &status})
	if err != nil {
		t.Fatalf("PatchRequestUC() error = %v", err)
	}
	if updated.Status != "approved" {
		t.Errorf("Status = %q, want approved", updated.Status)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updatedAt %v not after %v", updated.UpdatedAt, created.UpdatedAt)
	}

	got, err := uc.GetRequestByIDUC(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetRequestByIDUC() error = %v", err)
	}
	if got.Status != "approved" {
		t.Errorf("stored status = %q, want approved", got.Status)
	}
}

func TestDanglingReferenceReadsNullDonation(t *testing.T) {
	donations := newFakeDonationRepo()
	requests := newFakeRequestRepo(donations)
	requestUC := NewRequestUseCase(requests, donations, time.Second)
	donationUC := NewDonationUseCase(donations, time.Second)

	donation := seedDonation(t, donations)
	created, err := requestUC.CreateRequestUC(context.Background(), requestInput(donation.ID))
	if err != nil {
		t.Fatalf("CreateRequestUC() error = %v", err)
	}

	// Deleting the donation must succeed and leave the request behind with a
	// dangling reference.
	if _, err := donationUC.DeleteDonationUC(context.Background(), donation.ID); err != nil {
		t.Fatalf("DeleteDonationUC() error = %v", err)
	}

	detail, err := requestUC.GetRequestByIDUC(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetRequestByIDUC() error = %v", err)
	}
	if detail.Donation != nil {
		t.Errorf("Donation = %+v, want nil for dangling reference", detail.Donation)
	}
	if detail.DonationID != donation.ID {
		t.Errorf("DonationID = %d, want preserved %d", detail.DonationID, donation.ID)
	}

	list, err := requestUC.GetAllRequestUC(context.Background(), domain.RequestFilter{Limit: 10})
	if err != nil {
		t.Fatalf("GetAllRequestUC() error = %v", err)
	}
	if len(*list) != 1 {
		t.Fatalf("dangling request excluded from listing: %+v", *list)
	}
	if (*list)[0].Donation != nil {
		t.Errorf("listing donation = %+v, want nil", (*list)[0].Donation)
	}
}

func TestDeleteRequestNotFound(t *testing.T) {
	donations := newFakeDonationRepo()
	uc := NewRequestUseCase(newFakeRequestRepo(donations), donations, time.Second)

	_, err := uc.DeleteRequestUC(context.Background(), 404)
	var nfErr *domain.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("DeleteRequestUC() = %v, want NotFoundError", err)
	}
	if nfErr.Code != "REQUEST_NOT_FOUND" {
		t.Errorf("code = %q, want REQUEST_NOT_FOUND", nfErr.Code)
	}
}
