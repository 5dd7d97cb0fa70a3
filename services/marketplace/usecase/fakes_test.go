package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"daansetu/domain"
)

// In-memory stand-ins for the pgx repositories. They reproduce the stores'
// observable contract (filtering, joins, dangling references, not-found
// sentinels) without a database.

type fakeDonationRepo struct {
	seq       int
	donations map[int]domain.Donation
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{donations: map[int]domain.Donation{}}
}

func (f *fakeDonationRepo) GetAllDonation(_ context.Context, filter domain.DonationFilter) (*[]domain.Donation, error) {
	matches := []domain.Donation{}
	for _, d := range f.donations {
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(d.ItemName), s) &&
				!strings.Contains(strings.ToLower(d.Description), s) &&
				!strings.Contains(strings.ToLower(d.Location), s) {
				continue
			}
		}
		if filter.Category != "" && d.Category != filter.Category {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		matches = append(matches, d)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.After(matches[j].CreatedAt) })
	return &matches, nil
}

func (f *fakeDonationRepo) CreateDonation(_ context.Context, donation *domain.Donation) error {
	f.seq++
	donation.ID = f.seq
	now := time.Now().UTC()
	donation.CreatedAt = now
	donation.UpdatedAt = now
	f.donations[donation.ID] = *donation
	return nil
}

func (f *fakeDonationRepo) GetDonationByID(_ context.Context, id int) (*domain.Donation, error) {
	d, ok := f.donations[id]
	if !ok {
		return nil, domain.ErrDonationNotFound
	}
	return &d, nil
}

func (f *fakeDonationRepo) UpdateDonation(_ context.Context, id int, payload *domain.DonationUpdate) (*domain.Donation, error) {
	d, ok := f.donations[id]
	if !ok {
		return nil, domain.ErrDonationNotFound
	}
	if payload.DonorName != nil {
		d.DonorName = *payload.DonorName
	}
	if payload.ContactNumber != nil {
		d.ContactNumber = *payload.ContactNumber
	}
	if payload.DonationType != nil {
		d.DonationType = *payload.DonationType
	}
	if payload.ItemName != nil {
		d.ItemName = *payload.ItemName
	}
	if payload.Category != nil {
		d.Category = *payload.Category
	}
	if payload.Condition != nil {
		d.Condition = *payload.Condition
	}
	if payload.Description != nil {
		d.Description = *payload.Description
	}
	if payload.Location != nil {
		d.Location = *payload.Location
	}
	if payload.ContactEmail != nil {
		d.ContactEmail = payload.ContactEmail
	}
	if payload.ContactPhone != nil {
		d.ContactPhone = payload.ContactPhone
	}
	if payload.Status != nil {
		d.Status = *payload.Status
	}
	d.UpdatedAt = time.Now().UTC()
	f.donations[id] = d
	return &d, nil
}

func (f *fakeDonationRepo) DeleteDonation(_ context.Context, id int) (*domain.Donation, error) {
	d, ok := f.donations[id]
	if !ok {
		return nil, domain.ErrDonationNotFound
	}
	delete(f.donations, id)
	return &d, nil
}

type fakeRequestRepo struct {
	seq       int
	requests  map[int]domain.Request
	donations *fakeDonationRepo
}

func newFakeRequestRepo(donations *fakeDonationRepo) *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[int]domain.Request{}, donations: donations}
}

func (f *fakeRequestRepo) summarize(r domain.Request) domain.RequestWithDonation {
	out := domain.RequestWithDonation{Request: r}
	if d, ok := f.donations.donations[r.DonationID]; ok {
		out.Donation = &domain.DonationSummary{
			ID:          d.ID,
			DonorName:   d.DonorName,
			ItemName:    d.ItemName,
			Category:    d.Category,
			Condition:   d.Condition,
			Description: d.Description,
			Location:    d.Location,
			Status:      d.Status,
		}
	}
	return out
}

func (f *fakeRequestRepo) GetAllRequest(_ context.Context, filter domain.RequestFilter) (*[]domain.RequestWithDonation, error) {
	matches := []domain.RequestWithDonation{}
	for _, r := range f.requests {
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(r.RequesterName), s) &&
				!strings.Contains(strings.ToLower(r.NgoName), s) &&
				!strings.Contains(strings.ToLower(r.Purpose), s) {
				continue
			}
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.DonationID != nil && r.DonationID != *filter.DonationID {
			continue
		}
		matches = append(matches, f.summarize(r))
	}
	asc := filter.Order == "asc"
	sort.Slice(matches, func(i, j int) bool {
		var less bool
		switch filter.Sort {
		case "requesterName":
			less = matches[i].RequesterName < matches[j].RequesterName
		case "status":
			less = matches[i].Status < matches[j].Status
		case "updatedAt":
			less = matches[i].UpdatedAt.Before(matches[j].UpdatedAt)
		default:
			less = matches[i].CreatedAt.Before(matches[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})
	return &matches, nil
}

func (f *fakeRequestRepo) CreateRequest(_ context.Context, request *domain.Request) error {
	f.seq++
	request.ID = f.seq
	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now
	f.requests[request.ID] = *request
	return nil
}

func (f *fakeRequestRepo) GetRequestByID(_ context.Context, id int) (*domain.RequestDetail, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	detail := domain.RequestDetail{Request: r}
	if d, ok := f.donations.donations[r.DonationID]; ok {
		detail.Donation = &d
	}
	return &detail, nil
}

func (f *fakeRequestRepo) GetRequestSummaryByID(_ context.Context, id int) (*domain.RequestWithDonation, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	out := f.summarize(r)
	return &out, nil
}

func (f *fakeRequestRepo) UpdateRequest(_ context.Context, id int, payload *domain.RequestUpdate) (*domain.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	if payload.DonationID != nil {
		r.DonationID = *payload.DonationID
	}
	if payload.RequesterName != nil {
		r.RequesterName = *payload.RequesterName
	}
	if payload.RequesterEmail != nil {
		r.RequesterEmail = *payload.RequesterEmail
	}
	if payload.RequesterContact != nil {
		r.RequesterContact = *payload.RequesterContact
	}
	if payload.NgoName != nil {
		r.NgoName = *payload.NgoName
	}
	if payload.Purpose != nil {
		r.Purpose = *payload.Purpose
	}
	if payload.Message != nil {
		if *payload.Message == "" {
			r.Message = nil
		} else {
			r.Message = payload.Message
		}
	}
	if payload.Status != nil {
		r.Status = *payload.Status
	}
	r.UpdatedAt = time.Now().UTC()
	f.requests[id] = r
	return &r, nil
}

func (f *fakeRequestRepo) DeleteRequest(_ context.Context, id int) (*domain.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	delete(f.requests, id)
	return &r, nil
}
