package domain

import (
	"context"
	"time"
)

type Request struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DonationID       int       `gorm:"not null" json:"donationId" valid:"required~Donation ID is required"`
	RequesterName    string    `gorm:"type:varchar(150);not null" json:"requesterName" valid:"required~Requester name is required"`
	RequesterEmail   string    `gorm:"type:varchar(255);not null" json:"requesterEmail" valid:"required~Requester email is required"`
	RequesterContact string    `gorm:"type:varchar(30);not null" json:"requesterContact" valid:"required~Requester contact is required"`
	NgoName          string    `gorm:"type:varchar(150);not null" json:"ngoName" valid:"required~NGO name is required"`
	Purpose          string    `gorm:"type:text;not null" json:"purpose" valid:"required~Purpose is required"`
	Message          *string   `gorm:"type:text" json:"message"`
	Status           string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type RequestInput struct {
	DonationID       int     `json:"donationId"`
	RequesterName    string  `json:"requesterName"`
	RequesterEmail   string  `json:"requesterEmail"`
	RequesterContact string  `json:"requesterContact"`
	NgoName          string  `json:"ngoName"`
	Purpose          string  `json:"purpose"`
	Message          *string `json:"message"`
	Status           string  `json:"status"`
}

type RequestUpdate struct {
	DonationID       *int    `json:"donationId"`
	RequesterName    *string `json:"requesterName"`
	RequesterEmail   *string `json:"requesterEmail"`
	RequesterContact *string `json:"requesterContact"`
	NgoName          *string `json:"ngoName"`
	Purpose          *string `json:"purpose"`
	Message          *string `json:"message"`
	Status           *string `json:"status"`
}

type RequestFilter struct {
	Search     string
	Status     string
	DonationID *int
	Sort       string
	Order      string
	Limit      int
	Offset     int
}

// RequestWithDonation is a listing row: the request flattened, plus a summary
// of the referenced donation. Donation is nil when the reference dangles.
type RequestWithDonation struct {
	Request
	Donation *DonationSummary `json:"donation"`
}

// RequestDetail is the single-record shape, joining the full donation row.
type RequestDetail struct {
	Request
	Donation *Donation `json:"donation"`
}

type RequestRepo interface {
	GetAllRequest(ctx context.Context, filter RequestFilter) (*[]RequestWithDonation, error)
	CreateRequest(ctx context.Context, request *Request) error
	GetRequestByID(ctx context.Context, id int) (*RequestDetail, error)
	GetRequestSummaryByID(ctx context.Context, id int) (*RequestWithDonation, error)
	UpdateRequest(ctx context.Context, id int, payload *RequestUpdate) (*Request, error)
	DeleteRequest(ctx context.Context, id int) (*Request, error)
}

type RequestUseCase interface {
	GetAllRequestUC(ctx context.Context, filter RequestFilter) (*[]RequestWithDonation, error)
	CreateRequestUC(ctx context.Context, input *RequestInput) (*Request, error)
	GetRequestByIDUC(ctx context.Context, id int) (*RequestDetail, error)
	GetRequestSummaryByIDUC(ctx context.Context, id int) (*RequestWithDonation, error)
	UpdateRequestUC(ctx context.Context, id int, payload *RequestUpdate) (*Request, error)
	PatchRequestUC(ctx context.Context, id int, payload *RequestUpdate) (*Request, error)
	DeleteRequestUC(ctx context.Context, id int) (*Request, error)
}
