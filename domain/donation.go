package domain

import (
	"context"
	"encoding/json"
	"time"
)

type Donation struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DonorName     string    `gorm:"type:varchar(150);not null" json:"donorName" valid:"required~Donor name is required"`
	ContactNumber string    `gorm:"type:varchar(30);not null" json:"contactNumber" valid:"required~Contact number is required"`
	DonationType  string    `gorm:"type:varchar(30);not null;default:'Goods/Items'" json:"donationType"`
	ItemName      string    `gorm:"type:varchar(150);not null" json:"itemName" valid:"required~Item name is required"`
	Category      string    `gorm:"type:varchar(30);not null" json:"category" valid:"required~Category is required"`
	Condition     string    `gorm:"type:varchar(20);not null" json:"condition" valid:"required~Condition is required"`
	Description   string    `gorm:"type:text;not null" json:"description" valid:"required~Description is required"`
	PhotoUrls     []string  `gorm:"type:jsonb;serializer:json" json:"photoUrls"`
	Location      string    `gorm:"type:varchar(255);not null" json:"location" valid:"required~Location is required"`
	ContactEmail  *string   `gorm:"type:varchar(255)" json:"contactEmail"`
	ContactPhone  *string   `gorm:"type:varchar(30)" json:"contactPhone"`
	Status        string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// DonationInput is the POST /donations payload. PhotoUrls stays raw so the
// validator can reject non-array JSON with its own code instead of a body
// parse failure.
type DonationInput struct {
	DonorName     string          `json:"donorName"`
	ContactNumber string          `json:"contactNumber"`
	DonationType  string          `json:"donationType"`
	ItemName      string          `json:"itemName"`
	Category      string          `json:"category"`
	Condition     string          `json:"condition"`
	Description   string          `json:"description"`
	PhotoUrls     json.RawMessage `json:"photoUrls"`
	Location      string          `json:"location"`
	ContactEmail  *string         `json:"contactEmail"`
	ContactPhone  *string         `json:"contactPhone"`
	Status        string          `json:"status"`
}

// DonationUpdate carries only the fields present in a PUT body; nil means
// the field was not supplied and keeps its stored value.
type DonationUpdate struct {
	DonorName     *string         `json:"donorName"`
	ContactNumber *string         `json:"contactNumber"`
	DonationType  *string         `json:"donationType"`
	ItemName      *string         `json:"itemName"`
	Category      *string         `json:"category"`
	Condition     *string         `json:"condition"`
	Description   *string         `json:"description"`
	PhotoUrls     json.RawMessage `json:"photoUrls"`
	Location      *string         `json:"location"`
	ContactEmail  *string         `json:"contactEmail"`
	ContactPhone  *string         `json:"contactPhone"`
	Status        *string         `json:"status"`
}

type DonationFilter struct {
	Search   string
	Category string
	Status   string
	Limit    int
	Offset   int
}

// DonationSummary is the slice of a donation joined into request listings.
type DonationSummary struct {
	ID          int    `json:"id"`
	DonorName   string `json:"donorName"`
	ItemName    string `json:"itemName"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

type DonationRepo interface {
	GetAllDonation(ctx context.Context, filter DonationFilter) (*[]Donation, error)
	CreateDonation(ctx context.Context, donation *Donation) error
	GetDonationByID(ctx context.Context, id int) (*Donation, error)
	UpdateDonation(ctx context.Context, id int, payload *DonationUpdate) (*Donation, error)
	DeleteDonation(ctx context.Context, id int) (*Donation, error)
}

type DonationUseCase interface {
	GetAllDonationUC(ctx context.Context, filter DonationFilter) (*[]Donation, error)
	CreateDonationUC(ctx context.Context, input *DonationInput) (*Donation, error)
	GetDonationByIDUC(ctx context.Context, id int) (*Donation, error)
	UpdateDonationUC(ctx context.Context, id int, payload *DonationUpdate) (*Donation, error)
	DeleteDonationUC(ctx context.Context, id int) (*Donation, error)
}
