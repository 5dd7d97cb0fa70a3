// Package validation holds the pure field-level rules applied before any
// store write. Validators also normalize the accepted input in place: free
// text is trimmed, emails are lower-cased and trimmed, enums pass untouched.
package validation

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"daansetu/domain"

	"github.com/asaskevich/govalidator"
)

var (
	ValidDonationTypes    = []string{"Goods/Items", "Monetary", "Volunteer Time"}
	ValidCategories       = []string{"Clothing", "Furniture", "Electronics", "Books", "Kitchen", "Sports", "Toys & Other"}
	ValidConditions       = []string{"New", "Like New", "Good", "Fair"}
	ValidDonationStatuses = []string{"available", "claimed", "completed"}
	ValidRequestStatuses  = []string{"pending", "approved", "rejected"}
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func invalidEnum(code, field string, allowed []string) *domain.ValidationError {
	return domain.Invalid(code, fmt.Sprintf("Invalid %s. Must be one of: %s", field, strings.Join(allowed, ", ")))
}

// photoUrlsIsArray accepts absent, JSON null, or a JSON array. Anything else
// is a client error with its own code.
func photoUrlsIsArray(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	return trimmed[0] == '['
}

func DonationCreate(in *domain.DonationInput) *domain.ValidationError {
	if isBlank(in.DonorName) {
		return domain.Invalid("MISSING_DONOR_NAME", "Donor name is required")
	}
	if isBlank(in.ContactNumber) {
		return domain.Invalid("MISSING_CONTACT_NUMBER", "Contact number is required")
	}
	if in.DonationType == "" {
		in.DonationType = "Goods/Items"
	}
	if !govalidator.IsIn(in.DonationType, ValidDonationTypes...) {
		return invalidEnum("INVALID_DONATION_TYPE", "donation type", ValidDonationTypes)
	}
	if isBlank(in.ItemName) {
		return domain.Invalid("MISSING_ITEM_NAME", "Item name is required")
	}
	if in.Category == "" {
		return domain.Invalid("MISSING_CATEGORY", "Category is required")
	}
	if !govalidator.IsIn(in.Category, ValidCategories...) {
		return invalidEnum("INVALID_CATEGORY", "category", ValidCategories)
	}
	if in.Condition == "" {
		return domain.Invalid("MISSING_CONDITION", "Condition is required")
	}
	if !govalidator.IsIn(in.Condition, ValidConditions...) {
		return invalidEnum("INVALID_CONDITION", "condition", ValidConditions)
	}
	if isBlank(in.Description) {
		return domain.Invalid("MISSING_DESCRIPTION", "Description is required")
	}
	if isBlank(in.Location) {
		return domain.Invalid("MISSING_LOCATION", "Location is required")
	}
	if in.ContactEmail != nil && *in.ContactEmail != "" && !IsValidEmail(*in.ContactEmail) {
		return domain.Invalid("INVALID_EMAIL", "Invalid email format")
	}
	if in.Status != "" && !govalidator.IsIn(in.Status, ValidDonationStatuses...) {
		return invalidEnum("INVALID_STATUS", "status", ValidDonationStatuses)
	}
	if !photoUrlsIsArray(in.PhotoUrls) {
		return domain.Invalid("INVALID_PHOTO_URLS", "Photo URLs must be an array")
	}

	in.DonorName = strings.TrimSpace(in.DonorName)
	in.ContactNumber = strings.TrimSpace(in.ContactNumber)
	in.ItemName = strings.TrimSpace(in.ItemName)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	if in.ContactEmail != nil {
		e := strings.ToLower(strings.TrimSpace(*in.ContactEmail))
		in.ContactEmail = &e
	}
	if in.ContactPhone != nil {
		p := strings.TrimSpace(*in.ContactPhone)
		in.ContactPhone = &p
	}
	if in.Status == "" {
		in.Status = "available"
	}
	return nil
}

func DonationUpdate(in *domain.DonationUpdate) *domain.ValidationError {
	if in.DonationType != nil && !govalidator.IsIn(*in.DonationType, ValidDonationTypes...) {
		return invalidEnum("INVALID_DONATION_TYPE", "donation type", ValidDonationTypes)
	}
	if in.Category != nil && !govalidator.IsIn(*in.Category, ValidCategories...) {
		return invalidEnum("INVALID_CATEGORY", "category", ValidCategories)
	}
	if in.Condition != nil && !govalidator.IsIn(*in.Condition, ValidConditions...) {
		return invalidEnum("INVALID_CONDITION", "condition", ValidConditions)
	}
	if in.Status != nil && !govalidator.IsIn(*in.Status, ValidDonationStatuses...) {
		return invalidEnum("INVALID_STATUS", "status", ValidDonationStatuses)
	}
	if in.ContactEmail != nil && *in.ContactEmail != "" && !IsValidEmail(*in.ContactEmail) {
		return domain.Invalid("INVALID_EMAIL", "Invalid email format")
	}
	if !photoUrlsIsArray(in.PhotoUrls) {
		return domain.Invalid("INVALID_PHOTO_URLS", "Photo URLs must be an array")
	}

	trim(in.DonorName)
	trim(in.ContactNumber)
	trim(in.ItemName)
	trim(in.Description)
	trim(in.Location)
	trim(in.ContactPhone)
	if in.ContactEmail != nil {
		*in.ContactEmail = strings.ToLower(strings.TrimSpace(*in.ContactEmail))
	}
	return nil
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
