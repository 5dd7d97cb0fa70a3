package validation

import (
	"strings"

	"daansetu/domain"

	"github.com/asaskevich/govalidator"
)

func RequestCreate(in *domain.RequestInput) *domain.ValidationError {
	if isBlank(in.RequesterName) {
		return domain.Invalid("MISSING_REQUESTER_NAME", "Requester name is required")
	}
	if isBlank(in.RequesterEmail) {
		return domain.Invalid("MISSING_REQUESTER_EMAIL", "Requester email is required")
	}
	if isBlank(in.RequesterContact) {
		return domain.Invalid("MISSING_REQUESTER_CONTACT", "Requester contact is required")
	}
	if isBlank(in.NgoName) {
		return domain.Invalid("MISSING_NGO_NAME", "NGO name is required")
	}
	if isBlank(in.Purpose) {
		return domain.Invalid("MISSING_PURPOSE", "Purpose is required")
	}
	if in.DonationID == 0 {
		return domain.Invalid("MISSING_DONATION_ID", "Donation ID is required")
	}
	if in.DonationID < 0 {
		return domain.Invalid("INVALID_DONATION_ID", "Valid donation ID is required")
	}
	if !IsValidEmail(in.RequesterEmail) {
		return domain.Invalid("INVALID_EMAIL_FORMAT", "Valid email format is required")
	}
	if in.Status != "" && !govalidator.IsIn(in.Status, ValidRequestStatuses...) {
		return domain.Invalid("INVALID_STATUS", "Status must be one of: "+strings.Join(ValidRequestStatuses, ", "))
	}

	in.RequesterName = strings.TrimSpace(in.RequesterName)
	in.RequesterEmail = strings.ToLower(strings.TrimSpace(in.RequesterEmail))
	in.RequesterContact = strings.TrimSpace(in.RequesterContact)
	in.NgoName = strings.TrimSpace(in.NgoName)
	in.Purpose = strings.TrimSpace(in.Purpose)
	trim(in.Message)
	// An empty message is stored as NULL, not as an empty string.
	if in.Message != nil && *in.Message == "" {
		in.Message = nil
	}
	if in.Status == "" {
		in.Status = "pending"
	}
	return nil
}

// RequestUpdate covers the PUT form; RequestPatch covers the PATCH form.
// Identical rules except the email code, which the two routes have always
// reported differently and clients match on.
func RequestUpdate(in *domain.RequestUpdate) *domain.ValidationError {
	return requestPartial(in, "INVALID_EMAIL_FORMAT", "Valid email format is required")
}

func RequestPatch(in *domain.RequestUpdate) *domain.ValidationError {
	return requestPartial(in, "INVALID_EMAIL", "Invalid email format")
}

func requestPartial(in *domain.RequestUpdate, emailCode, emailMsg string) *domain.ValidationError {
	if in.RequesterEmail != nil && !IsValidEmail(*in.RequesterEmail) {
		return domain.Invalid(emailCode, emailMsg)
	}
	if in.Status != nil && !govalidator.IsIn(*in.Status, ValidRequestStatuses...) {
		return domain.Invalid("INVALID_STATUS", "Status must be one of: "+strings.Join(ValidRequestStatuses, ", "))
	}
	if in.DonationID != nil && *in.DonationID <= 0 {
		return domain.Invalid("INVALID_DONATION_ID", "Valid donation ID is required")
	}

	trim(in.RequesterName)
	trim(in.RequesterContact)
	trim(in.NgoName)
	trim(in.Purpose)
	trim(in.Message)
	if in.RequesterEmail != nil {
		*in.RequesterEmail = strings.ToLower(strings.TrimSpace(*in.RequesterEmail))
	}
	return nil
}
