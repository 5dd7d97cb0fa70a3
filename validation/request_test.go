package validation

import (
	"testing"

	"daansetu/domain"
)

func validRequestInput() *domain.RequestInput {
	return &domain.RequestInput{
		DonationID:       1,
		RequesterName:    "Ravi Kumar",
		RequesterEmail:   "ravi@helpinghands.org",
		RequesterContact: "9123456780",
		NgoName:          "Helping Hands",
		Purpose:          "Winter drive for shelter residents",
	}
}

func TestRequestCreateCodes(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.RequestInput)
		wantCode string
	}{
		{"valid", func(in *domain.RequestInput) {}, ""},
		{"missing requester name", func(in *domain.RequestInput) { in.RequesterName = "" }, "MISSING_REQUESTER_NAME"},
		{"missing requester email", func(in *domain.RequestInput) { in.RequesterEmail = "" }, "MISSING_REQUESTER_EMAIL"},
		{"missing requester contact", func(in *domain.RequestInput) { in.RequesterContact = " " }, "MISSING_REQUESTER_CONTACT"},
		{"missing ngo name", func(in *domain.RequestInput) { in.NgoName = "" }, "MISSING_NGO_NAME"},
		{"missing purpose", func(in *domain.RequestInput) { in.Purpose = "" }, "MISSING_PURPOSE"},
		{"missing donation id", func(in *domain.RequestInput) { in.DonationID = 0 }, "MISSING_DONATION_ID"},
		{"negative donation id", func(in *domain.RequestInput) { in.DonationID = -4 }, "INVALID_DONATION_ID"},
		{"bad email", func(in *domain.RequestInput) { in.RequesterEmail = "ravi@helpinghands" }, "INVALID_EMAIL_FORMAT"},
		{"bad status", func(in *domain.RequestInput) { in.Status = "closed" }, "INVALID_STATUS"},
		{"explicit approved status", func(in *domain.RequestInput) { in.Status = "approved" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRequestInput()
			tt.mutate(in)
			err := RequestCreate(in)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("RequestCreate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("RequestCreate() = nil, want code %s", tt.wantCode)
			}
			if err.Code != tt.wantCode {
				t.Errorf("RequestCreate() code = %s, want %s", err.Code, tt.wantCode)
			}
		})
	}
}

func TestRequestCreateNormalization(t *testing.T) {
	in := validRequestInput()
	in.RequesterEmail = " Ravi@HelpingHands.ORG "
	msg := "  please consider us  "
	in.Message = &msg

	if err := RequestCreate(in); err != nil {
		t.Fatalf("RequestCreate() = %v, want nil", err)
	}

	if in.RequesterEmail != "ravi@helpinghands.org" {
		t.Errorf("RequesterEmail = %q, want lowercased and trimmed", in.RequesterEmail)
	}
	if *in.Message != "please consider us" {
		t.Errorf("Message = %q, want trimmed", *in.Message)
	}
	if in.Status != "pending" {
		t.Errorf("Status = %q, want default pending", in.Status)
	}
}

func TestRequestCreateEmptyMessageBecomesNil(t *testing.T) {
	in := validRequestInput()
	msg := "   "
	in.Message = &msg

	if err := RequestCreate(in); err != nil {
		t.Fatalf("RequestCreate() = %v, want nil", err)
	}
	if in.Message != nil {
		t.Errorf("Message = %q, want nil for a blank message", *in.Message)
	}
}

// The PUT and PATCH routes report a malformed email with different codes and
// clients match on them, so both spellings are pinned here.
func TestRequestPartialEmailCodes(t *testing.T) {
	bad := "nope"

	if err := RequestUpdate(&domain.RequestUpdate{RequesterEmail: &bad}); err == nil || err.Code != "INVALID_EMAIL_FORMAT" {
		t.Errorf("RequestUpdate bad email = %v, want INVALID_EMAIL_FORMAT", err)
	}
	if err := RequestPatch(&domain.RequestUpdate{RequesterEmail: &bad}); err == nil || err.Code != "INVALID_EMAIL" {
		t.Errorf("RequestPatch bad email = %v, want INVALID_EMAIL", err)
	}
}

func TestRequestPartialStatus(t *testing.T) {
	for _, status := range []string{"pending", "approved", "rejected"} {
		s := status
		if err := RequestPatch(&domain.RequestUpdate{Status: &s}); err != nil {
			t.Errorf("RequestPatch(status=%q) = %v, want nil", status, err)
		}
	}

	bad := "Approved"
	if err := RequestPatch(&domain.RequestUpdate{Status: &bad}); err == nil || err.Code != "INVALID_STATUS" {
		t.Errorf("RequestPatch(status=Approved) = %v, want INVALID_STATUS (case-sensitive enum)", err)
	}
}
