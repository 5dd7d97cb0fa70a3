package domain

// ValidationError is a client error with a machine-readable code. Handlers
// map it to a 400 response carrying both fields.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Invalid(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// NotFoundError maps to a 404. Code is empty on paths where the original API
// returned a bare {error} body; it stays empty there for compatibility.
type NotFoundError struct {
	Resource string
	Code     string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

var (
	ErrDonationNotFound = &NotFoundError{Resource: "Donation"}
	ErrRequestNotFound  = &NotFoundError{Resource: "Request", Code: "REQUEST_NOT_FOUND"}
)
