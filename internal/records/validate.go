package records

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation error")

// Field names used in ValidationError.
const (
	FieldCompanyName = "companyName"
	FieldURL         = "url"
	FieldDateApplied = "dateApplied"
	FieldStatus      = "status"
)

const (
	ReasonCompanyRequired = "Company name is required"
	ReasonURLRequired     = "Job URL is required"
	ReasonDateRequired    = "Date applied is required"
	ReasonDateInvalid     = "Date applied is not a valid date"
	ReasonStatusRequired  = "Status is required"
)

// DateTimeLocalLayout is the layout of an HTML datetime-local value.
const DateTimeLocalLayout = "2006-01-02T15:04"

var dateLayouts = []string{
	DateTimeLocalLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ValidationError names the first field that failed and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func reasonStatusInvalid() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return "Status must be one of: " + strings.Join(names, ", ")
}

// Validate checks a draft in the local time zone. See ValidateIn.
func Validate(d Draft) (Fields, error) {
	return ValidateIn(d, time.Local)
}

// ValidateIn trims and checks the draft fields in the order
// companyName, url, dateApplied, status and stops at the first failure.
// Dates without an explicit offset are interpreted in loc.
func ValidateIn(d Draft, loc *time.Location) (Fields, error) {
	company := strings.TrimSpace(d.CompanyName)
	if company == "" {
		return Fields{}, &ValidationError{Field: FieldCompanyName, Reason: ReasonCompanyRequired}
	}

	url := strings.TrimSpace(d.URL)
	if url == "" {
		return Fields{}, &ValidationError{Field: FieldURL, Reason: ReasonURLRequired}
	}

	rawDate := strings.TrimSpace(d.DateApplied)
	if rawDate == "" {
		return Fields{}, &ValidationError{Field: FieldDateApplied, Reason: ReasonDateRequired}
	}
	applied, err := ParseDate(rawDate, loc)
	if err != nil {
		return Fields{}, &ValidationError{Field: FieldDateApplied, Reason: ReasonDateInvalid}
	}

	status := Status(strings.TrimSpace(d.Status))
	if status == "" {
		return Fields{}, &ValidationError{Field: FieldStatus, Reason: ReasonStatusRequired}
	}
	if !status.Valid() {
		return Fields{}, &ValidationError{Field: FieldStatus, Reason: reasonStatusInvalid()}
	}

	return Fields{
		CompanyName: company,
		URL:         url,
		Status:      status,
		DateApplied: applied,
	}, nil
}

// ParseDate accepts a datetime-local value, a plain date or RFC 3339.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", s)
}

// CheckFields re-validates already typed fields, e.g. at the server
// boundary where input did not pass through Validate.
func CheckFields(f Fields) error {
	switch {
	case strings.TrimSpace(f.CompanyName) == "":
		return &ValidationError{Field: FieldCompanyName, Reason: ReasonCompanyRequired}
	case strings.TrimSpace(f.URL) == "":
		return &ValidationError{Field: FieldURL, Reason: ReasonURLRequired}
	case f.DateApplied.IsZero():
		return &ValidationError{Field: FieldDateApplied, Reason: ReasonDateRequired}
	case strings.TrimSpace(string(f.Status)) == "":
		return &ValidationError{Field: FieldStatus, Reason: ReasonStatusRequired}
	case !Status(strings.TrimSpace(string(f.Status))).Valid():
		return &ValidationError{Field: FieldStatus, Reason: reasonStatusInvalid()}
	}
	return nil
}

// Normalize trims the text fields of f.
func Normalize(f Fields) Fields {
	f.CompanyName = strings.TrimSpace(f.CompanyName)
	f.URL = strings.TrimSpace(f.URL)
	f.Status = Status(strings.TrimSpace(string(f.Status)))
	return f
}

// ParseValidationError rebuilds a ValidationError from its Error() text.
func ParseValidationError(msg string) (*ValidationError, bool) {
	field, reason, ok := strings.Cut(msg, ": ")
	if !ok || reason == "" {
		return nil, false
	}
	switch field {
	case FieldCompanyName, FieldURL, FieldDateApplied, FieldStatus:
		return &ValidationError{Field: field, Reason: reason}, true
	}
	return nil, false
}
