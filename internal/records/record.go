// Package records holds the job application record model together with
// the rules that gate mutations (validation) and shape the list screen
// (classification, grouping and color hints).
//
// Everything here is pure: no I/O, no clocks except the ones passed in.
package records

import "time"

// Status is the stage an application is in.
type Status string

const (
	StatusPending            Status = "Pending"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusOfferReceived      Status = "Offer Received"
	StatusRejected           Status = "Rejected"
)

// Statuses lists the allowed statuses in the order the add/edit forms offer them.
var Statuses = []Status{
	StatusPending,
	StatusInterviewScheduled,
	StatusOfferReceived,
	StatusRejected,
}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

// Application is a stored job application. ID and CreatedAt are assigned
// by the server on create and never change afterwards.
type Application struct {
	ID          string
	CompanyName string
	URL         string
	Status      Status
	DateApplied time.Time
	CreatedAt   time.Time
}

// Fields returns the editable part of the application.
func (a Application) Fields() Fields {
	return Fields{
		CompanyName: a.CompanyName,
		URL:         a.URL,
		Status:      a.Status,
		DateApplied: a.DateApplied,
	}
}

// Fields are the four user-editable fields after validation.
type Fields struct {
	CompanyName string
	URL         string
	Status      Status
	DateApplied time.Time
}

// Draft is raw form input, before validation.
type Draft struct {
	CompanyName string
	URL         string
	DateApplied string
	Status      string
}

// DraftOf renders an application back into form input, e.g. to prefill
// the edit screen.
func DraftOf(a Application) Draft {
	return Draft{
		CompanyName: a.CompanyName,
		URL:         a.URL,
		DateApplied: a.DateApplied.Local().Format(DateTimeLocalLayout),
		Status:      string(a.Status),
	}
}
