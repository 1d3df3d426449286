package models

import (
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/records"
)

// Application is a job application row owned by UserID.
type Application struct {
	ID          string
	UserID      string
	CompanyName string
	URL         string
	Status      string
	DateApplied time.Time
	CreatedAt   time.Time
}

// ToRecord drops the owner and converts to the shared record type.
func (a *Application) ToRecord() records.Application {
	return records.Application{
		ID:          a.ID,
		CompanyName: a.CompanyName,
		URL:         a.URL,
		Status:      records.Status(a.Status),
		DateApplied: a.DateApplied,
		CreatedAt:   a.CreatedAt,
	}
}
