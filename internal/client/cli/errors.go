package cli

import (
	"errors"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/listview"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/records"
)

// describe turns an error into the line shown to the user.
func describe(err error) string {
	var ve *records.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Reason
	case errors.Is(err, common.ErrorNotFound):
		return "Application not found."
	case errors.Is(err, listview.ErrBusy):
		return "Another operation is in progress, please wait."
	case errors.Is(err, client.ErrUnauthenticated):
		return signInRequired
	case errors.Is(err, client.ErrRateLimited):
		return "Too many attempts, try again later."
	case errors.Is(err, client.ErrUnavailable):
		return "Server is unavailable, try again later."
	case errors.Is(err, common.ErrorAlreadyExists):
		return "An account with this email already exists."
	case errors.Is(err, client.ErrAuth) && errors.Is(err, client.ErrUnauthorized):
		return "Invalid email or password."
	case errors.Is(err, client.ErrAuth):
		return "Sign-in failed: " + err.Error()
	case errors.Is(err, client.ErrStore):
		return "Request failed: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
