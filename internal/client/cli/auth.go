package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) credentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// signedIn greets the identity and opens the list view.
func (a *App) signedIn(ctx context.Context, id *models.Identity) error {
	if id.IsAnonymous {
		printlnFn("Signed in as guest.")
	} else {
		printlnFn(fmt.Sprintf("Signed in as %s.", id.Email))
	}
	return a.List(ctx, nil)
}

// SignIn prompts for email and password and authenticates. The password
// buffer is wiped before returning.
func (a *App) SignIn(ctx context.Context, _ []string) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		return err
	}
	return a.signedIn(ctx, id)
}

// Register creates an account and signs it in.
func (a *App) Register(ctx context.Context, _ []string) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.auth.Register(ctx, email, string(password))
	if err != nil {
		return err
	}
	printlnFn("Account created.")
	return a.signedIn(ctx, id)
}

// Guest starts an anonymous session.
func (a *App) Guest(ctx context.Context, _ []string) error {
	id, err := a.auth.SignInAnonymously(ctx)
	if err != nil {
		return err
	}
	return a.signedIn(ctx, id)
}

// Logout ends the session. The local session is forgotten even when the
// server could not be reached.
func (a *App) Logout(ctx context.Context, _ []string) error {
	guest := a.showGuestBanner()
	if err := a.auth.SignOut(ctx); err != nil {
		a.logger.Warn(ctx, "sign out incomplete", "error", err)
	}
	if guest {
		printlnFn("Signed out. Guest data has been discarded.")
	} else {
		printlnFn("Signed out.")
	}
	return nil
}

// Help lists the commands available in the current session state.
func (a *App) Help(_ context.Context, _ []string) error {
	if a.session.SignedIn() {
		printlnFn("Available commands: list, add, edit <id>, delete <id>, export, logout, help, exit")
	} else {
		printlnFn("Available commands: signin, register, guest, help, exit")
	}
	return nil
}
