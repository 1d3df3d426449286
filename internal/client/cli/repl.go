package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

const (
	guestBanner     = "You are a guest. Data will not be saved once you log out."
	notFoundText    = "404 - Page Not Found"
	signInRequired  = "Please sign in to continue."
	alreadySignedIn = "You are already signed in. Type 'logout' to switch accounts."
)

// view is one screen of the router. Protected views need a signed-in
// identity; the router sends signed-out users to sign-in instead.
// Anonymous-only views are the reverse: a signed-in user lands on the list,
// so a new sign-in never replaces a live session without a logout.
type view struct {
	protected     bool
	anonymousOnly bool
	run           func(ctx context.Context, args []string) error
}

// router is the surface the REPL needs. App satisfies it; tests can
// provide a lightweight stub.
type router interface {
	status() string
	showGuestBanner() bool
	runView(ctx context.Context, name string, args []string)
}

func (a *App) views() map[string]view {
	return map[string]view{
		"signin":   {anonymousOnly: true, run: a.SignIn},
		"login":    {anonymousOnly: true, run: a.SignIn},
		"register": {anonymousOnly: true, run: a.Register},
		"guest":    {anonymousOnly: true, run: a.Guest},
		"help":     {run: a.Help},
		"list":     {protected: true, run: a.List},
		"home":     {protected: true, run: a.List},
		"add":      {protected: true, run: a.Add},
		"edit":     {protected: true, run: a.Edit},
		"delete":   {protected: true, run: a.Delete},
		"export":   {protected: true, run: a.Export},
		"logout":   {protected: true, run: a.Logout},
	}
}

func (a *App) showGuestBanner() bool {
	id := a.session.Identity()
	return id != nil && id.IsAnonymous
}

// runView dispatches name to its view. Unknown names get the not-found
// view, protected ones redirect to sign-in while signed out and sign-in
// views redirect to the list while signed in. View errors
// are reported to the user and never end the loop.
func (a *App) runView(ctx context.Context, name string, args []string) {
	v, ok := a.views()[name]
	if !ok {
		printlnFn(notFoundText)
		return
	}

	if v.protected && !a.session.SignedIn() {
		printlnFn(signInRequired)
		v = a.views()["signin"]
		args = nil
	} else if v.anonymousOnly && a.session.SignedIn() {
		printlnFn(alreadySignedIn)
		v = a.views()["list"]
		args = nil
	}

	if err := v.run(ctx, args); err != nil {
		a.logger.Debug(ctx, "view failed", "view", name, "error", err)
		printlnFn(describe(err))
	}
}

// runREPL reads one command per line from r and routes it until EOF or
// "exit"/"quit". The prompt shows connectivity and who is signed in; guests
// see a reminder before every prompt.
func runREPL(ctx context.Context, rt router, r *bufio.Reader) {
	for {
		if rt.showGuestBanner() {
			printlnFn(guestBanner)
		}
		printFn(fmt.Sprintf("jt> %s > ", rt.status()))

		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			rt.runView(ctx, cmd, parts[1:])
		}

		if err != nil {
			return
		}
	}
}
