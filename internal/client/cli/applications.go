package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/filex"
	"github.com/dmitrijs2005/jobtracker/internal/netx"
	"github.com/dmitrijs2005/jobtracker/internal/records"
)

// Test seams for the clock and the export download.
var (
	nowFn      = time.Now
	downloadFn = netx.DownloadFromPresignedURL
)

const dateLayout = "2006-01-02"

var hintColors = map[records.Hint]string{
	records.HintSuccess: "\033[32m",
	records.HintWarning: "\033[33m",
	records.HintAlert:   "\033[31m",
}

func colorize(h records.Hint, s string) string {
	c, ok := hintColors[h]
	if !ok || !isTerminal() {
		return s
	}
	return c + s + "\033[0m"
}

func ageText(days int) string {
	switch {
	case days < 0:
		return "in the future"
	case days == 0:
		return "today"
	case days == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// render prints the cached records grouped by bucket.
func (a *App) render() {
	p := a.list.Projection()
	if p.Len() == 0 {
		printlnFn("No job applications found. Type 'add' to create one.")
		return
	}

	now := nowFn()
	for _, b := range records.BucketOrder {
		apps := p[b]
		if len(apps) == 0 {
			continue
		}
		printlnFn(fmt.Sprintf("== %s (%d) ==", b.Title(), len(apps)))
		for _, app := range apps {
			row := fmt.Sprintf("  %s  %s  [%s]  applied %s (%s)  %s",
				app.ID, app.CompanyName, app.Status,
				app.DateApplied.Local().Format(dateLayout),
				ageText(records.AgeDays(app.DateApplied, now)), app.URL)
			printlnFn(colorize(records.ColorHint(app, now), row))
		}
	}
}

// List loads the records from the server and renders them.
func (a *App) List(ctx context.Context, _ []string) error {
	if err := a.list.Load(ctx); err != nil {
		return err
	}
	a.render()
	return nil
}

// Add runs the new-record form. Invalid input is rejected before any
// network call.
func (a *App) Add(ctx context.Context, _ []string) error {
	d, err := a.readDraft(nil)
	if err != nil {
		return err
	}

	f, err := records.Validate(d)
	if err != nil {
		return err
	}

	if _, err := a.apps.Create(ctx, f); err != nil {
		return err
	}
	printlnFn("Application saved.")
	return a.List(ctx, nil)
}

// Edit loads one record, prefills the form with it and saves the result.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: edit <id>")
		return nil
	}
	id := args[0]

	app, err := a.apps.Get(ctx, id)
	if err != nil {
		return err
	}

	current := records.DraftOf(app)
	d, err := a.readDraft(&current)
	if err != nil {
		return err
	}

	f, err := records.Validate(d)
	if err != nil {
		return err
	}

	if err := a.apps.Update(ctx, id, f); err != nil {
		return err
	}
	printlnFn("Application updated.")
	return a.List(ctx, nil)
}

// Delete asks for confirmation, deletes the record and re-renders from the
// local cache without reading the list again.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: delete <id>")
		return nil
	}
	id := args[0]

	name := id
	if app, ok := a.list.Get(id); ok {
		name = app.CompanyName
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s? (y/N)", name), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.list.Delete(ctx, id); err != nil {
		return err
	}
	printlnFn("Application deleted.")
	a.render()
	return nil
}

// Export downloads a JSON snapshot of every record into the export directory.
func (a *App) Export(ctx context.Context, _ []string) error {
	e, err := a.apps.Export(ctx)
	if err != nil {
		return err
	}

	data, err := downloadFn(ctx, e.URL)
	if err != nil {
		return fmt.Errorf("download export: %w", err)
	}

	path, err := filex.WriteFile(a.config.ExportDir, e.Key, data)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Exported %d applications to %s", e.Count, path))
	return nil
}
