package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/records"
)

func statusMenu() string {
	var b strings.Builder
	b.WriteString("Status:")
	for i, s := range records.Statuses {
		fmt.Fprintf(&b, " %d) %s", i+1, s)
	}
	return b.String()
}

// statusChoice maps a menu number to its label. Anything else is passed
// through for validation to judge.
func statusChoice(s string) string {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(records.Statuses) {
		return records.Statuses[n-1].String()
	}
	return s
}

// ask prompts for one field. With a current value the prompt shows it and
// empty input keeps it.
func (a *App) ask(label, current string, editing bool) (string, error) {
	prompt := label
	if editing {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if editing && strings.TrimSpace(v) == "" {
		return current, nil
	}
	return v, nil
}

// readDraft collects the four form fields. A nil current means a new
// record with no defaults; otherwise current prefills every field.
func (a *App) readDraft(current *records.Draft) (records.Draft, error) {
	editing := current != nil
	if current == nil {
		current = &records.Draft{}
	}

	var (
		d   records.Draft
		err error
	)
	if d.CompanyName, err = a.ask("Company name", current.CompanyName, editing); err != nil {
		return records.Draft{}, err
	}
	if d.URL, err = a.ask("Job URL", current.URL, editing); err != nil {
		return records.Draft{}, err
	}
	if d.DateApplied, err = a.ask("Date applied (YYYY-MM-DDTHH:MM)", current.DateApplied, editing); err != nil {
		return records.Draft{}, err
	}
	status, err := a.ask(statusMenu(), current.Status, editing)
	if err != nil {
		return records.Draft{}, err
	}
	d.Status = statusChoice(status)

	return d, nil
}
