package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/theme"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
	formatJSON     = "json"
)

// printJSON writes v as indented JSON to stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable returns a tabwriter for aligned columns on stdout
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// parseDay parses a YYYY-MM-DD date in loc. An empty value is today.
func parseDay(value string, now time.Time, loc *time.Location) (time.Time, error) {
	if value == "" {
		now = now.In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	}
	day, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, value)
	}
	return day, nil
}

// parseWindow builds the window [from, to] of whole days. Empty bounds
// default to today and to from plus days.
func parseWindow(from, to string, days int, now time.Time, loc *time.Location) (domain.Window, error) {
	start, err := parseDay(from, now, loc)
	if err != nil {
		return domain.Window{}, err
	}
	if to == "" {
		if days <= 0 {
			days = 1
		}
		return domain.Window{Start: start, End: start.AddDate(0, 0, days)}, nil
	}
	end, err := parseDay(to, now, loc)
	if err != nil {
		return domain.Window{}, err
	}
	return domain.Window{Start: start, End: end.AddDate(0, 0, 1)}, nil
}

// parseDateTime parses "YYYY-MM-DD HH:MM" or RFC 3339 in loc
func parseDateTime(value string, loc *time.Location) (time.Time, error) {
	// RFC 3339 carries its own offset, loc is ignored
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateTimeLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid time %q, expected %q or RFC 3339", domain.ErrValidation, value, dateTimeLayout)
	}
	return t, nil
}

// formatDuration renders a duration as 1h05m, rounded to the minute
func formatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%s%dm", sign, m)
	}
	return fmt.Sprintf("%s%dh%02dm", sign, h, m)
}

func formatOptionalTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format(dateTimeLayout)
}

// printItemErrors lists the per-item failures of a partial batch
func printItemErrors[E error](label string, errs []E) {
	if len(errs) == 0 {
		return
	}
	fmt.Println(theme.WarningStyle.Render(fmt.Sprintf("%s (%d):", label, len(errs))))
	for _, err := range errs {
		fmt.Println("  " + theme.MutedStyle.Render(err.Error()))
	}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	// Count runes so multi-byte titles are not cut mid-character
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
