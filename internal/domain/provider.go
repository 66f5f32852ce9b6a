package domain

import "fmt"

// Provider identifies an external account provider
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderJira   Provider = "jira"
)

// Providers lists the supported providers
var Providers = []Provider{ProviderGoogle, ProviderJira}

// ParseProvider converts a user supplied string into a Provider
func ParseProvider(s string) (Provider, error) {
	for _, p := range Providers {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown provider %q", ErrValidation, s)
}

// ProviderMeta is the provider specific payload stored next to a credential.
// Exactly one concrete type exists per provider.
type ProviderMeta interface {
	Provider() Provider
	Validate() error
}

// GoogleMeta is the metadata of a Google account
type GoogleMeta struct {
	CalendarIDs []string `json:"calendar_ids,omitempty"`
	Email       string   `json:"email,omitempty"`
}

// Provider implements ProviderMeta
func (GoogleMeta) Provider() Provider { return ProviderGoogle }

// Validate implements ProviderMeta
func (GoogleMeta) Validate() error { return nil }

// Calendars returns the calendars to reconcile, defaulting to the primary calendar
func (m GoogleMeta) Calendars() []string {
	if len(m.CalendarIDs) == 0 {
		return []string{DefaultCalendarID}
	}
	return m.CalendarIDs
}

// JiraMeta is the metadata of an Atlassian site
type JiraMeta struct {
	AccountEmail string `json:"account_email,omitempty"`
	CloudID      string `json:"cloud_id"`
	SiteURL      string `json:"site_url"`
}

// Provider implements ProviderMeta
func (JiraMeta) Provider() Provider { return ProviderJira }

// Validate implements ProviderMeta
func (m JiraMeta) Validate() error {
	if m.CloudID == "" {
		return fmt.Errorf("%w: jira metadata requires a cloud id", ErrValidation)
	}
	return nil
}

// EmptyMeta returns the zero metadata value for a provider
func EmptyMeta(p Provider) (ProviderMeta, error) {
	switch p {
	case ProviderGoogle:
		return GoogleMeta{}, nil
	case ProviderJira:
		return JiraMeta{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrValidation, p)
	}
}
