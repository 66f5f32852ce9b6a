package cmd

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/services"
	"github.com/renato0307/tempo/internal/theme"
)

// AuthCmd manages provider accounts
type AuthCmd struct {
	Connect    AuthConnectCmd    `cmd:"connect" help:"Connect an account with an authorization code"`
	Disconnect AuthDisconnectCmd `cmd:"disconnect" help:"Remove a connected account"`
	List       AuthListCmd       `cmd:"list" help:"List connected accounts" default:"1"`
	Primary    AuthPrimaryCmd    `cmd:"primary" help:"Make an account the primary one of its provider"`
	Token      AuthTokenCmd      `cmd:"token" help:"Print a valid access token, refreshing it if needed"`
	URL        AuthURLCmd        `cmd:"url" help:"Print the consent page URL that yields an authorization code"`
}

// AuthURLCmd prints the provider consent URL
type AuthURLCmd struct {
	Provider    string `arg:"" help:"Provider (google or jira)" enum:"google,jira"`
	RedirectURL string `help:"Redirect URL registered with the OAuth client"`
	State       string `help:"Opaque state echoed back by the provider (random when empty)"`
}

// Run executes the url command
func (a *AuthURLCmd) Run(cli *CLI) error {
	provider, err := domain.ParseProvider(a.Provider)
	if err != nil {
		return err
	}
	// Random state so the redirect can be matched to this request
	state := a.State
	if state == "" {
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("failed to generate state: %w", err)
		}
		state = hex.EncodeToString(buf)
	}

	url, err := cli.Container.Exchanger.AuthCodeURL(provider, state, a.RedirectURL)
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}

// AuthConnectCmd exchanges an authorization code and stores the account
type AuthConnectCmd struct {
	Account     string   `help:"Account identifier (e-mail or Atlassian account id)" required:""`
	Calendars   []string `help:"Google calendars to reconcile (default: primary)" sep:","`
	CloudID     string   `help:"Atlassian cloud id of the Jira site"`
	Code        string   `help:"Authorization code returned by the consent page" required:""`
	Provider    string   `arg:"" help:"Provider (google or jira)" enum:"google,jira"`
	RedirectURL string   `help:"Redirect URL used to obtain the code"`
	SiteURL     string   `help:"Browse URL of the Jira site, e.g. https://acme.atlassian.net"`
}

// Run executes the connect command
func (a *AuthConnectCmd) Run(cli *CLI) error {
	provider, err := domain.ParseProvider(a.Provider)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Executing auth connect command", "provider", provider, "account", a.Account)

	// Build provider specific metadata from the flags
	var meta domain.ProviderMeta
	switch provider {
	case domain.ProviderGoogle:
		meta = domain.GoogleMeta{CalendarIDs: a.Calendars, Email: a.Account}
	case domain.ProviderJira:
		meta = domain.JiraMeta{AccountEmail: a.Account, CloudID: a.CloudID, SiteURL: a.SiteURL}
	}

	status, err := cli.Container.CredentialService.Connect(context.Background(), services.ConnectParams{
		AccountID:   a.Account,
		Code:        a.Code,
		Meta:        meta,
		Provider:    provider,
		RedirectURL: a.RedirectURL,
		UserID:      cli.UserID(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Connected %s account %s", status.Provider, status.AccountID)
	if status.IsPrimary {
		fmt.Print(" (primary)")
	}
	fmt.Println()
	return nil
}

// AuthListCmd lists connected accounts
type AuthListCmd struct {
	Format   string `help:"Output format (table or json)" default:"table" enum:"table,json"`
	Provider string `help:"Only show one provider (google or jira)"`
}

// Run executes the list command
func (a *AuthListCmd) Run(cli *CLI) error {
	providers := domain.Providers
	if a.Provider != "" {
		p, err := domain.ParseProvider(a.Provider)
		if err != nil {
			return err
		}
		providers = []domain.Provider{p}
	}

	// Collect accounts of every requested provider
	var statuses []domain.CredentialStatus
	for _, p := range providers {
		list, err := cli.Container.CredentialService.ListCredentials(context.Background(), cli.UserID(), p)
		if err != nil {
			return fmt.Errorf("failed to list %s accounts: %w", p, err)
		}
		statuses = append(statuses, list...)
	}

	if a.Format == formatJSON {
		return printJSON(statuses)
	}
	if len(statuses) == 0 {
		fmt.Println("No accounts connected.")
		fmt.Println(theme.HintStyle.Render("Run 'tempo auth url <provider>' and then 'tempo auth connect'."))
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "PROVIDER\tACCOUNT\tPRIMARY\tSTATE\tEXPIRES")
	for _, s := range statuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.Provider, s.AccountID, yesNo(s.IsPrimary), credentialState(s), formatOptionalTime(s.ExpiresAt, time.Local))
	}
	return w.Flush()
}

func credentialState(s domain.CredentialStatus) string {
	switch {
	case !s.IsActive:
		return "invalid: " + s.InvalidReason
	case s.ExpiresSoon:
		return "expires soon"
	default:
		return "active"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// AuthPrimaryCmd switches the primary account of a provider
type AuthPrimaryCmd struct {
	Provider string `arg:"" help:"Provider (google or jira)" enum:"google,jira"`
	Account  string `arg:"" help:"Account identifier"`
}

// Run executes the primary command
func (a *AuthPrimaryCmd) Run(cli *CLI) error {
	provider, err := domain.ParseProvider(a.Provider)
	if err != nil {
		return err
	}
	if err := cli.Container.CredentialService.SetPrimary(context.Background(), cli.UserID(), provider, a.Account); err != nil {
		return err
	}
	fmt.Printf("%s is now the primary %s account\n", a.Account, provider)
	return nil
}

// AuthDisconnectCmd removes an account
type AuthDisconnectCmd struct {
	Provider string `arg:"" help:"Provider (google or jira)" enum:"google,jira"`
	Account  string `arg:"" help:"Account identifier"`
	Force    bool   `help:"Skip confirmation" short:"f"`
}

// Run executes the disconnect command
func (a *AuthDisconnectCmd) Run(cli *CLI) error {
	provider, err := domain.ParseProvider(a.Provider)
	if err != nil {
		return err
	}
	if !a.Force {
		// Confirm before removing the account
		fmt.Printf("Disconnect %s account %s? [y/N]: ", provider, a.Account)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}
	if err := cli.Container.CredentialService.Disconnect(context.Background(), cli.UserID(), provider, a.Account); err != nil {
		return err
	}
	fmt.Printf("Disconnected %s account %s\n", provider, a.Account)
	return nil
}

// AuthTokenCmd prints a valid access token
type AuthTokenCmd struct {
	Account  string `help:"Account identifier (default: primary)"`
	Provider string `arg:"" help:"Provider (google or jira)" enum:"google,jira"`
}

// Run executes the token command
func (a *AuthTokenCmd) Run(cli *CLI) error {
	provider, err := domain.ParseProvider(a.Provider)
	if err != nil {
		return err
	}
	token, err := cli.Container.CredentialService.GetValidToken(
		context.Background(), cli.UserID(), provider, domain.AccountSelector{AccountID: a.Account})
	if err != nil {
		return err
	}
	fmt.Println(token.AccessToken)
	return nil
}
