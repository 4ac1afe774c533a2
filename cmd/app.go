// Package cmd implements the cfo command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/coingecko"
	"github.com/etnz/cryptofolio/renderer"
)

// Environment variables used when the matching flag is not set.
const (
	EnvPortfolioFile = "CFO_PORTFOLIO_FILE"
	EnvSettingsFile  = "CFO_SETTINGS_FILE"
	EnvAPIURL        = "CFO_API_URL"
)

const (
	DefaultPortfolioFile = "crypto_portfolio.json"
	DefaultSettingsFile  = "cryptofolio.yaml"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio JSON file (default "+DefaultPortfolioFile+", or $"+EnvPortfolioFile+")")
var settingsFile = flag.String("settings-file", "", "Path to the notification settings YAML file (default "+DefaultSettingsFile+", or $"+EnvSettingsFile+")")
var apiURL = flag.String("api-url", "", "Base URL of the CoinGecko API (default "+coingecko.DefaultBaseURL+", or $"+EnvAPIURL+")")
var plain = flag.Bool("plain", false, "print raw markdown instead of rendering it for the terminal")

// Verbose enables diagnostic logs.
var Verbose = flag.Bool("v", false, "verbose diagnostics")

// setting returns value, or the environment variable env, or def.
func setting(value, env, def string) string {
	if value != "" {
		return value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// App is the state shared by all commands of a process.
type App struct {
	Session *cryptofolio.Session
	Market  cryptofolio.PriceSource

	In  io.Reader
	Out io.Writer
	Err io.Writer

	Plain         bool // print raw markdown
	PortfolioFile string
	SettingsFile  string
	Now           func() time.Time

	// prices fetched by the current command, reused by the post-render check.
	fresh map[string]cryptofolio.Quote
}

// NewApp creates the application from the global flags. It must be called
// after flag.Parse.
func NewApp() *App {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
	a := &App{
		Session:       cryptofolio.NewSession(),
		Market:        coingecko.NewClient(setting(*apiURL, EnvAPIURL, coingecko.DefaultBaseURL)),
		In:            os.Stdin,
		Out:           os.Stdout,
		Err:           os.Stderr,
		Plain:         *plain,
		PortfolioFile: setting(*portfolioFile, EnvPortfolioFile, DefaultPortfolioFile),
		SettingsFile:  setting(*settingsFile, EnvSettingsFile, DefaultSettingsFile),
		Now:           time.Now,
	}
	s, err := cryptofolio.LoadSettings(a.SettingsFile)
	if err != nil {
		a.warnf("%v, using default settings", err)
	}
	a.Session.Settings = s
	log.Printf("portfolio file %q, settings file %q", a.PortfolioFile, a.SettingsFile)
	return a
}

// appFrom finds the App passed to a command by the commander.
func appFrom(args []interface{}) *App {
	for _, arg := range args {
		if a, ok := arg.(*App); ok {
			return a
		}
	}
	return NewApp()
}

func (a *App) printMarkdown(doc string) {
	if a.Plain {
		fmt.Fprintln(a.Out, doc)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(doc); err == nil {
			fmt.Fprint(a.Out, out)
			return
		}
	}
	log.Printf("cannot render markdown: %v", err)
	fmt.Fprintln(a.Out, doc)
}

func (a *App) infof(format string, args ...any) {
	fmt.Fprintf(a.Out, format+"\n", args...)
}

func (a *App) warnf(format string, args ...any) {
	fmt.Fprintf(a.Err, "Warning: "+format+"\n", args...)
}

func (a *App) errorf(format string, args ...any) {
	fmt.Fprintf(a.Err, "Error: "+format+"\n", args...)
}

// quotes fetches current prices. Failures are reported and yield the
// prices that could be fetched, possibly none.
func (a *App) quotes(ctx context.Context, ids []string) map[string]cryptofolio.Quote {
	prices, err := a.Market.CurrentPrices(ctx, ids)
	if err != nil {
		a.warnf("cannot fetch current prices: %v", err)
	}
	if prices == nil {
		prices = make(map[string]cryptofolio.Quote)
	}
	return prices
}

// resolve returns the asset designated by query. When the catalog is not
// available the query is used as the asset id.
func (a *App) resolve(ctx context.Context, query string) (cryptofolio.Asset, error) {
	catalog, err := a.Market.ListAssets(ctx)
	if err == nil && len(catalog) == 0 {
		err = errors.New("empty catalog")
	}
	if err != nil {
		a.warnf("coin catalog unavailable: %v, using %q as is", err, query)
		return cryptofolio.Asset{ID: query}, nil
	}
	return cryptofolio.ResolveAsset(catalog, query)
}

// showDashboard recomputes and prints the dashboard with fresh prices.
func (a *App) showDashboard(ctx context.Context) {
	p := a.Session.Portfolio
	var prices map[string]cryptofolio.Quote
	if !p.IsEmpty() {
		prices = a.quotes(ctx, p.IDs())
		a.fresh = prices
	}
	a.printMarkdown(renderer.DashboardMarkdown(cryptofolio.Recompute(p, prices)))
}

// afterCommand is the post-render step: it checks alerts and the portfolio
// value, and prints new notifications.
func (a *App) afterCommand(ctx context.Context) {
	prices := a.fresh
	a.fresh = nil
	if !a.Session.NeedsPrices() {
		return
	}
	if prices == nil {
		prices = a.quotes(ctx, a.Session.Portfolio.IDs())
	}
	for _, n := range a.Session.Check(prices, a.Now()) {
		fmt.Fprintln(a.Out, renderer.NotificationLine(n))
	}
}
