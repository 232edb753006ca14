// Package ui - Interactive quotation menu
package ui

import (
	"bufio"
	"context"
	"io"
	"strings"

	"solar-quote/core/types"
)

// Estimator is the quotation service driven by the menu
type Estimator interface {
	Installation(ctx context.Context, consumptionText string) (*types.InstallationQuote, error)
	Savings(ctx context.Context, consumptionText, rateText string) (*types.SavingsQuote, error)
	Payback(ctx context.Context) (*types.Payback, error)
	Projection(ctx context.Context, years int) types.Projection
}

// LinkOpener opens a URL outside the program
type LinkOpener interface {
	Open(url string) error
}

// MenuOptions configures the interactive menu
type MenuOptions struct {
	Currency        types.Currency
	ProjectionYears int
	ContactURL      string
	Opener          LinkOpener
}

// Menu is the numbered interactive loop
type Menu struct {
	w    *Writer
	in   *bufio.Scanner
	est  Estimator
	opts MenuOptions
}

// NewMenu creates a menu reading answers from in
func NewMenu(w *Writer, in io.Reader, est Estimator, opts MenuOptions) *Menu {
	if opts.Currency == "" {
		opts.Currency = types.CurrencyBRL
	}
	return &Menu{
		w:    w,
		in:   bufio.NewScanner(in),
		est:  est,
		opts: opts,
	}
}

// Run shows the menu until the user exits or input ends
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.banner()
		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			m.w.Println("")
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.Installation(ctx)
		case "2":
			m.Savings(ctx)
		case "3":
			m.Payback(ctx)
		case "4":
			m.Chart(ctx)
		case "5":
			m.Contact()
		case "6":
			m.w.Println("Exiting.")
			return nil
		default:
			m.w.Error("Invalid option. Try again.")
		}
	}
}

func (m *Menu) banner() {
	m.w.Println("")
	m.w.Println("---------------------------------------------")
	m.w.Println("%s", m.w.color(Bold+Green, "                 Green Wave"))
	m.w.Println("           Solar Energy Solutions")
	m.w.Println("---------------------------------------------")
	m.w.Println("---     Solar Energy Quotation System     ---")
	m.w.Println("---------------------------------------------")
	m.w.Println("")
	m.w.Println("1. Quote installation cost")
	m.w.Println("2. Quote monthly savings")
	m.w.Println("3. Compute payback time")
	m.w.Println("4. Show comparison chart")
	m.w.Println("5. Contact us")
	m.w.Println("6. Exit")
	m.w.Println("")
}

// prompt prints label and reads one line. ok is false once input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	m.w.Print("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// Installation asks for the monthly consumption and quotes the installation
func (m *Menu) Installation(ctx context.Context) {
	m.w.Println("")
	m.w.Println("To quote the installation cost, enter your average monthly energy consumption in kWh.")
	m.w.Println("It is usually shown on the electricity bill as 'Total consumption' or 'Consumption in kWh'.")
	m.w.Println("")

	consumption, ok := m.prompt("Average monthly consumption (kWh): ")
	if !ok {
		return
	}

	q, err := m.est.Installation(ctx, consumption)
	if err != nil {
		m.w.ReportError(err)
		return
	}
	m.w.Installation(q, m.opts.Currency)
}

// Savings asks for consumption and energy rate and quotes the monthly savings
func (m *Menu) Savings(ctx context.Context) {
	m.w.Println("")
	m.w.Println("To quote the monthly savings you need your average monthly consumption and the energy rate.")
	m.w.Println("Average monthly consumption: see 'Total consumption' or 'Consumption in kWh' on the bill.")
	m.w.Println("Energy rate: usually shown as 'Energy tariff', the price per kWh.")
	m.w.Println("")

	consumption, ok := m.prompt("Average monthly consumption (kWh): ")
	if !ok {
		return
	}
	rate, ok := m.prompt("Local energy rate per kWh (e.g. 0.85): ")
	if !ok {
		return
	}

	q, err := m.est.Savings(ctx, consumption, rate)
	if err != nil {
		m.w.ReportError(err)
		return
	}
	m.w.Savings(q, m.opts.Currency)
}

// Payback shows the payback time of the recorded quote
func (m *Menu) Payback(ctx context.Context) {
	m.w.Println("")
	m.w.Println("The payback time uses the installation cost and the monthly savings computed earlier.")
	m.w.Println("")

	p, err := m.est.Payback(ctx)
	if err != nil {
		m.w.ReportError(err)
		return
	}
	m.w.Payback(p)
}

// Chart draws the comparison chart of the recorded quote
func (m *Menu) Chart(ctx context.Context) {
	p := m.est.Projection(ctx, m.opts.ProjectionYears)
	m.w.Chart(DefaultChartConfig(m.opts.Currency), p)
}

// Contact opens the contact link
func (m *Menu) Contact() {
	if m.opts.ContactURL == "" || m.opts.Opener == nil {
		m.w.Warning("No contact link is configured.")
		return
	}
	m.w.Info("Opening contact link %s ...", m.opts.ContactURL)
	if err := m.opts.Opener.Open(m.opts.ContactURL); err != nil {
		m.w.Error("Could not open the contact link: %v", err)
	}
}
