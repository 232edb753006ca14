// Package ui - Terminal user interface
// Coloured CLI output, tables and quote rendering.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"solar-quote/core/types"
	"solar-quote/internal/errors"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(Green, "✓ "), msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(Yellow, "⚠ "), msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(Red, "✗ "), msg)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(Blue, "ℹ "), msg)
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Dim, "  "+msg))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := len([]rune(row[i])); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.color(Bold, t.line(t.headers)))

	// Separator
	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.Println("%s", sep)

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}

func (t *Table) line(cells []string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell + strings.Repeat(" ", t.widths[i]-len([]rune(cell)))
	}
	return strings.TrimRight(strings.Join(parts, " │ "), " ")
}

// Installation prints an installation cost quote
func (w *Writer) Installation(q *types.InstallationQuote, currency types.Currency) {
	w.SubHeader("Installation cost")
	w.Println("  Monthly consumption:  %s kWh", q.ConsumptionKWh.String())
	w.Println("  Required capacity:    %s kW", q.CapacityKW.String())
	w.Println("  Cost per kW:          %s", currency.Format(q.CostPerKW))
	w.Success("Estimated installation cost: %s", currency.Format(q.Cost))
}

// Savings prints a monthly savings quote
func (w *Writer) Savings(q *types.SavingsQuote, currency types.Currency) {
	w.SubHeader("Monthly savings")
	w.Println("  Estimated gross monthly savings: %s", currency.Format(q.Gross))
	w.Println("  Base fee subtracted:             %s", currency.Format(q.BaseFee))
	w.Success("Estimated net monthly savings: %s", currency.Format(q.Net))
}

// Payback prints the payback time breakdown
func (w *Writer) Payback(p *types.Payback) {
	w.SubHeader("Payback time")
	w.Success("Estimated payback time: %s", PaybackText(p))
	w.Debug("%.2f months in total", p.Months)
}

// PaybackText formats a payback as "N years and M months"
func PaybackText(p *types.Payback) string {
	return fmt.Sprintf("%d years and %d months", p.Years, p.RemainderMonths)
}

// ReportError prints an estimator error in a way that distinguishes the
// error kinds. It never terminates the program.
func (w *Writer) ReportError(err error) {
	switch errors.TypeOf(err) {
	case errors.TypeInvalidInput:
		w.Error("Invalid value, please enter a valid number (%s).", errors.MessageOf(err))
	case errors.TypeMissingPrerequisite:
		w.Warning("Compute the installation cost and the monthly savings first.")
	case errors.TypeDivisionByZero:
		w.Error("Error: monthly savings are zero, the payback time cannot be computed.")
	case errors.TypeNoPayback:
		w.Error("%s.", errors.MessageOf(err))
	default:
		w.Error("%v", err)
	}
}
