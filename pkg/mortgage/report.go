package mortgage

import (
	"fmt"
	"io"
	"strconv"
)

// Report is the outcome of comparing a target payment against the minimum
// payment for a mortgage. Exactly one of the two outcomes holds: either the
// target is below the minimum, or Payments holds the payoff horizon.
type Report struct {
	MinPayment    int
	TargetPayment float64
	BelowMinimum  bool
	Payments      int
}

// RunReport computes the minimum payment for the given terms and projects
// the payoff horizon under targetPayment. A nil targetPayment defaults to
// the minimum payment, in which case the horizon is the full scheduled term.
// A target below the minimum yields a BelowMinimum report and the payoff
// projection is never attempted, since it wouldn't terminate.
func RunReport(terms Terms, targetPayment *float64) (Report, error) {
	if err := terms.Validate(); err != nil {
		return Report{}, err
	}
	min := MinPayment(terms.Principal, terms.AnnualRate, terms.Years, terms.PaymentsPerYear)

	target := float64(min)
	if targetPayment != nil {
		target = *targetPayment
	}

	report := Report{MinPayment: min, TargetPayment: target}
	if target < float64(min) {
		report.BelowMinimum = true
		return report, nil
	}

	payments, err := PaymentsToPayoff(terms.Principal, terms.AnnualRate, target, terms.PaymentsPerYear)
	if err != nil {
		return Report{}, err
	}
	report.Payments = payments
	return report, nil
}

// Render writes the report as plain text lines.
func (r Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Minimum Payment: $%d\n", r.MinPayment); err != nil {
		return err
	}
	if r.BelowMinimum {
		_, err := fmt.Fprintln(w, "Your target payment is less than the minimum payment for this mortgage.")
		return err
	}
	target := strconv.FormatFloat(r.TargetPayment, 'f', -1, 64)
	_, err := fmt.Fprintf(w, "If you make payments of $%s, you will pay off the mortgage in %d payments.\n", target, r.Payments)
	return err
}
