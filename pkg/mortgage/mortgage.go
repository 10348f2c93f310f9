// Package mortgage computes fixed-rate amortizing mortgage figures: the
// minimum periodic payment for a loan, the interest portion of a payment,
// and the number of payments needed to retire a balance.
package mortgage

import (
	"errors"
	"math"
)

// ErrPaymentTooSmall means the payment doesn't exceed the interest accruing
// each period, so the balance never shrinks and the mortgage is never paid
// off.
var ErrPaymentTooSmall = errors.New("payment does not cover the interest due each period")

// maxPayoffIterations bounds the payoff simulation. Any payment that makes
// progress at all retires a balance in far fewer steps than this.
const maxPayoffIterations = 1 << 20

// Terms describes a fixed-rate mortgage.
type Terms struct {
	Principal       float64
	AnnualRate      float64 // between 0 and 1, e.g. 0.035 == 3.5%
	Years           int
	PaymentsPerYear int
}

func (t Terms) Validate() error {
	if t.Principal < 0 {
		return errors.New("mortgage amount must be positive")
	}
	if t.AnnualRate < 0 || t.AnnualRate > 1 {
		return errors.New("annual interest rate must be between 0 and 1")
	}
	if t.Years < 1 {
		return errors.New("years must be positive")
	}
	if t.PaymentsPerYear < 1 {
		return errors.New("number of payments per year must be positive")
	}
	return nil
}

// InterestDue returns the interest accruing on a balance over one period.
// paymentsPerYear must not be zero, which Terms.Validate enforces upstream.
func InterestDue(balance, annualRate float64, paymentsPerYear int) float64 {
	return balance * annualRate / float64(paymentsPerYear)
}

// MinPayment returns the smallest level payment that fully amortizes the
// loan over its term, rounded up to the next whole currency unit. Rounding
// up guarantees the balance is exhausted within the scheduled payments.
func MinPayment(principal, annualRate float64, years, paymentsPerYear int) int {
	// A = P * [(r/n) * (1 + r/n)^(n*t)] / [(1 + r/n)^(n*t) - 1]
	// P = Outstanding Loan Amount
	// r = Rate of interest (Annual)
	// t = Tenure of Loan in Years
	// n = Number of Periodic Payments Per Year
	n := float64(years * paymentsPerYear)
	if annualRate == 0 {
		// the annuity formula divides by zero at r=0, where the payment
		// is just the principal split evenly
		return int(math.Ceil(principal / n))
	}
	r := annualRate / float64(paymentsPerYear)
	a := principal * (r * math.Pow(1+r, n)) / (math.Pow(1+r, n) - 1)
	return int(math.Ceil(a))
}

// PaymentsToPayoff simulates paying targetPayment each period and returns
// how many payments it takes to bring the balance to zero or below. The
// final payment may overpay; no partial payment is modeled. It returns
// ErrPaymentTooSmall when the payment can't outpace the accruing interest.
func PaymentsToPayoff(balance, annualRate, targetPayment float64, paymentsPerYear int) (int, error) {
	payments := 0
	for balance > 0 {
		if payments >= maxPayoffIterations {
			return 0, ErrPaymentTooSmall
		}
		interest := InterestDue(balance, annualRate, paymentsPerYear)
		balance -= targetPayment - interest
		payments++
	}
	return payments, nil
}

// RemainingBalance returns the balance still owed after a number of
// scheduled minimum payments have been made.
func RemainingBalance(principal, annualRate float64, years, paymentsPerYear, paymentsMade int) float64 {
	// B = P * [(1 + r/n)^(n*t) - (1 + r/n)^k] / [(1 + r/n)^(n*t) - 1]
	// k = Number of Payments Already Made
	n := float64(years * paymentsPerYear)
	k := float64(paymentsMade)
	if annualRate == 0 {
		return principal * (1 - k/n)
	}
	r := annualRate / float64(paymentsPerYear)
	return principal * (math.Pow(1+r, n) - math.Pow(1+r, k)) / (math.Pow(1+r, n) - 1)
}
