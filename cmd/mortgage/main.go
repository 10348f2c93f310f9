package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aybabtme/mortgage/pkg/mortgage"
	"github.com/urfave/cli"
)

func main() {
	yearsFlag := cli.IntFlag{Name: "years, y", Value: 30, Usage: "the term of the mortgage in years"}
	paymentsFlag := cli.IntFlag{Name: "num_annual_payments, n", Value: 12, Usage: "the number of payments per year"}
	targetFlag := cli.Float64Flag{Name: "target_payment, p", Usage: "the amount you want to pay per payment (default: the minimum payment)"}

	app := cli.App{
		Name:      "mortgage",
		Usage:     "perform fixed-rate mortgage calculations",
		ArgsUsage: "<mortgage_amount> <annual_interest_rate>",
		Flags: []cli.Flag{
			yearsFlag,
			paymentsFlag,
			targetFlag,
		},
		Action: func(cctx *cli.Context) error {
			if cctx.NArg() != 2 {
				return fmt.Errorf("expected a mortgage amount and an annual interest rate, got %d arguments", cctx.NArg())
			}
			amount, err := strconv.ParseFloat(cctx.Args().Get(0), 64)
			if err != nil {
				return fmt.Errorf("mortgage amount must be a number, got %q", cctx.Args().Get(0))
			}
			rate, err := strconv.ParseFloat(cctx.Args().Get(1), 64)
			if err != nil {
				return fmt.Errorf("annual interest rate must be a number, got %q", cctx.Args().Get(1))
			}
			var target *float64
			if cctx.IsSet("target_payment") {
				v := cctx.Float64("target_payment")
				if v < 0 {
					return fmt.Errorf("target payment must be positive")
				}
				target = &v
			}
			return run(
				amount,
				rate,
				cctx.Int("years"),
				cctx.Int("num_annual_payments"),
				target,
			)
		},
	}
	app.RunAndExitOnError()
}

func run(amount, rate float64, years, paymentsPerYear int, targetPayment *float64) error {
	report, err := mortgage.RunReport(mortgage.Terms{
		Principal:       amount,
		AnnualRate:      rate,
		Years:           years,
		PaymentsPerYear: paymentsPerYear,
	}, targetPayment)
	if err != nil {
		return err
	}
	return report.Render(os.Stdout)
}
