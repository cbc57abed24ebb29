package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"payplan/internal/domain/amortization"
	"payplan/internal/domain/entities"

	"github.com/urfave/cli"
)

type loanTermsInput struct {
	principal float64
	rate      float64
	years     float64
}

func runMortgage(w io.Writer, in loanTermsInput, withSchedule bool) error {
	terms := entities.LoanTerms{Principal: in.principal, AnnualRatePercent: in.rate, TermYears: in.years}
	q, err := amortization.Quote(terms)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	fmt.Fprintf(w, "monthly_payment=%s\n", amortization.FormatAmount(q.MonthlyPayment))
	fmt.Fprintf(w, "number_of_payments=%g\n", q.NumberOfPayments)
	fmt.Fprintf(w, "total_payment=%s\n", amortization.FormatAmount(q.TotalPayment))
	fmt.Fprintf(w, "total_interest=%s\n", amortization.FormatAmount(q.TotalInterest))

	if !withSchedule {
		return nil
	}
	rows, err := amortization.Schedule(terms)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Fprintln(w, "period\tpayment\tprincipal\tinterest\tbalance")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", row.Period, row.Payment.StringFixed(2), row.Principal.StringFixed(2), row.Interest.StringFixed(2), row.Balance.StringFixed(2))
	}
	return nil
}

// runWatch feeds field edits into a Tracker. Lines that do not parse are
// reported and skipped; the last valid payment is printed after every line.
func runWatch(r io.Reader, w io.Writer) error {
	tracker := amortization.NewTracker(entities.LoanTerms{})

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		field, raw, _ := strings.Cut(line, " ")
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			fmt.Fprintf(w, "error: %q is not a number\n", strings.TrimSpace(raw))
			continue
		}

		switch strings.ToLower(field) {
		case "principal":
			tracker.SetPrincipal(v)
		case "rate":
			tracker.SetAnnualRate(v)
		case "years":
			tracker.SetTermYears(v)
		default:
			fmt.Fprintf(w, "error: unknown field %q\n", field)
			continue
		}

		display := tracker.Display()
		if display == "" {
			display = "-"
		}
		fmt.Fprintf(w, "monthly_payment=%s\n", display)
	}
	return sc.Err()
}
