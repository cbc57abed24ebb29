package main

import (
	"fmt"
	"io"
	"strings"

	"payplan/internal/domain/allocation"
	"payplan/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"
)

type allocateInput struct {
	methods  []string
	percents []string
	total    float64
	even     bool
}

func runAllocate(w io.Writer, in allocateInput) error {
	var sel allocation.Selection
	for _, name := range in.methods {
		m, err := entities.ParseFundingMethod(name)
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("%v: %q", err, name), 2)
		}
		next, err := sel.Toggle(m, true)
		if err != nil {
			fmt.Fprintf(w, "warning: %v; %s not checked\n", err, m)
			continue
		}
		sel = next
	}

	var pct allocation.Percentages
	if in.even {
		pct = allocation.DistributeEvenly(sel)
	} else {
		for _, kv := range in.percents {
			name, raw, ok := strings.Cut(kv, "=")
			if !ok {
				return cli.NewExitError(fmt.Sprintf("percent %q must look like method=value", kv), 2)
			}
			m, err := entities.ParseFundingMethod(name)
			if err != nil {
				return cli.NewExitError(fmt.Sprintf("%v: %q", err, name), 2)
			}
			pct.Enter(m, raw)
		}
	}

	summary := allocation.Evaluate(sel, pct, decimal.NewFromFloat(in.total))
	for _, a := range summary.Allocations {
		fmt.Fprintf(w, "%s\t%s%%\t%s\n", a.Method, a.Percentage.StringFixed(2), a.Amount.StringFixed(2))
	}
	fmt.Fprintf(w, "allocated=%s%%\n", summary.AllocatedTotal.StringFixed(2))
	fmt.Fprintf(w, "remaining=%s%%\n", summary.Remaining.StringFixed(2))

	if !summary.Valid {
		fmt.Fprintf(w, "valid=false\n")
		return cli.NewExitError(summary.Problem.Error(), 1)
	}
	fmt.Fprintf(w, "valid=true\n")
	return nil
}
