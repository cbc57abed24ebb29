package main

import (
	"log"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	principalFlag := cli.Float64Flag{Name: "principal", Usage: "amount borrowed", Required: true}
	rateFlag := cli.Float64Flag{Name: "rate", Usage: "yearly interest rate, in percent", Required: true}
	yearsFlag := cli.Float64Flag{Name: "years", Usage: "loan term, in years", Required: true}
	scheduleFlag := cli.BoolFlag{Name: "schedule", Usage: "print the month by month amortization table"}

	methodFlag := cli.StringSliceFlag{Name: "method", Usage: "funding method to check, in order (repeatable)"}
	percentFlag := cli.StringSliceFlag{Name: "percent", Usage: "typed percentage as method=value (repeatable)"}
	totalFlag := cli.Float64Flag{Name: "total", Usage: "total plan amount"}
	evenFlag := cli.BoolFlag{Name: "even", Usage: "split 100% evenly across the checked methods"}

	app := cli.NewApp()
	app.Name = "plancalc"
	app.Usage = "mortgage and mix allocation calculator"
	app.Commands = []cli.Command{
		{
			Name:  "mortgage",
			Usage: "quote the fixed monthly payment of a loan",
			Flags: []cli.Flag{principalFlag, rateFlag, yearsFlag, scheduleFlag},
			Action: func(cctx *cli.Context) error {
				return runMortgage(cctx.App.Writer, loanTermsInput{
					principal: cctx.Float64(principalFlag.Name),
					rate:      cctx.Float64(rateFlag.Name),
					years:     cctx.Float64(yearsFlag.Name),
				}, cctx.Bool(scheduleFlag.Name))
			},
		},
		{
			Name:  "watch",
			Usage: "read `principal|rate|years <value>` lines from stdin and print the payment after each",
			Action: func(cctx *cli.Context) error {
				return runWatch(os.Stdin, cctx.App.Writer)
			},
		},
		{
			Name:  "allocate",
			Usage: "evaluate a mix of funding methods",
			Flags: []cli.Flag{methodFlag, percentFlag, totalFlag, evenFlag},
			Action: func(cctx *cli.Context) error {
				return runAllocate(cctx.App.Writer, allocateInput{
					methods:  cctx.StringSlice(methodFlag.Name),
					percents: cctx.StringSlice(percentFlag.Name),
					total:    cctx.Float64(totalFlag.Name),
					even:     cctx.Bool(evenFlag.Name),
				})
			},
		},
	}
	return app
}
