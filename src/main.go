package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"lifeterm/src/game"
	"lifeterm/src/universe"
)

const usage = `If neither "--filename" nor "--template" is passed in, type in the board and hit return twice
to mark that the board is complete. Boards look like:

0 0
0 1

where "0"s represent dead cells and "1"s represent live cells.`

func main() {
	log.SetFlags(0)
	c := initOptions()

	if c.Interactive() {
		fmt.Fprintln(os.Stderr, aurora.Cyan("Type the board, finish with an empty line:"))
	}

	r, err := game.New(*c, game.Deps{In: os.Stdin, Out: os.Stdout})
	if err != nil {
		log.Fatalln(aurora.Red(err.Error()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		stop()
		log.Fatalln(aurora.Red(err.Error()))
	}
}

func initOptions() *game.Config {
	c := game.DefaultConfig
	templateNames := make([]string, 0)
	for _, t := range universe.Templates() {
		templateNames = append(templateNames, t.Name)
	}

	flaggy.SetName("lifeterm")
	flaggy.SetDescription("\"The Life\" game simulation in the terminal")
	flaggy.DefaultParser.AdditionalHelpPrepend = usage
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&c.Animator, "a", "animator", "How to animate the board ["+strings.Join(game.AnimatorNames(), "|")+"], default is "+game.DefAnimator+". Can't be used together with --step-to-print")
	flaggy.String(&c.Filename, "f", "filename", "File with the initial board")
	flaggy.String(&c.Template, "t", "template", "Built-in initial board ["+strings.Join(templateNames, "|")+"]")
	flaggy.Int(&c.StepToPrint, "s", "step-to-print", "Print only this step, the initial board is step 1. Can't be used together with --animator")
	flaggy.Duration(&c.Interval, "i", "interval", "Interval between the steps in format the number with 'ms' suffix, for example 150ms")

	flaggy.Parse()

	if err := c.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return &c
}
