package view

import (
	"context"
	"fmt"
	"io"
	"time"

	"lifeterm/src/universe"
)

//DefInterval is the default pause between two frames
const DefInterval = time.Second

//PrintAllAnimator prints every generation one after another separated by a blank line
//it never stops by itself, only the context cancellation (ctrl-c) finishes it
type PrintAllAnimator struct {
	interval time.Duration
	drawer   Drawer
	out      io.Writer
}

//NewPrintAllAnimator creates the PrintAllAnimator writing to out
func NewPrintAllAnimator(interval time.Duration, out io.Writer) *PrintAllAnimator {
	return &PrintAllAnimator{interval: interval, drawer: NewDrawer(), out: out}
}

//Animate prints, steps and sleeps until ctx is done
func (a *PrintAllAnimator) Animate(ctx context.Context, b *universe.Board) error {
	var timer *time.Timer
	for {
		if ctx.Err() != nil {
			return nil
		}
		if _, err := fmt.Fprintf(a.out, "%s\n\n", a.drawer.Draw(b)); err != nil {
			return err
		}
		b.Step()
		if a.interval <= 0 {
			continue
		}
		if timer == nil {
			timer = time.NewTimer(a.interval)
			defer timer.Stop()
		} else {
			timer.Reset(a.interval)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}
