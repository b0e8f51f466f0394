package view

import (
	"context"
	"fmt"
	"io"

	"lifeterm/src/universe"
)

//Animator drives the board: renders it, advances it and waits until its stop condition
type Animator interface {
	Animate(ctx context.Context, b *universe.Board) error
}

//SingleFrameAnimator renders only the frame with the given number, the first frame is the initial board
type SingleFrameAnimator struct {
	step   int
	drawer Drawer
	out    io.Writer
}

//NewSingleFrameAnimator creates the SingleFrameAnimator, steps below 1 are treated as 1
func NewSingleFrameAnimator(step int, out io.Writer) *SingleFrameAnimator {
	if step < 1 {
		step = 1
	}
	return &SingleFrameAnimator{step: step, drawer: NewDrawer(), out: out}
}

//Animate advances the board step-1 times and writes it once
func (a *SingleFrameAnimator) Animate(_ context.Context, b *universe.Board) error {
	for i := 1; i < a.step; i++ {
		b.Step()
	}
	_, err := fmt.Fprintln(a.out, a.drawer.Draw(b))
	return err
}
