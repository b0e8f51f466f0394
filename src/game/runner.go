package game

import (
	"context"
	"io"

	"lifeterm/src/universe"
	"lifeterm/src/view"
)

//BoardLoader creates the initial board
type BoardLoader interface {
	Load() (*universe.Board, error)
}

//Deps are the process resources the runner is built on
type Deps struct {
	In       io.Reader          //the interactive input stream
	Out      io.Writer          //the printing animators output
	Terminal view.SessionOpener //raw terminal for the curses animator
}

//Runner loads the board and animates it
type Runner struct {
	loader   BoardLoader
	animator view.Animator
}

//NewRunner composes the loader and the animator
func NewRunner(loader BoardLoader, animator view.Animator) *Runner {
	return &Runner{loader: loader, animator: animator}
}

//New validates c and creates the Runner with the loader and the animator chosen by c
func New(c Config, d Deps) (*Runner, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if d.Terminal == nil {
		d.Terminal = view.OpenTermbox
	}

	var src universe.LineSource
	switch {
	case c.Filename != "":
		fs, err := universe.OpenFileSource(c.Filename)
		if err != nil {
			return nil, err
		}
		src = fs
	case c.Template != "":
		ts, err := universe.TemplateSource(c.Template)
		if err != nil {
			return nil, err
		}
		src = ts
	default:
		src = universe.NewStreamSource(d.In)
	}

	var a view.Animator
	if c.StepToPrint > 0 {
		a = view.NewSingleFrameAnimator(c.StepToPrint, d.Out)
	} else {
		name := c.Animator
		if name == "" {
			name = DefAnimator
		}
		a = animators[name](&c, &d)
	}
	return NewRunner(universe.NewLoader(src), a), nil
}

//Run loads the board and animates it, nothing is rendered when the board can't be loaded
func (r *Runner) Run(ctx context.Context) error {
	b, err := r.loader.Load()
	if err != nil {
		return err
	}
	return r.animator.Animate(ctx, b)
}
