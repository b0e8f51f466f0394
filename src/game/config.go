package game

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"lifeterm/src/universe"
	"lifeterm/src/view"
)

//ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	AnimatorCurses   = "curses"
	AnimatorPrintAll = "print_all"
	AnimatorPanel    = "panel"
)

//Config represents the run options, usually filled from the command line
type Config struct {
	Animator    string        //animator name, empty means DefAnimator
	Filename    string        //board file, the board is read from the input stream when both Filename and Template are empty
	Template    string        //built-in board name
	StepToPrint int           //print only this frame, 1 is the initial board
	Interval    time.Duration //pause between frames
}

//DefAnimator is used when neither Animator nor StepToPrint are set
const DefAnimator = AnimatorCurses

//DefaultConfig reads the board from the input stream and animates it in the terminal
var DefaultConfig = Config{
	Interval: view.DefInterval,
}

var animators = map[string]func(c *Config, d *Deps) view.Animator{
	AnimatorCurses: func(c *Config, d *Deps) view.Animator {
		return view.NewCursesAnimator(d.Terminal)
	},
	AnimatorPrintAll: func(c *Config, d *Deps) view.Animator {
		return view.NewPrintAllAnimator(c.Interval, d.Out)
	},
	AnimatorPanel: func(c *Config, d *Deps) view.Animator {
		return view.NewPanelAnimator(c.Interval)
	},
}

//AnimatorNames returns the known animator names sorted
func AnimatorNames() []string {
	names := make([]string, 0, len(animators))
	for k := range animators {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//Validate checks the options which can't be used together and the unknown names
func (c *Config) Validate() error {
	if c.Animator != "" && c.StepToPrint != 0 {
		return fmt.Errorf("%w: can't have both step to print and animator options", ErrInvalidConfig)
	}
	if c.StepToPrint < 0 {
		return fmt.Errorf("%w: step to print must be positive, got %v", ErrInvalidConfig, c.StepToPrint)
	}
	if _, ok := animators[c.Animator]; c.Animator != "" && !ok {
		return fmt.Errorf("%w: unknown animator %q, must be one of %v", ErrInvalidConfig, c.Animator, AnimatorNames())
	}
	if c.Filename != "" && c.Template != "" {
		return fmt.Errorf("%w: can't have both filename and template options", ErrInvalidConfig)
	}
	if _, ok := universe.LookupTemplate(c.Template); c.Template != "" && !ok {
		return fmt.Errorf("%w: unknown template %q", ErrInvalidConfig, c.Template)
	}
	if c.Interval < 0 {
		return fmt.Errorf("%w: negative interval %v", ErrInvalidConfig, c.Interval)
	}
	return nil
}

//Interactive reports whether the board is typed in by the user
func (c *Config) Interactive() bool {
	return c.Filename == "" && c.Template == ""
}
