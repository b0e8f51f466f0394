package universe

import (
	"fmt"
	"sort"
)

var templates = map[string]Template{
	"blinker": {
		"blinker",
		"period 2 oscillator",
		[]string{
			"0 0 0 0 0",
			"0 0 1 0 0",
			"0 0 1 0 0",
			"0 0 1 0 0",
			"0 0 0 0 0",
		},
	},
	"toad": {
		"toad",
		"period 2 oscillator",
		[]string{
			"0 0 0 0 0 0",
			"0 0 0 0 0 0",
			"0 0 1 1 1 0",
			"0 1 1 1 0 0",
			"0 0 0 0 0 0",
			"0 0 0 0 0 0",
		},
	},
	"beacon": {
		"beacon",
		"period 2 oscillator",
		[]string{
			"0 0 0 0 0 0",
			"0 1 1 0 0 0",
			"0 1 1 0 0 0",
			"0 0 0 1 1 0",
			"0 0 0 1 1 0",
			"0 0 0 0 0 0",
		},
	},
	"block": {
		"block",
		"still life",
		[]string{
			"0 0 0 0",
			"0 1 1 0",
			"0 1 1 0",
			"0 0 0 0",
		},
	},
	"glider": {
		"glider",
		"spaceship, stops at the bottom right corner as a block",
		[]string{
			"0 1 0 0 0 0 0 0",
			"0 0 1 0 0 0 0 0",
			"1 1 1 0 0 0 0 0",
			"0 0 0 0 0 0 0 0",
			"0 0 0 0 0 0 0 0",
			"0 0 0 0 0 0 0 0",
			"0 0 0 0 0 0 0 0",
			"0 0 0 0 0 0 0 0",
		},
	},
}

//Templates returns the built-in templates sorted by name
func Templates() []Template {
	names := make([]string, 0, len(templates))
	for k := range templates {
		names = append(names, k)
	}
	sort.Strings(names)
	list := make([]Template, 0, len(names))
	for _, n := range names {
		list = append(list, templates[n])
	}
	return list
}

//LookupTemplate returns the built-in template by its name
func LookupTemplate(name string) (Template, bool) {
	t, ok := templates[name]
	return t, ok
}

//TemplateSource serves the rows of the named built-in template
func TemplateSource(name string) (*LinesSource, error) {
	t, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}
	rows := make([]string, len(t.Rows))
	copy(rows, t.Rows)
	return NewLinesSource(rows), nil
}
