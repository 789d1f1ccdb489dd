// Package lessons contains one demonstration per language feature. Each
// lesson writes its lines to the io.Writer it is given and shares no state
// with the others.
package lessons

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Banner is printed before the first lesson of a run.
const Banner = "Go For Dummies!"

// ErrUnknownLesson is returned when a lesson name does not resolve.
var ErrUnknownLesson = errors.New("unknown lesson")

// Lesson is a named demonstration.
type Lesson struct {
	Name    string
	Summary string
	Run     func(w io.Writer)
}

var registry = []Lesson{
	{Name: "Variables", Summary: "primitive types, inference and constants", Run: Variables},
	{Name: "Operators", Summary: "arithmetic, assignment and increment operators", Run: Operators},
	{Name: "Functions", Summary: "results, value and pointer parameters, multiple returns", Run: Functions},
	{Name: "Scope", Summary: "blocks, nesting and shadowing", Run: Scope},
	{Name: "Flow", Summary: "if/else chains and switch with fallthrough", Run: Flow},
	{Name: "Loops", Summary: "for in all its forms, break and continue", Run: Loops},
	{Name: "Arrays", Summary: "fixed-size arrays, indexing and range", Run: Arrays},
	{Name: "Classes", Summary: "structs, methods, embedding and overriding", Run: Classes},
	{Name: "Pointers", Summary: "addresses, dereferencing and allocation", Run: Pointers},
}

// All returns every lesson in run order.
func All() []Lesson {
	out := make([]Lesson, len(registry))
	copy(out, registry)
	return out
}

// Lookup resolves a lesson name, ignoring case.
func Lookup(name string) (Lesson, bool) {
	for _, l := range registry {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Lesson{}, false
}

// Select returns the named lessons in run order, regardless of the order of
// names. An empty names list selects every lesson.
func Select(names []string) ([]Lesson, error) {
	if len(names) == 0 {
		return All(), nil
	}

	want := make(map[string]bool, len(names))
	for _, name := range names {
		l, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLesson, name)
		}
		want[l.Name] = true
	}

	var out []Lesson
	for _, l := range registry {
		if want[l.Name] {
			out = append(out, l)
		}
	}
	return out, nil
}

// Hooks observe lesson boundaries during Run. Either field may be nil.
type Hooks struct {
	Enter func(name string)
	Exit  func(name string)
}

// Run calls each lesson once, in the order given.
func Run(w io.Writer, ls []Lesson, hooks Hooks) {
	for _, l := range ls {
		if hooks.Enter != nil {
			hooks.Enter(l.Name)
		}
		l.Run(w)
		if hooks.Exit != nil {
			hooks.Exit(l.Name)
		}
	}
}

// RunAll prints the banner and runs every lesson in order.
func RunAll(w io.Writer) {
	fmt.Fprintln(w, Banner)
	Run(w, registry, Hooks{})
}
