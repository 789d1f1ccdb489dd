// Package source extracts function declarations, with their comments, from
// Go files held in an fs.FS.
package source

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// ErrNotFound is returned when no file declares the requested function.
var ErrNotFound = errors.New("function not found")

// Func is a top-level function declaration.
type Func struct {
	Name string
	File string
	Line int
	// Text is the declaration as written, doc comment included.
	Text string
}

// parsedFile pairs an AST with the bytes it was parsed from.
type parsedFile struct {
	name string
	src  []byte
	ast  *ast.File
}

// Finder locates function declarations in the .go files of a file system.
type Finder struct {
	fset  *token.FileSet
	files []parsedFile
}

// NewFinder parses every .go file at the root of fsys. Test files are
// skipped.
func NewFinder(fsys fs.FS) (*Finder, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	fnd := &Finder{fset: token.NewFileSet()}
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		f, err := parser.ParseFile(fnd.fset, name, src, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		fnd.files = append(fnd.files, parsedFile{name: name, src: src, ast: f})
	}
	return fnd, nil
}

// Funcs lists every top-level function, file by file in name order and in
// declaration order within a file. Methods are not included.
func (fnd *Finder) Funcs() []Func {
	var out []Func
	for _, pf := range fnd.files {
		fnd.walk(pf, func(fn Func) bool {
			out = append(out, fn)
			return true
		})
	}
	return out
}

// Find returns the function called name.
func (fnd *Finder) Find(name string) (Func, error) {
	var found Func
	ok := false
	for _, pf := range fnd.files {
		fnd.walk(pf, func(fn Func) bool {
			if fn.Name == name {
				found, ok = fn, true
				return false
			}
			return true
		})
		if ok {
			return found, nil
		}
	}
	return Func{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// walk calls visit for each top-level function in pf until visit returns
// false.
func (fnd *Finder) walk(pf parsedFile, visit func(Func) bool) {
	done := false
	astutil.Apply(pf.ast, func(c *astutil.Cursor) bool {
		if done {
			return false
		}
		switch n := c.Node().(type) {
		case *ast.File:
			return true
		case *ast.FuncDecl:
			if n.Recv != nil {
				return false
			}
			if !visit(fnd.funcFor(pf, n)) {
				done = true
			}
		}
		// Only top-level declarations are of interest.
		return false
	}, nil)
}

func (fnd *Finder) funcFor(pf parsedFile, decl *ast.FuncDecl) Func {
	start := decl.Pos()
	if decl.Doc != nil {
		start = decl.Doc.Pos()
	}
	tf := fnd.fset.File(decl.Pos())
	from, to := tf.Offset(start), tf.Offset(decl.End())

	return Func{
		Name: decl.Name.Name,
		File: pf.name,
		Line: fnd.fset.Position(start).Line,
		Text: string(pf.src[from:to]),
	}
}

// Find parses fsys and returns the function called name.
func Find(fsys fs.FS, name string) (Func, error) {
	fnd, err := NewFinder(fsys)
	if err != nil {
		return Func{}, err
	}
	return fnd.Find(name)
}

// Funcs parses fsys and lists its top-level functions.
func Funcs(fsys fs.FS) ([]Func, error) {
	fnd, err := NewFinder(fsys)
	if err != nil {
		return nil, err
	}
	return fnd.Funcs(), nil
}
