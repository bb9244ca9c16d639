// Package batch evaluates files of calculations.
//
// Every line of a file is a calculation of the form
//
//	<a>;<operation>;<b>
//
// for example "1 234,5;mul;2". Blank lines and lines starting with '#' are
// skipped.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/tsatke/calc"
)

// Separator separates the fields of a line.
const Separator = ";"

// ErrMalformedLine is reported for lines that don't consist of three fields.
var ErrMalformedLine = errors.New("malformed line")

// Line is the outcome of a single calculation.
type Line struct {
	// Number is the 1-based line number in the file.
	Number int
	Result calc.Result
	Err    error
}

// Text returns the formatted result, "overflow", or "error: <code>".
// If explain is set, the calculation steps are returned instead of the
// formatted result.
func (l Line) Text(explain bool) string {
	if l.Err != nil {
		return "error: " + code(l.Err)
	}
	if explain {
		return l.Result.Explanation
	}
	if l.Result.Overflow {
		return "overflow"
	}
	return l.Result.Text
}

func code(err error) string {
	switch {
	case errors.Is(err, ErrMalformedLine):
		return "MALFORMED_LINE"
	case errors.Is(err, calc.ErrUnknownOperation):
		return "UNKNOWN_OPERATION"
	}
	return calc.Code(err)
}

type Option func(*runner)

// WithExplain makes Run print the calculation steps instead of only the results.
func WithExplain(explain bool) Option {
	return func(r *runner) {
		r.explain = explain
	}
}

type runner struct {
	explain bool
}

// Evaluate evaluates all calculations read from r. Failed calculations are
// reported in the returned lines, the error is only set if r could not be read
// or ctx is done.
func Evaluate(ctx context.Context, c *calc.Calculator, r io.Reader) ([]Line, error) {
	var lines []Line

	sc := bufio.NewScanner(r)
	for number := 1; sc.Scan(); number++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, evaluateLine(c, number, text))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func evaluateLine(c *calc.Calculator, number int, text string) Line {
	l := Line{Number: number}

	fields := strings.Split(text, Separator)
	if len(fields) != 3 {
		l.Err = fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedLine, len(fields))
		return l
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	op, err := calc.ParseOperation(fields[1])
	if err != nil {
		l.Err = err
		return l
	}

	l.Result, l.Err = c.Calculate(op, fields[0], fields[2])
	return l
}

// Run evaluates all files concurrently and writes their results to w, in the
// order of paths. If there is more than one file, the results of each file
// are preceded by a "==> path <==" header.
//
// Run fails if any of the files cannot be read. Failed calculations are
// written as "error: <code>" and don't fail Run.
func Run(ctx context.Context, fs afero.Fs, c *calc.Calculator, paths []string, w io.Writer, opts ...Option) error {
	r := &runner{}
	for _, opt := range opts {
		opt(r)
	}

	reports := make([]bytes.Buffer, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			f, err := fs.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer func() { _ = f.Close() }()

			lines, err := Evaluate(ctx, c, f)
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", path, err)
			}

			for _, l := range lines {
				_, _ = fmt.Fprintln(&reports[i], l.Text(r.explain))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if len(paths) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "==> %s <==\n", path); err != nil {
				return err
			}
		}
		if _, err := reports[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}
