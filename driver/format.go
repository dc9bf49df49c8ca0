package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type Format int

const (
	// FormatSpaces prints all terms on one line, each followed by a space.
	FormatSpaces Format = iota
	// FormatLabeled prints one "fib(i)=value" line per term.
	FormatLabeled
)

var ErrUnknownFormat = errors.New("unknown output format")

var formatNames = map[string]Format{
	"spaces":  FormatSpaces,
	"a":       FormatSpaces,
	"labeled": FormatLabeled,
	"b":       FormatLabeled,
}

func ParseFormat(name string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

func (f Format) String() string {
	switch f {
	case FormatSpaces:
		return "spaces"
	case FormatLabeled:
		return "labeled"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Formatter writes a single term, and whatever has to follow the last one.
type Formatter interface {
	Term(w io.Writer, i int, value fmt.Stringer) error
	Finish(w io.Writer) error
}

func (f Format) Formatter() (Formatter, error) {
	switch f {
	case FormatSpaces:
		return spacesFormatter{}, nil
	case FormatLabeled:
		return labeledFormatter{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%s", f)
}

type spacesFormatter struct{}

func (spacesFormatter) Term(w io.Writer, _ int, value fmt.Stringer) error {
	_, err := fmt.Fprintf(w, "%s ", value)
	return err
}

func (spacesFormatter) Finish(w io.Writer) error {
	_, err := io.WriteString(w, "\n")
	return err
}

type labeledFormatter struct{}

func (labeledFormatter) Term(w io.Writer, i int, value fmt.Stringer) error {
	_, err := fmt.Fprintf(w, "fib(%d)=%s\n", i, value)
	return err
}

func (labeledFormatter) Finish(io.Writer) error {
	return nil
}
