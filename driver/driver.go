// Package driver prints a range of sequence terms in one of the fixture's
// output formats.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/zegl/seqgen/sequence"
)

const (
	DefaultFirst = 1
	DefaultLast  = 50
)

var ErrInvalidRange = errors.New("invalid term range")

type Options struct {
	Format Format
	First  int
	Last   int

	// Exact switches from wrapping 32-bit terms to arbitrary precision.
	Exact bool

	Logger *zap.SugaredLogger
}

// DefaultOptions reproduce the fixture: terms 1 to 50, space separated.
func DefaultOptions() Options {
	return Options{
		Format: FormatSpaces,
		First:  DefaultFirst,
		Last:   DefaultLast,
	}
}

type int32Term int32

func (t int32Term) String() string {
	return strconv.FormatInt(int64(t), 10)
}

func Run(w io.Writer, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if opts.First < 1 || opts.Last < opts.First {
		return errors.Wrapf(ErrInvalidRange, "[%d, %d]", opts.First, opts.Last)
	}

	formatter, err := opts.Format.Formatter()
	if err != nil {
		return err
	}

	log.Debugw("printing terms",
		"format", opts.Format,
		"first", opts.First,
		"last", opts.Last,
		"exact", opts.Exact,
	)

	bw := bufio.NewWriter(w)

	for i := opts.First; i <= opts.Last; i++ {
		var value fmt.Stringer
		if opts.Exact {
			value = sequence.ComputeBig(i)
		} else {
			value = int32Term(sequence.Compute(i))
		}

		if err := formatter.Term(bw, i, value); err != nil {
			return errors.Wrapf(err, "writing term %d", i)
		}
	}

	if err := formatter.Finish(bw); err != nil {
		return errors.Wrap(err, "finishing output")
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing output")
	}

	return nil
}
