package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zegl/seqgen/compiler"
	"github.com/zegl/seqgen/driver"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newLogger(w io.Writer, debug bool) *zap.SugaredLogger {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Sugar()
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("seqgen", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	formatName := fs.StringP("format", "f", "spaces", "output format: spaces or labeled")
	first := fs.Int("first", driver.DefaultFirst, "first term to print")
	last := fs.Int("last", driver.DefaultLast, "last term to print")
	exact := fs.Bool("exact", false, "print arbitrary precision terms instead of wrapping 32-bit ones")
	emitLLVM := fs.Bool("emit-llvm", false, "print the program as LLVM IR instead of running it")
	debug := fs.Bool("debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := newLogger(stderr, *debug)
	defer log.Sync()

	format, err := driver.ParseFormat(*formatName)
	if err != nil {
		log.Error(err)
		return 1
	}

	if *emitLLVM {
		if *first != driver.DefaultFirst || *exact {
			log.Error(errors.New("--emit-llvm only supports --last and --format"))
			return 1
		}

		compiled, err := compiler.EmitProgram(format, *last)
		if err != nil {
			log.Error(err)
			return 1
		}

		log.Debugw("emitted program", "format", format, "last", *last)
		fmt.Fprint(stdout, compiled)
		return 0
	}

	err = driver.Run(stdout, driver.Options{
		Format: format,
		First:  *first,
		Last:   *last,
		Exact:  *exact,
		Logger: log,
	})
	if err != nil {
		log.Error(err)
		return 1
	}

	return 0
}
