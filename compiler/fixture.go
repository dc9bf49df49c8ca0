// Package compiler builds the fib fixture program as an LLVM module, so that
// it can be compiled with clang and checked against the driver output.
package compiler

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/pkg/errors"

	"github.com/zegl/seqgen/driver"
)

var (
	i8  = types.I8
	i32 = types.I32
)

type compiler struct {
	module *ir.Module
	printf *ir.Func
	fib    *ir.Func

	stringCounter uint
}

// EmitProgram returns the textual IR of a program that prints terms 1 to
// last in the given format, the same way driver.Run does with 32-bit terms.
func EmitProgram(format driver.Format, last int) (string, error) {
	if last < 1 {
		return "", errors.Wrapf(driver.ErrInvalidRange, "[1, %d]", last)
	}

	pf, err := programFormatFor(format)
	if err != nil {
		return "", err
	}

	c := &compiler{module: ir.NewModule()}
	c.addExternal()
	c.compileFib()
	c.compileMain(pf, last)

	return c.module.String(), nil
}

// programFormat is the printf side of a driver.Format.
type programFormat struct {
	term      string
	withIndex bool
	finish    string
}

func programFormatFor(format driver.Format) (programFormat, error) {
	switch format {
	case driver.FormatSpaces:
		return programFormat{term: "%d ", finish: "\n"}, nil
	case driver.FormatLabeled:
		return programFormat{term: "fib(%d)=%d\n", withIndex: true}, nil
	}
	return programFormat{}, errors.Wrapf(driver.ErrUnknownFormat, "%s", format)
}

func (c *compiler) addExternal() {
	c.printf = c.module.NewFunc("printf", i32, ir.NewParam("", types.NewPointer(i8)))
	c.printf.Sig.Variadic = true
}

func (c *compiler) stringConstant(in string) constant.Constant {
	name := fmt.Sprintf("str.%d", c.stringCounter)
	c.stringCounter++

	def := c.module.NewGlobalDef(name, constant.NewCharArray(append([]byte(in), 0)))
	def.Immutable = true

	return constant.NewBitCast(def, types.NewPointer(i8))
}

// compileFib emits the accumulator loop. Each half of the loop updates one
// accumulator, bumps the counter and returns that accumulator once the
// counter passes n.
func (c *compiler) compileFib() {
	n := ir.NewParam("n", i32)
	c.fib = c.module.NewFunc("fib", i32, n)

	entry := c.fib.NewBlock("entry")
	loop := c.fib.NewBlock("loop")
	retA := c.fib.NewBlock("ret-a")
	updateB := c.fib.NewBlock("update-b")
	retB := c.fib.NewBlock("ret-b")

	entry.NewBr(loop)

	// The back edge incomings are added once their values exist
	a := loop.NewPhi(ir.NewIncoming(constant.NewInt(i32, 1), entry))
	b := loop.NewPhi(ir.NewIncoming(constant.NewInt(i32, 0), entry))
	counter := loop.NewPhi(ir.NewIncoming(constant.NewInt(i32, 1), entry))

	nextA := loop.NewAdd(a, b)
	counterA := loop.NewAdd(counter, constant.NewInt(i32, 1))
	loop.NewCondBr(loop.NewICmp(enum.IPredSGT, counterA, n), retA, updateB)

	retA.NewRet(nextA)

	nextB := updateB.NewAdd(b, nextA)
	counterB := updateB.NewAdd(counterA, constant.NewInt(i32, 1))
	updateB.NewCondBr(updateB.NewICmp(enum.IPredSGT, counterB, n), retB, loop)

	retB.NewRet(nextB)

	a.Incs = append(a.Incs, ir.NewIncoming(nextA, updateB))
	b.Incs = append(b.Incs, ir.NewIncoming(nextB, updateB))
	counter.Incs = append(counter.Incs, ir.NewIncoming(counterB, updateB))
}

func (c *compiler) compileMain(pf programFormat, last int) {
	mainFunc := c.module.NewFunc("main", i32)

	entry := mainFunc.NewBlock("entry")
	loop := mainFunc.NewBlock("loop")
	after := mainFunc.NewBlock("after")

	fmtStr := c.stringConstant(pf.term)
	entry.NewBr(loop)

	i := loop.NewPhi(ir.NewIncoming(constant.NewInt(i32, 1), entry))
	val := loop.NewCall(c.fib, i)

	if pf.withIndex {
		loop.NewCall(c.printf, fmtStr, i, val)
	} else {
		loop.NewCall(c.printf, fmtStr, val)
	}

	next := loop.NewAdd(i, constant.NewInt(i32, 1))
	loop.NewCondBr(loop.NewICmp(enum.IPredSGT, next, constant.NewInt(i32, int64(last))), after, loop)
	i.Incs = append(i.Incs, ir.NewIncoming(next, loop))

	if pf.finish != "" {
		after.NewCall(c.printf, c.stringConstant(pf.finish))
	}
	after.NewRet(constant.NewInt(i32, 0))
}
