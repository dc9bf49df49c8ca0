package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestNoArguments(t *testing.T) {
	code, stdout, stderr := runCapture(t)

	require.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.True(t, strings.HasPrefix(stdout, "1 1 2 3 5 8 13 21 34 55 "))
	assert.True(t, strings.HasSuffix(stdout, "-298632863 \n"))
	assert.Len(t, strings.Fields(stdout), 50)
}

func TestLabeled(t *testing.T) {
	code, stdout, _ := runCapture(t, "--format", "labeled", "--last", "3")

	require.Equal(t, 0, code)
	assert.Equal(t, "fib(1)=1\nfib(2)=1\nfib(3)=2\n", stdout)
}

func TestExact(t *testing.T) {
	code, stdout, _ := runCapture(t, "-f", "b", "--first", "50", "--exact")

	require.Equal(t, 0, code)
	assert.Equal(t, "fib(50)=12586269025\n", stdout)
}

func TestDebugLogsToStderr(t *testing.T) {
	code, stdout, stderr := runCapture(t, "--debug", "--last", "2")

	require.Equal(t, 0, code)
	assert.Equal(t, "1 1 \n", stdout)
	assert.Contains(t, stderr, "printing terms")
}

func TestEmitLLVM(t *testing.T) {
	code, stdout, _ := runCapture(t, "--emit-llvm")

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "define i32 @fib(i32 %n)")
	assert.Contains(t, stdout, "define i32 @main()")
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		args   []string
		code   int
		stderr string
	}{
		{[]string{"--format", "csv"}, 1, "unknown output format"},
		{[]string{"--first", "0"}, 1, "invalid term range"},
		{[]string{"--last", "0", "--emit-llvm"}, 1, "invalid term range"},
		{[]string{"--emit-llvm", "--exact"}, 1, "--emit-llvm only supports"},
		{[]string{"--no-such-flag"}, 2, "unknown flag"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			code, stdout, stderr := runCapture(t, tc.args...)

			assert.Equal(t, tc.code, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tc.stderr)
		})
	}
}
