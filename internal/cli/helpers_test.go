package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// TestCommandExecution helps test cobra command execution
type TestCommandExecution struct {
	Command      *cobra.Command
	Args         []string
	ExpectError  bool
	ExpectOutput []string
	Validate     func(t *testing.T, stdout, stderr string, err error)
}

// ExecuteCommandTest runs a command with captured output and plain colors
func ExecuteCommandTest(t *testing.T, test TestCommandExecution) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	restore := redirectOutput(t, &stdout, &stderr)
	defer restore()

	test.Command.SetOut(&stdout)
	test.Command.SetErr(&stderr)
	test.Command.SetArgs(test.Args)

	err := test.Command.Execute()

	if test.ExpectError {
		assert.Error(t, err)
	} else {
		assert.NoError(t, err)
	}

	output := stdout.String() + stderr.String()
	for _, expected := range test.ExpectOutput {
		assert.Contains(t, output, expected)
	}

	if test.Validate != nil {
		test.Validate(t, stdout.String(), stderr.String(), err)
	}
}

// redirectOutput points the color helpers at the given buffers and
// disables color for deterministic output
func redirectOutput(t *testing.T, stdout, stderr *bytes.Buffer) func() {
	t.Helper()

	oldColor, oldOut, oldDebug := color.NoColor, colorOutput, debugOutput
	color.NoColor = true
	colorOutput = stdout
	debugOutput = stderr

	return func() {
		color.NoColor = oldColor
		colorOutput = oldOut
		debugOutput = oldDebug
	}
}
