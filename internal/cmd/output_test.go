package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureCommand() (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	return cmd, buf
}

func TestPrintResultPretty(t *testing.T) {
	flags = rootFlags{}
	cmd, buf := captureCommand()

	err := printResult(cmd, json.RawMessage(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestPrintResultCompact(t *testing.T) {
	flags = rootFlags{Compact: true}
	cmd, buf := captureCommand()

	err := printResult(cmd, json.RawMessage("{\n  \"a\": 1\n}"))
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n", buf.String())
}

func TestPrintResultJQ(t *testing.T) {
	flags = rootFlags{JQ: ".title"}
	cmd, buf := captureCommand()

	err := printResult(cmd, json.RawMessage(`{"title":"Cowboy Bebop"}`))
	require.NoError(t, err)
	assert.Equal(t, "\"Cowboy Bebop\"\n", buf.String())
}

func TestPrintResultJQInvalid(t *testing.T) {
	flags = rootFlags{JQ: ".[} nope"}
	cmd, _ := captureCommand()

	err := printResult(cmd, json.RawMessage(`{}`))
	assert.ErrorContains(t, err, "invalid filter expression")
}
