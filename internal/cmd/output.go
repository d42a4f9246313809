package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jikan/jikan-cli/internal/filter"
)

// printResult writes a JSON payload to the command's stdout, applying the
// global jq filter when one is set, otherwise pretty-printing (or compact
// with --compact).
func printResult(cmd *cobra.Command, raw json.RawMessage) error {
	data := []byte(raw)

	if flags.JQ != "" {
		filtered, err := filter.ApplyToJSON(data, flags.JQ)
		if err != nil {
			return err
		}
		data = filtered
	} else {
		var buf bytes.Buffer
		if flags.Compact {
			if err := json.Compact(&buf, data); err != nil {
				return err
			}
		} else {
			if err := json.Indent(&buf, data, "", "  "); err != nil {
				return err
			}
		}
		data = buf.Bytes()
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
