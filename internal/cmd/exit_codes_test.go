package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/jikan/jikan-cli/internal/api"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: exitOK},
		{name: "help", err: pflag.ErrHelp, want: exitOK},
		{name: "validation", err: &api.ValidationError{Param: "anime id", Reason: "must be a positive integer"}, want: exitUsage},
		{name: "cobra arg count", err: errors.New("accepts 1 arg(s), received 0"), want: exitUsage},
		{name: "unknown flag", err: errors.New("unknown flag: --bogus"), want: exitUsage},
		{name: "api failure", err: &api.APIError{StatusCode: 404}, want: exitGeneric},
		{name: "decode failure", err: &api.DecodeError{Err: errors.New("bad json")}, want: exitGeneric},
		{name: "generic", err: errors.New("boom"), want: exitGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
