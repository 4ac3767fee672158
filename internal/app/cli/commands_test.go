package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Options
		error    bool
	}{
		{name: "No arguments opens the gallery", args: []string{}, expected: &Options{Type: CommandView}},
		{name: "Nil arguments opens the gallery", args: nil, expected: &Options{Type: CommandView}},
		{name: "View command", args: []string{"view"}, expected: &Options{Type: CommandView}},
		{name: "List command", args: []string{"list"}, expected: &Options{Type: CommandList}},
		{name: "List alias", args: []string{"ls"}, expected: &Options{Type: CommandList}},
		{name: "List flag", args: []string{"--list"}, expected: &Options{Type: CommandList}},
		{name: "Init command", args: []string{"init"}, expected: &Options{Type: CommandInit}},
		{name: "Init with force", args: []string{"init", "--force"}, expected: &Options{Type: CommandInit, Force: true}},
		{name: "Init dry run", args: []string{"i", "--dry-run"}, expected: &Options{Type: CommandInit, DryRun: true}},
		{name: "Version command", args: []string{"version"}, expected: &Options{Type: CommandVersion}},
		{name: "Version short flag", args: []string{"-v"}, expected: &Options{Type: CommandVersion}},
		{name: "Version long flag", args: []string{"--version"}, expected: &Options{Type: CommandVersion}},
		{name: "Help command", args: []string{"help"}, expected: &Options{Type: CommandHelp}},
		{name: "Help flag", args: []string{"--help"}, expected: &Options{Type: CommandHelp}},
		{name: "Unknown command", args: []string{"paint"}, error: true},
		{name: "Unknown flag", args: []string{"--frame"}, error: true},
		{name: "Extra argument for init", args: []string{"init", "extra"}, error: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)

			if tt.error {
				assert.Error(t, err)
				assert.Nil(t, result)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
