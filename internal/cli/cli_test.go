package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaultsToHelp(t *testing.T) {
	t.Parallel()

	parsed, err := Parse(nil)
	require.NoError(t, err)
	require.True(t, parsed.ShowHelp)
	require.Equal(t, CommandHelp, parsed.Command)
}

func TestParseCommandWithConfig(t *testing.T) {
	t.Parallel()

	parsed, err := Parse([]string{"--config", "/tmp/yui.conf", "listen"})
	require.NoError(t, err)
	require.Equal(t, CommandListen, parsed.Command)
	require.Equal(t, "/tmp/yui.conf", parsed.ConfigPath)
	require.False(t, parsed.ShowHelp)
}

func TestParseStripCollectsRemainingText(t *testing.T) {
	t.Parallel()

	parsed, err := Parse([]string{"strip", "YUI:", "dime", "la", "hora"})
	require.NoError(t, err)
	require.Equal(t, CommandStrip, parsed.Command)
	require.Equal(t, "YUI: dime la hora", parsed.Text)
}

func TestParseArgMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantErr  string
		wantCmd  Command
		wantHelp bool
	}{
		{
			name:     "help short flag",
			args:     []string{"-h"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantCmd: CommandVersion,
		},
		{
			name:    "doctor",
			args:    []string{"doctor"},
			wantCmd: CommandDoctor,
		},
		{
			name:    "devices",
			args:    []string{"devices"},
			wantCmd: CommandDevices,
		},
		{
			name:    "trailing args after devices",
			args:    []string{"devices", "extra"},
			wantErr: "unexpected arguments after command",
		},
		{
			name:    "strip without text",
			args:    []string{"strip"},
			wantErr: "strip requires text",
		},
		{
			name:    "missing config path",
			args:    []string{"--config"},
			wantErr: "requires a path",
		},
		{
			name:    "unknown command",
			args:    []string{"bogus"},
			wantErr: "unknown command",
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: "unknown flag",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parsed, err := Parse(tc.args)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantCmd, parsed.Command)
			require.Equal(t, tc.wantHelp, parsed.ShowHelp)
		})
	}
}

func TestHelpTextNamesAllCommands(t *testing.T) {
	t.Parallel()

	help := HelpText("yui")
	for _, want := range []string{"listen", "strip", "devices", "doctor", "version", "help", "--config"} {
		require.Contains(t, help, want)
	}
}
