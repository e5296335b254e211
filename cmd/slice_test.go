package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vipcxj/rangeview/internal/slice"
)

func TestCollectSliceSpec_ConfigDefaults(t *testing.T) {
	flags := newSliceCmd().Flags()
	require.NoError(t, flags.Parse([]string{"--start", "3", "-r", "[4,6)", "-r", ">4", "-p", "0", "--index"}))

	spec, err := collectSliceSpec(flags, []string{"comma"}, []string{"json"}, "sh")
	require.NoError(t, err)
	assert.Equal(t, 3, spec.Start)
	require.Len(t, spec.Ranges, 2)
	assert.Equal(t, "[4,6)", spec.Ranges[0].String())
	assert.Equal(t, ">4", spec.Ranges[1].String())
	assert.Equal(t, "0", spec.Pick.String())
	assert.True(t, spec.Index)
	assert.Equal(t, []string{"comma"}, spec.InputFormat)
	assert.Equal(t, []string{"json"}, spec.OutputFormat)
	assert.Equal(t, slice.ShellTypeSh, spec.ShellType)
}

func TestCollectSliceSpec_FlagsWin(t *testing.T) {
	flags := newSliceCmd().Flags()
	require.NoError(t, flags.Parse([]string{"-i", "space", "-o", "comma", "--shell", "cmd", "-e", "X", "--export-global"}))

	spec, err := collectSliceSpec(flags, []string{"json"}, []string{"newline"}, "sh")
	require.NoError(t, err)
	assert.Equal(t, []string{"space"}, spec.InputFormat)
	assert.Equal(t, []string{"comma"}, spec.OutputFormat)
	assert.Equal(t, slice.ShellTypeCmd, spec.ShellType)
	assert.Equal(t, "X", spec.ExportVar)
	assert.True(t, spec.ExportGlobal)
}

func TestCollectSliceSpec_Errors(t *testing.T) {
	cases := map[string][]string{
		"bad range": {"-r", "[3,1]"},
		"bad pick":  {"-p", "3_1"},
		"bad shell": {"--shell", "bash"},
	}
	for name, args := range cases {
		flags := newSliceCmd().Flags()
		require.NoError(t, flags.Parse(args), name)
		_, err := collectSliceSpec(flags, nil, []string{"newline"}, "auto")
		assert.Error(t, err, name)
	}
}
