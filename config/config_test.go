package config

import (
	"os"
	"testing"

	"github.com/Vilsol/memdbg/dump"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	InitializeConfig("")

	opts := DumpOptions()
	require.Equal(t, dump.RowWidth, opts.RowWidth)
	require.Equal(t, dump.GroupWidth, opts.GroupWidth)
	require.False(t, opts.Compact)
	require.Nil(t, opts.Highlight)
	require.Equal(t, 56218, viper.GetInt("socket.port"))

	f, err := Formatter()
	require.Nil(t, err)
	require.Equal(t, dump.RowWidth, f.RowWidth())
}

func TestOverrides(t *testing.T) {
	viper.Reset()
	InitializeConfig("")

	viper.Set("dump.row_width", 16)
	viper.Set("dump.group_width", 4)
	viper.Set("dump.highlight", true)

	opts := DumpOptions()
	require.Equal(t, 16, opts.RowWidth)
	require.Equal(t, 4, opts.GroupWidth)
	require.NotNil(t, opts.Highlight)
	require.True(t, opts.Highlight(0x00))
	require.False(t, opts.Highlight('A'))

	viper.Set("dump.group_width", 5)
	_, err := Formatter()
	require.NotNil(t, err)
}

func TestEnvironment(t *testing.T) {
	require.Nil(t, os.Setenv("MEMDBG_DUMP_ROW_WIDTH", "16"))
	require.Nil(t, os.Setenv("MEMDBG_DUMP_COMPACT", "true"))
	defer os.Unsetenv("MEMDBG_DUMP_ROW_WIDTH")
	defer os.Unsetenv("MEMDBG_DUMP_COMPACT")

	viper.Reset()
	InitializeConfig("")

	opts := DumpOptions()
	require.Equal(t, 16, opts.RowWidth)
	require.Equal(t, dump.GroupWidth, opts.GroupWidth)
	require.True(t, opts.Compact)
}
