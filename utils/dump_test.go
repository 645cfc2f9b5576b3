package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Vilsol/memdbg/dump"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newLogger(level log.Level) (*log.Logger, *bytes.Buffer) {
	var out bytes.Buffer

	logger := log.New()
	logger.SetOutput(&out)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{DisableColors: true, DisableTimestamp: true})

	return logger, &out
}

func TestLogDump(t *testing.T) {
	logger, out := newLogger(log.DebugLevel)

	data := bytes.Repeat([]byte{0x41}, 40)
	LogDump(log.NewEntry(logger), "[peer] ->", data)

	entries := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, entries, len(dump.Lines(data)))
	require.Contains(t, entries[0], "bytes=40")
}

func TestLogDumpQuiet(t *testing.T) {
	logger, out := newLogger(log.InfoLevel)

	LogDump(log.NewEntry(logger), "[peer] ->", []byte("quiet"))
	require.Equal(t, 0, out.Len())
}
