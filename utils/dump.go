package utils

import (
	"github.com/Vilsol/memdbg/dump"
	log "github.com/sirupsen/logrus"
)

// LogDump logs data one dump row per entry when debug logging is enabled.
func LogDump(entry *log.Entry, label string, data []byte) {
	if !entry.Logger.IsLevelEnabled(log.DebugLevel) {
		return
	}

	entry = entry.WithField("bytes", len(data))

	rows := dump.Default().Rows(data)
	for rows.Next() {
		entry.Debugf("%s %s", label, rows.Text())
	}
}
