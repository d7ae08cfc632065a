package logger

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{name: "debug", level: "debug", want: logrus.DebugLevel},
		{name: "error", level: "error", want: logrus.ErrorLevel},
		{name: "invalid falls back to info", level: "verbose", want: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.level)
			logger.SetOutput(io.Discard)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLoggerStampsServiceName(t *testing.T) {
	logger := NewLogger("info")
	logger.SetOutput(io.Discard)
	recorder := test.NewLocal(logger)

	logger.WithField("driver_id", "SVF").Info("Driver not found")

	require.Len(t, recorder.Entries, 1)
	entry := recorder.LastEntry()
	assert.Equal(t, "race-report", entry.Data["service"])
	assert.Equal(t, "SVF", entry.Data["driver_id"])
}
