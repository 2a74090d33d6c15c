/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for logger configuration, output formats, file output and the custom formatter.
*/

package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultLoggerConfig().Validate())

	bad := &LoggerConfig{Level: LogLevelInfo, Format: "xml"}
	assert.Error(t, bad.Validate())

	bad = &LoggerConfig{Level: "verbose", Format: LogFormatText}
	assert.Error(t, bad.Validate())

	_, err := NewLogger(bad)
	assert.Error(t, err)
}

func TestLogFormats(t *testing.T) {
	formats := []LogFormat{LogFormatText, LogFormatJSON, LogFormatCustom}

	for _, format := range formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(&LoggerConfig{Level: LogLevelInfo, Format: format}, &buf)
			require.NoError(t, err)
			defer logger.Close()

			logger.LogResult("run-1", `^\D+$`, "candidate", 3*time.Millisecond)
			assert.Contains(t, buf.String(), "Pattern synthesized")
			assert.Contains(t, buf.String(), "run-1")
		})
	}
}

func TestLogResultUniversalWarns(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&LoggerConfig{Level: LogLevelWarning, Format: LogFormatCustom}, &buf)
	require.NoError(t, err)

	logger.LogResult("run-2", `^\w+$`, "candidate", time.Millisecond)
	assert.Empty(t, buf.String())

	logger.LogResult("run-2", `^(?s:.*)$`, "universal", time.Millisecond)
	assert.Contains(t, buf.String(), "WARNING No discriminating pattern found")
}

func TestLoggerFileOutput(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, err := newLogger(&LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatJSON,
		OutputDir: dir,
	}, &console)
	require.NoError(t, err)

	logger.GetLogger().Info("hello file")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())

	require.NotEmpty(t, logger.FilePath())
	data, err := os.ReadFile(logger.FilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
	assert.Contains(t, console.String(), "hello file")
}

func TestCustomFormatterSortsFields(t *testing.T) {
	f := &CustomFormatter{}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "done",
		Data: logrus.Fields{
			"zeta":    1,
			"alpha":   "x y",
			"pattern": `^a\.b$`,
			"took":    2 * time.Second,
		},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	line := string(out)

	assert.True(t, strings.HasPrefix(line, "INFO done "))
	assert.Contains(t, line, `alpha="x y" pattern="^a\\.b$" took=2s zeta=1`)
	assert.True(t, strings.HasSuffix(line, "\n"))
}
