package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"invtrack/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestNew_WritesToStderr(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.Log{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	log.WithField("code", "SKU1").Info("registered")

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), `"code":"SKU1"`)
	assert.Contains(t, buf.String(), `"msg":"registered"`)
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(config.Log{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invtrack.log")
	log, err := New(config.Log{Level: "info", Format: "text", File: path}, nil)
	require.NoError(t, err)

	lj, ok := log.Out.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, path, lj.Filename)
	_ = lj.Close()
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.Log{Level: "loud"}, nil)
	assert.Error(t, err)
}
