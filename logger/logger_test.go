package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := log.New()
	require.NoError(t, Configure(logger, "info", "text", buffer))

	logger.WithFields(log.Fields{
		"request_id": "0f8c2e9a-8d7e-4c3b-9f51-2a6d1b3c4e5f",
		"status":     401,
		"method":     "GET",
		"attempt":    2,
	}).Warn("request rejected\n")

	line := buffer.String()
	assert.Contains(t, line, "[0f8c2e9a] [warn ] request rejected method=GET status=401 attempt=2\n")
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `, line)
}

func TestFormatter_NoRequestID(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := log.New()
	require.NoError(t, Configure(logger, "info", "", buffer))
	logger.Info("ready")
	assert.Contains(t, buffer.String(), "[--------] [info ] ready\n")
}

func TestConfigure(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := log.New()
	require.NoError(t, Configure(logger, "debug", "json", buffer))
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger.WithField("component", "client").Debug("hello")
	record := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "client", record["component"])

	assert.Error(t, Configure(log.New(), "loud", "text", nil))
	assert.Error(t, Configure(log.New(), "info", "xml", nil))
}
