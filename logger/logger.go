// Package logger configures logrus for the admin client.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Formatter renders entries as
// [2026-01-02 15:04:05] [a1b2c3d4] [info ] [client.go:91] request completed method=GET status=200
type Formatter struct{}

// fieldOrder lists fields printed first; the rest follow sorted.
var fieldOrder = []string{"component", "method", "path", "status", "kind", "elapsed", "error"}

// Format renders a single log entry.
func (f *Formatter) Format(entry *log.Entry) ([]byte, error) {
	buffer := entry.Buffer
	if buffer == nil {
		buffer = &bytes.Buffer{}
	}
	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	message := strings.TrimRight(entry.Message, "\r\n")

	reqID := "--------"
	if id, ok := entry.Data["request_id"].(string); ok && id != "" {
		reqID = id
		if len(reqID) > 8 {
			reqID = reqID[:8]
		}
	}
	level := entry.Level.String()
	if level == "warning" {
		level = "warn"
	}

	var fields []string
	seen := map[string]bool{"request_id": true}
	for _, k := range fieldOrder {
		if v, ok := entry.Data[k]; ok {
			fields = append(fields, fmt.Sprintf("%s=%v", k, v))
			seen[k] = true
		}
	}
	var rest []string
	for k := range entry.Data {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		fields = append(fields, fmt.Sprintf("%s=%v", k, entry.Data[k]))
	}
	fieldsStr := ""
	if len(fields) > 0 {
		fieldsStr = " " + strings.Join(fields, " ")
	}

	if entry.HasCaller() {
		fmt.Fprintf(buffer, "[%s] [%s] [%-5s] [%s:%d] %s%s\n", timestamp, reqID, level, filepath.Base(entry.Caller.File), entry.Caller.Line, message, fieldsStr)
	} else {
		fmt.Fprintf(buffer, "[%s] [%s] [%-5s] %s%s\n", timestamp, reqID, level, message, fieldsStr)
	}
	return buffer.Bytes(), nil
}

// Configure applies level and format to logger. Format is "text" or "json".
func Configure(logger *log.Logger, level, format string, out io.Writer) error {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		lvl = parsed
	}
	switch format {
	case "", "text":
		logger.SetFormatter(&Formatter{})
		logger.SetReportCaller(lvl >= log.DebugLevel)
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unsupported log format: %q", format)
	}
	logger.SetLevel(lvl)
	if out != nil {
		logger.SetOutput(out)
	}
	return nil
}

// Setup configures the standard logger writing to stderr.
func Setup(level, format string) error {
	return Configure(log.StandardLogger(), level, format, os.Stderr)
}
