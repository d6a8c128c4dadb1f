package utils

import (
	"bufio"
	"bytes"
	"log/slog"
	"strings"
)

// SentrySlogWriter adapts Sentry's debug log output to a structured logger.
type SentrySlogWriter struct {
	logger *slog.Logger
}

// NewSentrySlogWriter creates a new adapter to redirect Sentry logs to slog.
func NewSentrySlogWriter(logger *slog.Logger) *SentrySlogWriter {
	return &SentrySlogWriter{logger: logger}
}

// Write implements io.Writer, stripping Sentry's own prefix and
// timestamp before handing each line to slog.
func (s *SentrySlogWriter) Write(p []byte) (n int, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(p))
	for scanner.Scan() {
		line := scanner.Text()
		if rest, found := strings.CutPrefix(line, "[Sentry] "); found {
			if _, message, ok := strings.Cut(rest, " "); ok {
				s.logger.Debug(message)
				continue
			}
		}
		s.logger.Debug(line)
	}
	return len(p), nil
}
