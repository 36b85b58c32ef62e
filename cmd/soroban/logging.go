package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// newLogger fans records out to a text handler on w and, when jsonPath is
// set, to a JSON handler on that file. The returned func closes the file.
func newLogger(w io.Writer, level, jsonPath string) (*slog.Logger, func() error, error) {
	var lv slog.LevelVar
	if err := lv.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, nil, fmt.Errorf("--log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: &lv}

	handlers := []slog.Handler{slog.NewTextHandler(w, opts)}
	closeFn := func() error { return nil }
	if jsonPath != "" {
		f, err := os.OpenFile(jsonPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closeFn = f.Close
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
