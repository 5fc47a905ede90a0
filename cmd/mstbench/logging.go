package main

import (
	"io"

	"github.com/op/go-logging"
)

const logFormat = `%{time:15:04:05.000} %{level:.4s} %{message}`

// newLogger installs a leveled go-logging backend writing to w and returns
// the command's logger.
func newLogger(w io.Writer, level string) (*logging.Logger, error) {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return nil, err
	}
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(w, "", 0),
		logging.MustStringFormatter(logFormat),
	)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)

	return logging.MustGetLogger("mstbench"), nil
}
