// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger configures op/go-logging loggers for the command
// line tools.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{color}%{time:15:04:05.000} %{level:.4s} %{module}:%{color:reset} %{message}"

// LogLevelFlag selects the logging level of a command.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value:   "info",
}

// NewLogger returns a logger for module writing to stderr. Unknown
// levels fall back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	return newLogger(os.Stderr, level, module)
}

func newLogger(w io.Writer, level string, module string) *logging.Logger {
	log := logging.MustGetLogger(module)
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultLogFormat))
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	log.SetBackend(leveled)
	return log
}
