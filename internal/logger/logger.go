// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package logger is the leveled logging used by the example programs.
package logger

import (
	"io"
	"log"
)

// Logger is the leveled printf logger used by the codec and its tools.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger writing to out with the given prefix and no
// timestamps.
func New(out io.Writer, prefix string) Logger {
	return &stdLogger{l: log.New(out, prefix, 0)}
}

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }

type discard struct{}

// Discard drops everything.
func Discard() Logger { return discard{} }

func (discard) Infof(string, ...any)  {}
func (discard) Errorf(string, ...any) {}
