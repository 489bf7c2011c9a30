// Package choreolog is the small logging façade the rest of this module
// calls into, rather than reaching for zap directly — matching the
// teacher's convention of a package-level logging wrapper around zap.
package choreolog

import "go.uber.org/zap"

// Logger is the subset of *zap.SugaredLogger this module uses.
type Logger interface {
	Debugw(msg string, kv ...interface{})
	Infow(msg string, kv ...interface{})
	Warnw(msg string, kv ...interface{})
}

// New returns a production Logger backed by zap.
func New() Logger {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	return l.Sugar()
}

// NewTest returns a Logger suitable for use in package tests: it writes
// human-readable output at debug level instead of production JSON.
func NewTest() Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		l = zap.NewNop()
	}
	return l.Sugar()
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return zap.NewNop().Sugar()
}
