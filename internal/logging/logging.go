// Package logging builds the application's logr.Logger.
package logging

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logger writing to w. Info lines above verbosity are dropped;
// errors are always written.
func New(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.NewWithOptions(log.New(w, "", log.LstdFlags), stdr.Options{LogCaller: stdr.Error}).
		WithName("mazegen")
}
