//go:build !cgo || !gstlive

package cmd

import (
	"errors"
	"log/slog"

	"github.com/gstreamermm/gmmplugingen/internal/introspection"
)

var errNoLiveSource = errors.New("built without the live GStreamer source, rebuild with -tags gstlive")

func openLiveSource(*slog.Logger) (introspection.Source, error) {
	return nil, errNoLiveSource
}
