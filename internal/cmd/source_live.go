//go:build cgo && gstlive

package cmd

import (
	"log/slog"

	"github.com/gstreamermm/gmmplugingen/internal/introspection"
	"github.com/gstreamermm/gmmplugingen/internal/introspection/gstlive"
)

func openLiveSource(logger *slog.Logger) (introspection.Source, error) {
	return gstlive.NewSource(logger)
}
