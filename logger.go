package orderbook

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger allows setting a custom logger for the package. The pruner
// reports through it; everything else is silent.
func SetLogger(l *slog.Logger) {
	logger = l
}
