package logging

import (
	"log/slog"
	"os"
)

// Setup installs the process-wide logger: JSON records on stdout, INFO
// and above. main swaps in a Fanout that adds the database handler once
// the connection pool is up.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
