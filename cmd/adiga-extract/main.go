package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"adiga-extract/cmd/adiga-extract/commands"
	"adiga-extract/lib/serviceutil"
	"adiga-extract/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.InitSlog(false)

	tel, err := telemetry.SetupFromEnv(ctx, "adiga-extract")
	if err == nil {
		defer tel.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	} else if !errors.Is(err, os.ErrNotExist) {
		slog.Warn("telemetry setup failed", "err", err)
	}

	commands.ExecuteContext(ctx)
}
