package main

import (
	"context"

	"covidcrawl/cmd/covidcrawl/commands"
	"covidcrawl/lib/serviceutil"
	"covidcrawl/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "covidcrawl")
	if err == nil {
		defer tel.Shutdown(context.Background())
	}

	commands.ExecuteContext(ctx)
}
