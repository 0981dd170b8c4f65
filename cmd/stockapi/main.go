package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nzai/stockapi/cmd/stockapi/command"
	"github.com/nzai/stockapi/constants"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	lc := zap.NewDevelopmentConfig()
	lc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger, _ := lc.Build()
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	app := &cli.Command{
		Name:    "stockapi",
		Usage:   constants.Description,
		Version: constants.Version,
	}

	for _, command := range command.Commands {
		app.Commands = append(app.Commands, command.Command())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		zap.L().Fatal(err.Error())
	}
}
