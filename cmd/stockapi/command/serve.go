package command

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/nzai/stockapi/api"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func init() {
	RegisterCommand(&Serve{})
}

// Serve run http api server
type Serve struct {
	configPath string
}

func (s *Serve) Command() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "run http api server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "toml config file, defaults and environment are used when empty",
				Destination: &s.configPath,
			},
		},
		Action: s.serve,
	}
}

func (s *Serve) serve(ctx context.Context, c *cli.Command) error {
	conf, quoter, closer, err := setup(s.configPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	gin.SetMode(gin.ReleaseMode)

	zap.L().Info("stockapi starting", zap.String("address", conf.Server.Address()), zap.Bool("pprof", conf.Server.Pprof))

	err = api.NewServer(conf.Server, quoter).Run(ctx)
	if err != nil {
		zap.L().Error("server stopped", zap.Error(err))
		return err
	}

	zap.L().Info("stockapi stopped")

	return nil
}
