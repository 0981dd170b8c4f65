package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/nzai/stockapi/fetcher"
	"github.com/urfave/cli/v3"
)

func init() {
	RegisterCommand(&Fetch{output: os.Stdout})
}

// Fetch print ticker records as json
type Fetch struct {
	configPath string
	output     io.Writer
}

func (f *Fetch) Command() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Aliases:   []string{"f"},
		Usage:     "fetch full name and close prices, comma separated tickers print a batch",
		ArgsUsage: "<ticker[,ticker...]>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "toml config file",
				Destination: &f.configPath,
			},
		},
		Action: f.fetch,
	}
}

func (f *Fetch) fetch(ctx context.Context, c *cli.Command) error {
	tickers := strings.Join(c.Args().Slice(), ",")
	if tickers == "" {
		return errors.New("ticker required")
	}

	_, quoter, closer, err := setup(f.configPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	return f.run(ctx, quoter, tickers)
}

func (f *Fetch) run(ctx context.Context, quoter fetcher.Quoter, tickers string) error {
	var result any
	if strings.Contains(tickers, ",") {
		result = fetcher.NewAggregator(quoter).FetchMany(ctx, tickers)
	} else {
		record, err := quoter.Fetch(ctx, tickers)
		if err != nil {
			return err
		}
		result = record
	}

	buffer, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(f.output, string(buffer))
	return err
}
