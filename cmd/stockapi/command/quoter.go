package command

import (
	"io"

	"github.com/nzai/stockapi/config"
	"github.com/nzai/stockapi/fetcher"
	"github.com/nzai/stockapi/sources"
	"github.com/nzai/stockapi/stores"
	"github.com/nzai/stockapi/utils"
	"go.uber.org/zap"
)

// setup load config, replace global logger and build quoter.
// The returned closer releases the cache store and restores the logger.
func setup(configPath string) (*config.Config, fetcher.Quoter, io.Closer, error) {
	c, err := config.Parse(configPath)
	if err != nil {
		zap.L().Error("parse config failed", zap.Error(err), zap.String("path", configPath))
		return nil, nil, nil, err
	}

	logger, err := utils.NewLogger(c.Log)
	if err != nil {
		zap.L().Error("create logger failed", zap.Error(err))
		return nil, nil, nil, err
	}
	undo := zap.ReplaceGlobals(logger)

	source := sources.NewYahooFinance(
		sources.WithBaseURL(c.Yahoo.BaseURL),
		sources.WithUserAgent(c.Yahoo.UserAgent),
		sources.WithTimeout(c.Yahoo.Timeout()),
	)

	closer := closerFunc(func() error {
		_ = logger.Sync()
		undo()
		return nil
	})

	var quoter fetcher.Quoter = fetcher.NewFetcher(source)
	if !c.Cache.Enabled() {
		return c, quoter, closer, nil
	}

	store, err := stores.Parse(c.Cache.Store)
	if err != nil {
		closer.Close()
		return nil, nil, nil, err
	}

	zap.L().Info("record cache enabled", zap.String("store", c.Cache.Store), zap.Duration("ttl", c.Cache.TTL()))

	return c, fetcher.NewCached(quoter, store, c.Cache.TTL()), closerFunc(func() error {
		err := store.Close()
		closer.Close()
		return err
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}
