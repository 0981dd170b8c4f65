package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/nzai/stockapi/config"
	"github.com/nzai/stockapi/constants"
	"github.com/nzai/stockapi/fetcher"
	"go.uber.org/zap"
)

// Server api server
type Server struct {
	config     config.Server
	engine     *gin.Engine
	quoter     fetcher.Quoter
	aggregator *fetcher.Aggregator
}

// NewServer create api server, gin mode is left to the caller
func NewServer(c config.Server, quoter fetcher.Quoter) *Server {
	server := &Server{
		config:     c,
		engine:     gin.New(),
		quoter:     quoter,
		aggregator: fetcher.NewAggregator(quoter),
	}

	zap.L().Debug("init gin success")

	server.engine.Use(server.requestID(), server.logger(), server.recovery(), cors.New(corsConfig()))

	if c.Pprof {
		pprof.Register(server.engine, "/v1/pprof")
		zap.L().Info("pprof enabled", zap.String("prefix", "/v1/pprof"))
	}

	server.registeRoute()

	zap.L().Debug("register route success")

	return server
}

// corsConfig allow any origin, method and header with credentials
func corsConfig() cors.Config {
	return cors.Config{
		AllowOriginFunc: func(string) bool { return true },
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}
}

// Run serve until ctx done, then shutdown gracefully
func (s Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.config.Address(),
		Handler:      s.engine,
		ReadTimeout:  s.config.ReadTimeout(),
		WriteTimeout: s.config.WriteTimeout(),
	}

	errs := make(chan error, 1)
	go func() {
		zap.L().Info("listen", zap.String("address", httpServer.Addr))
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down", zap.Duration("timeout", constants.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}

func (s Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}
