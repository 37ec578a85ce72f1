// Package server is the HTTP API of the analyzer.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/czcorpus/cnc-gokit/cors"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/cohmetrix/config"
)

const shutdownTimeout = 10 * time.Second

// NewEngine routes the actions.
func NewEngine(debug bool, corsAllowedOrigins []string, a *Actions) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(cors.CORSMiddleware(corsAllowedOrigins))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	engine.POST("/analyze", a.Analyze)
	engine.POST("/classify", a.Classify)
	engine.GET("/indices", a.Indices)

	return engine
}

// Run serves handler until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, conf config.ServerConf, handler http.Handler) error {
	srv := &http.Server{
		Handler:      handler,
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: time.Duration(conf.WriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(conf.ReadTimeoutSecs) * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Msgf("starting to listen at %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Info().Err(err).Msg("Shutdown request error")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
