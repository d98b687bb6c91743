/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package status serves the progress of a running annotator over HTTP.
package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/annotate"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

type Config struct {
	Port int
}

// Source is implemented by annotate.Pipeline.
type Source interface {
	Stats() annotate.Counters
	Annotator() *streamitem.Annotator
}

type statsResponse struct {
	Annotator *streamitem.Annotator `json:"annotator"`
	StartedAt string                `json:"started_at"`
	annotate.Counters
}

type server struct {
	source    Source
	startedAt time.Time
}

// NewEngine returns a gin engine serving /healthz and /stats. Access logs
// are written as json to stderr.
func NewEngine(source Source) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: lib.JsonLogFormatter,
		Output:    os.Stderr,
	}))
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	s := server{source: source, startedAt: time.Now().UTC()}
	s.RegisterRoutes(r)
	return r
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", s.Healthz)
	r.GET("/stats", s.Stats)
}

func (s server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s server) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, statsResponse{
		Annotator: s.source.Annotator(),
		StartedAt: s.startedAt.Format(time.RFC3339),
		Counters:  s.source.Stats(),
	})
}

// Start serves the engine in the background and returns a function that shuts
// it down. Nothing is served when the port is 0.
func Start(conf Config, source Source) func(ctx context.Context) error {
	if conf.Port == 0 {
		return func(context.Context) error { return nil }
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.Port),
		Handler: NewEngine(source),
	}
	go func() {
		log.Info().Int("port", conf.Port).Msg("serving status")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("status server stopped")
		}
	}()
	return srv.Shutdown
}
