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

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/annotate"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/codec"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/dict"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/matcher"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/resolver"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/status"
)

// config structure
type streamAnnotatorConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	TextSource     string `mapstructure:"text_source"`
	Negate         bool
	AnnotatorID    string `mapstructure:"annotator_id"`
	OnEmpty        string `mapstructure:"on_empty"`
	Matcher        matcher.Type
	Patterns       string
	Blocklist      string
	Dictionary     struct {
		dict.Config         `mapstructure:",squash"`
		CompoundTokenLength int `mapstructure:"compound_token_length"`
	}
	Resolver struct {
		Type     resolver.Type
		TargetID string `mapstructure:"target_id"`
		Backend  cache.Type
	}
	PipelineSize  int `mapstructure:"pipeline_size"`
	Redis         remote.RedisConfig
	Elasticsearch remote.ElasticsearchConfig
	InputFormat   string `mapstructure:"input_format"`
	OutputFormat  string `mapstructure:"output_format"`
	Compression   string
	Status        status.Config
}

var config streamAnnotatorConfig

// loadConfig registers the flags and reads the config, exiting on --help.
func loadConfig() {
	help := pflag.BoolP("help", "h", false, "Print usage and exit.")
	pflag.StringP("text_source", "t", "clean_visible", "Body field to scan: raw, clean_html or clean_visible.")
	pflag.BoolP("negate", "n", false, "Write the records that did not match instead of those that did.")
	pflag.StringP("patterns", "p", "", "YAML file of regular expressions to match.")
	pflag.String("matcher", string(matcher.Regexp), "Matcher to use: regexp or dictionary.")
	pflag.String("on_empty", string(annotate.Abort), "What to do with a record without content: abort or skip.")
	pflag.String("input_format", string(codec.Protobuf), "Input record format: protobuf or jsonl.")
	pflag.String("output_format", string(codec.Protobuf), "Output record format: protobuf or jsonl.")
	pflag.String("compression", string(codec.NoCompression), "Compression of both streams: none, gzip or zstd.")
	pflag.String("annotator_id", "stream-annotator", "Id under which labels and ratings are stored.")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] < input > output\n", os.Args[0])
		pflag.PrintDefaults()
	}

	// initialise config with defaults.
	err := lib.InitializeConfig("./config/stream-annotator.yml", map[string]interface{}{
		"log_level":     "info",
		"blocklist":     "",
		"pipeline_size": 1000,
		"dictionary": map[string]interface{}{
			"name":                  "dictionary",
			"path":                  "",
			"format":                dict.LeadmineDictionaryFormat,
			"compound_token_length": 5,
		},
		"resolver": map[string]interface{}{
			"type":      resolver.FixedType,
			"target_id": resolver.DefaultTargetID,
			"backend":   cache.Local,
		},
		"redis": map[string]interface{}{
			"host": "localhost",
			"port": 6379,
		},
		"elasticsearch": map[string]interface{}{
			"host":  "localhost",
			"port":  9200,
			"index": "lookups",
		},
		"status": map[string]interface{}{
			"port": 0,
		},
	}, &config)

	if *help {
		pflag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Msg("could not load config")
		os.Exit(-1)
	}
}

func main() {
	loadConfig()

	pipeline, err := newPipeline(config, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(-1)
	}

	reader, writer, err := newCodecs(config)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(-1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stopSignals := lib.HandleInterrupt(cancel)
	shutdownStatus := status.Start(config.Status, pipeline)

	err = pipeline.Run(ctx, reader, writer)

	stopSignals()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if shutdownErr := shutdownStatus(shutdownCtx); shutdownErr != nil {
		log.Warn().Err(shutdownErr).Msg("could not stop status server")
	}

	if err != nil {
		log.Error().Err(err).Msg("annotation failed")
		cancelShutdown()
		cancel()
		os.Exit(-1)
	}
}
