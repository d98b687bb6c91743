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
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/dict"
)

// config structure
type dictionaryImporterConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Dictionary     dict.Config
	Backend        cache.Type `mapstructure:"dictionary_backend"`
	PipelineSize   int        `mapstructure:"pipeline_size"`
	Redis          remote.RedisConfig
	Elasticsearch  remote.ElasticsearchConfig
}

var config dictionaryImporterConfig

func main() {
	// initialise config with defaults.
	err := lib.InitializeConfig("./config/dictionary-importer.yml", map[string]interface{}{
		"log_level":          "info",
		"dictionary_backend": cache.Redis,
		"pipeline_size":      10000,
		"dictionary": map[string]interface{}{
			"name":   "people",
			"path":   "./dictionaries/people.tsv",
			"format": dict.LeadmineDictionaryFormat,
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
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	var client remote.Client
	switch config.Backend {
	case cache.Redis:
		client = remote.NewRedisClient(config.Redis)
	case cache.Elasticsearch:
		client, err = remote.NewElasticsearchClient(config.Elasticsearch)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
	default:
		log.Fatal().Str("dictionary_backend", string(config.Backend)).Msg("invalid backend database type")
	}

	store := local.New()
	entries, err := dict.LoadFile(config.Dictionary, store)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	log.Info().Int("entries", entries).Int("keys", store.Len()).Msg("read dictionary")

	for !client.Ready() {
		log.Info().Msg("database is not ready, waiting...")
		time.Sleep(10 * time.Second)
	}

	keys, err := upload(store, client, config.PipelineSize)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	log.Info().Int("keys", keys).Str("backend", string(config.Backend)).Msg("dictionary imported")
}

// upload writes every lookup in store to the backend in pipelines of
// pipelineSize keys.
func upload(store local.Client, client remote.Client, pipelineSize int) (int, error) {
	keys := 0
	pipe := client.NewSetPipeline(pipelineSize)
	err := store.Range(func(key string, lookup *cache.Lookup) error {
		b, err := json.Marshal(lookup)
		if err != nil {
			return err
		}
		pipe.Set(key, b)
		keys++

		if pipe.Size() >= pipelineSize {
			log.Info().Int("keys", keys).Msg("upserting dictionary...")
			if err := pipe.ExecSet(); err != nil {
				return err
			}
			pipe = client.NewSetPipeline(pipelineSize)
		}
		return nil
	})
	if err != nil {
		return keys, err
	}
	if pipe.Size() > 0 {
		return keys, pipe.ExecSet()
	}
	return keys, nil
}
