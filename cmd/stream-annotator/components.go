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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/annotate"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/blocklist"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/codec"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/dict"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/matcher"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/resolver"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

// components holds what the pipeline is assembled from, so the dictionary
// is loaded at most once.
type components struct {
	conf       streamAnnotatorConfig
	dictionary local.Client
	patterns   []matcher.Pattern
}

// newPipeline validates the config and assembles the pipeline. Every
// configuration problem is reported here, before any record is read.
func newPipeline(conf streamAnnotatorConfig, startedAt time.Time) (*annotate.Pipeline, error) {
	textSource, err := annotate.ParseTextSource(conf.TextSource)
	if err != nil {
		return nil, err
	}
	onEmpty, err := annotate.ParseOnEmpty(conf.OnEmpty)
	if err != nil {
		return nil, err
	}
	if conf.AnnotatorID == "" {
		return nil, lib.NewConfigurationError("annotator_id", "", "must not be empty")
	}

	c := &components{conf: conf}
	m, err := c.matcher()
	if err != nil {
		return nil, err
	}
	r, err := c.resolver()
	if err != nil {
		return nil, err
	}

	var bl *blocklist.Blocklist
	if conf.Blocklist != "" {
		if bl, err = blocklist.Load(conf.Blocklist); err != nil {
			return nil, lib.NewConfigurationError("blocklist", conf.Blocklist, err.Error())
		}
	}

	return annotate.NewPipeline(streamitem.NewAnnotator(conf.AnnotatorID, startedAt), m, r, bl, annotate.Options{
		TextSource: textSource,
		Negate:     conf.Negate,
		OnEmpty:    onEmpty,
	}), nil
}

func (c *components) matcher() (matcher.Matcher, error) {
	switch c.conf.Matcher {
	case matcher.Regexp, "":
		if c.conf.Patterns == "" {
			return nil, lib.NewConfigurationError("patterns", "", "the regexp matcher needs a pattern file")
		}
		patterns, err := matcher.LoadPatterns(c.conf.Patterns)
		if err != nil {
			return nil, lib.NewConfigurationError("patterns", c.conf.Patterns, err.Error())
		}
		if len(patterns) == 0 {
			return nil, lib.NewConfigurationError("patterns", c.conf.Patterns, "no patterns found")
		}
		log.Info().Int("patterns", len(patterns)).Str("path", c.conf.Patterns).Msg("loaded patterns")
		c.patterns = patterns
		return matcher.NewRegexpMatcher(patterns), nil
	case matcher.Dictionary:
		store, err := c.loadDictionary()
		if err != nil {
			return nil, err
		}
		return matcher.NewDictionaryMatcher(store, c.conf.Dictionary.CompoundTokenLength), nil
	}
	return nil, lib.NewConfigurationError("matcher", string(c.conf.Matcher), "must be regexp or dictionary")
}

func (c *components) resolver() (resolver.Resolver, error) {
	switch c.conf.Resolver.Type {
	case resolver.FixedType, "":
		return resolver.NewFixed(c.conf.Resolver.TargetID), nil
	case resolver.PatternType:
		if c.patterns == nil {
			return nil, lib.NewConfigurationError("resolver.type", string(c.conf.Resolver.Type), "needs the regexp matcher")
		}
		return resolver.NewPatternTable(c.patterns, c.conf.Resolver.TargetID), nil
	case resolver.LookupType:
		return c.lookupResolver()
	}
	return nil, lib.NewConfigurationError("resolver.type", string(c.conf.Resolver.Type), "must be fixed, pattern or lookup")
}

func (c *components) lookupResolver() (resolver.Resolver, error) {
	switch c.conf.Resolver.Backend {
	case cache.Local, "":
		store, err := c.loadDictionary()
		if err != nil {
			return nil, err
		}
		return resolver.NewLookup(store), nil
	case cache.Redis:
		client := remote.NewRedisClient(c.conf.Redis)
		if !client.Ready() {
			return nil, fmt.Errorf("redis at %s:%d is not ready", c.conf.Redis.Host, c.conf.Redis.Port)
		}
		return resolver.NewRemote(client, c.conf.PipelineSize), nil
	case cache.Elasticsearch:
		client, err := remote.NewElasticsearchClient(c.conf.Elasticsearch)
		if err != nil {
			return nil, err
		}
		if !client.Ready() {
			return nil, fmt.Errorf("elasticsearch at %s:%d is not ready", c.conf.Elasticsearch.Host, c.conf.Elasticsearch.Port)
		}
		return resolver.NewRemote(client, c.conf.PipelineSize), nil
	}
	return nil, lib.NewConfigurationError("resolver.backend", string(c.conf.Resolver.Backend), "must be local, redis or elasticsearch")
}

func (c *components) loadDictionary() (local.Client, error) {
	if c.dictionary != nil {
		return c.dictionary, nil
	}
	if c.conf.Dictionary.Path == "" {
		return nil, lib.NewConfigurationError("dictionary.path", "", "a dictionary is needed by the configured matcher or resolver")
	}
	if _, err := dict.NewReader(c.conf.Dictionary.Format); err != nil {
		return nil, lib.NewConfigurationError("dictionary.format", string(c.conf.Dictionary.Format), err.Error())
	}

	store := local.New()
	entries, err := dict.LoadFile(c.conf.Dictionary.Config, store)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary %s: %w", c.conf.Dictionary.Path, err)
	}
	log.Info().Int("entries", entries).Int("keys", store.Len()).Str("path", c.conf.Dictionary.Path).Msg("loaded dictionary")

	c.dictionary = store
	return store, nil
}

func newCodecs(conf streamAnnotatorConfig) (codec.Reader, codec.Writer, error) {
	return openCodecs(conf, os.Stdin, os.Stdout)
}

func openCodecs(conf streamAnnotatorConfig, in io.Reader, out io.Writer) (codec.Reader, codec.Writer, error) {
	inputFormat, err := codec.ParseFormat(conf.InputFormat)
	if err != nil {
		return nil, nil, lib.NewConfigurationError("input_format", conf.InputFormat, err.Error())
	}
	outputFormat, err := codec.ParseFormat(conf.OutputFormat)
	if err != nil {
		return nil, nil, lib.NewConfigurationError("output_format", conf.OutputFormat, err.Error())
	}
	compression, err := codec.ParseCompression(conf.Compression)
	if err != nil {
		return nil, nil, lib.NewConfigurationError("compression", conf.Compression, err.Error())
	}

	reader, err := codec.NewReader(in, inputFormat, compression)
	if err != nil {
		return nil, nil, err
	}
	writer, err := codec.NewWriter(out, outputFormat, compression)
	if err != nil {
		return nil, nil, err
	}
	return reader, writer, nil
}
