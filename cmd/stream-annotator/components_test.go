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
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/annotate"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/codec"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/dict"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/matcher"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/resolver"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func baseConfig(t *testing.T) streamAnnotatorConfig {
	var conf streamAnnotatorConfig
	conf.TextSource = "clean_visible"
	conf.AnnotatorID = "example-matcher-v0.1"
	conf.Matcher = matcher.Regexp
	conf.Patterns = writeFile(t, "patterns.yml", "person:\n  - John Smith\n")
	conf.Resolver.Type = resolver.FixedType
	conf.Resolver.TargetID = "1"
	return conf
}

func annotateStream(t *testing.T, conf streamAnnotatorConfig, items ...*streamitem.StreamItem) ([]*streamitem.StreamItem, error) {
	t.Helper()
	pipeline, err := newPipeline(conf, time.Now())
	require.NoError(t, err)

	var in, out bytes.Buffer
	w, err := codec.NewWriter(&in, codec.Protobuf, codec.NoCompression)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, w.Write(item))
	}
	require.NoError(t, w.Flush())

	reader, writer, err := openCodecs(conf, &in, &out)
	require.NoError(t, err)
	runErr := pipeline.Run(context.Background(), reader, writer)

	result, err := codec.NewReader(&out, codec.Protobuf, codec.NoCompression)
	require.NoError(t, err)
	var written []*streamitem.StreamItem
	for {
		item, err := result.Read()
		if err != nil {
			break
		}
		written = append(written, item)
	}
	return written, runErr
}

func item(docID, text string) *streamitem.StreamItem {
	return &streamitem.StreamItem{DocID: docID, Body: &streamitem.ContentItem{CleanVisible: text}}
}

func TestFixedResolver(t *testing.T) {
	written, err := annotateStream(t, baseConfig(t), item("a", "Alice met Bob"), item("b", "Contact John Smith today"))

	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, "b", written[0].DocID)
	assert.Equal(t, "1", written[0].Ratings["example-matcher-v0.1"][0].Target.TargetID)
}

func TestPatternResolver(t *testing.T) {
	conf := baseConfig(t)
	conf.Resolver.Type = resolver.PatternType

	written, err := annotateStream(t, conf, item("b", "Contact John Smith today"))

	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, "person", written[0].Ratings["example-matcher-v0.1"][0].Target.TargetID)
}

func TestDictionaryMatcherWithLookupResolver(t *testing.T) {
	conf := baseConfig(t)
	conf.Matcher = matcher.Dictionary
	conf.Dictionary.Path = writeFile(t, "people.tsv", "John Smith\tJ. Smith\tP001\n")
	conf.Dictionary.Format = dict.LeadmineDictionaryFormat
	conf.Dictionary.CompoundTokenLength = 3
	conf.Resolver.Type = resolver.LookupType
	conf.Resolver.Backend = cache.Local

	written, err := annotateStream(t, conf, item("b", "Ask J. Smith or John Smith"))

	require.NoError(t, err)
	require.Len(t, written, 1)
	ratings := written[0].Ratings["example-matcher-v0.1"]
	require.Len(t, ratings, 1)
	assert.Equal(t, "P001", ratings[0].Target.TargetID)
	assert.Equal(t, []string{"J. Smith", "John Smith"}, ratings[0].Mentions)
}

func TestBlocklistConfig(t *testing.T) {
	conf := baseConfig(t)
	conf.Blocklist = writeFile(t, "blocklist.yml", "case_insensitive:\n  - john smith\n")

	written, err := annotateStream(t, conf, item("b", "Contact John Smith today"))

	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestNegateConfig(t *testing.T) {
	conf := baseConfig(t)
	conf.Negate = true

	written, err := annotateStream(t, conf, item("a", "Alice met Bob"), item("b", "Contact John Smith today"))

	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, "a", written[0].DocID)
}

func TestEmptyContentAborts(t *testing.T) {
	written, err := annotateStream(t, baseConfig(t), item("b", "Contact John Smith today"), &streamitem.StreamItem{DocID: "c"})

	var empty *annotate.EmptyContentError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, "c", empty.DocID)
	assert.Len(t, written, 1)
}

func TestConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		modify func(conf *streamAnnotatorConfig)
	}{
		{"text source", "text_source", func(conf *streamAnnotatorConfig) { conf.TextSource = "body" }},
		{"on empty", "on_empty", func(conf *streamAnnotatorConfig) { conf.OnEmpty = "retry" }},
		{"matcher", "matcher", func(conf *streamAnnotatorConfig) { conf.Matcher = "neural" }},
		{"missing patterns", "patterns", func(conf *streamAnnotatorConfig) { conf.Patterns = "" }},
		{"resolver", "resolver.type", func(conf *streamAnnotatorConfig) { conf.Resolver.Type = "oracle" }},
		{"pattern resolver without patterns", "resolver.type", func(conf *streamAnnotatorConfig) {
			conf.Matcher = matcher.Dictionary
			conf.Dictionary.Path = writeFile(t, "people.tsv", "John Smith\tP001\n")
			conf.Dictionary.Format = dict.LeadmineDictionaryFormat
			conf.Resolver.Type = resolver.PatternType
		}},
		{"missing dictionary", "dictionary.path", func(conf *streamAnnotatorConfig) {
			conf.Resolver.Type = resolver.LookupType
			conf.Resolver.Backend = cache.Local
		}},
		{"backend", "resolver.backend", func(conf *streamAnnotatorConfig) {
			conf.Resolver.Type = resolver.LookupType
			conf.Resolver.Backend = "memcached"
		}},
	}
	for _, tt := range tests {
		conf := baseConfig(t)
		tt.modify(&conf)

		_, err := newPipeline(conf, time.Now())

		var configErr *lib.ConfigurationError
		if assert.True(t, errors.As(err, &configErr), tt.name) {
			assert.Equal(t, tt.key, configErr.Key, tt.name)
		}
	}
}

func TestCodecConfigurationErrors(t *testing.T) {
	conf := baseConfig(t)
	conf.Compression = "lz4"

	_, _, err := openCodecs(conf, &bytes.Buffer{}, &bytes.Buffer{})

	var configErr *lib.ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "compression", configErr.Key)
}
