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
	"crypto/md5"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/codec"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/text"
)

type streamItemBuilderConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	Source         string
	OutputFormat   string `mapstructure:"output_format"`
	Compression    string
}

var config streamItemBuilderConfig

func main() {
	pflag.String("source", "local_files", "Value of the source field of every record.")
	pflag.String("output_format", string(codec.Protobuf), "Output record format: protobuf or jsonl.")
	pflag.String("compression", string(codec.NoCompression), "Output compression: none, gzip or zstd.")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file|directory... > output\n", os.Args[0])
		pflag.PrintDefaults()
	}

	err := lib.InitializeConfig("./config/streamitem-builder.yml", map[string]interface{}{
		"log_level": "info",
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(1)
	}

	format, err := codec.ParseFormat(config.OutputFormat)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	compression, err := codec.ParseCompression(config.Compression)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	paths, err := listFiles(pflag.Args())
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	w, err := codec.NewWriter(os.Stdout, format, compression)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	written := 0
	for _, path := range paths {
		item, err := buildFromFile(path, config.Source)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping file")
			continue
		}
		if err := w.Write(item); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("could not write record")
		}
		written++
	}
	if err := w.Flush(); err != nil {
		log.Fatal().Err(err).Msg("could not flush output")
	}
	log.Info().Int("files", len(paths)).Int("written", written).Msg("built stream")
}

// listFiles expands directories into the regular files below them.
func listFiles(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.Mode().IsRegular() {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func buildFromFile(path, source string) (*streamitem.StreamItem, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	content, err := ioutil.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	return buildItem("file://"+filepath.ToSlash(abs), source, content, info.ModTime())
}

// buildItem makes a record of a document. HTML documents also get
// clean_html and a clean_visible with the markup blanked out; other text is
// used as clean_visible directly.
func buildItem(absURL, source string, content []byte, modified time.Time) (*streamitem.StreamItem, error) {
	docID := fmt.Sprintf("%x", md5.Sum([]byte(absURL)))
	streamTime := streamitem.NewStreamTime(modified)

	body := &streamitem.ContentItem{
		Raw:       content,
		Encoding:  "UTF-8",
		MediaType: mediaType(absURL, content),
	}
	if body.MediaType == "text/html" {
		visible, err := text.VisibleText(content)
		if err != nil {
			return nil, fmt.Errorf("extracting visible text: %w", err)
		}
		body.CleanHTML = string(content)
		body.CleanVisible = string(visible)
	} else {
		body.CleanVisible = string(content)
	}

	return &streamitem.StreamItem{
		Version:    streamitem.Version,
		DocID:      docID,
		AbsURL:     absURL,
		Source:     source,
		StreamID:   fmt.Sprintf("%d-%s", int64(streamTime.EpochTicks), docID),
		StreamTime: streamTime,
		Body:       body,
	}, nil
}

func mediaType(name string, content []byte) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return "text/html"
	case ".txt", ".text":
		return "text/plain"
	}
	detected := http.DetectContentType(content)
	return strings.TrimSpace(strings.Split(detected, ";")[0])
}
