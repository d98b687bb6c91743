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
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/codec"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

type streamItemDumpConfig struct {
	lib.BaseConfig `mapstructure:",squash"`
	InputFormat    string `mapstructure:"input_format"`
	Compression    string
	Full           bool
}

var config streamItemDumpConfig

// summary is printed for each record unless --full is set.
type summary struct {
	DocID             string         `json:"doc_id"`
	StreamID          string         `json:"stream_id,omitempty"`
	AbsURL            string         `json:"abs_url,omitempty"`
	MediaType         string         `json:"media_type,omitempty"`
	RawBytes          int            `json:"raw_bytes"`
	CleanHTMLBytes    int            `json:"clean_html_bytes"`
	CleanVisibleBytes int            `json:"clean_visible_bytes"`
	Labels            map[string]int `json:"labels,omitempty"`
	Ratings           map[string]int `json:"ratings,omitempty"`
}

func summarise(item *streamitem.StreamItem) summary {
	body := item.GetBody()
	s := summary{
		DocID:             item.DocID,
		StreamID:          item.StreamID,
		AbsURL:            item.AbsURL,
		MediaType:         body.MediaType,
		RawBytes:          len(body.Raw),
		CleanHTMLBytes:    len(body.CleanHTML),
		CleanVisibleBytes: len(body.CleanVisible),
	}
	for annotatorID, labels := range body.Labels {
		if s.Labels == nil {
			s.Labels = make(map[string]int)
		}
		s.Labels[annotatorID] = len(labels)
	}
	for annotatorID, ratings := range item.Ratings {
		if s.Ratings == nil {
			s.Ratings = make(map[string]int)
		}
		s.Ratings[annotatorID] = len(ratings)
	}
	return s
}

func main() {
	pflag.String("input_format", string(codec.Protobuf), "Input record format: protobuf or jsonl.")
	pflag.String("compression", string(codec.NoCompression), "Input compression: none, gzip or zstd.")
	pflag.Bool("full", false, "Print whole records instead of summaries.")

	err := lib.InitializeConfig("./config/streamitem-dump.yml", map[string]interface{}{
		"log_level": "info",
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	format, err := codec.ParseFormat(config.InputFormat)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	compression, err := codec.ParseCompression(config.Compression)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	r, err := codec.NewReader(os.Stdin, format, compression)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	n, err := dump(r, os.Stdout, config.Full)
	if err != nil {
		log.Fatal().Err(err).Int("records", n).Send()
	}
	log.Debug().Int("records", n).Msg("dumped stream")
}

// dump writes one json line per record and returns the number of records.
func dump(r codec.Reader, w io.Writer, full bool) (int, error) {
	enc := json.NewEncoder(w)
	n := 0
	for {
		item, err := r.Read()
		if errors.Is(err, io.EOF) {
			return n, nil
		} else if err != nil {
			return n, err
		}
		n++

		var v interface{} = summarise(item)
		if full {
			v = item
		}
		if err := enc.Encode(v); err != nil {
			return n, err
		}
	}
}
