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

package dict

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/text"
)

type Config struct {
	Name   string
	Path   string
	Format Format
}

// Entry is one dictionary row: every synonym resolves to every target id.
type Entry struct {
	Synonyms  []string        `json:"synonyms"`
	TargetIDs []string        `json:"targetIds"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

type Format string

const (
	LeadmineDictionaryFormat Format = "leadmine"
	NativeDictionaryFormat   Format = "native"
)

type Reader interface {
	Read(r io.Reader, onEntry func(entry Entry) error) error
}

func NewReader(format Format) (Reader, error) {
	switch format {
	case LeadmineDictionaryFormat:
		return NewLeadmineReader(), nil
	case NativeDictionaryFormat:
		return NewNativeReader(), nil
	default:
		return nil, fmt.Errorf("unsupported dictionary format %v", format)
	}
}

// ReadWithCallback reads the dictionary according to its format and executes onEntry for each entry.
// The onEOF callback is executed when there are no more entries.
func ReadWithCallback(r io.Reader, format Format, onEntry func(entry Entry) error, onEOF func() error) error {
	reader, err := NewReader(format)
	if err != nil {
		return err
	}

	if err := reader.Read(r, onEntry); err != nil {
		return err
	}

	if onEOF != nil {
		return onEOF()
	}
	return nil
}

// Load reads a dictionary into store, keyed by normalised synonym. Synonyms
// shared between entries resolve to the union of their target ids. It
// returns the number of entries read.
func Load(r io.Reader, conf Config, store local.Client) (int, error) {
	entries := 0
	err := ReadWithCallback(r, conf.Format, func(entry Entry) error {
		entries++
		for _, synonym := range entry.Synonyms {
			key := text.NormalizeKey(synonym)
			if key == "" {
				continue
			}
			lookup := store.Get(key)
			if lookup == nil {
				lookup = &cache.Lookup{Dictionary: conf.Name, Metadata: entry.Metadata}
				store.Set(key, lookup)
			}
			lookup.AddTargetIDs(entry.TargetIDs...)
		}
		return nil
	}, nil)
	return entries, err
}

func LoadFile(conf Config, store local.Client) (int, error) {
	f, err := os.Open(conf.Path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Load(f, conf, store)
}
