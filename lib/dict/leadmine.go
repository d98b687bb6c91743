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
	"bufio"
	"io"
	"strings"
)

func NewLeadmineReader() Reader {
	return leadmineReader{}
}

type leadmineReader struct{}

// Read parses tab separated rows. The last column is the target id, the
// others are synonyms. Text after '#' is a comment.
func (l leadmineReader) Read(r io.Reader, onEntry func(entry Entry) error) error {
	scn := bufio.NewScanner(r)
	for scn.Scan() {
		uncommented := strings.SplitN(scn.Text(), "#", 2)[0]
		if strings.TrimSpace(uncommented) == "" {
			continue
		}

		row := strings.Split(uncommented, "\t")
		targetID := strings.TrimSpace(row[len(row)-1])
		if targetID == "" {
			continue
		}

		synonyms := make([]string, 0, len(row))
		for _, synonym := range row[:len(row)-1] {
			if synonym = strings.TrimSpace(synonym); synonym != "" {
				synonyms = append(synonyms, synonym)
			}
		}
		// A single column row names itself.
		if len(row) == 1 {
			synonyms = append(synonyms, targetID)
		}

		if err := onEntry(Entry{Synonyms: synonyms, TargetIDs: []string{targetID}}); err != nil {
			return err
		}
	}
	return scn.Err()
}
