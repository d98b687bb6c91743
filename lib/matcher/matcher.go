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

// Package matcher finds spans of text worth annotating.
package matcher

import "sort"

// Match is a span of the scanned text. Start and Length are byte offsets.
// Pattern is the index of the regular expression that produced the match,
// or NoPattern for dictionary matches.
type Match struct {
	Start   int
	Length  int
	Text    string
	Pattern int
}

const NoPattern = -1

func (m Match) End() int {
	return m.Start + m.Length
}

// Matcher returns matches ordered by start offset that do not overlap.
type Matcher interface {
	FindMatches(text string) ([]Match, error)
}

type Type string

const (
	Regexp     Type = "regexp"
	Dictionary Type = "dictionary"
)

// resolveOverlaps orders candidate matches and keeps, at each position, the
// earliest and then longest one. Empty matches are dropped.
func resolveOverlaps(candidates []Match) []Match {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start < candidates[j].Start
		}
		if candidates[i].Length != candidates[j].Length {
			return candidates[i].Length > candidates[j].Length
		}
		return candidates[i].Pattern < candidates[j].Pattern
	})

	res := make([]Match, 0, len(candidates))
	end := 0
	for _, m := range candidates {
		if m.Length <= 0 || m.Start < end {
			continue
		}
		res = append(res, m)
		end = m.End()
	}
	return res
}
