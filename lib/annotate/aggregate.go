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

package annotate

import (
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/matcher"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/text"
)

// Aggregate collects, per target, the distinct text that mentioned it.
// Targets and mentions keep the order in which they were first added.
type Aggregate struct {
	targets  []string
	mentions map[string][]string
	seen     map[string]map[string]bool
	labelled int
}

func NewAggregate() *Aggregate {
	return &Aggregate{
		mentions: make(map[string][]string),
		seen:     make(map[string]map[string]bool),
	}
}

func (a *Aggregate) Add(targetID, mention string) {
	seen, ok := a.seen[targetID]
	if !ok {
		seen = make(map[string]bool)
		a.seen[targetID] = seen
		a.targets = append(a.targets, targetID)
	}
	if seen[mention] {
		return
	}
	seen[mention] = true
	a.mentions[targetID] = append(a.mentions[targetID], mention)
}

// Len is the number of distinct targets.
func (a *Aggregate) Len() int {
	return len(a.targets)
}

// Labelled is the number of matches that produced at least one label.
func (a *Aggregate) Labelled() int {
	return a.labelled
}

func (a *Aggregate) Targets() []string {
	return a.targets
}

func (a *Aggregate) Mentions(targetID string) []string {
	return a.mentions[targetID]
}

// AggregateMatches turns matches into one label per (match, target) pair,
// located in both unicode characters and bytes of the scanned text.
// targetIDs[i] holds the targets of matches[i].
func AggregateMatches(scanned string, matches []matcher.Match, targetIDs [][]string, source TextSource) ([]*streamitem.Label, *Aggregate) {
	agg := NewAggregate()
	var labels []*streamitem.Label

	for i, m := range matches {
		if m.Start < 0 || m.Length <= 0 || m.End() > len(scanned) {
			log.Warn().Int("start", m.Start).Int("length", m.Length).Msg("ignoring match outside of scanned text")
			continue
		}
		if i >= len(targetIDs) {
			break
		}

		if len(targetIDs[i]) == 0 {
			continue
		}
		agg.labelled++

		charStart, charLength := text.CharSpan(scanned, m.Start, m.Length)
		for _, targetID := range targetIDs[i] {
			labels = append(labels, &streamitem.Label{
				Target: &streamitem.Target{TargetID: targetID},
				Offsets: map[streamitem.OffsetType]*streamitem.Offset{
					streamitem.OffsetTypeChars: {
						Type:        streamitem.OffsetTypeChars,
						First:       int64(charStart),
						Length:      int32(charLength),
						ContentForm: string(source),
					},
					streamitem.OffsetTypeBytes: {
						Type:        streamitem.OffsetTypeBytes,
						First:       int64(m.Start),
						Length:      int32(m.Length),
						ContentForm: string(source),
					},
				},
			})
			agg.Add(targetID, m.Text)
		}
	}

	return labels, agg
}
