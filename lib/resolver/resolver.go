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

// Package resolver maps matches to the targets they mention.
package resolver

import (
	"context"

	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/matcher"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/text"
)

// DefaultTargetID is used when no other target information is configured.
const DefaultTargetID = "1"

// Resolver returns, for each match, the ids of the targets it mentions. A
// match with no targets is not annotated.
type Resolver interface {
	Resolve(ctx context.Context, matches []matcher.Match) ([][]string, error)
}

type Type string

const (
	FixedType   Type = "fixed"
	PatternType Type = "pattern"
	LookupType  Type = "lookup"
)

// Fixed resolves every match to the same target.
type Fixed struct {
	TargetID string
}

func NewFixed(targetID string) Fixed {
	if targetID == "" {
		targetID = DefaultTargetID
	}
	return Fixed{TargetID: targetID}
}

func (f Fixed) Resolve(_ context.Context, matches []matcher.Match) ([][]string, error) {
	res := make([][]string, len(matches))
	for i := range matches {
		res[i] = []string{f.TargetID}
	}
	return res, nil
}

// PatternTable resolves a match to the targets listed for the pattern that
// produced it. Patterns without targets, and dictionary matches, use the
// fallback.
type PatternTable struct {
	patterns []matcher.Pattern
	fallback string
}

func NewPatternTable(patterns []matcher.Pattern, fallback string) PatternTable {
	return PatternTable{patterns: patterns, fallback: fallback}
}

func (p PatternTable) Resolve(_ context.Context, matches []matcher.Match) ([][]string, error) {
	res := make([][]string, len(matches))
	for i, m := range matches {
		if m.Pattern >= 0 && m.Pattern < len(p.patterns) && len(p.patterns[m.Pattern].TargetIDs) > 0 {
			res[i] = p.patterns[m.Pattern].TargetIDs
		} else if p.fallback != "" {
			res[i] = []string{p.fallback}
		}
	}
	return res, nil
}

// Lookup resolves matches through an in-memory dictionary keyed by
// normalised text.
type Lookup struct {
	store local.Client
}

func NewLookup(store local.Client) Lookup {
	return Lookup{store: store}
}

func (l Lookup) Resolve(_ context.Context, matches []matcher.Match) ([][]string, error) {
	res := make([][]string, len(matches))
	for i, m := range matches {
		if lookup := l.store.Get(text.NormalizeKey(m.Text)); lookup != nil {
			res[i] = lookup.TargetIDs
		}
	}
	return res, nil
}
