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

package matcher

import (
	"fmt"
	"io/ioutil"
	"regexp"

	"gopkg.in/yaml.v2"
)

// Pattern is a compiled expression and the targets its matches refer to.
type Pattern struct {
	Expr      *regexp.Regexp
	TargetIDs []string
}

type RegexpMatcher struct {
	patterns []Pattern
}

func NewRegexpMatcher(patterns []Pattern) *RegexpMatcher {
	return &RegexpMatcher{patterns: patterns}
}

func (r *RegexpMatcher) Patterns() []Pattern {
	return r.patterns
}

func (r *RegexpMatcher) FindMatches(text string) ([]Match, error) {
	var candidates []Match
	for i, pattern := range r.patterns {
		for _, loc := range pattern.Expr.FindAllStringIndex(text, -1) {
			candidates = append(candidates, Match{
				Start:   loc[0],
				Length:  loc[1] - loc[0],
				Text:    text[loc[0]:loc[1]],
				Pattern: i,
			})
		}
	}
	return resolveOverlaps(candidates), nil
}

// LoadPatterns reads a YAML pattern file.
func LoadPatterns(path string) ([]Pattern, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	patterns, err := ParsePatterns(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return patterns, nil
}

// ParsePatterns accepts either a list of expressions, which carry no target
// ids, or a mapping of target id to one expression or a list of them.
// Patterns keep file order. An expression listed under several targets
// becomes one pattern with all of their ids.
func ParsePatterns(b []byte) ([]Pattern, error) {
	var raw interface{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, err
	}

	p := &patternSet{index: map[string]int{}}
	switch raw.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		var exprs []string
		if err := yaml.Unmarshal(b, &exprs); err != nil {
			return nil, err
		}
		for _, expr := range exprs {
			if err := p.add(expr, ""); err != nil {
				return nil, err
			}
		}
	default:
		var targets yaml.MapSlice
		if err := yaml.Unmarshal(b, &targets); err != nil {
			return nil, err
		}
		for _, item := range targets {
			targetID := fmt.Sprint(item.Key)
			exprs, err := expressions(item.Value)
			if err != nil {
				return nil, fmt.Errorf("target %s: %w", targetID, err)
			}
			for _, expr := range exprs {
				if err := p.add(expr, targetID); err != nil {
					return nil, err
				}
			}
		}
	}
	return p.patterns, nil
}

func expressions(v interface{}) ([]string, error) {
	switch v := v.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		exprs := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("expression %v is not a string", e)
			}
			exprs = append(exprs, s)
		}
		return exprs, nil
	}
	return nil, fmt.Errorf("expected an expression or a list of expressions, got %T", v)
}

type patternSet struct {
	patterns []Pattern
	index    map[string]int
}

func (p *patternSet) add(expr, targetID string) error {
	i, ok := p.index[expr]
	if !ok {
		re, err := regexp.Compile(expr)
		if err != nil {
			return err
		}
		i = len(p.patterns)
		p.index[expr] = i
		p.patterns = append(p.patterns, Pattern{Expr: re})
	}
	if targetID == "" {
		return nil
	}
	for _, existing := range p.patterns[i].TargetIDs {
		if existing == targetID {
			return nil
		}
	}
	p.patterns[i].TargetIDs = append(p.patterns[i].TargetIDs, targetID)
	return nil
}
