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
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/text"
)

// DictionaryMatcher looks up runs of up to compoundTokenLength adjacent
// words in a dictionary. The longest run found wins and the scan resumes
// after it.
type DictionaryMatcher struct {
	store               local.Client
	compoundTokenLength int
}

func NewDictionaryMatcher(store local.Client, compoundTokenLength int) *DictionaryMatcher {
	if compoundTokenLength < 1 {
		compoundTokenLength = 1
	}
	return &DictionaryMatcher{
		store:               store,
		compoundTokenLength: compoundTokenLength,
	}
}

func (d *DictionaryMatcher) FindMatches(s string) ([]Match, error) {
	tokens, err := text.Words(s)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for i := 0; i < len(tokens); {
		n := d.compoundTokenLength
		if remaining := len(tokens) - i; remaining < n {
			n = remaining
		}

		found := 0
		for ; n > 0; n-- {
			start, end := tokens[i].Start, tokens[i+n-1].End
			if d.store.Get(text.NormalizeKey(s[start:end])) != nil {
				matches = append(matches, Match{
					Start:   start,
					Length:  end - start,
					Text:    s[start:end],
					Pattern: NoPattern,
				})
				found = n
				break
			}
		}

		if found > 0 {
			i += found
		} else {
			i++
		}
	}
	return matches, nil
}
