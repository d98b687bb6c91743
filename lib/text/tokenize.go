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

package text

import (
	"unicode/utf8"

	"github.com/blevesearch/segment"
)

// Token is a word of some text. Start and End are byte offsets.
type Token struct {
	Text  string
	Start int
	End   int
}

// Words splits text on unicode word boundaries and returns the segments that
// contain letters, numbers or ideographs. Whitespace and punctuation segments
// are dropped but still advance the offsets.
func Words(text string) ([]Token, error) {
	segmenter := segment.NewWordSegmenterDirect([]byte(text))

	var tokens []Token
	position := 0
	for segmenter.Segment() {
		segmentBytes := segmenter.Bytes()
		if segmenter.Type() != segment.None {
			tokens = append(tokens, Token{
				Text:  string(segmentBytes),
				Start: position,
				End:   position + len(segmentBytes),
			})
		}
		position += len(segmentBytes)
	}
	if err := segmenter.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// CharSpan converts a byte span of text into a span counted in unicode code
// points.
func CharSpan(text string, start, length int) (int, int) {
	charStart := utf8.RuneCountInString(text[:start])
	return charStart, utf8.RuneCountInString(text[start : start+length])
}
