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
	"bytes"
	"io"

	"golang.org/x/net/html"
)

// Text under these elements is never visible.
var invisibleElements = map[string]struct{}{
	"area":     {},
	"audio":    {},
	"link":     {},
	"meta":     {},
	"noscript": {},
	"script":   {},
	"source":   {},
	"style":    {},
	"textarea": {},
	"title":    {},
	"video":    {},
}

// VisibleText returns a copy of an html document in which every tag, comment
// and invisible element is replaced with spaces. Newlines are kept, so the
// result has the same length as the input and byte offsets into it are also
// offsets into the html.
func VisibleText(doc []byte) ([]byte, error) {
	visible := make([]byte, 0, len(doc))
	tokenizer := html.NewTokenizer(bytes.NewReader(doc))
	hidden := 0

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			break
		}

		// Must read this first. Other read methods mutate the current token.
		raw := tokenizer.Raw()

		switch tokenType {
		case html.TextToken:
			if hidden > 0 {
				visible = appendBlank(visible, raw)
			} else {
				visible = append(visible, raw...)
			}
			continue
		case html.StartTagToken:
			visible = appendBlank(visible, raw)
			tn, _ := tokenizer.TagName()
			if _, ok := invisibleElements[string(tn)]; ok {
				hidden++
			}
		case html.EndTagToken:
			visible = appendBlank(visible, raw)
			tn, _ := tokenizer.TagName()
			if _, ok := invisibleElements[string(tn)]; ok && hidden > 0 {
				hidden--
			}
		default:
			visible = appendBlank(visible, raw)
		}
	}

	if err := tokenizer.Err(); err != io.EOF {
		return nil, err
	}
	return visible, nil
}

func appendBlank(dst, src []byte) []byte {
	for _, b := range src {
		if b == '\n' {
			dst = append(dst, '\n')
		} else {
			dst = append(dst, ' ')
		}
	}
	return dst
}
