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
	"fmt"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

// TextSource names the body field that is scanned for matches.
type TextSource string

const (
	Raw          TextSource = "raw"
	CleanHTML    TextSource = "clean_html"
	CleanVisible TextSource = "clean_visible"
)

func ParseTextSource(s string) (TextSource, error) {
	switch ts := TextSource(s); ts {
	case Raw, CleanHTML, CleanVisible:
		return ts, nil
	}
	return "", lib.NewConfigurationError("text_source", s, "must be one of raw, clean_html, clean_visible")
}

// EmptyContentError is returned for a record whose requested field and raw
// field are both empty.
type EmptyContentError struct {
	DocID string
}

func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("record %s has no content to annotate", e.DocID)
}

func field(body *streamitem.ContentItem, source TextSource) string {
	switch source {
	case CleanHTML:
		return body.CleanHTML
	case CleanVisible:
		return body.CleanVisible
	default:
		return string(body.Raw)
	}
}

// ResolveText returns the text to scan and the field it came from. An empty
// requested field falls back to raw.
func ResolveText(item *streamitem.StreamItem, requested TextSource) (string, TextSource, error) {
	body := item.GetBody()

	if text := field(body, requested); text != "" {
		log.Debug().Str("doc_id", item.DocID).Str("text_source", string(requested)).Msg("scanning requested field")
		return text, requested, nil
	}

	if len(body.Raw) > 0 {
		log.Debug().Str("doc_id", item.DocID).Str("requested", string(requested)).Msg("requested field is empty, scanning raw")
		return string(body.Raw), Raw, nil
	}

	return "", "", &EmptyContentError{DocID: item.DocID}
}
