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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

func TestResolveText(t *testing.T) {
	item := &streamitem.StreamItem{
		DocID: "doc",
		Body: &streamitem.ContentItem{
			Raw:          []byte("<p>raw</p>"),
			CleanHTML:    "<p>html</p>",
			CleanVisible: "   visible    ",
		},
	}

	tests := []struct {
		requested TextSource
		text      string
	}{
		{Raw, "<p>raw</p>"},
		{CleanHTML, "<p>html</p>"},
		{CleanVisible, "   visible    "},
	}
	for _, tt := range tests {
		text, actual, err := ResolveText(item, tt.requested)
		require.NoError(t, err)
		assert.Equal(t, tt.text, text)
		assert.Equal(t, tt.requested, actual)
	}
}

func TestResolveTextFallsBackToRaw(t *testing.T) {
	item := &streamitem.StreamItem{
		DocID: "doc",
		Body:  &streamitem.ContentItem{Raw: []byte("Contact John Smith today")},
	}

	text, actual, err := ResolveText(item, CleanVisible)

	require.NoError(t, err)
	assert.Equal(t, "Contact John Smith today", text)
	assert.Equal(t, Raw, actual)
}

func TestResolveTextEmptyContent(t *testing.T) {
	for _, item := range []*streamitem.StreamItem{
		{DocID: "empty-body", Body: &streamitem.ContentItem{}},
		{DocID: "no-body"},
	} {
		_, _, err := ResolveText(item, CleanVisible)

		var empty *EmptyContentError
		require.True(t, errors.As(err, &empty), item.DocID)
		assert.Equal(t, item.DocID, empty.DocID)
	}
}

func TestParseTextSource(t *testing.T) {
	ts, err := ParseTextSource("clean_html")
	require.NoError(t, err)
	assert.Equal(t, CleanHTML, ts)

	_, err = ParseTextSource("body")
	var configErr *lib.ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "text_source", configErr.Key)
}

func TestParseOnEmpty(t *testing.T) {
	o, err := ParseOnEmpty("")
	require.NoError(t, err)
	assert.Equal(t, Abort, o)

	o, err = ParseOnEmpty("skip")
	require.NoError(t, err)
	assert.Equal(t, Skip, o)

	_, err = ParseOnEmpty("retry")
	assert.Error(t, err)
}
