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

package streamitem

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/gen/pb"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func annotatedItem() *StreamItem {
	annotator := NewAnnotator("example-matcher-v0.1", time.Date(2013, 4, 18, 18, 18, 20, 0, time.UTC))
	return &StreamItem{
		Version:  Version,
		DocID:    "d41d8cd98f00b204e9800998ecf8427e",
		StreamID: "1366309100-d41d8cd98f00b204e9800998ecf8427e",
		Body: &ContentItem{
			Raw:          []byte("<p>Contact John Smith today</p>"),
			CleanVisible: "   Contact John Smith today    ",
			Labels: map[string][]*Label{
				annotator.AnnotatorID: {{
					Annotator: annotator,
					Target:    &Target{TargetID: "1"},
					Offsets: map[OffsetType]*Offset{
						OffsetTypeChars: {Type: OffsetTypeChars, First: 11, Length: 10, ContentForm: "clean_visible"},
						OffsetTypeBytes: {Type: OffsetTypeBytes, First: 11, Length: 10, ContentForm: "clean_visible"},
					},
				}},
			},
		},
		Ratings: map[string][]*Rating{
			annotator.AnnotatorID: {{
				Annotator:       annotator,
				Target:          &Target{TargetID: "1"},
				ContainsMention: true,
				Mentions:        []string{"John Smith"},
			}},
		},
	}
}

func TestMarshalKeepsAnnotations(t *testing.T) {
	item := annotatedItem()

	b, err := Marshal(item)
	require.NoError(t, err)

	decoded, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, item, decoded)
}

func TestMarshalIsDeterministic(t *testing.T) {
	item := annotatedItem()
	item.AddRatings("another-annotator", &Rating{Target: &Target{TargetID: "2"}, ContainsMention: true, Mentions: []string{"x"}})

	first, err := Marshal(item)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		b, err := Marshal(item)
		require.NoError(t, err)
		assert.Equal(t, first, b)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	b, err := Marshal(&StreamItem{DocID: "abc"})
	require.NoError(t, err)
	b = protowire.AppendTag(b, 99, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)
	b = protowire.AppendTag(b, 100, protowire.BytesType)
	b = protowire.AppendString(b, "future field")

	item, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, "abc", item.DocID)
	assert.Nil(t, item.Body)
}

func TestUnmarshalRejectsTruncatedInput(t *testing.T) {
	b, err := Marshal(annotatedItem())
	require.NoError(t, err)

	_, err = Unmarshal(b[:len(b)-3])
	assert.Error(t, err)
}

func TestUnmarshalRejectsLengthPastEnd(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendVarint(b, 10)
	b = append(b, "abc"...)

	_, err := Unmarshal(b)
	assert.Error(t, err)
}

func TestMarshalWritesGeneratedLayout(t *testing.T) {
	item := annotatedItem()
	b, err := Marshal(item)
	require.NoError(t, err)

	msg := &pb.StreamItem{}
	require.NoError(t, proto.Unmarshal(b, msg))
	assert.Equal(t, item.DocID, msg.GetDocId())
	require.Len(t, msg.GetRatings(), 1)
	assert.Equal(t, "example-matcher-v0.1", msg.GetRatings()[0].GetAnnotatorId())

	labels := msg.GetBody().GetLabels()
	require.Len(t, labels, 1)
	offsets := labels[0].GetLabels()[0].GetOffsets()
	require.Len(t, offsets, 2)
	assert.Equal(t, pb.OffsetType_BYTES, offsets[0].GetType())
	assert.Equal(t, pb.OffsetType_CHARS, offsets[1].GetType())
}

func TestOffsetTypesMatchGeneratedEnum(t *testing.T) {
	for _, typ := range []OffsetType{OffsetTypeLines, OffsetTypeBytes, OffsetTypeChars} {
		assert.Equal(t, typ.String(), pb.OffsetType(typ).String())
	}
}

func TestOffsetTypeJSONKeys(t *testing.T) {
	label := &Label{Offsets: map[OffsetType]*Offset{
		OffsetTypeChars: {Type: OffsetTypeChars, First: 8, Length: 10},
	}}

	b, err := json.Marshal(label)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"CHARS":`)

	var decoded Label
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, int64(8), decoded.Offsets[OffsetTypeChars].First)
}

func TestAddLabelsIgnoresEmpty(t *testing.T) {
	item := &StreamItem{DocID: "abc"}
	item.AddLabels("a")
	item.AddRatings("a")

	assert.Nil(t, item.Body)
	assert.Nil(t, item.Ratings)
}

func TestNewStreamTime(t *testing.T) {
	st := NewStreamTime(time.Date(2013, 4, 18, 18, 18, 20, 0, time.UTC))

	assert.Equal(t, float64(1366309100), st.EpochTicks)
	assert.Equal(t, "2013-04-18T18:18:20.000Z", st.ZuluTimestamp)
}
