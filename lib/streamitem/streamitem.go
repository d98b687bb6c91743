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

// Package streamitem holds the document records that flow through the
// annotation pipeline. The shapes follow the streamcorpus v0.3.0 StreamItem.
package streamitem

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
)

// Version is written on every item created by this module.
const Version = "v0_3_0"

type OffsetType int32

const (
	OffsetTypeLines OffsetType = 0
	OffsetTypeBytes OffsetType = 1
	OffsetTypeChars OffsetType = 2
)

var offsetTypeNames = map[OffsetType]string{
	OffsetTypeLines: "LINES",
	OffsetTypeBytes: "BYTES",
	OffsetTypeChars: "CHARS",
}

func (t OffsetType) String() string {
	if name, ok := offsetTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("OffsetType(%d)", int32(t))
}

// MarshalText lets offset types key JSON objects by name.
func (t OffsetType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *OffsetType) UnmarshalText(b []byte) error {
	for k, name := range offsetTypeNames {
		if name == string(b) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unknown offset type %q", string(b))
}

// StreamTime is a point in time as both epoch seconds and a zulu timestamp.
type StreamTime struct {
	EpochTicks    float64 `json:"epoch_ticks"`
	ZuluTimestamp string  `json:"zulu_timestamp"`
}

func NewStreamTime(t time.Time) *StreamTime {
	return &StreamTime{
		EpochTicks:    float64(t.UnixNano()) / float64(time.Second),
		ZuluTimestamp: strfmt.DateTime(t.UTC()).String(),
	}
}

// Annotator identifies the logic that produced labels and ratings.
type Annotator struct {
	AnnotatorID    string      `json:"annotator_id"`
	AnnotationTime *StreamTime `json:"annotation_time,omitempty"`
}

func NewAnnotator(id string, activatedAt time.Time) *Annotator {
	return &Annotator{
		AnnotatorID:    id,
		AnnotationTime: NewStreamTime(activatedAt),
	}
}

type Target struct {
	TargetID string `json:"target_id"`
}

// Offset locates a span of a body field. ContentForm names the field.
type Offset struct {
	Type        OffsetType `json:"type"`
	First       int64      `json:"first"`
	Length      int32      `json:"length"`
	ContentForm string     `json:"content_form,omitempty"`
	Value       []byte     `json:"value,omitempty"`
}

type Label struct {
	Annotator *Annotator             `json:"annotator,omitempty"`
	Target    *Target                `json:"target,omitempty"`
	Offsets   map[OffsetType]*Offset `json:"offsets,omitempty"`
}

type Rating struct {
	Annotator       *Annotator `json:"annotator,omitempty"`
	Target          *Target    `json:"target,omitempty"`
	ContainsMention bool       `json:"contains_mention"`
	Mentions        []string   `json:"mentions,omitempty"`
}

// ContentItem is the body of a stream item. Labels are keyed by annotator id.
type ContentItem struct {
	Raw          []byte              `json:"raw,omitempty"`
	Encoding     string              `json:"encoding,omitempty"`
	MediaType    string              `json:"media_type,omitempty"`
	CleanHTML    string              `json:"clean_html,omitempty"`
	CleanVisible string              `json:"clean_visible,omitempty"`
	Labels       map[string][]*Label `json:"labels,omitempty"`
}

// StreamItem is one document record. Ratings are keyed by annotator id.
type StreamItem struct {
	Version    string               `json:"version,omitempty"`
	DocID      string               `json:"doc_id"`
	AbsURL     string               `json:"abs_url,omitempty"`
	Source     string               `json:"source,omitempty"`
	StreamID   string               `json:"stream_id,omitempty"`
	StreamTime *StreamTime          `json:"stream_time,omitempty"`
	Body       *ContentItem         `json:"body,omitempty"`
	Ratings    map[string][]*Rating `json:"ratings,omitempty"`
}

// GetBody never returns nil, so callers can read fields of records that
// arrived without a body.
func (s *StreamItem) GetBody() *ContentItem {
	if s == nil || s.Body == nil {
		return &ContentItem{}
	}
	return s.Body
}

func (s *StreamItem) AddLabels(annotatorID string, labels ...*Label) {
	if len(labels) == 0 {
		return
	}
	if s.Body == nil {
		s.Body = &ContentItem{}
	}
	if s.Body.Labels == nil {
		s.Body.Labels = make(map[string][]*Label)
	}
	s.Body.Labels[annotatorID] = append(s.Body.Labels[annotatorID], labels...)
}

func (s *StreamItem) AddRatings(annotatorID string, ratings ...*Rating) {
	if len(ratings) == 0 {
		return
	}
	if s.Ratings == nil {
		s.Ratings = make(map[string][]*Rating)
	}
	s.Ratings[annotatorID] = append(s.Ratings[annotatorID], ratings...)
}
