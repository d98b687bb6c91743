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
	"sort"

	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/gen/pb"
	"google.golang.org/protobuf/proto"
)

// Marshal encodes item with the generated protobuf types. Labels, ratings
// and offsets are written in key order so equal items encode to equal bytes.
func Marshal(item *StreamItem) ([]byte, error) {
	return proto.Marshal(ToProto(item))
}

// Unmarshal decodes a protobuf encoded stream item. Unknown fields are skipped.
func Unmarshal(b []byte) (*StreamItem, error) {
	msg := &pb.StreamItem{}
	if err := proto.Unmarshal(b, msg); err != nil {
		return nil, err
	}
	return FromProto(msg), nil
}

func ToProto(item *StreamItem) *pb.StreamItem {
	msg := &pb.StreamItem{
		Version:    item.Version,
		DocId:      item.DocID,
		AbsUrl:     item.AbsURL,
		Source:     item.Source,
		StreamId:   item.StreamID,
		StreamTime: streamTimeToProto(item.StreamTime),
	}
	if item.Body != nil {
		msg.Body = contentItemToProto(item.Body)
	}
	annotatorIDs := make([]string, 0, len(item.Ratings))
	for k := range item.Ratings {
		annotatorIDs = append(annotatorIDs, k)
	}
	sort.Strings(annotatorIDs)
	for _, annotatorID := range annotatorIDs {
		entry := &pb.AnnotatorRatings{AnnotatorId: annotatorID}
		for _, r := range item.Ratings[annotatorID] {
			entry.Ratings = append(entry.Ratings, ratingToProto(r))
		}
		msg.Ratings = append(msg.Ratings, entry)
	}
	return msg
}

func FromProto(msg *pb.StreamItem) *StreamItem {
	item := &StreamItem{
		Version:    msg.GetVersion(),
		DocID:      msg.GetDocId(),
		AbsURL:     msg.GetAbsUrl(),
		Source:     msg.GetSource(),
		StreamID:   msg.GetStreamId(),
		StreamTime: streamTimeFromProto(msg.GetStreamTime()),
	}
	if msg.GetBody() != nil {
		item.Body = contentItemFromProto(msg.GetBody())
	}
	for _, entry := range msg.GetRatings() {
		if item.Ratings == nil {
			item.Ratings = make(map[string][]*Rating)
		}
		for _, r := range entry.GetRatings() {
			item.Ratings[entry.GetAnnotatorId()] = append(item.Ratings[entry.GetAnnotatorId()], ratingFromProto(r))
		}
	}
	return item
}

func contentItemToProto(body *ContentItem) *pb.ContentItem {
	msg := &pb.ContentItem{
		Raw:          body.Raw,
		Encoding:     body.Encoding,
		MediaType:    body.MediaType,
		CleanHtml:    body.CleanHTML,
		CleanVisible: body.CleanVisible,
	}
	annotatorIDs := make([]string, 0, len(body.Labels))
	for k := range body.Labels {
		annotatorIDs = append(annotatorIDs, k)
	}
	sort.Strings(annotatorIDs)
	for _, annotatorID := range annotatorIDs {
		entry := &pb.AnnotatorLabels{AnnotatorId: annotatorID}
		for _, l := range body.Labels[annotatorID] {
			entry.Labels = append(entry.Labels, labelToProto(l))
		}
		msg.Labels = append(msg.Labels, entry)
	}
	return msg
}

func contentItemFromProto(msg *pb.ContentItem) *ContentItem {
	body := &ContentItem{
		Raw:          msg.GetRaw(),
		Encoding:     msg.GetEncoding(),
		MediaType:    msg.GetMediaType(),
		CleanHTML:    msg.GetCleanHtml(),
		CleanVisible: msg.GetCleanVisible(),
	}
	for _, entry := range msg.GetLabels() {
		if body.Labels == nil {
			body.Labels = make(map[string][]*Label)
		}
		for _, l := range entry.GetLabels() {
			body.Labels[entry.GetAnnotatorId()] = append(body.Labels[entry.GetAnnotatorId()], labelFromProto(l))
		}
	}
	return body
}

func streamTimeToProto(t *StreamTime) *pb.StreamTime {
	if t == nil {
		return nil
	}
	return &pb.StreamTime{EpochTicks: t.EpochTicks, ZuluTimestamp: t.ZuluTimestamp}
}

func streamTimeFromProto(msg *pb.StreamTime) *StreamTime {
	if msg == nil {
		return nil
	}
	return &StreamTime{EpochTicks: msg.GetEpochTicks(), ZuluTimestamp: msg.GetZuluTimestamp()}
}

func annotatorToProto(a *Annotator) *pb.Annotator {
	if a == nil {
		return nil
	}
	return &pb.Annotator{AnnotatorId: a.AnnotatorID, AnnotationTime: streamTimeToProto(a.AnnotationTime)}
}

func annotatorFromProto(msg *pb.Annotator) *Annotator {
	if msg == nil {
		return nil
	}
	return &Annotator{AnnotatorID: msg.GetAnnotatorId(), AnnotationTime: streamTimeFromProto(msg.GetAnnotationTime())}
}

func targetToProto(t *Target) *pb.Target {
	if t == nil {
		return nil
	}
	return &pb.Target{TargetId: t.TargetID}
}

func targetFromProto(msg *pb.Target) *Target {
	if msg == nil {
		return nil
	}
	return &Target{TargetID: msg.GetTargetId()}
}

// labelToProto keys each offset by its map key, one offset per type.
func labelToProto(l *Label) *pb.Label {
	msg := &pb.Label{}
	if l == nil {
		return msg
	}
	msg.Annotator = annotatorToProto(l.Annotator)
	msg.Target = targetToProto(l.Target)

	types := make([]int, 0, len(l.Offsets))
	for t := range l.Offsets {
		types = append(types, int(t))
	}
	sort.Ints(types)
	for _, t := range types {
		o := l.Offsets[OffsetType(t)]
		if o == nil {
			continue
		}
		msg.Offsets = append(msg.Offsets, &pb.Offset{
			Type:        pb.OffsetType(t),
			First:       o.First,
			Length:      o.Length,
			ContentForm: o.ContentForm,
			Value:       o.Value,
		})
	}
	return msg
}

func labelFromProto(msg *pb.Label) *Label {
	l := &Label{
		Annotator: annotatorFromProto(msg.GetAnnotator()),
		Target:    targetFromProto(msg.GetTarget()),
	}
	for _, o := range msg.GetOffsets() {
		if l.Offsets == nil {
			l.Offsets = make(map[OffsetType]*Offset)
		}
		l.Offsets[OffsetType(o.GetType())] = &Offset{
			Type:        OffsetType(o.GetType()),
			First:       o.GetFirst(),
			Length:      o.GetLength(),
			ContentForm: o.GetContentForm(),
			Value:       o.GetValue(),
		}
	}
	return l
}

func ratingToProto(r *Rating) *pb.Rating {
	msg := &pb.Rating{}
	if r == nil {
		return msg
	}
	msg.Annotator = annotatorToProto(r.Annotator)
	msg.Target = targetToProto(r.Target)
	msg.ContainsMention = r.ContainsMention
	msg.Mentions = r.Mentions
	return msg
}

func ratingFromProto(msg *pb.Rating) *Rating {
	return &Rating{
		Annotator:       annotatorFromProto(msg.GetAnnotator()),
		Target:          targetFromProto(msg.GetTarget()),
		ContainsMention: msg.GetContainsMention(),
		Mentions:        msg.GetMentions(),
	}
}
