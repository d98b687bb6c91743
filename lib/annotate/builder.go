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
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

// Annotate attaches labels to the record body and one rating per aggregated
// target, all under the annotator's id. Nothing is added when there is
// nothing to attach.
func Annotate(item *streamitem.StreamItem, annotator *streamitem.Annotator, labels []*streamitem.Label, agg *Aggregate) {
	for _, label := range labels {
		label.Annotator = annotator
	}
	item.AddLabels(annotator.AnnotatorID, labels...)

	if agg == nil {
		return
	}
	ratings := make([]*streamitem.Rating, 0, agg.Len())
	for _, targetID := range agg.Targets() {
		ratings = append(ratings, &streamitem.Rating{
			Annotator:       annotator,
			Target:          &streamitem.Target{TargetID: targetID},
			ContainsMention: true,
			Mentions:        agg.Mentions(targetID),
		})
	}
	item.AddRatings(annotator.AnnotatorID, ratings...)
}
