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
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"

	"github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/gen/mocks"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/blocklist"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/codec"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/matcher"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/resolver"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/testhelpers"
)

var _ = ginkgo.Describe("Pipeline", func() {
	var (
		johnSmith matcher.Matcher
		writer    *mocks.Writer
	)

	newPipeline := func(opts Options) *Pipeline {
		if opts.TextSource == "" {
			opts.TextSource = CleanVisible
		}
		return NewPipeline(testAnnotator, johnSmith, resolver.NewFixed(""), nil, opts)
	}

	ginkgo.BeforeEach(func() {
		johnSmith = matcher.NewRegexpMatcher([]matcher.Pattern{{Expr: regexp.MustCompile(`John Smith`)}})
		writer = testhelpers.NewMockWriter()
	})

	ginkgo.Describe("a stream with a match, a miss and an empty record", func() {
		var (
			alice, contact, empty *streamitem.StreamItem
			pipeline              *Pipeline
			err                   error
		)

		ginkgo.BeforeEach(func() {
			alice = testhelpers.Item("a", "Alice met Bob")
			contact = testhelpers.Item("b", "Contact John Smith today")
			empty = &streamitem.StreamItem{DocID: "c", Body: &streamitem.ContentItem{}}
			pipeline = newPipeline(Options{})

			err = pipeline.Run(context.Background(), testhelpers.NewMockReader(alice, contact, empty), writer)
		})

		ginkgo.It("aborts on the empty record", func() {
			var emptyErr *EmptyContentError
			Expect(errors.As(err, &emptyErr)).To(BeTrue())
			Expect(emptyErr.DocID).To(Equal("c"))
		})

		ginkgo.It("writes only the matching record and flushes once", func() {
			Expect(testhelpers.Written(writer)).To(Equal([]*streamitem.StreamItem{contact}))
			writer.AssertNumberOfCalls(ginkgo.GinkgoT(), "Flush", 1)
		})

		ginkgo.It("labels the match in characters of the scanned field", func() {
			labels := contact.Body.Labels[testAnnotator.AnnotatorID]
			Expect(labels).To(HaveLen(1))
			Expect(labels[0].Target.TargetID).To(Equal("1"))
			Expect(labels[0].Annotator).To(Equal(testAnnotator))
			chars := labels[0].Offsets[streamitem.OffsetTypeChars]
			Expect(chars.First).To(BeEquivalentTo(8))
			Expect(chars.Length).To(BeEquivalentTo(10))
			Expect(chars.ContentForm).To(Equal("clean_visible"))
		})

		ginkgo.It("rates the target with its mentions", func() {
			Expect(contact.Ratings[testAnnotator.AnnotatorID]).To(Equal([]*streamitem.Rating{{
				Annotator:       testAnnotator,
				Target:          &streamitem.Target{TargetID: "1"},
				ContainsMention: true,
				Mentions:        []string{"John Smith"},
			}}))
		})

		ginkgo.It("leaves the unmatched record without annotations", func() {
			Expect(alice.Body.Labels).To(BeEmpty())
			Expect(alice.Ratings).To(BeEmpty())
		})

		ginkgo.It("counts what happened", func() {
			Expect(pipeline.Stats()).To(Equal(Counters{Processed: 2, Matches: 1, Written: 1}))
		})
	})

	ginkgo.Describe("skipping records without content", func() {
		ginkgo.It("continues past the empty record", func() {
			contact := testhelpers.Item("b", "Contact John Smith today")
			reader := testhelpers.NewMockReader(&streamitem.StreamItem{DocID: "c"}, contact)
			pipeline := newPipeline(Options{OnEmpty: Skip})

			Expect(pipeline.Run(context.Background(), reader, writer)).To(Succeed())
			Expect(testhelpers.Written(writer)).To(Equal([]*streamitem.StreamItem{contact}))
			Expect(pipeline.Stats()).To(Equal(Counters{Processed: 1, Matches: 1, Written: 1, SkippedEmpty: 1}))
		})
	})

	ginkgo.Describe("negate", func() {
		ginkgo.It("writes the records without matches", func() {
			alice := testhelpers.Item("a", "Alice met Bob")
			contact := testhelpers.Item("b", "Contact John Smith today")
			pipeline := newPipeline(Options{Negate: true})

			Expect(pipeline.Run(context.Background(), testhelpers.NewMockReader(alice, contact), writer)).To(Succeed())
			Expect(testhelpers.Written(writer)).To(Equal([]*streamitem.StreamItem{alice}))
			Expect(pipeline.Stats()).To(Equal(Counters{Processed: 2, Matches: 1, Written: 1}))
		})
	})

	ginkgo.Describe("falling back to raw", func() {
		ginkgo.It("labels the raw field", func() {
			item := &streamitem.StreamItem{DocID: "r", Body: &streamitem.ContentItem{Raw: []byte("Ask John Smith")}}
			pipeline := newPipeline(Options{})

			Expect(pipeline.Run(context.Background(), testhelpers.NewMockReader(item), writer)).To(Succeed())
			labels := item.Body.Labels[testAnnotator.AnnotatorID]
			Expect(labels).To(HaveLen(1))
			Expect(labels[0].Offsets[streamitem.OffsetTypeChars].ContentForm).To(Equal("raw"))
		})
	})

	ginkgo.Describe("blocklisted matches", func() {
		ginkgo.It("are neither annotated nor counted", func() {
			bl := &blocklist.Blocklist{CaseInsensitive: map[string]bool{"john smith": true}}
			pipeline := NewPipeline(testAnnotator, johnSmith, resolver.NewFixed(""), bl, Options{TextSource: CleanVisible})
			item := testhelpers.Item("b", "Contact John Smith today")

			Expect(pipeline.Run(context.Background(), testhelpers.NewMockReader(item), writer)).To(Succeed())
			Expect(testhelpers.Written(writer)).To(BeEmpty())
			Expect(pipeline.Stats().Matches).To(BeZero())
		})
	})

	ginkgo.Describe("matches without targets", func() {
		ginkgo.It("are not counted", func() {
			store := local.New()
			store.Set("john smith", &cache.Lookup{Dictionary: "people", TargetIDs: []string{"P1"}})
			people := matcher.NewRegexpMatcher([]matcher.Pattern{{Expr: regexp.MustCompile(`John Smith|Jane Doe`)}})
			pipeline := NewPipeline(testAnnotator, people, resolver.NewLookup(store), nil, Options{TextSource: CleanVisible})
			item := testhelpers.Item("b", "Contact John Smith or Jane Doe")

			Expect(pipeline.Run(context.Background(), testhelpers.NewMockReader(item), writer)).To(Succeed())
			Expect(item.Body.Labels[testAnnotator.AnnotatorID]).To(HaveLen(1))
			Expect(pipeline.Stats()).To(Equal(Counters{Processed: 1, Matches: 1, Written: 1}))
		})
	})

	ginkgo.Describe("a corrupt record", func() {
		ginkgo.It("stops the stream with the decode error after flushing", func() {
			decodeErr := &codec.DecodeError{Record: 2, Err: io.ErrUnexpectedEOF}
			contact := testhelpers.Item("b", "Contact John Smith today")
			reader := testhelpers.NewMockReaderWithError(decodeErr, contact)
			pipeline := newPipeline(Options{})

			err := pipeline.Run(context.Background(), reader, writer)

			Expect(err).To(MatchError(decodeErr))
			Expect(errors.Is(err, io.EOF)).To(BeFalse())
			Expect(testhelpers.Written(writer)).To(HaveLen(1))
			writer.AssertNumberOfCalls(ginkgo.GinkgoT(), "Flush", 1)
		})
	})

	ginkgo.Describe("a failing writer", func() {
		ginkgo.It("stops the stream and still flushes", func() {
			failing := &mocks.Writer{}
			failing.On("Write", mock.Anything).Return(errors.New("broken pipe"))
			failing.On("Flush").Return(nil)
			pipeline := newPipeline(Options{})

			err := pipeline.Run(context.Background(), testhelpers.NewMockReader(testhelpers.Item("b", "John Smith")), failing)

			Expect(err).To(MatchError(ContainSubstring("broken pipe")))
			failing.AssertNumberOfCalls(ginkgo.GinkgoT(), "Flush", 1)
			Expect(pipeline.Stats().Written).To(BeZero())
		})
	})

	ginkgo.Describe("a failing flush", func() {
		ginkgo.It("reports the flush error", func() {
			failing := &mocks.Writer{}
			failing.On("Flush").Return(errors.New("disk full"))
			pipeline := newPipeline(Options{})

			err := pipeline.Run(context.Background(), testhelpers.NewMockReader(), failing)

			Expect(err).To(MatchError(ContainSubstring("disk full")))
		})
	})

	ginkgo.Describe("a cancelled context", func() {
		ginkgo.It("drains without reading", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			reader := testhelpers.NewMockReader(testhelpers.Item("b", "John Smith"))
			pipeline := newPipeline(Options{})

			Expect(pipeline.Run(ctx, reader, writer)).To(Succeed())
			reader.AssertNotCalled(ginkgo.GinkgoT(), "Read")
			writer.AssertNumberOfCalls(ginkgo.GinkgoT(), "Flush", 1)
		})
	})

	ginkgo.Describe("the protobuf codec", func() {
		ginkgo.It("carries annotations through a stream", func() {
			var in, out bytes.Buffer
			w, err := codec.NewWriter(&in, codec.Protobuf, codec.Gzip)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Write(testhelpers.Item("a", "Alice met Bob"))).To(Succeed())
			Expect(w.Write(testhelpers.Item("b", "Contact John Smith today"))).To(Succeed())
			Expect(w.Flush()).To(Succeed())

			r, err := codec.NewReader(&in, codec.Protobuf, codec.Gzip)
			Expect(err).NotTo(HaveOccurred())
			annotated, err := codec.NewWriter(&out, codec.JSONLines, codec.NoCompression)
			Expect(err).NotTo(HaveOccurred())
			Expect(newPipeline(Options{}).Run(context.Background(), r, annotated)).To(Succeed())

			result, err := codec.NewReader(&out, codec.JSONLines, codec.NoCompression)
			Expect(err).NotTo(HaveOccurred())
			item, err := result.Read()
			Expect(err).NotTo(HaveOccurred())
			Expect(item.DocID).To(Equal("b"))
			Expect(item.Ratings[testAnnotator.AnnotatorID][0].Mentions).To(Equal([]string{"John Smith"}))
			_, err = result.Read()
			Expect(err).To(Equal(io.EOF))
		})
	})
})
