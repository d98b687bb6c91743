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
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/blocklist"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/codec"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/matcher"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/resolver"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

// OnEmpty decides what happens to a record without any content.
type OnEmpty string

const (
	Abort OnEmpty = "abort"
	Skip  OnEmpty = "skip"
)

func ParseOnEmpty(s string) (OnEmpty, error) {
	switch o := OnEmpty(s); o {
	case Abort, Skip:
		return o, nil
	case "":
		return Abort, nil
	}
	return "", lib.NewConfigurationError("on_empty", s, "must be abort or skip")
}

type Options struct {
	TextSource TextSource
	// Negate writes the records that did not match instead of those that did.
	Negate  bool
	OnEmpty OnEmpty
}

type Counters struct {
	Processed    int64 `json:"processed"`
	Matches      int64 `json:"matches"`
	Written      int64 `json:"written"`
	SkippedEmpty int64 `json:"skipped_empty"`
}

// Pipeline annotates one record stream. Its counters may be read from other
// goroutines while Run is in progress.
type Pipeline struct {
	annotator *streamitem.Annotator
	matcher   matcher.Matcher
	resolver  resolver.Resolver
	blocklist *blocklist.Blocklist
	opts      Options

	processed    int64
	matches      int64
	written      int64
	skippedEmpty int64
}

// NewPipeline builds a pipeline. bl may be nil.
func NewPipeline(annotator *streamitem.Annotator, m matcher.Matcher, r resolver.Resolver, bl *blocklist.Blocklist, opts Options) *Pipeline {
	if opts.OnEmpty == "" {
		opts.OnEmpty = Abort
	}
	return &Pipeline{
		annotator: annotator,
		matcher:   m,
		resolver:  r,
		blocklist: bl,
		opts:      opts,
	}
}

func (p *Pipeline) Annotator() *streamitem.Annotator {
	return p.annotator
}

func (p *Pipeline) Stats() Counters {
	return Counters{
		Processed:    atomic.LoadInt64(&p.processed),
		Matches:      atomic.LoadInt64(&p.matches),
		Written:      atomic.LoadInt64(&p.written),
		SkippedEmpty: atomic.LoadInt64(&p.skippedEmpty),
	}
}

// Process annotates item in place and reports whether any target matched.
func (p *Pipeline) Process(ctx context.Context, item *streamitem.StreamItem) (bool, error) {
	scanned, source, err := ResolveText(item, p.opts.TextSource)
	if err != nil {
		return false, err
	}

	matches, err := p.matcher.FindMatches(scanned)
	if err != nil {
		return false, fmt.Errorf("matching %s: %w", source, err)
	}
	if p.blocklist != nil {
		matches = p.blocklist.FilterMatches(matches)
	}

	targetIDs, err := p.resolver.Resolve(ctx, matches)
	if err != nil {
		return false, fmt.Errorf("resolving targets: %w", err)
	}

	labels, agg := AggregateMatches(scanned, matches, targetIDs, source)
	Annotate(item, p.annotator, labels, agg)

	atomic.AddInt64(&p.matches, int64(agg.Labelled()))
	return agg.Len() > 0, nil
}

// Run reads records until the reader is drained, the context is cancelled or
// an error occurs. The writer is flushed exactly once before Run returns.
func (p *Pipeline) Run(ctx context.Context, r codec.Reader, w codec.Writer) (err error) {
	logger := log.With().
		Str("run_id", uuid.New().String()).
		Str("annotator_id", p.annotator.AnnotatorID).
		Logger()
	logger.Info().
		Str("text_source", string(p.opts.TextSource)).
		Bool("negate", p.opts.Negate).
		Str("on_empty", string(p.opts.OnEmpty)).
		Msg("annotating stream")

	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			logger.Error().Err(flushErr).Msg("could not flush output")
			if err == nil {
				err = fmt.Errorf("flushing output: %w", flushErr)
			}
		}
		p.logSummary(logger)
	}()

	for {
		if ctx.Err() != nil {
			logger.Warn().Int64("processed", atomic.LoadInt64(&p.processed)).Msg("stream interrupted")
			return nil
		}

		item, readErr := r.Read()
		if readErr == io.EOF {
			return nil
		} else if readErr != nil {
			logger.Error().Err(readErr).Int64("processed", atomic.LoadInt64(&p.processed)).Msg("could not read record")
			return readErr
		}

		matched, processErr := p.Process(ctx, item)
		if processErr != nil {
			var empty *EmptyContentError
			if errors.As(processErr, &empty) && p.opts.OnEmpty == Skip {
				atomic.AddInt64(&p.skippedEmpty, 1)
				logger.Warn().Str("doc_id", item.DocID).Msg("skipping record without content")
				continue
			}
			logger.Error().Err(processErr).Str("doc_id", item.DocID).Int64("processed", atomic.LoadInt64(&p.processed)).Msg("could not process record")
			return processErr
		}
		atomic.AddInt64(&p.processed, 1)

		if matched == p.opts.Negate {
			continue
		}
		if writeErr := w.Write(item); writeErr != nil {
			logger.Error().Err(writeErr).Str("doc_id", item.DocID).Int64("processed", atomic.LoadInt64(&p.processed)).Msg("could not write record")
			return fmt.Errorf("writing record %s: %w", item.DocID, writeErr)
		}
		atomic.AddInt64(&p.written, 1)
	}
}

func (p *Pipeline) logSummary(logger zerolog.Logger) {
	stats := p.Stats()
	event := logger.Info().
		Int64("processed", stats.Processed).
		Int64("matches", stats.Matches).
		Int64("written", stats.Written).
		Int64("skipped_empty", stats.SkippedEmpty)
	if p.opts.Negate {
		event.Msg("stream drained, written records are those without matches")
		return
	}
	event.Msg("stream drained")
}
