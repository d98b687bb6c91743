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

package resolver

import (
	"context"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/remote"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/matcher"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/text"
)

// Remote resolves matches through Redis or Elasticsearch. Distinct keys of a
// record are fetched in pipelines of at most pipelineSize lookups.
type Remote struct {
	client       remote.Client
	pipelineSize int
}

func NewRemote(client remote.Client, pipelineSize int) Remote {
	if pipelineSize < 1 {
		pipelineSize = 1
	}
	return Remote{client: client, pipelineSize: pipelineSize}
}

func (r Remote) Resolve(ctx context.Context, matches []matcher.Match) ([][]string, error) {
	keys := make([]string, len(matches))
	found := make(map[string][]string, len(matches))

	pipe := r.client.NewGetPipeline(r.pipelineSize)
	onResult := func(key string, lookup *cache.Lookup) error {
		if lookup != nil {
			found[key] = lookup.TargetIDs
		}
		return nil
	}

	queued := make(map[string]bool, len(matches))
	for i, m := range matches {
		keys[i] = text.NormalizeKey(m.Text)
		if queued[keys[i]] {
			continue
		}
		queued[keys[i]] = true
		pipe.Get(keys[i])

		if pipe.Size() >= r.pipelineSize {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := pipe.ExecGet(onResult); err != nil {
				return nil, err
			}
		}
	}
	if pipe.Size() > 0 {
		if err := pipe.ExecGet(onResult); err != nil {
			return nil, err
		}
	}

	log.Debug().Int("keys", len(queued)).Int("found", len(found)).Msg("resolved matches")

	res := make([][]string, len(matches))
	for i, key := range keys {
		res[i] = found[key]
	}
	return res, nil
}
