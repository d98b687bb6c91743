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

package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/gen/mocks"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/local"
)

func newStore(n int) local.Client {
	store := local.New()
	for i := 0; i < n; i++ {
		store.Set(string(rune('a'+i)), &cache.Lookup{Dictionary: "people", TargetIDs: []string{"P001"}})
	}
	return store
}

func TestUploadBatchesPipelines(t *testing.T) {
	size := 0
	pipe := &mocks.SetPipeline{}
	pipe.On("Set", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		size++
		var lookup cache.Lookup
		require.NoError(t, json.Unmarshal(args.Get(1).([]byte), &lookup))
		assert.Equal(t, []string{"P001"}, lookup.TargetIDs)
	})
	pipe.On("Size").Return(func() int { return size })
	pipe.On("ExecSet").Run(func(mock.Arguments) { size = 0 }).Return(nil)

	client := &mocks.Client{}
	client.On("NewSetPipeline", 2).Return(pipe)

	keys, err := upload(newStore(5), client, 2)

	require.NoError(t, err)
	assert.Equal(t, 5, keys)
	pipe.AssertNumberOfCalls(t, "Set", 5)
	pipe.AssertNumberOfCalls(t, "ExecSet", 3)
	client.AssertNumberOfCalls(t, "NewSetPipeline", 3)
}

func TestUploadStopsOnError(t *testing.T) {
	pipe := &mocks.SetPipeline{}
	pipe.On("Set", mock.Anything, mock.Anything)
	pipe.On("Size").Return(1)
	pipe.On("ExecSet").Return(errors.New("connection refused"))

	client := &mocks.Client{}
	client.On("NewSetPipeline", 1).Return(pipe)

	_, err := upload(newStore(3), client, 1)

	assert.EqualError(t, err, "connection refused")
	pipe.AssertNumberOfCalls(t, "ExecSet", 1)
}
