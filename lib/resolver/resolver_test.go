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
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/gen/mocks"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/matcher"
)

var matches = []matcher.Match{
	{Start: 0, Length: 10, Text: "John Smith", Pattern: 0},
	{Start: 15, Length: 7, Text: "calcium", Pattern: 1},
	{Start: 30, Length: 10, Text: "JOHN SMITH", Pattern: matcher.NoPattern},
}

func TestFixed(t *testing.T) {
	targets, err := NewFixed("").Resolve(context.Background(), matches)

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1"}, {"1"}, {"1"}}, targets)
}

func TestPatternTable(t *testing.T) {
	table := NewPatternTable([]matcher.Pattern{
		{Expr: regexp.MustCompile(`John Smith`), TargetIDs: []string{"person", "author"}},
		{Expr: regexp.MustCompile(`calcium`)},
	}, "1")

	targets, err := table.Resolve(context.Background(), matches)

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"person", "author"}, {"1"}, {"1"}}, targets)
}

func TestPatternTableWithoutFallback(t *testing.T) {
	table := NewPatternTable([]matcher.Pattern{{Expr: regexp.MustCompile(`x`)}}, "")

	targets, err := table.Resolve(context.Background(), matches[:1])

	require.NoError(t, err)
	assert.Equal(t, [][]string{nil}, targets)
}

func TestLookup(t *testing.T) {
	store := local.New()
	store.Set("john smith", &cache.Lookup{TargetIDs: []string{"P001"}})

	targets, err := NewLookup(store).Resolve(context.Background(), matches)

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"P001"}, nil, {"P001"}}, targets)
}

func TestRemoteDeduplicatesKeys(t *testing.T) {
	pipe := &mocks.GetPipeline{}
	pipe.On("Get", "john smith").Once()
	pipe.On("Get", "calcium").Once()
	pipe.On("Size").Return(1).Once()
	pipe.On("Size").Return(2)
	pipe.On("ExecGet", mock.Anything).Return(func(onResult func(string, *cache.Lookup) error) error {
		if err := onResult("john smith", &cache.Lookup{TargetIDs: []string{"P001"}}); err != nil {
			return err
		}
		return onResult("calcium", nil)
	}).Once()

	client := &mocks.Client{}
	client.On("NewGetPipeline", 10).Return(pipe)

	targets, err := NewRemote(client, 10).Resolve(context.Background(), matches)

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"P001"}, nil, {"P001"}}, targets)
	pipe.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestRemoteExecutesFullPipelines(t *testing.T) {
	pipe := &mocks.GetPipeline{}
	pipe.On("Get", mock.Anything)
	pipe.On("Size").Return(1).Twice()
	pipe.On("Size").Return(0).Once()
	pipe.On("ExecGet", mock.Anything).Return(nil).Twice()

	client := &mocks.Client{}
	client.On("NewGetPipeline", 1).Return(pipe)

	targets, err := NewRemote(client, 1).Resolve(context.Background(), matches[:2])

	require.NoError(t, err)
	assert.Equal(t, [][]string{nil, nil}, targets)
	pipe.AssertNumberOfCalls(t, "ExecGet", 2)
}

func TestRemoteError(t *testing.T) {
	pipe := &mocks.GetPipeline{}
	pipe.On("Get", mock.Anything)
	pipe.On("Size").Return(1)
	pipe.On("ExecGet", mock.Anything).Return(errors.New("connection refused"))

	client := &mocks.Client{}
	client.On("NewGetPipeline", 5).Return(pipe)

	_, err := NewRemote(client, 5).Resolve(context.Background(), matches)

	assert.EqualError(t, err, "connection refused")
}
