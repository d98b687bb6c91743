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

package local

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
)

func TestMapStore(t *testing.T) {
	store := New()
	lookup := &cache.Lookup{Dictionary: "people", TargetIDs: []string{"1"}}

	assert.Nil(t, store.Get("john smith"))

	store.Set("john smith", lookup)
	assert.Equal(t, lookup, store.Get("john smith"))
	assert.Equal(t, 1, store.Len())

	store.Delete("john smith")
	assert.Nil(t, store.Get("john smith"))
	assert.Equal(t, 0, store.Len())
}

func TestMapStoreRange(t *testing.T) {
	store := New()
	store.Set("a", &cache.Lookup{Dictionary: "d"})
	store.Set("b", &cache.Lookup{Dictionary: "d"})

	seen := map[string]bool{}
	err := store.Range(func(key string, lookup *cache.Lookup) error {
		seen[key] = true
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, map[string]bool{"a": true, "b": true}, seen)
}

func TestMapStoreConcurrentAccess(t *testing.T) {
	store := New()
	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			store.Set(key, &cache.Lookup{Dictionary: "d"})
			store.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
