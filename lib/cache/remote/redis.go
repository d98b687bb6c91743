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

package remote

import (
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
)

type RedisConfig struct {
	Host string
	Port int
}

func NewRedisClient(conf RedisConfig) Client {
	return &redisClient{
		Client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", conf.Host, conf.Port)}),
	}
}

type redisClient struct {
	*redis.Client
}

type redisGetPipeline struct {
	pipe redis.Pipeliner
	keys []string
	cmds map[string]*redis.StringCmd
}

type redisSetPipeline struct {
	pipe redis.Pipeliner
	cmds map[string]*redis.StatusCmd
}

func (r *redisClient) NewGetPipeline(size int) GetPipeline {
	return &redisGetPipeline{
		pipe: r.Pipeline(),
		keys: make([]string, 0, size),
		cmds: make(map[string]*redis.StringCmd, size),
	}
}

func (r *redisClient) NewSetPipeline(size int) SetPipeline {
	return &redisSetPipeline{
		pipe: r.Pipeline(),
		cmds: make(map[string]*redis.StatusCmd, size),
	}
}

func (r *redisClient) Ready() bool {
	return r.Ping().Err() == nil
}

func (r *redisSetPipeline) Set(key string, data []byte) {
	r.cmds[key] = r.pipe.Set(key, data, 0)
}

func (r *redisSetPipeline) ExecSet() error {
	if len(r.cmds) == 0 {
		return nil
	}
	_, err := r.pipe.Exec()
	r.cmds = make(map[string]*redis.StatusCmd, len(r.cmds))
	return err
}

func (r *redisSetPipeline) Size() int {
	return len(r.cmds)
}

func (r *redisGetPipeline) Get(key string) {
	if _, ok := r.cmds[key]; ok {
		return
	}
	r.keys = append(r.keys, key)
	r.cmds[key] = r.pipe.Get(key)
}

func (r *redisGetPipeline) ExecGet(onResult func(key string, lookup *cache.Lookup) error) error {
	if len(r.keys) == 0 {
		return nil
	}

	keys, cmds := r.keys, r.cmds
	r.keys = make([]string, 0, len(keys))
	r.cmds = make(map[string]*redis.StringCmd, len(keys))

	// Exec reports redis.Nil when any key is missing; each command is checked below.
	_, err := r.pipe.Exec()
	if err != nil && err != redis.Nil {
		return err
	}

	for _, key := range keys {
		b, err := cmds[key].Bytes()
		if err == redis.Nil {
			if err = onResult(key, nil); err != nil {
				return err
			}
			continue
		} else if err != nil {
			return err
		}

		var lookup cache.Lookup
		if err = json.Unmarshal(b, &lookup); err != nil {
			return fmt.Errorf("decoding lookup for %q: %w", key, err)
		}

		if err = onResult(key, &lookup); err != nil {
			return err
		}
	}

	return nil
}

func (r *redisGetPipeline) Size() int {
	return len(r.keys)
}
