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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v7"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/cache"
)

type ElasticsearchConfig struct {
	Host  string
	Port  int
	Index string
}

// Lookups are indexed with the normalised synonym as the document id.
type esResponse struct {
	Responses []struct {
		Hits struct {
			Hits []struct {
				ID     string       `json:"_id"`
				Source cache.Lookup `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
		Status int             `json:"status"`
		Error  json.RawMessage `json:"error,omitempty"`
	} `json:"responses"`
}

type esBulkResponse struct {
	Errors bool `json:"errors"`
}

func NewElasticsearchClient(conf ElasticsearchConfig) (Client, error) {
	c, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{fmt.Sprintf("http://%s:%d", conf.Host, conf.Port)},
	})
	if err != nil {
		return nil, err
	}
	return newElasticsearchClient(c, conf.Index), nil
}

func newElasticsearchClient(c *elasticsearch.Client, index string) *esClient {
	return &esClient{
		Client: c,
		index:  index,
	}
}

type esClient struct {
	*elasticsearch.Client
	index string
}

func (e *esClient) Ready() bool {
	res, err := e.Info()
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK
}

func (e *esClient) NewGetPipeline(size int) GetPipeline {
	return &esPipeline{
		esClient: e,
		buf:      bytes.NewBuffer(nil),
		keys:     make([]string, 0, size),
	}
}

func (e *esClient) NewSetPipeline(size int) SetPipeline {
	return &esPipeline{
		esClient: e,
		buf:      bytes.NewBuffer(nil),
		keys:     make([]string, 0, size),
	}
}

type esPipeline struct {
	*esClient
	buf  *bytes.Buffer
	keys []string
}

func (p *esPipeline) Set(key string, data []byte) {
	p.buf.WriteString(fmt.Sprintf(`{"index":{"_id":"%s"}}%s`, jsonEscape(key), "\n"))
	p.buf.Write(data)
	p.buf.WriteString("\n")
	p.keys = append(p.keys, key)
}

func (p *esPipeline) ExecSet() error {
	if len(p.keys) == 0 {
		return nil
	}
	defer p.reset()

	res, err := p.Bulk(p.buf, p.Bulk.WithIndex(p.index))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return errors.New(res.String())
	}

	var bulk esBulkResponse
	if err := json.NewDecoder(res.Body).Decode(&bulk); err != nil {
		return err
	}
	if bulk.Errors {
		return fmt.Errorf("bulk index into %s reported errors", p.index)
	}
	return nil
}

func (p *esPipeline) Get(key string) {
	p.buf.WriteString("{}\n")
	p.buf.WriteString(fmt.Sprintf(`{"size":1,"query":{"ids":{"values":["%s"]}}}%s`, jsonEscape(key), "\n"))
	p.keys = append(p.keys, key)
}

func jsonEscape(i string) string {
	b, err := json.Marshal(i)
	if err != nil {
		panic(err)
	}
	s := string(b)
	return s[1 : len(s)-1]
}

func (p *esPipeline) ExecGet(onResult func(key string, lookup *cache.Lookup) error) error {
	if len(p.keys) == 0 {
		return nil
	}
	keys := p.keys
	defer p.reset()

	res, err := p.Msearch(p.buf, p.Msearch.WithIndex(p.index))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return errors.New(res.String())
	}

	var esresponse esResponse
	if err := json.NewDecoder(res.Body).Decode(&esresponse); err != nil {
		return err
	}
	if len(esresponse.Responses) != len(keys) {
		return fmt.Errorf("msearch returned %d responses for %d queries", len(esresponse.Responses), len(keys))
	}

	for i, response := range esresponse.Responses {
		if response.Status != http.StatusOK {
			return fmt.Errorf("lookup of %q failed with status %d: %s", keys[i], response.Status, string(response.Error))
		}

		var lookup *cache.Lookup
		if len(response.Hits.Hits) > 0 {
			lookup = &response.Hits.Hits[0].Source
		}
		if err := onResult(keys[i], lookup); err != nil {
			return err
		}
	}
	return nil
}

func (p *esPipeline) Size() int {
	return len(p.keys)
}

func (p *esPipeline) reset() {
	p.buf.Reset()
	p.keys = p.keys[:0]
}
