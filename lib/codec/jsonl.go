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

package codec

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"

	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

// jsonReader reads one JSON encoded stream item per line.
type jsonReader struct {
	dec    *json.Decoder
	record int
}

func newJSONReader(r io.Reader) *jsonReader {
	return &jsonReader{dec: json.NewDecoder(bufio.NewReader(r))}
}

func (j *jsonReader) Read() (*streamitem.StreamItem, error) {
	var item streamitem.StreamItem
	if err := j.dec.Decode(&item); err == io.EOF {
		return nil, io.EOF
	} else if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &DecodeError{Record: j.record, Err: err}
	}
	j.record++
	return &item, nil
}

type jsonWriter struct {
	bw     *bufio.Writer
	enc    *json.Encoder
	closer io.Closer
}

func newJSONWriter(w io.WriteCloser) *jsonWriter {
	bw := bufio.NewWriter(w)
	return &jsonWriter{bw: bw, enc: json.NewEncoder(bw), closer: w}
}

func (j *jsonWriter) Write(item *streamitem.StreamItem) error {
	return j.enc.Encode(item)
}

func (j *jsonWriter) Flush() error {
	if err := j.bw.Flush(); err != nil {
		return err
	}
	return j.closer.Close()
}
