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
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

// MaxRecordSize bounds the length prefix so a corrupt prefix cannot make the
// reader allocate an arbitrary amount of memory.
const MaxRecordSize = 256 << 20

// protobufReader reads records framed as a uvarint length followed by the
// protobuf encoded stream item.
type protobufReader struct {
	r      *bufio.Reader
	record int
}

func newProtobufReader(r io.Reader) *protobufReader {
	return &protobufReader{r: bufio.NewReader(r)}
}

func (p *protobufReader) Read() (*streamitem.StreamItem, error) {
	size, err := binary.ReadUvarint(p.r)
	if err == io.EOF {
		return nil, io.EOF
	} else if err != nil {
		return nil, p.decodeError(err)
	}
	if size > MaxRecordSize {
		return nil, p.decodeError(fmt.Errorf("record length %d exceeds %d bytes", size, MaxRecordSize))
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(p.r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, p.decodeError(err)
	}

	item, err := streamitem.Unmarshal(buf)
	if err != nil {
		return nil, p.decodeError(err)
	}
	p.record++
	return item, nil
}

// decodeError never wraps io.EOF, which is reserved for a clean end.
func (p *protobufReader) decodeError(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return &DecodeError{Record: p.record, Err: err}
}

type protobufWriter struct {
	bw     *bufio.Writer
	closer io.Closer
	prefix [binary.MaxVarintLen64]byte
}

func newProtobufWriter(w io.WriteCloser) *protobufWriter {
	return &protobufWriter{bw: bufio.NewWriter(w), closer: w}
}

func (p *protobufWriter) Write(item *streamitem.StreamItem) error {
	b, err := streamitem.Marshal(item)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", item.DocID, err)
	}
	n := binary.PutUvarint(p.prefix[:], uint64(len(b)))
	if _, err := p.bw.Write(p.prefix[:n]); err != nil {
		return err
	}
	_, err = p.bw.Write(b)
	return err
}

func (p *protobufWriter) Flush() error {
	if err := p.bw.Flush(); err != nil {
		return err
	}
	return p.closer.Close()
}
