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

// Package codec reads and writes streams of stream items.
//
// A Reader returns io.EOF only when the input ends cleanly on a record
// boundary. Truncated or malformed records surface as *DecodeError so
// callers can tell corruption apart from the end of the stream.
package codec

import (
	"fmt"
	"io"

	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

type Format string

const (
	Protobuf  Format = "protobuf"
	JSONLines Format = "jsonl"
)

type Compression string

const (
	NoCompression Compression = "none"
	Gzip          Compression = "gzip"
	Zstd          Compression = "zstd"
)

type Reader interface {
	Read() (*streamitem.StreamItem, error)
}

// Writer buffers output. Flush must be called once when the stream is done;
// for compressed streams it also writes the compression trailer.
type Writer interface {
	Write(item *streamitem.StreamItem) error
	Flush() error
}

// DecodeError reports a truncated or malformed record. Record is the zero
// based position of the record in the stream.
type DecodeError struct {
	Record int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding record %d: %v", e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Protobuf, JSONLines:
		return f, nil
	case "":
		return Protobuf, nil
	}
	return "", fmt.Errorf("unsupported record format %q", s)
}

func ParseCompression(s string) (Compression, error) {
	switch c := Compression(s); c {
	case NoCompression, Gzip, Zstd:
		return c, nil
	case "":
		return NoCompression, nil
	}
	return "", fmt.Errorf("unsupported compression %q", s)
}

func NewReader(r io.Reader, format Format, compression Compression) (Reader, error) {
	decompressed, err := decompress(r, compression)
	if err != nil {
		return nil, err
	}
	switch format {
	case Protobuf:
		return newProtobufReader(decompressed), nil
	case JSONLines:
		return newJSONReader(decompressed), nil
	}
	return nil, fmt.Errorf("unsupported record format %q", format)
}

func NewWriter(w io.Writer, format Format, compression Compression) (Writer, error) {
	compressed, err := compress(w, compression)
	if err != nil {
		return nil, err
	}
	switch format {
	case Protobuf:
		return newProtobufWriter(compressed), nil
	case JSONLines:
		return newJSONWriter(compressed), nil
	}
	return nil, fmt.Errorf("unsupported record format %q", format)
}
