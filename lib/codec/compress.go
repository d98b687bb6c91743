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
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func compress(w io.Writer, compression Compression) (io.WriteCloser, error) {
	switch compression {
	case NoCompression, "":
		return nopCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	}
	return nil, fmt.Errorf("unsupported compression %q", compression)
}

// lazyGzipReader defers reading the gzip header to the first Read so an
// empty input is a clean end of stream rather than a header error.
type lazyGzipReader struct {
	src io.Reader
	zr  *gzip.Reader
}

func (l *lazyGzipReader) Read(p []byte) (int, error) {
	if l.zr == nil {
		zr, err := gzip.NewReader(l.src)
		if err != nil {
			return 0, err
		}
		l.zr = zr
	}
	return l.zr.Read(p)
}

// zstdReader releases the decoder once the stream ends or fails. Later reads
// return the same error.
type zstdReader struct {
	dec *zstd.Decoder
	err error
}

func (z *zstdReader) Read(p []byte) (int, error) {
	if z.dec == nil {
		return 0, z.err
	}
	n, err := z.dec.Read(p)
	if err != nil {
		z.dec.Close()
		z.dec = nil
		z.err = err
	}
	return n, err
}

func decompress(r io.Reader, compression Compression) (io.Reader, error) {
	switch compression {
	case NoCompression, "":
		return r, nil
	case Gzip:
		return &lazyGzipReader{src: r}, nil
	case Zstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return &zstdReader{dec: dec}, nil
	}
	return nil, fmt.Errorf("unsupported compression %q", compression)
}
