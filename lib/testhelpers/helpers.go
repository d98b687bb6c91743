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

package testhelpers

import (
	"io"

	"github.com/stretchr/testify/mock"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/gen/mocks"
	"gitlab.mdcatapult.io/informatics/software-engineering/stream-annotator/lib/streamitem"
)

// Item returns a record with the given clean_visible text.
func Item(docID, cleanVisible string) *streamitem.StreamItem {
	return &streamitem.StreamItem{
		Version: streamitem.Version,
		DocID:   docID,
		Body:    &streamitem.ContentItem{CleanVisible: cleanVisible},
	}
}

// NewMockReader returns each item once and then io.EOF.
func NewMockReader(items ...*streamitem.StreamItem) *mocks.Reader {
	return NewMockReaderWithError(io.EOF, items...)
}

// NewMockReaderWithError returns each item once and then err.
func NewMockReaderWithError(err error, items ...*streamitem.StreamItem) *mocks.Reader {
	reader := &mocks.Reader{}
	for _, item := range items {
		reader.On("Read").Return(item, nil).Once()
	}
	reader.On("Read").Return(nil, err)
	return reader
}

// NewMockWriter accepts every write and flush.
func NewMockWriter() *mocks.Writer {
	writer := &mocks.Writer{}
	writer.On("Write", mock.Anything).Return(nil)
	writer.On("Flush").Return(nil)
	return writer
}

// Written returns the items passed to the writer in order.
func Written(writer *mocks.Writer) []*streamitem.StreamItem {
	var items []*streamitem.StreamItem
	for _, call := range writer.Calls {
		if call.Method == "Write" {
			items = append(items, call.Arguments.Get(0).(*streamitem.StreamItem))
		}
	}
	return items
}
