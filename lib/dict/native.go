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

package dict

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

func NewNativeReader() Reader {
	return nativeReader{}
}

type nativeReader struct{}

// Read parses one json encoded Entry per line.
func (p nativeReader) Read(r io.Reader, onEntry func(entry Entry) error) error {
	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 0, 64*1024), 16<<20)
	line := 0
	for scn.Scan() {
		line++
		if len(scn.Bytes()) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(scn.Bytes(), &e); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := onEntry(e); err != nil {
			return err
		}
	}
	return scn.Err()
}
