//
// Copyright 2020 FRAGATA COMPUTER SYSTEMS AG
// Copyright 2014-2016 The Swiss AI Lab IDSIA
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

//
// Based on Brainstorm, a fast, flexible and fun neural networks library.
// Ported from Python to Go and partly modified by FRAGATA COMPUTER SYSTEMS AG.
//

package data

import "fragata/brainstorm/backends"

//
//    Undivided
//

// Undivided processes the entire data in one block (only one iteration).
type Undivided struct {
    iteratorBase
    totalSize int
}

func NewUndivided(namedData NamedData) (*Undivided, error) {
    if _, err := assertCorrectDataFormat(namedData); err != nil {
        return nil, err
    }
    u := new(Undivided)
    u.iteratorBase.Init(namedData)
    for _, data := range namedData {
        u.totalSize += data.Size()
    }
    return u, nil
}

// TotalSize is the element count of the whole dataset.
func(u *Undivided) TotalSize() int {
    return u.totalSize
}

func(u *Undivided) Produce(handler backends.Handler, verbose bool) Stream {
    return &undividedStream{data: u.data}
}

type undividedStream struct {
    data NamedData
    done bool
}

func(s *undividedStream) Next() (NamedData, bool) {
    if s.done {
        return nil, false
    }
    s.done = true
    return cloneBatch(s.data), true
}
