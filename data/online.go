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

import (
    "fmt"
    "io"
    "os"

    "fragata/brainstorm/backends"
    "fragata/brainstorm/base"
)

//
//    Online
//

// Online iterates one sample at a time: every batch has sample extent 1
// and the full time extent. With shuffle enabled the sample order is a
// fresh permutation drawn from the owned random source on every Produce.
type Online struct {
    iteratorBase
    base.Seedable
    shuffle bool
    verbose Verbosity
    nrSequences int
    sampleSize int
    out io.Writer
}

func NewOnline(
        shuffle bool,
        verbose Verbosity,
        seed int64,
        namedData NamedData) (*Online, error) {
    nrSequences, err := assertCorrectDataFormat(namedData)
    if err != nil {
        return nil, err
    }
    o := new(Online)
    o.iteratorBase.Init(namedData)
    o.Seedable.Init(seed)
    o.shuffle = shuffle
    o.verbose = verbose
    o.nrSequences = nrSequences
    for _, data := range namedData {
        shape := data.Shape()
        o.sampleSize += shape[0] * base.IntsProd(shape[2:])
    }
    o.out = os.Stdout
    return o, nil
}

// NrSequences is the total number of samples in the dataset.
func(o *Online) NrSequences() int {
    return o.nrSequences
}

// SampleSize is the element count of one yielded sample across all names.
func(o *Online) SampleSize() int {
    return o.sampleSize
}

// SetOutput redirects progress text away from standard output.
func(o *Online) SetOutput(w io.Writer) {
    o.out = w
}

func(o *Online) Produce(handler backends.Handler, verbose bool) Stream {
    reporter := selectReporter(o.verbose.resolve(verbose), o.nrSequences)
    indices := make([]int, o.nrSequences)
    for i := range indices {
        indices[i] = i
    }
    if o.shuffle {
        o.Rnd().Shuffle(len(indices), func(i, j int) {
            indices[i], indices[j] = indices[j], indices[i]
        })
    }
    return &onlineStream{
        iter: o,
        indices: indices,
        reporter: reporter,
    }
}

type onlineStream struct {
    iter *Online
    indices []int
    pos int
    started bool
    reporter ProgressReporter
}

func(s *onlineStream) Next() (NamedData, bool) {
    // nothing is printed until the consumer pulls the first batch
    if !s.started {
        s.started = true
        fmt.Fprint(s.iter.out, s.reporter.Start())
    }
    // progress of the previously consumed sample is reported when the
    // consumer comes back for more, like in the generator protocol
    if s.pos > 0 {
        fmt.Fprint(s.iter.out, s.reporter.Advance(s.pos))
    }
    if s.pos >= len(s.indices) {
        return nil, false
    }
    idx := s.indices[s.pos]
    s.pos++
    batch := make(NamedData, len(s.iter.data))
    for name, data := range s.iter.data {
        batch[name] = data.SliceDim1(idx, idx+1)
    }
    return batch, true
}
