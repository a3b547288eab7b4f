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
//    Minibatches
//

// Minibatches iterates fixed-size contiguous blocks of samples. Only
// the order of the blocks is randomized, never the sample order within
// a block. The final block is shorter when the sample count is not a
// multiple of the batch size.
type Minibatches struct {
    iteratorBase
    base.Seedable
    batchSize int
    shuffle bool
    verbose Verbosity
    nrSequences int
    sampleSize int
    out io.Writer
}

func NewMinibatches(
        batchSize int,
        shuffle bool,
        verbose Verbosity,
        seed int64,
        namedData NamedData) (*Minibatches, error) {
    if batchSize < 1 {
        return nil, base.ValidationError("invalid batch size %d", batchSize)
    }
    nrSequences, err := assertCorrectDataFormat(namedData)
    if err != nil {
        return nil, err
    }
    m := new(Minibatches)
    m.iteratorBase.Init(namedData)
    m.Seedable.Init(seed)
    m.batchSize = batchSize
    m.shuffle = shuffle
    m.verbose = verbose
    m.nrSequences = nrSequences
    for _, data := range namedData {
        shape := data.Shape()
        m.sampleSize += shape[0] * base.IntsProd(shape[2:]) * batchSize
    }
    m.out = os.Stdout
    return m, nil
}

// NrSequences is the total number of samples in the dataset.
func(m *Minibatches) NrSequences() int {
    return m.nrSequences
}

// SampleSize is the element count of one full batch across all names.
func(m *Minibatches) SampleSize() int {
    return m.sampleSize
}

// SetOutput redirects progress text away from standard output.
func(m *Minibatches) SetOutput(w io.Writer) {
    m.out = w
}

func(m *Minibatches) Produce(handler backends.Handler, verbose bool) Stream {
    reporter := selectReporter(m.verbose.resolve(verbose), m.nrSequences)
    nrBatches := base.CeilDiv(m.nrSequences, m.batchSize)
    indices := make([]int, nrBatches)
    for i := range indices {
        indices[i] = i
    }
    if m.shuffle {
        m.Rnd().Shuffle(len(indices), func(i, j int) {
            indices[i], indices[j] = indices[j], indices[i]
        })
    }
    return &minibatchStream{
        iter: m,
        indices: indices,
        reporter: reporter,
    }
}

type minibatchStream struct {
    iter *Minibatches
    indices []int
    pos int
    started bool
    reporter ProgressReporter
}

func(s *minibatchStream) Next() (NamedData, bool) {
    // nothing is printed until the consumer pulls the first batch
    if !s.started {
        s.started = true
        fmt.Fprint(s.iter.out, s.reporter.Start())
    }
    // the reported count always advances by a full batch size, so the
    // final partial block may report past the maximum; the reporter
    // clamps when rendering
    if s.pos > 0 {
        fmt.Fprint(s.iter.out, s.reporter.Advance(s.pos*s.iter.batchSize))
    }
    if s.pos >= len(s.indices) {
        return nil, false
    }
    idx := s.indices[s.pos]
    s.pos++
    lo := idx * s.iter.batchSize
    hi := lo + s.iter.batchSize
    batch := make(NamedData, len(s.iter.data))
    for name, data := range s.iter.data {
        batch[name] = data.SliceDim1(lo, hi)
    }
    return batch, true
}
