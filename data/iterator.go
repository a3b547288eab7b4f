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
    "sort"

    "fragata/brainstorm/backends"
    "fragata/brainstorm/tensor"
)

//
//    NamedData
//

// NamedData maps data names to arrays. Within one batch all arrays
// share the first two axes: the time extent and the sample extent.
type NamedData map[string]*tensor.Array

//
//    DataIterator
//

// DataIterator produces lazy sequences of named batches for a training
// or evaluation loop. Base iterators (Undivided, Online, Minibatches)
// hold the dataset; decorator iterators (AddGaussianNoise, Flip, Pad,
// RandomCrop) wrap an inner DataIterator and transform its batches.
// Both kinds satisfy this contract, so decorators chain to any depth.
type DataIterator interface {
    // DataNames lists the names of the data items, sorted.
    DataNames() []string
    // Data exposes the declared arrays for structural queries made by
    // wrapping decorators at construction time.
    Data() NamedData
    // Produce starts one pass over the data. The handler is an opaque
    // compute handle passed through for interface uniformity. The
    // verbose flag requests progress output; it takes effect only for
    // iterators whose own verbosity setting is VerboseAuto.
    Produce(handler backends.Handler, verbose bool) Stream
}

//
//    Stream
//

// Stream is one in-flight pass over the data: a pull-driven sequence
// of named batches. Next computes and returns the next batch, or
// reports exhaustion. Nothing runs ahead of the consumer; dropping a
// stream before exhaustion is always safe. The iteration order is
// fixed when the stream is created and never changes afterwards.
type Stream interface {
    Next() (NamedData, bool)
}

//
//    Verbosity
//

// Verbosity is the iterator-level progress setting. VerboseAuto defers
// to the per-call flag of Produce; VerboseOn and VerboseOff override it.
type Verbosity int

const (
    VerboseAuto Verbosity = iota
    VerboseOn
    VerboseOff
)

func(v Verbosity) resolve(flag bool) bool {
    switch v {
    case VerboseOn:
        return true
    case VerboseOff:
        return false
    default:
        return flag
    }
}

//
//    iteratorBase
//

// iteratorBase carries the declared data shared by all iterators.
type iteratorBase struct {
    names []string
    data NamedData
}

func(b *iteratorBase) Init(data NamedData) {
    names := make([]string, 0, len(data))
    for name := range data {
        names = append(names, name)
    }
    sort.Strings(names)
    b.names = names
    b.data = data
}

func(b *iteratorBase) DataNames() []string {
    return b.names
}

func(b *iteratorBase) Data() NamedData {
    return b.data
}

// sortedKeys fixes the per-name processing order of a configuration
// map so that validation messages and random draws are deterministic.
func sortedKeys[V any](m map[string]V) []string {
    keys := make([]string, 0, len(m))
    for key := range m {
        keys = append(keys, key)
    }
    sort.Strings(keys)
    return keys
}

func sameKeySets[V1, V2 any](a map[string]V1, b map[string]V2) bool {
    if len(a) != len(b) {
        return false
    }
    for key := range a {
        if _, ok := b[key]; !ok {
            return false
        }
    }
    return true
}

func cloneBatch(data NamedData) NamedData {
    out := make(NamedData, len(data))
    for name, array := range data {
        out[name] = array.Clone()
    }
    return out
}
