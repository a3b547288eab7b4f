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
    "fragata/brainstorm/backends"
    "fragata/brainstorm/base"
)

// DefaultDataName is the conventional name of the primary input data.
const DefaultDataName = "default"

//
//    Flip
//

// Flip randomly flips images horizontally. Only rank-5 data shaped
// (T, B, C, H, W) is supported; the last axis is reversed, which
// corresponds to a horizontal image flip. The decision is one uniform
// draw per configured name per batch, not per sample. A nil probDict
// defaults to flipping "default" with probability 0.5.
type Flip struct {
    iteratorBase
    base.Seedable
    inner DataIterator
    keys []string
    probDict map[string]float64
}

func NewFlip(
        inner DataIterator,
        probDict map[string]float64,
        seed int64) (*Flip, error) {
    if probDict == nil {
        probDict = map[string]float64{DefaultDataName: 0.5}
    }
    innerData := inner.Data()
    keys := sortedKeys(probDict)
    for _, key := range keys {
        data, ok := innerData[key]
        if !ok {
            return nil, base.ValidationError(
                "key %s is not present in iterator, available keys: %v",
                key, inner.DataNames())
        }
        if prob := probDict[key]; prob > 1.0 || prob < 0.0 {
            return nil, base.ValidationError("invalid probability %g for %s", prob, key)
        }
        if data == nil {
            return nil, base.ValidationError(
                "data with name %s is not a numeric array", key)
        }
        if data.Rank() != 5 {
            return nil, base.ValidationError("only 5D data is supported")
        }
    }
    f := new(Flip)
    f.iteratorBase.Init(innerData)
    f.Seedable.Init(seed)
    f.inner = inner
    f.keys = keys
    f.probDict = probDict
    return f, nil
}

func(f *Flip) Produce(handler backends.Handler, verbose bool) Stream {
    return &flipStream{
        iter: f,
        inner: f.inner.Produce(handler, verbose),
    }
}

type flipStream struct {
    iter *Flip
    inner Stream
}

func(s *flipStream) Next() (NamedData, bool) {
    batch, ok := s.inner.Next()
    if !ok {
        return nil, false
    }
    for _, key := range s.iter.keys {
        if s.iter.Rnd().Float64() < s.iter.probDict[key] {
            batch[key].FlipLast()
        }
    }
    return batch, true
}
