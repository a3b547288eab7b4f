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

//
//    AddGaussianNoise
//

// AddGaussianNoise adds Gaussian noise to data generated by another
// iterator. Supports different means and standard deviations for
// different named data items; the mean defaults to 0. Noise is drawn
// from this decorator's own random source, independent of the inner
// iterator's source.
type AddGaussianNoise struct {
    iteratorBase
    base.Seedable
    inner DataIterator
    keys []string
    stdDict map[string]float64
    meanDict map[string]float64
}

func NewAddGaussianNoise(
        inner DataIterator,
        stdDict map[string]float64,
        meanDict map[string]float64,
        seed int64) (*AddGaussianNoise, error) {
    if meanDict != nil && !sameKeySets(meanDict, stdDict) {
        return nil, base.ValidationError(
            "means and standard deviations must be provided for the same data names")
    }
    innerData := inner.Data()
    keys := sortedKeys(stdDict)
    for _, key := range keys {
        data, ok := innerData[key]
        if !ok {
            return nil, base.ValidationError(
                "key %s is not present in iterator, available keys: %v",
                key, inner.DataNames())
        }
        if data == nil {
            return nil, base.ValidationError(
                "data with name %s is not a numeric array", key)
        }
    }
    if meanDict == nil {
        meanDict = map[string]float64{}
    }
    n := new(AddGaussianNoise)
    n.iteratorBase.Init(innerData)
    n.Seedable.Init(seed)
    n.inner = inner
    n.keys = keys
    n.stdDict = stdDict
    n.meanDict = meanDict
    return n, nil
}

func(n *AddGaussianNoise) Produce(handler backends.Handler, verbose bool) Stream {
    return &noiseStream{
        iter: n,
        inner: n.inner.Produce(handler, verbose),
    }
}

type noiseStream struct {
    iter *AddGaussianNoise
    inner Stream
}

func(s *noiseStream) Next() (NamedData, bool) {
    batch, ok := s.inner.Next()
    if !ok {
        return nil, false
    }
    rnd := s.iter.Rnd()
    for _, key := range s.iter.keys {
        std := s.iter.stdDict[key]
        mean := s.iter.meanDict[key]
        values := batch[key].Data()
        for i := range values {
            values[i] += std*rnd.NormFloat64() + mean
        }
    }
    return batch, true
}
