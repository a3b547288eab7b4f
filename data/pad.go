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
    "fragata/brainstorm/tensor"
)

//
//    Pad
//

// Pad pads images equally on all four sides. Only rank-5 data shaped
// (T, B, C, H, W) is supported: a configured name of spatial size
// (H, W) is replaced by a (H+2s, W+2s) array with the original image
// centered in it. The padding value defaults to 0.
type Pad struct {
    iteratorBase
    base.Seedable
    inner DataIterator
    keys []string
    sizeDict map[string]int
    valueDict map[string]float64
}

func NewPad(
        inner DataIterator,
        sizeDict map[string]int,
        valueDict map[string]float64,
        seed int64) (*Pad, error) {
    if valueDict != nil && !sameKeySets(sizeDict, valueDict) {
        return nil, base.ValidationError(
            "padding sizes and values must be provided for the same data names")
    }
    innerData := inner.Data()
    keys := sortedKeys(sizeDict)
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
        if data.Rank() != 5 {
            return nil, base.ValidationError("only 5D data is supported")
        }
        if sizeDict[key] < 0 {
            return nil, base.ValidationError(
                "invalid padding size %d for %s", sizeDict[key], key)
        }
    }
    if valueDict == nil {
        valueDict = map[string]float64{}
    }
    p := new(Pad)
    p.iteratorBase.Init(innerData)
    p.Seedable.Init(seed)
    p.inner = inner
    p.keys = keys
    p.sizeDict = sizeDict
    p.valueDict = valueDict
    return p, nil
}

func(p *Pad) Produce(handler backends.Handler, verbose bool) Stream {
    return &padStream{
        iter: p,
        inner: p.inner.Produce(handler, verbose),
    }
}

type padStream struct {
    iter *Pad
    inner Stream
}

func(s *padStream) Next() (NamedData, bool) {
    batch, ok := s.inner.Next()
    if !ok {
        return nil, false
    }
    for _, key := range s.iter.keys {
        batch[key] = padImages(batch[key], s.iter.sizeDict[key], s.iter.valueDict[key])
    }
    return batch, true
}

// padImages builds a new (T, B, C, H+2*size, W+2*size) array filled
// with value and copies src into the centered interior.
func padImages(src *tensor.Array, size int, value float64) *tensor.Array {
    shape := src.Shape()
    t, b, c, h, w := shape[0], shape[1], shape[2], shape[3], shape[4]
    out := tensor.Full([]int{t, b, c, h + 2*size, w + 2*size}, value)
    srcData := src.Data()
    outData := out.Data()
    outH := h + 2*size
    outW := w + 2*size
    for img := 0; img < t*b*c; img++ {
        for y := 0; y < h; y++ {
            srcOff := (img*h + y) * w
            outOff := (img*outH+y+size)*outW + size
            copy(outData[outOff:outOff+w], srcData[srcOff:srcOff+w])
        }
    }
    return out
}
