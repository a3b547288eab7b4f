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
//    RandomCrop
//

// RandomCrop randomly crops image data. Only rank-5 data shaped
// (T, B, C, H, W) is supported. Every sample in a batch gets its own
// crop window: one row offset and one column offset are drawn per
// sample and the same window is applied across all time steps and
// channels of that sample.
type RandomCrop struct {
    iteratorBase
    base.Seedable
    inner DataIterator
    keys []string
    shapeDict map[string][2]int
}

func NewRandomCrop(
        inner DataIterator,
        shapeDict map[string][2]int,
        seed int64) (*RandomCrop, error) {
    innerData := inner.Data()
    keys := sortedKeys(shapeDict)
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
        cropShape := shapeDict[key]
        dataShape := data.Shape()
        if cropShape[0] > dataShape[3] || cropShape[0] < 0 {
            return nil, base.ValidationError("invalid crop height %d", cropShape[0])
        }
        if cropShape[1] > dataShape[4] || cropShape[1] < 0 {
            return nil, base.ValidationError("invalid crop width %d", cropShape[1])
        }
    }
    c := new(RandomCrop)
    c.iteratorBase.Init(innerData)
    c.Seedable.Init(seed)
    c.inner = inner
    c.keys = keys
    c.shapeDict = shapeDict
    return c, nil
}

func(c *RandomCrop) Produce(handler backends.Handler, verbose bool) Stream {
    return &cropStream{
        iter: c,
        inner: c.inner.Produce(handler, verbose),
    }
}

type cropStream struct {
    iter *RandomCrop
    inner Stream
}

func(s *cropStream) Next() (NamedData, bool) {
    batch, ok := s.inner.Next()
    if !ok {
        return nil, false
    }
    rnd := s.iter.Rnd()
    for _, key := range s.iter.keys {
        cropShape := s.iter.shapeDict[key]
        cropH, cropW := cropShape[0], cropShape[1]
        shape := batch[key].Shape()
        batchSize := shape[1]
        maxRow := shape[3] - cropH
        maxCol := shape[4] - cropW
        rowIndices := make([]int, batchSize)
        for i := range rowIndices {
            rowIndices[i] = rnd.Intn(maxRow + 1)
        }
        colIndices := make([]int, batchSize)
        for i := range colIndices {
            colIndices[i] = rnd.Intn(maxCol + 1)
        }
        batch[key] = cropImages(batch[key], cropH, cropW, rowIndices, colIndices)
    }
    return batch, true
}

// cropImages extracts per-sample windows of size (cropH, cropW) from a
// (T, B, C, H, W) array. Sample b uses the window starting at
// (rowIndices[b], colIndices[b]) for all its time steps and channels.
// The source array is left untouched; the result is a newly allocated
// (T, B, C, cropH, cropW) array with time and channel order preserved.
func cropImages(
        src *tensor.Array,
        cropH int,
        cropW int,
        rowIndices []int,
        colIndices []int) *tensor.Array {
    shape := src.Shape()
    t, b, c, h, w := shape[0], shape[1], shape[2], shape[3], shape[4]
    base.Assert(len(rowIndices) == b && len(colIndices) == b)
    out := tensor.New([]int{t, b, c, cropH, cropW}, nil)
    srcData := src.Data()
    outData := out.Data()
    for it := 0; it < t; it++ {
        for ib := 0; ib < b; ib++ {
            row := rowIndices[ib]
            col := colIndices[ib]
            for ic := 0; ic < c; ic++ {
                srcBase := ((it*b+ib)*c + ic) * h * w
                outBase := ((it*b+ib)*c + ic) * cropH * cropW
                for y := 0; y < cropH; y++ {
                    srcOff := srcBase + (row+y)*w + col
                    outOff := outBase + y*cropW
                    copy(outData[outOff:outOff+cropW], srcData[srcOff:srcOff+cropW])
                }
            }
        }
    }
    return out
}
