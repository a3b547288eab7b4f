//
// Copyright 2020 FRAGATA COMPUTER SYSTEMS AG
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

package tensor

import "fragata/brainstorm/base"

//
//    Array
//

// Array is a dense host-memory n-dimensional float64 array with
// row-major layout. It is the carrier type for all named data items
// handled by the data iterators; its only obligatory capability is
// the shape query (rank and per-axis extents).
type Array struct {
    shape []int
    strides []int
    data []float64
}

// New creates an array of the given shape backed by data. The data
// slice is adopted, not copied; it may be nil to get a zero-filled
// array, otherwise its length must match the shape volume.
func New(shape []int, data []float64) *Array {
    size := base.IntsProd(shape)
    if data == nil {
        data = make([]float64, size)
    } else {
        base.AssertMsg(len(data) == size,
            "array data length %d does not match shape volume %d", len(data), size)
    }
    return &Array{
        shape: base.IntsCopy(shape),
        strides: makeStrides(shape),
        data: data,
    }
}

// Full creates an array of the given shape with all elements set to value.
func Full(shape []int, value float64) *Array {
    a := New(shape, nil)
    if value != 0.0 {
        for i := range a.data {
            a.data[i] = value
        }
    }
    return a
}

func makeStrides(shape []int) []int {
    n := len(shape)
    strides := make([]int, n)
    p := 1
    for i := n - 1; i >= 0; i-- {
        strides[i] = p
        p *= shape[i]
    }
    return strides
}

func(a *Array) Shape() []int {
    return a.shape
}

func(a *Array) Strides() []int {
    return a.strides
}

func(a *Array) Rank() int {
    return len(a.shape)
}

func(a *Array) Size() int {
    return len(a.data)
}

// Data exposes the flat backing storage in row-major order.
func(a *Array) Data() []float64 {
    return a.data
}

func(a *Array) At(index ...int) float64 {
    return a.data[a.offset(index)]
}

func(a *Array) SetAt(value float64, index ...int) {
    a.data[a.offset(index)] = value
}

func(a *Array) offset(index []int) int {
    base.Assert(len(index) == len(a.shape))
    off := 0
    for i, x := range index {
        base.Assert(x >= 0 && x < a.shape[i])
        off += x * a.strides[i]
    }
    return off
}

// Clone returns a deep copy sharing no storage with the receiver.
func(a *Array) Clone() *Array {
    data := make([]float64, len(a.data))
    copy(data, a.data)
    return New(a.shape, data)
}

// Equal reports whether both arrays have identical shape and contents.
func(a *Array) Equal(b *Array) bool {
    if !base.IntsEq(a.shape, b.shape) {
        return false
    }
    for i, v := range a.data {
        if b.data[i] != v {
            return false
        }
    }
    return true
}

// SliceDim1 copies the sub-array covering indices [lo, hi) along the
// second axis, keeping all other axes intact. hi is clamped to the
// axis extent, so an overhanging range truncates instead of failing.
func(a *Array) SliceDim1(lo int, hi int) *Array {
    base.Assert(len(a.shape) >= 2)
    d0 := a.shape[0]
    d1 := a.shape[1]
    hi = base.IntMin(hi, d1)
    base.Assert(lo >= 0 && lo <= hi)
    outShape := base.IntsCopy(a.shape)
    outShape[1] = hi - lo
    out := New(outShape, nil)
    block := a.strides[1]
    for i := 0; i < d0; i++ {
        src := i*a.strides[0] + lo*block
        dst := i * out.strides[0]
        copy(out.data[dst:dst+(hi-lo)*block], a.data[src:src+(hi-lo)*block])
    }
    return out
}

// FlipLast reverses the array in place along its last axis.
func(a *Array) FlipLast() {
    n := len(a.shape)
    base.Assert(n >= 1)
    w := a.shape[n-1]
    for off := 0; off < len(a.data); off += w {
        row := a.data[off : off+w]
        for i, j := 0, w-1; i < j; i, j = i+1, j-1 {
            row[i], row[j] = row[j], row[i]
        }
    }
}
