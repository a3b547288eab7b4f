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

package data

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "fragata/brainstorm/backends"
    "fragata/brainstorm/base"
)

// TestDecoratorChain verifies a full augmentation chain wrapped around
// a minibatch iterator: pad, then crop back to the original size, then
// flip, then noise. Batch count and leading extents must survive every
// stage.
func TestDecoratorChain(t *testing.T) {
    named := NamedData{
        "default": seqArray(3, 5, 2, 6, 6),
        "targets": seqArray(3, 5, 1),
    }
    mb, err := NewMinibatches(2, false, VerboseOff, base.SeedNone, named)
    require.NoError(t, err)
    padded, err := NewPad(mb, map[string]int{"default": 1}, nil, base.SeedNone)
    require.NoError(t, err)
    cropped, err := NewRandomCrop(padded, map[string][2]int{"default": {6, 6}}, 5)
    require.NoError(t, err)
    flipped, err := NewFlip(cropped, map[string]float64{"default": 0.5}, 6)
    require.NoError(t, err)
    noisy, err := NewAddGaussianNoise(flipped, map[string]float64{"default": 0.1}, nil, 7)
    require.NoError(t, err)

    handler := backends.NewHostHandler()
    batches := collect(noisy.Produce(handler, false))
    require.Len(t, batches, 3)
    sizes := []int{2, 2, 1}
    for i, batch := range batches {
        assert.Equal(t, []int{3, sizes[i], 2, 6, 6}, batch["default"].Shape())
        assert.True(t, batch["targets"].Equal(named["targets"].SliceDim1(2*i, 2*i+2)))
    }
}

// TestDecoratorChainRestartable verifies that the whole chain can be
// produced again and keeps its structural guarantees.
func TestDecoratorChainRestartable(t *testing.T) {
    inner, err := NewOnline(true, VerboseOff, 1, NamedData{
        "default": seqArray(2, 4, 1, 5, 5),
    })
    require.NoError(t, err)
    c, err := NewRandomCrop(inner, map[string][2]int{"default": {3, 3}}, 2)
    require.NoError(t, err)

    for pass := 0; pass < 2; pass++ {
        batches := collect(c.Produce(nil, false))
        require.Len(t, batches, 4, "pass %d", pass)
        for _, batch := range batches {
            assert.Equal(t, []int{2, 1, 1, 3, 3}, batch["default"].Shape())
        }
    }
}

// TestDecoratorDeclaredData verifies that decorators declare the inner
// iterator's data, so wrapping validates against the already-validated
// base dataset at any depth.
func TestDecoratorDeclaredData(t *testing.T) {
    inner, err := NewUndivided(NamedData{"default": seqArray(2, 3, 1, 4, 4)})
    require.NoError(t, err)
    f, err := NewFlip(inner, nil, base.SeedNone)
    require.NoError(t, err)
    assert.Equal(t, inner.DataNames(), f.DataNames())

    n, err := NewAddGaussianNoise(f, map[string]float64{"default": 1.0}, nil, base.SeedNone)
    require.NoError(t, err)
    assert.Equal(t, inner.DataNames(), n.DataNames())
}
