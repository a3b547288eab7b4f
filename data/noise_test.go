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

    "fragata/brainstorm/base"
)

// TestNoiseShiftsByMean verifies the degenerate std=0 configuration,
// where the added noise is exactly the configured mean.
func TestNoiseShiftsByMean(t *testing.T) {
    def := seqArray(2, 3, 4)
    inner, err := NewUndivided(NamedData{"default": def})
    require.NoError(t, err)
    n, err := NewAddGaussianNoise(inner,
        map[string]float64{"default": 0.0},
        map[string]float64{"default": 5.0},
        base.SeedNone)
    require.NoError(t, err)

    batch, ok := n.Produce(nil, false).Next()
    require.True(t, ok)
    out := batch["default"].Data()
    for i, v := range def.Data() {
        assert.Equal(t, v+5.0, out[i])
    }
}

// TestNoisePerturbsConfiguredName verifies that noise changes the
// configured array and only that one.
func TestNoisePerturbsConfiguredName(t *testing.T) {
    def := seqArray(2, 3, 4)
    targets := seqArray(2, 3, 1)
    inner, err := NewUndivided(NamedData{"default": def, "targets": targets})
    require.NoError(t, err)
    n, err := NewAddGaussianNoise(inner,
        map[string]float64{"default": 1.0}, nil, 42)
    require.NoError(t, err)

    batch, ok := n.Produce(nil, false).Next()
    require.True(t, ok)
    assert.False(t, batch["default"].Equal(def))
    assert.True(t, batch["targets"].Equal(targets))
    // the stored dataset is never touched
    assert.True(t, def.Equal(seqArray(2, 3, 4)))
}

// TestNoiseReseedRepeats verifies that resetting the decorator's seed
// reproduces the same noise.
func TestNoiseReseedRepeats(t *testing.T) {
    inner, err := NewUndivided(NamedData{"default": seqArray(2, 3, 4)})
    require.NoError(t, err)
    n, err := NewAddGaussianNoise(inner,
        map[string]float64{"default": 0.5}, nil, 7)
    require.NoError(t, err)

    first, ok := n.Produce(nil, false).Next()
    require.True(t, ok)
    n.Reseed(7)
    second, ok := n.Produce(nil, false).Next()
    require.True(t, ok)
    assert.True(t, first["default"].Equal(second["default"]))
}

// TestNoiseRejectsUnknownName verifies fail-fast construction for a
// name the inner iterator does not provide.
func TestNoiseRejectsUnknownName(t *testing.T) {
    inner, err := NewUndivided(NamedData{"default": seqArray(2, 3, 4)})
    require.NoError(t, err)
    _, err = NewAddGaussianNoise(inner,
        map[string]float64{"missing": 1.0}, nil, base.SeedNone)
    assert.ErrorIs(t, err, base.ErrIteratorValidation)
}

// TestNoiseRejectsMismatchedDicts verifies that mean and std must be
// configured for the same name sets.
func TestNoiseRejectsMismatchedDicts(t *testing.T) {
    inner, err := NewUndivided(NamedData{
        "default": seqArray(2, 3, 4),
        "targets": seqArray(2, 3, 1),
    })
    require.NoError(t, err)
    _, err = NewAddGaussianNoise(inner,
        map[string]float64{"default": 1.0, "targets": 1.0},
        map[string]float64{"default": 0.0},
        base.SeedNone)
    assert.ErrorIs(t, err, base.ErrIteratorValidation)
}
