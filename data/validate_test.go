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
    "fragata/brainstorm/tensor"
)

// seqArray builds an array of the given shape filled with 0, 1, 2, ...
// in row-major order.
func seqArray(shape ...int) *tensor.Array {
    a := tensor.New(shape, nil)
    data := a.Data()
    for i := range data {
        data[i] = float64(i)
    }
    return a
}

// collect drains a stream into a slice of batches.
func collect(s Stream) []NamedData {
    var batches []NamedData
    for {
        batch, ok := s.Next()
        if !ok {
            return batches
        }
        batches = append(batches, batch)
    }
}

// TestValidateReturnsSampleExtent verifies that a well-formed dataset
// passes and yields the common second-axis extent.
func TestValidateReturnsSampleExtent(t *testing.T) {
    n, err := assertCorrectDataFormat(NamedData{
        "default": seqArray(5, 4, 3, 8, 8),
        "targets": seqArray(5, 4, 1),
    })
    require.NoError(t, err)
    assert.Equal(t, 4, n)
}

// TestValidateRejectsLowRank verifies that arrays with fewer than
// 3 dimensions are rejected.
func TestValidateRejectsLowRank(t *testing.T) {
    _, err := assertCorrectDataFormat(NamedData{"default": seqArray(5, 4)})
    assert.ErrorIs(t, err, base.ErrIteratorValidation)
}

// TestValidateRejectsNilArray verifies that a missing shape capability
// is rejected.
func TestValidateRejectsNilArray(t *testing.T) {
    _, err := assertCorrectDataFormat(NamedData{"default": nil})
    assert.ErrorIs(t, err, base.ErrIteratorValidation)
}

// TestValidateRejectsSampleMismatch verifies that unequal sample
// extents across names are rejected.
func TestValidateRejectsSampleMismatch(t *testing.T) {
    _, err := assertCorrectDataFormat(NamedData{
        "default": seqArray(5, 4, 3),
        "targets": seqArray(5, 3, 3),
    })
    assert.ErrorIs(t, err, base.ErrIteratorValidation)
}

// TestValidateRejectsTimeMismatch verifies that unequal time extents
// across names are rejected.
func TestValidateRejectsTimeMismatch(t *testing.T) {
    _, err := assertCorrectDataFormat(NamedData{
        "default": seqArray(5, 4, 3),
        "targets": seqArray(4, 4, 3),
    })
    assert.ErrorIs(t, err, base.ErrIteratorValidation)
}

// TestValidateRejectsEmptyDataset verifies that a dataset with no
// named arrays is rejected.
func TestValidateRejectsEmptyDataset(t *testing.T) {
    _, err := assertCorrectDataFormat(NamedData{})
    assert.ErrorIs(t, err, base.ErrIteratorValidation)
}
