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

import "fragata/brainstorm/base"

// assertCorrectDataFormat validates the structural contract of a
// dataset: every named array must have a queryable shape of rank 3 or
// more, and the time extents (first axis) and sample extents (second
// axis) must agree across all names. Returns the common sample extent.
// Called once, at base iterator construction; decorators trust it and
// only add their own per-name checks.
func assertCorrectDataFormat(namedData NamedData) (int, error) {
    nrSequences := make(map[string]int)
    nrTimesteps := make(map[string]int)
    for name, data := range namedData {
        if data == nil {
            return 0, base.ValidationError("%s has a wrong type (no shape)", name)
        }
        if data.Rank() < 3 {
            return 0, base.ValidationError(
                "all inputs have to have at least 3 dimensions, "+
                    "where the first two are time_size and batch_size")
        }
        shape := data.Shape()
        nrSequences[name] = shape[1]
        nrTimesteps[name] = shape[0]
    }
    if len(namedData) == 0 {
        return 0, base.ValidationError("no data provided")
    }
    if minValue(nrSequences) != maxValue(nrSequences) {
        return 0, base.ValidationError(
            "the number of sequences of all inputs must be equal, but got %v", nrSequences)
    }
    if minValue(nrTimesteps) != maxValue(nrTimesteps) {
        return 0, base.ValidationError(
            "the number of time steps of all inputs must be equal, but got %v", nrTimesteps)
    }
    return minValue(nrSequences), nil
}

func minValue(m map[string]int) int {
    first := true
    y := 0
    for _, v := range m {
        if first || v < y {
            y = v
        }
        first = false
    }
    return y
}

func maxValue(m map[string]int) int {
    first := true
    y := 0
    for _, v := range m {
        if first || v > y {
            y = v
        }
        first = false
    }
    return y
}
