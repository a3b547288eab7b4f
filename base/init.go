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

package base

import (
    "errors"
    "fmt"
)

//
//    Errors
//

// ErrIteratorValidation is the single error kind reported for every
// data iterator contract violation. All failures are detected at
// construction time and wrap this sentinel; test with errors.Is.
var ErrIteratorValidation = errors.New("iterator validation error")

// ValidationError builds an error describing one violated contract.
func ValidationError(msg string, args ...interface{}) error {
    return fmt.Errorf("%w: %s", ErrIteratorValidation, fmt.Sprintf(msg, args...))
}

func Assert(cond bool) {
    if !cond {
        panic("AssertionError")
    }
}

func AssertMsg(cond bool, msg string, args ...interface{}) {
    if !cond {
        panic("AssertionError: "+fmt.Sprintf(msg, args...))
    }
}

//
//    Simple helpers
//

func IntMax(x int, y int) int {
    if x > y {
        return x
    } else {
        return y
    }
}

func IntMin(x int, y int) int {
    if x < y {
        return x
    } else {
        return y
    }
}

func CeilDiv(x int, y int) int {
    return (x + y - 1) / y
}

//
//    Slices
//

func IntsProd(a []int) int {
    p := 1
    for _, v := range a {
        p *= v
    }
    return p
}

func IntsCopy(a []int) []int {
    b := make([]int, len(a))
    copy(b, a)
    return b
}

func IntsEq(a []int, b []int) bool {
    n := len(a)
    if len(b) != n {
        return false
    }
    for i := 0; i < n; i++ {
        if a[i] != b[i] {
            return false
        }
    }
    return true
}
