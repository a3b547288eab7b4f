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
    crand "crypto/rand"
    "encoding/binary"
    "math"
    "math/rand"
)

//
//    Seedable
//

// SeedNone selects an entropy-derived seed at construction.
var SeedNone = int64(math.MinInt64)

// Seedable provides an independently seedable pseudo-random source.
// Every randomized iterator embeds one Seedable and owns it exclusively:
// the source is never shared between instances and never global. Its
// state advances across repeated uses unless Reseed is called.
type Seedable struct {
    rnd *rand.Rand
}

func(s *Seedable) Init(seed int64) {
    if seed == SeedNone {
        seed = entropySeed()
    }
    s.rnd = rand.New(rand.NewSource(seed))
}

// Reseed resets the source to the deterministic state derived from seed.
func(s *Seedable) Reseed(seed int64) {
    s.rnd.Seed(seed)
}

// Rnd exposes the owned source to the embedding iterator.
func(s *Seedable) Rnd() *rand.Rand {
    return s.rnd
}

func entropySeed() int64 {
    var b [8]byte
    if _, err := crand.Read(b[:]); err != nil {
        panic("RuntimeError: cannot read seed entropy: "+err.Error())
    }
    return int64(binary.LittleEndian.Uint64(b[:]))
}
