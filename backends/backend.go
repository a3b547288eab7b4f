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

package backends

//
//    Handler
//

// Handler is the opaque compute handle threaded through the data
// iterators for interface uniformity with the network code. The
// iterators accept it and pass it along unchanged; nothing in this
// package inspects it or requires any behavior from it.
type Handler interface{}

// HostHandler marks batch consumption in plain host memory. It is the
// handle used when no accelerated backend is attached, e.g. in tests
// and in the bundled examples.
type HostHandler struct{}

func NewHostHandler() *HostHandler {
    return &HostHandler{}
}
