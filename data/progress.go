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
    "fmt"
    "time"

    "fragata/brainstorm/base"
)

//
//    ProgressReporter
//

// ProgressReporter renders textual progress for one pass over the
// data. Start emits the leading text once, before the first batch;
// Advance emits the increment corresponding to current items done.
// Iterators drive a reporter with absolute counts and never care
// which implementation is behind it.
type ProgressReporter interface {
    Start() string
    Advance(current int) string
}

// selectReporter picks the reporter once per pass from the resolved
// verbosity, so iteration logic stays reporter-agnostic.
func selectReporter(verbose bool, maximum int) ProgressReporter {
    if verbose {
        return newProgressBar(maximum)
    }
    return silence{}
}

//
//    progressBar
//

const (
    progressChars = "====1====2====3====4====5====6====7====8====9====0"
    progressPrefix = "["
    progressSuffix = "] Took: %s\n"
)

// progressBar emits the bar segment between the previous and the
// current position on every Advance, then the elapsed-time suffix
// once the bar is complete. Advancing past the maximum is tolerated:
// the position is clamped to the end of the bar.
type progressBar struct {
    maximum int
    pos int
    done bool
    startTime time.Time
}

func newProgressBar(maximum int) *progressBar {
    return &progressBar{
        maximum: base.IntMax(maximum, 1),
        startTime: time.Now(),
    }
}

func(p *progressBar) Start() string {
    return progressPrefix
}

func(p *progressBar) Advance(current int) string {
    if p.done {
        return ""
    }
    n := len(progressChars)
    j := current * n / p.maximum
    if j > n {
        j = n
    }
    if j < p.pos {
        j = p.pos
    }
    out := progressChars[p.pos:j]
    p.pos = j
    if j == n {
        p.done = true
        out += fmt.Sprintf(progressSuffix, formatElapsed(time.Since(p.startTime)))
    }
    return out
}

// formatElapsed renders a duration as H:MM:SS.d, one fractional digit.
func formatElapsed(d time.Duration) string {
    if d < 0 {
        d = 0
    }
    tenths := int64(d / (100 * time.Millisecond))
    secs := tenths / 10
    return fmt.Sprintf("%d:%02d:%02d.%d",
        secs/3600, (secs/60)%60, secs%60, tenths%10)
}

//
//    silence
//

// silence is the reporter used for quiet passes; it emits nothing.
type silence struct{}

func(silence) Start() string {
    return ""
}

func(silence) Advance(current int) string {
    return ""
}
