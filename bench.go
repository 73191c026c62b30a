// Copyright 2025 Naren Yellavula
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

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/cybrota/avltree/avl"
	"github.com/schollz/progressbar/v3"
)

const (
	patternAscending  = "ascending"
	patternDescending = "descending"
	patternRandom     = "random"
)

var errTooTall = errors.New("tree exceeds the AVL height bound")

type benchResult struct {
	Size      int
	Pattern   string
	Height    int
	Bound     int
	Rotations map[avl.Rotation]int
	Elapsed   time.Duration
}

// benchSequence builds size values in the given pattern. Random sequences
// are permutations of 0..size-1 so every value is distinct.
func benchSequence(pattern string, size int, seed int64) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("bench size must not be negative, got %d", size)
	}
	seq := make([]int, size)
	switch pattern {
	case patternAscending:
		for i := range seq {
			seq[i] = i
		}
	case patternDescending:
		for i := range seq {
			seq[i] = size - 1 - i
		}
	case patternRandom:
		seq = rand.New(rand.NewSource(seed)).Perm(size)
	default:
		return nil, fmt.Errorf("unknown bench pattern %q (want %s, %s or %s)",
			pattern, patternAscending, patternDescending, patternRandom)
	}
	return seq, nil
}

// runBench inserts seq into a fresh tree and checks the result against the
// AVL invariants and height bound. progress may be nil.
func runBench(seq []int, pattern string, progress io.Writer) (benchResult, error) {
	result := benchResult{
		Size:      len(seq),
		Pattern:   pattern,
		Bound:     avl.MaxHeight(len(seq)),
		Rotations: make(map[avl.Rotation]int),
	}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(seq),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("🌳 Inserting values..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(progress, "\n✅ Inserted %d values\n", len(seq))
			}),
		)
	}

	tree := avl.New[int](avl.WithRotationHook[int](func(r avl.Rotation, _ int) {
		result.Rotations[r]++
	}))

	start := time.Now()
	for _, v := range seq {
		tree.Insert(v)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	result.Elapsed = time.Since(start)
	if bar != nil {
		_ = bar.Finish()
	}

	result.Height = tree.Height()
	if err := avl.Verify(tree.Root()); err != nil {
		return result, err
	}
	if result.Height > result.Bound {
		return result, fmt.Errorf("%w: height %d, bound %d", errTooTall, result.Height, result.Bound)
	}
	return result, nil
}

func printBenchResult(w io.Writer, r benchResult) {
	fmt.Fprintf(w, "📊 %s%d %s inserts%s in %s\n", Green, r.Size, r.Pattern, Reset, r.Elapsed.Round(time.Microsecond))
	fmt.Fprintf(w, "   height: %d (AVL bound %d, unbalanced worst case %d)\n", r.Height, r.Bound, max(r.Size-1, 0))
	for _, rot := range []avl.Rotation{avl.LeftLeft, avl.LeftRight, avl.RightRight, avl.RightLeft} {
		fmt.Fprintf(w, "   %-12s %d\n", rot.String()+":", r.Rotations[rot])
	}
}
