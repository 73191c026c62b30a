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

package kinds

import (
	"cmp"
	"fmt"

	"github.com/cybrota/avltree/avl"
	"github.com/willf/bloom"
)

const (
	DefaultExpectedValues    = 10000
	DefaultFalsePositiveRate = 0.01
)

// SessionConfig sizes the duplicate filter and lets callers watch rotations
type SessionConfig struct {
	ExpectedValues    uint
	FalsePositiveRate float64

	// OnRotation, when set, is called for every rebalance in addition to the
	// rotation being recorded on the returned Event.
	OnRotation func(RotationEvent)
}

func (c SessionConfig) withDefaults() SessionConfig {
	if c.ExpectedValues == 0 {
		c.ExpectedValues = DefaultExpectedValues
	}
	if c.FalsePositiveRate <= 0 || c.FalsePositiveRate >= 1 {
		c.FalsePositiveRate = DefaultFalsePositiveRate
	}
	return c
}

// typedSession backs Session for one concrete element type.
type typedSession[V cmp.Ordered] struct {
	kind     string
	parse    func(string) (V, error)
	tree     *avl.Tree[V]
	seen     *bloom.BloomFilter
	pending  []RotationEvent
	observe  func(RotationEvent)
	revision uint64
}

func newTypedSession[V cmp.Ordered](kind string, parse func(string) (V, error), cfg SessionConfig) *typedSession[V] {
	cfg = cfg.withDefaults()
	s := &typedSession[V]{
		kind:    kind,
		parse:   parse,
		seen:    bloom.NewWithEstimates(cfg.ExpectedValues, cfg.FalsePositiveRate),
		observe: cfg.OnRotation,
	}
	s.tree = avl.New[V](avl.WithRotationHook[V](s.record))
	return s
}

func (s *typedSession[V]) record(r avl.Rotation, pivot V) {
	ev := RotationEvent{Case: r, Pivot: fmt.Sprint(pivot)}
	s.pending = append(s.pending, ev)
	if s.observe != nil {
		s.observe(ev)
	}
}

func (s *typedSession[V]) Kind() string { return s.kind }

func (s *typedSession[V]) Insert(token string) (Event, error) {
	v, err := s.parse(token)
	if err != nil {
		return Event{}, &ParseError{Kind: s.kind, Token: token, Err: err}
	}

	canonical := fmt.Sprint(v)
	existed := s.seen.TestString(canonical)
	s.seen.AddString(canonical)

	s.pending = nil
	s.tree.Insert(v)
	s.revision++

	return Event{
		Token:      token,
		Value:      canonical,
		Rotations:  s.pending,
		SeenBefore: existed,
	}, nil
}

func (s *typedSession[V]) Render(order avl.Order) string {
	return avl.Render(s.tree.Walk(order))
}

func (s *typedSession[V]) Diagram() []string {
	return avl.Diagram(s.tree.Root())
}

func (s *typedSession[V]) Len() int         { return s.tree.Len() }
func (s *typedSession[V]) Height() int      { return s.tree.Height() }
func (s *typedSession[V]) Revision() uint64 { return s.revision }

func (s *typedSession[V]) Verify() error {
	return avl.Verify(s.tree.Root())
}
