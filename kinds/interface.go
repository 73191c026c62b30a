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

// Package kinds turns text tokens into typed values and feeds them to an AVL
// tree of the matching element type, so that callers working with strings
// (a command line, a text input) can drive avl.Tree without knowing V.
package kinds

import (
	"errors"
	"fmt"

	"github.com/cybrota/avltree/avl"
)

// Kind defines how tokens of one value type are recognised and stored
type Kind interface {
	Name() string
	Accepts(token string) bool
	Priority() int // Lower number = tried first by Detect
	NewSession(cfg SessionConfig) Session
}

// Session is a kind-agnostic view of a typed AVL tree
type Session interface {
	Kind() string
	Insert(token string) (Event, error)
	Render(order avl.Order) string
	Diagram() []string
	Len() int
	Height() int
	Verify() error
	Revision() uint64 // Bumped on every successful insert
}

// RotationEvent records one rebalance with the unbalanced node's value in
// text form.
type RotationEvent struct {
	Case  avl.Rotation
	Pivot string
}

func (r RotationEvent) String() string {
	return fmt.Sprintf("%s@%s", r.Case, r.Pivot)
}

// Event describes the outcome of one Session.Insert
type Event struct {
	Token     string
	Value     string // Canonical form of the parsed value
	Rotations []RotationEvent

	// SeenBefore is a bloom filter hint: an equal value was probably inserted
	// earlier and this one was routed to its right. False positives are
	// possible, false negatives are not.
	SeenBefore bool
}

var ErrUnknownKind = errors.New("unknown value kind")

// ParseError is returned when a token is not a valid value of a kind
type ParseError struct {
	Kind  string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q: %v", e.Kind, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
