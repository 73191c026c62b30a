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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/kinds"
	"github.com/rs/zerolog/log"
)

var errNoValues = errors.New("no values to insert")

type insertOptions struct {
	Tokens  []string
	Kind    string
	Orders  []avl.Order
	Diagram bool
	Verify  bool
	Copy    bool
	Session kinds.SessionConfig
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// collectTokens merges positional arguments with the --values line.
func collectTokens(args []string, valuesLine string) ([]string, error) {
	tokens := append([]string{}, args...)
	if strings.TrimSpace(valuesLine) != "" {
		more, err := kinds.Tokenize(valuesLine)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, more...)
	}
	if len(tokens) == 0 {
		return nil, errNoValues
	}
	return tokens, nil
}

// runInsert builds a tree from opts.Tokens and prints the requested views.
func runInsert(w io.Writer, manager *kinds.Manager, opts insertOptions) error {
	kind, err := manager.Resolve(opts.Kind, opts.Tokens)
	if err != nil {
		return err
	}
	log.Debug().Str("kind", kind.Name()).Int("values", len(opts.Tokens)).Msg("building tree")

	cfg := opts.Session
	cfg.OnRotation = logRotation
	session := kind.NewSession(cfg)

	events, err := kinds.InsertTokens(session, opts.Tokens)
	for _, ev := range events {
		logEvent(ev)
	}
	if err != nil {
		return err
	}

	orders := opts.Orders
	if len(orders) == 0 {
		orders = avl.Orders
	}
	for _, order := range orders {
		fmt.Fprintf(w, "%-10s %s\n", order.String()+":", session.Render(order))
	}
	fmt.Fprintf(w, "height: %d, size: %d, kind: %s\n", session.Height(), session.Len(), session.Kind())

	if opts.Diagram {
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Join(session.Diagram(), "\n"))
	}

	if opts.Verify {
		if err := session.Verify(); err != nil {
			return fmt.Errorf("tree failed verification: %w", err)
		}
		fmt.Fprintf(w, "✅ %sAVL invariants hold%s\n", Green, Reset)
	}

	if opts.Copy {
		text := session.Render(orders[0])
		if err := clipboardWrite(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		log.Info().Str("order", orders[0].String()).Msg("copied traversal to clipboard")
	}
	return nil
}
