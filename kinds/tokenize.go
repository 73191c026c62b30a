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
	"fmt"

	"github.com/mattn/go-shellwords"
)

// Tokenize splits a line of values the way a shell splits arguments, so
// quoted strings may contain spaces. Variables and backticks are not
// expanded.
func Tokenize(line string) ([]string, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = false
	parser.ParseBacktick = false

	tokens, err := parser.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to split values %q: %w", line, err)
	}
	return tokens, nil
}

// InsertAll tokenizes line and inserts every token into s, stopping at the
// first value that does not parse. Events for the values inserted before the
// failure are returned along with the error.
func InsertAll(s Session, line string) ([]Event, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	return InsertTokens(s, tokens)
}

// InsertTokens inserts tokens into s in order. See InsertAll.
func InsertTokens(s Session, tokens []string) ([]Event, error) {
	events := make([]Event, 0, len(tokens))
	for _, tok := range tokens {
		ev, err := s.Insert(tok)
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
	return events, nil
}
