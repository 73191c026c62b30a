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
	"sort"
	"strings"
)

// AutoKind is the kind name that asks the manager to pick one from the input
const AutoKind = "auto"

// Manager keeps the registered value kinds
type Manager struct {
	kinds []Kind
}

// NewManager creates a manager with the built-in int, float and string kinds
func NewManager() *Manager {
	manager := &Manager{}

	manager.Register(IntKind{})
	manager.Register(FloatKind{})
	manager.Register(StringKind{})

	return manager
}

// Register adds a kind, replacing any registered kind of the same name
func (m *Manager) Register(kind Kind) {
	for i, k := range m.kinds {
		if strings.EqualFold(k.Name(), kind.Name()) {
			m.kinds[i] = kind
			m.sort()
			return
		}
	}
	m.kinds = append(m.kinds, kind)
	m.sort()
}

func (m *Manager) sort() {
	sort.SliceStable(m.kinds, func(i, j int) bool {
		return m.kinds[i].Priority() < m.kinds[j].Priority()
	})
}

// Get looks a kind up by name, case insensitively
func (m *Manager) Get(name string) (Kind, error) {
	for _, k := range m.kinds {
		if strings.EqualFold(k.Name(), strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownKind, name, strings.Join(m.Names(), ", "))
}

// Names lists the registered kinds in priority order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.kinds))
	for _, k := range m.kinds {
		names = append(names, k.Name())
	}
	return names
}

// Detect returns the first kind, in priority order, that accepts every
// token. It returns nil only if no registered kind accepts them all.
func (m *Manager) Detect(tokens []string) Kind {
	for _, k := range m.kinds {
		accepted := true
		for _, tok := range tokens {
			if !k.Accepts(tok) {
				accepted = false
				break
			}
		}
		if accepted {
			return k
		}
	}
	return nil
}

// Resolve maps a configured kind name to a Kind. AutoKind (or an empty name)
// detects the kind from tokens.
func (m *Manager) Resolve(name string, tokens []string) (Kind, error) {
	if name == "" || strings.EqualFold(name, AutoKind) {
		if k := m.Detect(tokens); k != nil {
			return k, nil
		}
		return nil, fmt.Errorf("%w: no kind accepts %q", ErrUnknownKind, tokens)
	}
	return m.Get(name)
}
