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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/kinds"
)

func newTestModel(t *testing.T, kind string) (Model, *[]string) {
	t.Helper()
	cfg := defaultConfig()
	m := InitialModel(kinds.NewManager(), kind, NewRenderCache(), &cfg)

	var copied []string
	m.copyFn = func(text string) error {
		copied = append(copied, text)
		return nil
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), &copied
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeAndEnter(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.input.SetValue(line)
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModelInsertLine(t *testing.T) {
	m, _ := newTestModel(t, kinds.AutoKind)

	if m.session != nil {
		t.Fatal("session should not exist before the first insert")
	}
	if !strings.Contains(m.View(), "(empty)") {
		t.Error("view should show an empty tree")
	}

	m = typeAndEnter(t, m, "10 20 30")

	if m.session == nil || m.session.Kind() != "int" {
		t.Fatalf("session = %v, want an int session", m.session)
	}
	if m.session.Len() != 3 || m.session.Height() != 1 {
		t.Errorf("size/height = %d/%d, want 3/1", m.session.Len(), m.session.Height())
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.input.Value())
	}
	if m.statusIsError {
		t.Errorf("unexpected error status %q", m.status)
	}
	if len(m.lastRotations) != 1 || m.lastRotations[0].String() != "right-right@10" {
		t.Errorf("lastRotations = %v, want [right-right@10]", m.lastRotations)
	}
	if got := m.traversal(); got != "10 20 30" {
		t.Errorf("traversal = %q, want %q", got, "10 20 30")
	}

	view := m.View()
	if !strings.Contains(view, "size 3, height 1") {
		t.Errorf("view missing tree summary:\n%s", view)
	}
	if !strings.Contains(view, "10  30") {
		t.Errorf("view missing diagram:\n%s", view)
	}

	// The kind is fixed by the first line.
	m = typeAndEnter(t, m, "abc")
	if !m.statusIsError {
		t.Error("inserting a word into an int tree should fail")
	}
	if m.session.Len() != 3 {
		t.Errorf("size = %d after failed insert, want 3", m.session.Len())
	}
	if m.input.Value() != "abc" {
		t.Errorf("input should be kept after a failed insert, got %q", m.input.Value())
	}
}

func TestModelPartialInsert(t *testing.T) {
	m, _ := newTestModel(t, "int")

	m = typeAndEnter(t, m, "5 x 7")
	if !m.statusIsError {
		t.Fatal("expected an error status")
	}
	if m.session.Len() != 1 {
		t.Errorf("values before the bad token should be kept, size = %d", m.session.Len())
	}
}

func TestModelUnknownKind(t *testing.T) {
	m, _ := newTestModel(t, "complex")

	m = typeAndEnter(t, m, "1 2")
	if !m.statusIsError || m.session != nil {
		t.Errorf("status = %q, session = %v; want error and no session", m.status, m.session)
	}
}

func TestModelCycleOrderAndCopy(t *testing.T) {
	m, copied := newTestModel(t, kinds.AutoKind)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if len(*copied) != 0 {
		t.Error("nothing should be copied from an empty tree")
	}

	m = typeAndEnter(t, m, "30 10 20")

	want := []struct {
		Order avl.Order
		Text  string
	}{
		{avl.Inorder, "10 20 30"},
		{avl.Preorder, "20 10 30"},
		{avl.Postorder, "10 30 20"},
		{avl.Inorder, "10 20 30"},
	}
	for i, w := range want {
		if i > 0 {
			m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		}
		if m.currentOrder() != w.Order {
			t.Fatalf("step %d: order = %s, want %s", i, m.currentOrder(), w.Order)
		}
		m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
		if last := (*copied)[len(*copied)-1]; last != w.Text {
			t.Errorf("step %d: copied %q, want %q", i, last, w.Text)
		}
	}
}

func TestModelCopyFailure(t *testing.T) {
	m, _ := newTestModel(t, kinds.AutoKind)
	m.copyFn = func(string) error { return errors.New("no clipboard") }

	m = typeAndEnter(t, m, "1")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !m.statusIsError || !strings.Contains(m.status, "no clipboard") {
		t.Errorf("status = %q, want clipboard error", m.status)
	}
}

func TestModelReset(t *testing.T) {
	m, _ := newTestModel(t, kinds.AutoKind)

	m = typeAndEnter(t, m, "1 2 3")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.session != nil {
		t.Error("reset should drop the session")
	}
	if m.renders.ItemCount() != 0 {
		t.Errorf("reset should flush the render cache, %d items left", m.renders.ItemCount())
	}

	// A new session may pick a different kind.
	m = typeAndEnter(t, m, "pear apple")
	if m.session == nil || m.session.Kind() != "string" {
		t.Fatalf("session = %v, want a string session", m.session)
	}
	if got := m.traversal(); got != "apple pear" {
		t.Errorf("traversal = %q, want %q", got, "apple pear")
	}
}

func TestModelHelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t, kinds.AutoKind)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if !m.showHelp {
		t.Fatal("f1 should show help")
	}
	if !strings.Contains(m.View(), "Help") {
		t.Error("view should show the help panel")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if m.showHelp {
		t.Error("second f1 should hide help")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit")
	}
}

func TestModelTooSmall(t *testing.T) {
	m, _ := newTestModel(t, kinds.AutoKind)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	if got := next.(Model).View(); !strings.Contains(got, "too small") {
		t.Errorf("View = %q, want resize hint", got)
	}
}
