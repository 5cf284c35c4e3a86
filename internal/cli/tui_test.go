package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/flamegraph/pkg/tree"
)

func browserTree() *tree.Simple {
	return tree.New("main", 100,
		tree.New("parse", 30),
		tree.New("render", 60,
			tree.New("draw", 35),
		),
	)
}

func press(m TreeBrowserModel, keys ...string) TreeBrowserModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(TreeBrowserModel)
	}
	return m
}

func TestTreeBrowserNavigation(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantLabel  string
		wantCursor int
	}{
		{"start", nil, "main", 0},
		{"down", []string{"j"}, "main", 1},
		{"down clamps", []string{"j", "j", "j"}, "main", 1},
		{"up clamps", []string{"k"}, "main", 0},
		{"zoom", []string{"j", "enter"}, "render", 0},
		{"zoom leaf stays", []string{"enter", "enter"}, "parse", 0},
		{"unzoom restores cursor", []string{"j", "enter", "backspace"}, "main", 1},
		{"reset", []string{"j", "enter", "enter", "r"}, "main", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewTreeBrowserModel(browserTree(), nil), tt.keys...)
			if got := m.Current().Label(); got != tt.wantLabel {
				t.Errorf("Current() = %q, want %q", got, tt.wantLabel)
			}
			if m.Cursor != tt.wantCursor {
				t.Errorf("Cursor = %d, want %d", m.Cursor, tt.wantCursor)
			}
		})
	}
}

func TestTreeBrowserQuit(t *testing.T) {
	m := NewTreeBrowserModel(browserTree(), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestTreeBrowserView(t *testing.T) {
	m := press(NewTreeBrowserModel(browserTree(), nil), "j", "enter")
	view := m.View()
	for _, want := range []string{"main › render", "draw", "58.3%"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestTreeBrowserWindowSize(t *testing.T) {
	m := NewTreeBrowserModel(browserTree(), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 8})
	got := next.(TreeBrowserModel)
	if got.Width != 120 || got.Height != 5 {
		t.Errorf("size = %dx%d, want 120x5", got.Width, got.Height)
	}
}

func TestFrameRows(t *testing.T) {
	rows := frameRows(browserTree(), 1)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0][0] != "parse" || rows[0][2] != "30.0%" {
		t.Errorf("rows[0] = %v, want parse at 30.0%%", rows[0])
	}
	if got := len(frameRows(browserTree(), 2)); got != 3 {
		t.Errorf("len(rows) at depth 2 = %d, want 3", got)
	}
}
