package prompt

import (
	"bufio"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single answer",
			input: "shipping the login flow\n",
			want:  []string{"shipping the login flow"},
		},
		{
			name:  "whitespace is trimmed",
			input: "  blocked on review  \n",
			want:  []string{"blocked on review"},
		},
		{
			name:  "empty line",
			input: "\n",
			want:  []string{""},
		},
		{
			name:  "eof without newline",
			input: "last answer",
			want:  []string{"last answer"},
		},
		{
			name:  "consecutive answers share the reader",
			input: "first\nsecond\n",
			want:  []string{"first", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReader(strings.NewReader(tt.input))

			for i, want := range tt.want {
				got, err := readLine(r)
				if err != nil {
					t.Fatalf("Read %d failed: %v", i, err)
				}
				if got != want {
					t.Errorf("Read %d: expected %q, got %q", i, want, got)
				}
			}
		})
	}
}

func TestModel_TypingAndEnter(t *testing.T) {
	var m tea.Model = newModel("Any blockers?")

	for _, r := range "none" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("atm")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	final, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected enter to quit the program")
	}

	got := final.(model)
	if string(got.input) != "none at" {
		t.Errorf("Expected input %q, got %q", "none at", string(got.input))
	}
	if !got.done {
		t.Error("Expected the model to be done after enter")
	}
}

func TestModel_CancelClearsInput(t *testing.T) {
	var m tea.Model = newModel("Any blockers?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("half an ans")})
	final, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if cmd == nil {
		t.Fatal("Expected ctrl+c to quit the program")
	}
	if got := final.(model); len(got.input) != 0 {
		t.Errorf("Expected cancel to clear the input, got %q", string(got.input))
	}
}

func TestModel_ViewShowsQuestion(t *testing.T) {
	m := newModel("What are you working on today?")

	view := m.View()
	if !strings.Contains(view, "What are you working on today?") {
		t.Errorf("Expected the question in the view, got %q", view)
	}

	m.done = true
	if m.View() != "" {
		t.Error("Expected an empty view once done")
	}
}
