package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-isatty"
)

// stdin is shared between questions so a piped answer for the second
// question is not swallowed by the first read's buffering.
var stdin = bufio.NewReader(os.Stdin)

// Ask poses a single free-text question and returns the trimmed answer.
// On a terminal it runs an inline bubbletea input; otherwise it reads one
// line from stdin so the command stays usable in pipes and scripts.
func Ask(question string) (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return askTUI(question)
	}

	fmt.Printf("%s\n  > ", question)
	return readLine(stdin)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func askTUI(question string) (string, error) {
	m := newModel(question)
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		// Fall back to a plain read if the terminal refuses the program
		fmt.Printf("%s\n  > ", question)
		return readLine(stdin)
	}

	final, ok := result.(model)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model type %T", result)
	}
	return strings.TrimSpace(string(final.input)), nil
}

type model struct {
	question      string
	input         []rune
	done          bool
	questionStyle lipgloss.Style
	cursorStyle   lipgloss.Style
}

func newModel(question string) model {
	return model{
		question:      question,
		questionStyle: lipgloss.NewStyle().Bold(true),
		cursorStyle:   lipgloss.NewStyle().Faint(true),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyCtrlC, tea.KeyEsc:
		m.input = nil
		m.done = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}

	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s\n  > %s%s\n",
		m.questionStyle.Render(m.question),
		string(m.input),
		m.cursorStyle.Render("_"))
}
