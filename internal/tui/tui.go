package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/josa"
	"github.com/f3rmion/josa/hangul"
	"github.com/f3rmion/josa/internal/clipboard"
	"github.com/f3rmion/josa/internal/tui/bigchar"
)

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// result is one resolved particle attachment for the current word.
type result struct {
	form   string // canonical spelling of the particle
	phrase string // word with the resolved allomorph attached
}

// Model is the interactive particle explorer.
type Model struct {
	input    textinput.Model
	registry *josa.Registry
	style    josa.ToleranceStyle

	word    string
	results []result

	selected int
	copied   bool

	width  int
	height int
}

// New creates the interactive particle explorer.
func New(registry *josa.Registry, style josa.ToleranceStyle) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a word..."
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		input:    ti,
		registry: registry,
		style:    style,
	}
}

// Run starts the interactive particle explorer.
func Run(registry *josa.Registry, style josa.ToleranceStyle) error {
	p := tea.NewProgram(New(registry, style), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.resolveInput()
			return m, nil
		case "down", "ctrl+n":
			if len(m.results) > 0 {
				m.selected = (m.selected + 1) % len(m.results)
			}
			return m, nil
		case "up", "ctrl+p":
			if len(m.results) > 0 {
				m.selected--
				if m.selected < 0 {
					m.selected = len(m.results) - 1
				}
			}
			return m, nil
		case "ctrl+t":
			m.style = (m.style + 1) % 4
			if m.word != "" {
				m.resolve()
			}
			return m, nil
		case "ctrl+y":
			if m.selected < len(m.results) {
				if err := clipboard.Write(m.results[m.selected].phrase); err == nil {
					m.copied = true
					return m, clearCopiedAfter(2 * time.Second)
				}
			}
			return m, nil
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resolveInput() {
	word := strings.TrimSpace(m.input.Value())
	if word == "" {
		return
	}
	m.word = word
	m.selected = 0
	m.resolve()
}

func (m *Model) resolve() {
	m.results = m.results[:0]
	for _, p := range m.registry.Particles() {
		form := p.Tolerance(m.style)
		m.results = append(m.results, result{
			form:   form,
			phrase: m.registry.Postfix(m.word, form, josa.WithToleranceStyle(m.style)),
		})
	}
	// The copula conjugates rather than alternates; show common endings.
	for _, form := range []string{"이다", "입니다", "이에요", "이었다"} {
		m.results = append(m.results, result{
			form:   form,
			phrase: m.registry.Postfix(m.word, form, josa.WithToleranceStyle(m.style)),
		})
	}
	if m.selected >= len(m.results) {
		m.selected = 0
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("josa"))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render("Korean particle explorer"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.word != "" {
		detail := lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderWordBox(),
			"  ",
			m.renderResults(),
		)
		b.WriteString(detail)
	}

	b.WriteString("\n")
	if len(m.results) > 0 {
		if m.copied {
			b.WriteString(CopiedStyle.Render("Copied!"))
			b.WriteString("  ")
		}
		b.WriteString(HelpStyle.Render("↑/↓: select • ctrl+y: copy • ctrl+t: tolerance style • esc: quit"))
	} else {
		b.WriteString(HelpStyle.Render("Type a word and press Enter • esc: quit"))
	}

	return b.String()
}

// renderWordBox shows the word's final letter and its phoneme breakdown.
func (m Model) renderWordBox() string {
	var b strings.Builder

	last := lastRune(m.word)

	var letterDisplay string
	if hangul.IsSyllable(last) && bigchar.IsAvailable() {
		if art := bigchar.GetCached(string(last), 24, 12); art != "" {
			letterDisplay = BigLetterStyle.Render(art)
		}
	}
	if letterDisplay == "" {
		letterDisplay = LetterBoxStyle.Render(string(last))
	}

	b.WriteString(letterDisplay)
	b.WriteString("\n")

	var lines []string
	if onset, nucleus, coda, err := hangul.Split(last); err == nil {
		lines = append(lines, phonemeRow("Onset", onset))
		lines = append(lines, phonemeRow("Nucleus", nucleus))
		lines = append(lines, phonemeRow("Coda", coda))
	}

	codaLabel := "none"
	if coda, ok := josa.GuessCoda(m.word); !ok {
		codaLabel = "undetermined"
	} else if coda != "" {
		codaLabel = coda
	}
	lines = append(lines, fmt.Sprintf("%s %s",
		LabelStyle.Render("Final:"),
		PhonemeStyle.Render(codaLabel),
	))

	b.WriteString(BoxStyle.Render(
		SubtitleStyle.Render("Phonemes") + "\n\n" + strings.Join(lines, "\n"),
	))

	return WordDisplayStyle.Render(b.String())
}

func phonemeRow(label string, phoneme rune) string {
	value := "Ø"
	if phoneme != 0 {
		value = string(phoneme)
	}
	return fmt.Sprintf("%s %s", LabelStyle.Render(label+":"), PhonemeStyle.Render(value))
}

// renderResults shows every catalog particle resolved for the word.
func (m Model) renderResults() string {
	formWidth := 0
	for _, r := range m.results {
		if w := runewidth.StringWidth(r.form); w > formWidth {
			formWidth = w
		}
	}

	var rows []string
	for i, r := range m.results {
		form := runewidth.FillRight(r.form, formWidth)
		line := fmt.Sprintf("%s  %s", ParticleStyle.Render(form), r.phrase)
		if i == m.selected {
			rows = append(rows, RowActiveStyle.Render(line))
		} else {
			rows = append(rows, RowStyle.Render(line))
		}
	}

	return BoxStyle.Render(
		SubtitleStyle.Render("Particles") + "\n\n" + strings.Join(rows, "\n"),
	)
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
