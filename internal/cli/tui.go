package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wordfield/wordfield/pkg/engine"
)

// List styles
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// WordListModel - Interactive word review
// =============================================================================

// wordRow pairs a counted word with its inclusion state.
type wordRow struct {
	Word     engine.Word
	Included bool
}

// WordListModel is the bubbletea model for reviewing counted words before
// they are written out. Space toggles a word, enter accepts the selection.
type WordListModel struct {
	Rows     []wordRow
	Cursor   int
	Accepted bool
	Height   int
	Offset   int
}

// NewWordListModel creates a word list model with every word included.
func NewWordListModel(words []engine.Word) WordListModel {
	rows := make([]wordRow, len(words))
	for i, w := range words {
		rows[i] = wordRow{Word: w, Included: true}
	}
	return WordListModel{
		Rows:   rows,
		Height: 15,
	}
}

// Selected returns the words still included after the review.
func (m WordListModel) Selected() []engine.Word {
	out := make([]engine.Word, 0, len(m.Rows))
	for _, r := range m.Rows {
		if r.Included {
			out = append(out, r.Word)
		}
	}
	return out
}

func (m WordListModel) Init() tea.Cmd {
	return nil
}

func (m WordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			if len(m.Rows) > 0 {
				m.Rows[m.Cursor].Included = !m.Rows[m.Cursor].Included
			}
		case "enter":
			m.Accepted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m WordListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Review Words"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ␣ toggle  ⏎ accept  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		included := "✓"
		if !r.Included {
			included = ""
		}

		rows = append(rows, []string{
			cursor,
			r.Word.Text,
			fmt.Sprintf("%.0f", r.Word.Weight),
			included,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Word", "Count", "Keep").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			r := m.Rows[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 2 {
				base = base.Foreground(colorGray)
			}

			if isCurrent {
				if r.Included {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Foreground(colorDim).Bold(true)
			}
			if r.Included {
				return base
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d selected",
		m.Cursor+1, len(m.Rows), len(m.Selected()))))

	return b.String()
}

// runWordPicker runs the interactive review and returns the accepted words.
// A nil slice with nil error means the user quit without accepting.
func runWordPicker(words []engine.Word) ([]engine.Word, error) {
	model := NewWordListModel(words)
	prog := tea.NewProgram(model)
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("interactive review: %w", err)
	}
	result, ok := final.(WordListModel)
	if !ok || !result.Accepted {
		return nil, nil
	}
	return result.Selected(), nil
}
