package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/erslice/erslice-cli/internal/core/domain"
	"github.com/erslice/erslice-cli/pkg/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [module]",
	Short: "Interactive structure explorer",
	Long: `Browse a module's classified folder structure interactively.

Vim Navigation:
- k / ↑ : Move Up
- j / ↓ : Move Down
- l / → : Expand Folder
- h / ← : Collapse Folder
- ?     : Toggle Help
- q     : Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	module := args[0]

	filenames, _, err := batchInput(args, "")
	if err != nil {
		return err
	}
	if len(filenames) == 0 {
		fmt.Println(ui.FormatWarning("Module has no assets to explore."))
		return nil
	}

	tree := structureService.Build(filenames)
	structureService.Optimize(tree)

	p := tea.NewProgram(newExploreModel(module, tree))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// --- TUI Model ---

// exploreRow is one visible line: either a folder node or an asset leaf
type exploreRow struct {
	node  *domain.FolderStructure
	asset string
	depth int
}

type exploreModel struct {
	module   string
	root     *domain.FolderStructure
	expanded map[*domain.FolderStructure]bool
	rows     []exploreRow
	cursor   int
	keys     exploreKeyMap
	help     help.Model
}

type exploreKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Collapse, k.Help, k.Quit}
}

func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Expand, k.Collapse},
		{k.Help, k.Quit},
	}
}

var exploreKeys = exploreKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Expand: key.NewBinding(
		key.WithKeys("right", "l", "enter"),
		key.WithHelp("→/l", "expand"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "collapse"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func newExploreModel(module string, root *domain.FolderStructure) exploreModel {
	m := exploreModel{
		module:   module,
		root:     root,
		expanded: make(map[*domain.FolderStructure]bool),
		keys:     exploreKeys,
		help:     help.New(),
	}
	// Top-level folders start expanded so the screen is not empty
	for _, child := range root.Children {
		m.expanded[child] = true
	}
	m.rebuildRows()
	return m
}

func (m *exploreModel) rebuildRows() {
	m.rows = m.rows[:0]
	m.appendRows(m.root, 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *exploreModel) appendRows(node *domain.FolderStructure, depth int) {
	for _, child := range node.Children {
		m.rows = append(m.rows, exploreRow{node: child, depth: depth})
		if m.expanded[child] {
			m.appendRows(child, depth+1)
		}
	}
	for _, asset := range node.Assets {
		m.rows = append(m.rows, exploreRow{asset: asset, depth: depth})
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Expand):
			if row := m.currentRow(); row != nil && row.node != nil {
				m.expanded[row.node] = true
				m.rebuildRows()
			}

		case key.Matches(msg, m.keys.Collapse):
			if row := m.currentRow(); row != nil && row.node != nil {
				m.expanded[row.node] = false
				m.rebuildRows()
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m exploreModel) currentRow() *exploreRow {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

func (m exploreModel) View() string {
	var s strings.Builder

	s.WriteString("\n")
	s.WriteString(ui.StyleTitle.Render(" " + ui.IconTree + " " + m.module))
	s.WriteString(ui.StyleMuted.Render(fmt.Sprintf(" (%d nodes, %d assets)",
		m.root.CountNodes()-1, m.root.CountAssets())))
	s.WriteString("\n\n")

	for i, row := range m.rows {
		cursor := "  "
		if m.cursor == i {
			cursor = ui.StyleAccent.Render("→ ")
		}

		indent := strings.Repeat("  ", row.depth)
		if row.node != nil {
			marker := "▸"
			if m.expanded[row.node] {
				marker = "▾"
			}
			line := marker + " " + row.node.Name
			if m.cursor == i {
				line = ui.StyleBold.Render(line)
			}
			line += ui.StyleMuted.Render(" (" + string(row.node.Role) + ")")
			if row.node.Metadata.State != "" {
				line += " " + ui.StyleWarning.Render("["+row.node.Metadata.State+"]")
			}
			s.WriteString(cursor + indent + line + "\n")
		} else {
			line := row.asset
			if m.cursor == i {
				line = ui.StyleBold.Render(line)
			} else {
				line = ui.StyleMuted.Render(line)
			}
			s.WriteString(cursor + indent + line + "\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys))
	s.WriteString("\n")

	return s.String()
}
