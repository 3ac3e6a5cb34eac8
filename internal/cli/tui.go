package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tilekit/docktree/pkg/layout"
)

// Box styles for the layout view.
var (
	boxStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorDim)
	boxSelectedStyle = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(colorCyan)
	boxTargetStyle   = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(colorYellow)

	formStyle         = lipgloss.NewStyle().Foreground(colorGray)
	formSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	statusStyle       = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command for interactive layout editing.
func (c *CLI) tuiCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "tui [layout.json]",
		Short: "Manipulate a layout interactively in the terminal",
		Long: `Manipulate a layout interactively in the terminal.

The layout is drawn as nested boxes. Select a form, then drop it onto a
target panel either as a stacked tab or by splitting the target in two.
Every mutation is saved back to the layout file immediately.

Keys:
  tab / shift+tab   select the next / previous form
  m                 start moving the selected form (stack)
  s                 start splitting with the selected form
  h / v             during a split, set horizontal / vertical orientation
  left / right      choose the target panel
  enter             drop the form on the target
  a                 add a new form to the selected form's panel
  esc               cancel the current move
  q                 quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				file = args[0]
			}
			return c.runTUI(file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultLayoutFile, "layout file to edit")

	return cmd
}

// runTUI loads the layout and runs the interactive editor.
func (c *CLI) runTUI(file string) error {
	tree, err := loadTree(file)
	if err != nil {
		return err
	}

	m := newEditorModel(tree, file)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	if em, ok := final.(editorModel); ok && em.saveErr != nil {
		return em.saveErr
	}
	return nil
}

// =============================================================================
// Editor Model
// =============================================================================

// editorMode is the interaction state of the editor.
type editorMode int

const (
	modeBrowse editorMode = iota // selecting a form
	modeStack                    // choosing a panel to stack onto
	modeSplit                    // choosing a panel to split
)

// editorModel is the bubbletea model for the interactive layout editor.
type editorModel struct {
	tree *layout.Tree
	file string

	mode      editorMode
	direction layout.Direction

	formIdx   int // index into forms(), the selected form
	targetIdx int // index into panels(), the drop target

	width  int
	height int

	status  string
	saveErr error
}

// newEditorModel creates an editor over tree, persisting to file.
func newEditorModel(tree *layout.Tree, file string) editorModel {
	return editorModel{
		tree:      tree,
		file:      file,
		direction: layout.Horizontal,
		width:     80,
		height:    24,
		status:    "tab: select form  m: move  s: split  a: add  q: quit",
	}
}

func (m editorModel) forms() []*layout.Form {
	return layout.Forms(m.tree.Root())
}

func (m editorModel) panels() []*layout.Panel {
	return layout.Panels(m.tree.Root())
}

// selectedForm returns the currently selected form, or nil when the
// layout holds no forms at all.
func (m editorModel) selectedForm() *layout.Form {
	forms := m.forms()
	if len(forms) == 0 {
		return nil
	}
	return forms[m.formIdx%len(forms)]
}

// targetPanel returns the current drop target.
func (m editorModel) targetPanel() *layout.Panel {
	panels := m.panels()
	return panels[m.targetIdx%len(panels)]
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 2 // status lines
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeBrowse
		m.status = "cancelled"
		return m, nil

	case "tab":
		if n := len(m.forms()); n > 0 {
			m.formIdx = (m.formIdx + 1) % n
		}
		return m, nil

	case "shift+tab":
		if n := len(m.forms()); n > 0 {
			m.formIdx = (m.formIdx + n - 1) % n
		}
		return m, nil

	case "left":
		if m.mode != modeBrowse {
			n := len(m.panels())
			m.targetIdx = (m.targetIdx + n - 1) % n
		}
		return m, nil

	case "right":
		if m.mode != modeBrowse {
			m.targetIdx = (m.targetIdx + 1) % len(m.panels())
		}
		return m, nil

	case "m":
		if m.selectedForm() != nil {
			m.mode = modeStack
			m.targetIdx = 0
			m.status = "move: ←/→ choose panel, enter to stack, esc to cancel"
		}
		return m, nil

	case "s":
		if m.selectedForm() != nil {
			m.mode = modeSplit
			m.targetIdx = 0
			m.status = "split: ←/→ choose panel, h/v orientation, enter to split"
		}
		return m, nil

	case "h":
		if m.mode == modeSplit {
			m.direction = layout.Horizontal
		}
		return m, nil

	case "v":
		if m.mode == modeSplit {
			m.direction = layout.Vertical
		}
		return m, nil

	case "a":
		return m.addForm()

	case "enter":
		return m.drop()
	}
	return m, nil
}

// addForm creates a new form and stacks it onto the selected form's
// panel, or onto the root panel when the layout is empty.
func (m editorModel) addForm() (tea.Model, tea.Cmd) {
	dest := ""
	if f := m.selectedForm(); f != nil {
		_, panel, _ := layout.FindForm(m.tree.Root(), f.ID)
		dest = panel.ID()
	} else if p, ok := m.tree.Root().(*layout.Panel); ok {
		dest = p.ID()
	} else {
		m.status = "no panel to add to"
		return m, nil
	}

	f := m.tree.NewForm(fmt.Sprintf("Form %d", len(m.forms())+1), nil, "")
	if err := m.tree.Stack(f.ID, dest); err != nil {
		m.status = "add failed: " + err.Error()
		return m, nil
	}
	m.status = "added " + f.ID
	return m.save()
}

// drop applies the pending stack or split to the chosen target panel.
func (m editorModel) drop() (tea.Model, tea.Cmd) {
	if m.mode == modeBrowse {
		return m, nil
	}
	f := m.selectedForm()
	if f == nil {
		m.mode = modeBrowse
		return m, nil
	}
	target := m.targetPanel()

	var err error
	switch m.mode {
	case modeStack:
		err = m.tree.Stack(f.ID, target.ID())
	case modeSplit:
		err = m.tree.Split(f.ID, target.ID(), m.direction)
	}
	m.mode = modeBrowse
	if err != nil {
		m.status = "drop failed: " + err.Error()
		return m, nil
	}
	m.formIdx = 0
	m.status = fmt.Sprintf("moved %s onto %s", f.ID, target.ID())
	return m.save()
}

// save persists the layout; a write failure ends the session.
func (m editorModel) save() (tea.Model, tea.Cmd) {
	if err := saveTree(m.tree, m.file); err != nil {
		m.saveErr = err
		return m, tea.Quit
	}
	return m, nil
}

// =============================================================================
// View
// =============================================================================

func (m editorModel) View() string {
	var b strings.Builder
	b.WriteString(m.viewNode(m.tree.Root(), m.width, m.height))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	return b.String()
}

// viewNode renders a subtree into a w×h cell box.
func (m editorModel) viewNode(n layout.Node, w, h int) string {
	const minCells = 6
	if w < minCells {
		w = minCells
	}
	if h < 3 {
		h = 3
	}

	switch n := n.(type) {
	case *layout.Panel:
		return m.viewPanel(n, w, h)
	case *layout.Splitter:
		share := n.Size / 100
		if n.Direction == layout.Horizontal {
			pw := clampInt(int(math.Round(float64(w)*share)), minCells, w-minCells)
			return lipgloss.JoinHorizontal(lipgloss.Top,
				m.viewNode(n.Primary, pw, h),
				m.viewNode(n.Secondary, w-pw, h))
		}
		ph := clampInt(int(math.Round(float64(h)*share)), 3, h-3)
		return lipgloss.JoinVertical(lipgloss.Left,
			m.viewNode(n.Primary, w, ph),
			m.viewNode(n.Secondary, w, h-ph))
	}
	return ""
}

// viewPanel renders one panel box with its tab list.
func (m editorModel) viewPanel(p *layout.Panel, w, h int) string {
	style := boxStyle
	if m.mode != modeBrowse && p.ID() == m.targetPanel().ID() {
		style = boxTargetStyle
	} else if f := m.selectedForm(); f != nil {
		if _, owner, ok := layout.FindForm(m.tree.Root(), f.ID); ok && owner.ID() == p.ID() {
			style = boxSelectedStyle
		}
	}

	selected := m.selectedForm()
	lines := []string{StyleDim.Render(p.ID())}
	for _, f := range p.Forms {
		label := f.Title
		if label == "" {
			label = f.ID
		}
		if selected != nil && f.ID == selected.ID {
			lines = append(lines, formSelectedStyle.Render("▸ "+label))
		} else {
			lines = append(lines, formStyle.Render("  "+label))
		}
	}

	return style.Width(w - 2).Height(h - 2).Render(strings.Join(lines, "\n"))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
