package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gallery-viewer/internal/gallery"
)

// chromeRows is the number of lines drawn around the thumbnail list
const chromeRows = 6

// Model is the bubbletea model of the terminal browser
type Model struct {
	title  string
	viewer *gallery.Viewer
	list   *listState
	sched  *tickScheduler
	keys   KeyMap
	styles *Styles

	width  int
	height int
}

// NewModel creates the browser over catalog. Scroller and Scheduler in
// opts are replaced by the terminal list.
func NewModel(title string, catalog *gallery.Catalog, opts gallery.Options) (Model, error) {
	list := newListState(20 - chromeRows)
	sched := &tickScheduler{}
	opts.Scroller = list
	opts.Scheduler = sched

	viewer, err := gallery.New(catalog, opts)
	if err != nil {
		return Model{}, fmt.Errorf("failed to create viewer: %w", err)
	}

	m := Model{
		title:  title,
		viewer: viewer,
		list:   list,
		sched:  sched,
		keys:   DefaultKeyMap(),
		styles: NewStyles(),
		height: 20,
	}
	m.sync()
	return m, nil
}

// Viewer exposes the underlying gallery viewer
func (m Model) Viewer() *gallery.Viewer { return m.viewer }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.setHeight(msg.Height - chromeRows)
		m.observe()
		return m, nil

	case scrollMsg:
		m.sync()
		msg.run()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.viewer.IsOpen() {
			m.handleModalKey(msg)
		} else {
			m.handleListKey(msg)
		}
		m.sync()
		return m, m.sched.drain()
	}

	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.viewer.Key(gallery.KeyArrowLeft)
	case key.Matches(msg, m.keys.Next):
		m.viewer.Key(gallery.KeyArrowRight)
	case key.Matches(msg, m.keys.Close):
		m.viewer.Key(gallery.KeyEscape)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.list.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.list.move(1)
		m.observe()
	case key.Matches(msg, m.keys.Open):
		if idx, ok := m.list.selected(); ok {
			item, _ := m.viewer.Catalog().At(idx)
			m.viewer.Click(item.Source)
		}
	case key.Matches(msg, m.keys.LoadMore):
		m.viewer.LoadMore()
	case key.Matches(msg, m.keys.PrevPage):
		m.changePage(m.viewer.PrevPage)
	case key.Matches(msg, m.keys.NextPage):
		m.changePage(m.viewer.NextPage)
	}
}

func (m Model) changePage(turn func() int) {
	before := m.viewer.Page()
	if turn() != before {
		m.list.cursor = 0
		m.list.offset = 0
	}
}

// observe reports the reveal trigger position to the viewer
func (m Model) observe() {
	m.sync()
	if m.viewer.Observe(m.list.sentinelDistance()) {
		m.sync()
	}
}

// sync rebuilds the list rows from the visible cards
func (m Model) sync() {
	var rows []int
	for _, card := range m.viewer.Snapshot().Cards {
		if !card.Hidden {
			rows = append(rows, card.Index)
		}
	}
	m.list.setRows(rows)
}

func (m Model) View() string {
	view := m.viewer.Snapshot()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.status(view)))
	b.WriteString("\n")

	if view.Modal.Open {
		b.WriteString(m.renderModal(view))
		b.WriteString("\n")
		b.WriteString(m.renderHelp(m.keys.modalHelp()))
		return b.String()
	}

	b.WriteString(m.renderList(view))
	if view.LoadMore.Visible {
		b.WriteString(m.styles.Control.Render("[m] load more"))
		b.WriteString("\n")
	}
	if view.Pager != nil {
		b.WriteString(m.renderPager(*view.Pager))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp(m.keys.listHelp()))
	return b.String()
}

func (m Model) status(view gallery.View) string {
	total := len(view.Cards)
	switch view.Mode {
	case gallery.ModeBatch:
		return fmt.Sprintf("%d of %d shown", m.viewer.Shown(), total)
	case gallery.ModePaged:
		return fmt.Sprintf("page %d of %d · %d items", m.viewer.Page(), m.viewer.TotalPages(), total)
	default:
		return fmt.Sprintf("%d items", total)
	}
}

func (m Model) renderList(view gallery.View) string {
	if len(m.list.rows) == 0 {
		return m.styles.Dim.Render("no images") + "\n"
	}

	var b strings.Builder
	end := min(m.list.offset+m.list.height, len(m.list.rows))
	for pos := m.list.offset; pos < end; pos++ {
		card := view.Cards[m.list.rows[pos]]
		marker := "  "
		if pos == m.list.cursor {
			marker = m.styles.Cursor.Render("> ")
		}
		line := fmt.Sprintf("%3d  %s  %s", card.Index+1, card.Item.Caption, m.styles.Dim.Render(card.Item.Source))
		if card.Index == m.list.focused {
			line = m.styles.Focused.Render(line)
		}
		b.WriteString(marker + m.styles.Row.Render(line) + "\n")
	}
	return b.String()
}

func (m Model) renderModal(view gallery.View) string {
	modal := view.Modal
	active := len(m.viewer.Strategy().Active())

	control := func(label string, disabled bool) string {
		if disabled {
			return m.styles.Disabled.Render(label)
		}
		return m.styles.Control.Render(label)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Caption.Render(modal.Caption),
		m.styles.Source.Render(modal.Source),
		"",
		fmt.Sprintf("%d / %d", modal.Index+1, active),
		control("‹ prev", modal.PrevDisabled)+"   "+control("close", false)+"   "+control("next ›", modal.NextDisabled),
	)
	return m.styles.Modal.Render(body)
}

func (m Model) renderPager(p gallery.PagerControls) string {
	parts := make([]string, 0, len(p.Buttons)+2)
	if p.PrevDisabled {
		parts = append(parts, m.styles.Disabled.Render("‹"))
	} else {
		parts = append(parts, m.styles.Page.Render("‹"))
	}
	for _, btn := range p.Buttons {
		switch {
		case btn.Ellipsis:
			parts = append(parts, m.styles.Dim.Render("…"))
		case btn.Current:
			parts = append(parts, m.styles.Current.Render(fmt.Sprintf("[%d]", btn.Page)))
		default:
			parts = append(parts, m.styles.Page.Render(fmt.Sprintf("%d", btn.Page)))
		}
	}
	if p.NextDisabled {
		parts = append(parts, m.styles.Disabled.Render("›"))
	} else {
		parts = append(parts, m.styles.Page.Render("›"))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " · "))
}
