package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/soettl/fluentui/internal/config"
	"github.com/soettl/fluentui/internal/domain"
	"github.com/soettl/fluentui/internal/eventbus"
	"github.com/soettl/fluentui/internal/renderer"
	"github.com/soettl/fluentui/internal/selection"
	"github.com/soettl/fluentui/internal/store"
	"github.com/soettl/fluentui/internal/ui/input"
	"github.com/soettl/fluentui/internal/ui/input/modes"
	inputtypes "github.com/soettl/fluentui/internal/ui/input/types"
	"github.com/soettl/fluentui/internal/ui/logic"
	"github.com/soettl/fluentui/internal/ui/views"
	"github.com/soettl/fluentui/internal/viewport"
	"github.com/soettl/fluentui/internal/window"
)

const (
	// DefaultTitle is shown above the column header
	DefaultTitle = "Files Section 1"

	statusTimeout = 3 * time.Second
	defaultWidth  = 80
)

// Options configures a Model
type Options struct {
	Bus    eventbus.EventBus
	Config *config.Config
	// ConfigService persists view changes on quit; may be nil
	ConfigService config.ConfigService
	Store         store.DocumentStore
	Selection     *selection.Service
	Title         string
}

// Model represents the UI state
type Model struct {
	bus           eventbus.EventBus
	config        *config.Config
	configService config.ConfigService
	store         store.DocumentStore
	selection     *selection.Service
	title         string

	width  int
	height int

	tracker   viewport.Tracker
	renderer  *renderer.Renderer
	frame     renderer.Frame
	rows      []views.SurfaceRow
	renderErr error

	// loading balances started against finished loads per page; bus
	// handlers run concurrently so either event may arrive first
	loading       map[domain.ItemRange]int
	statusMessage string
	statusKind    views.MessageKind
	statusSeq     int
	configDirty   bool

	// Handlers
	navigator    *logic.Navigator // focus and reveal scrolling
	views        *views.Renderer  // view renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	keys         modes.KeyMap
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	docs := opts.Store
	if docs == nil {
		docs = store.NewMemoryDocumentStore()
	}
	sel := opts.Selection
	if sel == nil {
		sel = selection.NewService(opts.Bus)
	}
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	keys := modes.DefaultKeyMap()

	m := &Model{
		bus:           opts.Bus,
		config:        cfg,
		configService: opts.ConfigService,
		store:         docs,
		selection:     sel,
		title:         title,
		tracker: viewport.New(
			viewport.WithFrameInterval(cfg.Scroll.FrameInterval.Duration),
			viewport.WithStoppedScrollingTimeout(cfg.Scroll.StoppedScrollingTimeout.Duration),
		),
		renderer:     renderer.New(cfg.List.EnableHardwareAccelleration),
		navigator:    logic.NewNavigator(),
		views:        views.NewRenderer(),
		helpRenderer: NewHelpRenderer(keys),
		inputHandler: input.New(keys),
		keys:         keys,
		loading:      make(map[domain.ItemRange]int),
	}

	m.refresh()
	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Dispose stops the scroll tracker; pending frame and debounce messages are
// ignored afterwards
func (m *Model) Dispose() {
	if m.tracker.Disposed() {
		return
	}
	m.tracker.Dispose()
	log.Printf("Disposed list at scroll offset %.0f", m.ScrollTop())
}

// Context implementation for the input handler

func (m *Model) FocusedIndex() int { return m.navigator.GetFocusedIndex() }
func (m *Model) ItemCount() int    { return m.config.ItemCount }
func (m *Model) HasSelection() bool {
	return m.selection.IsModal()
}
func (m *Model) SelectedCount() int { return m.selection.Count() }
func (m *Model) IsScrolling() bool  { return m.tracker.State().IsScrolling }

// Frame returns the last rendered frame
func (m *Model) Frame() renderer.Frame {
	return m.frame
}

// ScrollTop returns the committed vertical scroll offset
func (m *Model) ScrollTop() float64 {
	return m.tracker.State().ScrollDistance.At(domain.AxisY)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		return m, m.scrollTo(m.target())

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case viewport.FrameMsg, viewport.StoppedScrollingMsg:
		var cmd tea.Cmd
		m.tracker, cmd = m.tracker.Update(msg)
		if m.tracker.Committed() {
			if m.bus != nil {
				m.bus.Publish(domain.ViewportChangedEvent{State: m.tracker.State()})
			}
			m.refresh()
		}
		return m, cmd

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case ConfigReloadedMsg:
		return m, m.applyConfig(msg.Config)

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), views.MessageError)
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
		}
		return m, nil

	case quitMsg:
		if msg.saveConfig && m.configService != nil {
			if err := m.saveViewSettings(); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
		}
		m.Dispose()
		return m, tea.Quit

	default:
		return m, nil
	}
}

// saveViewSettings writes the row density back to the config file. The file
// is re-read so values overridden on the command line are not persisted.
func (m *Model) saveViewSettings() error {
	saved, err := m.configService.Load()
	if err != nil {
		return err
	}
	saved.List.Compact = m.config.List.Compact
	return m.configService.Save(saved)
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.RangeLoadStartedEvent:
		m.trackLoad(e.Range, 1)

	case domain.RangeLoadedEvent:
		m.trackLoad(e.Range, -1)
		m.refresh()

	case domain.RangeLoadFailedEvent:
		m.trackLoad(e.Range, -1)
		if errors.Is(e.Err, context.Canceled) {
			return nil
		}
		return m.setStatus(fmt.Sprintf("Failed to load %s: %v", e.Range, e.Err), views.MessageError)

	case domain.ErrorEvent:
		return m.setStatus(e.Message, views.MessageError)
	}
	return nil
}

func (m *Model) trackLoad(r domain.ItemRange, delta int) {
	if n := m.loading[r] + delta; n != 0 {
		m.loading[r] = n
	} else {
		delete(m.loading, r)
	}
}

// loadingCount is the number of pages with a load in flight
func (m *Model) loadingCount() int {
	n := 0
	for _, pending := range m.loading {
		n += max(pending, 0)
	}
	return n
}

// applyConfig switches to a reloaded configuration
func (m *Model) applyConfig(cfg *config.Config) tea.Cmd {
	if cfg == nil {
		return nil
	}

	m.config = cfg
	m.configDirty = false
	m.tracker.SetTimings(cfg.Scroll.FrameInterval.Duration, cfg.Scroll.StoppedScrollingTimeout.Duration)
	m.renderer.SetHardwareAccelleration(cfg.List.EnableHardwareAccelleration)
	m.selection.Truncate(cfg.ItemCount)
	m.refresh()

	return tea.Batch(
		m.scrollTo(m.target()),
		m.setStatus("Configuration reloaded", views.MessageSuccess),
	)
}

// geometry describes the list for the current terminal size and config
func (m *Model) geometry() window.Geometry {
	return window.Geometry{
		ItemCount:           m.config.ItemCount,
		ItemHeight:          m.config.List.CurrentItemHeight(),
		ViewportHeight:      float64(views.ViewportHeight(m.height)),
		SurfaceTop:          float64(views.SurfaceTop(m.padding())),
		OverscanRatio:       m.config.List.OverscanRatio,
		ScrollOverscanRatio: m.config.List.ScrollOverscanRatio,
	}
}

func (m *Model) padding() int {
	return int(m.config.List.SurfaceTop)
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// refresh renders the materialized rows for the committed viewport state
func (m *Model) refresh() {
	g := m.geometry()
	m.navigator.UpdateState(g.ItemCount, g.ItemHeight, g.SurfaceTop, g.ViewportHeight)

	rowHeight := max(int(math.Ceil(g.ItemHeight)), 1)
	width := m.contentWidth()

	frame, err := m.renderer.Render(m.tracker.State(), g, renderer.Callbacks{
		OnRenderItem: func(p renderer.ItemProps) string {
			return m.renderItem(p.Index, rowHeight, width)
		},
		OnItemsRendered: func(p renderer.ItemsRenderedProps) {
			if m.bus == nil {
				return
			}
			m.bus.Publish(domain.ItemsRenderedEvent{
				VisibleRange:      p.VisibleRange,
				MaterializedRange: p.MaterializedRange,
				FocusedRange:      p.FocusedRange,
			})
		},
		OnGetMaterializedRanges: window.KeepIndexMaterialized(m.navigator.GetFocusedIndex),
	})
	if err != nil {
		log.Printf("Render failed: %v", err)
		m.renderErr = err
		return
	}
	m.renderErr = nil

	m.frame = frame
	m.rows = make([]views.SurfaceRow, 0, len(frame.Items))
	for _, item := range frame.Items {
		m.rows = append(m.rows, views.SurfaceRow{
			Index:  item.Index,
			Offset: item.Style.Line(),
			Lines:  strings.Split(item.Content, "\n"),
		})
	}
}

func (m *Model) renderItem(index, height, width int) string {
	doc, loaded := m.store.Get(index)
	return m.views.RenderRow(doc, views.RowState{
		Loaded:   loaded,
		Focused:  index == m.navigator.GetFocusedIndex(),
		Selected: m.selection.IsIndexSelected(index),
		Modal:    m.selection.IsModal(),
		Height:   height,
	}, width)
}

// target is the scroll offset the list is heading to
func (m *Model) target() float64 {
	return m.tracker.Target().At(domain.AxisY)
}

// scrollTo feeds a clamped scroll sample to the tracker
func (m *Model) scrollTo(top float64) tea.Cmd {
	top = m.navigator.ClampScroll(top)
	if top == m.target() && m.tracker.State().ScrollDistance.At(domain.AxisY) == top {
		return nil
	}
	return m.tracker.Scroll(0, top)
}

// reveal scrolls so the focused row is fully visible
func (m *Model) reveal() tea.Cmd {
	return m.scrollTo(m.navigator.Reveal(m.target()))
}

func (m *Model) setStatus(message string, kind views.MessageKind) tea.Cmd {
	m.statusSeq++
	m.statusMessage = message
	m.statusKind = kind

	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.FocusAction:
		m.navigator.MoveFocus(a.Delta)
		m.refresh()
		return m.reveal()

	case inputtypes.FocusToAction:
		index := a.Index
		if index < 0 {
			index = m.navigator.GetMaxIndex()
		}
		m.navigator.SetFocusedIndex(index)
		m.refresh()
		return m.reveal()

	case inputtypes.ScrollAction:
		return m.scrollTo(m.target() + a.Lines)

	case inputtypes.PageAction:
		g := m.geometry()
		top := m.navigator.ClampScroll(m.target() + a.Pages*g.ViewportHeight)
		if a.MoveFocus {
			rows := int(math.Round(a.Pages * float64(m.navigator.RowsPerPage())))
			m.navigator.MoveFocus(rows)
			m.refresh()
			top = m.navigator.Reveal(top)
		}
		return m.scrollTo(top)

	case inputtypes.ToggleSelectionAction:
		index := a.Index
		if index < 0 {
			index = m.navigator.GetFocusedIndex()
		}
		m.selection.Toggle(index)
		m.refresh()

	case inputtypes.ExtendSelectionAction:
		focused := m.navigator.GetFocusedIndex()
		if focused < 0 {
			return nil
		}
		if m.selection.LastSelected() < 0 {
			m.selection.Toggle(focused)
		}
		m.selection.SelectRange(m.navigator.MoveFocus(a.Delta))
		m.refresh()
		return m.reveal()

	case inputtypes.SelectAllAction:
		m.selection.SelectAll(m.config.ItemCount)
		m.refresh()

	case inputtypes.DeselectAllAction:
		m.selection.DeselectAll()
		m.refresh()

	case inputtypes.ToggleCompactAction:
		return m.toggleCompact()

	case inputtypes.ShowHelpAction:
		return showInPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.InspectFrameAction:
		return showInPager(m.inspectContent())

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeJump {
			return m.jumpTo(a.Text)
		}

	case inputtypes.QuitAction:
		save := m.configDirty && !a.Force
		return func() tea.Msg { return quitMsg{saveConfig: save} }
	}

	return nil
}

// toggleCompact switches the row density and keeps the same rows in view
func (m *Model) toggleCompact() tea.Cmd {
	g := m.geometry()
	oldHeight := g.ItemHeight

	m.config.List.Compact = !m.config.List.Compact
	m.configDirty = true

	newHeight := m.config.List.CurrentItemHeight()
	top := m.target()
	if top > g.SurfaceTop {
		top = g.SurfaceTop + (top-g.SurfaceTop)*newHeight/oldHeight
	}

	m.refresh()
	return m.scrollTo(m.navigator.Reveal(top))
}

func (m *Model) jumpTo(text string) tea.Cmd {
	row, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || row < 1 || row > m.config.ItemCount {
		return m.setStatus(fmt.Sprintf("No row %q", text), views.MessageError)
	}

	m.navigator.SetFocusedIndex(row - 1)
	m.refresh()
	return m.reveal()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	step := float64(m.config.Scroll.WheelStep)

	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		return m.scrollTo(m.target() - step)

	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		return m.scrollTo(m.target() + step)

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		// Rows do not take pointer events while scrolling
		if m.frame.PointerEventsDisabled {
			return nil
		}
		index, ok := m.rowAt(msg)
		if !ok {
			return nil
		}
		m.navigator.SetFocusedIndex(index)
		if msg.X < views.CheckColumnWidth() {
			m.selection.Toggle(index)
		}
		m.refresh()
		return m.reveal()
	}

	return nil
}

// rowAt finds the row under the mouse. Zones are registered asynchronously, so
// until they are known the row is derived from the scroll offset.
func (m *Model) rowAt(msg tea.MouseMsg) (int, bool) {
	for _, row := range m.rows {
		for line := range row.Lines {
			if z := zone.Get(views.RowZoneID(row.Index, line)); z != nil && z.InBounds(msg) {
				return row.Index, true
			}
		}
	}

	if msg.Y >= views.ViewportHeight(m.height) {
		return 0, false
	}
	return m.navigator.IndexAtLine(m.ScrollTop(), msg.Y)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := m.tracker.State()
	status := views.Status{
		ItemCount:    m.config.ItemCount,
		LoadedCount:  m.store.Len(),
		Visible:      m.frame.Result.VisibleRange,
		Materialized: m.frame.Result.MaterializedRanges,
		Rendered:     len(m.frame.Items),
		Scrolling:    state.IsScrolling,
		Direction:    state.ScrollDirection.At(domain.AxisY),
		Selected:     m.selection.Count(),
		Loading:      m.loadingCount(),
		Compact:      m.config.List.Compact,
		Message:      m.statusMessage,
		MessageKind:  m.statusKind,
	}
	if m.renderErr != nil {
		status.Message = m.renderErr.Error()
		status.MessageKind = views.MessageError
	}

	prompt := ""
	if ti := m.inputHandler.TextInput(); ti != nil {
		prompt = ti.View()
	}

	return zone.Scan(m.views.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Padding:       m.padding(),
		ScrollTop:     int(math.Round(m.ScrollTop())),
		Title:         m.title,
		SurfaceHeight: int(math.Ceil(m.frame.SurfaceHeight)),
		Rows:          m.rows,
		Status:        status,
		Prompt:        prompt,
		HelpKeys:      m.keys.ShortHelp(),
	}))
}

// inspectContent describes the last frame for the pager
func (m *Model) inspectContent() string {
	g := m.geometry()
	state := m.tracker.State()
	result := m.frame.Result
	stats := m.renderer.Stats()

	var b strings.Builder
	fmt.Fprintf(&b, "Frame\n\n")
	fmt.Fprintf(&b, "  items           %d\n", g.ItemCount)
	fmt.Fprintf(&b, "  item height     %v\n", g.ItemHeight)
	fmt.Fprintf(&b, "  viewport        %v lines\n", g.ViewportHeight)
	fmt.Fprintf(&b, "  surface top     %v\n", g.SurfaceTop)
	fmt.Fprintf(&b, "  surface height  %v\n", m.frame.SurfaceHeight)
	fmt.Fprintf(&b, "  overscan        %d rows\n", g.OverscanCount())
	fmt.Fprintf(&b, "  scroll top      %v\n", state.ScrollDistance.At(domain.AxisY))
	fmt.Fprintf(&b, "  scrolling       %t (%s)\n", state.IsScrolling, state.ScrollDirection.At(domain.AxisY))
	fmt.Fprintf(&b, "  visible         %s\n", result.VisibleRange)
	fmt.Fprintf(&b, "  materialized    %s\n", result.MaterializedRange)
	if result.FocusedRange != nil {
		fmt.Fprintf(&b, "  focused         %s\n", *result.FocusedRange)
	}
	for _, r := range result.MaterializedRanges {
		fmt.Fprintf(&b, "  range           %s\n", r)
	}
	fmt.Fprintf(&b, "  rendered        %d\n", len(m.frame.Items))
	fmt.Fprintf(&b, "  positioning     %s\n", m.frame.Positioning)
	fmt.Fprintf(&b, "  style cache     %d entries, %d hits, %d misses, %d flushes\n",
		stats.Entries, stats.Hits, stats.Misses, stats.Flushes)

	fmt.Fprintf(&b, "\nRendered items\n\n")
	for _, item := range m.frame.Items {
		fmt.Fprintf(&b, "  #%-8d %s\n", item.Index, item.Style)
	}

	return b.String()
}
