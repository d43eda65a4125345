package inbox

import (
	"context"
	"image"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/contentcards/internal/components"
	"github.com/alexisbeaulieu97/contentcards/internal/content"
	"github.com/alexisbeaulieu97/contentcards/internal/events"
	"github.com/alexisbeaulieu97/contentcards/internal/logger"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
)

// Model is the inbox screen. It follows a reconciled state stream and
// forwards card events to an events.Observer.
type Model struct {
	ctx      context.Context
	states   <-chan state.UIState
	current  state.UIState
	closed   bool
	observer events.Observer

	refresher  Refresher
	refreshing bool

	renderer     *components.Renderer
	rendererOpts []components.RendererOption
	loader       ImageLoader
	images       *imageCache
	requested    map[string]bool

	// UI state
	cursor    int
	button    int
	status    string
	statusSeq int

	// Component state
	spinner  spinner.Model
	viewport viewport.Model

	// Dimensions
	width  int
	height int

	log *logger.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithRefresher lets the r key and startup trigger a provider refresh.
func WithRefresher(r Refresher) Option {
	return func(m *Model) { m.refresher = r }
}

// WithObserver routes card events to o.
func WithObserver(o events.Observer) Option {
	return func(m *Model) { m.observer = o }
}

// WithRendererOptions passes styles, custom loading and error views and the
// like through to the card renderer.
func WithRendererOptions(opts ...components.RendererOption) Option {
	return func(m *Model) { m.rendererOpts = append(m.rendererOpts, opts...) }
}

// WithImageLoader enables image fetching.
func WithImageLoader(l ImageLoader) Option {
	return func(m *Model) { m.loader = l }
}

func WithLogger(log *logger.Logger) Option {
	return func(m *Model) { m.log = log }
}

// NewModel creates the inbox model over a state stream such as the one
// returned by state.Combine.
func NewModel(ctx context.Context, states <-chan state.UIState, opts ...Option) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		ctx:       ctx,
		states:    states,
		current:   state.Loading{},
		images:    newImageCache(),
		requested: make(map[string]bool),
		button:    -1,
		spinner:   s,
		viewport:  viewport.New(80, 22),
		width:     80,
		height:    24,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	renderOpts := append([]components.RendererOption{components.WithImages(m.images)}, m.rendererOpts...)
	m.renderer = components.NewRenderer(renderOpts...)
	m.syncViewport()
	return m
}

// Init starts the spinner, the state subscription and the first refresh.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, waitForStateCmd(m.states)}
	if m.refresher != nil {
		cmds = append(cmds, refreshCmd(m.ctx, m.refresher))
	}
	return tea.Batch(cmds...)
}

// State returns the last received UI state.
func (m Model) State() state.UIState {
	return m.current
}

// Visible returns the cards currently on screen.
func (m Model) Visible() []*content.Card {
	if s, ok := m.current.(state.Success); ok {
		return s.Visible()
	}
	return nil
}

// Selected returns the card under the cursor.
func (m Model) Selected() (*content.Card, bool) {
	visible := m.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil, false
	}
	return visible[m.cursor], true
}

// Status returns the status line message, if any.
func (m Model) Status() string {
	return m.status
}

// imageCache holds decoded images by URL. It is only touched from Update
// and View.
type imageCache struct {
	byURL map[string]image.Image
}

func newImageCache() *imageCache {
	return &imageCache{byURL: make(map[string]image.Image)}
}

func (c *imageCache) Lookup(url string) (image.Image, bool) {
	img, ok := c.byURL[url]
	return img, ok
}

func (c *imageCache) store(url string, img image.Image) {
	c.byURL[url] = img
}
