package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"storefront/cart"
	"storefront/model"
	"storefront/price"
	"storefront/search"
)

// Catalog is where the listing comes from: the catalog service, or the
// catalog API client.
type Catalog interface {
	ListProducts(query string) ([]model.Product, error)
}

// Options configures a storefront Model.
type Options struct {
	Title            string
	Query            string // pre-populates the search filter
	HeroImages       []string
	AutoplayInterval time.Duration
	Formatter        *price.Formatter
	Logger           *zap.Logger
}

// heroID tags autoplay ticks of the banner slider; product sliders use their
// listing index.
const heroID = -1

type productsLoadedMsg struct {
	products []model.Product
	err      error
}

type slideMsg struct{ id int }

// Model is the storefront view. Every cart and slider mutation happens in
// Update; autoplay timers only post slideMsg values.
type Model struct {
	opts    Options
	catalog Catalog
	logger  *zap.Logger
	format  *price.Formatter

	cart  *cart.Store
	panel *CartPanel

	products []model.Product
	visible  []int // indexes into products after filtering
	cursor   int   // index into visible
	loaded   bool
	err      error

	anim *carousels

	filter        textinput.Model
	filterFocused bool

	keys   keyMap
	help   help.Model
	styles Styles
	width  int
}

// New builds the view with an empty cart.
func New(c Catalog, opts Options) Model {
	if opts.Formatter == nil {
		opts.Formatter = price.NewFormatter(price.DefaultLocale, price.DefaultSymbol)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Title == "" {
		opts.Title = "Storefront"
	}

	fi := textinput.New()
	fi.Placeholder = "Search products..."
	fi.Prompt = "Search: "
	fi.CharLimit = 80
	fi.Width = 40
	fi.SetValue(opts.Query)

	m := Model{
		opts:    opts,
		catalog: c,
		logger:  opts.Logger,
		format:  opts.Formatter,
		cart:    cart.New(),
		panel:   NewCartPanel(),
		filter:  fi,
		anim:    newCarousels(opts.HeroImages, opts.AutoplayInterval),
		keys:    defaultKeys(),
		help:    help.New(),
		styles:  DefaultStyles(),
	}

	m.cart.Subscribe(m.panel.Render)
	logger := m.logger
	m.cart.Subscribe(func(s cart.Snapshot) {
		logger.Debug("cart changed",
			zap.Int("lines", len(s.Items)),
			zap.Int("badge", s.TotalQuantity),
			zap.Int64("total", s.TotalPrice))
	})
	return m
}

// Cart exposes the store owned by the view.
func (m Model) Cart() *cart.Store { return m.cart }

// Panel exposes the cart panel renderer.
func (m Model) Panel() *CartPanel { return m.panel }

func loadProducts(c Catalog) tea.Cmd {
	return func() tea.Msg {
		ps, err := c.ListProducts("")
		return productsLoadedMsg{products: ps, err: err}
	}
}

// Close stops every autoplay timer. Any copy of the Model may be closed,
// including the one handed to tea.NewProgram before the catalog loaded.
func (m Model) Close() { m.anim.Close() }

// Init loads the catalog and starts listening for autoplay ticks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadProducts(m.catalog), m.anim.wait())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case productsLoadedMsg:
		m.onProductsLoaded(msg)
		return m, nil

	case slideMsg:
		m.onSlide(msg)
		return m, m.anim.wait()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && !(m.filterFocused && msg.String() == "q") {
			m.Close()
			return m, tea.Quit
		}
		if m.filterFocused {
			return m.updateFilter(msg)
		}
		if m.panel.IsOpen() {
			return m.updateCart(msg)
		}
		return m.updateListing(msg)
	}
	return m, nil
}

func (m *Model) onProductsLoaded(msg productsLoadedMsg) {
	m.loaded = true
	if msg.err != nil {
		m.err = msg.err
		m.logger.Error("load catalog", zap.Error(msg.err))
		return
	}
	m.products = msg.products
	m.anim.load(msg.products)
	m.logger.Info("catalog loaded", zap.Int("products", len(msg.products)))

	m.applyFilter()
	for i, s := range m.anim.sliders {
		if i != m.focused() {
			m.anim.play(s)
		}
	}
	m.anim.playHero()
}

func (m *Model) onSlide(msg slideMsg) {
	s := m.anim.byID(msg.id)
	// ticks queued before a pause are dropped
	if s != nil && s.Playing() {
		s.Next()
	}
}

// focused is the product index under the cursor, or -1.
func (m Model) focused() int {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return -1
	}
	return m.visible[m.cursor]
}

// setCursor moves the cursor; leaving a product resumes its slider and
// entering one pauses it.
func (m *Model) setCursor(c int) {
	if c >= len(m.visible) {
		c = len(m.visible) - 1
	}
	if c < 0 {
		c = 0
	}
	before := m.focused()
	m.cursor = c
	m.refocus(before)
}

func (m *Model) refocus(before int) {
	after := m.focused()
	if before == after {
		return
	}
	m.anim.play(m.anim.product(before))
	m.anim.pause(m.anim.product(after))
}

func (m *Model) applyFilter() {
	before := m.focused()
	m.visible = search.Filter(m.products, m.filter.Value(), m.format)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.refocus(before)
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filterFocused = false
		m.filter.Blur()
		m.applyFilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) updateListing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.setCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.setCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Top):
		m.setCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.setCursor(len(m.visible) - 1)
	case key.Matches(msg, m.keys.PrevImage):
		if i := m.focused(); i >= 0 {
			m.anim.sliders[i].Prev()
		}
	case key.Matches(msg, m.keys.NextImage):
		if i := m.focused(); i >= 0 {
			m.anim.sliders[i].Next()
		}
	case key.Matches(msg, m.keys.PrevHero):
		m.anim.hero.Prev()
	case key.Matches(msg, m.keys.NextHero):
		m.anim.hero.Next()
	case key.Matches(msg, m.keys.HoldHero):
		m.anim.toggleHero()
	case key.Matches(msg, m.keys.Add):
		if i := m.focused(); i >= 0 {
			m.addToCart(m.products[i])
		}
	case key.Matches(msg, m.keys.Cart):
		m.panel.Open()
	case key.Matches(msg, m.keys.Filter):
		m.filterFocused = true
		return m, m.filter.Focus()
	}
	return m, nil
}

// addToCart adds the product at its current unit price (sale price when
// present) and opens the cart panel.
func (m *Model) addToCart(p model.Product) {
	name := p.DisplayName()
	m.cart.AddItem(name, p.UnitPrice())
	m.logger.Info("added to cart", zap.String("name", name), zap.Int64("unit_price", p.UnitPrice()))
	m.panel.Open()
}

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.panel.clearNotice()
	switch {
	case key.Matches(msg, m.keys.Close):
		m.panel.Close()
	case key.Matches(msg, m.keys.Up):
		m.panel.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.panel.MoveCursor(1)
	case key.Matches(msg, m.keys.Increment):
		if name, ok := m.panel.Selected(); ok {
			m.cart.IncrementItem(name)
		}
	case key.Matches(msg, m.keys.Decrement):
		if name, ok := m.panel.Selected(); ok {
			m.cart.DecrementItem(name)
		}
	case key.Matches(msg, m.keys.Remove):
		if name, ok := m.panel.Selected(); ok {
			m.cart.RemoveItem(name)
		}
	case key.Matches(msg, m.keys.Checkout):
		m.panel.Checkout()
	}
	return m, nil
}

// View renders the storefront.
func (m Model) View() string {
	st := m.styles
	var b strings.Builder

	header := st.Header.Render(m.opts.Title)
	badge := st.Badge.Render(m.panel.Badge())
	gap := m.width - lipgloss.Width(header) - lipgloss.Width(badge)
	if gap < 2 {
		gap = 2
	}
	b.WriteString(header + strings.Repeat(" ", gap) + badge + "\n")
	if hero := m.anim.hero; hero.Len() > 0 {
		caption := fmt.Sprintf("[%d/%d] %s", hero.Index()+1, hero.Len(), hero.Current())
		if m.anim.heroHeld {
			caption += " (paused)"
		}
		b.WriteString(st.Hero.Render(caption))
		b.WriteString("\n")
	}
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	listing := m.listingView()
	if m.panel.IsOpen() {
		listing = lipgloss.JoinHorizontal(lipgloss.Top, listing, m.panel.View(st, m.format))
	}
	b.WriteString(listing)
	b.WriteString("\n\n")

	if m.panel.IsOpen() {
		b.WriteString(m.help.View(cartHelp(m.keys)))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m Model) listingView() string {
	st := m.styles
	switch {
	case !m.loaded:
		return st.Empty.Render("Loading catalog...")
	case m.err != nil:
		return st.Error.Render("Could not load catalog: " + m.err.Error())
	case len(m.products) == 0:
		return st.Empty.Render("No products yet.")
	case len(m.visible) == 0:
		return st.Empty.Render(fmt.Sprintf("No products match %q.", strings.TrimSpace(m.filter.Value())))
	}

	var b strings.Builder
	for row, i := range m.visible {
		p := m.products[i]
		name := p.DisplayName()
		marker := "  "
		if row == m.cursor {
			marker = "> "
			name = st.Selected.Render(name)
		}
		line := marker + name + "  " + st.Price.Render(m.format.Format(p.UnitPrice()))
		if p.OnSale() {
			line += " " + st.Original.Render(m.format.Format(p.Price))
		}
		if s := m.anim.sliders[i]; s.Len() > 0 {
			line += "  " + st.Caption.Render(fmt.Sprintf("[%d/%d] %s", s.Index()+1, s.Len(), s.Current()))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
