package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"storefront/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeCatalog struct {
	products []model.Product
	err      error
}

func (f fakeCatalog) ListProducts(string) ([]model.Product, error) {
	return f.products, f.err
}

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Cà phê sữa", Description: "Iced milk coffee", Price: 25000, Images: []string{"cf1.jpg", "cf2.jpg"}},
		{ID: 2, Name: "Trà đào", Price: 40000, SalePrice: model.Int64(30000), Images: []string{"td1.jpg", "td2.jpg", "td3.jpg"}},
		{ID: 3, Name: "", Price: 10000},
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func newLoaded(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.AutoplayInterval == 0 {
		opts.AutoplayInterval = time.Hour
	}
	c := fakeCatalog{products: sampleProducts()}
	m := update(t, New(c, opts), loadProducts(c)())
	t.Cleanup(m.Close)
	return m
}

func TestModel_AddOpensCartAndUpdatesBadge(t *testing.T) {
	m := newLoaded(t, Options{})
	assert.Equal(t, "Cart", m.Panel().Badge())

	m = update(t, m, runes("a"))
	assert.True(t, m.Panel().IsOpen())
	assert.Equal(t, "Cart (1)", m.Panel().Badge())

	m = update(t, m, esc, runes("a"))
	assert.Equal(t, "Cart (2)", m.Panel().Badge())
	it, ok := m.Cart().Item("Cà phê sữa")
	require.True(t, ok)
	assert.Equal(t, 2, it.Quantity)
	assert.Equal(t, int64(50000), m.Cart().TotalPrice())
}

func TestModel_AddUsesSalePrice(t *testing.T) {
	m := newLoaded(t, Options{})
	m = update(t, m, down, runes("a"))

	it, ok := m.Cart().Item("Trà đào")
	require.True(t, ok)
	assert.Equal(t, int64(30000), it.UnitPrice)
}

func TestModel_UnnamedProductUsesDefaultName(t *testing.T) {
	m := newLoaded(t, Options{})
	m = update(t, m, runes("G"), runes("a"))

	_, ok := m.Cart().Item(model.DefaultProductName)
	assert.True(t, ok)
}

func TestModel_CartPanelControls(t *testing.T) {
	m := newLoaded(t, Options{})
	m = update(t, m, runes("a"), runes("+"), runes("+"))
	it, _ := m.Cart().Item("Cà phê sữa")
	assert.Equal(t, 3, it.Quantity)

	m = update(t, m, runes("-"), runes("-"), runes("-"), runes("-"))
	it, _ = m.Cart().Item("Cà phê sữa")
	assert.Equal(t, 1, it.Quantity, "quantity floors at one")

	m = update(t, m, enter)
	assert.Equal(t, checkoutNotice, m.Panel().Notice())

	m = update(t, m, runes("x"))
	assert.True(t, m.Cart().IsEmpty())
	assert.Empty(t, m.Panel().Notice())
	assert.Equal(t, "Cart", m.Panel().Badge())

	m = update(t, m, enter)
	assert.Empty(t, m.Panel().Notice(), "checkout is disabled for an empty cart")

	m = update(t, m, runes("c"))
	assert.False(t, m.Panel().IsOpen())
}

func TestModel_FilterTyping(t *testing.T) {
	m := newLoaded(t, Options{})
	require.Len(t, m.visible, 3)

	m = update(t, m, runes("/"), runes("T"), runes("R"), runes("À"))
	assert.Equal(t, []int{1}, m.visible)

	// "q" while typing goes to the filter rather than quitting
	m = update(t, m, runes("q"))
	assert.Empty(t, m.visible)
	assert.Contains(t, m.View(), "No products match")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, esc)
	assert.False(t, m.filterFocused)
	assert.Equal(t, []int{1}, m.visible)
}

func TestModel_FilterMatchesFormattedPrice(t *testing.T) {
	m := newLoaded(t, Options{Query: "25.000"})
	assert.Equal(t, []int{0}, m.visible)
}

func TestModel_FocusPausesProductSlider(t *testing.T) {
	m := newLoaded(t, Options{})

	assert.False(t, m.anim.sliders[0].Playing(), "focused product is paused")
	assert.True(t, m.anim.sliders[1].Playing())
	assert.False(t, m.anim.sliders[2].Playing(), "no images, no timer")

	m = update(t, m, down)
	assert.True(t, m.anim.sliders[0].Playing())
	assert.False(t, m.anim.sliders[1].Playing())
}

func TestModel_FilterMovesFocus(t *testing.T) {
	m := newLoaded(t, Options{Query: "đào"})
	assert.False(t, m.anim.sliders[1].Playing())
	assert.True(t, m.anim.sliders[0].Playing())
}

func TestModel_SlideMessages(t *testing.T) {
	m := newLoaded(t, Options{HeroImages: []string{"h1.jpg", "h2.jpg"}})
	require.True(t, m.anim.hero.Playing())

	m = update(t, m, slideMsg{id: heroID}, slideMsg{id: 1}, slideMsg{id: 0}, slideMsg{id: 99})
	assert.Equal(t, 1, m.anim.hero.Index())
	assert.Equal(t, 1, m.anim.sliders[1].Index())
	assert.Equal(t, 0, m.anim.sliders[0].Index(), "paused slider ignores stale ticks")

	m = update(t, m, runes("l"))
	assert.Equal(t, 1, m.anim.sliders[0].Index(), "manual navigation still works while paused")

	m = update(t, m, runes("]"), runes("]"))
	assert.Equal(t, 1, m.anim.hero.Index())
}

func TestModel_AutoplayPostsTicks(t *testing.T) {
	c := fakeCatalog{products: sampleProducts()}
	m := New(c, Options{AutoplayInterval: 10 * time.Millisecond})
	t.Cleanup(m.Close)
	m = update(t, m, loadProducts(c)())

	msg := m.anim.wait()()
	_, ok := msg.(slideMsg)
	assert.True(t, ok)
}

func TestModel_CloseStopsEverything(t *testing.T) {
	m := newLoaded(t, Options{HeroImages: []string{"h1.jpg", "h2.jpg"}})
	m.Close()
	m.Close()

	assert.False(t, m.anim.hero.Playing())
	for _, s := range m.anim.sliders {
		assert.False(t, s.Playing())
	}
	assert.Nil(t, m.anim.wait()())
}

func TestModel_QuitCloses(t *testing.T) {
	m := newLoaded(t, Options{})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.anim.sliders[1].Playing())
}

func TestModel_LoadError(t *testing.T) {
	c := fakeCatalog{err: errors.New("connection refused")}
	m := New(c, Options{})
	t.Cleanup(m.Close)
	m = update(t, m, loadProducts(c)())

	assert.Contains(t, m.View(), "Could not load catalog")
	m = update(t, m, runes("a"))
	assert.True(t, m.Cart().IsEmpty())
}

func TestModel_ViewShowsPrices(t *testing.T) {
	m := newLoaded(t, Options{Title: "Quán nhỏ"})
	out := m.View()

	assert.Contains(t, out, "Quán nhỏ")
	assert.Contains(t, out, "30.000 ₫")
	assert.Contains(t, out, "40.000 ₫")
	assert.Contains(t, out, model.DefaultProductName)
	assert.Contains(t, out, "[1/2] cf1.jpg")
}

func TestModel_CloseFromInitialCopyStopsLoadedSliders(t *testing.T) {
	c := fakeCatalog{products: sampleProducts()}
	initial := New(c, Options{AutoplayInterval: 5 * time.Millisecond, HeroImages: []string{"h1.jpg", "h2.jpg"}})
	loaded := update(t, initial, loadProducts(c)())
	require.True(t, loaded.anim.sliders[1].Playing())

	// the program owns the loaded copy; callers only hold the initial one
	initial.Close()
	time.Sleep(30 * time.Millisecond)

	for i, s := range loaded.anim.sliders {
		assert.False(t, s.Playing(), "slider %d", i)
	}
	assert.False(t, loaded.anim.hero.Playing())
	goleak.VerifyNone(t)

	// later focus changes must not restart timers
	loaded = update(t, loaded, down, down)
	assert.False(t, loaded.anim.sliders[0].Playing())
	loaded.Close()
	goleak.VerifyNone(t)
}

func TestModel_HoldHero(t *testing.T) {
	m := newLoaded(t, Options{HeroImages: []string{"h1.jpg", "h2.jpg"}})
	require.True(t, m.anim.hero.Playing())

	m = update(t, m, runes("p"))
	assert.False(t, m.anim.hero.Playing())
	assert.Contains(t, m.View(), "(paused)")

	m = update(t, m, slideMsg{id: heroID})
	assert.Equal(t, 0, m.anim.hero.Index(), "held banner ignores ticks")

	m = update(t, m, runes("]"))
	assert.Equal(t, 1, m.anim.hero.Index(), "held banner still steps by hand")

	m = update(t, m, runes("p"))
	assert.True(t, m.anim.hero.Playing())
	assert.NotContains(t, m.View(), "(paused)")
}
