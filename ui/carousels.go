package ui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"storefront/model"
	"storefront/slider"
)

// carousels owns every slider of the view and the channel their autoplay
// timers post to. Model copies share one *carousels, so Close on any copy
// stops all timers.
type carousels struct {
	interval time.Duration
	hero     *slider.Slider
	sliders  []*slider.Slider // one per product, by listing index
	heroHeld bool

	ticks  chan slideMsg
	done   chan struct{}
	once   sync.Once
	closed atomic.Bool
}

func newCarousels(heroImages []string, interval time.Duration) *carousels {
	c := &carousels{
		interval: interval,
		ticks:    make(chan slideMsg, 16),
		done:     make(chan struct{}),
	}
	c.hero = slider.New(heroImages)
	c.hero.SetAutoplay(slider.NewAutoplay(interval, c.signal(heroID)))
	return c
}

// signal returns an autoplay callback that posts a tick without blocking.
// A full buffer drops the tick; the next one catches up. ticks is never
// closed, so a timer firing during shutdown cannot panic.
func (c *carousels) signal(id int) func() {
	return func() {
		select {
		case c.ticks <- slideMsg{id: id}:
		default:
		}
	}
}

// wait delivers the next tick, or nil once the carousels are closed.
func (c *carousels) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-c.ticks:
			return msg
		case <-c.done:
			return nil
		}
	}
}

// load replaces the product sliders, stopping any previous ones.
func (c *carousels) load(products []model.Product) {
	for _, s := range c.sliders {
		s.Pause()
	}
	c.sliders = make([]*slider.Slider, len(products))
	for i, p := range products {
		s := slider.New(p.Images)
		s.SetAutoplay(slider.NewAutoplay(c.interval, c.signal(i)))
		c.sliders[i] = s
	}
}

func (c *carousels) product(i int) *slider.Slider {
	if i < 0 || i >= len(c.sliders) {
		return nil
	}
	return c.sliders[i]
}

// byID resolves the slider a tick belongs to.
func (c *carousels) byID(id int) *slider.Slider {
	if id == heroID {
		return c.hero
	}
	return c.product(id)
}

// play is a no-op after Close.
func (c *carousels) play(s *slider.Slider) {
	if s == nil || c.closed.Load() {
		return
	}
	s.Play()
}

func (c *carousels) pause(s *slider.Slider) {
	if s != nil {
		s.Pause()
	}
}

func (c *carousels) playHero() {
	if !c.heroHeld {
		c.play(c.hero)
	}
}

// toggleHero holds or releases the banner, the keyboard stand-in for
// hovering over it.
func (c *carousels) toggleHero() {
	c.heroHeld = !c.heroHeld
	if c.heroHeld {
		c.pause(c.hero)
		return
	}
	c.play(c.hero)
}

// Close stops every timer. It is safe to call more than once, from any copy
// of the Model.
func (c *carousels) Close() {
	c.once.Do(func() {
		c.closed.Store(true)
		c.hero.Pause()
		for _, s := range c.sliders {
			s.Pause()
		}
		close(c.done)
	})
}
