package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	PrevImage key.Binding
	NextImage key.Binding
	PrevHero  key.Binding
	NextHero  key.Binding
	HoldHero  key.Binding
	Add       key.Binding
	Cart      key.Binding
	Filter    key.Binding
	Increment key.Binding
	Decrement key.Binding
	Remove    key.Binding
	Checkout  key.Binding
	Close     key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PrevImage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev image")),
		NextImage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next image")),
		PrevHero:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev banner")),
		NextHero:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next banner")),
		HoldHero:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause banner")),
		Add:       key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "add to cart")),
		Cart:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		Decrement: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "less")),
		Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Checkout:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "checkout")),
		Close:     key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc", "close")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Cart, k.Filter, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.PrevImage, k.NextImage, k.PrevHero, k.NextHero, k.HoldHero},
		{k.Add, k.Cart, k.Filter, k.Quit},
		{k.Increment, k.Decrement, k.Remove, k.Checkout, k.Close},
	}
}

// cartHelp is the binding set shown while the cart panel is open.
type cartHelp keyMap

func (k cartHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Increment, k.Decrement, k.Remove, k.Checkout, k.Close}
}

func (k cartHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
