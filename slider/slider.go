// Package slider keeps the position of an image carousel and its autoplay
// timer.
package slider

import "strings"

// Slider cycles through a fixed list of images.
type Slider struct {
	images   []string
	index    int
	autoplay *Autoplay
}

// New builds a slider from image sources. Entries are trimmed and blanks
// dropped, so New(strings.Split("a.jpg, ,b.jpg", ",")) has two images.
func New(images []string) *Slider {
	clean := make([]string, 0, len(images))
	for _, img := range images {
		if img = strings.TrimSpace(img); img != "" {
			clean = append(clean, img)
		}
	}
	return &Slider{images: clean}
}

func (s *Slider) Len() int { return len(s.images) }
func (s *Slider) Index() int { return s.index }

// Current is the image at the current index, or "" for an empty slider.
func (s *Slider) Current() string {
	if len(s.images) == 0 {
		return ""
	}
	return s.images[s.index]
}

// Go moves delta positions, wrapping in both directions.
func (s *Slider) Go(delta int) {
	n := len(s.images)
	if n == 0 {
		return
	}
	s.index = ((s.index+delta)%n + n) % n
}

func (s *Slider) Next() { s.Go(1) }
func (s *Slider) Prev() { s.Go(-1) }

// SetAutoplay attaches the timer handle that Play and Pause drive. Any
// previously attached handle is stopped.
func (s *Slider) SetAutoplay(a *Autoplay) {
	if s.autoplay != nil && s.autoplay != a {
		s.autoplay.Stop()
	}
	s.autoplay = a
}

// Play (re)starts autoplay. Sliders with fewer than two images never start a
// timer.
func (s *Slider) Play() {
	if s.autoplay == nil || len(s.images) <= 1 {
		return
	}
	s.autoplay.Start()
}

// Pause stops autoplay; it is safe to call when not playing.
func (s *Slider) Pause() {
	if s.autoplay != nil {
		s.autoplay.Stop()
	}
}

// Playing reports whether the autoplay timer is active.
func (s *Slider) Playing() bool {
	return s.autoplay != nil && s.autoplay.Running()
}
