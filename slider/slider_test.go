package slider

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_DropsBlankEntries(t *testing.T) {
	s := New(strings.Split("a.jpg, ,b.jpg,,  c.jpg ", ","))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "a.jpg", s.Current())
}

func TestGo_WrapsBothWays(t *testing.T) {
	s := New([]string{"a", "b", "c"})

	s.Prev()
	assert.Equal(t, "c", s.Current())
	s.Next()
	assert.Equal(t, "a", s.Current())
	s.Go(7)
	assert.Equal(t, 1, s.Index())
	s.Go(-5)
	assert.Equal(t, 2, s.Index())
}

func TestEmptySlider(t *testing.T) {
	s := New(nil)
	s.Next()
	s.Prev()
	assert.Equal(t, "", s.Current())
	assert.Equal(t, 0, s.Index())
}

func TestAutoplay_TicksUntilStopped(t *testing.T) {
	var ticks int32
	a := NewAutoplay(10*time.Millisecond, func() { atomic.AddInt32(&ticks, 1) })

	a.Start()
	assert.True(t, a.Running())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&ticks) >= 2 }, time.Second, 5*time.Millisecond)

	a.Stop()
	assert.False(t, a.Running())
	after := atomic.LoadInt32(&ticks)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&ticks))
}

func TestAutoplay_RestartKeepsSingleTimer(t *testing.T) {
	var ticks int32
	a := NewAutoplay(20*time.Millisecond, func() { atomic.AddInt32(&ticks, 1) })

	// hover leave/enter churn: every Start replaces the previous timer
	for i := 0; i < 50; i++ {
		a.Start()
	}
	time.Sleep(70 * time.Millisecond)
	a.Stop()

	// one timer at 20ms gives ~3 ticks; fifty leaked timers would give far more
	assert.LessOrEqual(t, atomic.LoadInt32(&ticks), int32(5))
}

func TestAutoplay_StopIsIdempotent(t *testing.T) {
	a := NewAutoplay(0, func() {})
	assert.Equal(t, DefaultInterval, a.Interval())
	a.Stop()
	a.Start()
	a.Stop()
	a.Stop()
	assert.False(t, a.Running())
}

func TestSlider_PlayPause(t *testing.T) {
	single := New([]string{"only.jpg"})
	single.SetAutoplay(NewAutoplay(time.Hour, func() {}))
	single.Play()
	assert.False(t, single.Playing(), "single image slider must not start a timer")

	multi := New([]string{"a", "b"})
	multi.SetAutoplay(NewAutoplay(time.Hour, func() {}))
	multi.Play()
	assert.True(t, multi.Playing())
	multi.Pause()
	assert.False(t, multi.Playing())
	multi.Pause()
}

func TestSlider_SetAutoplayStopsPrevious(t *testing.T) {
	s := New([]string{"a", "b"})
	first := NewAutoplay(time.Hour, func() {})
	s.SetAutoplay(first)
	s.Play()

	s.SetAutoplay(NewAutoplay(time.Hour, func() {}))
	assert.False(t, first.Running())
	assert.False(t, s.Playing())
}

func TestSlider_PlayWithoutHandle(t *testing.T) {
	s := New([]string{"a", "b"})
	s.Play()
	s.Pause()
	assert.False(t, s.Playing())
}
