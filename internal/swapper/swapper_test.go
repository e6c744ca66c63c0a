package swapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSwapper_WrapAround(t *testing.T) {
	s := New(3)
	assert.Equal(t, 0, s.Current())

	// 3回進むと一周
	s.Next()
	s.Next()
	assert.Equal(t, 2, s.Current())
	assert.Equal(t, 0, s.Next())

	// 先頭からprevで末尾へ
	assert.Equal(t, 2, s.Prev())
}

func TestSwapper_Select(t *testing.T) {
	s := New(4)
	assert.Equal(t, 2, s.Select(2))

	// 範囲外は無視
	assert.Equal(t, 2, s.Select(9))
	assert.Equal(t, 2, s.Select(-1))
}

func TestSwapper_SingleItemDisablesNavigation(t *testing.T) {
	for _, n := range []int{0, 1} {
		s := New(n)
		assert.Equal(t, 0, s.Next())
		assert.Equal(t, 0, s.Prev())
		assert.False(t, s.Swipe(-200))
	}
}

func TestSwapper_Swipe(t *testing.T) {
	s := New(3)

	// 左へ大きくドラッグ → next
	assert.True(t, s.Swipe(-(SwipeThreshold + 1)))
	assert.Equal(t, 1, s.Current())

	// 右へ大きくドラッグ → prev
	assert.True(t, s.Swipe(SwipeThreshold+1))
	assert.Equal(t, 0, s.Current())

	// しきい値以内は無視
	assert.False(t, s.Swipe(-SwipeThreshold))
	assert.False(t, s.Swipe(SwipeThreshold))
	assert.Equal(t, 0, s.Current())
}

func TestSwapper_SetLengthClampsCurrent(t *testing.T) {
	s := New(5)
	s.Select(4)

	s.SetLength(2)
	assert.Equal(t, 0, s.Current())
	assert.Equal(t, 2, s.Len())
}

func TestSwapper_Autoplay(t *testing.T) {
	s := New(3)
	defer s.Stop()

	s.StartAutoplay(10 * time.Millisecond)
	assert.Equal(t, Running, s.State())

	assert.Eventually(t, func() bool {
		return s.Current() != 0
	}, time.Second, 5*time.Millisecond)
}

func TestSwapper_StopReleasesTimer(t *testing.T) {
	s := New(3)
	s.StartAutoplay(5 * time.Millisecond)
	s.Stop()
	assert.Equal(t, Stopped, s.State())

	// 止めた後は動かない
	at := s.Current()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, at, s.Current())

	// 二重Stopは安全
	s.Stop()
}

func TestSwapper_StopDropsInFlightTick(t *testing.T) {
	// Stopの瞬間にtickと競合しても、Stop後に位置が動かないこと
	for i := 0; i < 50; i++ {
		s := New(3)
		s.StartAutoplay(time.Millisecond)
		time.Sleep(time.Millisecond)
		s.Stop()

		at := s.Current()
		time.Sleep(5 * time.Millisecond)
		assert.Equal(t, at, s.Current())
	}
}

func TestSwapper_ManualNavigationKeepsRunning(t *testing.T) {
	s := New(3)
	defer s.Stop()

	s.StartAutoplay(time.Hour) // tickさせない
	s.Next()
	assert.Equal(t, Running, s.State())
	assert.Equal(t, 1, s.Current())
}
