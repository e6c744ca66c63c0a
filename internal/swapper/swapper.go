// Package swapper は画像カルーセルの状態機械。
// 固定長の並びの上をインデックスが回るだけで、表示そのものは持たない。
package swapper

import (
	"sync"
	"time"
)

// 自動再生の状態。
type State int

const (
	Stopped State = iota
	Running
)

// 横スワイプをnext/prevとみなす最低移動量（px）。
const SwipeThreshold = 40

// Swapper は現在位置と自動再生タイマーを持つ。
// 要素が1つ以下のときはナビゲーション操作をすべて無効にする。
type Swapper struct {
	mu       sync.Mutex
	length   int
	current  int
	state    State
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

func New(length int) *Swapper {
	if length < 0 {
		length = 0
	}
	return &Swapper{length: length}
}

func (s *Swapper) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.length
}

func (s *Swapper) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Swapper) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Next は1つ進む（末尾からは先頭へ）。手動操作なので自動再生を仕切り直す。
func (s *Swapper) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stepLocked(1)
	s.resetAutoplayLocked()
	return s.current
}

// Prev は1つ戻る（先頭からは末尾へ）。
func (s *Swapper) Prev() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stepLocked(-1)
	s.resetAutoplayLocked()
	return s.current
}

// Select は直接指定。範囲外なら何もしない。
func (s *Swapper) Select(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < s.length {
		s.current = i
		s.resetAutoplayLocked()
	}
	return s.current
}

// Swipe は横ドラッグの移動量（終点-始点）をnext/prevに割り当てる。
// しきい値未満は無視。動いたらtrue。
func (s *Swapper) Swipe(deltaX int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.length <= 1 {
		return false
	}

	switch {
	case deltaX < -SwipeThreshold:
		s.stepLocked(1)
	case deltaX > SwipeThreshold:
		s.stepLocked(-1)
	default:
		return false
	}

	s.resetAutoplayLocked()
	return true
}

// SetLength は並びの長さが変わったとき（コンテンツ更新）に呼ぶ。
// 現在位置は範囲内に丸める。
func (s *Swapper) SetLength(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 0 {
		n = 0
	}
	s.length = n
	if s.current >= n {
		s.current = 0
	}
}

// StartAutoplay は一定間隔でNext相当を回す。既に動いていれば間隔だけ更新。
func (s *Swapper) StartAutoplay(interval time.Duration) {
	if interval <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.interval = interval
	if s.state == Running {
		s.ticker.Reset(interval)
		return
	}

	s.state = Running
	s.ticker = time.NewTicker(interval)
	s.done = make(chan struct{})

	go s.run(s.ticker, s.done)
}

// Stop はタイマーを必ず解放する。コンポーネント破棄時に呼ぶこと。
func (s *Swapper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Swapper) run(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			// Stopと同時にtickへ入った場合は捨てる
			s.mu.Lock()
			if s.state == Running {
				s.stepLocked(1)
			}
			s.mu.Unlock()
		case <-done:
			return
		}
	}
}

func (s *Swapper) stepLocked(delta int) {
	if s.length <= 1 {
		return
	}
	s.current = ((s.current+delta)%s.length + s.length) % s.length
}

// 手動操作のデバウンス：動作中なら次のtickを今から数え直す。
func (s *Swapper) resetAutoplayLocked() {
	if s.state == Running {
		s.ticker.Reset(s.interval)
	}
}

func (s *Swapper) stopLocked() {
	if s.state != Running {
		return
	}
	s.state = Stopped
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}
