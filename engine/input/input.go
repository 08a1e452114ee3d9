package input

import "sync"

// Snapshot is the per-frame view of input produced by Sampler.Snapshot.
// Mouse deltas are in screen space: +X is right, +Y is down.
type Snapshot struct {
	// Keys holds the keys that were held down when the snapshot was taken.
	Keys map[uint32]bool

	// MouseDX and MouseDY are the cursor movement accumulated since the previous snapshot.
	MouseDX, MouseDY float32

	// Scroll is the vertical scroll accumulated since the previous snapshot.
	Scroll float32

	// Captured reports whether the cursor was captured for mouse-look.
	Captured bool
}

// Pressed reports whether the key was held in this snapshot.
//
// Parameters:
//   - code: the key code
//
// Returns:
//   - bool: true if the key was held
func (s Snapshot) Pressed(code uint32) bool {
	return s.Keys[code]
}

// Axis combines two opposing keys into -1, 0 or +1.
//
// Parameters:
//   - positive: key that contributes +1
//   - negative: key that contributes -1
//
// Returns:
//   - float32: the axis value
func (s Snapshot) Axis(positive, negative uint32) float32 {
	var v float32
	if s.Keys[positive] {
		v++
	}
	if s.Keys[negative] {
		v--
	}
	return v
}

type sampler struct {
	mu *sync.Mutex

	keys map[uint32]bool

	captured  bool
	firstMove bool
	lastX     float64
	lastY     float64

	dx     float64
	dy     float64
	scroll float32
}

// Sampler turns window events into per-frame input snapshots.
// Window callbacks feed it events as they arrive; the frame loop pulls exactly one
// Snapshot per frame, which drains the accumulated mouse and scroll deltas.
//
// Mouse movement only produces deltas while the cursor is captured. The first cursor
// event after each capture only seeds the last known position (the "first move" latch),
// so the jump from wherever the cursor was before capture is never turned into a rotation.
type Sampler interface {
	// KeyDown marks a key as held.
	//
	// Parameters:
	//   - code: the key code
	KeyDown(code uint32)

	// KeyUp marks a key as released.
	//
	// Parameters:
	//   - code: the key code
	KeyUp(code uint32)

	// ClearKeys releases every held key, e.g. when focus is lost and key-up events may be missed.
	ClearKeys()

	// Pressed reports whether a key is currently held.
	//
	// Parameters:
	//   - code: the key code
	//
	// Returns:
	//   - bool: true if held
	Pressed(code uint32) bool

	// MouseMove records an absolute cursor position in window pixels.
	//
	// Parameters:
	//   - x, y: cursor position
	MouseMove(x, y float64)

	// Scroll accumulates a vertical scroll delta.
	//
	// Parameters:
	//   - dy: scroll delta (positive = away from the user)
	Scroll(dy float32)

	// Capture enables mouse-look and re-arms the first move latch.
	Capture()

	// Release disables mouse-look and discards any pending mouse delta.
	Release()

	// Captured reports whether mouse-look is enabled.
	//
	// Returns:
	//   - bool: true if captured
	Captured() bool

	// FirstMovePending reports whether the next cursor event will only seed the last position.
	//
	// Returns:
	//   - bool: true if the latch is armed
	FirstMovePending() bool

	// ResetFirstMove re-arms the first move latch without changing capture state.
	ResetFirstMove()

	// Snapshot returns the current key state and the deltas accumulated since the previous
	// call, then zeroes the accumulators.
	//
	// Returns:
	//   - Snapshot: the frame's input
	Snapshot() Snapshot
}

var _ Sampler = &sampler{}

// NewSampler creates a Sampler with no keys held and the cursor released.
//
// Returns:
//   - Sampler: the new sampler
func NewSampler() Sampler {
	return &sampler{
		mu:        &sync.Mutex{},
		keys:      make(map[uint32]bool),
		firstMove: true,
	}
}

func (s *sampler) KeyDown(code uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[code] = true
}

func (s *sampler) KeyUp(code uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, code)
}

func (s *sampler) ClearKeys() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.keys)
}

func (s *sampler) Pressed(code uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[code]
}

func (s *sampler) MouseMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.captured {
		return
	}
	if s.firstMove {
		s.lastX, s.lastY = x, y
		s.firstMove = false
		return
	}

	s.dx += x - s.lastX
	s.dy += y - s.lastY
	s.lastX, s.lastY = x, y
}

func (s *sampler) Scroll(dy float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scroll += dy
}

func (s *sampler) Capture() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captured = true
	s.firstMove = true
}

func (s *sampler) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captured = false
	s.dx, s.dy = 0, 0
}

func (s *sampler) Captured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.captured
}

func (s *sampler) FirstMovePending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstMove
}

func (s *sampler) ResetFirstMove() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firstMove = true
}

func (s *sampler) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make(map[uint32]bool, len(s.keys))
	for k, v := range s.keys {
		keys[k] = v
	}
	snap := Snapshot{
		Keys:     keys,
		MouseDX:  float32(s.dx),
		MouseDY:  float32(s.dy),
		Scroll:   s.scroll,
		Captured: s.captured,
	}
	s.dx, s.dy, s.scroll = 0, 0, 0
	return snap
}
