package router

// Frame is a single entry in the history stack: the screen that was left,
// the params it was shown with, and any resume state it saved.
type Frame struct {
	Screen Screen
	Params Params
	Resume any
}

// Stack holds navigation history for routers created WithHistory.
// It is not safe for concurrent use; Router serializes access to it.
type Stack struct {
	frames []Frame
	limit  int
}

// NewStack creates an empty stack. A limit of zero or less means unbounded;
// otherwise the oldest frame is discarded once the limit is reached.
func NewStack(limit int) *Stack {
	return &Stack{
		frames: make([]Frame, 0),
		limit:  limit,
	}
}

// Push adds a frame to the top of the stack.
func (s *Stack) Push(screen Screen, params Params, resume any) {
	if s.limit > 0 && len(s.frames) >= s.limit {
		s.frames = append(s.frames[:0], s.frames[1:]...)
	}
	s.frames = append(s.frames, Frame{
		Screen: screen,
		Params: params,
		Resume: resume,
	})
}

// Pop removes and returns the top frame.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return &f
}

// Peek returns the top frame without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[len(s.frames)-1]
	return &f
}

func (s *Stack) IsEmpty() bool {
	return len(s.frames) == 0
}

func (s *Stack) Len() int {
	return len(s.frames)
}

// Screens returns the screens on the stack, bottom first.
func (s *Stack) Screens() []Screen {
	out := make([]Screen, len(s.frames))
	for i, f := range s.frames {
		out[i] = f.Screen
	}
	return out
}

// Clear removes all frames.
func (s *Stack) Clear() {
	s.frames = s.frames[:0]
}
