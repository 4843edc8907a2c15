package piping

import "isopipe/sketch/geom"

// System is an append-only chain of segments with a single open flange.
//
// The open flange is the exit of the last committed segment, or Origin()
// while the chain is empty. A failed append leaves the system untouched.
// System is not safe for concurrent use.
type System struct {
	elements []Segment
	current  Flange
}

func NewSystem() *System {
	return &System{current: Origin()}
}

// Current returns the open flange the next segment attaches to.
func (s *System) Current() Flange { return s.current }

func (s *System) Len() int { return len(s.elements) }

// Elements returns the committed segments in construction order.
func (s *System) Elements() []Segment {
	return append([]Segment(nil), s.elements...)
}

// Lines returns every committed line in display order.
func (s *System) Lines() []geom.Line {
	var out []geom.Line
	for _, e := range s.elements {
		out = append(out, e.Lines()...)
	}
	return out
}

// AddPipe appends a pipe of the given length at the open flange.
func (s *System) AddPipe(length float64) (*Pipe, error) {
	p, err := NewPipe(s.current, length)
	if err != nil {
		return nil, err
	}
	s.commit(p)
	return p, nil
}

// AddElbow appends an elbow turning toward target at the open flange.
func (s *System) AddElbow(target geom.Vec3) (*Elbow90, error) {
	e, err := NewElbow90(s.current, target)
	if err != nil {
		return nil, err
	}
	s.commit(e)
	return e, nil
}

func (s *System) commit(seg Segment) {
	s.elements = append(s.elements, seg)
	s.current = seg.End()
}
