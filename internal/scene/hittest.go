package scene

// HitTest returns the topmost visible object whose bounding rectangle contains
// p, or nil. Layers are scanned from the top of the stack down and, within a
// layer, the most recently added object wins. Every kind is tested against its
// bounding box, including round and star-shaped ones.
func (s *Scene) HitTest(p Point) *Object {
	for i := len(s.layers) - 1; i >= 0; i-- {
		l := s.layers[i]
		if !l.Visible {
			continue
		}
		for j := len(l.Objects) - 1; j >= 0; j-- {
			if o := l.Objects[j]; o.Bounds().Contains(p) {
				return o
			}
		}
	}
	return nil
}
