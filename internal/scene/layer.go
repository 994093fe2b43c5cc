package scene

import (
	"slices"

	"github.com/google/uuid"
)

// Layer is a named, ordered list of objects. Objects later in the list are
// drawn on top of earlier ones.
type Layer struct {
	ID      uuid.UUID
	Name    string
	Visible bool
	Objects []*Object
}

// NewLayer returns an empty visible layer.
func NewLayer(name string) *Layer {
	return &Layer{ID: uuid.New(), Name: name, Visible: true}
}

// Clone returns a deep copy of l, objects included.
func (l *Layer) Clone() *Layer {
	c := &Layer{ID: l.ID, Name: l.Name, Visible: l.Visible}
	if l.Objects != nil {
		c.Objects = make([]*Object, len(l.Objects))
		for i, o := range l.Objects {
			c.Objects[i] = o.Clone()
		}
	}
	return c
}

func (l *Layer) indexOf(o *Object) int {
	return slices.Index(l.Objects, o)
}
