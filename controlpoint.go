package shapes

import (
	"strconv"
	"strings"
)

// ControlPointID names a control point within its shape kind.
type ControlPointID int

// NoControlPoint is never a member of any shape kind.
const NoControlPoint ControlPointID = 0

// Capabilities is the set of things a control point can be used for.
type Capabilities uint8

const (
	CapResize Capabilities = 1 << iota
	CapConnect
	CapReference
	CapRotate
	CapGlue
)

func (c Capabilities) String() string {
	if c == 0 {
		return "None"
	}
	names := [...]string{"Resize", "Connect", "Reference", "Rotate", "Glue"}
	var parts []string
	for i, n := range names {
		if c&(1<<i) != 0 {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "|")
}

// ControlPointDef describes one control point of a shape kind.
type ControlPointDef struct {
	ID   ControlPointID
	Name string
	Caps Capabilities
}

// controlPointTable is the fixed, ordered list of a kind's control points
// along with the id to index mapping.
type controlPointTable struct {
	defs  []ControlPointDef
	index map[ControlPointID]int
}

func newControlPointTable(defs ...ControlPointDef) controlPointTable {
	t := controlPointTable{
		defs:  defs,
		index: make(map[ControlPointID]int, len(defs)),
	}
	for i, d := range defs {
		if _, dup := t.index[d.ID]; dup || d.ID == NoControlPoint {
			panic("shapes: bad control point id " + strconv.Itoa(int(d.ID)))
		}
		t.index[d.ID] = i
	}
	return t
}

func (t controlPointTable) lookup(op string, id ControlPointID) (int, error) {
	i, ok := t.index[id]
	if !ok {
		return 0, fault(InvalidIdentifier, op, "control point %d", id)
	}
	return i, nil
}

func (t controlPointTable) ids() []ControlPointID {
	ids := make([]ControlPointID, len(t.defs))
	for i, d := range t.defs {
		ids[i] = d.ID
	}
	return ids
}

// connectionMask records control points whose connect capability has been
// switched off on a particular shape.
type connectionMask map[ControlPointID]struct{}

func (m connectionMask) enabled(id ControlPointID) bool {
	_, off := m[id]
	return !off
}

func (m *connectionMask) set(id ControlPointID, enabled bool) {
	if enabled {
		delete(*m, id)
		return
	}
	if *m == nil {
		*m = make(connectionMask)
	}
	(*m)[id] = struct{}{}
}

func (m connectionMask) clone() connectionMask {
	if len(m) == 0 {
		return nil
	}
	c := make(connectionMask, len(m))
	for id := range m {
		c[id] = struct{}{}
	}
	return c
}

// hasCapability reports whether caps intersects the capabilities of the point,
// treating CapConnect as absent while the point's connection is disabled.
func hasCapability(def Capabilities, mask connectionMask, id ControlPointID, caps Capabilities) bool {
	if !mask.enabled(id) {
		def &^= CapConnect
	}
	return def&caps != 0
}

// shift renumbers the entries with id >= from by delta.
func (m connectionMask) shift(from ControlPointID, delta int) connectionMask {
	if len(m) == 0 {
		return m
	}
	out := make(connectionMask, len(m))
	for id := range m {
		if id >= from {
			id += ControlPointID(delta)
		}
		out[id] = struct{}{}
	}
	return out
}
