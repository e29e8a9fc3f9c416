package shapes

import (
	"strconv"
)

// PropertyID identifies a shape property that a model mapping can drive.
type PropertyID int

const (
	PropertyX PropertyID = iota + 1
	PropertyY
	PropertyAngle
	PropertyWidth
	PropertyHeight
	PropertyCaption
	PropertyHeadWidth
	PropertyBodyHeight
)

// PropertyDef describes a property of a shape kind.
type PropertyDef struct {
	ID          PropertyID
	Name        string
	Description string
}

// MappedValue is a property value delivered by a model mapping.
type MappedValue interface {
	Integer() int
	String() string
}

type IntValue int

func (v IntValue) Integer() int   { return int(v) }
func (v IntValue) String() string { return strconv.Itoa(int(v)) }

type StringValue string

// Integer returns the value parsed as an integer, or 0 if it does not parse.
func (v StringValue) Integer() int {
	n, err := strconv.Atoi(string(v))
	if err != nil {
		Logger().Debug("model value is not an integer", "value", string(v))
		return 0
	}
	return n
}

func (v StringValue) String() string { return string(v) }

// ModelMapping routes a model object's property into a shape property.
type ModelMapping struct {
	Property      PropertyID
	ModelProperty string
}

var rectangularProperties = []PropertyDef{
	{PropertyX, "X", "Horizontal position of the center."},
	{PropertyY, "Y", "Vertical position of the center."},
	{PropertyAngle, "Angle", "Rotation in tenths of a degree."},
	{PropertyWidth, "Width", "Width of the shape."},
	{PropertyHeight, "Height", "Height of the shape."},
	{PropertyCaption, "Caption", "Caption text."},
}
