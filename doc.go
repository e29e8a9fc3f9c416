// Package shapes implements the geometry of diagram shapes: parametric
// outlines, control points, the resolution of control point drags into new
// shape parameters, and style inheritance from templates.
//
// # Coordinates
//
// Shapes live in an integer diagram space whose y axis points down. Angles are
// measured in tenths of a degree ([Angle]); positive angles turn clockwise on
// screen. Rectangular shapes are described by a [Frame]: the center, the
// rotation, and the unrotated width and height. Their outlines are built in
// local coordinates centered on the origin and mapped into diagram space with
// [Placement].
//
// Intermediate geometry uses the floating point primitives [Point], [Vec2],
// [Line], [Rect] and [Affine]. Queries that have no answer return the
// [InvalidPoint] and [InvalidRect] sentinels.
//
// # Shapes
//
// Every shape has a [ShapeType], which names the kind and lists its control
// points and model properties. Types are collected in a [Library]. The
// built-in kinds are [ThickArrow], a block arrow with a parametric head and
// body, [Box] and [Polyline].
//
// Geometry is recomputed lazily. Every mutation bumps the shape's revision and
// cached outlines, paths and bounds are rebuilt on the next query.
//
// # Control points and drags
//
// Control points are addressed by [ControlPointID]. Dragging one goes through
// [Shape.MoveControlPoint], which converts the drag into the shape's local
// coordinates and solves it with [MoveArrowPoint] or the MoveRectangle
// functions. Requests that would violate a shape's invariants, such as a head
// wider than the arrow, are clamped to the nearest legal configuration,
// applied, and reported with a false result. Errors are reserved for caller
// mistakes and are of type [*Fault].
//
// # Templates
//
// A [Template] wraps a prototype shape. Shapes created from it copy its
// geometry and inherit every style they do not set themselves, see
// [Override]. Inheritance is a single level deep.
//
// # Persistence and rendering
//
// Shapes save and load their fields through the [Writer] and [Reader]
// interfaces. The repository sub-package provides a binary encoding and loads
// style and template libraries from TOML; the raster sub-package turns outlines
// into alpha masks.
package shapes
