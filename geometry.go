package formflow

// Point is a position in terminal cells.
type Point struct {
	X, Y int
}

// Size is a width/height pair in terminal cells.
type Size struct {
	W, H int
}

// Rect is a placed rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }
