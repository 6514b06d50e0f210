package render

// Vec is a point in image coordinates: x right, y down, matching tensor
// row/column order (x = column, y = row).
type Vec struct {
	X, Y float64
}

// Patch is one drawable overlay: a polyline through Verts, closed back
// to the start if Closed.
type Patch struct {
	Verts  []Vec
	Closed bool
	Style  LineStyle
}
