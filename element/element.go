package element

// Dimensionality represents the spatial dimension of an element
type Dimensionality uint8

const (
	D1 Dimensionality = iota + 1 // 1D elements (lines, edges)
	D2                           // 2D elements (quadrilaterals)
)

// GeometryType identifies the element shape
type GeometryType uint8

const (
	Line GeometryType = iota
	Quad
)

func (g GeometryType) String() string {
	switch g {
	case Line:
		return "Line"
	case Quad:
		return "Quad"
	}
	return "Unknown"
}

// Properties contains metadata describing a reference element
type Properties struct {
	Name       string         // Full descriptive name (e.g., "Lagrange Quadrilateral Order 2")
	ShortName  string         // Abbreviated name (e.g., "Quad2")
	Type       GeometryType   // Element shape
	Order      int            // Polynomial order
	Np         int            // Total number of nodes in element
	NFp        int            // Number of nodes per face (edge in 2D)
	NVp        int            // Number of vertex nodes
	NIp        int            // Number of strictly interior nodes
	NFaces     int            // Number of faces (edges) per element
	Dimensions Dimensionality // Spatial dimension
}
