package mesh

// Mesh is the read surface shared by PackedMesh and ModifiableMesh: SoA
// vertex positions, a packed or per-face index set, and the creased-edge
// set flagged by the caller.
//
// Invariants (enforced by construction, not re-checked on every query):
//   - every vertex index referenced by a face lies in [0, VertexCount());
//   - consecutive vertices within a face are distinct;
//   - every face has degree >= 3;
//   - Creased only contains keys whose endpoints co-occur as consecutive
//     vertices of some face.
type Mesh interface {
	// VertexCount returns V, the number of vertices.
	VertexCount() int
	// FaceCount returns F, the number of faces.
	FaceCount() int
	// Vertex returns the position of vertex i, or ErrOutOfBounds.
	Vertex(i int) (x, y, z float64, err error)
	// Face returns a read-only view of face i, or ErrOutOfBounds.
	Face(i int) (FaceView, error)
	// Creased returns the set of sharp (creased) edges.
	Creased() CreasedSet
	// Modifiable reports whether this Mesh is a ModifiableMesh.
	Modifiable() bool
}

// FaceView is a read-only projection of one face: its index, degree, and
// vertex-index slice. Over PackedMesh storage it is a zero-copy slice of
// the underlying Indices buffer and is invalidated by any subsequent
// mutation of that buffer (there is none once a PackedMesh is published).
// Over ModifiableMesh storage, Vertices is the face's own backing slice;
// callers must not mutate it.
type FaceView struct {
	Index    int
	Degree   int
	Start    int // offset into a packed Indices buffer; -1 for modifiable meshes
	End      int
	Vertices []int
}

// CreasedSet is the set of undirected edges flagged sharp, keyed by
// EdgeKey(u, v). A packed 64-bit key is used instead of the delimited
// string some implementations favor, so the set is allocation-free to
// build and query.
type CreasedSet map[uint64]struct{}

// EdgeKey returns the canonical, orientation-free key for the undirected
// edge (u, v).
func EdgeKey(u, v int) uint64 {
	lo, hi := u, v
	if lo > hi {
		lo, hi = hi, lo
	}
	return uint64(uint32(lo))<<32 | uint64(uint32(hi))
}

// Has reports whether (u, v) is creased.
func (s CreasedSet) Has(u, v int) bool {
	_, ok := s[EdgeKey(u, v)]
	return ok
}

// Add flags (u, v) as creased.
func (s CreasedSet) Add(u, v int) {
	s[EdgeKey(u, v)] = struct{}{}
}

// NewCreasedSet returns an empty CreasedSet.
func NewCreasedSet() CreasedSet {
	return make(CreasedSet)
}

// Method enumerates the supported subdivision methods. Only CatmullClark
// is implemented; the enumeration exists so callers and future methods
// share one dispatch point.
type Method int

const (
	// CatmullClark selects Catmull-Clark subdivision.
	CatmullClark Method = iota
)

// Options are the mesh-level options honored by the geometry functions
// (triangulate ignores them; catmullclark honors all three).
type Options struct {
	// BoundaryAsCrease treats one-sided (boundary) edges as sharp.
	BoundaryAsCrease bool
	// Iterations is the number of subdivision passes to apply;
	// catmullclark.NewSubdividedGeometry treats 0 as 1.
	Iterations uint
	// Method selects the subdivision algorithm.
	Method Method
}

// Option configures Options via the functional-options pattern.
type Option func(*Options)

// WithBoundaryAsCrease sets whether boundary edges are treated as sharp.
func WithBoundaryAsCrease(b bool) Option {
	return func(o *Options) { o.BoundaryAsCrease = b }
}

// WithIterations sets the number of subdivision passes.
func WithIterations(n uint) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithMethod sets the subdivision method.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// DefaultOptions returns the spec-mandated defaults:
// BoundaryAsCrease=true, Iterations=1, Method=CatmullClark.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		BoundaryAsCrease: true,
		Iterations:       1,
		Method:           CatmullClark,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
