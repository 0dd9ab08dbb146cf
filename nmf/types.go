package nmf

// Side selects which factor a side solver updates.
type Side int

const (
	// Left updates u in A ≈ u vᵀ (v fixed).
	Left Side = iota
	// Right updates v in A ≈ u vᵀ (u fixed).
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Left {
		return "left"
	}

	return "right"
}

// Factors holds a rank-1 factorisation A ≈ U Vᵀ.
// U is scaled so that max(U) == 1 whenever U is nonzero.
type Factors struct {
	U []float64 // left factor, length = rows
	V []float64 // right factor, length = cols

	Iterations int  // iterations performed
	Converged  bool // relative change fell below the internal tolerance
}
