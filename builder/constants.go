// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
)

//-----------------------------------------------------------------------------
// Vertex ID Defaults
//-----------------------------------------------------------------------------

// CenterVertex is the hub of a Star.
const CenterVertex = 0

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or parallel edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star: one center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: a 3-cycle plus a hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest graph Complete accepts.
const MinCompleteNodes = 1

// MinRandomNodes is the smallest graph Random can place a loop-free edge in.
const MinRandomNodes = 2

//-----------------------------------------------------------------------------
// Weights and random generation
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight of every edge on unweighted graphs and the
// fallback of weight functions without an RNG.
const DefaultEdgeWeight int64 = 1

// RandomWeightMin and RandomWeightMax bound the default weight distribution
// on weighted graphs.
const (
	RandomWeightMin int64 = 1
	RandomWeightMax int64 = 9
)

// RandomAttemptFactor bounds Random's draws to edges*RandomAttemptFactor.
const RandomAttemptFactor = 10
