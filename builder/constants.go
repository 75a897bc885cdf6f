// SPDX-License-Identifier: MIT

package builder

// Method names, used to prefix errors with the constructor that produced them.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
)

// CenterVertexID is the hub of Star and Wheel (before WithPrefix).
const CenterVertexID = "Center"

// Minimum sizes.
const (
	MinCycleNodes     = 3 // a ring without loops or parallel edges
	MinPathNodes      = 2 // one edge
	MinStarNodes      = 2 // center plus one leaf
	MinWheelNodes     = 4 // C_3 plus hub
	MinCompleteNodes  = 1
	MinPartitionSize  = 1
	MinGridDim        = 1 // 1x1 has no edges but is valid
	MinRandomVertices = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular reshuffles.
const maxStubMatchingAttempts = 100
