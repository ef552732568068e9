package kinematics

import (
	"github.com/FitzgeraldLab/chessbot/arm"
)

// Branch identifies one of the two elbow configurations that can reach a
// planar target.
type Branch int

const (
	// ElbowUp bends the elbow above the shoulder-to-wrist line.
	ElbowUp Branch = iota
	// ElbowDown bends it below.
	ElbowDown
)

func (b Branch) String() string {
	switch b {
	case ElbowUp:
		return "elbow-up"
	case ElbowDown:
		return "elbow-down"
	default:
		return "unknown"
	}
}

// Policy selects which branches a Solve call evaluates and returns.
type Policy int

const (
	// ElbowUpOnly returns just the elbow-up branch. It is the default.
	ElbowUpOnly Policy = iota
	// ElbowDownOnly returns just the elbow-down branch.
	ElbowDownOnly
	// AllBranches returns both branches, elbow-up first, always exactly two
	// entries.
	AllBranches
)

func (p Policy) String() string {
	switch p {
	case ElbowUpOnly:
		return "elbow-up-only"
	case ElbowDownOnly:
		return "elbow-down-only"
	case AllBranches:
		return "all-branches"
	default:
		return "unknown"
	}
}

// Diagnostic records a failed forward-kinematics round trip: the residual
// between the requested pose and the recomputed one, and the adaptive
// threshold it exceeded.
type Diagnostic struct {
	Residual  float64
	Threshold float64
}

// BranchSolution is the outcome of one branch. Joints is nil when the
// branch cannot reach the target; in that case Diagnostic carries the
// round-trip numbers that disqualified it.
type BranchSolution struct {
	Branch     Branch
	Joints     *arm.JointPositions
	Diagnostic *Diagnostic
}

// Result holds the evaluated branches of one Solve call in a fixed order.
// Single-branch policies yield one entry; AllBranches yields exactly two,
// elbow-up then elbow-down, whether or not either is reachable.
type Result struct {
	Branches []BranchSolution
}

// First returns the joint vector of the first reachable branch, or nil when
// every evaluated branch was unreachable.
func (r Result) First() *arm.JointPositions {
	for _, b := range r.Branches {
		if b.Joints != nil {
			return b.Joints
		}
	}
	return nil
}
