package kinematics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/FitzgeraldLab/chessbot/arm"
	"github.com/FitzgeraldLab/chessbot/spatialmath"
	"github.com/FitzgeraldLab/chessbot/utils"
)

// validate runs the candidate joint vector back through forward kinematics
// and compares the recomputed pose against the request. Pitch and roll are
// wrapped pairwise before differencing so that angles equal modulo 2*pi
// compare as equal. The residual is the Euclidean norm of the 5-vector
// difference; it must stay within an adaptive threshold of 10x the float64
// spacing at the magnitude of the larger compared vector, so relative
// rather than absolute error governs validity.
func (s *Solver) validate(pose arm.Pose, branch Branch, candidate arm.JointPositions) BranchSolution {
	recomputed := s.model.Transform(candidate)

	want := pose.Slice()
	got := recomputed.Slice()
	want[3], got[3] = spatialmath.WrapPair(want[3], got[3])
	want[4], got[4] = spatialmath.WrapPair(want[4], got[4])

	residual := floats.Distance(want, got, 2)
	threshold := 10 * math.Max(utils.Ulp(floats.Norm(want, 2)), utils.Ulp(floats.Norm(got, 2)))

	// Written so a NaN residual (degenerate geometry) also fails.
	if residual <= threshold {
		joints := candidate
		return BranchSolution{Branch: branch, Joints: &joints}
	}

	if s.logger != nil {
		s.logger.Warnw("inverse solution failed forward round trip, marking branch unreachable",
			"branch", branch.String(),
			"residual", residual,
			"threshold", threshold,
		)
	}
	return BranchSolution{Branch: branch, Diagnostic: &Diagnostic{Residual: residual, Threshold: threshold}}
}
