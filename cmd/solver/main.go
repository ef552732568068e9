// Package main contains a command to exercise the chessbot's kinematics from
// the shell: forward solves from joint angles, inverse solves from poses.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"github.com/FitzgeraldLab/chessbot/arm"
	"github.com/FitzgeraldLab/chessbot/kinematics"
	"github.com/FitzgeraldLab/chessbot/robots/gambit"
)

var logger = golog.NewDevelopmentLogger("solver")

func main() {
	goutils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	Model  string `flag:"model,usage=path to a kinematics model JSON (default: built-in gambit arm)"`
	Joints string `flag:"joints,usage=comma separated BSEPR joint angles in radians (forward kinematics)"`
	Pose   string `flag:"pose,usage=comma separated XYZPR pose (inverse kinematics)"`
	Policy string `flag:"policy,default=up,usage=branches to solve: up|down|all"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := goutils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	model, err := loadModel(argsParsed.Model)
	if err != nil {
		return err
	}

	switch {
	case argsParsed.Joints != "":
		vals, err := parseVector(argsParsed.Joints)
		if err != nil {
			return errors.Wrap(err, "parsing -joints")
		}
		pose := model.Transform(arm.JointPositions{
			Base:       vals[0],
			Shoulder:   vals[1],
			Elbow:      vals[2],
			WristPitch: vals[3],
			WristRoll:  vals[4],
		})
		fmt.Printf("pose: x=%.3f y=%.3f z=%.3f pitch=%.4f roll=%.4f\n",
			pose.X, pose.Y, pose.Z, pose.Pitch, pose.Roll)
		return nil

	case argsParsed.Pose != "":
		vals, err := parseVector(argsParsed.Pose)
		if err != nil {
			return errors.Wrap(err, "parsing -pose")
		}
		policy, err := parsePolicy(argsParsed.Policy)
		if err != nil {
			return err
		}
		pose := arm.Pose{X: vals[0], Y: vals[1], Z: vals[2], Pitch: vals[3], Roll: vals[4]}

		res, err := kinematics.NewSolver(model, logger).Solve(pose, policy)
		if err != nil {
			return err
		}
		for _, b := range res.Branches {
			if b.Joints == nil {
				fmt.Printf("%s: unreachable (residual %.3g over threshold %.3g)\n",
					b.Branch, b.Diagnostic.Residual, b.Diagnostic.Threshold)
				continue
			}
			j := b.Joints
			fmt.Printf("%s: base=%.4f shoulder=%.4f elbow=%.4f wrist_pitch=%.4f wrist_roll=%.4f\n",
				b.Branch, j.Base, j.Shoulder, j.Elbow, j.WristPitch, j.WristRoll)
		}
		return nil

	default:
		return errors.New("need one of -joints or -pose")
	}
}

func loadModel(path string) (*kinematics.Model, error) {
	if path == "" {
		return gambit.Model()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading model %q", path)
	}
	return kinematics.UnmarshalModelJSON(data, "")
}

func parseVector(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != arm.NumJoints {
		return nil, errors.Errorf("need %d comma separated values, got %d", arm.NumJoints, len(parts))
	}
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad value %q", p)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parsePolicy(s string) (kinematics.Policy, error) {
	switch s {
	case "up", "":
		return kinematics.ElbowUpOnly, nil
	case "down":
		return kinematics.ElbowDownOnly, nil
	case "all":
		return kinematics.AllBranches, nil
	default:
		return 0, errors.Errorf("unknown policy %q, want up, down or all", s)
	}
}
