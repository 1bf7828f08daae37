// Package kernel provides a deterministic, fixed-point 2D disk physics
// engine suitable for zkVM-provable execution.
//
// The kernel composes:
//   - package scalar/vec2: Q16.16 fixed-point arithmetic
//   - package physics: world construction and the Step control flow
//   - package config: declarative scenario construction and validation
//   - package codec: canonical encoding and the determinism fingerprint
//
// Bodies advance under position-Verlet integration; collisions are
// detected with a uniform spatial grid and resolved with sequential
// impulses. Two runs of the same scenario for the same number of steps
// produce bit-identical canonical encodings and hashes.
package kernel

import (
	"github.com/blang/semver/v4"

	"github.com/determinisk/kernel/config"
	"github.com/determinisk/kernel/physics"
)

// Version is this module's release version, distinct from
// codec.FormatVersion (the canonical-encoding schema version).
var Version = semver.MustParse("0.1.0")

// Build validates scenario and, if well-formed, returns a World ready
// to Step. It is a thin convenience wrapper over
// (*config.Scenario).Build, kept at the root so a caller depends on
// only this package for the common case.
func Build(scenario *config.Scenario) (*physics.World, error) {
	return scenario.Build()
}
