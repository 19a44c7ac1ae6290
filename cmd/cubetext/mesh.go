package main

import (
	"fmt"
	"io"

	"cubetext/internal/engineconfig"
	"cubetext/internal/meshgen"
)

func uvStep(exact bool) float32 {
	if exact {
		return meshgen.ExactUVStep
	}
	return meshgen.TruncatedUVStep
}

// printMesh writes the cube (or display quad) after checking its invariants.
func printMesh(w io.Writer, format string, exact, quad bool, prefs engineconfig.Prefs) error {
	m := meshgen.BuildCubeWithStep(uvStep(exact))
	if quad {
		m = meshgen.BuildQuad(prefs.QuadWidth, prefs.QuadHeight)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	if !quad {
		if err := m.CheckClosed(); err != nil {
			return fmt.Errorf("mesh: %w", err)
		}
	}
	return meshgen.Encode(w, m, format)
}
