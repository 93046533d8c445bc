package effects

import (
	"fmt"
	"strings"
)

// FrameStats is a point-in-time census of live effects, used by the demo HUD
// and the headless report.
type FrameStats struct {
	ExplosionParticles int
	Fireballs          int
	TrailParticles     int
}

// CollectStats counts live effects across a manager and a set of fireballs.
func CollectStats(m *ExplosionManager, fireballs []*Fireball) FrameStats {
	s := FrameStats{}
	if m != nil {
		s.ExplosionParticles = m.Len()
	}
	for _, f := range fireballs {
		if !f.Active() {
			continue
		}
		s.Fireballs++
		s.TrailParticles += f.TrailLen()
	}
	return s
}

// Total returns the number of live particles across all collections.
func (s FrameStats) Total() int {
	return s.ExplosionParticles + s.TrailParticles
}

// Report formats a plain-text effects report for the given frame, suitable
// for the HUD log or the clipboard.
func (s FrameStats) Report(frame int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- emberfx frame report ---\n")
	fmt.Fprintf(&b, "frame=%d\n", frame)
	fmt.Fprintf(&b, "explosion_particles=%d\n", s.ExplosionParticles)
	fmt.Fprintf(&b, "fireballs=%d trail_particles=%d\n", s.Fireballs, s.TrailParticles)
	fmt.Fprintf(&b, "total_particles=%d\n", s.Total())
	return b.String()
}
