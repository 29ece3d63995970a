package main

import (
	"fmt"

	"github.com/lixenwraith/wordcosmo/engine"
)

// statsLines renders world stats as the viewer header and headless report
func statsLines(s engine.Stats) []string {
	sun := "off"
	if s.HasSun {
		sun = "on"
	}
	lines := []string{
		fmt.Sprintf("tick %d  words %d/%d  dust %d  mass %.1f/%.1f  sun %s",
			s.Ticks, s.Visible, s.Total, s.DustBodies, s.MassVisible, s.MassTotal, sun),
		fmt.Sprintf("merge %d  split %d  absorb %d  dedup %d  birth %d  fx %d  cand g%.1f c%.1f",
			s.Merges, s.Splits, s.Absorbs, s.Consolidated, s.Births, s.EffectsLive,
			s.GravityCandidatesAvg, s.CollisionCandidatesAvg),
	}
	lines = append(lines, gravityLine(s.Gravity))
	return lines
}

// gravityLine summarizes the sampled word's gravity; "-" when nothing was sampled
func gravityLine(g engine.GravityDebug) string {
	if !g.Sampled {
		return "grav -"
	}
	line := fmt.Sprintf("grav #%d cand %d within %d |a| %.3f |dv| %.3f",
		g.ID, g.Candidates, g.Within, g.AccMag, g.DeltaV)
	if g.HasNearest {
		cut := ""
		if g.NearestCut {
			cut = " cut"
		}
		sub := ""
		if g.NearestSubVisible {
			sub = " sub"
		}
		line += fmt.Sprintf("  near %.1f m%.1f%s%s", g.NearestDist, g.NearestMassVisible, cut, sub)
	}
	return line
}
