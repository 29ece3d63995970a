package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/lixenwraith/wordcosmo/core"
	"github.com/lixenwraith/wordcosmo/parameter"
	"github.com/lixenwraith/wordcosmo/vmath"
)

const testDT = 1.0 / 60

func newEmptyWorld() *World {
	return New(WithInitialWords(0), WithSeed(42))
}

// insertRaw appends a word bypassing spawn-or-absorb, allowing duplicate texts
func insertRaw(w *World, text string, visible, dust float64, pos, vel vmath.Vec2) WordID {
	trail := core.NewRing[vmath.Vec2](parameter.TrailLength)
	trail.Fill(pos)
	wd := Word{
		ID:       w.allocID(),
		Text:     text,
		Kinetic:  core.Kinetic{Pos: pos, Vel: vel},
		CanSplit: true,
		Trail:    trail,
	}
	wd.setMass(visible, dust)
	w.words = append(w.words, wd)
	w.rebuildIndices()
	w.rebuildDustPool()
	return wd.ID
}

func (w *World) wordByID(id WordID) *Word {
	if idx, ok := w.idIndex[id]; ok {
		return &w.words[idx]
	}
	return nil
}

func totalMass(w *World) float64 {
	sum := 0.0
	for i := range w.words {
		sum += w.words[i].MassTotal
	}
	return sum
}

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

// TestConsolidateDuplicates verifies two same-text words collapse with weighted kinematics
func TestConsolidateDuplicates(t *testing.T) {
	w := newEmptyWorld()
	heavy := insertRaw(w, "A", 10, 0, vmath.Vec2{}, vmath.Vec2{X: 1})
	insertRaw(w, "A", 5, 0, vmath.Vec2{X: 10}, vmath.Vec2{X: -1})

	w.consolidateDuplicates()

	if w.Len() != 1 {
		t.Fatalf("Expected 1 word after consolidation, got %d", w.Len())
	}
	wd := &w.words[0]
	if wd.Text != "A" || wd.MassTotal != 15 {
		t.Errorf("Expected A with mass 15, got %q %f", wd.Text, wd.MassTotal)
	}
	if !near(wd.Pos.X, 10.0/3, 1e-9) || wd.Pos.Y != 0 {
		t.Errorf("Expected pos (3.33,0), got %v", wd.Pos)
	}
	if !near(wd.Vel.X, 1.0/3, 1e-9) || wd.Vel.Y != 0 {
		t.Errorf("Expected vel (0.33,0), got %v", wd.Vel)
	}
	if wd.ID != heavy {
		t.Errorf("Expected survivor to keep heaviest id %d, got %d", heavy, wd.ID)
	}
	if !near(wd.Radius, RadiusForMass(15), 1e-12) {
		t.Errorf("Expected radius recomputed from mass, got %f", wd.Radius)
	}
	if got := w.textIndex["A"]; got != wd.ID {
		t.Errorf("Expected text index to point at survivor, got %d", got)
	}
}

// TestConsolidateKeepsSlotOrder verifies survivors sit at their group's first slot
func TestConsolidateKeepsSlotOrder(t *testing.T) {
	w := newEmptyWorld()
	insertRaw(w, "x", 1, 0, vmath.Vec2{}, vmath.Vec2{})
	insertRaw(w, "y", 1, 0, vmath.Vec2{}, vmath.Vec2{})
	heavier := insertRaw(w, "x", 1, 1, vmath.Vec2{}, vmath.Vec2{})
	insertRaw(w, "z", 1, 0, vmath.Vec2{}, vmath.Vec2{})

	w.consolidateDuplicates()

	var texts []string
	for i := range w.words {
		texts = append(texts, w.words[i].Text)
	}
	if !reflect.DeepEqual(texts, []string{"x", "y", "z"}) {
		t.Errorf("Expected order [x y z], got %v", texts)
	}
	if w.words[0].ID != heavier {
		t.Errorf("Expected heavier later duplicate id %d to survive, got %d", heavier, w.words[0].ID)
	}
	if w.words[0].MassDust != 1 || w.dustPool["x"] != 1 {
		t.Errorf("Expected dust carried into survivor and pool, got %f / %f", w.words[0].MassDust, w.dustPool["x"])
	}
}

// TestAutogenesisRegeneratesVisible verifies dust returns as visible mass without loss
func TestAutogenesisRegeneratesVisible(t *testing.T) {
	w := newEmptyWorld()
	id := insertRaw(w, "dusty", 0, 10, vmath.Vec2{}, vmath.Vec2{})

	for range 100 {
		w.autogenesis(parameter.DT)
	}

	wd := w.wordByID(id)
	if wd == nil {
		t.Fatal("Expected word to persist")
	}
	if wd.MassVisible <= 0 {
		t.Errorf("Expected visible mass > 0, got %f", wd.MassVisible)
	}
	if wd.MassDust >= 10 {
		t.Errorf("Expected dust < 10, got %f", wd.MassDust)
	}
	if !near(wd.MassVisible+wd.MassDust, 10, 1e-3) {
		t.Errorf("Expected total within 1e-3 of 10, got %f", wd.MassVisible+wd.MassDust)
	}
	if w.Len() != 1 {
		t.Errorf("Expected no births for a live identity, got %d words", w.Len())
	}
}

// TestAutogenesisGatedByFloor verifies no regeneration at or above the population floor
func TestAutogenesisGatedByFloor(t *testing.T) {
	w := newEmptyWorld()
	for i := range parameter.KVisibleMin {
		insertRaw(w, string(rune('a'+i%26))+string(rune('A'+i/26)), 5, 0, vmath.Vec2{X: float64(i)}, vmath.Vec2{})
	}
	id := insertRaw(w, "dusty", 0, 10, vmath.Vec2{}, vmath.Vec2{})

	w.autogenesis(parameter.DT)

	if wd := w.wordByID(id); wd.MassVisible != 0 {
		t.Errorf("Expected no regeneration above floor, got visible %f", wd.MassVisible)
	}
}

// TestAutogenesisRebirth verifies an orphaned pool entry spawns a new word
func TestAutogenesisRebirth(t *testing.T) {
	w := newEmptyWorld()
	w.dustPool["ghost"] = 4

	w.autogenesis(1)

	idx, ok := w.idIndex[w.textIndex["ghost"]]
	if !ok {
		t.Fatal("Expected ghost to be reborn")
	}
	wd := &w.words[idx]
	if !near(wd.MassTotal, 4, 1e-12) {
		t.Errorf("Expected reborn mass 4, got %f", wd.MassTotal)
	}
	if !near(wd.MassVisible, 4*parameter.AutogenesisRate, 1e-12) {
		t.Errorf("Expected visible share of rate, got %f", wd.MassVisible)
	}
	if math.Abs(wd.Pos.X) > parameter.WorldHalfWidth || math.Abs(wd.Pos.Y) > parameter.WorldHalfHeight {
		t.Errorf("Expected reborn word in bounds, got %v", wd.Pos)
	}
	if w.Stats().Births != 0 || w.cur.births != 1 {
		t.Errorf("Expected birth counted in current tick, got %d", w.cur.births)
	}
}

// TestMassExchangeConserves verifies weathering plus autogenesis keeps each total
func TestMassExchangeConserves(t *testing.T) {
	w := newEmptyWorld()
	insertRaw(w, "a", 12, 0, vmath.Vec2{}, vmath.Vec2{})
	insertRaw(w, "b", 0.1, 3, vmath.Vec2{X: 50}, vmath.Vec2{})
	before := totalMass(w)

	for range 500 {
		w.weather(parameter.DT)
		w.autogenesis(parameter.DT)
	}

	if after := totalMass(w); !near(before, after, 1e-9) {
		t.Errorf("Expected mass %f conserved, got %f", before, after)
	}
	for i := range w.words {
		wd := &w.words[i]
		if wd.MassTotal != wd.MassVisible+wd.MassDust {
			t.Errorf("Expected total = visible + dust for %q", wd.Text)
		}
		if w.dustPool[wd.Text] != wd.MassDust {
			t.Errorf("Expected pool to mirror dust for %q", wd.Text)
		}
	}
}

// TestWeatheringMovesVisibleToDust verifies one weathering step
func TestWeatheringMovesVisibleToDust(t *testing.T) {
	w := newEmptyWorld()
	id := insertRaw(w, "a", 10, 0, vmath.Vec2{}, vmath.Vec2{})
	w.weather(1)

	wd := w.wordByID(id)
	want := 10 * parameter.WeatheringRate
	if !near(wd.MassDust, want, 1e-12) || !near(wd.MassVisible, 10-want, 1e-12) {
		t.Errorf("Expected %f moved to dust, got visible %f dust %f", want, wd.MassVisible, wd.MassDust)
	}
	if !near(wd.MassTotal, 10, 1e-12) {
		t.Errorf("Expected total unchanged, got %f", wd.MassTotal)
	}
}

// TestIntegrateReflectsAtWall verifies clamp and damped reversal with the trail recorded
func TestIntegrateReflectsAtWall(t *testing.T) {
	w := newEmptyWorld()
	id := insertRaw(w, "edge", 5, 0, vmath.Vec2{X: parameter.WorldHalfWidth + 1}, vmath.Vec2{X: 10})

	w.integrate(testDT)

	wd := w.wordByID(id)
	if wd.Pos.X != parameter.WorldHalfWidth {
		t.Errorf("Expected x clamped to %f, got %f", parameter.WorldHalfWidth, wd.Pos.X)
	}
	if wd.Vel.X >= 0 {
		t.Errorf("Expected reversed velocity, got %f", wd.Vel.X)
	}
	if wd.Trail.Len() != 2 {
		t.Errorf("Expected trail length 2 after one step, got %d", wd.Trail.Len())
	}
	if p, _ := wd.Trail.Newest(0); p != wd.Pos {
		t.Errorf("Expected newest trail point at position, got %v", p)
	}
}

// TestTrailSaturates verifies the trail never exceeds its capacity
func TestTrailSaturates(t *testing.T) {
	w := newEmptyWorld()
	id := insertRaw(w, "mover", 5, 0, vmath.Vec2{}, vmath.Vec2{X: 3, Y: 1})
	for range parameter.TrailLength * 3 {
		w.integrate(testDT)
	}
	if n := w.wordByID(id).Trail.Len(); n != parameter.TrailLength {
		t.Errorf("Expected trail length %d, got %d", parameter.TrailLength, n)
	}
}

// TestGravityAttractsAndSkipsSubVisibleSources verifies sourcing rules
func TestGravityAttractsAndSkipsSubVisibleSources(t *testing.T) {
	w := newEmptyWorld()
	a := insertRaw(w, "a", 10, 0, vmath.Vec2{}, vmath.Vec2{})
	b := insertRaw(w, "b", 10, 0, vmath.Vec2{X: 4}, vmath.Vec2{})
	faint := insertRaw(w, "faint", 0.1, 5, vmath.Vec2{Y: 4}, vmath.Vec2{})

	w.rebuildSpatialIndex()
	w.applyGravity(testDT)

	if v := w.wordByID(a).Vel; v.X <= 0 || v.Y != 0 {
		t.Errorf("Expected a pulled toward b only, got %v", v)
	}
	if v := w.wordByID(b).Vel; v.X >= 0 {
		t.Errorf("Expected b pulled toward a, got %v", v)
	}
	if v := w.wordByID(faint).Vel; v.Y >= 0 {
		t.Errorf("Expected faint word to receive attraction, got %v", v)
	}

	dbg := w.Stats().Gravity
	if !dbg.Sampled || dbg.ID != a {
		t.Errorf("Expected gravity sample on first visible word, got %+v", dbg)
	}
	if dbg.Candidates != 2 || dbg.Within != 1 {
		t.Errorf("Expected 2 candidates and 1 contribution, got %d/%d", dbg.Candidates, dbg.Within)
	}
	if !dbg.HasNearest || dbg.NearestDist != 4 {
		t.Errorf("Expected nearest at distance 4, got %+v", dbg)
	}
}

// TestGravityDeltaVClamped verifies the per-tick velocity change cap
func TestGravityDeltaVClamped(t *testing.T) {
	w := newEmptyWorld()
	a := insertRaw(w, "a", 1, 0, vmath.Vec2{}, vmath.Vec2{})
	insertRaw(w, "b", 5000, 0, vmath.Vec2{X: 0.5}, vmath.Vec2{})

	w.rebuildSpatialIndex()
	w.applyGravity(testDT)

	if dv := vmath.V2Mag(w.wordByID(a).Vel); dv > parameter.GravityMaxDeltaV+1e-9 {
		t.Errorf("Expected |dv| <= %f, got %f", parameter.GravityMaxDeltaV, dv)
	}
}

// TestSunPushesOutward verifies the radial pulse
func TestSunPushesOutward(t *testing.T) {
	w := newEmptyWorld()
	id := insertRaw(w, "a", 0.1, 0, vmath.Vec2{X: 5}, vmath.Vec2{})
	w.SetSun(vmath.Vec2{})

	w.rebuildSpatialIndex()
	w.applyGravity(testDT)

	if v := w.wordByID(id).Vel; v.X <= 0 {
		t.Errorf("Expected outward push, got %v", v)
	}
	sun, ok := w.Sun()
	if !ok || sun.Center != (vmath.Vec2{}) || sun.Radius != parameter.SunPulseRadius {
		t.Errorf("Expected sun at origin, got %+v %v", sun, ok)
	}
}

// TestSetSunReplacesAndBursts verifies a single sun and its effect ring
func TestSetSunReplacesAndBursts(t *testing.T) {
	w := newEmptyWorld()
	w.SetSun(vmath.Vec2{X: 1})
	w.SetSun(vmath.Vec2{X: 7, Y: 3})

	sun, ok := w.Sun()
	if !ok || sun.Center != (vmath.Vec2{X: 7, Y: 3}) {
		t.Errorf("Expected replaced sun at (7,3), got %+v", sun)
	}
	effects := w.EffectsSnapshot(nil)
	if len(effects) != 2*parameter.SunBurstCount {
		t.Fatalf("Expected %d effects, got %d", 2*parameter.SunBurstCount, len(effects))
	}
	for _, e := range effects {
		if e.Glyph != '*' || e.Color != ColorCyan || e.TTL != parameter.EffectTTL {
			t.Errorf("Unexpected sun effect %+v", e)
		}
	}
}

// TestCollisionQueuesSplitForBothWords verifies a violent contact splits both participants
func TestCollisionQueuesSplitForBothWords(t *testing.T) {
	w := newEmptyWorld()
	a := insertRaw(w, "a·b", 10, 0, vmath.Vec2{}, vmath.Vec2{X: 20})
	b := insertRaw(w, "c·d", 8, 2, vmath.Vec2{X: 2}, vmath.Vec2{X: -20})
	before := totalMass(w)

	w.rebuildSpatialIndex()
	w.resolveCollisions()

	want := []Event{splitEvent(a), splitEvent(b)}
	if !reflect.DeepEqual(w.events, want) {
		t.Fatalf("Expected %v, got %v", want, w.events)
	}

	w.applyEvents()

	if len(w.events) != 0 {
		t.Errorf("Expected event queue drained, got %d", len(w.events))
	}
	if w.Len() != 4 {
		t.Fatalf("Expected 4 fragments, got %d", w.Len())
	}
	if after := totalMass(w); !near(before, after, 1e-9) {
		t.Errorf("Expected split to conserve mass %f, got %f", before, after)
	}
	for _, text := range []string{"a", "b"} {
		wd := w.wordByID(w.textIndex[text])
		if wd == nil || !near(wd.MassTotal, 5, 1e-12) {
			t.Errorf("Expected fragment %q with mass 5, got %+v", text, wd)
		}
	}
	for _, text := range []string{"c", "d"} {
		wd := w.wordByID(w.textIndex[text])
		if wd == nil || !near(wd.MassVisible, 4, 1e-12) || !near(wd.MassDust, 1, 1e-12) {
			t.Errorf("Expected fragment %q with visible 4 dust 1, got %+v", text, wd)
		}
	}
	if w.wordByID(a) != nil || w.wordByID(b) != nil {
		t.Error("Expected split sources removed")
	}
	if s := w.cur.splits; s != 2 {
		t.Errorf("Expected 2 splits counted, got %d", s)
	}
}

// TestCollisionQueuesMergeForGentleContact verifies slow contacts merge with joined text
func TestCollisionQueuesMergeForGentleContact(t *testing.T) {
	w := newEmptyWorld()
	a := insertRaw(w, "a", 10, 0, vmath.Vec2{}, vmath.Vec2{X: 1})
	b := insertRaw(w, "b", 10, 0, vmath.Vec2{X: 3}, vmath.Vec2{X: -1})

	w.rebuildSpatialIndex()
	w.resolveCollisions()

	if want := []Event{mergeEvent(a, b)}; !reflect.DeepEqual(w.events, want) {
		t.Fatalf("Expected %v, got %v", want, w.events)
	}

	w.applyEvents()

	if w.Len() != 1 {
		t.Fatalf("Expected one merged word, got %d", w.Len())
	}
	m := &w.words[0]
	if m.Text != "a·b" || m.MassTotal != 20 || m.MassVisible != 20 {
		t.Errorf("Expected a·b with mass 20, got %q %f", m.Text, m.MassTotal)
	}
	if !near(m.Pos.X, 1.5, 1e-9) || !near(m.Vel.X, 0, 1e-9) {
		t.Errorf("Expected merged kinematics at (1.5,0) at rest, got %v %v", m.Pos, m.Vel)
	}
	if m.ID == a || m.ID == b {
		t.Errorf("Expected fresh id for merged word, got %d", m.ID)
	}
	if n := w.effects.Len(); n != parameter.MergeBurstCount {
		t.Errorf("Expected %d merge effects, got %d", parameter.MergeBurstCount, n)
	}
}

// TestCollisionTidalSplit verifies a lopsided mass ratio splits at moderate speed
func TestCollisionTidalSplit(t *testing.T) {
	w := newEmptyWorld()
	a := insertRaw(w, "x·y", 60, 0, vmath.Vec2{}, vmath.Vec2{})
	b := insertRaw(w, "z·w", 5, 0, vmath.Vec2{X: 6}, vmath.Vec2{X: -8})

	w.rebuildSpatialIndex()
	w.resolveCollisions()

	if want := []Event{splitEvent(a), splitEvent(b)}; !reflect.DeepEqual(w.events, want) {
		t.Errorf("Expected tidal splits %v, got %v", want, w.events)
	}
}

// TestCollisionSkipsSubVisiblePairs verifies two faint words pass through each other
func TestCollisionSkipsSubVisiblePairs(t *testing.T) {
	w := newEmptyWorld()
	a := insertRaw(w, "a", 0.1, 2, vmath.Vec2{}, vmath.Vec2{X: 1})
	insertRaw(w, "b", 0.1, 2, vmath.Vec2{X: 0.5}, vmath.Vec2{X: -1})

	w.rebuildSpatialIndex()
	w.resolveCollisions()

	if len(w.events) != 0 {
		t.Errorf("Expected no events, got %v", w.events)
	}
	if p := w.wordByID(a).Pos; p != (vmath.Vec2{}) {
		t.Errorf("Expected no positional correction, got %v", p)
	}
}

// TestApplyEventsConsumedGuard verifies a word consumed once is not reused
func TestApplyEventsConsumedGuard(t *testing.T) {
	w := newEmptyWorld()
	a := insertRaw(w, "a", 2, 0, vmath.Vec2{}, vmath.Vec2{})
	b := insertRaw(w, "b", 3, 0, vmath.Vec2{X: 1}, vmath.Vec2{})
	c := insertRaw(w, "c", 4, 0, vmath.Vec2{X: 2}, vmath.Vec2{})

	w.events = append(w.events, mergeEvent(a, b), mergeEvent(a, c), splitEvent(a), mergeEvent(c, 999))
	w.applyEvents()

	if w.Len() != 2 {
		t.Fatalf("Expected a·b and c, got %d words", w.Len())
	}
	if wd := w.wordByID(c); wd == nil || wd.MassTotal != 4 {
		t.Error("Expected c untouched")
	}
	if wd := w.wordByID(w.textIndex["a·b"]); wd == nil || wd.MassTotal != 5 {
		t.Error("Expected a·b with mass 5")
	}
}

// TestApplySplitGuards verifies ineligible words are left alone
func TestApplySplitGuards(t *testing.T) {
	w := newEmptyWorld()
	single := insertRaw(w, "solo", 10, 0, vmath.Vec2{}, vmath.Vec2{})
	light := insertRaw(w, "p·q", 0.6, 0.4, vmath.Vec2{X: 20}, vmath.Vec2{})
	locked := insertRaw(w, "r·s", 10, 0, vmath.Vec2{X: 40}, vmath.Vec2{})
	w.wordByID(locked).CanSplit = false

	w.events = append(w.events, splitEvent(single), splitEvent(light), splitEvent(locked))
	w.applyEvents()

	if w.Len() != 3 {
		t.Errorf("Expected no splits, got %d words", w.Len())
	}
	if w.effects.Len() != 0 {
		t.Errorf("Expected no split effects, got %d", w.effects.Len())
	}
}

// TestMergeAbsorbsIntoExistingText verifies merge results route through spawn-or-absorb
func TestMergeAbsorbsIntoExistingText(t *testing.T) {
	w := newEmptyWorld()
	a := insertRaw(w, "a", 2, 0, vmath.Vec2{}, vmath.Vec2{})
	b := insertRaw(w, "b", 2, 0, vmath.Vec2{X: 1}, vmath.Vec2{})
	ab := insertRaw(w, "a·b", 6, 1, vmath.Vec2{X: 50}, vmath.Vec2{})

	w.events = append(w.events, mergeEvent(a, b))
	w.applyEvents()

	if w.Len() != 1 {
		t.Fatalf("Expected merge absorbed into a·b, got %d words", w.Len())
	}
	wd := w.wordByID(ab)
	if wd == nil || wd.MassTotal != 11 {
		t.Fatalf("Expected absorbed mass 11, got %+v", wd)
	}
	if w.cur.absorbs != 1 {
		t.Errorf("Expected absorb counted, got %d", w.cur.absorbs)
	}
}

// TestAddWord verifies absorb-by-text and input guards
func TestAddWord(t *testing.T) {
	w := newEmptyWorld()
	w.AddWord("hope", 5, vmath.Vec2{})
	w.AddWord("hope", 3, vmath.Vec2{X: 8})
	w.AddWord("", 3, vmath.Vec2{})
	w.AddWord("nan", math.NaN(), vmath.Vec2{})
	w.AddWord("neg", -1, vmath.Vec2{})
	w.AddWord("inf", math.Inf(1), vmath.Vec2{})

	if w.Len() != 1 {
		t.Fatalf("Expected one word, got %d", w.Len())
	}
	wd := &w.words[0]
	if wd.MassTotal != 8 || wd.MassVisible != 8 {
		t.Errorf("Expected absorbed mass 8, got %f", wd.MassTotal)
	}
	if !near(wd.Pos.X, 3, 1e-12) {
		t.Errorf("Expected weighted position 3, got %f", wd.Pos.X)
	}
	speed := vmath.V2Mag(w.words[0].Vel)
	if speed > parameter.AddWordSpeedMax {
		t.Errorf("Expected speed bounded by %f, got %f", parameter.AddWordSpeedMax, speed)
	}
}

// TestAddWordCrowded verifies adds above the ceiling arrive mostly as dust
func TestAddWordCrowded(t *testing.T) {
	w := newEmptyWorld()
	for i := range parameter.KVisibleMax {
		insertRaw(w, "w"+string(rune(0x4e00+i)), 1, 0, vmath.Vec2{}, vmath.Vec2{})
	}
	w.AddWord("fresh", 8, vmath.Vec2{})

	wd := w.wordByID(w.textIndex["fresh"])
	if wd == nil {
		t.Fatal("Expected fresh word")
	}
	if !near(wd.MassVisible, 2, 1e-12) || !near(wd.MassDust, 6, 1e-12) {
		t.Errorf("Expected visible 2 dust 6, got %f/%f", wd.MassVisible, wd.MassDust)
	}
	if w.dustPool["fresh"] != 6 {
		t.Errorf("Expected pool entry 6, got %f", w.dustPool["fresh"])
	}
}

// TestSnapshotVisibleOnly verifies sub-visible words are excluded and trails copied
func TestSnapshotVisibleOnly(t *testing.T) {
	w := newEmptyWorld()
	insertRaw(w, "bright", 5, 0, vmath.Vec2{X: 1}, vmath.Vec2{})
	insertRaw(w, "faint", 0.1, 5, vmath.Vec2{}, vmath.Vec2{})

	snap := w.Snapshot(nil)
	if len(snap) != 1 || snap[0].Text != "bright" {
		t.Fatalf("Expected only bright, got %+v", snap)
	}
	if snap[0].TrailLen != 1 || snap[0].Trail[snap[0].TrailHead] != (vmath.Vec2{X: 1}) {
		t.Errorf("Expected one trail point at spawn, got head %d len %d", snap[0].TrailHead, snap[0].TrailLen)
	}

	s := w.Stats()
	if s.Visible != 1 || s.Total != 2 || s.DustBodies != 1 {
		t.Errorf("Unexpected stats %+v", s)
	}
	if !near(s.MassTotal, 10.1, 1e-12) {
		t.Errorf("Expected total mass 10.1, got %f", s.MassTotal)
	}
}

// TestSnapshotTruncatesText verifies long identities are cut by rune count
func TestSnapshotTruncatesText(t *testing.T) {
	w := newEmptyWorld()
	long := ""
	for range parameter.TextMaxDraw + 5 {
		long += "é"
	}
	insertRaw(w, long, 5, 0, vmath.Vec2{}, vmath.Vec2{})

	snap := w.Snapshot(nil)
	if !snap[0].Truncated {
		t.Error("Expected truncation flag")
	}
	if n := len([]rune(snap[0].Text)); n != parameter.TextMaxDraw {
		t.Errorf("Expected %d runes, got %d", parameter.TextMaxDraw, n)
	}
}

// TestEffectPoolOverwriteAndExpiry verifies capacity bound and TTL removal
func TestEffectPoolOverwriteAndExpiry(t *testing.T) {
	p := NewEffectPool(4)
	for i := range 6 {
		p.Push(Effect{TTL: float64(i + 1), Glyph: rune('0' + i)})
	}
	if p.Len() != 4 {
		t.Fatalf("Expected pool capped at 4, got %d", p.Len())
	}
	got := p.AppendTo(nil)
	if got[0].Glyph != '2' || got[3].Glyph != '5' {
		t.Errorf("Expected oldest overwritten, got %c..%c", got[0].Glyph, got[3].Glyph)
	}

	p.Update(4.5)
	got = p.AppendTo(nil)
	if len(got) != 2 || got[0].Glyph != '4' {
		t.Errorf("Expected effects with ttl 5 and 6 to survive, got %d", len(got))
	}
	p.Push(Effect{TTL: 1, Glyph: 'n'})
	if got = p.AppendTo(nil); got[len(got)-1].Glyph != 'n' {
		t.Errorf("Expected newest effect last after compaction, got %c", got[len(got)-1].Glyph)
	}
}

// TestEffectsMove verifies effects advance by velocity
func TestEffectsMove(t *testing.T) {
	p := NewEffectPool(2)
	p.Push(Effect{Vel: vmath.Vec2{X: 2}, TTL: 1})
	p.Update(0.25)
	if e := p.AppendTo(nil)[0]; e.Pos.X != 0.5 || e.TTL != 0.75 {
		t.Errorf("Expected pos 0.5 ttl 0.75, got %+v", e)
	}
}

// TestTickConservesMass verifies a full pipeline run neither creates nor destroys mass
func TestTickConservesMass(t *testing.T) {
	w := New(WithSeed(3))
	before := totalMass(w)
	for range 1200 {
		w.Tick(parameter.DT)
	}
	after := totalMass(w)
	if !near(before, after, 1e-6*before) {
		t.Errorf("Expected mass %f conserved, got %f", before, after)
	}
}

// TestTickIDsNeverReused verifies id uniqueness over a long run
func TestTickIDsNeverReused(t *testing.T) {
	w := New(WithSeed(11))
	retired := make(map[WordID]bool)
	prev := make(map[WordID]bool)

	for range 900 {
		w.Tick(parameter.DT)
		live := make(map[WordID]bool, len(w.words))
		for i := range w.words {
			id := w.words[i].ID
			if live[id] {
				t.Fatalf("Duplicate live id %d", id)
			}
			if retired[id] {
				t.Fatalf("Retired id %d reused", id)
			}
			live[id] = true
		}
		for id := range prev {
			if !live[id] {
				retired[id] = true
			}
		}
		prev = live
	}
}

// TestTickDeterministic verifies identical seeds replay identically
func TestTickDeterministic(t *testing.T) {
	a := New(WithSeed(7))
	b := New(WithRand(vmath.NewFastRand(7)))
	a.SetSun(vmath.Vec2{X: 10})
	b.SetSun(vmath.Vec2{X: 10})

	for i := range 400 {
		if i == 200 {
			a.AddWord("thesis·hope", 12, vmath.Vec2{X: -5})
			b.AddWord("thesis·hope", 12, vmath.Vec2{X: -5})
		}
		a.Tick(parameter.DT)
		b.Tick(parameter.DT)
	}

	if !reflect.DeepEqual(a.Snapshot(nil), b.Snapshot(nil)) {
		t.Error("Expected identical snapshots")
	}
	if !reflect.DeepEqual(a.EffectsSnapshot(nil), b.EffectsSnapshot(nil)) {
		t.Error("Expected identical effects")
	}
	if !reflect.DeepEqual(a.Stats(), b.Stats()) {
		t.Error("Expected identical stats")
	}
}

// TestNewSeedsVocabulary verifies seeding absorbs repeats into unique identities
func TestNewSeedsVocabulary(t *testing.T) {
	w := New()
	if w.Len() == 0 || w.Len() > len(parameter.SeedVocabulary) {
		t.Fatalf("Expected 1..%d seeded words, got %d", len(parameter.SeedVocabulary), w.Len())
	}
	seen := make(map[string]bool)
	for i := range w.words {
		wd := &w.words[i]
		if seen[wd.Text] {
			t.Errorf("Duplicate seeded text %q", wd.Text)
		}
		seen[wd.Text] = true
		if math.Abs(wd.Pos.X) > parameter.WorldHalfWidth || math.Abs(wd.Pos.Y) > parameter.WorldHalfHeight {
			t.Errorf("Seeded word out of bounds: %v", wd.Pos)
		}
	}
	if empty := New(WithInitialWords(0)); empty.Len() != 0 {
		t.Errorf("Expected empty world, got %d", empty.Len())
	}
}
