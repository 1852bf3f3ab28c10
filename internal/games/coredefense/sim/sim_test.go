package sim

import (
	"testing"

	"github.com/vovakirdan/core-defense/internal/core"
)

func newRun(t *testing.T) *Sim {
	t.Helper()
	s := New(DefaultConfig(), 42)
	s.Start(StatBonuses{})
	return s
}

func countEvents[E Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(E); ok {
			n++
		}
	}
	return n
}

func hasCue(events []Event, c core.Cue) bool {
	for _, e := range events {
		if ce, ok := e.(CueEvent); ok && ce.Cue == c {
			return true
		}
	}
	return false
}

func TestDeterminism(t *testing.T) {
	run := func() (*Sim, []Event) {
		s := New(DefaultConfig(), 12345)
		s.Start(StatBonuses{})
		var events []Event
		for i := 0; i < 4000; i++ {
			if i%200 == 0 {
				s.SetAimTarget(float64(i%800), float64(i%600))
			}
			s.Tick()
			for _, e := range s.Drain() {
				if _, ok := e.(UpgradeOfferEvent); ok {
					if offers := s.RollOffers(); len(offers) > 0 {
						s.ApplySelection(offers[0].Selection())
					}
				}
				events = append(events, e)
			}
		}
		return s, events
	}

	s1, e1 := run()
	s2, e2 := run()

	if s1.Score() != s2.Score() {
		t.Errorf("Score mismatch: %v vs %v", s1.Score(), s2.Score())
	}
	if s1.Stats() != s2.Stats() {
		t.Errorf("Stats mismatch: %+v vs %+v", s1.Stats(), s2.Stats())
	}
	if s1.Core().Level != s2.Core().Level {
		t.Errorf("Level mismatch: %d vs %d", s1.Core().Level, s2.Core().Level)
	}
	if s1.Entities().Enemies.Len() != s2.Entities().Enemies.Len() {
		t.Errorf("Enemy count mismatch: %d vs %d",
			s1.Entities().Enemies.Len(), s2.Entities().Enemies.Len())
	}
	if len(e1) != len(e2) {
		t.Errorf("Event count mismatch: %d vs %d", len(e1), len(e2))
	}
}

func TestCommandsBeforeStart(t *testing.T) {
	s := New(DefaultConfig(), 1)
	s.Pause()
	s.ActivateUltimate()
	s.SetAimTarget(10, 10)
	s.Tick()
	if s.ApplySelection(Selection{Kind: SelectStat, ID: "DMG"}) {
		t.Error("ApplySelection succeeded before Start")
	}
	if s.RollOffers() != nil {
		t.Error("RollOffers returned offers before Start")
	}
	if len(s.Drain()) != 0 {
		t.Error("events emitted before Start")
	}
}

func TestGameOverEmittedOnce(t *testing.T) {
	s := newRun(t)
	s.stats.HP = 5
	s.store.Enemies.Add(Enemy{Body: Body{Pos: s.core.Pos, Radius: 14}, Kind: EnemyNormal, HP: 10, MaxHP: 10})

	s.Tick()
	events := s.Drain()
	if !s.Over() {
		t.Fatal("run not over after lethal contact")
	}
	if s.Stats().HP != 0 {
		t.Errorf("HP = %v, want clamped to 0", s.Stats().HP)
	}
	if n := countEvents[GameOverEvent](events); n != 1 {
		t.Errorf("GameOverEvent count = %d, want 1", n)
	}
	if n := countEvents[SyncEvent](events); n != 1 {
		t.Errorf("SyncEvent on the ending tick = %d, want 1", n)
	}

	frames := s.Clock().Frames
	for i := 0; i < 30; i++ {
		s.Tick()
	}
	if n := countEvents[GameOverEvent](s.Drain()); n != 0 {
		t.Errorf("GameOverEvent emitted %d more times", n)
	}
	if s.Clock().Frames != frames {
		t.Error("clock advanced after game over")
	}

	s.Start(StatBonuses{})
	if s.Over() || s.Stats().HP != 100 {
		t.Error("Start did not recover from game over")
	}
}

func TestDeadCoreEndsBeforeClock(t *testing.T) {
	s := newRun(t)
	s.stats.HP = 0

	s.Tick()
	if !s.Over() {
		t.Fatal("run not over with a dead core")
	}
	if s.Clock().Frames != 0 {
		t.Errorf("frames = %d, want 0", s.Clock().Frames)
	}
	if n := countEvents[GameOverEvent](s.Drain()); n != 1 {
		t.Errorf("GameOverEvent count = %d, want 1", n)
	}
}

func TestSyncCadence(t *testing.T) {
	s := newRun(t)
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if n := countEvents[SyncEvent](s.Drain()); n != 2 {
		t.Errorf("SyncEvent count after 10 ticks = %d, want 2", n)
	}

	s.Pause()
	frames := s.Clock().Frames
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if n := countEvents[SyncEvent](s.Drain()); n != 1 {
		t.Errorf("SyncEvent count while paused = %d, want 1", n)
	}
	if s.Clock().Frames != frames {
		t.Error("clock advanced while paused")
	}
	s.Resume()
	s.Tick()
	if s.Clock().Frames != frames+1 {
		t.Error("clock did not advance after Resume")
	}
}

func TestStartAppliesBonuses(t *testing.T) {
	s := New(DefaultConfig(), 1)
	s.Start(StatBonuses{MaxHP: 40, Atk: 2, Luck: 0.3})
	st := s.Stats()
	if st.MaxHP != 140 || st.HP != 140 {
		t.Errorf("hp = %v/%v, want 140/140", st.HP, st.MaxHP)
	}
	if st.Atk != 12 {
		t.Errorf("Atk = %v, want 12", st.Atk)
	}

	s.Start(StatBonuses{})
	if s.Stats().MaxHP != 100 {
		t.Errorf("bonuses leaked across runs: MaxHP = %v", s.Stats().MaxHP)
	}
}

func TestUltimate(t *testing.T) {
	s := newRun(t)

	s.ult.Charge = 99
	s.ActivateUltimate()
	if s.Ultimate().Active {
		t.Fatal("ultimate activated below full charge")
	}

	s.addUltCharge(5)
	if s.Ultimate().Charge != 100 {
		t.Errorf("charge = %d, want capped at 100", s.Ultimate().Charge)
	}
	if n := countEvents[UltimateReadyEvent](s.Drain()); n != 1 {
		t.Errorf("UltimateReadyEvent count = %d, want 1", n)
	}

	s.ActivateUltimate()
	u := s.Ultimate()
	if !u.Active || u.Charge != 0 || u.Timer != ultDuration {
		t.Fatalf("after activation: %+v", u)
	}

	s.ult.Charge = 100
	s.ActivateUltimate()
	if s.Ultimate().Timer != ultDuration || s.Ultimate().Charge != 100 {
		t.Error("second activation while active changed state")
	}

	for i := 0; i < ultDuration; i++ {
		s.updateUltimate()
	}
	if s.Ultimate().Active {
		t.Error("ultimate still active after its duration")
	}
}

func TestAimIgnoredWithOmni(t *testing.T) {
	s := newRun(t)
	s.SetAimTarget(s.core.Pos.X, s.core.Pos.Y+100)
	before := s.Core().Angle
	s.ApplySelection(Selection{Kind: SelectTag, ID: "OMNI"})
	s.SetAimTarget(s.core.Pos.X-100, s.core.Pos.Y)
	s.RotateAim(1)
	if s.Core().Angle != before {
		t.Errorf("aim changed while auto-aiming: %v -> %v", before, s.Core().Angle)
	}
}
