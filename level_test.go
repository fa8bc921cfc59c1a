package main

import (
	"testing"
)

func TestDescend(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	g := newTestGame()
	if g.Descend() {
		t.Errorf("descended away from the stairs")
	}
	g.Player().P = g.StairsP
	if !g.Descend() {
		t.Fatalf("could not descend on the stairs")
	}
	if g.Map.Depth != HomeDepth+1 {
		t.Errorf("bad depth %d", g.Map.Depth)
	}
	if g.Stats.DeepestDepth != HomeDepth+1 {
		t.Errorf("deepest depth not recorded: %d", g.Stats.DeepestDepth)
	}
}

func TestReturnHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	g := newTestGame()
	homeStairs := g.StairsP
	g.Player().P = g.StairsP
	if !g.Descend() {
		t.Fatalf("could not descend")
	}
	pf := g.Player().Fighter
	pf.HP = 33
	pf.XP = 50
	pf.BasePower = 3
	g.Level = 2
	g.Player().P = g.UpstairsP
	if !g.Ascend() {
		t.Fatalf("could not ascend")
	}
	if g.Map.Depth != HomeDepth {
		t.Errorf("not back home: depth %d", g.Map.Depth)
	}
	if g.StairsP != homeStairs {
		t.Errorf("home stairs moved: %v", g.StairsP)
	}
	if g.UpstairsP != InvalidPos {
		t.Errorf("unexpected stairs up at home")
	}
	if !g.Map.Explored(homeStairs) {
		t.Errorf("home exploration forgotten")
	}
	// The snapshot's player predates the expedition: its stats must come
	// from the stats record instead.
	pf = g.Player().Fighter
	if pf.HP != 33 || pf.XP != 50 || pf.BasePower != 3 || g.Level != 2 {
		t.Errorf("progression lost on the way home: %+v level %d", pf, g.Level)
	}
}

func TestLevelUp(t *testing.T) {
	g := newTestGame()
	pf := g.Player().Fighter
	pf.XP = g.LevelUpXP() - 1
	if g.CanLevelUp() {
		t.Errorf("leveled up below the threshold")
	}
	pf.XP++
	if !g.CanLevelUp() {
		t.Errorf("could not level up at the threshold")
	}
	pf.HP = 1
	g.LevelUp()
	if g.Level != 2 || pf.XP != 0 {
		t.Errorf("bad progression: level %d, %d XP", g.Level, pf.XP)
	}
	if pf.HP != g.MaxHP(g.Player()) {
		t.Errorf("hit points not refilled: %d", pf.HP)
	}
	g.ApplyLevelUpChoice(0)
	if pf.BaseMaxHP != 120 || pf.HP != g.MaxHP(g.Player()) {
		t.Errorf("bad constitution increase: %d HP of %d", pf.HP, pf.BaseMaxHP)
	}
	g.ApplyLevelUpChoice(1)
	g.ApplyLevelUpChoice(2)
	g.ApplyLevelUpChoice(3)
	if pf.BasePower != 1 || pf.BaseDefense != 1 || pf.BaseLore != 1 {
		t.Errorf("bad stat increases: %+v", pf)
	}
	if g.LevelUpXP() != LevelUpBase+2*LevelUpFactor {
		t.Errorf("bad next threshold: %d", g.LevelUpXP())
	}
}

func TestStatsSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	g := newTestGame()
	pf := g.Player().Fighter
	pf.HP = 42
	pf.XP = 123
	pf.BaseLore = 2
	g.Level = 3
	if err := g.SaveStats(); err != nil {
		t.Fatalf("SaveStats: %v", err)
	}
	st, err := LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if st.HP != 42 || st.XP != 123 || st.Lore != 2 || st.Level != 3 {
		t.Errorf("bad stats record: %+v", st)
	}
	if st.MaxHP != pf.BaseMaxHP {
		t.Errorf("bad recorded max HP: %d", st.MaxHP)
	}
}

func TestGameSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	lg := &Game{}
	if load, err := lg.Load(); load || err != nil {
		t.Fatalf("unexpected saved game: %v %v", load, err)
	}
	g := newTestGame()
	g.Turn = 7
	g.Player().Fighter.HP = 55
	if err := g.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	load, err := lg.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !load {
		t.Fatalf("saved game not found")
	}
	if lg.Map.Depth != g.Map.Depth || lg.Turn != 7 {
		t.Errorf("bad loaded game: depth %d, turn %d", lg.Map.Depth, lg.Turn)
	}
	if lg.Player().Fighter.HP != 55 {
		t.Errorf("bad loaded player: %d HP", lg.Player().Fighter.HP)
	}
	if len(lg.Inventory) != len(g.Inventory) {
		t.Errorf("bad loaded inventory: %d items", len(lg.Inventory))
	}
	if lg.StairsP != g.StairsP {
		t.Errorf("bad loaded stairs: %v", lg.StairsP)
	}
}
