package scoring

import (
	"reflect"
	"testing"
)

func TestNewInningsPrePopulatesStats(t *testing.T) {
	players := []string{"A", "B", "C"}
	inn := NewInnings(players, "Lions", "Tigers")
	if inn.BattingTeam != "Lions" || inn.BowlingTeam != "Tigers" {
		t.Fatalf("teams = %s/%s", inn.BattingTeam, inn.BowlingTeam)
	}
	for _, id := range players {
		if inn.BatsmenStats[id] == nil || inn.BowlerStats[id] == nil {
			t.Fatalf("stats for %s not pre-populated", id)
		}
	}
}

func TestAddRunsBoundaryCounters(t *testing.T) {
	inn := NewInnings([]string{"A", "B"}, "Lions", "Tigers")
	inn.addRuns("A", "B", 4, true)
	inn.addRuns("A", "B", 6, true)
	inn.addRuns("A", "B", 4, false) // short-run credit, not a boundary

	if inn.Score != 14 {
		t.Fatalf("score = %d, want 14", inn.Score)
	}
	bs := inn.BatsmenStats["A"]
	if bs.Runs != 14 || bs.Fours != 1 || bs.Sixes != 1 {
		t.Fatalf("batsman stats = %+v", bs)
	}
	if got := inn.BowlerStats["B"].RunsConceded; got != 14 {
		t.Fatalf("conceded = %d, want 14", got)
	}
}

func TestAddExtra(t *testing.T) {
	inn := NewInnings([]string{"A", "B"}, "Lions", "Tigers")

	inn.addExtra(EventWide, 2, "B", "A")
	if inn.Score != 3 || inn.BatsmenStats["A"].Runs != 0 {
		t.Fatalf("after wide: score %d, striker %d", inn.Score, inn.BatsmenStats["A"].Runs)
	}

	inn.addExtra(EventNoBall, 6, "B", "A")
	if inn.Score != 10 {
		t.Fatalf("score = %d, want 10", inn.Score)
	}
	bs := inn.BatsmenStats["A"]
	if bs.Runs != 6 || bs.Sixes != 1 {
		t.Fatalf("no-ball bat runs = %+v", bs)
	}
	if got := inn.BowlerStats["B"].RunsConceded; got != 10 {
		t.Fatalf("conceded = %d, want 10", got)
	}
}

func TestRecordWicketCredit(t *testing.T) {
	inn := NewInnings([]string{"A", "B", "C"}, "Lions", "Tigers")
	inn.Score = 37

	inn.recordWicket("A", DismissalCaught, "B", "C")
	bs := inn.BatsmenStats["A"]
	if !bs.IsOut || bs.HowOut != DismissalCaught || bs.BowlerID != "B" || bs.FielderID != "C" {
		t.Fatalf("caught stats = %+v", bs)
	}
	if inn.BowlerStats["B"].Wickets != 1 {
		t.Fatal("caught wicket not credited to the bowler")
	}

	inn.recordWicket("C", DismissalRunOut, "B", "A")
	if inn.BowlerStats["B"].Wickets != 1 {
		t.Fatal("run out wrongly credited to the bowler")
	}
	if inn.BatsmenStats["C"].BowlerID != "" {
		t.Fatal("run out carries a bowler credit")
	}

	want := []FallOfWicket{
		{Score: 37, Wicket: 1, BatsmanID: "A"},
		{Score: 37, Wicket: 2, BatsmanID: "C"},
	}
	if !reflect.DeepEqual(inn.FallOfWickets, want) {
		t.Fatalf("fall of wickets = %+v, want %+v", inn.FallOfWickets, want)
	}
}

func TestFormatOvers(t *testing.T) {
	tests := []struct {
		balls int
		want  string
	}{
		{0, "0.0"},
		{5, "0.5"},
		{6, "1.0"},
		{58, "9.4"},
		{-3, "0.0"},
	}
	for _, tt := range tests {
		if got := FormatOvers(tt.balls); got != tt.want {
			t.Errorf("FormatOvers(%d) = %s, want %s", tt.balls, got, tt.want)
		}
	}
}

func TestInningsClone(t *testing.T) {
	inn := NewInnings([]string{"A"}, "Lions", "Tigers")
	inn.addRuns("A", "A", 4, true)
	cp := inn.Clone()
	cp.addRuns("A", "A", 6, true)

	if inn.Score != 4 || cp.Score != 10 {
		t.Fatalf("clone shares state: %d vs %d", inn.Score, cp.Score)
	}
	if inn.BatsmenStats["A"].Sixes != 0 {
		t.Fatal("clone shares batsman stats")
	}
}
