package scoring

import "testing"

func pairFor(players []string) InningsPair {
	return InningsPair{
		Innings1: NewInnings(players, "Lions", "Tigers"),
		Innings2: NewInnings(players, "Tigers", "Lions"),
	}
}

func TestManOfTheMatchBattingBeatsQuietAllRounder(t *testing.T) {
	players := []string{"L1", "L2", "T1", "T2"}
	pair := pairFor(players)

	// L1: 80 off 40. Big score, strike rate bonus, fifty bonus.
	pair.Innings1.BatsmenStats["L1"].Runs = 80
	pair.Innings1.BatsmenStats["L1"].Balls = 40
	// T1: 2 wickets, quiet with the bat.
	pair.Innings1.BowlerStats["T1"].Wickets = 2
	pair.Innings1.BowlerStats["T1"].BallsBowled = 24
	pair.Innings1.BowlerStats["T1"].RunsConceded = 40

	got := manOfTheMatch(players, []string{"L1", "L2"}, &pair, nil)
	if got != "L1" {
		t.Fatalf("man of the match = %s, want L1", got)
	}
}

func TestManOfTheMatchFiveWicketHaul(t *testing.T) {
	players := []string{"L1", "T1"}
	pair := pairFor(players)

	// L1: a run-a-ball 40.
	pair.Innings1.BatsmenStats["L1"].Runs = 40
	pair.Innings1.BatsmenStats["L1"].Balls = 40
	// T1: 5/18 off 4 overs. 125 wicket points + 50 haul + 35 economy
	// outweighs 60 batting points.
	pair.Innings2.BowlerStats["T1"].Wickets = 5
	pair.Innings2.BowlerStats["T1"].BallsBowled = 24
	pair.Innings2.BowlerStats["T1"].RunsConceded = 18

	got := manOfTheMatch(players, []string{"L1"}, &pair, nil)
	if got != "T1" {
		t.Fatalf("man of the match = %s, want T1", got)
	}
}

func TestManOfTheMatchFieldingPoints(t *testing.T) {
	players := []string{"L1", "L2", "T1", "T2"}
	pair := pairFor(players)

	// Identical batting; T2's two catches break the tie.
	for _, id := range []string{"T1", "T2"} {
		pair.Innings2.BatsmenStats[id].Runs = 20
		pair.Innings2.BatsmenStats[id].Balls = 20
	}
	for _, id := range []string{"L1", "L2"} {
		pair.Innings1.BatsmenStats[id].IsOut = true
		pair.Innings1.BatsmenStats[id].HowOut = DismissalCaught
		pair.Innings1.BatsmenStats[id].FielderID = "T2"
	}
	pair.Innings1.BatsmenStats["L1"].Runs = 5
	pair.Innings1.BatsmenStats["L2"].Runs = 5

	got := manOfTheMatch(players, []string{"T1", "T2"}, &pair, nil)
	if got != "T2" {
		t.Fatalf("man of the match = %s, want T2", got)
	}
}

func TestManOfTheMatchSuperOverWeighting(t *testing.T) {
	players := []string{"L1", "L2", "T1"}
	pair := pairFor(players)
	pair.Innings1.BatsmenStats["L2"].Runs = 30
	pair.Innings1.BatsmenStats["L2"].Balls = 30

	so := pairFor(players)
	// L1: 12 off the super over. 60 points plus the 10-run bonus beats
	// L2's 45 main-innings batting points.
	so.Innings1.BatsmenStats["L1"].Runs = 12
	so.Innings1.BatsmenStats["L1"].Balls = 6

	tbs := []TieBreaker{{
		Type:              TieBreakerSuperOver,
		SuperOver:         &so,
		ResultDescription: "Lions won in Super Over",
	}}
	got := manOfTheMatch(players, []string{"L1", "L2"}, &pair, tbs)
	if got != "L1" {
		t.Fatalf("man of the match = %s, want L1", got)
	}
}

func TestManOfTheMatchBowlOutHits(t *testing.T) {
	players := []string{"L1", "L2", "T1"}
	pair := pairFor(players)
	pair.Innings1.BatsmenStats["L2"].Runs = 40
	pair.Innings1.BatsmenStats["L2"].Balls = 40

	tbs := []TieBreaker{{
		Type: TieBreakerBowlOut,
		BowlOutAttempts: []BowlOutAttempt{
			{TeamName: "Lions", BowlerID: "L1", Outcome: BowlOutHit},
			{TeamName: "Tigers", BowlerID: "T1", Outcome: BowlOutMiss},
			{TeamName: "Lions", BowlerID: "L1", Outcome: BowlOutHit},
		},
		ResultDescription: "Lions won in Bowl Out",
	}}
	got := manOfTheMatch(players, []string{"L1", "L2"}, &pair, tbs)
	if got != "L1" {
		t.Fatalf("man of the match = %s, want L1", got)
	}
}

func TestManOfTheMatchNobodyScored(t *testing.T) {
	players := []string{"L1", "T1"}
	pair := pairFor(players)
	// A pure tie with no contributions names nobody.
	if got := manOfTheMatch(players, nil, &pair, nil); got != "" {
		t.Fatalf("man of the match = %q, want empty", got)
	}
}

func TestManOfTheMatchUnfinishedTieBreakerIgnored(t *testing.T) {
	players := []string{"L1", "T1"}
	pair := pairFor(players)
	pair.Innings1.BatsmenStats["L1"].Runs = 10
	pair.Innings1.BatsmenStats["L1"].Balls = 10

	so := pairFor(players)
	so.Innings1.BatsmenStats["T1"].Runs = 20

	tbs := []TieBreaker{{Type: TieBreakerSuperOver, SuperOver: &so}}
	if got := manOfTheMatch(players, nil, &pair, tbs); got != "L1" {
		t.Fatalf("man of the match = %s, want L1 (open tie breaker must not score)", got)
	}
}
