package scoring

import "testing"

func startBowlOut(t *testing.T) *Engine {
	t.Helper()
	e := tiedMatch(t)
	if err := e.ChooseTieBreaker(TieBreakerBowlOut); err != nil {
		t.Fatalf("ChooseTieBreaker: %v", err)
	}
	return e
}

func nominate(t *testing.T, e *Engine) {
	t.Helper()
	err := e.NominateBowlOutBowlers(
		[]string{"L1", "L2", "L3", "L4", "L5"},
		[]string{"T1", "T2", "T3", "T4", "T5"})
	if err != nil {
		t.Fatalf("NominateBowlOutBowlers: %v", err)
	}
}

func TestBowlOutNomination(t *testing.T) {
	e := startBowlOut(t)
	if e.Stage() != StageBowlOutPlay {
		t.Fatalf("stage = %s, want %s", e.Stage(), StageBowlOutPlay)
	}
	if err := e.RecordBowlOutAttempt(BowlOutHit); err == nil {
		t.Fatal("attempt accepted before nomination")
	}
	if err := e.NominateBowlOutBowlers([]string{"L1"}, []string{"T1"}); err == nil {
		t.Fatal("short nomination accepted")
	}
	if err := e.NominateBowlOutBowlers(
		[]string{"T1", "L2", "L3", "L4", "L5"},
		[]string{"T1", "T2", "T3", "T4", "T5"}); err == nil {
		t.Fatal("cross-team nomination accepted")
	}
	nominate(t, e)
}

func TestBowlOutEarlyDecision(t *testing.T) {
	e := startBowlOut(t)
	nominate(t, e)

	// Lions hit, Tigers miss, three rounds in a row. After the fourth Lions
	// hit, Tigers cannot catch up with two deliveries left.
	outcomes := []BowlOutOutcome{
		BowlOutHit, BowlOutMiss,
		BowlOutHit, BowlOutMiss,
		BowlOutHit, BowlOutMiss,
		BowlOutHit,
	}
	for i, o := range outcomes {
		if err := e.RecordBowlOutAttempt(o); err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
	}

	res := e.Result()
	if res == nil || res.Winner != "Lions" {
		t.Fatalf("result = %+v, want Lions win", res)
	}
	if res.ResultDescription != "Lions won in Bowl Out" {
		t.Fatalf("result = %q", res.ResultDescription)
	}
	if len(res.TieBreakers) != 1 {
		t.Fatalf("tie breakers = %d, want 1", len(res.TieBreakers))
	}
	attempts := res.TieBreakers[0].BowlOutAttempts
	if len(attempts) != 7 {
		t.Fatalf("attempts = %d, want early finish after 7", len(attempts))
	}
	// Attempts alternate, bowlers in nominated order.
	want := []BowlOutAttempt{
		{TeamName: "Lions", BowlerID: "L1", Outcome: BowlOutHit},
		{TeamName: "Tigers", BowlerID: "T1", Outcome: BowlOutMiss},
		{TeamName: "Lions", BowlerID: "L2", Outcome: BowlOutHit},
		{TeamName: "Tigers", BowlerID: "T2", Outcome: BowlOutMiss},
		{TeamName: "Lions", BowlerID: "L3", Outcome: BowlOutHit},
		{TeamName: "Tigers", BowlerID: "T3", Outcome: BowlOutMiss},
		{TeamName: "Lions", BowlerID: "L4", Outcome: BowlOutHit},
	}
	for i := range want {
		if attempts[i] != want[i] {
			t.Fatalf("attempt %d = %+v, want %+v", i+1, attempts[i], want[i])
		}
	}
}

func TestBowlOutFullFiveRounds(t *testing.T) {
	e := startBowlOut(t)
	nominate(t, e)

	// Scores stay level until Tigers edge it on the final delivery.
	outcomes := []BowlOutOutcome{
		BowlOutHit, BowlOutHit,
		BowlOutMiss, BowlOutMiss,
		BowlOutHit, BowlOutHit,
		BowlOutMiss, BowlOutMiss,
		BowlOutMiss, BowlOutHit,
	}
	for i, o := range outcomes {
		if err := e.RecordBowlOutAttempt(o); err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
	}
	res := e.Result()
	if res == nil || res.Winner != "Tigers" {
		t.Fatalf("result = %+v, want Tigers win", res)
	}
	if res.ResultDescription != "Tigers won in Bowl Out" {
		t.Fatalf("result = %q", res.ResultDescription)
	}
}

func TestBowlOutTieRecursesOnce(t *testing.T) {
	e := startBowlOut(t)
	nominate(t, e)

	allMiss := func() {
		t.Helper()
		for i := 0; i < 10; i++ {
			if err := e.RecordBowlOutAttempt(BowlOutMiss); err != nil {
				t.Fatalf("attempt %d: %v", i+1, err)
			}
		}
	}

	allMiss()
	if e.Stage() != StageTieBreakerSelection {
		t.Fatalf("stage after tied bowl out = %s, want %s",
			e.Stage(), StageTieBreakerSelection)
	}

	if err := e.ChooseTieBreaker(TieBreakerBowlOut); err != nil {
		t.Fatalf("second ChooseTieBreaker: %v", err)
	}
	nominate(t, e)
	allMiss()

	res := e.Result()
	if res == nil || res.Winner != "" {
		t.Fatalf("result = %+v, want tie", res)
	}
	if res.ResultDescription != "Match Tied after Bowl Out" {
		t.Fatalf("result = %q", res.ResultDescription)
	}
	if len(res.TieBreakers) != 2 {
		t.Fatalf("tie breakers = %d, want 2", len(res.TieBreakers))
	}
}
