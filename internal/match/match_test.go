package match

import (
	"testing"

	"github.com/bccpune/crickclub/internal/player"
	"github.com/bccpune/crickclub/internal/scoring"
	"github.com/jonboulle/clockwork"
)

// fakePlayerRepo serves GetByIDs from an in-memory set; the scheduling
// validation only touches that method.
type fakePlayerRepo struct {
	known map[string]bool
}

func (f *fakePlayerRepo) GetByIDs(ids []string) ([]player.Player, error) {
	var out []player.Player
	for _, id := range ids {
		if f.known[id] {
			out = append(out, player.Player{ID: id})
		}
	}
	return out, nil
}

func (f *fakePlayerRepo) Create(*player.Player) error            { return nil }
func (f *fakePlayerRepo) Upsert(*player.Player) error            { return nil }
func (f *fakePlayerRepo) GetByID(string) (*player.Player, error) { return nil, nil }
func (f *fakePlayerRepo) GetByEmail(string) (*player.Player, error) {
	return nil, nil
}
func (f *fakePlayerRepo) GetAll(int, int, string) ([]player.Player, int64, error) {
	return nil, 0, nil
}
func (f *fakePlayerRepo) Update(*player.Player) error { return nil }
func (f *fakePlayerRepo) Delete(string) error         { return nil }

func side(name, prefix string, n int) TeamRequest {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = prefix + string(rune('A'+i))
	}
	return TeamRequest{Name: name, PlayerIDs: ids, CaptainID: ids[0]}
}

func registeredRepo(teams ...TeamRequest) *fakePlayerRepo {
	known := make(map[string]bool)
	for _, t := range teams {
		for _, id := range t.PlayerIDs {
			known[id] = true
		}
	}
	return &fakePlayerRepo{known: known}
}

func TestValidateTeams(t *testing.T) {
	lions := side("Lions", "l", 11)
	tigers := side("Tigers", "t", 11)

	tests := []struct {
		name   string
		mutate func(a, b *TeamRequest)
		repo   func(a, b TeamRequest) *fakePlayerRepo
		ok     bool
	}{
		{
			name: "valid",
			ok:   true,
		},
		{
			name:   "same team name",
			mutate: func(a, b *TeamRequest) { b.Name = a.Name },
		},
		{
			name:   "short roster",
			mutate: func(a, b *TeamRequest) { a.PlayerIDs = a.PlayerIDs[:10] },
		},
		{
			name:   "overlapping rosters",
			mutate: func(a, b *TeamRequest) { b.PlayerIDs[3] = a.PlayerIDs[3] },
		},
		{
			name:   "captain off roster",
			mutate: func(a, b *TeamRequest) { a.CaptainID = "outsider" },
		},
		{
			name: "unregistered player",
			repo: func(a, b TeamRequest) *fakePlayerRepo {
				r := registeredRepo(a, b)
				delete(r.known, b.PlayerIDs[5])
				return r
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := side(lions.Name, "l", 11), side(tigers.Name, "t", 11)
			if tc.mutate != nil {
				tc.mutate(&a, &b)
			}
			repo := registeredRepo(a, b)
			if tc.repo != nil {
				repo = tc.repo(a, b)
			}
			mc := &MatchController{players: repo}
			msg, ok := mc.validateTeams(a, b)
			if ok != tc.ok {
				t.Fatalf("validateTeams ok = %v (%q), want %v", ok, msg, tc.ok)
			}
			if !ok && msg == "" {
				t.Fatal("rejection without a message")
			}
		})
	}
}

func TestJSONColumnRoundTrips(t *testing.T) {
	t.Run("string list", func(t *testing.T) {
		in := StringList{"a", "b", "c"}
		raw, err := in.Value()
		if err != nil {
			t.Fatal(err)
		}
		var out StringList
		if err := out.Scan(raw); err != nil {
			t.Fatal(err)
		}
		if len(out) != 3 || out[1] != "b" {
			t.Fatalf("round trip = %v", out)
		}
	})

	t.Run("fee map", func(t *testing.T) {
		in := FeeMap{"p1": FeePaid, "p2": FeeExempt}
		raw, err := in.Value()
		if err != nil {
			t.Fatal(err)
		}
		out := FeeMap{}
		// Drivers may hand back strings rather than bytes.
		if err := out.Scan(string(raw.([]byte))); err != nil {
			t.Fatal(err)
		}
		if out["p1"] != FeePaid || out["p2"] != FeeExempt {
			t.Fatalf("round trip = %v", out)
		}
	})

	t.Run("progress", func(t *testing.T) {
		in := ProgressColumn{Progress: &scoring.Progress{
			Stage:          scoring.StagePlay,
			CurrentInnings: 1,
			TossWinner:     "Lions",
			Decision:       scoring.DecisionBat,
		}}
		raw, err := in.Value()
		if err != nil {
			t.Fatal(err)
		}
		var out ProgressColumn
		if err := out.Scan(raw); err != nil {
			t.Fatal(err)
		}
		if out.Progress == nil || out.Progress.Stage != scoring.StagePlay ||
			out.Progress.TossWinner != "Lions" {
			t.Fatalf("round trip = %+v", out.Progress)
		}
	})

	t.Run("nil progress", func(t *testing.T) {
		raw, err := ProgressColumn{}.Value()
		if err != nil {
			t.Fatal(err)
		}
		if raw != nil {
			t.Fatalf("nil progress stored as %v, want NULL", raw)
		}
		var out ProgressColumn
		if err := out.Scan(nil); err != nil {
			t.Fatal(err)
		}
		if out.Progress != nil {
			t.Fatalf("scanned NULL into %+v", out.Progress)
		}
	})
}

func TestScoringConfig(t *testing.T) {
	m := &Match{
		TeamA:          "Lions",
		TeamB:          "Tigers",
		TotalOvers:     20,
		TeamAPlayerIDs: StringList{"l1", "l2"},
		TeamBPlayerIDs: StringList{"t1", "t2"},
		Captains:       StringMap{"Lions": "l1", "Tigers": "t1"},
	}
	cfg := m.ScoringConfig()
	if cfg.Teams[0].Name != "Lions" || cfg.Teams[1].Name != "Tigers" {
		t.Fatalf("teams = %v", cfg.Teams)
	}
	if cfg.TotalOvers != 20 || cfg.Captains["Tigers"] != "t1" {
		t.Fatalf("config = %+v", cfg)
	}
}

func liveMatch() *Match {
	return &Match{
		ID:             "m1",
		TeamA:          "Lions",
		TeamB:          "Tigers",
		Status:         StatusLive,
		TeamAPlayerIDs: StringList{"l1", "l2"},
		TeamBPlayerIDs: StringList{"t1", "t2"},
		Fees: FeeMap{
			"l1": FeeUnpaid, "l2": FeePaid,
			"t1": FeeUnpaid, "t2": FeeUnpaid,
		},
		LiveProgress: ProgressColumn{Progress: &scoring.Progress{Stage: scoring.StageMatchOver}},
	}
}

func TestFinalize(t *testing.T) {
	lc := NewLiveController(nil, nil, nil, clockwork.NewFakeClock())

	t.Run("decided match", func(t *testing.T) {
		m := liveMatch()
		res := &scoring.Result{Winner: "Tigers", ResultDescription: "Tigers won by 2 wickets"}
		lc.finalize(m, res)

		if m.Status != StatusCompleted || m.CompletedAt == nil {
			t.Fatalf("status = %s, completed at %v", m.Status, m.CompletedAt)
		}
		// The frozen result replaces the live progress.
		if m.LiveProgress.Progress != nil {
			t.Fatalf("live progress not cleared: %+v", m.LiveProgress.Progress)
		}
		if m.Result.Result == nil || m.Winner != "Tigers" {
			t.Fatalf("result = %+v, winner = %q", m.Result.Result, m.Winner)
		}
		// The losing side pays: only the winners are exempted.
		if m.Fees["t1"] != FeeExempt || m.Fees["t2"] != FeeExempt {
			t.Fatalf("winners not exempted: %v", m.Fees)
		}
		if m.Fees["l1"] != FeeUnpaid || m.Fees["l2"] != FeePaid {
			t.Fatalf("losing side statuses changed: %v", m.Fees)
		}
	})

	t.Run("tie leaves stored fees alone", func(t *testing.T) {
		m := liveMatch()
		lc.finalize(m, &scoring.Result{ResultDescription: "Match Tied"})

		if m.LiveProgress.Progress != nil {
			t.Fatal("live progress not cleared on a tie")
		}
		if !m.IsTied() {
			t.Fatalf("winner = %q, status = %s, want a tie", m.Winner, m.Status)
		}
		// Exemption on a tie is a read-time projection, never a rewrite.
		want := FeeMap{"l1": FeeUnpaid, "l2": FeePaid, "t1": FeeUnpaid, "t2": FeeUnpaid}
		for id, status := range want {
			if m.Fees[id] != status {
				t.Fatalf("fee for %s = %s, want %s untouched", id, m.Fees[id], status)
			}
		}
	})
}

func TestIsTied(t *testing.T) {
	m := &Match{Status: StatusCompleted}
	if !m.IsTied() {
		t.Fatal("completed match without a winner should read as tied")
	}
	m.Winner = "Lions"
	if m.IsTied() {
		t.Fatal("match with a winner is not tied")
	}
	m = &Match{Status: StatusLive}
	if m.IsTied() {
		t.Fatal("live match is not tied yet")
	}
}
