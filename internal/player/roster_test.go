package player

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var importDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestParseRosterHappyPath(t *testing.T) {
	csv := strings.Join([]string{
		"id,full_name,email,date_of_birth,gender,role,state,country,jersey_number",
		"p1,Rohit Kulkarni,rohit@example.com,1995-06-14,Male,Batsman,Maharashtra,India,45",
		",Asha Verma,asha@example.com,14/06/1998,Female,Bowler,Karnataka,India,",
	}, "\n")

	players, rowErrs := ParseRoster(strings.NewReader(csv), importDay)
	if len(rowErrs) != 0 {
		t.Fatalf("row errors = %+v, want none", rowErrs)
	}
	if len(players) != 2 {
		t.Fatalf("players = %d, want 2", len(players))
	}

	p := players[0]
	if p.ID != "p1" || p.FullName != "Rohit Kulkarni" || p.Email != "rohit@example.com" {
		t.Fatalf("player 1 = %+v", p)
	}
	if p.DateOfBirth.Format("2006-01-02") != "1995-06-14" {
		t.Fatalf("player 1 dob = %s", p.DateOfBirth)
	}
	if p.JerseyNumber == nil || *p.JerseyNumber != 45 {
		t.Fatalf("player 1 jersey = %v", p.JerseyNumber)
	}
	if p.RegistrationDate != importDay {
		t.Fatalf("registration date = %s, want import day", p.RegistrationDate)
	}

	// Missing id gets a generated one; slash date layout parses.
	q := players[1]
	if q.ID == "" {
		t.Fatal("player 2 id not generated")
	}
	if q.DateOfBirth.Format("2006-01-02") != "1998-06-14" {
		t.Fatalf("player 2 dob = %s", q.DateOfBirth)
	}
	if q.JerseyNumber != nil {
		t.Fatalf("player 2 jersey = %v, want nil", q.JerseyNumber)
	}
}

func TestParseRosterBadRowsDoNotAbortBatch(t *testing.T) {
	csv := strings.Join([]string{
		"id,full_name,email,date_of_birth,jersey_number",
		"p1,,missingname@example.com,1990-01-01,7",
		"p2,No Email,,1990-01-01,8",
		"p3,Bad Jersey,bad@example.com,1990-01-01,seven",
		"p4,Good Player,good@example.com,not-a-date,9",
	}, "\n")

	players, rowErrs := ParseRoster(strings.NewReader(csv), importDay)
	if len(rowErrs) != 3 {
		t.Fatalf("row errors = %+v, want 3", rowErrs)
	}
	wantRows := []int{2, 3, 4}
	for i, re := range rowErrs {
		if re.Row != wantRows[i] {
			t.Errorf("error %d on row %d, want %d (%s)", i, re.Row, wantRows[i], re.Message)
		}
	}
	if len(players) != 1 {
		t.Fatalf("players = %d, want the one good row", len(players))
	}
	// Unparseable date of birth falls back to the import day.
	if players[0].DateOfBirth != importDay {
		t.Fatalf("fallback dob = %s, want import day", players[0].DateOfBirth)
	}
}

func TestParseRosterMissingRequiredColumn(t *testing.T) {
	csv := "id,full_name\np1,Some Name\n"
	players, rowErrs := ParseRoster(strings.NewReader(csv), importDay)
	if players != nil {
		t.Fatalf("players = %+v, want nil", players)
	}
	if len(rowErrs) != 1 || rowErrs[0].Row != 1 {
		t.Fatalf("row errors = %+v, want single header error", rowErrs)
	}
}

func TestWriteRosterRoundTrip(t *testing.T) {
	jersey := 10
	in := []Player{
		{
			ID:           "p1",
			FullName:     "Sanjay Patil",
			Email:        "sanjay@example.com",
			DateOfBirth:  time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC),
			Gender:       "Male",
			Role:         "All-Rounder",
			State:        "Maharashtra",
			Country:      "India",
			JerseyNumber: &jersey,
		},
	}

	var buf bytes.Buffer
	if err := WriteRoster(&buf, in); err != nil {
		t.Fatalf("WriteRoster: %v", err)
	}

	out, rowErrs := ParseRoster(&buf, importDay)
	if len(rowErrs) != 0 {
		t.Fatalf("row errors = %+v", rowErrs)
	}
	if len(out) != 1 {
		t.Fatalf("players = %d, want 1", len(out))
	}
	got := out[0]
	if got.ID != "p1" || got.FullName != "Sanjay Patil" || got.Role != "All-Rounder" {
		t.Fatalf("round trip = %+v", got)
	}
	if got.JerseyNumber == nil || *got.JerseyNumber != 10 {
		t.Fatalf("jersey = %v, want 10", got.JerseyNumber)
	}
}
