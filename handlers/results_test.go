// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"strings"
	"testing"

	"github.com/Idris-jose/AnonVote/testutil"
)

func TestShowPoll_HidesCountsBeforeVoting(t *testing.T) {
	st := testutil.NewTestStore()
	p := testutil.CreateTestPoll(t, st, "Pizza or Tacos?", "Pizza", "Tacos")
	testutil.CastVotes(t, st, p.ID, 0, 0, 1)
	session := NewSession()
	h := NewResultsHandler(st, session)

	out := run(t, h.ShowPoll, "show")

	if !strings.HasPrefix(out, "Pizza or Tacos?\n") {
		t.Errorf("question should come first:\n%s", out)
	}
	if !strings.Contains(out, "ID poll-1") || !strings.Contains(out, "3 votes") {
		t.Errorf("missing id or total:\n%s", out)
	}
	if !strings.Contains(out, "  1. Pizza\n") || !strings.Contains(out, "  2. Tacos\n") {
		t.Errorf("options should be listed without counts:\n%s", out)
	}
	if strings.Contains(out, "%") {
		t.Errorf("percentages should be hidden before voting:\n%s", out)
	}
	if !strings.Contains(out, "Vote with: vote <n>") {
		t.Errorf("missing vote hint:\n%s", out)
	}
}

func TestShowPoll_ShowsCountsAfterVoting(t *testing.T) {
	st := testutil.NewTestStore()
	p := testutil.CreateTestPoll(t, st, "Pizza or Tacos?", "Pizza", "Tacos")
	testutil.CastVotes(t, st, p.ID, 0, 0)
	session := NewSession()

	run(t, NewVotingHandler(st, session).Vote, "vote 2")
	out := run(t, NewResultsHandler(st, session).ShowPoll, "show")

	if !strings.Contains(out, "  1. Pizza  2 (67%)") {
		t.Errorf("missing Pizza count:\n%s", out)
	}
	if !strings.Contains(out, "  2. Tacos  1 (33%)") {
		t.Errorf("missing Tacos count:\n%s", out)
	}
}

func TestShowPoll_UnknownPoll(t *testing.T) {
	h := NewResultsHandler(testutil.NewTestStore(), NewSession())

	if out := run(t, h.ShowPoll, "show nope"); out != "Poll not found.\n" {
		t.Errorf("output = %q", out)
	}
}

func TestShowResults_NoVotes(t *testing.T) {
	st := testutil.NewTestStore()
	testutil.CreateTestPoll(t, st, "Q?", "A", "B")
	h := NewResultsHandler(st, NewSession())

	out := run(t, h.ShowResults, "results")
	if out != "Q?\nNo votes yet\n" {
		t.Errorf("output = %q", out)
	}
}

func TestShowResults_Ranked(t *testing.T) {
	st := testutil.NewTestStore()
	p := testutil.CreateTestPoll(t, st, "Lunch?", "Soup", "Salad", "Sandwich", "Sushi")
	// Salad 3, Soup 1, Sushi 1, Sandwich 0
	testutil.CastVotes(t, st, p.ID, 1, 0, 1, 3, 1)
	h := NewResultsHandler(st, NewSession())

	out := run(t, h.ShowResults, "results")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}

	wantOrder := []struct {
		rank, text, pct string
	}{
		{"1st", "Salad", " 60%"},
		{"2nd", "Soup", " 20%"},
		{"3rd", "Sushi", " 20%"},
		{"4th", "Sandwich", "  0%"},
	}
	for i, want := range wantOrder {
		line := lines[i+1]
		fields := strings.Fields(line)
		if fields[0] != want.rank || fields[1] != want.text {
			t.Errorf("line %d = %q, want rank %s text %s", i+1, line, want.rank, want.text)
		}
		if !strings.Contains(line, want.pct) {
			t.Errorf("line %d = %q, want percentage %q", i+1, line, want.pct)
		}
	}

	if !strings.Contains(lines[1], strings.Repeat("#", 12)+strings.Repeat(".", 8)) {
		t.Errorf("60%% bar wrong: %q", lines[1])
	}
	if lines[5] != "Total: 5 votes" {
		t.Errorf("total line = %q", lines[5])
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{0, strings.Repeat(".", barWidth)},
		{100, strings.Repeat("#", barWidth)},
		{50, strings.Repeat("#", barWidth/2) + strings.Repeat(".", barWidth/2)},
		{4, strings.Repeat(".", barWidth)},
	}

	for _, tt := range tests {
		if got := bar(tt.pct); got != tt.want {
			t.Errorf("bar(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestShowResults_DuplicateOptionTexts(t *testing.T) {
	st := testutil.NewTestStore()
	p := testutil.CreateTestPoll(t, st, "Again?", "Yes", "Yes", "No")
	testutil.CastVotes(t, st, p.ID, 1, 1, 1, 0)
	h := NewResultsHandler(st, NewSession())

	lines := strings.Split(strings.TrimSpace(run(t, h.ShowResults, "results")), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %q", lines)
	}

	want := []string{" 75%", " 25%", "  0%"}
	for i, pct := range want {
		if !strings.Contains(lines[i+1], pct) {
			t.Errorf("line %d = %q, want percentage %q", i+1, lines[i+1], pct)
		}
	}
}
