// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"slices"
	"testing"
	"time"
)

var fixedTime = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func staticID() string { return "poll-1" }

func mustDraft(t *testing.T, question string, options ...string) ValidatedDraft {
	t.Helper()
	d, err := ValidateDraft(question, options)
	if err != nil {
		t.Fatalf("ValidateDraft(%q, %q) error = %v", question, options, err)
	}
	return d
}

func pollWithVotes(votes ...int) Poll {
	p := Poll{ID: "p", Question: "Q?", CreatedAt: fixedTime}
	for i, v := range votes {
		p.Options = append(p.Options, Option{Text: string(rune('A' + i)), Votes: v})
	}
	p.TotalVotes = SumVotes(p.Options)
	return p
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name        string
		question    string
		options     []string
		wantErr     error
		wantQ       string
		wantOptions []string
	}{
		{"empty question", "", []string{"A", "B"}, ErrEmptyQuestion, "", nil},
		{"blank question", "   \t", []string{"A", "B"}, ErrEmptyQuestion, "", nil},
		{"one real option", "Q?", []string{"A", ""}, ErrTooFewOptions, "", nil},
		{"no options", "Q?", nil, ErrTooFewOptions, "", nil},
		{"only blanks", "Q?", []string{" ", "", "\n"}, ErrTooFewOptions, "", nil},
		{"filters and trims", "Q?", []string{"A", "B", "", " C "}, nil, "Q?", []string{"A", "B", "C"}},
		{"trims question", "  Pizza or Tacos?  ", []string{"Pizza", "Tacos"}, nil, "Pizza or Tacos?", []string{"Pizza", "Tacos"}},
		{"keeps order", "Q?", []string{"", "z", " ", "a", "m"}, nil, "Q?", []string{"z", "a", "m"}},
		{"empty question wins over options", "", []string{""}, ErrEmptyQuestion, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ValidateDraft(tt.question, tt.options)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateDraft() error = %v, want %v", err, tt.wantErr)
				}
				if d.Valid() {
					t.Error("failed draft should not be valid")
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateDraft() unexpected error: %v", err)
			}
			if d.Question() != tt.wantQ {
				t.Errorf("Question() = %q, want %q", d.Question(), tt.wantQ)
			}
			if !slices.Equal(d.Options(), tt.wantOptions) {
				t.Errorf("Options() = %q, want %q", d.Options(), tt.wantOptions)
			}
			if !d.Valid() {
				t.Error("expected draft to be valid")
			}
		})
	}
}

func TestValidatedDraft_OptionsIsCopy(t *testing.T) {
	d := mustDraft(t, "Q?", "A", "B")
	opts := d.Options()
	opts[0] = "changed"

	if d.Options()[0] != "A" {
		t.Error("mutating Options() result changed the draft")
	}
}

func TestNewPoll(t *testing.T) {
	d := mustDraft(t, "Pizza or Tacos?", "Pizza", "Tacos", "Sushi")
	p := NewPoll(d, staticID, fixedClock)

	if p.ID != "poll-1" {
		t.Errorf("ID = %q, want poll-1", p.ID)
	}
	if p.Question != "Pizza or Tacos?" {
		t.Errorf("Question = %q", p.Question)
	}
	if !p.CreatedAt.Equal(fixedTime) {
		t.Errorf("CreatedAt = %v, want %v", p.CreatedAt, fixedTime)
	}
	if p.TotalVotes != 0 {
		t.Errorf("TotalVotes = %d, want 0", p.TotalVotes)
	}
	if len(p.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(p.Options))
	}
	for i, want := range []string{"Pizza", "Tacos", "Sushi"} {
		if p.Options[i].Text != want {
			t.Errorf("Options[%d].Text = %q, want %q", i, p.Options[i].Text, want)
		}
		if p.Options[i].Votes != 0 {
			t.Errorf("Options[%d].Votes = %d, want 0", i, p.Options[i].Votes)
		}
	}
}

func TestApplyVote(t *testing.T) {
	before := pollWithVotes(2, 0, 5)

	after, err := ApplyVote(before, 1)
	if err != nil {
		t.Fatalf("ApplyVote() error = %v", err)
	}

	for i := range after.Options {
		want := before.Options[i].Votes
		if i == 1 {
			want++
		}
		if after.Options[i].Votes != want {
			t.Errorf("Options[%d].Votes = %d, want %d", i, after.Options[i].Votes, want)
		}
	}
	if after.TotalVotes != SumVotes(after.Options) || after.TotalVotes != 8 {
		t.Errorf("TotalVotes = %d, want 8", after.TotalVotes)
	}
	if after.ID != before.ID || after.Question != before.Question || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Error("ApplyVote changed fields other than the tally")
	}
}

func TestApplyVote_DoesNotMutateInput(t *testing.T) {
	before := pollWithVotes(0, 0)

	if _, err := ApplyVote(before, 0); err != nil {
		t.Fatalf("ApplyVote() error = %v", err)
	}

	if before.Options[0].Votes != 0 || before.TotalVotes != 0 {
		t.Errorf("input was mutated: %+v", before)
	}
}

func TestApplyVote_RepairsInconsistentTotal(t *testing.T) {
	p := pollWithVotes(3, 4)
	p.TotalVotes = 100

	after, err := ApplyVote(p, 0)
	if err != nil {
		t.Fatalf("ApplyVote() error = %v", err)
	}
	if after.TotalVotes != 8 {
		t.Errorf("TotalVotes = %d, want 8 (sum of options)", after.TotalVotes)
	}
}

func TestApplyVote_IndexOutOfRange(t *testing.T) {
	p := pollWithVotes(0, 0)

	for _, idx := range []int{-1, 2, 99} {
		_, err := ApplyVote(p, idx)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("ApplyVote(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}

func TestVotePercentage(t *testing.T) {
	tests := []struct {
		name  string
		poll  Poll
		index int
		want  int
	}{
		{"no votes", pollWithVotes(0, 0), 0, 0},
		{"all votes", pollWithVotes(0, 1), 1, 100},
		{"none of the votes", pollWithVotes(0, 1), 0, 0},
		{"one third", pollWithVotes(1, 2), 0, 33},
		{"two thirds", pollWithVotes(1, 2), 1, 67},
		{"half up", pollWithVotes(1, 7), 0, 13},
		{"exact half", pollWithVotes(1, 1), 0, 50},
		{"below half rounds down", pollWithVotes(1, 199), 0, 1},
		{"invalid index", pollWithVotes(1, 1), 5, 0},
		{"negative index", pollWithVotes(1, 1), -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VotePercentage(tt.poll, tt.index); got != tt.want {
				t.Errorf("VotePercentage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		votes, total int
		want         int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{5, 5, 100},
		{-1, 4, 0},
		{6, 4, 100},
		{2, -4, 0},
	}

	for _, tt := range tests {
		if got := Percentage(tt.votes, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.votes, tt.total, got, tt.want)
		}
	}
}

func TestVotePercentage_ZeroTotalForEveryOption(t *testing.T) {
	p := pollWithVotes(0, 0, 0, 0)
	for i := range p.Options {
		if got := VotePercentage(p, i); got != 0 {
			t.Errorf("VotePercentage(%d) = %d, want 0", i, got)
		}
	}
}

func TestVotePercentage_SumMayDrift(t *testing.T) {
	// 1/3 each rounds to 33, so the sum is 99
	p := pollWithVotes(1, 1, 1)
	sum := 0
	for i := range p.Options {
		sum += VotePercentage(p, i)
	}
	if sum != 99 {
		t.Errorf("sum of percentages = %d, want 99", sum)
	}
}

func TestRankedOptions(t *testing.T) {
	p := pollWithVotes(1, 3, 3, 0, 1)

	ranked := RankedOptions(p)

	want := []Option{
		{Text: "B", Votes: 3},
		{Text: "C", Votes: 3},
		{Text: "A", Votes: 1},
		{Text: "E", Votes: 1},
		{Text: "D", Votes: 0},
	}
	if !slices.Equal(ranked, want) {
		t.Errorf("RankedOptions() = %+v, want %+v", ranked, want)
	}

	// input order is untouched
	if p.Options[0].Text != "A" || p.Options[3].Text != "D" {
		t.Errorf("RankedOptions reordered the poll: %+v", p.Options)
	}
}

func TestRankedOptions_AllTied(t *testing.T) {
	p := pollWithVotes(0, 0, 0)
	ranked := RankedOptions(p)
	for i, o := range ranked {
		if o.Text != p.Options[i].Text {
			t.Errorf("tied options reordered at %d: got %q, want %q", i, o.Text, p.Options[i].Text)
		}
	}
}

func TestClone(t *testing.T) {
	p := pollWithVotes(1, 2)
	c := p.Clone()
	c.Options[0].Votes = 50

	if p.Options[0].Votes != 1 {
		t.Error("Clone shares the options slice with the original")
	}
}

func TestSameOptions(t *testing.T) {
	a := pollWithVotes(0, 0)
	b := pollWithVotes(4, 9)
	if !a.SameOptions(b) {
		t.Error("vote counts should not affect SameOptions")
	}

	c := pollWithVotes(0, 0, 0)
	if a.SameOptions(c) {
		t.Error("different option count should not match")
	}

	d := pollWithVotes(0, 0)
	d.Options[1].Text = "renamed"
	if a.SameOptions(d) {
		t.Error("renamed option should not match")
	}
}

func TestEndToEnd_PizzaOrTacos(t *testing.T) {
	d := mustDraft(t, "Pizza or Tacos?", "Pizza", "Tacos")
	p := NewPoll(d, staticID, fixedClock)

	p, err := ApplyVote(p, 1)
	if err != nil {
		t.Fatalf("ApplyVote() error = %v", err)
	}

	if p.Options[1].Votes != 1 {
		t.Errorf("Options[1].Votes = %d, want 1", p.Options[1].Votes)
	}
	if p.TotalVotes != 1 {
		t.Errorf("TotalVotes = %d, want 1", p.TotalVotes)
	}
	if got := VotePercentage(p, 1); got != 100 {
		t.Errorf("VotePercentage(1) = %d, want 100", got)
	}
}
