package review

import (
	"strings"
	"testing"
	"time"
)

func TestSanitizeBody(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "A stunning fort at sunset.",
			want:  "A stunning fort at sunset.",
		},
		{
			name:  "formatting kept",
			input: "The <em>gates</em> are <strong>huge</strong>.",
			want:  "The <em>gates</em> are <strong>huge</strong>.",
		},
		{
			name:  "script removed with its content",
			input: "Nice<script>alert(1)</script> place",
			want:  "Nice place",
		},
		{
			name:  "event handlers stripped",
			input: `<em onmouseover="steal()">fine</em>`,
			want:  "<em>fine</em>",
		},
		{
			name:  "links gain nofollow",
			input: `<a href="https://example.com/guide">guide</a>`,
			want:  `<a href="https://example.com/guide" rel="nofollow">guide</a>`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeBody(tc.input)
			if got != tc.want {
				t.Errorf("got %q, wanted %q", got, tc.want)
			}
		})
	}
}

func TestSanitizeAll(t *testing.T) {
	rs := []Review{
		{ID: "r1", Body: "ok<script>x()</script>"},
		{ID: "r2", Body: "<iframe src='x'></iframe>fine"},
	}

	SanitizeAll(rs)

	for _, r := range rs {
		if strings.Contains(r.Body, "script") || strings.Contains(r.Body, "iframe") {
			t.Errorf("review %s body %q still contains unsafe markup", r.ID, r.Body)
		}
	}
}

func TestSummarize(t *testing.T) {
	rs := []Review{
		{Rating: 5},
		{Rating: 5},
		{Rating: 4},
		{Rating: 1},
		{Rating: 9},  // clamps to 5
		{Rating: -2}, // clamps to 1
	}

	got := Summarize(rs)

	if got.Count != 6 {
		t.Errorf("got count %d, wanted 6", got.Count)
	}
	want := [5]int{2, 0, 0, 1, 3}
	if got.Histogram != want {
		t.Errorf("got histogram %v, wanted %v", got.Histogram, want)
	}
	// (5+5+4+1+5+1) / 6
	if got.Average != 3.5 {
		t.Errorf("got average %v, wanted 3.5", got.Average)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if got.Count != 0 || got.Average != 0 {
		t.Errorf("got %+v, wanted a zero summary", got)
	}
}

func TestForPlace(t *testing.T) {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	rs := []Review{
		{ID: "r1", PlaceID: "p1", CreatedAt: base},
		{ID: "r2", PlaceID: "p2", CreatedAt: base.Add(time.Hour)},
		{ID: "r3", PlaceID: "p1", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "r4", PlaceID: "p1", CreatedAt: base},
	}

	got := ForPlace(rs, "p1")

	wantOrder := []string{"r3", "r1", "r4"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d reviews, wanted %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, wanted %q", i, got[i].ID, id)
		}
	}
}
