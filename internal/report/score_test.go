package report

import "testing"

func TestSuggestedScore(t *testing.T) {
	tests := []struct {
		count int
		tier  string
		score int
	}{
		{0, TierNone, 0},
		{1, TierMeeting, 3},
		{2, TierMeeting, 3},
		{3, TierExceeding, 4},
		{6, TierExceeding, 4},
		{7, TierOutstanding, 5},
		{100, TierOutstanding, 5},
	}

	for _, tt := range tests {
		tier, score := SuggestedScore(tt.count)
		if tier != tt.tier || score != tt.score {
			t.Errorf("SuggestedScore(%d) = (%q, %d), expected (%q, %d)",
				tt.count, tier, score, tt.tier, tt.score)
		}
	}
}

func TestSuggestedScore_Monotonic(t *testing.T) {
	prev := 0
	for count := 0; count <= 20; count++ {
		_, score := SuggestedScore(count)
		if score < prev {
			t.Fatalf("score dropped from %d to %d at count %d", prev, score, count)
		}
		prev = score
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{0, "N/A"},
		{1, "Meeting expectation (3)"},
		{4, "Exceeding expectation (4)"},
		{10, "Outstanding (5)"},
	}

	for _, tt := range tests {
		if got := FormatScore(tt.count); got != tt.expected {
			t.Errorf("FormatScore(%d) = %q, expected %q", tt.count, got, tt.expected)
		}
	}
}
