package report

import "fmt"

// Score tier thresholds. The suggested score for a weighted category is a
// heuristic derived purely from its entry count; tune the thresholds here.
const (
	// TierMeetingMin is the minimum entry count for "Meeting expectation"
	TierMeetingMin = 1
	// TierExceedingMin is the minimum entry count for "Exceeding expectation"
	TierExceedingMin = 3
	// TierOutstandingMin is the minimum entry count for "Outstanding"
	TierOutstandingMin = 7
)

// Tier labels and their 1-5 rubric scores.
const (
	TierNone        = "N/A"
	TierMeeting     = "Meeting expectation"
	TierExceeding   = "Exceeding expectation"
	TierOutstanding = "Outstanding"
)

// SuggestedScore maps an entry count to a suggested self-assessment tier and
// its rubric score. The mapping is monotonic: more entries never yield a
// lower tier.
func SuggestedScore(count int) (tier string, score int) {
	switch {
	case count >= TierOutstandingMin:
		return TierOutstanding, 5
	case count >= TierExceedingMin:
		return TierExceeding, 4
	case count >= TierMeetingMin:
		return TierMeeting, 3
	default:
		return TierNone, 0
	}
}

// FormatScore renders a suggested score for display, e.g.
// "Meeting expectation (3)" or "N/A".
func FormatScore(count int) string {
	tier, score := SuggestedScore(count)
	if score == 0 {
		return TierNone
	}
	return fmt.Sprintf("%s (%d)", tier, score)
}
