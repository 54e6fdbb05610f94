package services

import "strings"

// The ladder runs from Bronze 5 up to Diamond 1 in 25 steps. Each
// entry is the minimum cumulative workout count for that label; lookup
// takes the first threshold met from the top, so the table must stay
// strictly decreasing.
type tierStep struct {
	Threshold int
	Label     string
}

var tierLadder = []tierStep{
	{500, "Diamond 1"},
	{450, "Diamond 2"},
	{400, "Diamond 3"},
	{350, "Diamond 4"},
	{300, "Diamond 5"},
	{250, "Platinum 1"},
	{200, "Platinum 2"},
	{175, "Platinum 3"},
	{150, "Platinum 4"},
	{125, "Platinum 5"},
	{100, "Gold 1"},
	{85, "Gold 2"},
	{70, "Gold 3"},
	{55, "Gold 4"},
	{40, "Gold 5"},
	{35, "Silver 1"},
	{30, "Silver 2"},
	{25, "Silver 3"},
	{20, "Silver 4"},
	{15, "Silver 5"},
	{12, "Bronze 1"},
	{9, "Bronze 2"},
	{6, "Bronze 3"},
	{3, "Bronze 4"},
}

// LowestTier is returned for zero and any count below the lowest
// named threshold.
const LowestTier = "Bronze 5"

// TierForWorkouts maps a cumulative workout count onto its tier label.
// Pure and total: negative counts clamp to the lowest tier.
func TierForWorkouts(totalWorkouts int) string {
	for _, step := range tierLadder {
		if totalWorkouts >= step.Threshold {
			return step.Label
		}
	}
	return LowestTier
}

// TierBand strips the sub-rank, leaving one of the five major bands.
func TierBand(label string) string {
	if index := strings.IndexByte(label, ' '); index > 0 {
		return label[:index]
	}
	return label
}

// TierEmoji returns the badge shown next to a tier label.
func TierEmoji(label string) string {
	switch TierBand(label) {
	case "Diamond":
		return "💎"
	case "Platinum":
		return "🏆"
	case "Gold":
		return "🥇"
	case "Silver":
		return "🥈"
	default:
		return "🥉"
	}
}
