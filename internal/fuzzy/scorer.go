package fuzzy

import "unicode"

// Weights configures the match scoring algorithm.
type Weights struct {
	// Base is the starting score for any match.
	Base int

	// Consecutive is added for each consecutive character match.
	Consecutive int

	// WordBoundary is added for matches at word boundaries.
	WordBoundary int

	// Prefix is added when the first match is at position 0.
	Prefix int

	// ExactPrefix is added when the query matches the start of text exactly.
	ExactPrefix int

	// GapPenalty is subtracted per gap character between matches.
	GapPenalty int

	// LeadingPenalty is subtracted per character before the first match.
	LeadingPenalty int

	// LengthThreshold grants a bonus to texts shorter than it.
	LengthThreshold int
}

// DefaultWeights returns the scoring weights used by the palette.
func DefaultWeights() Weights {
	return Weights{
		Base:            100,
		Consecutive:     20,
		WordBoundary:    15,
		Prefix:          25,
		ExactPrefix:     50,
		GapPenalty:      2,
		LeadingPenalty:  1,
		LengthThreshold: 20,
	}
}

// score computes the match score for the given positions.
// Any successful match scores at least 1.
func (w Weights) score(queryRunes, originalRunes, textRunes []rune, positions []int) int {
	if len(positions) == 0 {
		return 0
	}

	score := w.Base

	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			score += w.Consecutive
		}
	}

	for _, idx := range positions {
		if isWordBoundary(originalRunes, idx) {
			score += w.WordBoundary
		}
	}

	if positions[0] == 0 {
		score += w.Prefix
	}

	if len(positions) > 1 {
		totalGap := positions[len(positions)-1] - positions[0] - len(positions) + 1
		if totalGap > 0 {
			score -= totalGap * w.GapPenalty
		}
	}

	if positions[0] > 0 {
		score -= positions[0] * w.LeadingPenalty
	}

	if len(textRunes) < w.LengthThreshold {
		score += w.LengthThreshold - len(textRunes)
	}

	if len(textRunes) >= len(queryRunes) {
		isPrefix := true
		for i, qr := range queryRunes {
			if textRunes[i] != qr {
				isPrefix = false
				break
			}
		}
		if isPrefix {
			score += w.ExactPrefix
		}
	}

	if score < 1 {
		score = 1
	}
	return score
}

// isWordBoundary checks if the rune at idx starts a word: position zero,
// after a space or punctuation rune, or at a camelCase transition.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev := runes[idx-1]
	curr := runes[idx]

	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	if unicode.IsLower(prev) && unicode.IsUpper(curr) {
		return true
	}
	return false
}
