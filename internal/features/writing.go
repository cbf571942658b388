package features

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/models"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/textcompare"
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	missingSpace  = regexp.MustCompile(`[.!?,][a-zA-Z]`)
	spaceRun      = regexp.MustCompile(` +`)
	terminalPunct = ".!?"
)

// ExtractWriting derives spelling, grammar, and dysgraphia-indicator
// features from a writing-prompt test.
func ExtractWriting(p *models.WritingPayload, elapsedSeconds float64) models.FeatureVector {
	if p == nil {
		p = &models.WritingPayload{}
	}

	text := p.TextWritten
	words := strings.Fields(text)
	wordCount := len(words)
	promptWords := len(strings.Fields(p.Prompt))

	spellingErrors := countSpellingErrors(words)
	grammarErrors := countGrammarErrors(text)
	capitalizationErrors := countCapitalizationErrors(text)
	punctuationErrors := countPunctuationErrors(text)
	totalErrors := spellingErrors + grammarErrors + capitalizationErrors + punctuationErrors

	errorRate := safeDiv(float64(totalErrors), float64(maxInt(wordCount, 1))) * 100
	score := clampScore(100 - errorRate)

	// Reversal patterns are only detectable against a reference, so the
	// prompt stands in for one; echoed prompt words with mirrored
	// letters surface here.
	reversals := textcompare.Compare(p.Prompt, text).Reversals

	spacingVariance, inconsistent := analyzeSpacing(text)

	completionRate := 1.0
	if promptWords > 0 {
		completionRate = float64(wordCount) / float64(promptWords)
		if completionRate > 1 {
			completionRate = 1
		}
	}

	var writingSpeed float64
	if elapsedSeconds > 0 {
		writingSpeed = float64(wordCount) / (elapsedSeconds / 60)
	}

	return models.FeatureVector{
		"word_count":            float64(wordCount),
		"char_count":            float64(len(text)),
		"sentence_count":        float64(countSentences(text)),
		"writing_speed":         round2(writingSpeed),
		"spelling_errors":       float64(spellingErrors),
		"grammar_errors":        float64(grammarErrors),
		"capitalization_errors": float64(capitalizationErrors),
		"punctuation_errors":    float64(punctuationErrors),
		"error_rate":            round2(errorRate),
		"letter_reversals":      float64(reversals),
		"spacing_variance":      round2(spacingVariance),
		"inconsistent_spacing":  boolFeature(inconsistent),
		"completion_rate":       round2(completionRate),
		"accuracy":              round2(score),
		models.FeatureScore:     round2(score),
		models.FeatureErrors:    float64(totalErrors),
	}
}

// countSpellingErrors flags words with a run of four or more identical
// letters, a cheap stand-in for a dictionary check.
func countSpellingErrors(words []string) int {
	errors := 0
	for _, word := range words {
		if hasLongRun(strings.ToLower(word), 4) {
			errors++
		}
	}
	return errors
}

func hasLongRun(word string, run int) bool {
	var prev rune
	count := 0
	for _, r := range word {
		if r == prev {
			count++
			if count >= run {
				return true
			}
		} else {
			prev = r
			count = 1
		}
	}
	return false
}

func countGrammarErrors(text string) int {
	errors := 0
	if missingSpace.MatchString(text) {
		errors++
	}
	if strings.Contains(text, "  ") {
		errors++
	}
	return errors
}

// countCapitalizationErrors counts sentences whose first letter is
// lowercase.
func countCapitalizationErrors(text string) int {
	errors := 0
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		first := []rune(sentence)[0]
		if unicode.IsLetter(first) && unicode.IsLower(first) {
			errors++
		}
	}
	return errors
}

func countPunctuationErrors(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	last := trimmed[len(trimmed)-1]
	if !strings.ContainsRune(terminalPunct, rune(last)) {
		return 1
	}
	return 0
}

func countSentences(text string) int {
	count := 0
	for _, sentence := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(sentence) != "" {
			count++
		}
	}
	return count
}

// analyzeSpacing measures the variance of inter-word gap widths. A
// steady writer produces single spaces; varying gap widths are a
// dysgraphia indicator.
func analyzeSpacing(text string) (float64, bool) {
	runs := spaceRun.FindAllString(text, -1)
	if len(runs) == 0 {
		return 0, false
	}

	lengths := make([]float64, 0, len(runs))
	distinct := make(map[int]struct{})
	for _, run := range runs {
		lengths = append(lengths, float64(len(run)))
		distinct[len(run)] = struct{}{}
	}

	return variance(lengths), len(distinct) > 1
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
