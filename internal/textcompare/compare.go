// Package textcompare aligns a reference text against a produced text
// (read aloud or written) and counts word-level and letter-level error
// patterns relevant to dyslexia screening.
package textcompare

import "strings"

// reversalPairs are letters that are graphic mirror images of each
// other. Mistaking one for the other is a classic reversal error.
var reversalPairs = [][2]rune{
	{'b', 'd'},
	{'p', 'q'},
	{'n', 'u'},
	{'m', 'w'},
}

// confusionPairs are letters that are visually or phonetically close
// enough to be routinely swapped.
var confusionPairs = [][2]rune{
	{'a', 'e'},
	{'i', 'e'},
	{'o', 'a'},
	{'u', 'o'},
	{'m', 'n'},
}

// Report summarizes the alignment of a produced text against its
// reference.
type Report struct {
	ReferenceWords int
	ProducedWords  int
	Substitutions  int
	Omissions      int
	Insertions     int
	// Letter-level counts, taken only inside substituted word pairs.
	Reversals  int
	Confusions int
}

// Errors is the total word-level error count.
func (r Report) Errors() int {
	return r.Substitutions + r.Omissions + r.Insertions
}

// ErrorRate is errors per reference word as a percentage. Zero when the
// reference is empty.
func (r Report) ErrorRate() float64 {
	if r.ReferenceWords == 0 {
		return 0
	}
	rate := float64(r.Errors()) / float64(r.ReferenceWords) * 100
	if rate > 100 {
		rate = 100
	}
	return rate
}

// Compare aligns produced against reference position by position. Words
// are compared index by index after whitespace tokenization; when the
// sequences differ in length the unmatched tail counts as omissions
// (reference longer) or insertions (produced longer). The comparison is
// case-insensitive and fully deterministic.
func Compare(reference, produced string) Report {
	refWords := strings.Fields(strings.ToLower(reference))
	prodWords := strings.Fields(strings.ToLower(produced))

	report := Report{
		ReferenceWords: len(refWords),
		ProducedWords:  len(prodWords),
	}

	maxLen := len(refWords)
	if len(prodWords) > maxLen {
		maxLen = len(prodWords)
	}

	for i := 0; i < maxLen; i++ {
		switch {
		case i >= len(refWords):
			report.Insertions++
		case i >= len(prodWords):
			report.Omissions++
		case refWords[i] != prodWords[i]:
			report.Substitutions++
			reversals, confusions := compareLetters(refWords[i], prodWords[i])
			report.Reversals += reversals
			report.Confusions += confusions
		}
	}

	return report
}

// compareLetters walks two misread words position by position and
// counts reversal and confusion letter swaps. Both words are already
// lowercase.
func compareLetters(expected, actual string) (reversals, confusions int) {
	exp := []rune(expected)
	act := []rune(actual)

	n := len(exp)
	if len(act) < n {
		n = len(act)
	}

	for i := 0; i < n; i++ {
		if exp[i] == act[i] {
			continue
		}
		if isPairSwap(exp[i], act[i], reversalPairs) {
			reversals++
		} else if isPairSwap(exp[i], act[i], confusionPairs) {
			confusions++
		}
	}
	return reversals, confusions
}

func isPairSwap(a, b rune, pairs [][2]rune) bool {
	for _, p := range pairs {
		if (a == p[0] && b == p[1]) || (a == p[1] && b == p[0]) {
			return true
		}
	}
	return false
}
