package textcompare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparePerfectRead(t *testing.T) {
	report := Compare("the quick brown fox", "the quick brown fox")

	assert.Equal(t, 4, report.ReferenceWords)
	assert.Equal(t, 4, report.ProducedWords)
	assert.Equal(t, 0, report.Errors())
	assert.Equal(t, 0.0, report.ErrorRate())
}

func TestCompareSubstitution(t *testing.T) {
	report := Compare("the quick brown fox", "the qick brown fox")

	assert.Equal(t, 1, report.Substitutions)
	assert.Equal(t, 0, report.Omissions)
	assert.Equal(t, 0, report.Insertions)
	assert.Equal(t, 1, report.Errors())
	assert.Equal(t, 25.0, report.ErrorRate())
}

func TestCompareOmissionsAndInsertions(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		produced  string
		omissions int
		inserts   int
	}{
		{"trailing words dropped", "one two three four", "one two", 2, 0},
		{"extra words appended", "one two", "one two three four", 0, 2},
		{"nothing produced", "one two three", "", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Compare(tt.reference, tt.produced)
			assert.Equal(t, tt.omissions, report.Omissions)
			assert.Equal(t, tt.inserts, report.Insertions)
		})
	}
}

func TestCompareLetterPatterns(t *testing.T) {
	tests := []struct {
		name       string
		reference  string
		produced   string
		reversals  int
		confusions int
	}{
		{"b/d reversal", "dog", "bog", 1, 0},
		{"p/q reversal", "pig", "qig", 1, 0},
		{"a/e confusion", "pan", "pen", 0, 1},
		{"u/o confusion", "cut", "cot", 0, 1},
		{"plain misread", "cat", "car", 0, 0},
		{"both mirrored positions counted", "bad", "dab", 2, 0},
		{"exact words are never inspected", "bad pen", "bad pen", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Compare(tt.reference, tt.produced)
			assert.Equal(t, tt.reversals, report.Reversals)
			assert.Equal(t, tt.confusions, report.Confusions)
		})
	}
}

func TestCompareCaseInsensitive(t *testing.T) {
	report := Compare("The Quick Brown Fox", "the quick brown fox")
	assert.Equal(t, 0, report.Errors())
}

func TestErrorRateEmptyReference(t *testing.T) {
	report := Compare("", "anything at all")

	assert.Equal(t, 3, report.Insertions)
	assert.Equal(t, 0.0, report.ErrorRate())
}

func TestErrorRateCappedAtHundred(t *testing.T) {
	report := Compare("one", "two three four five")

	assert.Equal(t, 4, report.Errors())
	assert.Equal(t, 100.0, report.ErrorRate())
}
