package ocr

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/arbovm/levenshtein"
)

// Normalizer cleans recognition artifacts out of raw OCR output. Normalize is
// deterministic, pure and idempotent: normalize(normalize(x)) == normalize(x).
type Normalizer struct {
	rules     Ruleset
	vocabSet  map[string]bool
	collapser *regexp.Regexp
	spaces    *regexp.Regexp
}

// digit and symbol confusions repaired only when flanked by letters, so real
// numbers (phone numbers, salaries) stay untouched
var letterConfusions = map[rune]rune{
	'0': 'O',
	'1': 'I',
	'5': 'S',
	'8': 'B',
	'!': 'I',
	'|': 'I',
}

// NewNormalizer builds a normalizer over the default repair ruleset
func NewNormalizer() *Normalizer {
	return NewNormalizerWithRules(DefaultRuleset())
}

// NewNormalizerWithRules builds a normalizer over a custom repair ruleset
func NewNormalizerWithRules(rules Ruleset) *Normalizer {
	vocab := make(map[string]bool, len(rules.Vocabulary))
	for _, w := range rules.Vocabulary {
		vocab[w] = true
	}
	return &Normalizer{
		rules:    rules,
		vocabSet: vocab,
		// "L owongan" style detached leading capitals left by tesseract;
		// the capital must be a standalone letter so ordinary word
		// boundaries are never joined
		collapser: regexp.MustCompile(`(^|[^A-Za-z])([A-Z]) +([a-z])`),
		spaces:    regexp.MustCompile(`\s+`),
	}
}

// Normalize cleans one block of raw OCR text
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = n.applyRuleset(text)
	text = stripNonPrintable(text)
	text = fixLetterConfusions(text)
	text = n.dropNoiseLines(text)
	// whitespace must be collapsed before the detached-capital join so the
	// collapser sees the same single-spaced text a second pass would see
	text = n.spaces.ReplaceAllString(text, " ")
	text = n.collapser.ReplaceAllString(text, "$1$2$3")
	return strings.TrimSpace(text)
}

// applyRuleset replaces known mangled words, then repairs remaining
// digit-bearing uppercase tokens that sit within edit distance 1 of the
// domain vocabulary
func (n *Normalizer) applyRuleset(text string) string {
	for wrong, correct := range n.rules.Replacements {
		text = strings.ReplaceAll(text, wrong, correct)
	}

	fields := strings.Fields(text)
	changed := false
	for i, tok := range fields {
		if !tokenNeedsRepair(tok) {
			continue
		}
		if fixed, ok := n.repairToken(tok); ok {
			fields[i] = fixed
			changed = true
		}
	}
	if !changed {
		return text
	}
	return strings.Join(fields, " ")
}

// tokenNeedsRepair limits fuzzy repair to uppercase words corrupted by
// digits; clean tokens and real numbers never qualify, which keeps the
// repair idempotent
func tokenNeedsRepair(tok string) bool {
	if len(tok) < 4 {
		return false
	}
	hasDigit, hasUpper := false, false
	for _, r := range tok {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			return false
		}
	}
	return hasDigit && hasUpper
}

func (n *Normalizer) repairToken(tok string) (string, bool) {
	mapped := []rune(tok)
	for i, r := range mapped {
		if fix, ok := letterConfusions[r]; ok {
			mapped[i] = fix
		}
	}
	candidate := string(mapped)
	if n.vocabSet[candidate] {
		return candidate, true
	}
	for _, word := range n.rules.Vocabulary {
		if abs(len(word)-len(candidate)) <= 1 && levenshtein.Distance(candidate, word) <= 1 {
			return word, true
		}
	}
	return tok, false
}

// stripNonPrintable keeps ASCII printables plus the Latin-extended ranges
// Indonesian text uses; everything else becomes a space
func stripNonPrintable(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r >= 0x20 && r <= 0x7E:
			b.WriteRune(r)
		case r >= 0x00A0 && r <= 0x024F:
			b.WriteRune(r)
		case r >= 0x1E00 && r <= 0x1EFF:
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// fixLetterConfusions rewrites digit/letter confusions when the character is
// flanked by letters on both sides
func fixLetterConfusions(text string) string {
	runes := []rune(text)
	for i := 1; i < len(runes)-1; i++ {
		fix, ok := letterConfusions[runes[i]]
		if !ok {
			continue
		}
		if unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
			runes[i] = fix
		}
	}
	return string(runes)
}

// dropNoiseLines removes lines carrying fewer than 2 alphanumeric characters
func (n *Normalizer) dropNoiseLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		alnum := 0
		for _, r := range line {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				alnum++
				if alnum >= 2 {
					break
				}
			}
		}
		if alnum >= 2 {
			kept = append(kept, strings.TrimSpace(line))
		}
	}
	return strings.Join(kept, "\n")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
