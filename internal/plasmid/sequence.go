package plasmid

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// sequence length bounds for a plasmid. Anything under 100bp isn't a
// usable sequence and plasmids are typically well under 50kb.
const (
	MinSequenceLength = 100
	MaxSequenceLength = 50000
)

var (
	// any bracketed span, stripped before looking for DNA
	bracketedSpanRegex = regexp.MustCompile(`<[^>]+>`)

	// a maximal run of nucleotide letters, either case
	nucleotideRunRegex = regexp.MustCompile(`[ATGCatgc]+`)
)

// ExtractDNA pulls a usable DNA sequence out of raw generator output.
// Bracketed tokens are removed first. The longest remaining run of
// nucleotide letters at least minLength long wins (ties go to the
// earliest). If no run qualifies, the whole stripped text is filtered
// down to just A/T/G/C, and that's returned if it's long enough.
// An empty return signals extraction failure: callers must branch on
// it before validating.
func ExtractDNA(text string, minLength int) string {
	text = bracketedSpanRegex.ReplaceAllString(text, "")

	longest := ""
	for _, run := range nucleotideRunRegex.FindAllString(text, -1) {
		if len(run) >= minLength && len(run) > len(longest) {
			longest = run
		}
	}
	if longest != "" {
		return strings.ToUpper(longest)
	}

	// no clean run, keep whatever bases are scattered through the text
	var cleaned bytes.Buffer
	for _, char := range strings.ToUpper(text) {
		if char == 'A' || char == 'T' || char == 'G' || char == 'C' {
			cleaned.WriteRune(char)
		}
	}

	if cleaned.Len() >= minLength {
		return cleaned.String()
	}
	return ""
}

// ValidationCode is the kind of a sequence validation failure.
type ValidationCode int

const (
	// EmptySequence is returned for a zero length sequence
	EmptySequence ValidationCode = iota

	// InvalidCharacters is returned when the sequence has letters beyond A/T/G/C
	InvalidCharacters

	// TooShort is returned for sequences under MinSequenceLength
	TooShort

	// TooLong is returned for sequences over MaxSequenceLength
	TooLong
)

// ValidationError describes why a sequence was rejected. It's
// returned to the caller with full detail and never auto-corrected.
type ValidationError struct {
	Code ValidationCode

	// Invalid holds the offending characters for InvalidCharacters
	Invalid []string

	// Length and Limit are set for TooShort and TooLong
	Length int
	Limit  int
}

func (e *ValidationError) Error() string {
	switch e.Code {
	case EmptySequence:
		return "empty sequence"
	case InvalidCharacters:
		return fmt.Sprintf("invalid characters found: %s", strings.Join(e.Invalid, ", "))
	case TooShort:
		return fmt.Sprintf("sequence too short: %d bp (minimum %d bp)", e.Length, e.Limit)
	case TooLong:
		return fmt.Sprintf("sequence too long: %d bp (maximum %d bp)", e.Length, e.Limit)
	}
	return "invalid sequence"
}

// Validate checks a candidate sequence, in order: emptiness, alphabet,
// minimum length, maximum length. Only a sequence passing all four is
// a valid plasmid sequence. The check is case-insensitive.
func Validate(sequence string) error {
	if sequence == "" {
		return &ValidationError{Code: EmptySequence}
	}

	seen := make(map[rune]bool)
	var invalid []string
	for _, char := range strings.ToUpper(sequence) {
		if char == 'A' || char == 'T' || char == 'G' || char == 'C' || seen[char] {
			continue
		}
		seen[char] = true
		invalid = append(invalid, string(char))
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return &ValidationError{Code: InvalidCharacters, Invalid: invalid}
	}

	if len(sequence) < MinSequenceLength {
		return &ValidationError{Code: TooShort, Length: len(sequence), Limit: MinSequenceLength}
	}

	if len(sequence) > MaxSequenceLength {
		return &ValidationError{Code: TooLong, Length: len(sequence), Limit: MaxSequenceLength}
	}

	return nil
}

// reverseComplement returns the reverse complement of a sequence
func reverseComplement(seq string) string {
	seq = strings.ToUpper(seq)

	revCompMap := map[rune]byte{
		'A': 'T',
		'T': 'A',
		'G': 'C',
		'C': 'G',
	}

	var revCompBuffer bytes.Buffer
	for _, c := range seq {
		revCompBuffer.WriteByte(revCompMap[c])
	}

	revCompBytes := revCompBuffer.Bytes()
	for i := 0; i < len(revCompBytes)/2; i++ {
		j := len(revCompBytes) - i - 1
		revCompBytes[i], revCompBytes[j] = revCompBytes[j], revCompBytes[i]
	}

	return string(revCompBytes)
}
