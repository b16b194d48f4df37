package plasmid

import (
	"strings"
)

// GCCategory buckets a GC percentage.
type GCCategory int

const (
	// GCLow is under 40 percent
	GCLow GCCategory = iota

	// GCMedium is 40 through 55 percent inclusive
	GCMedium

	// GCHigh is over 55 percent
	GCHigh
)

func (c GCCategory) String() string {
	switch c {
	case GCLow:
		return "Low"
	case GCHigh:
		return "High"
	}
	return "Medium"
}

// MarshalJSON writes the category as its name.
func (c GCCategory) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// GCContent returns the percentage of G and C bases in the sequence,
// case-insensitive.
func GCContent(sequence string) float64 {
	if sequence == "" {
		return 0
	}

	gc := 0
	for _, char := range strings.ToUpper(sequence) {
		if char == 'G' || char == 'C' {
			gc++
		}
	}

	return float64(gc) / float64(len(sequence)) * 100
}

// ClassifyGC buckets a GC percentage: under 40 is Low, over 55 is
// High, everything between (inclusive) is Medium.
func ClassifyGC(percent float64) GCCategory {
	if percent < 40 {
		return GCLow
	}
	if percent > 55 {
		return GCHigh
	}
	return GCMedium
}

// CopyNumber is the estimated per-cell replication tier of a plasmid.
type CopyNumber int

const (
	// CopyHigh is over 100 copies per cell
	CopyHigh CopyNumber = iota

	// CopyMedium is 15 to 100 copies per cell
	CopyMedium

	// CopyLow is 1 to 15 copies per cell
	CopyLow
)

func (c CopyNumber) String() string {
	switch c {
	case CopyHigh:
		return "High (>100 copies/cell)"
	case CopyMedium:
		return "Medium (15-100 copies/cell)"
	}
	return "Low (1-15 copies/cell)"
}

// MarshalJSON writes the tier with its textual range.
func (c CopyNumber) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// origin names tied to known copy number tiers
var (
	highCopyOrigins   = []string{"pUC", "ColE1", "pMB1"}
	mediumCopyOrigins = []string{"p15A", "pSC101"}
	lowCopyOrigins    = []string{"pBR322", "F", "P1"}
)

// EstimateCopyNumber guesses the copy number tier of a plasmid. If an
// annotation names a known origin of replication, that identity wins:
// the high-copy set is checked first, then medium, then low, and the
// first match returns immediately. Without an origin match the tier
// falls back to sequence length alone.
func EstimateCopyNumber(sequence string, annotations []Annotation) CopyNumber {
	for _, ann := range annotations {
		if ann.Kind != KindOrigin && !strings.Contains(strings.ToLower(ann.Name), "origin") {
			continue
		}

		if matchesOrigin(ann.Name, highCopyOrigins) {
			return CopyHigh
		}
		if matchesOrigin(ann.Name, mediumCopyOrigins) {
			return CopyMedium
		}
		if matchesOrigin(ann.Name, lowCopyOrigins) {
			return CopyLow
		}
	}

	// length heuristic: small plasmids tend to be high copy
	switch length := len(sequence); {
	case length < 3000:
		return CopyHigh
	case length < 6000:
		return CopyMedium
	}
	return CopyLow
}

func matchesOrigin(name string, origins []string) bool {
	for _, origin := range origins {
		if strings.Contains(name, origin) {
			return true
		}
	}
	return false
}
