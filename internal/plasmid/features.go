package plasmid

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the class of an annotated feature.
type Kind int

const (
	// KindOther is a feature that isn't one of the known classes
	KindOther Kind = iota

	// KindPromoter is a transcription promoter
	KindPromoter

	// KindTerminator is a transcription terminator
	KindTerminator

	// KindRBS is a ribosome binding site
	KindRBS

	// KindORF is an open reading frame
	KindORF

	// KindOrigin is an origin of replication
	KindOrigin
)

func (k Kind) String() string {
	switch k {
	case KindPromoter:
		return "promoter"
	case KindTerminator:
		return "terminator"
	case KindRBS:
		return "RBS"
	case KindORF:
		return "ORF"
	case KindOrigin:
		return "origin"
	}
	return "other"
}

// MarshalJSON writes the kind as its name rather than an int.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Annotation is a positional feature on the forward strand numbering
// of a sequence: start is inclusive, end exclusive, and
// 0 <= start < end <= len(sequence).
type Annotation struct {
	// Name of the feature, ex: "T7 Promoter" or "ORF_2"
	Name string `json:"name"`

	// Kind of the feature
	Kind Kind `json:"kind"`

	// Start index on the forward strand
	Start int `json:"start"`

	// End index on the forward strand (exclusive)
	End int `json:"end"`

	// Strand the feature sits on: "+" or "-"
	Strand string `json:"strand"`
}

// Length of the annotated span in bp.
func (a Annotation) Length() int {
	return a.End - a.Start
}

// start codons recognized when scanning for ORFs. GTG and TTG are
// the common bacterial alternates.
var startCodons = map[string]bool{"ATG": true, "GTG": true, "TTG": true}

// stop codons
var stopCodons = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

// DefaultORFMinLength is the minimum ORF span reported by default.
const DefaultORFMinLength = 300

// FindORFs scans all six reading frames (three offsets on each
// strand) for spans from a start codon through the next in-frame stop
// codon, inclusive. A consumed stop codon is never shared between two
// reported ORFs: the scan resumes after it, so nested starts before
// the stop are dropped. Reverse strand hits are mapped back onto
// forward strand numbering. Names are assigned in discovery order and
// the returned list is sorted by start.
func FindORFs(sequence string, minLength int) []Annotation {
	sequence = strings.ToUpper(sequence)
	seqLen := len(sequence)

	var orfs []Annotation
	for _, strand := range []struct {
		sign string
		seq  string
	}{
		{"+", sequence},
		{"-", reverseComplement(sequence)},
	} {
		for frame := 0; frame < 3; frame++ {
			// last codon-aligned index within this frame
			limit := frame + 3*((seqLen-frame)/3)

			for i := frame; i+3 <= limit; {
				if !startCodons[strand.seq[i:i+3]] {
					i += 3
					continue
				}

				stop := -1
				for j := i + 3; j+3 <= limit; j += 3 {
					if stopCodons[strand.seq[j:j+3]] {
						stop = j
						break
					}
				}
				if stop < 0 {
					// no in-frame stop left, this frame is done
					break
				}

				if orfLen := stop + 3 - i; orfLen >= minLength {
					start, end := i, stop+3
					if strand.sign == "-" {
						start, end = seqLen-(stop+3), seqLen-i
					}

					orfs = append(orfs, Annotation{
						Name:   fmt.Sprintf("ORF_%d", len(orfs)+1),
						Kind:   KindORF,
						Start:  start,
						End:    end,
						Strand: strand.sign,
					})
				}

				// the stop codon is consumed either way
				i = stop + 3
			}
		}
	}

	sort.SliceStable(orfs, func(i, j int) bool {
		return orfs[i].Start < orfs[j].Start
	})

	return orfs
}

// motif is a named reference sequence tied to a feature kind.
type motif struct {
	name string
	kind Kind
	seq  string
}

// referenceMotifs are the common promoter and terminator sequences
// scanned by FindCommonFeatures. Only the first occurrence of each
// is reported.
var referenceMotifs = []motif{
	{"T7 Promoter", KindPromoter, "TAATACGACTCACTATAGGG"},
	{"T3 Promoter", KindPromoter, "AATTAACCCTCACTAAAGGG"},
	{"lac Promoter", KindPromoter, "TGGAATTGTGAGCGGATAACAATT"},
	{"tac Promoter", KindPromoter, "TTTACACTTTATGCTTCCGGCTC"},
	{"T7 Terminator", KindTerminator, "CTAGCATAACCCCTTGGGGCCTCTAAACGGGTCTTGAGGGGTTTTTTG"},
	{"rrnB T1 Terminator", KindTerminator, "TCTCGTGGGCTCGTGTTGTGTGTATTTTTTTTGTTTAG"},
}

// rbsMotif is the Shine-Dalgarno consensus. Unlike the reference
// motifs, every occurrence is reported, overlapping ones included.
const rbsMotif = "AGGAGG"

// FindCommonFeatures searches the sequence for the reference promoter
// and terminator motifs (first hit per motif) and for ribosome
// binding sites (every hit). The search is case-insensitive.
func FindCommonFeatures(sequence string) []Annotation {
	seqUpper := strings.ToUpper(sequence)

	var features []Annotation
	for _, m := range referenceMotifs {
		pos := strings.Index(seqUpper, m.seq)
		if pos < 0 {
			continue
		}
		features = append(features, Annotation{
			Name:   m.name,
			Kind:   m.kind,
			Start:  pos,
			End:    pos + len(m.seq),
			Strand: "+",
		})
	}

	// overlapping RBS hits count, resume one past each match
	start := 0
	for {
		pos := strings.Index(seqUpper[start:], rbsMotif)
		if pos < 0 {
			break
		}
		pos += start
		features = append(features, Annotation{
			Name:   "RBS",
			Kind:   KindRBS,
			Start:  pos,
			End:    pos + len(rbsMotif),
			Strand: "+",
		})
		start = pos + 1
	}

	return features
}
