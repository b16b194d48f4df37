package plasmid

// Report is the full per-request analysis of a validated sequence.
// Nothing in it persists beyond the response.
type Report struct {
	// Length of the sequence in bp
	Length int `json:"length"`

	// GCContent percentage, 0-100
	GCContent float64 `json:"gcContent"`

	// GCCategory bucket of GCContent
	GCCategory GCCategory `json:"gcCategory"`

	// CopyNumber estimate with its textual range
	CopyNumber CopyNumber `json:"copyNumber"`

	// ORFs found across all six reading frames
	ORFs []Annotation `json:"orfs"`

	// Features found against the reference motif table
	Features []Annotation `json:"features"`

	// ORFCount is len(ORFs)
	ORFCount int `json:"orfCount"`

	// FeatureCount is len(Features)
	FeatureCount int `json:"featureCount"`
}

// Annotations returns the combined feature and ORF annotations of the
// report. orfLimit caps how many ORFs are included (ORF calls are the
// least specific annotations); pass a negative limit for all of them.
func (r *Report) Annotations(orfLimit int) []Annotation {
	annotations := append([]Annotation{}, r.Features...)

	orfs := r.ORFs
	if orfLimit >= 0 && len(orfs) > orfLimit {
		orfs = orfs[:orfLimit]
	}

	return append(annotations, orfs...)
}

// Analyze validates a sequence and, when it passes, computes the full
// report: composition metrics, ORFs and motif features, and the copy
// number estimate informed by the found annotations.
func Analyze(sequence string, orfMinLength int) (*Report, error) {
	if err := Validate(sequence); err != nil {
		return nil, err
	}

	gc := GCContent(sequence)
	orfs := FindORFs(sequence, orfMinLength)
	features := FindCommonFeatures(sequence)

	annotations := append(append([]Annotation{}, features...), orfs...)

	return &Report{
		Length:       len(sequence),
		GCContent:    gc,
		GCCategory:   ClassifyGC(gc),
		CopyNumber:   EstimateCopyNumber(sequence, annotations),
		ORFs:         orfs,
		Features:     features,
		ORFCount:     len(orfs),
		FeatureCount: len(features),
	}, nil
}
