package plasmid

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
)

// Output is the JSON document written for an analysis request.
type Output struct {
	// Target's name. In >pUC19 FASTA its "pUC19"
	Target string `json:"target"`

	// Target's sequence
	TargetSeq string `json:"seq"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Report holds the sequence metrics and annotations
	Report *Report `json:"report"`
}

// writeJSON writes the analysis report to the filename requested.
func writeJSON(
	filename,
	targetName,
	targetSeq string,
	report *Report,
	seconds float64,
) (output []byte, err error) {
	// store save time, using same format as log.Println
	t := time.Now()
	timestamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	out := Output{
		Target:    targetName,
		TargetSeq: targetSeq,
		Time:      timestamp,
		Execution: seconds,
		Report:    report,
	}

	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the output: %v", err)
	}

	return output, nil
}

// writeAnnotationTable logs the annotations to w as an aligned table.
func writeAnnotationTable(w io.Writer, annotations []Annotation) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	fmt.Fprintf(tw, "feature\tkind\tposition\tstrand\n")
	for _, ann := range annotations {
		fmt.Fprintf(tw, "%s\t%s\t%d..%d\t%s\n", ann.Name, ann.Kind, ann.Start, ann.End, ann.Strand)
	}

	tw.Flush()
}

// writeMetrics logs the report's top line numbers to w.
func writeMetrics(w io.Writer, report *Report) {
	fmt.Fprintf(w, "length: %d bp\n", report.Length)
	fmt.Fprintf(w, "gc content: %.2f%% (%s)\n", report.GCContent, report.GCCategory)
	fmt.Fprintf(w, "copy number: %s\n", report.CopyNumber)
	fmt.Fprintf(w, "features: %d\n", report.FeatureCount)
	fmt.Fprintf(w, "orfs: %d\n", report.ORFCount)
}
