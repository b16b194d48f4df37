package plasmid

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_writeJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	seq := strings.Repeat("ATGC", 25)
	report, err := Analyze(seq, DefaultORFMinLength)
	if err != nil {
		t.Fatal(err)
	}

	output, err := writeJSON(path, "pTest", seq, report, 0.42)
	if err != nil {
		t.Fatalf("writeJSON() error = %v", err)
	}

	// the bytes returned match what was written
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(output, written) {
		t.Error("writeJSON() returned bytes differ from the file")
	}

	var parsed struct {
		Target    string  `json:"target"`
		TargetSeq string  `json:"seq"`
		Execution float64 `json:"execution"`
	}
	if err := json.Unmarshal(written, &parsed); err != nil {
		t.Fatalf("failed to parse written output: %v", err)
	}
	if parsed.Target != "pTest" {
		t.Errorf("target = %q, want pTest", parsed.Target)
	}
	if parsed.TargetSeq != seq {
		t.Errorf("seq = %q, want the analyzed sequence", parsed.TargetSeq)
	}
	if parsed.Execution != 0.42 {
		t.Errorf("execution = %v, want 0.42", parsed.Execution)
	}
}

// enum fields serialize as their names, not ints
func Test_writeJSON_enums(t *testing.T) {
	report := &Report{
		Length:     100,
		GCContent:  50,
		GCCategory: GCMedium,
		CopyNumber: CopyHigh,
		Features: []Annotation{
			{Name: "RBS", Kind: KindRBS, Start: 0, End: 6, Strand: "+"},
		},
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{`"Medium"`, `"High (>100 copies/cell)"`, `"RBS"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("marshalled report missing %s: %s", want, data)
		}
	}
}

func Test_writeAnnotationTable(t *testing.T) {
	var buf bytes.Buffer
	writeAnnotationTable(&buf, []Annotation{
		{Name: "T7 Promoter", Kind: KindPromoter, Start: 10, End: 30, Strand: "+"},
		{Name: "ORF_1", Kind: KindORF, Start: 100, End: 500, Strand: "-"},
	})

	got := buf.String()
	for _, want := range []string{"T7 Promoter", "promoter", "10..30", "ORF_1", "100..500", "-"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func Test_writeMetrics(t *testing.T) {
	var buf bytes.Buffer
	writeMetrics(&buf, &Report{
		Length:     2686,
		GCContent:  50.68,
		GCCategory: GCMedium,
		CopyNumber: CopyHigh,
	})

	got := buf.String()
	for _, want := range []string{"2686 bp", "50.68% (Medium)", "High (>100 copies/cell)"} {
		if !strings.Contains(got, want) {
			t.Errorf("metrics missing %q:\n%s", want, got)
		}
	}
}
