package plasmid

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadSequence reads a query sequence from a file. FASTA files (by
// extension or a leading '>') return the first record's id and
// sequence; anything else is treated as a plain sequence file with
// whitespace removed. Characters are kept as-is beyond that, invalid
// ones are for Validate to flag.
func ReadSequence(path string) (name, seq string, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return "", "", fmt.Errorf("failed to create path to input file: %s", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	file := string(dat)

	lowered := strings.ToLower(path)
	if strings.HasSuffix(lowered, ".fa") ||
		strings.HasSuffix(lowered, ".fasta") ||
		strings.HasPrefix(file, ">") {
		return readFasta(path, file)
	}

	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), stripWhitespace(file), nil
}

// readFasta parses the first record of a FASTA file.
func readFasta(path, contents string) (name, seq string, err error) {
	lines := strings.Split(contents, "\n")

	var seqLines []string
	for _, line := range lines {
		if strings.HasPrefix(line, ">") {
			if name != "" {
				break // only the first record
			}
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				name = fields[0]
			} else {
				name = "unnamed"
			}
			continue
		}
		if name != "" {
			seqLines = append(seqLines, strings.TrimSpace(line))
		}
	}

	if name == "" {
		return "", "", fmt.Errorf("failed to parse a FASTA record from %s", path)
	}

	return name, strings.ToUpper(strings.Join(seqLines, "")), nil
}

// ReadRawText reads raw generator output from a file, unmodified.
func ReadRawText(path string) (string, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(dat), nil
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
