package plasmid

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/McClain-Thiel/plasmid-space/config"
	"github.com/spf13/cobra"
)

// loadVocab builds the vocabulary from the configured vocab.json
// path, or falls back to the built-in table.
func loadVocab(conf *config.Config) *Vocab {
	if conf.Vocab == "" {
		return DefaultVocab()
	}

	vocab, err := LoadVocabFile(conf.Vocab)
	if err != nil {
		stderr.Fatalln(err)
	}
	return vocab
}

// querySequence gets the sequence being analyzed from the args or
// from the file behind the "in" flag.
func querySequence(cmd *cobra.Command, args []string) (name, seq string) {
	if len(args) > 0 {
		return "plasmid", strings.Join(args, "")
	}

	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatalln("must pass a sequence or a file with a sequence. see --in")
	}

	name, seq, err = ReadSequence(in)
	if err != nil {
		stderr.Fatalln(err)
	}
	return name, seq
}

// AnalyzeCmd validates a plasmid sequence and reports its metrics,
// ORFs and common features with 'plasmid-space analyze [seq]'.
func AnalyzeCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	name, seq := querySequence(cmd, args)

	start := time.Now()
	report, err := Analyze(seq, conf.Annotation.ORFMinLength)
	if err != nil {
		stderr.Fatalln(err)
	}

	out, _ := cmd.Flags().GetString("out")
	if out != "" {
		if _, err := writeJSON(out, name, seq, report, time.Since(start).Seconds()); err != nil {
			stderr.Fatalln(err)
		}
		return
	}

	writeMetrics(os.Stdout, report)
	fmt.Println()
	writeAnnotationTable(os.Stdout, report.Annotations(conf.Annotation.ORFLimit))
}

// ExtractCmd pulls a validated DNA sequence out of raw generator
// output with 'plasmid-space extract --in raw.txt'.
func ExtractCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		in, err := cmd.Flags().GetString("in")
		if in == "" || err != nil {
			cmd.Help()
			stderr.Fatalln("must pass raw generator output or a file with it. see --in")
		}
		if text, err = ReadRawText(in); err != nil {
			stderr.Fatalln(err)
		}
	}

	start := time.Now()
	seq := ExtractDNA(text, conf.Extraction.MinLength)
	if seq == "" {
		stderr.Fatalf(
			"failed to extract a DNA sequence of at least %d bp from the input",
			conf.Extraction.MinLength,
		)
	}

	if err := Validate(seq); err != nil {
		stderr.Fatalf("extracted an invalid sequence: %v", err)
	}

	out, _ := cmd.Flags().GetString("out")
	if out != "" {
		report, err := Analyze(seq, conf.Annotation.ORFMinLength)
		if err != nil {
			stderr.Fatalln(err)
		}
		if _, err := writeJSON(out, "extracted", seq, report, time.Since(start).Seconds()); err != nil {
			stderr.Fatalln(err)
		}
		return
	}

	fmt.Println(seq)
}

// EncodeCmd converts text to token ids with 'plasmid-space encode [text]'.
func EncodeCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("must pass text to encode")
	}

	addBOS, _ := cmd.Flags().GetBool("bos")
	codec := NewCodec(loadVocab(conf))

	ids := codec.Encode(strings.Join(args, ""), addBOS)
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.Itoa(id)
	}

	fmt.Println(strings.Join(strs, " "))
}

// DecodeCmd converts token ids back to text with
// 'plasmid-space decode [id ...]'.
func DecodeCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("must pass token ids to decode")
	}

	var ids []int
	for _, arg := range args {
		for _, field := range strings.Fields(strings.ReplaceAll(arg, ",", " ")) {
			id, err := strconv.Atoi(field)
			if err != nil {
				stderr.Fatalf("failed to parse %q as a token id", field)
			}
			ids = append(ids, id)
		}
	}

	skipControl, _ := cmd.Flags().GetBool("skip-control")
	codec := NewCodec(loadVocab(conf))

	fmt.Println(codec.Decode(ids, skipControl))
}

// VocabCmd lists the loaded vocabulary with 'plasmid-space vocab'.
func VocabCmd(cmd *cobra.Command, args []string) {
	conf := config.New()
	vocab := loadVocab(conf)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "token\tid\tcategory\n")
	for _, token := range append(vocab.ControlTokens(), vocab.ConditionTokens()...) {
		id, _ := vocab.ID(token)
		fmt.Fprintf(w, "%s\t%d\t%s\n", token, id, Categorize(token))
	}
	w.Flush()
}
