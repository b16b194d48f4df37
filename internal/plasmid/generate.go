package plasmid

import (
	"context"
	"fmt"
	"strings"
)

// Generator is an external token-level generative model. Every
// nucleotide is a single token, so MaxLength caps the generated
// sequence length in bp. Inference happens outside this package; the
// call is a suspension point and takes a context.
type Generator interface {
	Generate(ctx context.Context, prompt []int, opts GenerateOpts) ([]int, error)
}

// GenerateOpts are the sampling settings forwarded to the generator.
type GenerateOpts struct {
	// MaxLength is the maximum number of new tokens (bp) to generate
	MaxLength int

	// Temperature softens the sampling distribution
	Temperature float64

	// TopK limits sampling to the k most likely tokens
	TopK int

	// TopP is the nucleus sampling cutoff
	TopP float64

	// RepetitionPenalty discourages repeated tokens
	RepetitionPenalty float64

	// NoRepeatNGram blocks exact n-gram repeats (helps avoid
	// homopolymer runs)
	NoRepeatNGram int
}

// DefaultGenerateOpts match the model card's recommended sampling.
func DefaultGenerateOpts() GenerateOpts {
	return GenerateOpts{
		MaxLength:         2048,
		Temperature:       0.85,
		TopK:              50,
		TopP:              0.95,
		RepetitionPenalty: 1.15,
		NoRepeatNGram:     15,
	}
}

// ExtractionError is returned when no usable DNA could be pulled out
// of the generator's raw output.
type ExtractionError struct {
	// Raw is an excerpt of the decoded generator output
	Raw string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not extract DNA sequence from output: %s", e.Raw)
}

// GenerateResult is everything produced by one generation request.
type GenerateResult struct {
	// Prompt is the condition token string the generator was framed with
	Prompt string `json:"prompt"`

	// Raw is the full decoded generator output
	Raw string `json:"raw"`

	// Sequence is the extracted and validated DNA
	Sequence string `json:"seq"`

	// Report is the analysis of Sequence
	Report *Report `json:"report"`
}

// Generate runs the full pipeline against an external generator:
// frame the condition tokens with <SEQ>, encode, generate, decode,
// extract the DNA between <SEQ> and <EOS>, validate it, and analyze
// the result. conditionText is a string of condition tokens, ex:
// "<HOST:ECOLI><RESISTANCE:AMP>".
func Generate(
	ctx context.Context,
	gen Generator,
	vocab *Vocab,
	conditionText string,
	opts GenerateOpts,
	minLength int,
	orfMinLength int,
) (*GenerateResult, error) {
	// <SEQ> marks where the DNA should start
	prompt := conditionText
	if !strings.Contains(prompt, SEQToken) {
		prompt += SEQToken
	}

	codec := NewCodec(vocab)
	ids := codec.Encode(prompt, true)

	out, err := gen.Generate(ctx, ids, opts)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	// keep control tokens, the framing below depends on them
	raw := codec.Decode(out, false)

	// the DNA lives between <SEQ> and <EOS>
	dnaPart := raw
	if _, after, found := strings.Cut(dnaPart, SEQToken); found {
		dnaPart = after
	}
	if before, _, found := strings.Cut(dnaPart, EOSToken); found {
		dnaPart = before
	}

	sequence := ExtractDNA(dnaPart, minLength)
	if sequence == "" {
		return nil, &ExtractionError{Raw: excerpt(raw, 500)}
	}

	report, err := Analyze(sequence, orfMinLength)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Prompt:   prompt,
		Raw:      raw,
		Sequence: sequence,
		Report:   report,
	}, nil
}

// excerpt truncates s for error messages.
func excerpt(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
