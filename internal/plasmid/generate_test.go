package plasmid

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator echoes its prompt followed by a canned continuation,
// the way the model continues the framed prompt.
type fakeGenerator struct {
	continuation string
	err          error

	gotPrompt []int
	gotOpts   GenerateOpts
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt []int, opts GenerateOpts) ([]int, error) {
	f.gotPrompt = prompt
	f.gotOpts = opts
	if f.err != nil {
		return nil, f.err
	}

	codec := NewCodec(DefaultVocab())
	return append(append([]int{}, prompt...), codec.Encode(f.continuation, false)...), nil
}

func TestGenerate(t *testing.T) {
	dna := strings.Repeat("ATGC", 30)
	gen := &fakeGenerator{continuation: dna + EOSToken}
	vocab := DefaultVocab()

	result, err := Generate(
		context.Background(),
		gen,
		vocab,
		"<HOST:ECOLI><RESISTANCE:AMP>",
		DefaultGenerateOpts(),
		100,
		DefaultORFMinLength,
	)
	require.NoError(t, err)

	// the prompt was framed with <SEQ> and led with <BOS>
	assert.Equal(t, "<HOST:ECOLI><RESISTANCE:AMP><SEQ>", result.Prompt)
	bos, _ := vocab.ID(BOSToken)
	require.NotEmpty(t, gen.gotPrompt)
	assert.Equal(t, bos, gen.gotPrompt[0])

	assert.Equal(t, dna, result.Sequence)
	require.NotNil(t, result.Report)
	assert.Equal(t, len(dna), result.Report.Length)
	assert.Equal(t, GCMedium, result.Report.GCCategory)

	// raw output keeps the full decoded stream
	assert.Contains(t, result.Raw, SEQToken)
	assert.Contains(t, result.Raw, EOSToken)
}

func TestGenerate_seqAlreadyFramed(t *testing.T) {
	gen := &fakeGenerator{continuation: strings.Repeat("GATC", 30)}

	result, err := Generate(
		context.Background(),
		gen,
		DefaultVocab(),
		"<COPY:HIGH><SEQ>",
		DefaultGenerateOpts(),
		100,
		DefaultORFMinLength,
	)
	require.NoError(t, err)
	assert.Equal(t, "<COPY:HIGH><SEQ>", result.Prompt)
}

func TestGenerate_opts(t *testing.T) {
	gen := &fakeGenerator{continuation: strings.Repeat("ATGC", 30)}

	opts := GenerateOpts{MaxLength: 512, Temperature: 0.7, TopK: 10}
	_, err := Generate(context.Background(), gen, DefaultVocab(), "<COPY:LOW>", opts, 100, DefaultORFMinLength)
	require.NoError(t, err)
	assert.Equal(t, opts, gen.gotOpts)
}

func TestGenerate_generatorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model not loaded")}

	_, err := Generate(context.Background(), gen, DefaultVocab(), "<COPY:LOW>", DefaultGenerateOpts(), 100, DefaultORFMinLength)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestGenerate_extractionFailure(t *testing.T) {
	// too little DNA after the frame
	gen := &fakeGenerator{continuation: "ATGC" + EOSToken}

	_, err := Generate(context.Background(), gen, DefaultVocab(), "<COPY:LOW>", DefaultGenerateOpts(), 100, DefaultORFMinLength)
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.NotEmpty(t, extErr.Raw)
}

func TestGenerate_validationFailure(t *testing.T) {
	// a run long enough to extract but over the plasmid maximum
	gen := &fakeGenerator{continuation: strings.Repeat("A", MaxSequenceLength+1) + EOSToken}

	_, err := Generate(context.Background(), gen, DefaultVocab(), "<COPY:LOW>", DefaultGenerateOpts(), 100, DefaultORFMinLength)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, TooLong, vErr.Code)
}
