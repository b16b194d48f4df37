// Package plasmid is for generating and analyzing plasmid sequences
// via a token-level generative model. It holds the model's vocabulary,
// the token codec, sequence sanitization/validation, feature scanning,
// and sequence metrics.
package plasmid

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"regexp"
	"sort"
	"strings"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// control tokens that every vocabulary must carry. BOS/EOS frame the
// token stream, PAD fills batches, UNK stands in for unmapped input,
// and SEQ marks the start of the DNA portion of a generation prompt.
const (
	BOSToken = "<BOS>"
	EOSToken = "<EOS>"
	PADToken = "<PAD>"
	UNKToken = "<UNK>"
	SEQToken = "<SEQ>"
)

// Category is the shape-based class of a vocabulary token.
type Category int

const (
	// CategoryUnknown is anything that isn't one of the recognized shapes
	CategoryUnknown Category = iota

	// CategoryControl tokens frame the token stream, ex: <BOS>, <SEQ>
	CategoryControl

	// CategoryCondition tokens encode a desired property, ex: <HOST:ECOLI>
	CategoryCondition

	// CategoryNucleotide tokens are the four bases: A, C, G, T
	CategoryNucleotide
)

func (c Category) String() string {
	switch c {
	case CategoryControl:
		return "control"
	case CategoryCondition:
		return "condition"
	case CategoryNucleotide:
		return "nucleotide"
	}
	return "unknown"
}

var (
	// a condition token, ex: <RESISTANCE:AMP>
	conditionTokenRegex = regexp.MustCompile(`^<[A-Z_]+:[A-Z_]+>$`)

	// a control token, ex: <EOS>
	controlTokenRegex = regexp.MustCompile(`^<[A-Z]+>$`)
)

// ConfigError is a fatal startup error: the vocabulary passed to the
// app was malformed or incomplete and nothing downstream can run.
type ConfigError struct {
	Problem string
}

func (e *ConfigError) Error() string {
	return "vocab: " + e.Problem
}

// Vocab is the bijective token<->id mapping consumed by the codec.
// It's built once at startup and never mutated, so it's safe for
// concurrent reads without locking.
type Vocab struct {
	tokens map[string]int // token string to its id
	ids    map[int]string // id back to its token string
}

// Categorize returns the shape-based category of a token: bracketed
// with a separator is a condition, bracketed without one is a control,
// and a single base letter is a nucleotide.
func Categorize(token string) Category {
	switch {
	case conditionTokenRegex.MatchString(token):
		return CategoryCondition
	case controlTokenRegex.MatchString(token):
		return CategoryControl
	case len(token) == 1 && strings.ContainsAny(token, "ACGT"):
		return CategoryNucleotide
	}
	return CategoryUnknown
}

// NewVocab builds a Vocab from a token to id map. It fails with a
// ConfigError if a required control token or nucleotide is missing or
// if two tokens share an id.
func NewVocab(tokens map[string]int) (*Vocab, error) {
	for _, req := range []string{BOSToken, EOSToken, PADToken, UNKToken, SEQToken, "A", "C", "G", "T"} {
		if _, ok := tokens[req]; !ok {
			return nil, &ConfigError{Problem: fmt.Sprintf("missing required token %q", req)}
		}
	}

	ids := make(map[int]string, len(tokens))
	for token, id := range tokens {
		if id < 0 {
			return nil, &ConfigError{Problem: fmt.Sprintf("negative id %d for token %q", id, token)}
		}
		if other, seen := ids[id]; seen {
			return nil, &ConfigError{Problem: fmt.Sprintf("tokens %q and %q share id %d", other, token, id)}
		}
		ids[id] = token
	}

	copied := make(map[string]int, len(tokens))
	for token, id := range tokens {
		copied[token] = id
	}

	return &Vocab{tokens: copied, ids: ids}, nil
}

// LoadVocab builds a Vocab from the raw bytes of a vocab.json file:
// a single JSON object mapping token strings to integer ids. The
// bytes are expected to already be in hand, fetching them is the
// caller's job.
func LoadVocab(data []byte) (*Vocab, error) {
	var tokens map[string]int
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, &ConfigError{Problem: fmt.Sprintf("failed to parse vocab json: %v", err)}
	}
	return NewVocab(tokens)
}

// LoadVocabFile reads and builds a Vocab from a vocab.json path.
func LoadVocabFile(path string) (*Vocab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Problem: fmt.Sprintf("failed to read vocab file: %v", err)}
	}
	return LoadVocab(data)
}

// defaultTokens is the built-in 72 token vocabulary, used when no
// vocab.json is passed. Ids are assigned by position.
var defaultTokens = []string{
	BOSToken,
	PADToken,
	EOSToken,
	UNKToken,
	SEQToken,

	"<HOST:ECOLI>", "<HOST:YEAST>", "<HOST:BACILLUS>", "<HOST:MAMMALIAN>",
	"<COPY:LOW>", "<COPY:MEDIUM>", "<COPY:HIGH>",
	"<GC:LOW>", "<GC:MEDIUM>", "<GC:HIGH>",
	"<APPLICATION:EXPRESSION>", "<APPLICATION:CLONING>", "<APPLICATION:SHUTTLE>",
	"<RESISTANCE:AMP>", "<RESISTANCE:KAN>", "<RESISTANCE:CHLOR>", "<RESISTANCE:TET>", "<RESISTANCE:SPEC>",
	"<ORIGIN:PUC>", "<ORIGIN:COLE>", "<ORIGIN:PMB>", "<ORIGIN:PSC>", "<ORIGIN:PBR>", "<ORIGIN:PHAGE>", "<ORIGIN:BROAD_HOST>", "<ORIGIN:YEAST_TWO_MICRON>",
	"<PROMOTER:LAC>", "<PROMOTER:TAC>", "<PROMOTER:TRC>", "<PROMOTER:ARA>", "<PROMOTER:TET>", "<PROMOTER:PHAGE>",
	"<TERMINATOR:RRNB>", "<TERMINATOR:LAMBDA>",
	"<RBS:STRONG>", "<RBS:MEDIUM>", "<RBS:WEAK>",
	"<TAG:HIS>", "<TAG:FLAG>", "<TAG:MYC>", "<TAG:STREP>",
	"<REPORTER:GFP>", "<REPORTER:RFP>", "<REPORTER:LACZ>",
	"<CODON:ECOLI>", "<CODON:HUMAN>", "<CODON:YEAST>",
	"<INDUCTION:IPTG>", "<INDUCTION:ARABINOSE>", "<INDUCTION:TET>",
	"<TOPOLOGY:CIRCULAR>", "<TOPOLOGY:LINEAR>",
	"<LENGTH:SHORT>", "<LENGTH:MEDIUM>", "<LENGTH:LONG>",
	"<SELECTION:POSITIVE>", "<SELECTION:NEGATIVE>",
	"<CLONING:GOLDEN_GATE>", "<CLONING:GIBSON>", "<CLONING:RESTRICTION>",
	"<MARKER:LACZ>", "<MARKER:SACB>", "<MARKER:CCDB>",

	"A", "C", "G", "T",
}

// DefaultVocab returns the built-in vocabulary.
func DefaultVocab() *Vocab {
	tokens := make(map[string]int, len(defaultTokens))
	for i, token := range defaultTokens {
		tokens[token] = i
	}

	v, err := NewVocab(tokens)
	if err != nil {
		// the built-in table is fixed, this cannot happen
		stderr.Fatal(err)
	}
	return v
}

// Len returns the vocabulary size.
func (v *Vocab) Len() int {
	return len(v.tokens)
}

// ID returns the id of a token and whether the token is known.
func (v *Vocab) ID(token string) (int, bool) {
	id, ok := v.tokens[token]
	return id, ok
}

// Token returns the token string of an id and whether the id is known.
func (v *Vocab) Token(id int) (string, bool) {
	token, ok := v.ids[id]
	return token, ok
}

// ConditionTokens returns every condition token, ordered by id.
func (v *Vocab) ConditionTokens() []string {
	return v.tokensOf(CategoryCondition)
}

// ControlTokens returns every control token, ordered by id.
func (v *Vocab) ControlTokens() []string {
	return v.tokensOf(CategoryControl)
}

func (v *Vocab) tokensOf(cat Category) (tokens []string) {
	for token := range v.tokens {
		if Categorize(token) == cat {
			tokens = append(tokens, token)
		}
	}

	sort.Slice(tokens, func(i, j int) bool {
		return v.tokens[tokens[i]] < v.tokens[tokens[j]]
	})

	return tokens
}
