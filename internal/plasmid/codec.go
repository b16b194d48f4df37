package plasmid

import (
	"regexp"
	"strings"
)

// bracketedTokenRegex matches the bracketed tokens that encode as a
// single id: condition tokens like <HOST:ECOLI> and control tokens
// like <EOS>. Matching is non-overlapping and leftmost-first.
var bracketedTokenRegex = regexp.MustCompile(`<[A-Z_]+:[A-Z_]+>|<[A-Z]+>`)

// Codec encodes text to token ids and decodes ids back to text using
// a loaded vocabulary.
type Codec struct {
	vocab *Vocab
}

// NewCodec returns a codec over the passed vocabulary.
func NewCodec(vocab *Vocab) *Codec {
	return &Codec{vocab: vocab}
}

// Encode converts text to token ids. Bracketed condition/control
// tokens become a single id each; every other character becomes its
// own id, or the <UNK> id if the character isn't in the vocabulary.
// If addBOS is set a <BOS> id is prepended.
func (c *Codec) Encode(text string, addBOS bool) []int {
	ids := []int{}

	if addBOS {
		ids = append(ids, c.id(BOSToken))
	}

	pos := 0
	for _, loc := range bracketedTokenRegex.FindAllStringIndex(text, -1) {
		for _, char := range text[pos:loc[0]] {
			ids = append(ids, c.id(string(char)))
		}
		ids = append(ids, c.id(text[loc[0]:loc[1]]))
		pos = loc[1]
	}

	// trailing characters after the last bracketed token
	for _, char := range text[pos:] {
		ids = append(ids, c.id(string(char)))
	}

	return ids
}

// Decode converts token ids back to text. Ids missing from the
// vocabulary never fail, they render as <UNK>. If skipControl is set,
// the framing tokens <BOS>, <EOS>, <PAD> and <UNK> are dropped while
// condition tokens are kept: downstream sanitization strips those
// itself, explicitly.
func (c *Codec) Decode(ids []int, skipControl bool) string {
	var text strings.Builder

	for _, id := range ids {
		token, known := c.vocab.Token(id)
		if !known {
			token = UNKToken
		}

		if skipControl {
			switch token {
			case BOSToken, EOSToken, PADToken, UNKToken:
				continue
			}
		}

		text.WriteString(token)
	}

	return text.String()
}

// id maps a token to its id, falling back to the <UNK> id.
func (c *Codec) id(token string) int {
	if id, ok := c.vocab.ID(token); ok {
		return id
	}
	unk, _ := c.vocab.ID(UNKToken)
	return unk
}
