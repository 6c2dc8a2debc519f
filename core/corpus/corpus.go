// Package corpus models an immutable, ordered snapshot of a Hebrew word
// stream. A Corpus is built once from provider-supplied raw words and is
// read-only afterwards; multiple pipeline runs may share one snapshot
// concurrently.
package corpus

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/tanakhlab/mesologia/core/errors"
	"github.com/tanakhlab/mesologia/core/hebrew"
)

// Genre classifies a book within the canonical division of the Tanakh.
type Genre string

// Genre constants.
const (
	GenreTorah    Genre = "TORAH"
	GenreProphets Genre = "PROPHETS"
	GenreWritings Genre = "WRITINGS"
	GenreUnknown  Genre = "UNKNOWN"
)

// Ref locates a word within the text.
type Ref struct {
	// Book is the book name as supplied by the corpus provider
	// (e.g., "Genesis", "Canticum").
	Book string `json:"book"`

	// Chapter is the 1-based chapter number.
	Chapter int `json:"chapter"`

	// Verse is the 1-based verse number.
	Verse int `json:"verse"`

	// Word is the 1-based position of the word within its verse.
	Word int `json:"word"`
}

// String formats the reference as "Book chapter:verse".
func (r Ref) String() string {
	if r.Book == "" {
		return "Unknown reference"
	}
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// RawWord is the provider-side input record: the word text exactly as it
// appears in the source, plus its location. Providers are responsible for
// tokenization and ordering fidelity; they do not normalize.
type RawWord struct {
	Text string
	Ref  Ref
}

// Token is one normalized word in the corpus. Tokens are created once
// during Build and never mutated.
type Token struct {
	// Text is the normalized consonantal form used for matching.
	Text string

	// Pointed is the original text as supplied by the provider.
	Pointed string

	// Ref is the word's location in the text.
	Ref Ref

	// Genre is the canonical division of the word's book.
	Genre Genre

	// Position is the 0-based global sequence position.
	Position int
}

// Corpus is an immutable ordered token snapshot.
type Corpus struct {
	tokens []Token
	books  []string
	hash   string
}

// Build normalizes raw words into a Corpus using the given normalizer.
// Returns a DataError if words is empty.
func Build(words []RawWord, n *hebrew.Normalizer) (*Corpus, error) {
	if len(words) == 0 {
		return nil, errors.NewData("", "zero tokens in corpus source")
	}
	if n == nil {
		n = hebrew.Default()
	}

	tokens := make([]Token, len(words))
	var books []string
	seen := make(map[string]bool)
	h := blake3.New()

	for i, w := range words {
		tokens[i] = Token{
			Text:     n.Normalize(w.Text),
			Pointed:  w.Text,
			Ref:      w.Ref,
			Genre:    ClassifyBook(w.Ref.Book),
			Position: i,
		}
		if !seen[w.Ref.Book] {
			seen[w.Ref.Book] = true
			books = append(books, w.Ref.Book)
		}
		// Snapshot hash covers the normalized text and location of every
		// token, so identical result records imply an identical corpus.
		fmt.Fprintf(h, "%s\x00%s\x00%d\x00%d\x00%d\n",
			tokens[i].Text, w.Ref.Book, w.Ref.Chapter, w.Ref.Verse, w.Ref.Word)
	}

	return &Corpus{
		tokens: tokens,
		books:  books,
		hash:   hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// Len returns the number of tokens.
func (c *Corpus) Len() int {
	return len(c.tokens)
}

// Token returns the token at position i.
func (c *Corpus) Token(i int) Token {
	return c.tokens[i]
}

// Tokens returns the underlying token sequence. Callers must treat the
// returned slice as read-only.
func (c *Corpus) Tokens() []Token {
	return c.tokens
}

// Hash returns the BLAKE3 hash identifying this snapshot.
func (c *Corpus) Hash() string {
	return c.hash
}

// Books returns the book names in first-appearance order.
func (c *Corpus) Books() []string {
	out := make([]string, len(c.books))
	copy(out, c.books)
	return out
}

// Book returns a sub-snapshot containing only the named book's tokens,
// repositioned as their own sequence. Returns a DataError if the book is
// not present.
func (c *Corpus) Book(name string) (*Corpus, error) {
	var tokens []Token
	for _, tok := range c.tokens {
		if tok.Ref.Book == name {
			tok.Position = len(tokens)
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return nil, errors.NewData(name, "book not found in corpus")
	}

	h := blake3.New()
	for _, tok := range tokens {
		fmt.Fprintf(h, "%s\x00%s\x00%d\x00%d\x00%d\n",
			tok.Text, tok.Ref.Book, tok.Ref.Chapter, tok.Ref.Verse, tok.Ref.Word)
	}

	return &Corpus{
		tokens: tokens,
		books:  []string{name},
		hash:   hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// bookGenres maps book names to canonical divisions. Both the BHSA Latin
// names and common English names are listed where they differ.
var bookGenres = map[string]Genre{
	// Torah
	"Genesis":       GenreTorah,
	"Exodus":        GenreTorah,
	"Leviticus":     GenreTorah,
	"Numeri":        GenreTorah,
	"Numbers":       GenreTorah,
	"Deuteronomium": GenreTorah,
	"Deuteronomy":   GenreTorah,

	// Prophets
	"Josua":      GenreProphets,
	"Joshua":     GenreProphets,
	"Judices":    GenreProphets,
	"Judges":     GenreProphets,
	"Samuel_I":   GenreProphets,
	"Samuel_II":  GenreProphets,
	"1Samuel":    GenreProphets,
	"2Samuel":    GenreProphets,
	"Reges_I":    GenreProphets,
	"Reges_II":   GenreProphets,
	"1Kings":     GenreProphets,
	"2Kings":     GenreProphets,
	"Jesaia":     GenreProphets,
	"Isaiah":     GenreProphets,
	"Jeremia":    GenreProphets,
	"Jeremiah":   GenreProphets,
	"Ezechiel":   GenreProphets,
	"Ezekiel":    GenreProphets,
	"Hosea":      GenreProphets,
	"Joel":       GenreProphets,
	"Amos":       GenreProphets,
	"Obadia":     GenreProphets,
	"Obadiah":    GenreProphets,
	"Jona":       GenreProphets,
	"Jonah":      GenreProphets,
	"Micha":      GenreProphets,
	"Micah":      GenreProphets,
	"Nahum":      GenreProphets,
	"Habakuk":    GenreProphets,
	"Habakkuk":   GenreProphets,
	"Zephania":   GenreProphets,
	"Zephaniah":  GenreProphets,
	"Haggai":     GenreProphets,
	"Sacharia":   GenreProphets,
	"Zechariah":  GenreProphets,
	"Maleachi":   GenreProphets,
	"Malachi":    GenreProphets,

	// Writings
	"Psalmi":       GenreWritings,
	"Psalms":       GenreWritings,
	"Iob":          GenreWritings,
	"Job":          GenreWritings,
	"Proverbia":    GenreWritings,
	"Proverbs":     GenreWritings,
	"Ruth":         GenreWritings,
	"Canticum":     GenreWritings,
	"SongOfSongs":  GenreWritings,
	"Ecclesiastes": GenreWritings,
	"Threni":       GenreWritings,
	"Lamentations": GenreWritings,
	"Esther":       GenreWritings,
	"Daniel":       GenreWritings,
	"Esra":         GenreWritings,
	"Ezra":         GenreWritings,
	"Nehemia":      GenreWritings,
	"Nehemiah":     GenreWritings,
	"Chronica_I":   GenreWritings,
	"Chronica_II":  GenreWritings,
	"1Chronicles":  GenreWritings,
	"2Chronicles":  GenreWritings,
}

// ClassifyBook returns the canonical division for a book name, or
// GenreUnknown for names not in the canon table.
func ClassifyBook(name string) Genre {
	if g, ok := bookGenres[name]; ok {
		return g
	}
	return GenreUnknown
}
