package corpusio

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/tanakhlab/mesologia/core/corpus"
	"github.com/tanakhlab/mesologia/core/errors"
)

// ReadOSIS reads an OSIS XML corpus. Verses are located by their osisID
// ("Gen.1.1"); word order inside a verse follows the document's <w>
// elements when present, otherwise the verse text split on whitespace.
func ReadOSIS(path string) ([]corpus.RawWord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open corpus")
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, &errors.DataError{Source: path, Message: "malformed OSIS XML", Err: err}
	}

	verses, err := xmlquery.QueryAll(doc, "//verse[@osisID]")
	if err != nil {
		return nil, errors.Wrap(err, "query verses")
	}

	var words []corpus.RawWord
	for _, verse := range verses {
		ref, err := parseOsisID(verse.SelectAttr("osisID"))
		if err != nil {
			return nil, &errors.DataError{Source: path, Message: err.Error()}
		}

		for i, text := range verseWords(verse) {
			ref.Word = i + 1
			words = append(words, corpus.RawWord{Text: text, Ref: ref})
		}
	}

	return words, nil
}

// verseWords extracts the ordered word texts of a verse element.
func verseWords(verse *xmlquery.Node) []string {
	wordNodes, err := xmlquery.QueryAll(verse, ".//w")
	if err == nil && len(wordNodes) > 0 {
		out := make([]string, 0, len(wordNodes))
		for _, w := range wordNodes {
			if text := strings.TrimSpace(w.InnerText()); text != "" {
				out = append(out, text)
			}
		}
		return out
	}
	return strings.Fields(verse.InnerText())
}

// parseOsisID splits an osisID like "Gen.1.1" into a Ref.
func parseOsisID(id string) (corpus.Ref, error) {
	parts := strings.Split(id, ".")
	if len(parts) != 3 {
		return corpus.Ref{}, fmt.Errorf("bad osisID %q", id)
	}
	chapter, err := strconv.Atoi(parts[1])
	if err != nil {
		return corpus.Ref{}, fmt.Errorf("bad chapter in osisID %q", id)
	}
	verse, err := strconv.Atoi(parts[2])
	if err != nil {
		return corpus.Ref{}, fmt.Errorf("bad verse in osisID %q", id)
	}
	return corpus.Ref{Book: parts[0], Chapter: chapter, Verse: verse}, nil
}
