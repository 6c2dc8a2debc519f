// Package corpusio reads ordered word streams from corpus files. Three
// source formats are supported: tab-separated text (optionally
// xz-compressed), OSIS XML, and SQLite databases. Providers return raw
// words in canonical text order; normalization happens in core/corpus.
package corpusio

import (
	"fmt"
	"strings"

	"github.com/tanakhlab/mesologia/core/corpus"
	"github.com/tanakhlab/mesologia/core/errors"
	"github.com/tanakhlab/mesologia/internal/logging"
)

// Format identifies a corpus source format.
type Format string

// Source format constants.
const (
	FormatTSV    Format = "tsv"
	FormatOSIS   Format = "osis"
	FormatSQLite Format = "sqlite"
)

// DetectFormat guesses the source format from a file path.
func DetectFormat(path string) (Format, error) {
	switch {
	case strings.HasSuffix(path, ".tsv"), strings.HasSuffix(path, ".tsv.xz"),
		strings.HasSuffix(path, ".txt"), strings.HasSuffix(path, ".txt.xz"):
		return FormatTSV, nil
	case strings.HasSuffix(path, ".xml"), strings.HasSuffix(path, ".osis"):
		return FormatOSIS, nil
	case strings.HasSuffix(path, ".db"), strings.HasSuffix(path, ".sqlite"),
		strings.HasSuffix(path, ".sqlite3"):
		return FormatSQLite, nil
	default:
		return "", errors.NewConfig("corpus path",
			fmt.Sprintf("cannot detect corpus format from %q", path))
	}
}

// Load reads raw words from path. An empty format string triggers
// extension-based detection.
func Load(path string, format Format) ([]corpus.RawWord, error) {
	if format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	var (
		words []corpus.RawWord
		err   error
	)
	switch format {
	case FormatTSV:
		words, err = ReadTSV(path)
	case FormatOSIS:
		words, err = ReadOSIS(path)
	case FormatSQLite:
		words, err = ReadSQLite(path)
	default:
		return nil, errors.NewConfig("corpus format", fmt.Sprintf("unknown format %q", format))
	}
	if err != nil {
		return nil, err
	}

	logging.Debug("corpus source read", "path", path, "format", string(format), "words", len(words))
	return words, nil
}
