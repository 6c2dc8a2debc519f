package corpusio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/tanakhlab/mesologia/core/corpus"
	"github.com/tanakhlab/mesologia/core/errors"
)

// ReadTSV reads a tab-separated corpus file with columns
// book, chapter, verse, word number, text. Lines starting with '#' and
// blank lines are skipped. Files ending in .xz are decompressed
// transparently.
func ReadTSV(path string) ([]corpus.RawWord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open corpus")
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.Wrap(err, "xz reader")
		}
		reader = xzr
	}

	var words []corpus.RawWord
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			return nil, errors.NewData(path,
				fmt.Sprintf("line %d: want 5 tab-separated fields, got %d", lineNo, len(fields)))
		}

		chapter, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.NewData(path, fmt.Sprintf("line %d: bad chapter %q", lineNo, fields[1]))
		}
		verse, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.NewData(path, fmt.Sprintf("line %d: bad verse %q", lineNo, fields[2]))
		}
		wordNum, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, errors.NewData(path, fmt.Sprintf("line %d: bad word number %q", lineNo, fields[3]))
		}

		words = append(words, corpus.RawWord{
			Text: fields[4],
			Ref: corpus.Ref{
				Book:    fields[0],
				Chapter: chapter,
				Verse:   verse,
				Word:    wordNum,
			},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read corpus")
	}

	return words, nil
}
