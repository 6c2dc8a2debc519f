package corpusio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tanakhlab/mesologia/core/errors"
)

// ControlWord is one row of a control-word CSV: a labelled comparison
// target with an optional explicit split index.
type ControlWord struct {
	Label string
	Word  string
	Split int // 0 means midpoint split
}

// ReadControlWords reads a control-word CSV with columns
// label, word[, split]. A header row whose first field is "label" is
// skipped.
func ReadControlWords(path string) ([]ControlWord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open control words")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // 2 or 3 columns per row
	r.TrimLeadingSpace = true

	var controls []ControlWord
	lineNo := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.DataError{Source: path, Message: "malformed CSV", Err: err}
		}
		lineNo++

		if lineNo == 1 && strings.EqualFold(record[0], "label") {
			continue
		}
		if len(record) < 2 || len(record) > 3 {
			return nil, errors.NewData(path,
				fmt.Sprintf("row %d: want 2 or 3 columns, got %d", lineNo, len(record)))
		}

		cw := ControlWord{
			Label: strings.TrimSpace(record[0]),
			Word:  strings.TrimSpace(record[1]),
		}
		if cw.Word == "" {
			return nil, errors.NewData(path, fmt.Sprintf("row %d: empty word", lineNo))
		}
		if len(record) == 3 && strings.TrimSpace(record[2]) != "" {
			split, err := strconv.Atoi(strings.TrimSpace(record[2]))
			if err != nil {
				return nil, errors.NewData(path,
					fmt.Sprintf("row %d: bad split index %q", lineNo, record[2]))
			}
			cw.Split = split
		}

		controls = append(controls, cw)
	}

	return controls, nil
}
