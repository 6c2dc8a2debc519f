package corpusio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tanakhlab/mesologia/core/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "control_words.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadControlWords(t *testing.T) {
	path := writeCSV(t, `label,word,split
shalom,שלום,2
zion,ציון,
torah,תורה
`)

	controls, err := ReadControlWords(path)
	if err != nil {
		t.Fatalf("ReadControlWords() error = %v", err)
	}
	if len(controls) != 3 {
		t.Fatalf("got %d controls, want 3", len(controls))
	}

	if controls[0].Label != "shalom" || controls[0].Word != "שלום" || controls[0].Split != 2 {
		t.Errorf("controls[0] = %+v", controls[0])
	}
	if controls[1].Split != 0 {
		t.Errorf("empty split column should mean midpoint, got %d", controls[1].Split)
	}
	if controls[2].Label != "torah" || controls[2].Split != 0 {
		t.Errorf("controls[2] = %+v", controls[2])
	}
}

func TestReadControlWordsNoHeader(t *testing.T) {
	path := writeCSV(t, "shalom,שלומ\n")
	controls, err := ReadControlWords(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(controls) != 1 || controls[0].Word != "שלומ" {
		t.Errorf("controls = %+v", controls)
	}
}

func TestReadControlWordsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"too few columns", "justlabel\n"},
		{"empty word", "shalom,\n"},
		{"bad split", "shalom,שלום,two\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.content)
			if _, err := ReadControlWords(path); !errors.Is(err, errors.ErrEmptyCorpus) {
				t.Errorf("ReadControlWords() error = %v, want DataError", err)
			}
		})
	}
}
