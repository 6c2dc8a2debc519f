package scan

import (
	"reflect"
	"testing"

	"github.com/tanakhlab/mesologia/core/corpus"
	"github.com/tanakhlab/mesologia/core/errors"
	"github.com/tanakhlab/mesologia/core/hebrew"
	"github.com/tanakhlab/mesologia/core/pattern"
)

func buildCorpus(t *testing.T, book string, words ...string) *corpus.Corpus {
	t.Helper()
	raw := make([]corpus.RawWord, len(words))
	for i, w := range words {
		raw[i] = corpus.RawWord{
			Text: w,
			Ref:  corpus.Ref{Book: book, Chapter: 1, Verse: i + 1, Word: 1},
		}
	}
	c, err := corpus.Build(raw, hebrew.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return c
}

func mustSpec(t *testing.T, expr string) pattern.Spec {
	t.Helper()
	spec, err := pattern.ParseExpr("", expr, hebrew.Default())
	if err != nil {
		t.Fatalf("ParseExpr(%q) error = %v", expr, err)
	}
	return spec
}

func TestScanAdjacentPair(t *testing.T) {
	c := buildCorpus(t, "Genesis", "הללו", "יה", "והארץ", "היתה")
	spec := mustSpec(t, "יה+וה")

	instances, err := Scan(c, spec, Options{Quiet: true})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(instances) != 1 {
		t.Fatalf("Scan() found %d instances, want 1", len(instances))
	}

	inst := instances[0]
	if inst.Left != 1 {
		t.Errorf("Left = %d, want 1", inst.Left)
	}
	if !reflect.DeepEqual(inst.Right, []int{2}) {
		t.Errorf("Right = %v, want [2]", inst.Right)
	}
	if inst.Suffix != "יה" || inst.Prefix != "וה" {
		t.Errorf("matched %q/%q", inst.Suffix, inst.Prefix)
	}
	if inst.Ref.Book != "Genesis" || inst.Ref.Verse != 2 {
		t.Errorf("Ref = %v", inst.Ref)
	}
	if inst.Genre != corpus.GenreTorah {
		t.Errorf("Genre = %q", inst.Genre)
	}
}

func TestScanBoundaryExactness(t *testing.T) {
	// A token ending in the suffix followed by a token not beginning with
	// the prefix yields nothing for that boundary.
	c := buildCorpus(t, "Genesis", "אריה", "לא", "דבר")
	spec := mustSpec(t, "יה+וה")

	instances, err := Scan(c, spec, Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(instances) != 0 {
		t.Errorf("Scan() found %d instances, want 0", len(instances))
	}
}

func TestScanMultiWordPrefix(t *testing.T) {
	// The prefix וה spans words 2-3: word 2 is the single letter ו, word 3
	// supplies the ה.
	c := buildCorpus(t, "Genesis", "אריה", "ו", "הארץ")
	spec := mustSpec(t, "יה+וה")

	instances, err := Scan(c, spec, Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(instances) != 1 {
		t.Fatalf("Scan() found %d instances, want exactly 1", len(instances))
	}
	if !reflect.DeepEqual(instances[0].Right, []int{1, 2}) {
		t.Errorf("Right = %v, want [1 2]", instances[0].Right)
	}
}

func TestScanMultiWordPrefixIncomplete(t *testing.T) {
	// The corpus ends before the prefix is fully consumed.
	c := buildCorpus(t, "Genesis", "אריה", "ו")
	spec := mustSpec(t, "יה+וה")

	instances, err := Scan(c, spec, Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(instances) != 0 {
		t.Errorf("Scan() found %d instances, want 0", len(instances))
	}
}

func TestScanBackToBackBoundaries(t *testing.T) {
	// Consecutive qualifying boundaries are independent events; no
	// suppression, so the middle token participates in both.
	c := buildCorpus(t, "Genesis", "בא", "בא", "בא")
	spec := mustSpec(t, "א+ב")

	instances, err := Scan(c, spec, Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(instances) != 2 {
		t.Fatalf("Scan() found %d instances, want 2", len(instances))
	}
	if instances[0].Left != 0 || instances[1].Left != 1 {
		t.Errorf("Left positions = %d, %d", instances[0].Left, instances[1].Left)
	}
}

func TestScanDeterminism(t *testing.T) {
	c := buildCorpus(t, "Psalmi", "הללו", "יה", "והללו", "יה", "וזמרו")
	spec := mustSpec(t, "יה+ו")

	first, err := Scan(c, spec, Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Scan(c, spec, Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated scans over identical input should yield identical instances")
	}
}

func TestScanContextWindow(t *testing.T) {
	c := buildCorpus(t, "Genesis", "א", "ב", "ג", "יה", "וה", "ד", "ה", "ו")
	spec := mustSpec(t, "יה+וה")

	instances, err := Scan(c, spec, Options{ContextWindow: 2, Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(instances) != 1 {
		t.Fatalf("found %d instances", len(instances))
	}
	want := "ב ג יה וה ד ה"
	if instances[0].Context != want {
		t.Errorf("Context = %q, want %q", instances[0].Context, want)
	}
}

func TestScanInvalidSpec(t *testing.T) {
	c := buildCorpus(t, "Genesis", "א", "ב")
	_, err := Scan(c, pattern.Spec{Suffix: "יה"}, Options{Quiet: true})
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Scan() with empty prefix: error = %v, want ConfigError", err)
	}
}

func TestSummarizeByBook(t *testing.T) {
	instances := []Instance{
		{Ref: corpus.Ref{Book: "Genesis"}},
		{Ref: corpus.Ref{Book: "Psalmi"}},
		{Ref: corpus.Ref{Book: "Genesis"}},
	}

	summary := SummarizeByBook(instances)
	if summary["Genesis"] != 2 || summary["Psalmi"] != 1 {
		t.Errorf("SummarizeByBook() = %v", summary)
	}

	order := BooksInOrder(summary)
	if !reflect.DeepEqual(order, []string{"Genesis", "Psalmi"}) {
		t.Errorf("BooksInOrder() = %v", order)
	}
}

func TestFilters(t *testing.T) {
	instances := []Instance{
		{Ref: corpus.Ref{Book: "Genesis"}, Genre: corpus.GenreTorah},
		{Ref: corpus.Ref{Book: "Canticum"}, Genre: corpus.GenreWritings},
	}

	if got := FilterBook(instances, "Canticum"); len(got) != 1 {
		t.Errorf("FilterBook() returned %d instances", len(got))
	}
	if got := FilterGenre(instances, corpus.GenreTorah); len(got) != 1 {
		t.Errorf("FilterGenre() returned %d instances", len(got))
	}
}
