package pattern

import (
	"testing"

	"github.com/tanakhlab/mesologia/core/errors"
	"github.com/tanakhlab/mesologia/core/hebrew"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		split      int
		wantSuffix string
		wantPrefix string
		wantErr    bool
	}{
		{
			name:       "tetragrammaton midpoint",
			target:     "יהוה",
			split:      0,
			wantSuffix: "יה",
			wantPrefix: "וה",
		},
		{
			name:       "explicit split",
			target:     "יהוה",
			split:      1,
			wantSuffix: "י",
			wantPrefix: "הוה",
		},
		{
			name:       "pointed target is normalized first",
			target:     "שָׁלוֹם",
			split:      2,
			wantSuffix: "של",
			wantPrefix: "ומ",
		},
		{
			name:    "split at end",
			target:  "יהוה",
			split:   4,
			wantErr: true,
		},
		{
			name:    "negative split",
			target:  "יהוה",
			split:   -1,
			wantErr: true,
		},
		{
			name:    "single letter target",
			target:  "ו",
			split:   0,
			wantErr: true,
		},
		{
			name:    "empty target",
			target:  "",
			split:   0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := New("", tt.target, tt.split, hebrew.Default())
			if tt.wantErr {
				if err == nil {
					t.Fatal("New() should fail")
				}
				if !errors.Is(err, errors.ErrInvalidConfig) {
					t.Errorf("New() error = %v, want ConfigError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if spec.Suffix != tt.wantSuffix || spec.Prefix != tt.wantPrefix {
				t.Errorf("New() = %q/%q, want %q/%q", spec.Suffix, spec.Prefix, tt.wantSuffix, tt.wantPrefix)
			}
			if spec.Suffix+spec.Prefix != spec.Target {
				t.Error("suffix + prefix must reconstitute the target")
			}
		})
	}
}

func TestNewFinalFormEquivalence(t *testing.T) {
	// Under default normalization the two spellings of shalom produce the
	// same spec; with KeepFinalForms they stay distinct.
	a, err := New("", "שלום", 2, hebrew.Default())
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("", "שלומ", 2, hebrew.Default())
	if err != nil {
		t.Fatal(err)
	}
	if a.Target != b.Target {
		t.Errorf("final-form variants should normalize to the same target: %q vs %q", a.Target, b.Target)
	}

	keep := hebrew.New(hebrew.Options{KeepFinalForms: true})
	c, err := New("", "שלום", 2, keep)
	if err != nil {
		t.Fatal(err)
	}
	if c.Target == a.Target {
		t.Error("KeepFinalForms should preserve the final mem in the target")
	}
}

func TestParts(t *testing.T) {
	spec, err := Parts("shalom", "של", "ום", hebrew.Default())
	if err != nil {
		t.Fatalf("Parts() error = %v", err)
	}
	if spec.Suffix != "של" || spec.Prefix != "ומ" {
		t.Errorf("Parts() = %q/%q", spec.Suffix, spec.Prefix)
	}
	if spec.ID() != "shalom" {
		t.Errorf("ID() = %q, want label", spec.ID())
	}

	if _, err := Parts("", "", "וה", hebrew.Default()); err == nil {
		t.Error("empty suffix should fail")
	}
	if _, err := Parts("", "יה", "", hebrew.Default()); err == nil {
		t.Error("empty prefix should fail")
	}
}

func TestParseExpr(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		wantSuffix string
		wantPrefix string
		wantErr    bool
	}{
		{
			name:       "bare target",
			expr:       "יהוה",
			wantSuffix: "יה",
			wantPrefix: "וה",
		},
		{
			name:       "split index",
			expr:       "יהוה@1",
			wantSuffix: "י",
			wantPrefix: "הוה",
		},
		{
			name:       "explicit parts",
			expr:       "יה+וה",
			wantSuffix: "יה",
			wantPrefix: "וה",
		},
		{
			name:    "split out of range",
			expr:    "יהוה@7",
			wantErr: true,
		},
		{
			name:    "empty expression",
			expr:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseExpr("", tt.expr, hebrew.Default())
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseExpr() should fail")
				}
				if !errors.Is(err, errors.ErrInvalidConfig) {
					t.Errorf("ParseExpr() error = %v, want ConfigError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseExpr() error = %v", err)
			}
			if spec.Suffix != tt.wantSuffix || spec.Prefix != tt.wantPrefix {
				t.Errorf("ParseExpr(%q) = %q/%q, want %q/%q",
					tt.expr, spec.Suffix, spec.Prefix, tt.wantSuffix, tt.wantPrefix)
			}
		})
	}
}

func TestSpecID(t *testing.T) {
	spec, err := New("", "יהוה", 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if spec.ID() != "יהוה" {
		t.Errorf("ID() without label should fall back to target, got %q", spec.ID())
	}
}
