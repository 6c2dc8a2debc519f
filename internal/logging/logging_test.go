package logging

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("json") != FormatJSON {
		t.Error("ParseFormat(json) should be FormatJSON")
	}
	if ParseFormat("text") != FormatText {
		t.Error("ParseFormat(text) should be FormatText")
	}
	if ParseFormat("") != FormatText {
		t.Error("ParseFormat default should be FormatText")
	}
}

func TestInitLogger(t *testing.T) {
	InitLogger(LevelDebug, FormatJSON)
	if GetLogger() == nil {
		t.Fatal("GetLogger() should not be nil after InitLogger")
	}

	// Helpers must not panic regardless of configuration.
	Debug("debug message", "k", "v")
	Info("info message")
	Warn("warn message")
	Error("error message")
	CorpusLoaded("test.tsv", 42, "abc123")
	ScanProgress(50_000, 426_590)
	SpecEvaluated("יהוה", 68, 41.0, 0.000071)

	InitLogger(LevelInfo, FormatText)
}
