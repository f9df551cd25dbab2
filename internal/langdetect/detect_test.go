package langdetect_test

import (
	"testing"

	"github.com/Hellga-Olga/MyBubble/internal/langdetect"
	"github.com/pemistahl/lingua-go"
)

func TestDetector(t *testing.T) {
	detector := langdetect.New(lingua.English, lingua.Russian)

	t.Run("detects plain english", func(t *testing.T) {
		tag := detector.Detect("The quick brown fox jumps over the lazy dog")
		if tag != "en" {
			t.Errorf("tag = %q, want en", tag)
		}
	})

	t.Run("detects russian", func(t *testing.T) {
		tag := detector.Detect("Этот пост написан на русском языке")
		if tag != "ru" {
			t.Errorf("tag = %q, want ru", tag)
		}
	})

	t.Run("empty text yields empty tag", func(t *testing.T) {
		if tag := detector.Detect(""); tag != "" {
			t.Errorf("tag = %q, want empty", tag)
		}
		if tag := detector.Detect("   "); tag != "" {
			t.Errorf("whitespace tag = %q, want empty", tag)
		}
	})
}
