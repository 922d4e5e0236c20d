package segment

import (
	"strings"
	"unicode"

	"github.com/agenthands/schemagraph/internal/core/model"
)

// VerifyCoverage checks that the topic transcripts, joined in key order,
// reproduce source exactly. It returns at most one warning.
func VerifyCoverage(source string, topics *model.Topics) []model.Warning {
	var sb strings.Builder
	topics.Each(func(_ string, t model.Topic) {
		sb.WriteString(t.Transcript)
	})
	joined := sb.String()

	if joined == source {
		return nil
	}
	if stripSpace(joined) == stripSpace(source) {
		return []model.Warning{model.Warnf(model.WarnCoverageWhitespaceOnly,
			"topics differ from the transcript only in whitespace (%d vs %d bytes)", len(joined), len(source))}
	}

	at := divergence(joined, source)
	return []model.Warning{model.Warnf(model.WarnCoverageMismatch,
		"topics diverge from the transcript at byte %d (%d vs %d bytes): %q",
		at, len(joined), len(source), excerpt(source, at))}
}

func divergence(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func excerpt(s string, at int) string {
	const width = 40
	if at >= len(s) {
		return ""
	}
	end := min(at+width, len(s))
	return s[at:end]
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
