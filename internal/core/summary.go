package core

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agenthands/schemagraph/internal/core/model"
	"github.com/fatih/color"
)

// Summary counts a structured document. Node, connection and schema counts
// cover successful topics only.
type Summary struct {
	Topics       int            `json:"topics"`
	Failed       int            `json:"failed"`
	Skipped      int            `json:"skipped,omitempty"`
	Nodes        int            `json:"nodes"`
	Connections  int            `json:"connections"`
	Warnings     int            `json:"warnings"`
	SchemaCounts map[string]int `json:"schema_counts"`
}

func Summarize(doc *model.StructuredDocument) Summary {
	s := Summary{Topics: doc.Len(), SchemaCounts: map[string]int{}}
	doc.Each(func(_ string, r model.TopicResult) {
		if r.Failed() {
			s.Failed++
			return
		}
		schema := r.SchemaType
		if schema == "" {
			schema = "unknown"
		}
		s.SchemaCounts[schema]++
		s.Nodes += len(r.Nodes)
		s.Connections += len(r.Connections)
		s.Warnings += len(r.Warnings)
	})
	return s
}

// Print writes the run summary for a terminal, schemas sorted by name.
func (s Summary) Print(w io.Writer) {
	rule := strings.Repeat("=", 60)
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w, rule)
	bold.Fprintln(w, "PROCESSING SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total topics processed: %d\n", s.Topics)
	if s.Failed > 0 {
		red.Fprintf(w, "Failed topics: %d\n", s.Failed)
	}
	if s.Skipped > 0 {
		yellow.Fprintf(w, "Skipped topics: %d\n", s.Skipped)
	}

	fmt.Fprintln(w, "\nSchema distribution:")
	names := make([]string, 0, len(s.SchemaCounts))
	for name := range s.SchemaCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  - %s: %d topics\n", name, s.SchemaCounts[name])
	}

	green.Fprintf(w, "\nTotal nodes extracted: %d\n", s.Nodes)
	green.Fprintf(w, "Total connections extracted: %d\n", s.Connections)
	if s.Warnings > 0 {
		yellow.Fprintf(w, "Validation warnings: %d\n", s.Warnings)
	}
	fmt.Fprintln(w, rule)
}
