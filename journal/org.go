package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatRecordOrg renders a Record as an Org-mode block suitable for pasting
// into a trading journal.
func FormatRecordOrg(r Record) string {
	status := "ok"
	if r.Failed() {
		status = "rejected"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "** Calculation: %s (%s)\n", r.Kind, shortID(r.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", r.ID)
	fmt.Fprintf(&b, ":KIND: %s\n", r.Kind)
	fmt.Fprintf(&b, ":TIME: %s\n", r.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":INPUT: %s\n", r.Input)
	fmt.Fprintf(&b, ":STATUS: %s\n", status)
	b.WriteString(":END:\n")

	if r.Failed() {
		fmt.Fprintf(&b, "\n*** Error\n%s\n", r.Error)
		return b.String()
	}

	b.WriteString("\n*** Result\n#+begin_src json\n")
	b.WriteString(r.Result)
	if !strings.HasSuffix(r.Result, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("#+end_src\n")
	return b.String()
}

// FormatRecordsOrg renders multiple records separated by blank lines.
func FormatRecordsOrg(recs []Record) string {
	var b strings.Builder
	for i, r := range recs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatRecordOrg(r))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
