package dailylog

import (
	"fmt"
	"strings"
)

// Entry kinds as they appear in the activity log. The slash in
// KindCreated is load-bearing: it keeps "created/updated" one token for
// line parsing.
const (
	KindEdited       = "edited"
	KindCreated      = "created/updated"
	KindRan          = "ran"
	KindRead         = "read"
	KindSearched     = "searched"
	KindFetched      = "fetched"
	KindSessionStart = "Session started"
	KindSessionEnd   = "Session ended"
)

// Entry is one immutable activity-log line.
type Entry struct {
	Time   string // HH:MM or HH:MM:SS
	Kind   string
	Path   string // relative path, when the entry concerns a file or URL
	Detail string // snippet, command, query — already truncated by the caller
}

// String renders the entry in its on-disk line format.
func (e Entry) String() string {
	switch e.Kind {
	case KindSessionStart, KindSessionEnd:
		return fmt.Sprintf("- `%s` - %s", e.Time, e.Kind)

	case KindSearched:
		return fmt.Sprintf("- `%s` - searched: %q", e.Time, e.Detail)

	case KindRan:
		return fmt.Sprintf("- `%s` - ran: `%s`", e.Time, e.Detail)

	default:
		line := fmt.Sprintf("- `%s` - %s: `%s`", e.Time, e.Kind, e.Path)
		if e.Detail != "" {
			line += " | " + e.Detail
		}
		return line
	}
}

// parseEntry reads one activity-log line. Returns false for lines that are
// not entries (section prose, blank lines, malformed input).
func parseEntry(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "- `") {
		return Entry{}, false
	}

	ts, rest, ok := strings.Cut(line[len("- `"):], "` - ")
	if !ok {
		return Entry{}, false
	}

	if rest == KindSessionStart || rest == KindSessionEnd {
		return Entry{Time: ts, Kind: rest}, true
	}

	kind, remainder, ok := strings.Cut(rest, ": ")
	if !ok {
		return Entry{}, false
	}

	e := Entry{Time: ts, Kind: kind}

	if strings.HasPrefix(remainder, "`") {
		inner, tail, ok := strings.Cut(remainder[1:], "`")
		if !ok {
			return Entry{}, false
		}
		if kind == KindRan {
			e.Detail = inner
		} else {
			e.Path = inner
		}
		if detail, found := strings.CutPrefix(strings.TrimSpace(tail), "|"); found {
			e.Detail = strings.TrimSpace(detail)
		}
		return e, true
	}

	// Unbackticked remainder: a quoted query or free text.
	e.Detail = strings.Trim(remainder, `"`)
	return e, true
}
