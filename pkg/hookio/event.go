package hookio

// EventKind discriminates the classified shape of a tool input.
type EventKind string

const (
	EventEdit   EventKind = "edit"
	EventWrite  EventKind = "write"
	EventBash   EventKind = "bash"
	EventSearch EventKind = "search"
	EventFetch  EventKind = "fetch"
	EventRead   EventKind = "read"
)

// ToolEvent is the tagged-union view of a tool input. Exactly the fields
// implied by Kind are populated.
type ToolEvent struct {
	Kind    EventKind
	Path    string // edit, write, read
	NewText string // edit
	Content string // write
	Command string // bash
	Query   string // search
	URL     string // fetch
	Prompt  string // fetch
}

// Classify inspects which fields are present and returns the corresponding
// event. The command key is checked before any path-based shape, matching
// the host's precedence for tools that carry both. Returns false when no
// known shape matches.
func Classify(in ToolInput) (ToolEvent, bool) {
	path := deref(in.FilePath)
	if path == "" {
		path = deref(in.NotebookPath)
	}

	switch {
	case in.Command != nil:
		return ToolEvent{Kind: EventBash, Command: *in.Command}, true

	case in.Query != nil:
		return ToolEvent{Kind: EventSearch, Query: *in.Query}, true

	case in.URL != nil:
		return ToolEvent{Kind: EventFetch, URL: *in.URL, Prompt: deref(in.Prompt)}, true

	case path != "" && (in.OldString != nil || in.NewString != nil):
		return ToolEvent{Kind: EventEdit, Path: path, NewText: deref(in.NewString)}, true

	case path != "" && in.Content != nil:
		return ToolEvent{Kind: EventWrite, Path: path, Content: *in.Content}, true

	case path != "":
		return ToolEvent{Kind: EventRead, Path: path}, true
	}

	return ToolEvent{}, false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
