// Package hookio handles the wire contract between the host runtime and
// recall hooks: a JSON event payload arrives on stdin (or as a single
// command-line argument, depending on the event type), and hooks answer
// with a JSON object on stdout.
package hookio

import (
	"encoding/json"
	"fmt"
	"io"
)

// Payload is the envelope the host runtime delivers for each hook event.
// Only the fields recall consumes are modeled; everything else is ignored.
type Payload struct {
	ToolName  string    `json:"tool_name"`
	ToolInput ToolInput `json:"tool_input"`
	SessionID string    `json:"session_id"`
}

// ToolInput carries the tool-specific fields. The host does not tag the
// shape, so all fields are pointers: presence drives classification.
type ToolInput struct {
	FilePath     *string `json:"file_path"`
	NotebookPath *string `json:"notebook_path"`
	OldString    *string `json:"old_string"`
	NewString    *string `json:"new_string"`
	Content      *string `json:"content"`
	Command      *string `json:"command"`
	Query        *string `json:"query"`
	URL          *string `json:"url"`
	Prompt       *string `json:"prompt"`
}

// Decode reads one payload. The argv form takes precedence when present
// (some host events pass the tool input as a single argument instead of
// stdin). Malformed input yields an empty payload, never an error: hooks
// treat it as nothing to do.
func Decode(stdin io.Reader, args []string) Payload {
	if len(args) > 0 && args[0] != "" {
		var in ToolInput
		if err := json.Unmarshal([]byte(args[0]), &in); err == nil {
			return Payload{ToolInput: in}
		}
		return Payload{}
	}

	data, err := io.ReadAll(io.LimitReader(stdin, 10*1024*1024))
	if err != nil {
		return Payload{}
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}
	}
	return p
}

// Response is what a hook prints back to the host. An empty Response
// renders as {} and means no action.
type Response struct {
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// Respond writes the response JSON to w. stdout must carry nothing else.
func Respond(w io.Writer, r Response) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling hook response: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("writing hook response: %w", err)
	}
	return nil
}
