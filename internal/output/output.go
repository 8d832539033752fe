// Package output renders API response bodies for the terminal.
package output

import (
	"bytes"
	"encoding/json"
	"io"
)

// Write prints body to w. JSON bodies are re-indented with two spaces and
// object keys sorted unless raw is set; anything that does not parse as JSON
// is written verbatim. A trailing newline is always emitted.
func Write(w io.Writer, body []byte, raw bool) error {
	if !raw {
		if pretty, ok := Pretty(body); ok {
			body = pretty
		}
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if len(body) == 0 || body[len(body)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// Pretty returns body re-encoded with sorted keys and two-space indentation.
// Numbers keep the text they had in body. ok is false when body is not a
// single JSON value.
func Pretty(body []byte) (out []byte, ok bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
