package responseformat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Format is an output encoding.
type Format string

const (
	JSON    Format = "json"
	MsgPack Format = "msgpack"
)

// ParseFormat validates a format name. JSON is the default.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", JSON:
		return JSON, nil
	case MsgPack:
		return MsgPack, nil
	}
	return "", fmt.Errorf("unsupported output format %q", s)
}

// Formatter handles encoding data in JSON or MessagePack format
type Formatter struct {
	format Format
	indent bool
}

// NewFormatter creates a formatter for the given format. Indent only
// affects JSON.
func NewFormatter(format Format, indent bool) *Formatter {
	return &Formatter{format: format, indent: indent}
}

// ContentType returns the MIME type of the encoded output.
func (f *Formatter) ContentType() string {
	if f.format == MsgPack {
		return "application/x-msgpack"
	}
	return "application/json"
}

// Write encodes data to w
func (f *Formatter) Write(w io.Writer, data any) error {
	if f.format == MsgPack {
		return f.writeMsgPack(w, data)
	}
	return f.writeJSON(w, data)
}

func (f *Formatter) writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	if f.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}

func (f *Formatter) writeMsgPack(w io.Writer, data any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}
