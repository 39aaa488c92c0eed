package spare

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter helps construct a JSON object with a specific field order,
// so that persisted lines stay diff-friendly under version control.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	w.WriteString(fmt.Sprintf("%q:", key))
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// Optional appends a key-value pair only if the provided value is not its
// type's zero value, omitting empty fields from the output.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON finalizes the JSON object construction, wraps the content in
// braces, and returns the complete JSON byte slice. It satisfies the
// `json.Marshaler` interface.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}
