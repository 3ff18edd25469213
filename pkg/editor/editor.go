// Package editor implements direct reviewer intervention on the enriched
// document: the single-slot editing cursor with type-preserving coercion,
// and structural field removal. Both produce fresh document snapshots; the
// caller must re-diff before the next merge.
package editor

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/errors"
)

// Editor holds at most one active edit. It is ephemeral session state:
// it is not persisted and is discarded when a fresh document pair loads.
type Editor struct {
	cursor *cursor
}

type cursor struct {
	path   document.Path
	before document.Value
	input  string
}

// New creates an editor with no active edit.
func New() *Editor {
	return &Editor{}
}

// Start begins editing the value at path. Any prior edit is silently
// replaced. The current value seeds both the coercion type and the
// initial input text.
func (e *Editor) Start(path document.Path, current document.Value) {
	e.cursor = &cursor{
		path:   path,
		before: current,
		input:  initialInput(current),
	}
}

// Update replaces the edit's input text.
func (e *Editor) Update(text string) {
	if e.cursor == nil {
		return
	}
	e.cursor.input = text
}

// Active reports whether an edit is in progress.
func (e *Editor) Active() bool {
	return e.cursor != nil
}

// Path returns the path of the active edit.
func (e *Editor) Path() (document.Path, bool) {
	if e.cursor == nil {
		return nil, false
	}
	return e.cursor.path, true
}

// Input returns the current input text of the active edit.
func (e *Editor) Input() (string, bool) {
	if e.cursor == nil {
		return "", false
	}
	return e.cursor.input, true
}

// Commit coerces the input text against the pre-edit value's type, writes
// it into doc at the edit's path, and clears the cursor. Missing
// intermediate object containers are created. The returned snapshot must
// be re-diffed before the next merge.
func (e *Editor) Commit(doc document.Value) (document.Value, error) {
	if e.cursor == nil {
		return doc, errors.ErrNoActiveEdit
	}
	value := Coerce(e.cursor.before, e.cursor.input)
	out := document.SetAt(doc, e.cursor.path, value)
	e.cursor = nil
	return out, nil
}

// Cancel discards the active edit, if any.
func (e *Editor) Cancel() {
	e.cursor = nil
}

// Coerce converts edited input text based on the pre-edit value's type.
// Parse failures never block a commit; they fall back to the raw string.
func Coerce(before document.Value, text string) document.Value {
	switch before.Kind() {
	case document.KindNumber:
		trimmed := strings.TrimSpace(text)
		if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return document.Number(json.Number(trimmed))
		}
		return document.String(text)

	case document.KindBool:
		switch strings.ToLower(strings.TrimSpace(text)) {
		case "true":
			return document.Bool(true)
		case "false":
			return document.Bool(false)
		}
		return document.String(text)

	case document.KindNull:
		if strings.EqualFold(strings.TrimSpace(text), "null") {
			return document.Null()
		}
		return document.String(text)

	default:
		return document.String(text)
	}
}

// Remove deletes the key or array element at path from doc, returning a new
// snapshot. An unresolvable parent or an unparseable array index makes the
// removal a silent no-op. The caller must re-diff afterward.
func Remove(doc document.Value, path document.Path) document.Value {
	return document.RemoveAt(doc, path)
}

// initialInput renders the current value as edit text, mirroring how the
// committed value will be coerced back.
func initialInput(v document.Value) string {
	switch v.Kind() {
	case document.KindString:
		return v.StringValue()
	case document.KindNumber:
		return v.NumberValue().String()
	case document.KindBool:
		return strconv.FormatBool(v.BoolValue())
	case document.KindNull:
		return "null"
	default:
		return v.JSON()
	}
}
