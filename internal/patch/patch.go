// Package patch applies JSON Patch shaped documents ({op, path, value, from})
// to request DTOs. Targets expose their patchable fields explicitly through a
// Fields table, so an operation is a plain field assignment.
package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
	OpMove    = "move"
	OpCopy    = "copy"
	OpTest    = "test"
)

var (
	ErrUnsupportedOp = errors.New("unsupported operation")
	ErrUnknownPath   = errors.New("unknown path")
	ErrMissingValue  = errors.New("value is required")
	ErrInvalidValue  = errors.New("invalid value")
	ErrTestFailed    = errors.New("test failed")
)

type Operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Document is an ordered list of operations.
type Document []Operation

// Field gives the patch engine access to one DTO field.
type Field struct {
	Get   func() any
	Set   func(raw json.RawMessage) error
	Reset func()
}

// Fields maps a JSON pointer (lower-cased, e.g. "/endereco/numero") to its field.
type Fields map[string]Field

type Target interface {
	PatchFields() Fields
}

// OperationError reports which operation of a document failed.
type OperationError struct {
	Index int
	Op    string
	Path  string
	Err   error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %d (%s %s): %v", e.Index, e.Op, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Decode reads a document from r. The body must be a JSON array.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode patch document: %w", err)
	}
	return doc, nil
}

// Apply runs every operation in order against t and stops at the first
// failure. t may be partially modified when an error is returned.
func (d Document) Apply(t Target) error {
	fields := t.PatchFields()
	for i, op := range d {
		if err := apply(fields, op); err != nil {
			return &OperationError{Index: i, Op: op.Op, Path: op.Path, Err: err}
		}
	}
	return nil
}

func apply(fields Fields, op Operation) error {
	target, ok := fields[normalize(op.Path)]
	if !ok {
		return ErrUnknownPath
	}

	switch strings.ToLower(op.Op) {
	case OpAdd, OpReplace:
		if len(op.Value) == 0 {
			return ErrMissingValue
		}
		return set(target, op.Value)

	case OpRemove:
		target.Reset()
		return nil

	case OpTest:
		if len(op.Value) == 0 {
			return ErrMissingValue
		}
		equal, err := equalJSON(target.Get(), op.Value)
		if err != nil {
			return err
		}
		if !equal {
			return ErrTestFailed
		}
		return nil

	case OpCopy, OpMove:
		source, ok := fields[normalize(op.From)]
		if !ok {
			return fmt.Errorf("from: %w", ErrUnknownPath)
		}
		raw, err := json.Marshal(source.Get())
		if err != nil {
			return err
		}
		if err := set(target, raw); err != nil {
			return err
		}
		if strings.EqualFold(op.Op, OpMove) && normalize(op.From) != normalize(op.Path) {
			source.Reset()
		}
		return nil

	default:
		return ErrUnsupportedOp
	}
}

func set(f Field, raw json.RawMessage) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		f.Reset()
		return nil
	}
	if err := f.Set(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return nil
}

func equalJSON(current any, raw json.RawMessage) (bool, error) {
	encoded, err := json.Marshal(current)
	if err != nil {
		return false, err
	}

	var left, right any
	if err := json.Unmarshal(encoded, &left); err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, &right); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return reflect.DeepEqual(left, right), nil
}

func normalize(path string) string {
	path = strings.ToLower(strings.TrimSpace(path))
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(path, "/")
}

// Value exposes a field of any JSON type. A set decodes into a fresh T, so
// a struct value replaces the whole struct and omitted members become zero.
func Value[T any](p *T) Field {
	return Field{
		Get: func() any { return *p },
		Set: func(raw json.RawMessage) error {
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*p = v
			return nil
		},
		Reset: func() {
			var zero T
			*p = zero
		},
	}
}

func String(p *string) Field {
	return Value(p)
}

func Int(p *int) Field {
	return Value(p)
}
