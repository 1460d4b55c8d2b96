// Package codec converts values to and from structural text (JSON or YAML).
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"
)

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("malformed input")

// ParseError reports text which could not be decoded.
type ParseError struct {
	Format Format
	Offset int64 // byte offset of the problem when known, -1 otherwise
	Line   int   // line of the problem when known, 0 otherwise
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s: %v at line %d: %v", e.Format, ErrParse, e.Line, e.Err)
	case e.Offset >= 0:
		return fmt.Sprintf("%s: %v at offset %d: %v", e.Format, ErrParse, e.Offset, e.Err)
	default:
		return fmt.Sprintf("%s: %v: %v", e.Format, ErrParse, e.Err)
	}
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Serialize returns JSON text of v. Key order follows the encoder: struct
// field order for structs, sorted keys for maps.
func Serialize(v any) (string, error) {
	data, err := Encode(FormatJson, v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Deserialize parses JSON text into a new T. Unknown fields are rejected.
func Deserialize[T any](text string) (T, error) {
	return Decode[T](FormatJson, []byte(text))
}

// DeserializeWith parses JSON text into plain record R and passes it to
// attach, which produces the final value. Use it when T must be built by a
// constructor rather than filled field by field.
func DeserializeWith[R, T any](text string, attach func(R) (T, error)) (T, error) {
	rec, err := Deserialize[R](text)
	if err != nil {
		var zero T
		return zero, err
	}
	return attach(rec)
}

// Encode returns text representation of v in format f.
func Encode(f Format, v any) ([]byte, error) {
	switch f {
	case FormatJson:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("unable to encode json: %w", err)
		}
		return data, nil
	case FormatYaml:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("unable to encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%s is %w", f, ErrInvalidFormat)
	}
}

// Decode parses data in format f into a new T. Unknown fields and trailing
// data are rejected.
func Decode[T any](f Format, data []byte) (T, error) {
	var v T
	switch f {
	case FormatJson:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&v); err != nil {
			return v, jsonError(err)
		}
		// only whitespace may follow the value, stray closing brackets included
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			pe := &ParseError{Format: f, Offset: dec.InputOffset(), Err: errors.New("unexpected data after value")}
			if err != nil {
				pe = jsonError(err)
			}
			return v, pe
		}
	case FormatYaml:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return v, &ParseError{Format: f, Offset: -1, Err: errors.New("empty document")}
			}
			return v, yamlError(err)
		}
		// input must hold exactly one document
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			if err != nil {
				return v, yamlError(err)
			}
			return v, &ParseError{Format: f, Offset: -1, Line: extra.Line, Err: errors.New("unexpected document after value")}
		}
	default:
		return v, fmt.Errorf("%s is %w", f, ErrInvalidFormat)
	}
	return v, nil
}

func jsonError(err error) *ParseError {
	pe := &ParseError{Format: FormatJson, Offset: -1, Err: err}
	var (
		se *json.SyntaxError
		te *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &se):
		pe.Offset = se.Offset
	case errors.As(err, &te):
		pe.Offset = te.Offset
	case errors.Is(err, io.EOF):
		pe.Err = errors.New("empty document")
	}
	return pe
}

func yamlError(err error) *ParseError {
	pe := &ParseError{Format: FormatYaml, Offset: -1, Err: err}
	var te *yaml.TypeError
	if errors.As(err, &te) && len(te.Errors) > 0 {
		pe.Err = errors.New(te.Errors[0])
	}
	return pe
}
