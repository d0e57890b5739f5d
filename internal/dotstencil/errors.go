package dotstencil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ParseError describes malformed .stencil content with its location.
type ParseError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError locates err within data using the byte offset encoding/json reports.
func newParseError(name string, data []byte, err error) *ParseError {
	pe := &ParseError{FilePath: name, Message: err.Error(), Err: err}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		offset    int64 = -1
	)
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
		pe.Message = fmt.Sprintf("expected a JSON object, found %s", typeErr.Value)
	}
	if offset >= 0 {
		pe.Line, pe.Column = lineColumn(data, offset)
	}
	return pe
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	column = int(offset) - bytes.LastIndexByte(head, '\n')
	if column < 1 {
		column = 1
	}
	return line, column
}
