package shell

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ParamTooLongError reports a parameter that outgrew MaxParamLength. The
// tokenizer abandons the rest of the physical line before returning it, so
// the next parse starts on fresh input. Param is the 0-based index of the
// offending parameter.
type ParamTooLongError struct {
	Param int
	Limit int
}

func (e *ParamTooLongError) Error() string {
	return fmt.Sprintf("Parameter %d exceeds maximum allowed characters: %d.", e.Param, e.Limit)
}

// parse tokenizes one line of input into whitespace-delimited parameters.
// The command word (parameter 0) is folded to lower case, arguments keep
// their case. Runs of spaces never produce empty parameters. Once MaxParams
// parameters are captured the rest of the line is consumed and dropped,
// which is not an error. A parameter longer than MaxParamLength aborts the
// line and returns *ParamTooLongError.
func (s *Shell) parse() ([]string, error) {
	params := make([]string, 0, MaxParams)
	var cur []rune
	for {
		r, _, err := s.in.ReadRune()
		if err != nil {
			// A final line without a trailing newline still counts.
			if err == io.EOF && len(cur) > 0 {
				params = append(params, string(cur))
			}
			if err == io.EOF && len(params) > 0 {
				return params, nil
			}
			return nil, err
		}
		if r == '\n' {
			if len(cur) > 0 {
				params = append(params, string(cur))
			}
			return params, nil
		}
		if r == ' ' {
			if len(cur) == 0 {
				continue
			}
			params = append(params, string(cur))
			cur = cur[:0]
			if len(params) == MaxParams {
				s.discardLine()
				return params, nil
			}
			continue
		}
		if len(params) == 0 {
			r = unicode.ToLower(r)
		}
		cur = append(cur, r)
		if len(cur) > MaxParamLength {
			s.discardLine()
			return nil, &ParamTooLongError{Param: len(params), Limit: MaxParamLength}
		}
	}
}

// discardLine consumes the remainder of the physical input line, newline
// included.
func (s *Shell) discardLine() {
	for {
		r, _, err := s.in.ReadRune()
		if err != nil || r == '\n' {
			return
		}
	}
}

// readToken reads the next whitespace-delimited token from the input,
// skipping leading whitespace, then discards the rest of its line. Used for
// interactive confirmations so stray input never leaks into the next prompt.
func (s *Shell) readToken() (string, error) {
	var b strings.Builder
	for {
		r, _, err := s.in.ReadRune()
		if err != nil {
			if b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			if b.Len() == 0 {
				continue
			}
			if r != '\n' {
				s.discardLine()
			}
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}
