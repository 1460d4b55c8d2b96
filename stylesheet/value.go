package stylesheet

import (
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Value is a declaration value classified by its CSS tokens.
type Value struct {
	Raw     string  // value text with whitespace collapsed, e.g. "1.2em", "0 auto"
	Value   float64 // number of a single numeric token
	Unit    string  // lower-case unit of a dimension, "%" for percentages
	Keyword string  // ident (lower-case), unquoted string, hash or raw text of multi-token values

	numeric bool
	tokens  []string // non-whitespace token text, compared for multi-token values
}

// IsNumeric reports whether value is a single number, dimension or percentage.
func (v Value) IsNumeric() bool {
	return v.numeric
}

// IsKeyword reports whether value has textual representation and no number.
func (v Value) IsKeyword() bool {
	return !v.numeric && v.Keyword != ""
}

// Equal reports whether v and o denote the same value: numbers are compared
// with their units, single keywords by their normalized text and everything
// else token by token, so formatting differences do not matter.
func (v Value) Equal(o Value) bool {
	switch {
	case v.numeric || o.numeric:
		return v.numeric == o.numeric && v.Value == o.Value && v.Unit == o.Unit
	case len(v.tokens) > 1 || len(o.tokens) > 1:
		if len(v.tokens) != len(o.tokens) {
			return false
		}
		for i := range v.tokens {
			if v.tokens[i] != o.tokens[i] {
				return false
			}
		}
		return true
	default:
		return v.Keyword == o.Keyword
	}
}

// ParseValue tokenizes raw declaration value and classifies it.
func ParseValue(raw string) Value {
	lexer := css.NewLexer(parse.NewInputString(raw))
	var tokens []css.Token
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		// lexer reuses its buffer
		tokens = append(tokens, css.Token{TokenType: tt, Data: append([]byte(nil), data...)})
	}
	return classify(tokens)
}

// classify builds Value from declaration tokens as produced by css lexer or
// grammar parser.
func classify(tokens []css.Token) Value {
	var (
		val Value
		sb  strings.Builder
		sig []css.Token
	)
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.Write(t.Data)
		sig = append(sig, t)
		val.tokens = append(val.tokens, string(t.Data))
	}
	val.Raw = strings.TrimSpace(sb.String())

	if len(sig) != 1 {
		// functions (rgb(), url(), ...) and shorthands keep raw text
		val.Keyword = val.Raw
		return val
	}

	t := sig[0]
	switch t.TokenType {
	case css.NumberToken:
		val.Value, val.numeric = number(t.Data), true
	case css.PercentageToken:
		val.Value, val.Unit, val.numeric = number(t.Data[:len(t.Data)-1]), "%", true
	case css.DimensionToken:
		n, _ := parse.Dimension(t.Data)
		val.Value, val.Unit, val.numeric = number(t.Data[:n]), strings.ToLower(string(t.Data[n:])), true
	case css.IdentToken:
		val.Keyword = strings.ToLower(string(t.Data))
	case css.HashToken:
		val.Keyword = strings.ToLower(string(t.Data))
	case css.StringToken:
		val.Keyword = unquote(string(t.Data))
	default:
		val.Keyword = val.Raw
	}
	return val
}

func number(b []byte) float64 {
	f, _ := strconv.ParseFloat(string(b), 64)
	return f
}

// unquote strips matching quotes of CSS string token.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
