package stylesheet

import (
	"bytes"
	"maps"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser reads stylesheets back into rules. Selectors are kept as opaque
// text, only grouped selectors are split.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new stylesheet parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("stylesheet")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Rules:    make([]Rule, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing stylesheet", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	// grouped selectors arrive one by one before the ruleset opens
	var pending []string

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("Stylesheet parse error", zap.Error(parser.Err()))
				sheet.Warnings = append(sheet.Warnings, "parse error: "+parser.Err().Error())
			}
			return sheet

		case css.QualifiedRuleGrammar:
			pending = append(pending, splitSelectors(data, parser.Values())...)

		case css.BeginRulesetGrammar:
			selectors := append(pending, splitSelectors(data, parser.Values())...)
			pending = nil

			props := p.parseDeclarations(parser)
			for _, sel := range selectors {
				propsCopy := make(map[string]Value, len(props))
				maps.Copy(propsCopy, props)
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Properties: propsCopy})
			}

		case css.BeginAtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "skipped at-rule block: "+string(data))
			p.log.Debug("Skipping @-rule block", zap.String("rule", string(data)))
			p.skipAtRuleBlock(parser)

		case css.AtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "skipped at-rule: "+string(data))
			p.log.Debug("Skipping @-rule", zap.String("rule", string(data)))
		}
	}
}

// splitSelectors builds selector text from token data and splits it on
// top level commas.
func splitSelectors(data []byte, values []css.Token) []string {
	var (
		selectors []string
		sb        strings.Builder
		depth     int
	)
	flush := func() {
		if s := strings.TrimSpace(sb.String()); s != "" {
			selectors = append(selectors, s)
		}
		sb.Reset()
	}

	if len(data) > 0 && !bytes.Equal(data, []byte("{")) && !bytes.Equal(data, []byte(",")) {
		sb.Write(data)
	}
	for _, v := range values {
		switch v.TokenType {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				flush()
				continue
			}
		}
		sb.Write(v.Data)
	}
	flush()
	return selectors
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser) map[string]Value {
	props := make(map[string]Value)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props

		case css.DeclarationGrammar:
			values := parser.Values()
			if len(values) > 0 {
				props[string(data)] = classify(values)
			}

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) are not interpreted
			continue
		}
	}
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
