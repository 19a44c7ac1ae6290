package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a primitive CSS file: selectors .class or #id and blocks of "key: value;".
// Other selectors and everything inside @rules are skipped. Later rules override earlier
// for the same selector.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{Rules: nil}
	p := css.NewParser(parse.NewInputString(content), false)

	var cur *Rule
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if errors.Is(err, io.EOF) {
				return sheet, nil
			}
			var perr *parse.Error
			if errors.As(err, &perr) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("ui: css: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}
		case css.BeginRulesetGrammar:
			selector := joinTokens(p.Values())
			if atDepth > 0 || !simpleSelector(selector) {
				cur = nil
				continue
			}
			cur = &Rule{Selector: selector, Props: make(map[string]string)}
		case css.DeclarationGrammar:
			if cur == nil {
				continue
			}
			k := strings.TrimSpace(string(data))
			if k != "" {
				cur.Props[k] = joinTokens(p.Values())
			}
		case css.EndRulesetGrammar:
			if cur != nil {
				sheet.Rules = append(sheet.Rules, *cur)
				cur = nil
			}
		}
	}
}

func joinTokens(toks []css.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// simpleSelector accepts ".name" and "#name" only.
func simpleSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " ,>+~:.#[")
}
