package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Diagnostic records one recoverable parse problem. Diagnostics never abort
// a parse; the caller decides how to surface them.
type Diagnostic struct {
	Line    int
	Message string
}

// Parse builds a catalog from PO/POT text in a single forward pass.
// Malformed lines are reported as diagnostics and scanning resumes on the
// next line, so the result is always a usable, best-effort catalog.
func Parse(text string) (*Catalog, []Diagnostic) {
	c := &Catalog{Header: NewHeader(), nowFn: time.Now}
	p := &parser{lines: strings.Split(text, "\n")}

	firstBlock := true
	for p.pos < len(p.lines) {
		if strings.TrimSpace(p.lines[p.pos]) == "" {
			p.pos++
			continue
		}

		start := p.pos
		entry, obsolete := p.parseBlock()
		if p.pos == start {
			p.report(start+1, fmt.Sprintf("unrecognized line %q", strings.TrimSpace(p.lines[start])))
			p.pos++
			continue
		}
		if obsolete {
			continue
		}

		entry.UpdateStatus()
		switch {
		case entry.Msgid == "" && firstBlock:
			mergeHeader(c.Header, entry.Msgstr)
		case entry.Msgid != "":
			c.Entries = append(c.Entries, entry)
		default:
			// Only the first block may carry the header; later empty-msgid
			// blocks are dropped, not merged.
			p.report(start+1, "ignoring extra header block")
		}
		firstBlock = false
	}

	return c, p.diags
}

type parser struct {
	lines []string
	pos   int
	diags []Diagnostic
}

func (p *parser) report(line int, message string) {
	p.diags = append(p.diags, Diagnostic{Line: line, Message: message})
}

// parseBlock consumes one entry block: a prefix of metadata lines followed
// by optional msgctxt, msgid and msgstr keyword lines with continuations.
// Obsolete blocks ("#~") are consumed and reported but yield no entry.
func (p *parser) parseBlock() (Entry, bool) {
	var e Entry

meta:
	for p.pos < len(p.lines) {
		line := strings.TrimSpace(p.lines[p.pos])
		if line == "" {
			break
		}
		switch {
		case strings.HasPrefix(line, "#~"):
			break meta
		case strings.HasPrefix(line, "#."):
			e.ExtractedComments = append(e.ExtractedComments, strings.TrimSpace(line[2:]))
		case strings.HasPrefix(line, "#:"):
			e.References = append(e.References, strings.TrimSpace(line[2:]))
		case strings.HasPrefix(line, "#,"):
			for _, flag := range strings.Split(line[2:], ",") {
				e.Flags = append(e.Flags, strings.TrimSpace(flag))
			}
		case strings.HasPrefix(line, "#"):
			e.Comments = append(e.Comments, strings.TrimSpace(line[1:]))
		default:
			break meta
		}
		p.pos++
	}

	if p.pos < len(p.lines) && strings.HasPrefix(strings.TrimSpace(p.lines[p.pos]), "#~") {
		p.report(p.pos+1, "obsolete entry ignored")
		for p.pos < len(p.lines) && strings.HasPrefix(strings.TrimSpace(p.lines[p.pos]), "#~") {
			p.pos++
		}
		return e, true
	}

	if value, ok := p.consumeKeyword("msgctxt"); ok {
		e.Msgctxt = value
		e.HasMsgctxt = true
	}
	if value, ok := p.consumeKeyword("msgid"); ok {
		e.Msgid = value
	}
	if value, ok := p.consumeKeyword("msgstr"); ok {
		e.Msgstr = value
	}
	return e, false
}

// consumeKeyword consumes a `keyword "<literal>"` line plus any bare-literal
// continuation lines, concatenating the decoded contents. A malformed literal
// is reported and contributes nothing; scanning still advances.
func (p *parser) consumeKeyword(keyword string) (string, bool) {
	if p.pos >= len(p.lines) {
		return "", false
	}
	line := strings.TrimSpace(p.lines[p.pos])
	if !strings.HasPrefix(line, keyword) {
		return "", false
	}
	p.pos++

	value, err := decodeLiteral(strings.TrimSpace(line[len(keyword):]))
	if err != nil {
		p.report(p.pos, fmt.Sprintf("%s: %v", keyword, err))
	}

	for p.pos < len(p.lines) {
		cont := strings.TrimSpace(p.lines[p.pos])
		if !strings.HasPrefix(cont, `"`) {
			break
		}
		p.pos++
		part, err := decodeLiteral(cont)
		if err != nil {
			p.report(p.pos, fmt.Sprintf("%s continuation: %v", keyword, err))
			continue
		}
		value += part
	}
	return value, true
}

// decodeLiteral strips the surrounding quotes and translates the PO escape
// sequences. An unrecognized escape is kept verbatim as both characters
// rather than rejected, so one decode pass is lossless for unknown input.
func decodeLiteral(s string) (string, error) {
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return "", fmt.Errorf("expected quoted string literal, got %q", s)
	}
	body := s[1 : len(s)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' {
			b.WriteByte(ch)
			continue
		}
		i++
		if i == len(body) {
			b.WriteByte('\\')
			break
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte('\\')
			b.WriteByte(body[i])
		}
	}
	return b.String(), nil
}

// mergeHeader parses msgstr content of a header block as "key: value" lines.
func mergeHeader(h *Header, msgstr string) {
	for _, line := range strings.Split(msgstr, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		h.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}
