package script

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// Identifiers the pass is allowed to rename. Substitution is whole-word
// only and never touches string or regex literals, so a cookie value that
// happens to equal one of these names passes through untouched.
var (
	reservedFunctions = map[string]bool{
		"setCookie":     true,
		"getCookie":     true,
		"checkReferrer": true,
		"checkCookieA":  true,
		"executeScript": true,
	}
	reservedVariables = map[string]bool{
		"cookieA":  true,
		"cookieB":  true,
		"referrer": true,
		"domain":   true,
		"expiry":   true,
	}

	identRe = regexp.MustCompile(`\.?\b(setCookie|getCookie|checkReferrer|checkCookieA|executeScript|cookieA|cookieB|referrer|domain|expiry)\b:?`)

	spaceRe = regexp.MustCompile(`\s+`)
	punctRe = regexp.MustCompile(`\s*([{}();,=])\s*`)
)

// Filler comments interspersed at roughly 10% of lines. Block comments
// only: a line comment would swallow the rest of the script once the
// whitespace pass folds it onto a single line.
var fillerComments = []string{
	"/* Optimized for performance */",
	"/* Enhanced tracking */",
	"/* Secure implementation */",
	"/* Advanced analytics */",
	"/* Real-time monitoring */",
}

// Obfuscate applies the cosmetic token-substitution pass: reserved
// identifiers are renamed through an alias table created fresh for this
// call, filler comments are interspersed, and whitespace is collapsed
// around punctuation. The result behaves identically to the input when
// executed. This is cosmetics, not protection; callers must not assume
// secrecy from it.
func Obfuscate(code string) string {
	p := newPass()
	return p.apply(code)
}

type pass struct {
	aliases map[string]string
	rnd     *rand.Rand
}

func newPass() *pass {
	return &pass{
		aliases: make(map[string]string),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (p *pass) apply(code string) string {
	code = p.substitute(code)
	code = p.addFillerComments(code)
	return minify(code)
}

// substitute renames reserved identifiers in code regions only. Property
// accesses (".referrer") and object-literal keys ("referrer:") keep their
// names: renaming either would change what the script reads from the DOM
// or the shape of the JSON it sends.
func (p *pass) substitute(code string) string {
	segs := scan(code)
	var b strings.Builder
	b.Grow(len(code))
	for _, s := range segs {
		if s.kind == segCode {
			b.WriteString(identRe.ReplaceAllStringFunc(s.text, func(m string) string {
				if strings.HasPrefix(m, ".") || strings.HasSuffix(m, ":") {
					return m
				}
				return p.alias(m)
			}))
		} else {
			b.WriteString(s.text)
		}
	}
	return b.String()
}

// alias returns the stable-within-this-pass replacement for an identifier.
func (p *pass) alias(name string) string {
	if a, ok := p.aliases[name]; ok {
		return a
	}
	prefix := "var"
	if reservedFunctions[name] {
		prefix = "fn"
	}
	buf := make([]byte, 8)
	if _, err := cryptorand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; keep the
		// identifier rather than emit a broken script.
		return name
	}
	a := prefix + "_" + hex.EncodeToString(buf)
	p.aliases[name] = a
	return a
}

func (p *pass) addFillerComments(code string) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, line)
		if strings.TrimSpace(line) != "" && p.rnd.Float64() < 0.1 {
			out = append(out, fillerComments[p.rnd.Intn(len(fillerComments))])
		}
	}
	return strings.Join(out, "\n")
}

// minify folds the script onto one line: line comments are dropped (they
// would otherwise comment out the remainder), then whitespace collapses
// around punctuation. String and regex literals pass through verbatim.
func minify(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, s := range scan(code) {
		switch s.kind {
		case segLineComment:
			// dropped; the trailing newline stays in the next segment
		case segString, segRegex:
			b.WriteString(s.text)
		default:
			collapsed := spaceRe.ReplaceAllString(s.text, " ")
			b.WriteString(punctRe.ReplaceAllString(collapsed, "$1"))
		}
	}
	return strings.TrimSpace(b.String())
}

type segKind int

const (
	segCode segKind = iota
	segString
	segRegex
	segLineComment
	segBlockComment
)

type segment struct {
	kind segKind
	text string
}

// regexPrecursors are the characters after which a '/' starts a regex
// literal rather than a division. Good enough for the scripts this package
// renders; this is not a general JS lexer.
const regexPrecursors = "=([{,;:!&|?+-*%~^<>"

// scan splits JS source into code, string-literal, regex-literal and
// comment segments so the other passes can skip literal regions.
func scan(code string) []segment {
	var (
		segs    []segment
		start   int
		lastSig byte
	)
	flush := func(end int, kind segKind) {
		if end > start {
			segs = append(segs, segment{kind: kind, text: code[start:end]})
		}
		start = end
	}
	i := 0
	for i < len(code) {
		c := code[i]
		switch {
		case c == '\'':
			flush(i, segCode)
			j := i + 1
			for j < len(code) && code[j] != '\'' {
				if code[j] == '\\' {
					j++
				}
				j++
			}
			if j < len(code) {
				j++ // closing quote
			}
			flush(j, segString)
			lastSig = '\''
			i = j
		case c == '/' && i+1 < len(code) && code[i+1] == '/':
			flush(i, segCode)
			j := i + 2
			for j < len(code) && code[j] != '\n' {
				j++
			}
			flush(j, segLineComment)
			i = j
		case c == '/' && i+1 < len(code) && code[i+1] == '*':
			flush(i, segCode)
			j := i + 2
			for j+1 < len(code) && !(code[j] == '*' && code[j+1] == '/') {
				j++
			}
			if j+1 < len(code) {
				j += 2
			} else {
				j = len(code)
			}
			flush(j, segBlockComment)
			i = j
		case c == '/' && (lastSig == 0 || strings.IndexByte(regexPrecursors, lastSig) >= 0):
			flush(i, segCode)
			j := i + 1
			for j < len(code) && code[j] != '/' && code[j] != '\n' {
				if code[j] == '\\' {
					j++
				}
				j++
			}
			if j < len(code) && code[j] == '/' {
				j++
				for j < len(code) && code[j] >= 'a' && code[j] <= 'z' {
					j++ // flags
				}
			}
			flush(j, segRegex)
			lastSig = '/'
			i = j
		default:
			if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
				lastSig = c
			}
			i++
		}
	}
	flush(len(code), segCode)
	return segs
}
