// Package parser extracts scannable lines and link targets from Markdown text.
package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// linkRe matches [label](target). The label may hold anything but ']',
// the target anything but ')'.
var linkRe = regexp.MustCompile(`\[[^\]]*\]\(([^)]+)\)`)

// skipPrefixes are schemes that never point at the local file system.
var skipPrefixes = []string{
	"http://",
	"https://",
	"mailto:",
	"tel:",
	"javascript:",
}

// Line is a single line of a document outside any fenced code block.
type Line struct {
	Number int // 1-based
	Text   string
}

// Lines splits text into lines and drops fenced code blocks.
// A line whose trimmed content starts with ``` or ~~~ toggles the fence
// and is itself never returned.
func Lines(text string) []Line {
	var out []Line
	inFence := false
	for i, line := range splitLines(text) {
		if isFence(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		out = append(out, Line{Number: i + 1, Text: line})
	}
	return out
}

func isFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// splitLines breaks text on \r\n and on every single-character line
// boundary: \n \r \v \f \x1c \x1d \x1e U+0085 U+2028 U+2029.
// A trailing boundary does not produce an empty final line.
func splitLines(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if !isLineBreak(r) {
			continue
		}
		if r == '\n' && i > 0 && text[i-1] == '\r' {
			// Second half of \r\n; the line was already cut at \r.
			start = i + 1
			continue
		}
		out = append(out, text[start:i])
		start = i + utf8.RuneLen(r)
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// LinkTargets returns the raw target of every [label](target) on line, in order.
func LinkTargets(line string) []string {
	matches := linkRe.FindAllStringSubmatch(line, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// NormalizeTarget turns a raw link target into a file-system reference.
// It returns false for targets that are empty, same-document anchors or
// external URIs. Fragment and query suffixes are dropped and the rest is
// percent-decoded.
func NormalizeTarget(raw string) (string, bool) {
	target := strings.TrimSpace(raw)
	if target == "" {
		return "", false
	}
	if strings.HasPrefix(target, "<") && strings.HasSuffix(target, ">") {
		target = strings.TrimSpace(target[1 : len(target)-1])
	}
	if strings.HasPrefix(target, "#") {
		return "", false
	}
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(target, prefix) {
			return "", false
		}
	}

	if i := strings.Index(target, "#"); i >= 0 {
		target = target[:i]
	}
	if i := strings.Index(target, "?"); i >= 0 {
		target = target[:i]
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}

	return unescape(target), true
}

// unescape decodes every well-formed %XX escape and leaves malformed ones
// untouched: "a%20b%zz" becomes "a b%zz". Decoded bytes that are not valid
// UTF-8 become U+FFFD.
func unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
