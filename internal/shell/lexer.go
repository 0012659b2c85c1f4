package shell

import (
	"errors"
	"strings"
)

var (
	errUnterminatedQuote = errors.New("unterminated quote")
	errUnterminatedVar   = errors.New("unterminated ${")
)

// Split breaks a command line into commands and their words. Commands are
// separated by ';' or newlines. Words are separated by blanks and may be
// quoted: "..." expands $name and ${name} and honours \" \\ \$, '...' is
// literal. Outside quotes a backslash escapes the next character and '#'
// at the start of a word comments out the rest of the line. Expanded
// values are never re-split into words.
func Split(line string, lookup func(string) string) ([][]string, error) {
	if lookup == nil {
		lookup = func(string) string { return "" }
	}
	var (
		cmds   [][]string
		words  []string
		cur    strings.Builder
		inWord bool
	)
	flushWord := func() {
		if inWord {
			words = append(words, cur.String())
			cur.Reset()
			inWord = false
		}
	}
	flushCmd := func() {
		flushWord()
		if len(words) > 0 {
			cmds = append(cmds, words)
			words = nil
		}
	}

	rs := []rune(line)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == ' ' || r == '\t' || r == '\r':
			flushWord()
		case r == ';' || r == '\n':
			flushCmd()
		case r == '#' && !inWord:
			for i+1 < len(rs) && rs[i+1] != '\n' {
				i++
			}
		case r == '\\':
			if i+1 < len(rs) {
				i++
				r = rs[i]
			}
			cur.WriteRune(r)
			inWord = true
		case r == '\'':
			end := indexRune(rs, i+1, '\'')
			if end < 0 {
				return nil, errUnterminatedQuote
			}
			cur.WriteString(string(rs[i+1 : end]))
			i = end
			inWord = true
		case r == '"':
			end, err := readDoubleQuoted(rs, i+1, &cur, lookup)
			if err != nil {
				return nil, err
			}
			i = end
			inWord = true
		case r == '$':
			val, end, ok, err := expandVar(rs, i, lookup)
			if err != nil {
				return nil, err
			}
			if !ok {
				cur.WriteRune('$')
				inWord = true
				continue
			}
			i = end
			cur.WriteString(val)
			if val != "" {
				inWord = true
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	flushCmd()
	return cmds, nil
}

func readDoubleQuoted(rs []rune, start int, cur *strings.Builder, lookup func(string) string) (int, error) {
	for i := start; i < len(rs); i++ {
		switch rs[i] {
		case '"':
			return i, nil
		case '\\':
			if i+1 < len(rs) && strings.ContainsRune(`"\$`, rs[i+1]) {
				i++
			}
			cur.WriteRune(rs[i])
		case '$':
			val, end, ok, err := expandVar(rs, i, lookup)
			if err != nil {
				return 0, err
			}
			if !ok {
				cur.WriteRune('$')
				continue
			}
			cur.WriteString(val)
			i = end
		default:
			cur.WriteRune(rs[i])
		}
	}
	return 0, errUnterminatedQuote
}

// expandVar reads $name or ${name} starting at rs[i] == '$'. ok is false
// when the dollar sign does not introduce a variable.
func expandVar(rs []rune, i int, lookup func(string) string) (val string, end int, ok bool, err error) {
	if i+1 >= len(rs) {
		return "", i, false, nil
	}
	if rs[i+1] == '{' {
		rb := indexRune(rs, i+2, '}')
		if rb < 0 {
			return "", i, false, errUnterminatedVar
		}
		return lookup(string(rs[i+2 : rb])), rb, true, nil
	}
	j := i + 1
	for j < len(rs) && isNameRune(rs[j], j == i+1) {
		j++
	}
	if j == i+1 {
		return "", i, false, nil
	}
	return lookup(string(rs[i+1 : j])), j - 1, true, nil
}

func isNameRune(r rune, first bool) bool {
	switch {
	case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return !first
	}
	return false
}

func indexRune(rs []rune, from int, want rune) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == want {
			return i
		}
	}
	return -1
}

// Quote returns word in a form Split reads back as exactly one word.
func Quote(word string) string {
	if word != "" && !strings.ContainsAny(word, " \t\r\n;\"'\\$#") {
		return word
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range word {
		if r == '"' || r == '\\' || r == '$' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// Join quotes each word and joins them into a single command.
func Join(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = Quote(w)
	}
	return strings.Join(quoted, " ")
}
