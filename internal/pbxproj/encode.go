package pbxproj

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// encoder writes old-style property lists the way Xcode does under the UTF8
// header: non-ASCII text is written as raw UTF-8, never escaped.
type encoder struct {
	buf    bytes.Buffer
	indent string
	depth  int
}

func encodeValue(v any, indent string) ([]byte, error) {
	e := &encoder{indent: indent}
	if err := e.value(v); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

func (e *encoder) newline() {
	if e.indent == "" {
		return
	}
	e.buf.WriteByte('\n')
	for i := 0; i < e.depth; i++ {
		e.buf.WriteString(e.indent)
	}
}

func (e *encoder) value(v any) error {
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sep := " = "
		if e.indent == "" {
			sep = "="
		}
		e.buf.WriteByte('{')
		e.depth++
		for _, k := range keys {
			e.newline()
			e.buf.WriteString(quote(k))
			e.buf.WriteString(sep)
			if err := e.value(v[k]); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			e.buf.WriteByte(';')
		}
		e.depth--
		e.newline()
		e.buf.WriteByte('}')
	case []any:
		e.buf.WriteByte('(')
		e.depth++
		for _, item := range v {
			e.newline()
			if err := e.value(item); err != nil {
				return err
			}
			e.buf.WriteByte(',')
		}
		e.depth--
		e.newline()
		e.buf.WriteByte(')')
	case string:
		e.buf.WriteString(quote(v))
	case []byte:
		e.buf.WriteByte('<')
		e.buf.WriteString(hex.EncodeToString(v))
		e.buf.WriteByte('>')
	case bool:
		if v {
			e.buf.WriteByte('1')
		} else {
			e.buf.WriteByte('0')
		}
	case int64:
		e.buf.WriteString(strconv.FormatInt(v, 10))
	case uint64:
		e.buf.WriteString(strconv.FormatUint(v, 10))
	case float64:
		e.buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case time.Time:
		e.buf.WriteString(quote(v.UTC().Format("2006-01-02 15:04:05 -0700")))
	default:
		return fmt.Errorf("unsupported value of type %T", v)
	}
	return nil
}

// bareSafe reports whether c may appear in an unquoted string.
func bareSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("_$/:.", c) >= 0
}

// quote returns s as an old-style plist string token. Bytes at or above 0x80
// pass through unchanged.
func quote(s string) string {
	bare := s != "" && !strings.Contains(s, "//")
	for i := 0; bare && i < len(s); i++ {
		bare = bareSafe(s[i])
	}
	if bare {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\U%04x`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
