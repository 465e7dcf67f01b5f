package svgdoc

import (
	"bytes"
	"os"
)

var canonicalNSAttr = []byte(` xmlns="` + Namespace + `"`)

// Sanitize returns data with the opening tag of its root element carrying
// exactly one default namespace declaration, placed right after the tag
// name. Every other default declaration on that tag is removed.
//
// Sanitize never fails: if no root tag can be found the input is returned
// unchanged. Sanitize(Sanitize(d)) equals Sanitize(d).
func Sanitize(data []byte) []byte {
	_, nameEnd, end, ok := rootTag(data)
	if !ok {
		return data
	}

	attrs := stripDefaultNS(data[nameEnd:end])

	out := make([]byte, 0, len(data)+len(canonicalNSAttr))
	out = append(out, data[:nameEnd]...)
	out = append(out, canonicalNSAttr...)
	out = append(out, attrs...)
	out = append(out, data[end:]...)
	return out
}

// SanitizeFile sanitizes the document stored at path in place.
// It reports whether the file was rewritten. Read and write failures are
// ignored; the file is left as it was.
func SanitizeFile(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	fixed := Sanitize(data)
	if bytes.Equal(fixed, data) {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return os.WriteFile(path, fixed, info.Mode().Perm()) == nil
}

// stripDefaultNS removes every default namespace declaration, with its
// leading whitespace, from the attribute section of a tag. Attributes are
// walked name by name so text inside other values is never matched.
// Prefixed declarations such as xmlns:xlink are kept. Anything that does
// not scan as an attribute is copied through unchanged.
func stripDefaultNS(attrs []byte) []byte {
	out := make([]byte, 0, len(attrs))
	i := 0
	for i < len(attrs) {
		start := i
		i = skipSpace(attrs, i)
		n := i
		for i < len(attrs) && isNameByte(attrs[i]) {
			i++
		}
		if i == n {
			return append(out, attrs[start:]...)
		}
		name := attrs[n:i]

		j := skipSpace(attrs, i)
		if j == len(attrs) || attrs[j] != '=' {
			out = append(out, attrs[start:i]...)
			continue
		}
		j = skipSpace(attrs, j+1)
		switch {
		case j < len(attrs) && (attrs[j] == '"' || attrs[j] == '\''):
			k := bytes.IndexByte(attrs[j+1:], attrs[j])
			if k < 0 {
				return append(out, attrs[start:]...)
			}
			i = j + 1 + k + 1
		default:
			for j < len(attrs) && !isSpace(attrs[j]) && attrs[j] != '>' {
				j++
			}
			i = j
		}

		if bytes.EqualFold(name, []byte("xmlns")) {
			continue
		}
		out = append(out, attrs[start:i]...)
	}
	return out
}

func skipSpace(b []byte, i int) int {
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// rootTag locates the opening tag of the root element, skipping the XML
// declaration, processing instructions, comments and a doctype. It returns
// the offset of '<', the offset just past the tag name, and the offset just
// past the closing '>'.
func rootTag(data []byte) (start, nameEnd, end int, ok bool) {
	i := 0
	for {
		j := bytes.IndexByte(data[i:], '<')
		if j < 0 {
			return 0, 0, 0, false
		}
		i += j
		rest := data[i:]

		switch {
		case bytes.HasPrefix(rest, []byte("<?")):
			k := bytes.Index(rest, []byte("?>"))
			if k < 0 {
				return 0, 0, 0, false
			}
			i += k + 2
		case bytes.HasPrefix(rest, []byte("<!--")):
			k := bytes.Index(rest[4:], []byte("-->"))
			if k < 0 {
				return 0, 0, 0, false
			}
			i += 4 + k + 3
		case bytes.HasPrefix(rest, []byte("<!")):
			k := declEnd(rest)
			if k < 0 {
				return 0, 0, 0, false
			}
			i += k
		default:
			n := 1
			for n < len(rest) && isNameByte(rest[n]) {
				n++
			}
			if n == 1 {
				return 0, 0, 0, false
			}
			e := tagEnd(rest, n)
			if e < 0 {
				return 0, 0, 0, false
			}
			return i, i + n, i + e, true
		}
	}
}

// declEnd returns the length of a <!...> declaration, honoring quoted
// strings and a bracketed internal subset.
func declEnd(b []byte) int {
	var quote byte
	depth := 0
	for k := 2; k < len(b); k++ {
		c := b[k]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == '>' && depth <= 0:
			return k + 1
		}
	}
	return -1
}

// tagEnd returns the offset just past the '>' closing the tag that starts
// at b[0], scanning attribute values as opaque quoted strings.
func tagEnd(b []byte, from int) int {
	var quote byte
	for k := from; k < len(b); k++ {
		c := b[k]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return k + 1
		}
	}
	return -1
}

func isNameByte(c byte) bool {
	return c >= 0x80 ||
		c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c == '.' || c == ':'
}
