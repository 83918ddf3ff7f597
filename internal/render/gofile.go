package render

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
)

// GoFile renders the report as a generated Go source file. The combined
// documentation becomes the package doc comment, and the exact text is
// preserved byte for byte in a string constant named constName.
func GoFile(pkgName, constName string, rep *Report) ([]byte, error) {
	if !token.IsIdentifier(pkgName) {
		return nil, fmt.Errorf("invalid package name %q", pkgName)
	}
	if !token.IsIdentifier(constName) {
		return nil, fmt.Errorf("invalid constant name %q", constName)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by docweave. DO NOT EDIT.\n\n")
	for _, line := range docCommentLines(rep.Combined) {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "// %s is the combined documentation of the source units.\n", constName)
	fmt.Fprintf(&buf, "const %s = %q\n", constName, rep.Combined)

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

// docCommentLines turns the combined text into `//` comment lines suitable
// for a package doc comment. Trailing whitespace is dropped so gofmt has
// nothing to re-trim; the constant keeps the exact text.
func docCommentLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			out = append(out, "//")
			continue
		}
		out = append(out, "// "+line)
	}
	return out
}
