package docqa

import (
	"fmt"
	"strings"
)

// Render renders a grouped answer as markdown: the introduction, each
// section followed by its [^n] footnote markers, and a trailing footnote
// definition list with cited text and page range. Sections and the footnote
// list are separated by blank lines. Pure string templating; the model is
// not altered, reordered, or validated.
func Render(model *RenderModel) string {
	var sb strings.Builder

	sb.WriteString(model.Introduction)

	for _, sec := range model.Sections {
		sb.WriteString("\n\n")
		sb.WriteString(sec.Text)
		for _, n := range sec.FootnoteNumbers {
			fmt.Fprintf(&sb, "[^%d]", n)
		}
	}

	if len(model.Footnotes) > 0 {
		sb.WriteString("\n")
		for _, fn := range model.Footnotes {
			fmt.Fprintf(&sb, "\n[^%d]: %s *(%s)*", fn.Number, fn.CitedText, fn.PageRange)
		}
	}

	return sb.String()
}
