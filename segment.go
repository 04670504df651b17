package docqa

// Segment is one unit of a QA service response: a span of answer text with
// zero or more citations grounding it in the source document. A segment with
// no citations is plain text.
type Segment struct {
	Text      string     `json:"text"`
	Citations []Citation `json:"citations,omitempty"`
}

// Plain reports whether the segment carries no citations.
func (s Segment) Plain() bool {
	return len(s.Citations) == 0
}

// Citation points from a span of answer text to the page range in the source
// document that substantiates it. Page numbers are 1-indexed and
// EndPage >= StartPage.
type Citation struct {
	CitedText string `json:"citedText"`
	StartPage int    `json:"startPage"`
	EndPage   int    `json:"endPage"`
}
