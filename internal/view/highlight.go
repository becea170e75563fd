package view

import "strings"

// Span is one [Start, End) byte range of a search term occurrence.
type Span struct {
	Start int
	End   int
}

// Spans returns every case-insensitive occurrence of term in text.
// Occurrences do not overlap; an empty term or text yields none.
func Spans(text, term string) []Span {
	if term == "" || text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	lowerTerm := strings.ToLower(term)

	var spans []Span
	start := 0
	for {
		i := strings.Index(lower[start:], lowerTerm)
		if i < 0 {
			return spans
		}
		from := start + i
		to := from + len(lowerTerm)
		spans = append(spans, Span{Start: from, End: to})
		start = to
	}
}

// Mark wraps every occurrence of term in text with pre and post markers,
// preserving the original casing of the matched text.
func Mark(text, term, pre, post string) string {
	spans := Spans(text, term)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.Start])
		b.WriteString(pre)
		b.WriteString(text[s.Start:s.End])
		b.WriteString(post)
		last = s.End
	}
	b.WriteString(text[last:])
	return b.String()
}
