// Package sanitize holds the HTML policy applied to job descriptions.
// Descriptions come from rich text editors, so a small formatting subset is
// kept and everything else (scripts, images, event handlers) is stripped.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "strong", "b", "em", "i", "u", "s", "del",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li",
		"a",
		"pre", "code",
		"blockquote",
		"hr",
	)
	p.AllowAttrs("href", "title", "target").OnElements("a")
	p.AllowStandardURLs()

	// Rich text editors attach styling hooks via class.
	p.AllowAttrs("class").Globally()

	return p
}

// Description strips disallowed markup from a job description.
func Description(html string) string {
	return policy.Sanitize(html)
}
