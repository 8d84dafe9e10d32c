package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescription(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"formatting kept",
			"<p>We are <strong>hiring</strong></p>",
			"<p>We are <strong>hiring</strong></p>",
		},
		{
			"script stripped",
			`<p>Hi</p><script>alert("xss")</script>`,
			"<p>Hi</p>",
		},
		{
			"event handler stripped",
			`<p onclick="steal()">Hi</p>`,
			"<p>Hi</p>",
		},
		{
			"image stripped keeps text",
			`<p>Logo <img src="x.png"> here</p>`,
			"<p>Logo  here</p>",
		},
		{
			"lists and headings survive",
			"<h2>Duties</h2><ul><li>Ship</li></ul>",
			"<h2>Duties</h2><ul><li>Ship</li></ul>",
		},
		{
			"plain text untouched",
			"No markup at all",
			"No markup at all",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Description(tc.in))
		})
	}
}

func TestDescriptionLinks(t *testing.T) {
	out := Description(`<a href="https://acme.example" target="_blank" onmouseover="x()">apply</a>`)
	assert.Contains(t, out, `href="https://acme.example"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.NotContains(t, out, "onmouseover")
}

func TestDescriptionJavascriptHref(t *testing.T) {
	out := Description(`<a href="javascript:alert(1)">apply</a>`)
	assert.NotContains(t, out, "javascript:")
}
