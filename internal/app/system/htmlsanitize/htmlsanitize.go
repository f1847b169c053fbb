// Package htmlsanitize sanitizes rich-text fields before they are rendered
// with template.HTML.
//
// Design document descriptions come from an external import pipeline and may
// contain markup; they are the only field rendered unescaped, so everything
// else must go through the default html/template escaping.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Description sanitizes a document description for inline display.
func Description(s string) template.HTML {
	return template.HTML(policy.Sanitize(s))
}
