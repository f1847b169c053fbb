// internal/app/features/handbook/viewer.go
package handbook

import (
	"fmt"
	"net/url"
	"strings"
)

// ViewLink is a document link prepared for display: FullScreen opens the
// document in a new tab, Embed goes into the inline viewer frame.
type ViewLink struct {
	FullScreen string
	Embed      string
}

// ResolveViewLink derives the display URLs for a stored document link.
//
// Rewrites, each applied only when its precondition matches:
//   - Dropbox share-preview links (dl=0) become direct-content links (raw=1);
//     Dropbox refuses to serve the raw file otherwise.
//   - Google Drive "/view" links (with or without the usp=sharing suffix)
//     become "/preview", the embeddable variant.
//   - Everything except Drive gets a viewer-chrome fragment appended to the
//     embed URL so the inline frame hides the toolbar and side navigation.
//
// A link that does not parse as an absolute URL is a data error; the caller
// renders a warning instead of an embed frame.
func ResolveViewLink(link string) (ViewLink, error) {
	u, err := url.Parse(link)
	if err != nil {
		return ViewLink{}, fmt.Errorf("parse document link: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return ViewLink{}, fmt.Errorf("document link %q is not an absolute URL", link)
	}

	if strings.Contains(link, "dropbox.com") && strings.Contains(link, "dl=0") {
		link = strings.ReplaceAll(link, "dl=0", "raw=1")
	}

	if strings.Contains(link, "drive.google.com") && strings.Contains(link, "/view") {
		link = strings.ReplaceAll(link, "/view?usp=sharing", "/preview")
		link = strings.ReplaceAll(link, "/view", "/preview")
	}

	vl := ViewLink{FullScreen: link, Embed: link}
	if !strings.Contains(link, "drive.google.com") {
		vl.Embed = link + "#toolbar=0&navpanes=0"
	}
	return vl, nil
}
