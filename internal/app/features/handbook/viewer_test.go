package handbook_test

import (
	"strings"
	"testing"

	"github.com/drafthub/drafthub/internal/app/features/handbook"
)

func TestResolveViewLink_DropboxShareBecomesRaw(t *testing.T) {
	vl, err := handbook.ResolveViewLink("https://www.dropbox.com/s/x/file.pdf?dl=0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(vl.FullScreen, "raw=1") {
		t.Errorf("full-screen link should end in raw=1: %q", vl.FullScreen)
	}
	if strings.Contains(vl.FullScreen, "dl=0") {
		t.Errorf("dl=0 should be removed: %q", vl.FullScreen)
	}
	// Dropbox is not the preview host, so the embed gets the chrome hint.
	if !strings.HasSuffix(vl.Embed, "#toolbar=0&navpanes=0") {
		t.Errorf("embed link missing chrome fragment: %q", vl.Embed)
	}
}

func TestResolveViewLink_DriveViewBecomesPreview(t *testing.T) {
	cases := []struct {
		name string
		link string
	}{
		{"with sharing suffix", "https://drive.google.com/file/d/abc/view?usp=sharing"},
		{"bare view", "https://drive.google.com/file/d/abc/view"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vl, err := handbook.ResolveViewLink(tc.link)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasSuffix(vl.FullScreen, "/preview") {
				t.Errorf("full-screen link should end in /preview: %q", vl.FullScreen)
			}
			// Drive blocks fragment-decorated embeds; the preview URL is
			// used as-is.
			if vl.Embed != vl.FullScreen {
				t.Errorf("drive embed should equal the rewritten link: %q vs %q", vl.Embed, vl.FullScreen)
			}
		})
	}
}

func TestResolveViewLink_PlainHostGetsChromeFragment(t *testing.T) {
	link := "https://example.com/file.pdf"
	vl, err := handbook.ResolveViewLink(link)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vl.FullScreen != link {
		t.Errorf("full-screen link should be unchanged: %q", vl.FullScreen)
	}
	if vl.Embed != link+"#toolbar=0&navpanes=0" {
		t.Errorf("embed link: got %q", vl.Embed)
	}
}

func TestResolveViewLink_DropboxWithoutShareFlagUnchanged(t *testing.T) {
	link := "https://www.dropbox.com/s/x/file.pdf?raw=1"
	vl, err := handbook.ResolveViewLink(link)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vl.FullScreen != link {
		t.Errorf("link without dl=0 should be unchanged: %q", vl.FullScreen)
	}
}

func TestResolveViewLink_RejectsRelativeAndMalformed(t *testing.T) {
	for _, link := range []string{"", "not a url at all\x7f://", "/relative/path.pdf", "file.pdf"} {
		if _, err := handbook.ResolveViewLink(link); err == nil {
			t.Errorf("expected an error for %q", link)
		}
	}
}
