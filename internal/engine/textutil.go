package engine

import (
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/anatolykoptev/go-kit/strutil"
)

// UserAgentBot identifies provider calls.
const UserAgentBot = "GoJobMatch/1.0"

var (
	htmlTagRe    = regexp.MustCompile(`<[a-zA-Z][^>]*>|</[a-zA-Z][^>]*>`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// LooksLikeHTML reports whether s carries markup tags.
func LooksLikeHTML(s string) bool {
	return htmlTagRe.MatchString(s)
}

// PlainText turns provider page text into plain text. HTML goes through
// html-to-markdown first, then goquery, then tag stripping.
func PlainText(s string) string {
	if !LooksLikeHTML(s) {
		return collapseSpace(s)
	}
	if md, err := htmltomarkdown.ConvertString(s); err == nil && strings.TrimSpace(md) != "" {
		return collapseSpace(md)
	}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
		doc.Find("script, style, noscript").Remove()
		return collapseSpace(doc.Text())
	}
	return collapseSpace(htmlTagRe.ReplaceAllString(s, " "))
}

func collapseSpace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// TruncateAtWord truncates a string to maxLen runes at a word boundary.
func TruncateAtWord(s string, maxLen int) string {
	return strutil.TruncateAtWord(s, maxLen)
}

// Hostname returns the lowercased host of rawURL without a leading "www.".
func Hostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// URLPath returns the lowercased path of rawURL.
func URLPath(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Path)
}
