package match

import (
	"html"
	"regexp"
	"strings"
)

// Link is a cleaned application URL plus a human label. A zero Link means no
// recognizable URL was found, which is a valid degraded result.
type Link struct {
	URL   string
	Label string
}

const defaultLabel = "Apply"

var (
	hrefRe  = regexp.MustCompile(`(?i)href=['"]([^'"]+)['"]`)
	labelRe = regexp.MustCompile(`>(.*?)<`)
	bareRe  = regexp.MustCompile(`https?://[^\s"<>]+`)
)

// ExtractLink parses an application field that may be an HTML anchor
// fragment, a bare URL inside arbitrary text, or junk. Pattern attempts run
// in that order and the first success wins. All returned text is
// HTML-entity-decoded.
func ExtractLink(raw string) Link {
	s := strings.TrimSpace(raw)

	if m := hrefRe.FindStringSubmatch(s); m != nil {
		label := ""
		if lm := labelRe.FindStringSubmatch(s); lm != nil {
			label = strings.TrimSpace(lm[1])
		}
		if label == "" {
			label = defaultLabel
		}
		return Link{URL: html.UnescapeString(strings.TrimSpace(m[1])), Label: html.UnescapeString(label)}
	}

	if m := bareRe.FindString(s); m != "" {
		return Link{URL: html.UnescapeString(m), Label: defaultLabel}
	}

	return Link{}
}
