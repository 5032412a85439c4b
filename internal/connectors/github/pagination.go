package github

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// linkRegex matches Link header entries: <url>; rel="type".
var linkRegex = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// parseLinks extracts all URLs from a Link header by relationship type.
func parseLinks(linkHeader string) map[string]string {
	links := make(map[string]string)
	if linkHeader == "" {
		return links
	}

	parts := strings.Split(linkHeader, ",")
	for _, part := range parts {
		matches := linkRegex.FindStringSubmatch(strings.TrimSpace(part))
		if len(matches) == 3 {
			links[matches[2]] = matches[1]
		}
	}

	return links
}

// LastPageNumber extracts the page number of the rel="last" entry from a
// Link header. The second return value is false when the header is empty,
// has no rel="last" entry, or the entry's URL carries no usable page
// parameter.
func LastPageNumber(linkHeader string) (int, bool) {
	last, ok := parseLinks(linkHeader)["last"]
	if !ok {
		return 0, false
	}

	parsed, err := url.Parse(last)
	if err != nil {
		return 0, false
	}

	page, err := strconv.Atoi(parsed.Query().Get("page"))
	if err != nil {
		return 0, false
	}

	return page, true
}
