package urlcheck

import (
	"net/url"
	"regexp"
	"strings"
)

// Matches 172.16.0.0 through 172.31.255.255 (RFC 1918).
var private172 = regexp.MustCompile(`^172\.(1[6-9]|2\d|3[01])\.`)

var internalSuffixes = []string{".local", ".internal", ".corp", ".lan", ".home"}

// IsPublic reports whether the URL points at a publicly routable host.
// Loopback, RFC 1918 ranges, link-local, broadcast and common internal
// domain suffixes are rejected to block SSRF through the redirect target.
//
// Unparseable input is treated as public and left for the shape validation
// to reject; this mirrors the reference behavior and is intentional.
func IsPublic(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return true
	}

	hostname := strings.ToLower(parsed.Hostname())

	if hostname == "localhost" || hostname == "127.0.0.1" {
		return false
	}
	if hostname == "::1" || hostname == "[::1]" {
		return false
	}
	if strings.HasPrefix(hostname, "10.") {
		return false
	}
	if private172.MatchString(hostname) {
		return false
	}
	if strings.HasPrefix(hostname, "192.168.") {
		return false
	}
	if strings.HasPrefix(hostname, "169.254.") {
		return false
	}
	if hostname == "0.0.0.0" || hostname == "255.255.255.255" {
		return false
	}
	for _, suffix := range internalSuffixes {
		if strings.HasSuffix(hostname, suffix) {
			return false
		}
	}

	return true
}
