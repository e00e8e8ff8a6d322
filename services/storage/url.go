package storage

import (
	"path"
	"strings"
)

// publicIDFromURL strips the delivery prefix and file extension from a
// cloudinary URL, leaving the folder-qualified public ID. Returns "" when
// the URL does not look like an upload delivery URL.
func publicIDFromURL(url string) string {
	const marker = "/upload/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return ""
	}
	rest := url[idx+len(marker):]

	// Drop the version segment ("v1712345678/") when present.
	if strings.HasPrefix(rest, "v") {
		if slash := strings.Index(rest, "/"); slash > 0 {
			if _, onlyDigits := versionDigits(rest[1:slash]); onlyDigits {
				rest = rest[slash+1:]
			}
		}
	}
	if rest == "" {
		return ""
	}
	return strings.TrimSuffix(rest, path.Ext(rest))
}

func versionDigits(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return s, true
}
