// Package uri builds file URIs for written listings.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FileURI returns a file:// URI for an absolute path.
// Each path segment is percent-encoded; slashes are kept.
func FileURI(absPath string) string {
	p := filepath.ToSlash(absPath)

	// Windows drive paths need a leading slash: file:///C:/dir
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
