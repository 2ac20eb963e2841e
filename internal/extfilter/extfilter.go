// Package extfilter decides which file names survive the whitelist and
// blacklist extension rules.
package extfilter

import "strings"

// Filter holds the whitelist and blacklist extension sets.
type Filter struct {
	whitelist map[string]struct{}
	blacklist map[string]struct{}
}

// New creates a Filter. Extensions are compared case-insensitively;
// an empty list places no restriction.
func New(whitelist, blacklist []string) *Filter {
	return &Filter{
		whitelist: toSet(whitelist),
		blacklist: toSet(blacklist),
	}
}

func toSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = struct{}{}
	}
	return set
}

// Allows checks an extension against the whitelist first and then the
// blacklist, so a blacklisted extension is rejected even when whitelisted.
func (f *Filter) Allows(ext string) bool {
	ext = strings.ToLower(ext)

	if len(f.whitelist) > 0 {
		if _, ok := f.whitelist[ext]; !ok {
			return false
		}
	}

	if len(f.blacklist) > 0 {
		if _, ok := f.blacklist[ext]; ok {
			return false
		}
	}

	return true
}

// AllowsFile checks the extension of a file name.
func (f *Filter) AllowsFile(name string) bool {
	return f.Allows(Extension(name))
}

// Extension returns the lowercased suffix starting at the last dot of name,
// or "" when name has no dot.
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i == -1 {
		return ""
	}
	return strings.ToLower(name[i:])
}

// StripExtension removes the suffix starting at the last dot of name.
func StripExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i == -1 {
		return name
	}
	return name[:i]
}

// ParseList splits a comma-separated list such as ".txt, .PY" into
// trimmed, lowercased items. Empty items are dropped.
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var items []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, strings.ToLower(part))
	}
	return items
}
