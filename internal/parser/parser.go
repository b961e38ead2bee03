package parser

import (
	"path/filepath"
	"strings"
)

// DefaultExtensions lists the file extensions treated as markdown documents.
var DefaultExtensions = []string{".md"}

// SupportedExtensions lists every extension the markdown parser can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// HasExtension reports whether filename ends in one of exts (case-insensitive).
// An empty exts falls back to DefaultExtensions.
func HasExtension(filename string, exts []string) bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
