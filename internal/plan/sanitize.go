package plan

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// reserved covers the union of characters that are invalid somewhere among
// the filesystems recovered media ends up on (NTFS, exFAT, SMB shares).
const reserved = `<>:"/\|?*`

// SanitizeComponent rewrites a single path component so it is valid on any
// target filesystem: reserved and control characters become underscores,
// leading/trailing dots and spaces are stripped, and the result is truncated
// to maxLen runes. When keepExt is set the extension survives truncation.
// Components that sanitize away entirely become the placeholder.
func SanitizeComponent(name string, maxLen int, placeholder string, keepExt bool) string {
	cleaned := norm.NFC.String(name)

	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(reserved, r) {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}

	cleaned = strings.Trim(b.String(), ". ")
	cleaned = truncateComponent(cleaned, maxLen, keepExt)
	cleaned = strings.Trim(cleaned, ". ")
	if cleaned == "" {
		return placeholder
	}
	return cleaned
}

func truncateComponent(name string, maxLen int, keepExt bool) string {
	if maxLen <= 0 {
		return name
	}
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	if !keepExt {
		return string(runes[:maxLen])
	}

	ext := filepath.Ext(name)
	extRunes := []rune(ext)
	if len(extRunes) >= maxLen {
		// Degenerate extension; cutting it is the only option left.
		return string(runes[:maxLen])
	}
	stem := runes[:len(runes)-len(extRunes)]
	keep := maxLen - len(extRunes)
	if keep > len(stem) {
		keep = len(stem)
	}
	return string(stem[:keep]) + ext
}
