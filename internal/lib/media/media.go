// Package media searches YouTube and downloads video or audio streams.
package media

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxFileNameBytes = 255
	watchURLPrefix   = "https://www.youtube.com/watch?v="
)

var videoIDPattern = regexp.MustCompile(
	`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// Video identifies one YouTube video.
type Video struct {
	ID    string `json:"video_id"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// WatchURL returns the canonical watch link of a video id.
func WatchURL(id string) string {
	return watchURLPrefix + id
}

// ExtractVideoID returns the 11 character id embedded in a YouTube URL,
// or "" when rawURL does not contain one.
func ExtractVideoID(rawURL string) string {
	m := videoIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// fileName builds "<title><ext>" with characters that are invalid on
// common filesystems replaced by '_', limited to 255 bytes. An empty
// title falls back to fallback.
func fileName(title, fallback, ext string) string {
	base := sanitize(strings.TrimSpace(title))
	if base == "" {
		base = fallback
	}
	return truncateBytes(base, maxFileNameBytes-len(ext)) + ext
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, name)
}

func truncateBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
