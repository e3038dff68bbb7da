package util

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const suffixLength = 5

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
)

// Slugify derives the base slug from a title: lowercased, special characters
// stripped, whitespace collapsed into single hyphens.
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateSlug appends a 5-character random suffix to the base slug.
// Collisions are possible; callers insert under a unique constraint and
// retry with a fresh suffix on conflict.
func GenerateSlug(title string) string {
	return Slugify(title) + "-" + randomSuffix()
}

func randomSuffix() string {
	b := make([]byte, suffixLength)
	max := big.NewInt(int64(len(suffixAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			b[i] = suffixAlphabet[0]
			continue
		}
		b[i] = suffixAlphabet[n.Int64()]
	}
	return string(b)
}
