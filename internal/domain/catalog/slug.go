package catalog

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugAttempts bounds the suffix search for a free slug
const maxSlugAttempts = 100

// Slugify converts a name to a URL slug: accents are folded to ASCII,
// anything that is not a letter, digit, underscore or hyphen is dropped,
// whitespace and hyphen runs collapse to a single hyphen, and the result is
// lower-cased.
func Slugify(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r > unicode.MaxASCII:
			continue
		case r == ' ' || r == '\t' || r == '\n' || r == '-':
			pendingHyphen = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if pendingHyphen {
				b.WriteByte('-')
				pendingHyphen = false
			}
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-_")
}

// SlugExistsFunc reports whether a slug is already taken
type SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

// UniqueSlug derives a slug from name and appends -1, -2, ... until exists
// reports it free.
func UniqueSlug(ctx context.Context, name string, exists SlugExistsFunc) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "item"
	}

	candidate := base
	for i := 1; i <= maxSlugAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}
