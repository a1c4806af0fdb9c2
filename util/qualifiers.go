package util

import (
	"net/url"
	"strings"
)

// DedupeQualifiers rewrites the qualifier section of a PURL so that every key
// appears at most once, keeping the first occurrence that carries a value.
// packageurl-go rejects repeated keys, so PURLs emitted by tools that repeat
// qualifiers are collapsed before parsing.
//
// Pairs the parser would reject anyway (bad escapes in the key or the value,
// semicolons) and pairs with empty values are passed through untouched so that
// parse errors are still reported and empty values are still treated as absent.
func DedupeQualifiers(purl string) string {
	rest, fragment, hasFragment := strings.Cut(purl, "#")
	base, query, hasQuery := strings.Cut(rest, "?")
	if !hasQuery || !strings.Contains(query, "&") {
		return purl
	}

	seen := make(map[string]bool)
	kept := make([]string, 0, strings.Count(query, "&")+1)

	for _, pair := range strings.Split(query, "&") {
		rawKey, value, _ := strings.Cut(pair, "=")
		if value == "" || strings.Contains(pair, ";") {
			kept = append(kept, pair)
			continue
		}

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			kept = append(kept, pair)
			continue
		}
		if _, err := url.QueryUnescape(value); err != nil {
			kept = append(kept, pair)
			continue
		}

		key = strings.ToLower(key)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, pair)
	}

	deduped := base + "?" + strings.Join(kept, "&")
	if hasFragment {
		deduped += "#" + fragment
	}
	return deduped
}
