package spec

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

const PrefixMaxLen = 16

var (
	ErrBadRange       = errors.New("invalid range")
	ErrInvalidPrefix  = errors.New("invalid prefix")
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// regex for valid prefix characters (must start with a letter)
var validPrefixChars = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidatePrefix checks that the code prefix is printable and scannable:
// non-empty, at most PrefixMaxLen characters, starting with a letter and
// containing only letters, digits, hyphens and underscores.
func ValidatePrefix(prefix string) error {
	if prefix == "" || len(prefix) > PrefixMaxLen {
		return fmt.Errorf("%w: %q (1-%d characters)", ErrInvalidPrefix, prefix, PrefixMaxLen)
	}
	if !validPrefixChars.MatchString(prefix) {
		return fmt.Errorf("%w: %q (letters, digits, '-' and '_' only, starting with a letter)", ErrInvalidPrefix, prefix)
	}
	return nil
}

// NormalizeBaseURL validates the URL that label codes get appended to for
// the QR payload. The host is converted to its IDNA A-label form so the
// encoded URL survives any scanner, and a trailing slash is ensured.
// An empty input stays empty: codes are then encoded bare.
func NormalizeBaseURL(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q (http or https only)", ErrInvalidBaseURL, raw)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: %q (missing host)", ErrInvalidBaseURL, raw)
	}

	host, err := idna.Lookup.ToASCII(u.Hostname())
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, raw, err)
	}
	if port := u.Port(); port != "" {
		u.Host = host + ":" + port
	} else {
		u.Host = host
	}

	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	return u.String(), nil
}
