package component

import "errors"

// The messages below are matched as substrings by existing consumers and are
// kept verbatim, capitalisation included.
//
//nolint:staticcheck // ST1005
var (
	// ErrInvalidInput is returned for an empty PURL or a non-string value.
	ErrInvalidInput = errors.New("PURL must be a non-empty string")
	// ErrInvalidPurl is returned, wrapped together with the parser's error, when
	// the PURL cannot be parsed.
	ErrInvalidPurl = errors.New("Invalid PURL format")
	// ErrMissingQualifier is returned for an OCI PURL without a repository_url.
	ErrMissingQualifier = errors.New("Missing repository_url in OCI PURL")
	// ErrMalformedQualifier is returned for an OCI PURL whose repository_url has no path.
	ErrMalformedQualifier = errors.New("Invalid repository_url in OCI PURL: insufficient path components")
)

// KindOf names the error kind of err, or returns "" when err did not come from this package
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "InvalidInputError"
	case errors.Is(err, ErrInvalidPurl):
		return "InvalidPurlError"
	case errors.Is(err, ErrMissingQualifier):
		return "MissingQualifierError"
	case errors.Is(err, ErrMalformedQualifier):
		return "MalformedQualifierError"
	}
	return ""
}
