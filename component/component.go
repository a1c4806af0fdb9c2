// Package component derives a component name from a package URL.
//
// Three rules apply, checked in order:
//
//   - pkg:oci PURLs use the first path segment of the repository_url qualifier:
//     pkg:oci/nginx@1.21.0?repository_url=docker.io/library -> library/nginx
//   - any other PURL with a non-empty rpmmod qualifier is prefixed by the module:
//     pkg:rpm/redhat/nginx@1.21.0?rpmmod=nginx -> nginx/nginx
//   - everything else is the bare package name: pkg:npm/lodash@4.17.21 -> lodash
//
// Functions in this package hold no state and are safe for concurrent use.
package component

import (
	"fmt"
	"strings"

	"github.com/ortelius/purl-component/model"
	"github.com/ortelius/purl-component/util"
)

const (
	typeOCI = "oci"

	qualifierRepositoryURL = "repository_url"
	qualifierRPMModule     = "rpmmod"
)

// ComponentFromPurl returns the component name for purl
func ComponentFromPurl(purl string) (string, error) {
	c, err := Resolve(purl)
	if err != nil {
		return "", err
	}
	return c.Component, nil
}

// FromValue is ComponentFromPurl for untyped input such as a decoded JSON value.
// nil and non-string values fail with ErrInvalidInput.
func FromValue(v any) (string, error) {
	c, err := ResolveValue(v)
	if err != nil {
		return "", err
	}
	return c.Component, nil
}

// ResolveValue is Resolve for untyped input
func ResolveValue(v any) (model.Component, error) {
	purl, ok := v.(string)
	if !ok {
		return model.Component{}, ErrInvalidInput
	}
	return Resolve(purl)
}

// Resolve parses purl and returns the component name together with the rule
// that produced it and the parsed fields.
func Resolve(purl string) (model.Component, error) {
	if purl == "" {
		return model.Component{}, ErrInvalidInput
	}

	parsed, err := util.ParsePURL(util.DedupeQualifiers(purl))
	if err != nil {
		return model.Component{}, fmt.Errorf("%w: %w", ErrInvalidPurl, err)
	}

	result := model.Component{
		Purl:   purl,
		Parsed: util.ToParsedPurl(parsed),
	}

	// oci takes precedence over rpmmod
	if result.Parsed.Type == typeOCI {
		name, err := ociComponent(result.Parsed)
		if err != nil {
			return model.Component{}, err
		}
		result.Component = name
		result.Rule = model.RuleOCI
		return result, nil
	}

	if module := result.Parsed.Qualifier(qualifierRPMModule); module != "" {
		result.Component = module + "/" + result.Parsed.Name
		result.Rule = model.RuleRPMModule
		return result, nil
	}

	result.Component = result.Parsed.Name
	result.Rule = model.RuleDefault
	return result, nil
}

// ociComponent prefixes the name with the segment following the registry host
// in repository_url. Segments after that one are ignored.
func ociComponent(p model.ParsedPurl) (string, error) {
	repositoryURL := p.Qualifier(qualifierRepositoryURL)
	if repositoryURL == "" {
		return "", ErrMissingQualifier
	}

	segments := strings.Split(repositoryURL, "/")
	if len(segments) < 2 {
		return "", ErrMalformedQualifier
	}

	return segments[1] + "/" + p.Name, nil
}
