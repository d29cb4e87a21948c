// Package naming validates and generates instance names. Names are exposed
// as subdomains, so the rules follow hostname label restrictions on top of
// the configured reserved-name list.
package naming

import (
	"fmt"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

const maxNameLength = 63

// Validator checks instance names against the configured prefix and
// reserved-name list.
type Validator struct {
	prefix    string
	forbidden map[string]struct{}
}

// NewValidator builds a validator. Forbidden names are matched
// case-insensitively against the unprefixed name.
func NewValidator(prefix string, forbiddenNames []string) *Validator {
	forbidden := make(map[string]struct{}, len(forbiddenNames))
	for _, name := range forbiddenNames {
		forbidden[strings.ToLower(name)] = struct{}{}
	}
	return &Validator{prefix: prefix, forbidden: forbidden}
}

// Apply prefixes a raw name unless it already carries the prefix.
func (v *Validator) Apply(name string) string {
	if v.prefix == "" || strings.HasPrefix(name, v.prefix) {
		return name
	}
	return v.prefix + name
}

// Validate checks a raw (unprefixed) instance name.
func (v *Validator) Validate(name string) error {
	lowered := strings.ToLower(name)
	if lowered != name {
		return fmt.Errorf("instance name %q must be lowercase", name)
	}
	if len(name) == 0 || len(v.Apply(name)) > maxNameLength {
		return fmt.Errorf("instance name %q must be 1-%d characters including the prefix", name, maxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("instance name %q may only contain lowercase letters, digits and inner hyphens", name)
	}
	if _, ok := v.forbidden[lowered]; ok {
		return fmt.Errorf("instance name %q is reserved", name)
	}
	return nil
}
