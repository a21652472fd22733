package sqlclient

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidDescriptor    = errors.New("invalid connection descriptor")
	ErrMissingRequired      = errors.New("required credential missing")
	ErrUnsupportedAuthType  = errors.New("unsupported auth type")
	ErrUnsupportedDialect   = errors.New("unsupported dialect")
	ErrUnsupportedParameter = errors.New("unsupported driver parameter")
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Descriptor is the static description of how to build a connection string
// for one database dialect.
type Descriptor struct {
	Template string            // URL template with {name} placeholders
	Required []string          // placeholder names the caller must supply
	Defaults map[string]string // optional driver parameters appended as query values
}

// Placeholders returns the placeholder names of the template in the order they appear.
func (d Descriptor) Placeholders() []string {
	matches := placeholderPattern.FindAllStringSubmatch(d.Template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Dialect returns the template scheme, e.g. "oracle+oracledb".
func (d Descriptor) Dialect() string {
	scheme, _, found := strings.Cut(d.Template, "://")
	if !found {
		return ""
	}
	return scheme
}

// DialectBase returns the dialect without its driver suffix, e.g. "oracle".
func (d Descriptor) DialectBase() string {
	base, _, _ := strings.Cut(d.Dialect(), "+")
	return base
}

// Validate checks that the required list and the template placeholders agree
// and that defaults never shadow a required field or the auth discriminator.
func (d Descriptor) Validate() error {
	if d.Dialect() == "" {
		return fmt.Errorf("%w: template %q has no scheme", ErrInvalidDescriptor, d.Template)
	}

	placeholders := map[string]bool{}
	for _, name := range d.Placeholders() {
		placeholders[name] = true
	}

	required := map[string]bool{}
	for _, name := range d.Required {
		if !placeholders[name] {
			return fmt.Errorf("%w: required field %q is not a template placeholder", ErrInvalidDescriptor, name)
		}
		required[name] = true
	}

	for name := range placeholders {
		if !required[name] {
			return fmt.Errorf("%w: placeholder %q is not listed as required", ErrInvalidDescriptor, name)
		}
	}

	for key := range d.Defaults {
		if required[key] || key == AuthTypeKey {
			return fmt.Errorf("%w: default %q overlaps a reserved key", ErrInvalidDescriptor, key)
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate a shared descriptor.
func (d Descriptor) Clone() Descriptor {
	c := Descriptor{
		Template: d.Template,
		Required: append([]string(nil), d.Required...),
		Defaults: make(map[string]string, len(d.Defaults)),
	}
	for k, v := range d.Defaults {
		c.Defaults[k] = v
	}
	return c
}
