// Package profiles provides the registered language profiles used to render weekly stubs.
// The profile table is stored as YAML and embedded at compile time.
package profiles

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/weekly-stubs/internal/types"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultProfiles []byte

// document is the on-disk shape of a profile table.
type document struct {
	Profiles []types.LanguageProfile `yaml:"profiles" validate:"required,min=1,dive"`
}

var loadDefault = sync.OnceValues(func() ([]types.LanguageProfile, error) {
	return Parse(defaultProfiles)
})

// Default returns the built-in profiles in generation order.
// The embedded table is parsed once; callers must not modify the returned slice.
func Default() ([]types.LanguageProfile, error) {
	return loadDefault()
}

// Parse decodes and validates a YAML profile table.
func Parse(data []byte) ([]types.LanguageProfile, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse profiles YAML: %w", err)
	}

	if err := newValidator().Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid profiles: %w", err)
	}

	seen := make(map[string]bool, len(doc.Profiles))
	for _, p := range doc.Profiles {
		if seen[p.Lang] {
			return nil, fmt.Errorf("invalid profiles: duplicate language %q", p.Lang)
		}
		seen[p.Lang] = true
	}

	return doc.Profiles, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Language codes become directory and file name segments, so they must be
	// well-formed BCP 47 tags written exactly as given.
	_ = v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		tag, err := language.Parse(code)
		return err == nil && tag.String() == code
	})
	return v
}
