package types

// LanguageProfile is the template set for one output language. Profiles are
// loaded once at start-up and never mutated.
type LanguageProfile struct {
	Lang                string `yaml:"lang" validate:"required,langcode"`
	TitleTemplate       string `yaml:"title" validate:"required"`
	DescriptionTemplate string `yaml:"description" validate:"required"`
	Body                string `yaml:"body" validate:"required"`
}
