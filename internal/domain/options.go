package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CleaningOptions are the per-file choices of one processing pass.
// A nil Columns keeps every column, an empty Format skips the export.
type CleaningOptions struct {
	DropDuplicates bool     `json:"drop_duplicates" yaml:"drop_duplicates"`
	FillMissing    bool     `json:"fill_missing"    yaml:"fill_missing"`
	Columns        []string `json:"columns"         yaml:"columns"         validate:"omitempty,dive,required"`
	Chart          bool     `json:"chart"           yaml:"chart"`
	Format         Format   `json:"format"          yaml:"format"          validate:"omitempty,oneof=csv xlsx"`
}

func (o CleaningOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}

func (o CleaningOptions) Cleans() bool {
	return o.DropDuplicates || o.FillMissing
}

// Theme is the cosmetic display mode. Only renderers read it.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	case "":
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}
