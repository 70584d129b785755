package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/facetkit/facet/internal/ui/render"
	faceterrors "github.com/facetkit/facet/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	knownSlots = map[string]struct{}{
		render.SlotSurface: {},
		render.SlotText:    {},
		render.SlotMuted:   {},
		render.SlotAccent:  {},
		render.SlotInfo:    {},
		render.SlotSuccess: {},
		render.SlotWarn:    {},
		render.SlotDanger:  {},
	}

	knownGlyphs = map[string]struct{}{
		render.GlyphPlus:  {},
		render.GlyphMinus: {},
		render.GlyphDot:   {},
		render.GlyphCheck: {},
		render.GlyphCross: {},
		render.GlyphInfo:  {},
		render.GlyphWarn:  {},
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateTheme performs schema and cross-field validation on a theme
// definition.
func ValidateTheme(theme *ThemeFile) error {
	if theme == nil {
		return faceterrors.NewValidationError("theme", "theme is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(theme); err != nil {
		return convertValidationError(err)
	}

	if theme.Extends == theme.Name {
		return faceterrors.NewValidationError("extends", fmt.Sprintf("theme %q cannot extend itself", theme.Name), nil)
	}

	for slot := range theme.Colors {
		if _, ok := knownSlots[slot]; !ok {
			return faceterrors.NewValidationError("colors."+slot, fmt.Sprintf("unknown color slot %q", slot), nil)
		}
	}

	for name, mark := range theme.Glyphs {
		if _, ok := knownGlyphs[name]; !ok {
			return faceterrors.NewValidationError("glyphs."+name, fmt.Sprintf("unknown glyph name %q", name), nil)
		}
		if mark == "" {
			return faceterrors.NewValidationError("glyphs."+name, "glyph mark is empty", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return faceterrors.NewValidationError(field, msg, err)
	}

	return faceterrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
