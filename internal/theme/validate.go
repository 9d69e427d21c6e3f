package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

// SupportedVersions is the document version range this build understands.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Hex colours (#rgb, #rrggbb) or ANSI 256 indexes.
	colourPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[0-9]{1,3})$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			_, err := semver.StrictNewVersion(fl.Field().String())
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks document metadata, the version range, palette keys and
// colour values, spacing sizes, and that both modes resolve.
func Validate(doc *Document) error {
	if doc == nil {
		return loomerrors.NewValidationError("theme", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	version, _ := semver.StrictNewVersion(doc.Version)
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return loomerrors.NewValidationError("version", fmt.Sprintf("version %s is not supported (want %s)", version, SupportedVersions), nil)
	}

	if len(doc.Light) == 0 {
		return loomerrors.NewValidationError("light", "at least one light token is required", nil)
	}

	for _, mode := range []Mode{ModeLight, ModeDark} {
		tokens, err := doc.Resolve(mode)
		if err != nil {
			return err
		}
		if err := validatePalette(mode, tokens); err != nil {
			return err
		}
		var scratch components.SpacingTable
		for _, prefix := range []string{"spacing.padding.", "spacing.margin."} {
			if err := applySpacing(&scratch, tokens, prefix); err != nil {
				return err
			}
		}
	}
	return nil
}

func validatePalette(mode Mode, tokens Tokens) error {
	palette := components.DefaultPalette()
	for _, key := range tokens.Keys() {
		rest, ok := strings.CutPrefix(key, "palette.")
		if !ok {
			continue
		}
		field := string(mode) + "." + key

		slot, role, ok := strings.Cut(rest, ".")
		if !ok {
			return loomerrors.NewValidationError(field, "palette entries must be palette.<slot>.<role>", nil)
		}
		set, ok := palette.Slot(slot)
		if !ok {
			return loomerrors.NewValidationError(field, fmt.Sprintf("unknown palette slot %q", slot), nil)
		}
		if _, ok := set.Role(role); !ok {
			return loomerrors.NewValidationError(field, fmt.Sprintf("unknown colour role %q", role), nil)
		}
		if !colourPattern.MatchString(tokens[key]) {
			return loomerrors.NewValidationError(field, fmt.Sprintf("%q is not a colour", tokens[key]), nil)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := strings.ToLower(ve.Field())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return loomerrors.NewValidationError(field, msg, err)
	}
	return loomerrors.NewValidationError("theme", err.Error(), err)
}
