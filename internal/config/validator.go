package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	storyIDPattern = regexp.MustCompile(`^[a-z0-9_-]+(/[a-z0-9_-]+)*$`)
	themeExts      = map[string]struct{}{".yaml": {}, ".yml": {}, ".toml": {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("story_id", func(fl validator.FieldLevel) bool {
			return storyIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if strings.TrimSpace(path) == "" || strings.Contains(path, "\x00") {
				return false
			}
			_, ok := themeExts[strings.ToLower(filepath.Ext(path))]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig checks field values. Paths are not checked for existence.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return loomerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return loomerrors.NewValidationError(field, msg, err)
	}

	return loomerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName converts StartStory to start_story.
func yamlishFieldName(fe validator.FieldError) string {
	var b strings.Builder
	for i, r := range fe.Field() {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
