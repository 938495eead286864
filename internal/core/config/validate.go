package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks that the configuration is structurally valid. It returns
// criterio.FieldErrors listing every invalid field.
func (c *Config) Validate() error {
	var errs criterio.FieldErrors

	errs = append(errs, c.validateTheme()...)

	if c.Motion.ExitMs < 0 {
		errs = append(errs, criterio.FieldError{
			Field: "motion.exit_ms",
			Err:   fmt.Errorf("must not be negative"),
		})
	}
	if c.Motion.ExitMs > 5000 {
		errs = append(errs, criterio.FieldError{
			Field: "motion.exit_ms",
			Err:   fmt.Errorf("%dms is longer than the 5000ms limit", c.Motion.ExitMs),
		})
	}

	for i, pattern := range c.Docs.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, criterio.FieldError{
				Field: fmt.Sprintf("docs.patterns[%d]", i),
				Err:   fmt.Errorf("invalid glob pattern %q", pattern),
			})
		}
	}

	for key, kb := range c.Keybindings {
		if kb.Action == "" {
			errs = append(errs, criterio.FieldError{
				Field: fmt.Sprintf("keybindings.%s", key),
				Err:   fmt.Errorf("must have an action"),
			})
			continue
		}
		if !isValidAction(kb.Action) {
			errs = append(errs, criterio.FieldError{
				Field: fmt.Sprintf("keybindings.%s", key),
				Err:   fmt.Errorf("invalid action %q", kb.Action),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (c *Config) validateTheme() criterio.FieldErrors {
	var errs criterio.FieldErrors

	colors := []struct {
		field string
		value string
	}{
		{"theme.accent", c.Theme.Accent},
		{"theme.text", c.Theme.Text},
		{"theme.muted", c.Theme.Muted},
		{"theme.surface", c.Theme.Surface},
	}
	for _, color := range colors {
		if color.value == "" {
			continue
		}
		if !hexColorRe.MatchString(color.value) {
			errs = append(errs, criterio.FieldError{
				Field: color.field,
				Err:   fmt.Errorf("%q is not a #rrggbb color", color.value),
			})
		}
	}
	return errs
}

// ValidateDeep performs comprehensive validation of the configuration.
// Unlike Validate(), this also checks file access and expands the docs
// patterns. Non-fatal findings are collected as warnings, readable via
// Warnings() afterward.
func (c *Config) ValidateDeep(configPath string) error {
	c.warnings = nil

	errs := append(criterio.FieldErrors{}, c.fieldErrors()...)
	errs = append(errs, c.validateFileAccess(configPath)...)
	c.validateDocsExpansion()

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Warnings returns the non-fatal findings from the last ValidateDeep call.
func (c *Config) Warnings() []ValidationWarning {
	return c.warnings
}

func (c *Config) fieldErrors() criterio.FieldErrors {
	var fieldErrs criterio.FieldErrors
	if err := c.Validate(); err != nil {
		errors.As(err, &fieldErrs)
	}
	return fieldErrs
}

func (c *Config) validateFileAccess(configPath string) criterio.FieldErrors {
	var errs criterio.FieldErrors

	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil {
			if info.IsDir() {
				errs = append(errs, criterio.FieldError{
					Field: "config_file",
					Err:   fmt.Errorf("%s is a directory, not a file", configPath),
				})
			}
		} else if !os.IsNotExist(err) {
			errs = append(errs, criterio.FieldError{
				Field: "config_file",
				Err:   fmt.Errorf("cannot access %s: %v", configPath, err),
			})
		} else {
			c.warnings = append(c.warnings, ValidationWarning{
				Category: "File Access",
				Item:     "config file",
				Message:  fmt.Sprintf("%s not found, using defaults", configPath),
			})
		}
	}

	return errs
}

func (c *Config) validateDocsExpansion() {
	for i, pattern := range c.Docs.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			// Already reported as a field error.
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithNoFollow())
		if err != nil || len(matches) == 0 {
			c.warnings = append(c.warnings, ValidationWarning{
				Category: "Docs",
				Item:     fmt.Sprintf("pattern %d", i),
				Message:  fmt.Sprintf("%q matches no files", pattern),
			})
		}
	}
}
