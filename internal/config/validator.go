package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "balance.team_count")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidOutputFormats returns the list of valid output formats
func ValidOutputFormats() []string {
	return []string{"table", "json"}
}

// ValidUnratedPolicies returns the list of valid unrated-player policies
func ValidUnratedPolicies() []string {
	return []string{"report", "default"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateBalance()...)
	errors = append(errors, c.validateRatings()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateBalance validates the BalanceConfig
func (c *Config) validateBalance() []ValidationError {
	var errors []ValidationError

	if c.Balance.TeamCount < 1 {
		errors = append(errors, ValidationError{
			Field:   "balance.team_count",
			Value:   c.Balance.TeamCount,
			Message: "must be at least 1",
		})
	}

	// Trials are cheap but unbounded budgets usually mean a typo
	const maxTrialsLimit = 10_000_000
	if c.Balance.MaxTrials < 0 {
		errors = append(errors, ValidationError{
			Field:   "balance.max_trials",
			Value:   c.Balance.MaxTrials,
			Message: "must be non-negative (0 disables optimization)",
		})
	}
	if c.Balance.MaxTrials > maxTrialsLimit {
		errors = append(errors, ValidationError{
			Field:   "balance.max_trials",
			Value:   c.Balance.MaxTrials,
			Message: fmt.Sprintf("exceeds maximum of %d", maxTrialsLimit),
		})
	}

	return errors
}

// validateRatings validates the RatingsConfig
func (c *Config) validateRatings() []ValidationError {
	var errors []ValidationError

	if c.Ratings.Delimiter != "" && utf8.RuneCountInString(c.Ratings.Delimiter) != 1 {
		errors = append(errors, ValidationError{
			Field:   "ratings.delimiter",
			Value:   c.Ratings.Delimiter,
			Message: "must be a single character",
		})
	}

	if c.Ratings.UnratedPolicy != "" && !slices.Contains(ValidUnratedPolicies(), c.Ratings.UnratedPolicy) {
		errors = append(errors, ValidationError{
			Field:   "ratings.unrated_policy",
			Value:   c.Ratings.UnratedPolicy,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidUnratedPolicies(), ", ")),
		})
	}

	return errors
}

// validateOutput validates the OutputConfig
func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError

	if c.Output.Format != "" && !slices.Contains(ValidOutputFormats(), c.Output.Format) {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidOutputFormats(), ", ")),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
