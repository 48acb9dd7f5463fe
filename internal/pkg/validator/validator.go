// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the stock tags (e.g. `validate:"required,eth_addr"`) it registers
// the wallet-specific tag `sol_addr`, which accepts base-58 encoded 32-byte
// Solana public keys. The package is initialized automatically and safe to
// use directly.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Address': value '0x' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// solanaPublicKeySize is the decoded length of a Solana address.
const solanaPublicKeySize = 32

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// RegisterValidation only fails on an empty tag or nil func.
	_ = validator.RegisterValidation("sol_addr", isSolanaAddress)
}

// isSolanaAddress reports whether the field is a base-58 string decoding to 32 bytes.
func isSolanaAddress(fl gvalidator.FieldLevel) bool {
	decoded, err := base58.Decode(fl.Field().String())
	return err == nil && len(decoded) == solanaPublicKeySize
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
//
// Example usage:
//
//	type Input struct {
//	    Address string `validate:"required,eth_addr"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
