// Package validation implements the field-level rules applied to raw
// registration and login input. Every check is a pure function that either
// succeeds silently or fails with a typed domain error; callers run the
// checks in a fixed order and stop at the first failure.
package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	domainerrors "hirehub/internal/domain/errors"
)

var (
	// Local part restricted to alphanumerics plus +_.- with a non-empty domain.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@.+$`)

	// Optional leading +, first significant digit 1-9, then 7 to 14 more digits.
	phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{7,14}$`)
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// Email checks the basic local@domain shape of an email address.
// Uniqueness against the credential store is the engine's concern.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return domainerrors.ErrInvalidEmail.WithDetails("email")
	}

	return nil
}

// Password enforces the password strength policy: minimum length, at least
// one lower-case letter, one upper-case letter, one digit, one symbol
// (such as @#$%^&+=!), and no whitespace anywhere.
func Password(password string) error {
	if len(password) < minPasswordLength {
		return domainerrors.ErrWeakPassword
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return domainerrors.ErrWeakPassword
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return domainerrors.ErrWeakPassword
	}

	return nil
}

// PhoneNumber checks the international phone format: optional leading +,
// 8 to 15 significant digits, no leading zero.
func PhoneNumber(phone string) error {
	if !phonePattern.MatchString(phone) {
		return domainerrors.ErrInvalidPhoneNumber.WithDetails("phoneNumber")
	}

	return nil
}

// Required fails when the value is empty or whitespace-only.
func Required(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.ErrMissingField.WithDetails(field)
	}

	return nil
}

// CompanyRegistration checks the company-specific mandatory fields.
func CompanyRegistration(companyName, industry string) error {
	if err := Required(companyName, "companyName"); err != nil {
		return err
	}

	return Required(industry, "industry")
}

// URL is a no-op for blank values; otherwise the value must parse as an
// absolute URL with both scheme and authority. No network access is performed.
func URL(raw, field string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return domainerrors.ErrInvalidURL.WithDetails(field)
	}

	return nil
}
