package validator

import (
	"regexp"
	"time"
	"unicode/utf8"
)

// space matches what browsers treat as whitespace in patterns: ASCII
// whitespace, vertical tab, Unicode separators and the byte order mark.
const space = `\s\v\p{Z}\x{FEFF}`

var (
	emailPattern    = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	namePattern     = regexp.MustCompile(`^[a-zA-Z` + space + `'-]+$`)
	mobilePattern   = regexp.MustCompile(`^[\+]?[1-9][\d]{0,15}$`)
	employeeIDRegex = regexp.MustCompile(`^EMP[0-9]+$`)
	sha256HexRegex  = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)

	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`\d`)
	specialRegex   = regexp.MustCompile(`[@$!%*?&]`)

	mobileSeparators = regexp.MustCompile(`[` + space + `\-\(\)]`)
)

// Date layouts accepted for date of birth, most common first.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"01/02/2006",
	"2006/01/02",
}

// EmailRule returns the registration/login email rule.
func EmailRule() Rule {
	return Rule{
		Required:  true,
		Pattern:   emailPattern,
		MaxLength: 254,
	}
}

// PasswordRule returns the registration password policy.
func PasswordRule() Rule {
	return Rule{
		Required:  true,
		MinLength: 8,
		MaxLength: 128,
		Custom:    PasswordStrength,
	}
}

// LoginPasswordRule only requires a non-empty password. Login pages register
// it over PasswordRule so existing accounts are not held to the current policy.
func LoginPasswordRule() Rule {
	return Rule{
		Required:  true,
		MinLength: 1,
	}
}

// PasswordStrength reports the first unmet password requirement.
func PasswordStrength(value any) string {
	s := String(value)
	switch {
	case utf8.RuneCountInString(s) < 8:
		return "Password must be at least 8 characters"
	case !lowercaseRegex.MatchString(s):
		return "Password must contain at least one lowercase letter"
	case !uppercaseRegex.MatchString(s):
		return "Password must contain at least one uppercase letter"
	case !digitRegex.MatchString(s):
		return "Password must contain at least one number"
	case !specialRegex.MatchString(s):
		return "Password must contain at least one special character"
	}
	return ""
}

// ConfirmPasswordRule compares the confirmation against the password value
// the form currently holds. Re-register it whenever the password changes.
func ConfirmPasswordRule(password string) Rule {
	return Rule{
		Required: true,
		Custom: func(value any) string {
			if String(value) != password {
				return "Passwords do not match"
			}
			return ""
		},
	}
}

func nameRule() Rule {
	return Rule{
		Required:  true,
		MinLength: 2,
		MaxLength: 50,
		Pattern:   namePattern,
	}
}

// FirstNameRule returns the profile first name rule.
func FirstNameRule() Rule { return nameRule() }

// LastNameRule returns the profile last name rule.
func LastNameRule() Rule { return nameRule() }

// DateOfBirthRule checks the date of birth against the current time.
func DateOfBirthRule() Rule {
	return DateOfBirthRuleAt(time.Now)
}

// DateOfBirthRuleAt is DateOfBirthRule with an injectable clock.
func DateOfBirthRuleAt(now func() time.Time) Rule {
	return Rule{
		Required: true,
		Custom:   DateOfBirthCheck(now),
	}
}

// DateOfBirthCheck builds the age check used by DateOfBirthRuleAt.
// Age is the difference of calendar years, not a birthday-exact age.
func DateOfBirthCheck(now func() time.Time) func(value any) string {
	if now == nil {
		now = time.Now
	}
	return func(value any) string {
		date, ok := parseDate(String(value))
		if !ok {
			return "Invalid date format"
		}
		today := now()
		age := today.Year() - date.Year()
		switch {
		case age < 16:
			return "You must be at least 16 years old"
		case age > 100:
			return "Invalid age"
		case date.After(today):
			return "Date of birth cannot be in the future"
		}
		return ""
	}
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MobileRule applies the phone pattern first, then the digit count. The
// pattern already caps total length, so MobileDigits rarely fires on its own.
func MobileRule() Rule {
	return Rule{
		Required: true,
		Pattern:  mobilePattern,
		Custom:   MobileDigits,
	}
}

// MobileDigits checks the digit count after stripping spaces, hyphens and
// parentheses.
func MobileDigits(value any) string {
	cleaned := mobileSeparators.ReplaceAllString(String(value), "")
	n := utf8.RuneCountInString(cleaned)
	switch {
	case n < 10:
		return "Mobile number must be at least 10 digits"
	case n > 15:
		return "Mobile number cannot exceed 15 digits"
	}
	return ""
}

// AddressRule requires 10 to 500 characters.
func AddressRule() Rule {
	return Rule{
		Required:  true,
		MinLength: 10,
		MaxLength: 500,
	}
}

// JobDesignationRule requires 2 to 100 characters.
func JobDesignationRule() Rule {
	return Rule{
		Required:  true,
		MinLength: 2,
		MaxLength: 100,
	}
}

// DepartmentRule requires 2 to 100 characters.
func DepartmentRule() Rule {
	return Rule{
		Required:  true,
		MinLength: 2,
		MaxLength: 100,
	}
}

// EmployeeIDRule matches identifiers issued by the backend, e.g. EMP123456.
func EmployeeIDRule() Rule {
	return Rule{
		Required:  true,
		MaxLength: 20,
		Pattern:   employeeIDRegex,
	}
}

// UserHashRule matches the hex SHA-256 user hash handed out on registration.
func UserHashRule() Rule {
	return Rule{
		Required: true,
		Pattern:  sha256HexRegex,
	}
}

// DocumentHashRule matches the hex SHA-256 digest recorded for a document.
func DocumentHashRule() Rule {
	return Rule{
		Required: true,
		Pattern:  sha256HexRegex,
	}
}
