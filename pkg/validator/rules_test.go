package validator_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blockhire/portal/pkg/validator"
)

// validateOne registers rule under field and returns the field's message.
func validateOne(field string, rule validator.Rule, value any) string {
	v := validator.New()
	v.AddRule(field, rule)
	return v.Validate(map[string]any{field: value}).Get(field)
}

func TestEmailRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"valid", "a@b.com", ""},
		{"subdomain", "jane.doe@mail.example.org", ""},
		{"missing at", "not-an-email", "Email format is invalid"},
		{"missing dot", "a@b", "Email format is invalid"},
		{"whitespace inside", "a b@c.com", "Email format is invalid"},
		{"no-break space inside", "a\u00a0b@c.com", "Email format is invalid"},
		{"byte order mark in domain", "a@b\ufeff.com", "Email format is invalid"},
		{"ideographic space in tld", "a@b.c\u3000om", "Email format is invalid"},
		{"empty", "", "Email is required"},
		{"missing", nil, "Email is required"},
		{"too long", strings.Repeat("a", 250) + "@b.com", "Email must be no more than 254 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validateOne("email", validator.EmailRule(), tt.value))
		})
	}
}

func TestPasswordRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"strong", "Abc123!@", ""},
		{"too short", "Abcdefg", "Password must be at least 8 characters"},
		{"no lowercase", "ABCDEFG1!", "Password must contain at least one lowercase letter"},
		{"no uppercase", "abcdefgh", "Password must contain at least one uppercase letter"},
		{"no digit", "Abcdefgh!", "Password must contain at least one number"},
		{"no special", "Abcdefg1", "Password must contain at least one special character"},
		{"unsupported special only", "Abcdefg1#", "Password must contain at least one special character"},
		{"too long", "Aa1!" + strings.Repeat("x", 125), "Password must be no more than 128 characters"},
		{"empty", "", "Password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validateOne("password", validator.PasswordRule(), tt.value))
		})
	}
}

func TestPasswordStrength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", validator.PasswordStrength("Secret1!"))
	assert.Equal(t, "Password must be at least 8 characters", validator.PasswordStrength(nil))
	assert.Equal(t, "Password must be at least 8 characters", validator.PasswordStrength("Ab1!"))
}

func TestLoginPasswordRule(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", validateOne("password", validator.LoginPasswordRule(), "x"))
	assert.Equal(t, "Password is required", validateOne("password", validator.LoginPasswordRule(), " "))
}

func TestConfirmPasswordRule(t *testing.T) {
	t.Parallel()

	v := validator.New()
	v.AddRule("confirmPassword", validator.ConfirmPasswordRule("Secret1!"))

	res := v.Validate(map[string]any{"password": "Secret1!", "confirmPassword": "Other"})
	assert.Equal(t, "Passwords do not match", res.Get("confirmPassword"))

	res = v.Validate(map[string]any{"confirmPassword": "Secret1!"})
	assert.True(t, res.IsValid)

	res = v.Validate(map[string]any{})
	assert.Equal(t, "Confirm Password is required", res.Get("confirmPassword"))
}

func TestNameRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"simple", "Ada", ""},
		{"apostrophe and hyphen", "O'Neil-Smith", ""},
		{"with space", "Mary Ann", ""},
		{"with no-break space", "Mary\u00a0Ann", ""},
		{"too short", "J", "First Name must be at least 2 characters"},
		{"digits", "J0hn", "First Name format is invalid"},
		{"too long", strings.Repeat("a", 51), "First Name must be no more than 50 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validateOne("firstName", validator.FirstNameRule(), tt.value))
		})
	}

	assert.Equal(t, "Last Name format is invalid", validateOne("lastName", validator.LastNameRule(), "L@st"))
}

func TestDateOfBirthRule(t *testing.T) {
	t.Parallel()

	now := func() time.Time { return time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC) }
	rule := validator.DateOfBirthRuleAt(now)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"adult", "1990-05-17", ""},
		{"exactly sixteen by year", "2010-12-31", ""},
		{"slash format", "05/17/1990", ""},
		{"timestamp", "1990-05-17T00:00:00Z", ""},
		{"too young", "2011-01-01", "You must be at least 16 years old"},
		{"future date fails age first", "2030-01-01", "You must be at least 16 years old"},
		{"over one hundred", "1925-01-01", "Invalid age"},
		{"one hundred", "1926-01-01", ""},
		{"garbage", "not-a-date", "Invalid date format"},
		{"empty", "", "Date of Birth is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validateOne("dateOfBirth", rule, tt.value))
		})
	}
}

func TestMobileRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"ten digits", "1234567890", ""},
		{"international", "+1234567890", ""},
		{"thirteen digits", "1234567890123", ""},
		{"leading zero", "0123456789", "Mobile Number format is invalid"},
		{"international leading zero", "+0123456789", "Mobile Number format is invalid"},
		{"nine digits passes pattern, fails count", "123456789", "Mobile number must be at least 10 digits"},
		{"sixteen digits passes pattern, fails count", "1234567890123456", "Mobile number cannot exceed 15 digits"},
		{"plus counts toward the limit", "+123456789012345", "Mobile number cannot exceed 15 digits"},
		{"seventeen digits", "12345678901234567", "Mobile Number format is invalid"},
		{"letters", "abc123456789", "Mobile Number format is invalid"},
		{"dashes", "123-456-7890", "Mobile Number format is invalid"},
		{"parentheses", "(123) 456-7890", "Mobile Number format is invalid"},
		{"double plus", "++1234567890", "Mobile Number format is invalid"},
		{"empty", "", "Mobile Number is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validateOne("mobile", validator.MobileRule(), tt.value))
		})
	}
}

func TestMobileDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", validator.MobileDigits("(123) 456-7890"))
	assert.Equal(t, "Mobile number must be at least 10 digits", validator.MobileDigits("123 456"))
	assert.Equal(t, "", validator.MobileDigits("123\u00a0456\u2009789\ufeff0"))
	assert.Equal(t, "Mobile number must be at least 10 digits", validator.MobileDigits("123\u00a0456\u00a0789"))
	assert.Equal(t, "Mobile number cannot exceed 15 digits", validator.MobileDigits("1234 5678 9012 3456"))
}

func TestLengthOnlyRules(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Address must be at least 10 characters", validateOne("address", validator.AddressRule(), "short"))
	assert.Equal(t, "Address must be no more than 500 characters", validateOne("address", validator.AddressRule(), strings.Repeat("a", 501)))
	assert.Equal(t, "", validateOne("address", validator.AddressRule(), "221B Baker Street"))

	assert.Equal(t, "Job Designation must be at least 2 characters", validateOne("jobDesignation", validator.JobDesignationRule(), "x"))
	assert.Equal(t, "", validateOne("jobDesignation", validator.JobDesignationRule(), "Engineer"))

	assert.Equal(t, "Department must be no more than 100 characters", validateOne("department", validator.DepartmentRule(), strings.Repeat("d", 101)))
	assert.Equal(t, "Department is required", validateOne("department", validator.DepartmentRule(), nil))
}

func TestLookupRules(t *testing.T) {
	t.Parallel()

	hash := strings.Repeat("ab", 32)

	assert.Equal(t, "", validateOne("empId", validator.EmployeeIDRule(), "EMP123456"))
	assert.Equal(t, "EmpId format is invalid", validateOne("empId", validator.EmployeeIDRule(), "123456"))
	assert.Equal(t, "EmpId must be no more than 20 characters", validateOne("empId", validator.EmployeeIDRule(), "EMP"+strings.Repeat("1", 18)))

	assert.Equal(t, "", validateOne("userHash", validator.UserHashRule(), hash))
	assert.Equal(t, "", validateOne("docHash", validator.DocumentHashRule(), strings.ToUpper(hash)))
	assert.Equal(t, "DocHash format is invalid", validateOne("docHash", validator.DocumentHashRule(), hash[:63]))
	assert.Equal(t, "DocHash format is invalid", validateOne("docHash", validator.DocumentHashRule(), hash[:63]+"g"))
}
