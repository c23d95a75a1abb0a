package utils

import "regexp"

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`\d`)
	specialRegex   = regexp.MustCompile(`[@$!%*?&.,_-]`)
)

// ValidatePassword enforces the signup password policy: at least 8
// characters with upper case, lower case, a digit and a special character.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	if !uppercaseRegex.MatchString(password) {
		return false
	}
	if !lowercaseRegex.MatchString(password) {
		return false
	}
	if !digitRegex.MatchString(password) {
		return false
	}
	if !specialRegex.MatchString(password) {
		return false
	}
	return true
}
