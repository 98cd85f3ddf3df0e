package utils

import "regexp"

// upiPattern matches a UPI VPA: 2-256 chars of alphanumeric/dot/dash/underscore,
// an @, then a 2-64 letter provider handle (e.g. "yourname@paytm").
var upiPattern = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}$`)

// IsValidUPIID reports whether the given string is a well-formed UPI ID
func IsValidUPIID(upiID string) bool {
	return upiPattern.MatchString(upiID)
}
