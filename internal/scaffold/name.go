package scaffold

import (
	"strings"
	"unicode"

	"github.com/forgebyte/forge/internal/errs"
)

// classSuffix is appended to the capitalized module name to form the
// generated configuration class, e.g. "billing" -> "BillingConfig".
const classSuffix = "Config"

// pythonReservedKeywords are names that cannot be used as module names.
// Generated modules are imported as Python packages, so the name must be a
// valid Python identifier.
var pythonReservedKeywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield",
}

// ValidateName checks that name is a valid module identifier: letters,
// digits, and underscores, not starting with a digit, and not a reserved
// keyword. Returns an INVALID_NAME error otherwise.
//
// Parameters:
//   - name: Candidate module name
//
// Returns:
//   - error: INVALID_NAME error when the name is rejected
func ValidateName(name string) error {
	if name == "" {
		return errs.New(errs.CodeInvalidName, "module name must not be empty")
	}

	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if unicode.IsDigit(r) {
			if i == 0 {
				return errs.Newf(errs.CodeInvalidName, "module name %q must not start with a digit", name)
			}
			continue
		}
		return errs.Newf(errs.CodeInvalidName, "module name %q contains invalid character %q", name, r)
	}

	for _, keyword := range pythonReservedKeywords {
		if name == keyword {
			return errs.Newf(errs.CodeInvalidName, "module name %q is a reserved keyword", name)
		}
	}

	return nil
}

// ClassName derives the generated configuration class name for a module:
// the capitalized module name plus a fixed suffix. Capitalization follows
// the boilerplate convention of uppercasing the first letter and lowercasing
// the rest, so "billing" becomes "BillingConfig".
func ClassName(name string) string {
	if name == "" {
		return classSuffix
	}

	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + classSuffix
}
