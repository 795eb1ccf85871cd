package git

import (
	"fmt"
	"strings"
	"unicode"
)

// validateRefArg checks that name can be passed to git as a branch name
// argument. It follows git-check-ref-format, plus a leading '-' is
// rejected so the name is never parsed as an option.
func validateRefArg(name string) error {
	if name == "" {
		return fmt.Errorf("branch name cannot be empty")
	}

	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("branch name cannot start with '-'")
	}
	if strings.HasPrefix(name, ".") || strings.Contains(name, "/.") {
		return fmt.Errorf("branch name components cannot start with '.'")
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("branch name cannot start or end with '/'")
	}
	if strings.HasSuffix(name, ".lock") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("branch name cannot end with '.lock' or '.'")
	}

	for _, seq := range []string{"..", "//", "@{"} {
		if strings.Contains(name, seq) {
			return fmt.Errorf("branch name cannot contain '%s'", seq)
		}
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return fmt.Errorf("branch name cannot contain whitespace or control characters")
		}
		if strings.ContainsRune(`~^:?*[\`, r) {
			return fmt.Errorf("branch name cannot contain '%c'", r)
		}
	}

	if name == "@" {
		return fmt.Errorf("branch name cannot be '@'")
	}

	return nil
}
