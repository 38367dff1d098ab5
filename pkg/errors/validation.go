package errors

import (
	"os"
	"strings"
	"unicode"
)

// maxModIDLength mirrors the loader's own limit on mod identifiers.
const maxModIDLength = 64

// ValidateModID validates a mod identifier supplied on the command line,
// such as an --exclude or --check value.
//
// The rules are deliberately looser than the loader's naming convention
// so that real-world identifiers with dashes or dots still pass:
//   - No empty identifiers
//   - Maximum length of 64 characters
//   - No whitespace or control characters
func ValidateModID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidModID, "mod ID cannot be empty")
	}
	if len(id) > maxModIDLength {
		return New(ErrCodeInvalidModID, "mod ID too long (max %d characters): %q", maxModIDLength, id)
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidModID, "mod ID contains invalid characters: %q", id)
		}
	}
	return nil
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateDir checks that path names an existing directory.
// Returns ErrCodeFileNotFound if nothing exists at path and
// ErrCodeInvalidPath if it exists but is not a directory.
func ValidateDir(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return New(ErrCodeFileNotFound, "directory %s does not exist", path)
	}
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "stat %s", path)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "%s is not a directory", path)
	}
	return nil
}
