package errors

import "errors"

// IsNotFound checks if an error indicates the config file was not found.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrConfigNotFound) || GetCode(err) == CodeNotFound
}

// IsKeyMissing checks if an error indicates the top-level key was absent.
func IsKeyMissing(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrKeyMissing) || GetCode(err) == CodeKeyMissing
}

// IsConstruction checks if an error is a fatal construction error.
func IsConstruction(err error) bool {
	if err == nil {
		return false
	}
	return GetCategory(GetCode(err)) == CategoryFatal
}

// GetCode extracts the error code from an error.
func GetCode(err error) string {
	if err == nil {
		return CodeOK
	}

	var customErr Error
	if errors.As(err, &customErr) {
		return customErr.Code()
	}

	switch {
	case errors.Is(err, ErrConfigNotFound):
		return CodeNotFound
	case errors.Is(err, ErrKeyMissing):
		return CodeKeyMissing
	default:
		return CodeInternal
	}
}

// GetMessage extracts a human-readable message from an error.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr Error
	if errors.As(err, &customErr) {
		return customErr.Message()
	}

	return err.Error()
}
