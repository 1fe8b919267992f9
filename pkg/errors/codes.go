package errors

// Error codes for categorizing configuration errors.
const (
	// CodeOK indicates success (not an error).
	CodeOK = "OK"

	// CodeNotFound indicates no config file was found walking to the
	// filesystem root.
	CodeNotFound = "NOT_FOUND"

	// CodeKeyMissing indicates the config file parsed but the top-level
	// key is absent.
	CodeKeyMissing = "KEY_MISSING"

	// CodeParse indicates the config file is not a well-formed document.
	CodeParse = "PARSE"

	// CodeInvalidArgument indicates a construction error in the document:
	// a missing required field, an unknown severity name, or a malformed
	// format pattern.
	CodeInvalidArgument = "INVALID_ARGUMENT"

	// CodeInternal indicates an unexpected internal error.
	CodeInternal = "INTERNAL"
)

// ErrorCategory groups codes by how the configurator reacts to them.
type ErrorCategory string

const (
	// CategoryAbsorbed errors are logged to the diagnostic channel and
	// degrade to an empty result; they never reach the caller.
	CategoryAbsorbed ErrorCategory = "absorbed"

	// CategoryFatal errors abort the whole setup call.
	CategoryFatal ErrorCategory = "fatal"

	// CategoryNone is returned for CodeOK and unknown codes.
	CategoryNone ErrorCategory = "none"
)

// GetCategory returns the propagation category for a code. Discovery and
// schema errors are absorbed; construction errors are fatal.
func GetCategory(code string) ErrorCategory {
	switch code {
	case CodeNotFound, CodeKeyMissing, CodeParse:
		return CategoryAbsorbed
	case CodeInvalidArgument, CodeInternal:
		return CategoryFatal
	default:
		return CategoryNone
	}
}
