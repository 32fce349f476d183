package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/charstream/internal/configloader"
	"github.com/yaklabco/charstream/pkg/charstream"
	"github.com/yaklabco/charstream/pkg/decode"
)

// errUsage marks command-line usage errors raised by the commands themselves.
var errUsage = errors.New("invalid usage")

// Exit codes for charstream, following the sysexits convention.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates the source could not be decoded.
	ExitDataError = 65

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 78

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error to the process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, decode.ErrInvalidBytes):
		return ExitDataError
	case errors.Is(err, decode.ErrUnknownEncoding),
		errors.Is(err, charstream.ErrInvalidArgument),
		errors.Is(err, errUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrConfigNotFound),
		errors.Is(err, configloader.ErrConfigInvalid):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
