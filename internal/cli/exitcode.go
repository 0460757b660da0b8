package cli

import "errors"

// GetExitCode maps an error returned by a command to the exit code
// the process should exit with
func GetExitCode(err error) int {
	if err == nil {
		return ExitCodeOk
	}
	exitCode := 0
	if errors.Is(err, ErrorInvalidInput) || errors.Is(err, ErrorUserCancelled) {
		exitCode |= ExitCodeInputError
	}
	if errors.Is(err, ErrorPolicyFailed) {
		exitCode |= ExitCodePolicyError
	}
	if errors.Is(err, ErrorServiceUnavailable) {
		exitCode |= ExitCodeServiceUnavailable
	}
	if exitCode == 0 {
		exitCode = ExitCodeError
	}
	return exitCode
}
