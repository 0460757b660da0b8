package cli

const (
	FlagTypeBool        FlagType = "bool"
	FlagTypeDuration    FlagType = "duration"
	FlagTypeFloat       FlagType = "float"
	FlagTypeInteger     FlagType = "integer"
	FlagTypeString      FlagType = "string"
	FlagTypeStringSlice FlagType = "stringslice"
)

// exit codes are bit flags so that a single code can describe more
// than one failure source
const (
	ExitCodeOk                 = 0
	ExitCodeError              = 1
	ExitCodeInputError         = 2
	ExitCodePolicyError        = 4
	ExitCodeServiceUnavailable = 8
)

const Logo = `
 ┌─┐┬ ┬┌┬┐┌─┐┌┬┐┌─┐┬─┐
 ├─┘│││││││├┤  │ ├┤ ├┬┘
 ┴  └┴┘┴ ┴└─┘ ┴ └─┘┴└─ `
