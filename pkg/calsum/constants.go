package calsum

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Summary produced
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or output format
	ExitReadFailed   = 13 // Input could not be read
	ExitInputMissing = 14 // Input file not found
)

const (
	// DefaultInputFile is read when no input is given on the command line,
	// in the environment or in calsum.yaml.
	DefaultInputFile = "input.txt"

	// StdinInput selects standard input as the line source.
	StdinInput = "-"

	// ConfigFileName is the project configuration file looked up in the config directory.
	ConfigFileName = "calsum.yaml"
)

// Environment variables recognised by the CLI. They may also be set in a .env file.
const (
	EnvInput   = "CALSUM_INPUT"
	EnvFormat  = "CALSUM_FORMAT"
	EnvVerbose = "CALSUM_VERBOSE"
)
