package log

// Modes
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// Encodings
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Outputs
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// Output is stdout unless set to stderr (the MCP surface owns stdout).
	Output string
}
