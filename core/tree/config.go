package tree

// Config holds configuration for tree discovery.
type Config struct {
	// Extension is the file extension (without dot) that marks a
	// configuration file. Matched case-insensitively.
	Extension string `mapstructure:"extension" default:"cfg"`
}
