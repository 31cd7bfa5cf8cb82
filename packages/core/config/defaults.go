package config

const (
	// DefaultRequestFile is read when no request file is given
	DefaultRequestFile = "request.json"
	// DefaultResponseFile is written when no response file is given
	DefaultResponseFile = "response.json"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		RequestFile:  DefaultRequestFile,
		ResponseFile: DefaultResponseFile,
		BodyFile:     "",
		Pretty:       nil,
		Interactive:  nil,
		Verbose:      0,
		NoColor:      nil,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	return c.RequestFile == DefaultRequestFile &&
		c.ResponseFile == DefaultResponseFile &&
		c.BodyFile == "" &&
		!c.GetPretty() &&
		!c.GetInteractive() &&
		c.Verbose == 0 &&
		!c.GetNoColor()
}
