package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool `yaml:"json"`

	// ShowBoard includes the piece diagram in text reports
	ShowBoard bool `yaml:"show_board"`

	// ShowMoves lists the moves the side to move can play
	ShowMoves bool `yaml:"show_moves"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
		ShowMoves: true,
	}
}
