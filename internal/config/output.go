package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies how positions are written (board, JSON, FEN)
	Format OutputFormat

	// ShowMoves includes the legal moves of the side to move in JSON output
	ShowMoves bool

	// ShowHistory includes the move history in JSON output
	ShowHistory bool

	// Coordinates labels files and ranks around the board diagram
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      Board,
		ShowHistory: true,
		Coordinates: true,
	}
}
