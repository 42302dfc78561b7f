package configs

// Campaigns configures where the campaign catalog is loaded from. The
// catalog is read once at startup and treated as immutable afterwards.
type Campaigns struct {
	// File is the path to a JSON campaign file. When empty, the embedded
	// default catalog is used.
	File string `env:"FILE" envDefault:""`
}
