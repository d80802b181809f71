package config

// StorageConfig holds settings for saved games.
type StorageConfig struct {
	// DataDir is the database directory; empty means the platform default
	DataDir string `yaml:"data_dir"`
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}
