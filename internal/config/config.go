package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Cards  CardsConfig  `mapstructure:"cards"  validate:"required"`
	Data   DataConfig   `mapstructure:"data"   validate:"required"`
	Study  StudyConfig  `mapstructure:"study"  validate:"required"`
	Server ServerConfig `mapstructure:"server" validate:"required"`
}

// CardsConfig locates the card source.
type CardsConfig struct {
	// Dir is the directory walked recursively for YAML card files.
	Dir string `mapstructure:"dir" validate:"required"`
}

// DataConfig locates the progress snapshot.
type DataConfig struct {
	// File is the path of the JSON snapshot holding all progress state.
	File string `mapstructure:"file" validate:"required"`
}

// StudyConfig tunes pool selection and validation.
type StudyConfig struct {
	// UnitsPerTheme caps the daily pool size per theme.
	UnitsPerTheme int `mapstructure:"units_per_theme" validate:"required,gt=0"`

	// ReviewValidated caps how many validated cards a pool may inject
	// for review. Zero disables review injection.
	ReviewValidated int `mapstructure:"review_validated" validate:"gte=0"`

	// ValidStreakDays is the consecutive-day streak that validates a
	// card.
	ValidStreakDays int `mapstructure:"valid_streak_days" validate:"required,gt=0"`
}

// ServerConfig contains the web front end and logging settings.
type ServerConfig struct {
	Addr     string `mapstructure:"addr"      validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}
