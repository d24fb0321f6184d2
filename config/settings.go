package config

// SettingsConfig contains persisted display settings configuration
type SettingsConfig struct {
	AppName string // gdata application directory name
	ItemKey string // gdata item holding the saved settings
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "bounce",
		ItemKey: "settings",
	}
}
