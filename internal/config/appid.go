package config

const (
	// AppID is the fixed identifier used for config file paths.
	// Even if the app display name changes, keep this value to
	// maintain compatibility with existing user config.
	AppID = "schemabuilder"

	EnvPrefix = "SCHEMABUILDER"
)
