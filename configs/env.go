package configs

import (
	_ "embed"

	"github.com/spf13/viper"
)

// DefaultProperties is the application.yml shipped with the binary. It is used when
// PROPERTIES_FILE_PATH points nowhere readable.
//
//go:embed application.yml
var DefaultProperties []byte

// DefaultMessages is the messages.yml shipped with the binary.
//
//go:embed messages.yml
var DefaultMessages []byte

type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
	MessagesFilePath   string
	DotEnvFilePath     string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:    getStringOrDefault("APPLICATION_NAME", "weather-api"),
		PropertiesFilePath: getStringOrDefault("PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesFilePath:   getStringOrDefault("MESSAGES_FILE_PATH", "configs/messages.yml"),
		DotEnvFilePath:     getStringOrDefault("DOTENV_FILE_PATH", ".env"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
