package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketcore/base/log"
)

// DefaultPath is where the services look for their config when no path is given
const DefaultPath = "infra/configs/config.yaml"

// Load reads a .env file when present, then the yaml config at path.
// Environment variables override the file, "mongo.uri" is read from MONGO_URI.
func Load(path string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	return log.Setup(viper.GetBool("debug"))
}
