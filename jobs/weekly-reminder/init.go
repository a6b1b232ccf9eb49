package main

import (
	"os"

	"github.com/kenzieke/sleepwell-backend/pkg/db"
	"github.com/kenzieke/sleepwell-backend/pkg/utils"
	"gopkg.in/yaml.v2"

	wellnessDB "github.com/kenzieke/sleepwell-backend/pkg/db/wellness"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_WELLNESS_DB_USERNAME = "WELLNESS_DB_USERNAME"
	ENV_WELLNESS_DB_PASSWORD = "WELLNESS_DB_PASSWORD"
)

type config struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// DB configs
	DBConfigs struct {
		WellnessDB db.DBConfigYaml `json:"wellness_db" yaml:"wellness_db"`
	} `json:"db_configs" yaml:"db_configs"`

	InstanceIDs []string `json:"instance_ids" yaml:"instance_ids"`

	// Cron expression for the reminder scan. When empty the scan runs once
	// and the process exits.
	ReminderSchedule string `json:"reminder_schedule" yaml:"reminder_schedule"`
}

var conf config

var wellnessDBService *wellnessDB.WellnessDBService

func init() {
	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		panic(err)
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		panic(err)
	}

	// Init logger:
	utils.InitLogger(
		conf.Logging.LogLevel,
		conf.Logging.IncludeSrc,
		conf.Logging.LogToFile,
		conf.Logging.Filename,
		conf.Logging.MaxSize,
		conf.Logging.MaxAge,
		conf.Logging.MaxBackups,
		conf.Logging.CompressOldLogs,
		conf.Logging.IncludeBuildInfo,
	)

	// Override secrets from environment variables
	secretsOverride()

	wellnessDBService, err = wellnessDB.NewWellnessDBService(db.DBConfigFromYamlObj(conf.DBConfigs.WellnessDB, conf.InstanceIDs))
	if err != nil {
		panic(err)
	}
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_WELLNESS_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.WellnessDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_WELLNESS_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.WellnessDB.Password = dbPassword
	}
}
