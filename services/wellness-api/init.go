package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/kenzieke/sleepwell-backend/pkg/apihelpers"
	"github.com/kenzieke/sleepwell-backend/pkg/db"
	"github.com/kenzieke/sleepwell-backend/pkg/user-management/pwhash"
	"github.com/kenzieke/sleepwell-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	wellnessDB "github.com/kenzieke/sleepwell-backend/pkg/db/wellness"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	// Variables to override "secrets" in the config file
	ENV_WELLNESS_DB_USERNAME = "WELLNESS_DB_USERNAME"
	ENV_WELLNESS_DB_PASSWORD = "WELLNESS_DB_PASSWORD"

	ENV_WELLNESS_USER_JWT_SIGN_KEY = "WELLNESS_USER_JWT_SIGN_KEY"
)

type WellnessApiConfig struct {
	// Logging configs
	Logging utils.LoggerConfig `json:"logging" yaml:"logging"`

	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		// Mutual TLS configs
		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// user management configs
	UserManagementConfig struct {
		PWHashing struct {
			Argon2Memory      uint32 `json:"argon2_memory" yaml:"argon2_memory"`
			Argon2Iterations  uint32 `json:"argon2_iterations" yaml:"argon2_iterations"`
			Argon2Parallelism uint8  `json:"argon2_parallelism" yaml:"argon2_parallelism"`
		} `json:"pw_hashing" yaml:"pw_hashing"`
		WellnessUserJWTConfig struct {
			SignKey   string `json:"sign_key" yaml:"sign_key"`
			ExpiresIn string `json:"expires_in" yaml:"expires_in"`
		} `json:"wellness_user_jwt_config" yaml:"wellness_user_jwt_config"`
	} `json:"user_management_config" yaml:"user_management_config"`

	AllowedInstanceIDs []string `json:"allowed_instance_ids" yaml:"allowed_instance_ids"`

	// DB configs
	DBConfigs struct {
		WellnessDB db.DBConfigYaml `json:"wellness_db" yaml:"wellness_db"`
	} `json:"db_configs" yaml:"db_configs"`
}

var (
	wellnessDBService *wellnessDB.WellnessDBService

	jwtExpiresIn time.Duration
)

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

	jwtExpiresIn, err = utils.ParseDurationString(conf.UserManagementConfig.WellnessUserJWTConfig.ExpiresIn)
	if err != nil {
		slog.Error("invalid JWT expires_in value", slog.String("error", err.Error()))
		panic(err)
	}

	// Init DBs
	initDBs()

	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// init argon2
	pwhash.InitArgonParams(
		conf.UserManagementConfig.PWHashing.Argon2Memory,
		conf.UserManagementConfig.PWHashing.Argon2Iterations,
		conf.UserManagementConfig.PWHashing.Argon2Parallelism,
	)
}

func secretsOverride() {
	if dbUsername := os.Getenv(ENV_WELLNESS_DB_USERNAME); dbUsername != "" {
		conf.DBConfigs.WellnessDB.Username = dbUsername
	}

	if dbPassword := os.Getenv(ENV_WELLNESS_DB_PASSWORD); dbPassword != "" {
		conf.DBConfigs.WellnessDB.Password = dbPassword
	}

	if wellnessUserJwtSignKey := os.Getenv(ENV_WELLNESS_USER_JWT_SIGN_KEY); wellnessUserJwtSignKey != "" {
		conf.UserManagementConfig.WellnessUserJWTConfig.SignKey = wellnessUserJwtSignKey
	}
}

func initDBs() {
	var err error
	wellnessDBService, err = wellnessDB.NewWellnessDBService(db.DBConfigFromYamlObj(conf.DBConfigs.WellnessDB, conf.AllowedInstanceIDs))
	if err != nil {
		slog.Error("Error connecting to Wellness DB", slog.String("error", err.Error()))
		return
	}
}
