package config

// EnvPrefix is the envconfig prefix shared by every SNKRS binary.
const EnvPrefix = "snkrs"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "SNKRS_DB_DSN"
	EnvDBHost = "SNKRS_DB_HOST"
	EnvDBUser = "SNKRS_DB_USER"
	EnvDBName = "SNKRS_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
