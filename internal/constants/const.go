package constants

const (
	StatusValid = "VALID"
)

const (
	DefaultRunAddr        = ":8080"
	DefaultJWTSecret      = "supersecretkey"
	DefaultMigrationsPath = "file://migrations"
	DefaultTokenTTLHours  = 24
)

const (
	MinPasswordLength = 8
)
