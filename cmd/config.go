package cmd

// Storage backend selectors.
const (
	StorageJSON     = "json"
	StoragePostgres = "postgres"
)

// Config carries the runtime settings of the service, loaded from the
// environment by the entrypoint.
type Config struct {
	HTTPPort string

	// Storage selects the persistence backend: "json" or "postgres".
	Storage string
	// DataDir is the directory of the JSON collections (json backend only).
	DataDir string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SMSGatewayURL is the notification gateway endpoint. Empty disables
	// sending; messages are logged instead.
	SMSGatewayURL string

	// DispatchJobEnabled turns the auto-dispatch cron job on.
	DispatchJobEnabled bool
	// DispatchSchedule is a 6-field cron expression with seconds.
	DispatchSchedule string
}
