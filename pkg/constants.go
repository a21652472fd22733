package pkg

import "time"

const (
	DBAuthType = "basic"     // Authentication type; only basic username/password is rendered.
	DBUser     = "system"    // The username used to authenticate with the database.
	DBHostname = "localhost" // The hostname or IP address of the Oracle database server.
	DBPort     = "1521"      // The port number where the Oracle listener is running.
	DBName     = "XEPDB1"    // The service name or Pluggable Database (PDB) name. XEPDB1 is the default PDB name for Oracle XE (Express Edition).
	DBDialect  = "oracle"

	MaxOpenConns   = 2
	ConnectTimeout = 30 * time.Second
	LogLevel       = "info"
)
