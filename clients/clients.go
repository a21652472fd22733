// Package clients declares the connection descriptors served by this module.
package clients

import (
	"oracle-client/sqlclient"

	"go.uber.org/zap"
)

var oracleConfig = sqlclient.Descriptor{
	Template: "oracle+oracledb://{username}:{password}@{host}:{port}/{database}",
	Required: []string{"username", "password", "host", "port", "database"},
	// oracledb accepts none of the generic driver parameters.
	Defaults: map[string]string{},
}

var postgresConfig = sqlclient.Descriptor{
	Template: "postgresql+psycopg://{username}:{password}@{host}:{port}/{database}",
	Required: []string{"username", "password", "host", "port", "database"},
	Defaults: map[string]string{},
}

// Oracle returns a copy of the Oracle connection descriptor.
func Oracle() sqlclient.Descriptor {
	return oracleConfig.Clone()
}

// Postgres returns a copy of the PostgreSQL connection descriptor.
func Postgres() sqlclient.Descriptor {
	return postgresConfig.Clone()
}

// ForDialect looks up a descriptor by dialect base ("oracle", "postgresql").
func ForDialect(dialect string) (sqlclient.Descriptor, bool) {
	switch dialect {
	case "", "oracle":
		return Oracle(), true
	case "postgresql", "postgres":
		return Postgres(), true
	default:
		return sqlclient.Descriptor{}, false
	}
}

func NewOracleClient(logger *zap.Logger) *sqlclient.Client {
	return sqlclient.NewClient(oracleConfig, logger)
}
