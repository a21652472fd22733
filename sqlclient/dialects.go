package sqlclient

import (
	"database/sql"
	"fmt"
	"net/url"
	"strconv"

	"github.com/godror/godror"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

type opener func(u *url.URL) (*sql.DB, error)

// openers maps a dialect base to the Go driver that serves it.
var openers = map[string]opener{
	"oracle":     openOracle,
	"postgresql": openPostgres,
}

func openOracle(u *url.URL) (*sql.DB, error) {
	P, err := oracleParams(u)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(godror.NewConnector(P)), nil
}

// oracleParams converts a rendered oracle URL into godror connection
// parameters. The path is the service name.
func oracleParams(u *url.URL) (godror.ConnectionParams, error) {
	var P godror.ConnectionParams
	P.Username = u.User.Username()
	password, _ := u.User.Password()
	P.Password = godror.NewPassword(password)
	P.ConnectString = u.Host + u.Path

	for key, values := range u.Query() {
		switch key {
		case "standaloneConnection":
			b, err := strconv.ParseBool(values[0])
			if err != nil {
				return P, fmt.Errorf("%w: %s=%q", ErrUnsupportedParameter, key, values[0])
			}
			P.StandaloneConnection = b
		default:
			return P, fmt.Errorf("%w: %s", ErrUnsupportedParameter, key)
		}
	}
	return P, nil
}

func openPostgres(u *url.URL) (*sql.DB, error) {
	return sql.Open("pgx", postgresDSN(u))
}

// postgresDSN swaps the dialect scheme for the one pgx understands.
func postgresDSN(u *url.URL) string {
	pg := *u
	pg.Scheme = "postgres"
	return pg.String()
}
