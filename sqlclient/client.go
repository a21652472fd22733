package sqlclient

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// AuthBasic is the only authentication type the client renders.
const AuthBasic = "basic"

// AuthTypeKey is the credential key carrying the authentication discriminator.
const AuthTypeKey = "authType"

// Client turns a Descriptor and a credential mapping into a connection
// string, and optionally into an open *sql.DB.
type Client struct {
	Descriptor   Descriptor
	Logger       *zap.Logger
	MaxOpenConns int
	DB           *sql.DB
}

// NewClient returns a client for the given descriptor. A nil logger is replaced with a no-op logger.
func NewClient(desc Descriptor, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{Descriptor: desc.Clone(), Logger: logger}
}

// GetConnectionString interpolates creds into the descriptor template.
// Username and password are escaped for the URL userinfo and database as a
// path segment. Defaults, possibly
// overridden by creds, are appended as a sorted query string.
func (c *Client) GetConnectionString(creds map[string]string) (string, error) {
	if err := c.Descriptor.Validate(); err != nil {
		return "", err
	}

	if authType := creds[AuthTypeKey]; authType != "" && authType != AuthBasic {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAuthType, authType)
	}

	values := make(map[string]string, len(c.Descriptor.Required))
	for _, name := range c.Descriptor.Required {
		v, ok := creds[name]
		if !ok || v == "" {
			c.Logger.Error("Credential field missing", zap.String("field", name))
			return "", fmt.Errorf("%w: %s", ErrMissingRequired, name)
		}
		switch name {
		case "username", "password":
			v = escapeUserinfo(v)
		case "database":
			v = url.PathEscape(v)
		}
		values[name] = v
	}

	conn := placeholderPattern.ReplaceAllStringFunc(c.Descriptor.Template, func(token string) string {
		return values[token[1:len(token)-1]]
	})

	if query := c.driverParams(creds); len(query) > 0 {
		conn += "?" + query.Encode()
	}

	c.Logger.Debug("Built connection string", zap.String("connection", Redact(conn)))
	return conn, nil
}

// driverParams merges Defaults with any caller-supplied value for the same key.
func (c *Client) driverParams(creds map[string]string) url.Values {
	query := url.Values{}
	for key, def := range c.Descriptor.Defaults {
		if v, ok := creds[key]; ok && v != "" {
			def = v
		}
		query.Set(key, def)
	}
	return query
}

// Connect builds the connection string, opens the dialect's driver and pings it.
// Any connection opened by an earlier call is closed first.
func (c *Client) Connect(ctx context.Context, creds map[string]string) error {
	conn, err := c.GetConnectionString(creds)
	if err != nil {
		return err
	}

	u, err := url.Parse(conn)
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	open, ok := openers[c.Descriptor.DialectBase()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedDialect, c.Descriptor.Dialect())
	}

	if c.DB != nil {
		if err := c.Close(); err != nil {
			return fmt.Errorf("failed to close previous connection: %w", err)
		}
	}

	db, err := open(u)
	if err != nil {
		c.Logger.Error("Failed to open database", zap.String("dialect", c.Descriptor.Dialect()), zap.Error(err))
		return fmt.Errorf("fatal error connecting to database: %w", err)
	}
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		c.Logger.Error("Failed to ping database", zap.String("connection", Redact(conn)), zap.Error(err))
		return fmt.Errorf("failed to ping after connecting to database: %w", err)
	}

	c.DB = db
	c.Logger.Info("Connected to database", zap.String("connection", Redact(conn)))
	return nil
}

// Close releases the database handle, if any.
func (c *Client) Close() error {
	if c.DB == nil {
		c.Logger.Warn("Attempted to close a non-initialized DB connection")
		return nil
	}
	if err := c.DB.Close(); err != nil {
		c.Logger.Error("Failed to close database connection", zap.Error(err))
		return err
	}
	c.DB = nil
	c.Logger.Info("Database connection closed")
	return nil
}

// Redact masks the password of a connection string. Strings that do not
// parse as URLs are fully masked.
func Redact(conn string) string {
	u, err := url.Parse(conn)
	if err != nil {
		return "xxxxx"
	}
	return u.Redacted()
}

// escapeUserinfo query-escapes s, using %20 for spaces since userinfo
// does not decode '+'.
func escapeUserinfo(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

