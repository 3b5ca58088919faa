package database

import (
	"crypto/tls"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// Timeouts applied to Atlas connections. Local deployments keep the
// driver defaults.
const (
	atlasServerSelectionTimeout = 30 * time.Second
	atlasConnectTimeout         = 20 * time.Second
	atlasSocketTimeout          = 20 * time.Second
)

// clientOptionsFor derives client options from the shape of the connection
// string. This is the only place connection policy is decided:
//
//   - mongodb+srv:// URIs are Atlas SRV connections; the driver enables TLS
//     automatically, so only timeouts and retryable writes are set.
//   - mongodb:// URIs pointing at mongodb.net are standard Atlas connections
//     and need TLS enabled explicitly, plus the same timeouts.
//   - anything else is a local or self-hosted deployment and keeps driver
//     defaults.
func clientOptionsFor(uri string) *options.ClientOptions {
	opts := options.Client().ApplyURI(uri)

	switch {
	case strings.HasPrefix(uri, "mongodb+srv://"):
		opts.SetServerSelectionTimeout(atlasServerSelectionTimeout).
			SetConnectTimeout(atlasConnectTimeout).
			SetSocketTimeout(atlasSocketTimeout).
			SetRetryWrites(true)
	case strings.HasPrefix(uri, "mongodb://") && strings.Contains(uri, "mongodb.net"):
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}).
			SetServerSelectionTimeout(atlasServerSelectionTimeout).
			SetConnectTimeout(atlasConnectTimeout).
			SetSocketTimeout(atlasSocketTimeout).
			SetRetryWrites(true)
	}

	return opts
}
