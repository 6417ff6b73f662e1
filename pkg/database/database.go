package database

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Server selection is bounded so an unreachable cluster fails the run
// quickly instead of hanging it.
const serverSelectionTimeout = 5000 * time.Millisecond

// ConnectMongo opens a MongoDB client for the given URI and verifies the
// connection with a ping. When caFile is non-empty it is loaded as the
// trusted root bundle for TLS; otherwise the system roots apply.
func ConnectMongo(ctx context.Context, uri, caFile string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout)

	if caFile != "" {
		tlsCfg, err := tlsConfigFromCAFile(caFile)
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("error creating MongoDB client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, serverSelectionTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), serverSelectionTimeout)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)

		return nil, fmt.Errorf("error connecting to MongoDB (ping failed): %w", err)
	}

	return client, nil
}

// Disconnect releases the client, bounding the shutdown so a dead server
// cannot block process exit.
func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), serverSelectionTimeout)
	defer cancel()
	_ = client.Disconnect(ctx)
}

func tlsConfigFromCAFile(caFile string) (*tls.Config, error) {
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("error reading CA bundle '%s': %w", caFile, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates parsed from CA bundle '%s'", caFile)
	}

	return &tls.Config{RootCAs: pool}, nil
}
