// Command spark-athena-options resolves a set of data source options the way
// the Athena connector would and prints the derived properties. It is a
// diagnostic tool; it executes no queries.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/infobloxopen/spark-athena-options/options"
)

func main() {
	var (
		table        = flag.String("table", "", "table name (overrides a dbtable option)")
		url          = flag.String("url", "", "connection url (overrides a url option)")
		connection   = flag.Bool("connection", false, "also print the driver connection properties")
		checkStaging = flag.Bool("check-staging", false, "verify the staging bucket is reachable")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	var pairs []options.Property
	flag.Func("o", "data source option as key=value (repeatable)", func(s string) error {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return fmt.Errorf("expected key=value, got %q", s)
		}
		pairs = append(pairs, options.Property{Key: key, Value: value})
		return nil
	})
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}

	ctx := context.Background()
	if err := run(ctx, logger, pairs, *table, *url, *connection, *checkStaging); err != nil {
		logger.Error().Err(err).Msg("option resolution failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, logger zerolog.Logger, pairs []options.Property, table, url string, connection, checkStaging bool) error {
	params := options.ParamsFromPairs(pairs)
	if table != "" || url != "" {
		m := make(map[string]string, len(pairs))
		for _, p := range pairs {
			m[p.Key] = p.Value
		}
		params = options.ParamsWithTable(url, table, m)
	}

	cfg, err := options.Resolve(ctx, params, options.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info().
		Str("url", cfg.URL).
		Str("table", cfg.Table).
		Str("driver", cfg.DriverClass).
		Stringer("isolationLevel", cfg.Isolation).
		Int("batchSize", cfg.BatchSize).
		Msg("resolved configuration")

	fmt.Println("# properties")
	for _, p := range cfg.Properties() {
		fmt.Printf("%s=%s\n", p.Key, p.Value)
	}

	if !connection && !checkStaging {
		return nil
	}

	props, err := cfg.ConnectionProperties(ctx)
	if err != nil {
		return err
	}
	fmt.Println("# connection properties")
	for _, p := range props {
		fmt.Printf("%s=%s\n", p.Key, p.Value)
	}

	if checkStaging {
		return verifyStaging(ctx, logger, props)
	}
	return nil
}

// verifyStaging heads the staging bucket so misconfigured locations surface
// before a job ships them to every executor.
func verifyStaging(ctx context.Context, logger zerolog.Logger, props []options.Property) error {
	var staging string
	for _, p := range props {
		if strings.EqualFold(p.Key, options.StagingDirKey) {
			staging = p.Value
			break
		}
	}
	if staging == "" {
		return fmt.Errorf("no %s property to check", options.StagingDirKey)
	}
	bucket, ok := strings.CutPrefix(staging, "s3://")
	if !ok {
		return fmt.Errorf("staging location %q is not an s3 uri", staging)
	}
	bucket, _, _ = strings.Cut(bucket, "/")

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &bucket}); err != nil {
		return fmt.Errorf("staging bucket %q is not reachable: %w", bucket, err)
	}
	logger.Info().Str("bucket", bucket).Msg("staging bucket is reachable")
	return nil
}
