package options

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/infobloxopen/spark-athena-options/awsenv"
)

const (
	urlTemplate           = "jdbc:awsathena://athena.%s.amazonaws.com:443"
	stagingBucketTemplate = "s3://aws-athena-query-results-%s-%s/"

	// StagingDirKey is the driver property naming the S3 staging location.
	StagingDirKey = "s3_staging_dir"
	// CredentialsProviderKey is the driver property selecting a credentials
	// provider class.
	CredentialsProviderKey = "aws_credentials_provider_class"

	defaultCredentialsProvider = "com.simba.athena.amazonaws.auth.InstanceProfileCredentialsProvider"

	userKey     = "user"
	passwordKey = "password"
)

// RegionResolver supplies the ambient AWS region when the region option is
// not set.
type RegionResolver interface {
	Region(ctx context.Context) (string, error)
}

// AccountResolver supplies the caller's AWS account ID for staging location
// synthesis.
type AccountResolver interface {
	AccountID(ctx context.Context) (string, error)
}

// Config is the validated configuration of one data source invocation.
// It is immutable after Resolve returns.
type Config struct {
	URL                    string
	Table                  string
	DriverClass            string
	PartitionColumn        string
	LowerBound             *int64
	UpperBound             *int64
	NumPartitions          *int
	FetchSize              int
	BatchSize              int
	Truncate               bool
	CreateTableOptions     string
	CreateTableColumnTypes *string
	Isolation              IsolationLevel

	logger   zerolog.Logger
	params   *Params
	region   string
	identity AccountResolver

	connOnce  sync.Once
	connProps []Property
	connErr   error
}

// Option customizes Resolve, mainly by injecting external collaborators.
type Option func(*resolver)

type resolver struct {
	logger   zerolog.Logger
	regions  RegionResolver
	identity AccountResolver
	drivers  DriverRegistry
}

// WithLogger sets the logger used for derivation debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *resolver) { r.logger = logger }
}

// WithRegionResolver replaces the ambient region lookup.
func WithRegionResolver(regions RegionResolver) Option {
	return func(r *resolver) { r.regions = regions }
}

// WithAccountResolver replaces the account identity lookup.
func WithAccountResolver(identity AccountResolver) Option {
	return func(r *resolver) { r.identity = identity }
}

// WithDriverRegistry replaces the runtime driver registry.
func WithDriverRegistry(drivers DriverRegistry) Option {
	return func(r *resolver) { r.drivers = drivers }
}

// Resolve validates params and derives the configuration. All validation is
// fail-fast: no Config is returned unless every present option parsed and
// every cross-field invariant held.
func Resolve(ctx context.Context, params *Params, opts ...Option) (*Config, error) {
	r := &resolver{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.regions == nil || r.identity == nil {
		env := awsenv.New()
		if r.regions == nil {
			r.regions = env
		}
		if r.identity == nil {
			r.identity = env
		}
	}
	if r.drivers == nil {
		r.drivers = NewDriverRegistry()
	}

	c := &Config{
		logger:   r.logger,
		params:   params,
		identity: r.identity,
	}

	table, ok := params.Get(OptTable)
	if !ok || table == "" {
		return nil, &MissingOptionError{Key: OptTable}
	}
	c.Table = table

	region, ok := params.Get(OptRegion)
	if !ok {
		ambient, err := r.regions.Region(ctx)
		if err != nil {
			return nil, &RegionResolutionError{Err: err}
		}
		region = ambient
	}
	c.region = region
	c.URL = fmt.Sprintf(urlTemplate, region)
	c.logger.Debug().Str("region", region).Str("url", c.URL).Msg("resolved connection url")

	// The driver class is pinned here so that planning and execution see the
	// same driver even if more drivers get registered in between.
	if class, ok := params.Get(OptDriver); ok {
		if err := r.drivers.Register(class); err != nil {
			return nil, fmt.Errorf("failed to register driver %q: %w", class, err)
		}
		c.DriverClass = class
	} else {
		class, err := r.drivers.DriverClassFor(c.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve a driver for %q: %w", c.URL, err)
		}
		c.DriverClass = class
	}

	var err error
	if c.NumPartitions, err = intOption(params, OptNumPartitions); err != nil {
		return nil, err
	}
	if column, ok := params.Get(OptPartitionColumn); ok {
		c.PartitionColumn = column
	}
	if c.LowerBound, err = int64Option(params, OptLowerBound); err != nil {
		return nil, err
	}
	if c.UpperBound, err = int64Option(params, OptUpperBound); err != nil {
		return nil, err
	}
	if c.PartitionColumn != "" {
		var missing []string
		if c.LowerBound == nil {
			missing = append(missing, OptLowerBound)
		}
		if c.UpperBound == nil {
			missing = append(missing, OptUpperBound)
		}
		if c.NumPartitions == nil {
			missing = append(missing, OptNumPartitions)
		}
		if len(missing) > 0 {
			return nil, &PartitionSpecError{Column: c.PartitionColumn, Missing: missing}
		}
	}

	if c.FetchSize, err = boundedIntOption(params, OptFetchSize, 0, 0); err != nil {
		return nil, err
	}
	if c.BatchSize, err = boundedIntOption(params, OptBatchSize, 1000, 1); err != nil {
		return nil, err
	}

	if raw, ok := params.Get(OptTruncate); ok {
		truncate, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &OptionValueError{Key: OptTruncate, Value: raw, Constraint: "must be a boolean"}
		}
		c.Truncate = truncate
	}

	if raw, ok := params.Get(OptCreateTableOptions); ok {
		c.CreateTableOptions = raw
	}
	if raw, ok := params.Get(OptCreateTableColumnTypes); ok {
		c.CreateTableColumnTypes = &raw
	}

	c.Isolation = IsolationReadUncommitted
	if raw, ok := params.Get(OptIsolationLevel); ok {
		if c.Isolation, err = ParseIsolationLevel(raw); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func intOption(params *Params, key string) (*int, error) {
	raw, ok := params.Get(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &OptionValueError{Key: key, Value: raw, Constraint: "must be an integer"}
	}
	return &n, nil
}

func int64Option(params *Params, key string) (*int64, error) {
	raw, ok := params.Get(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &OptionValueError{Key: key, Value: raw, Constraint: "must be a 64-bit integer"}
	}
	return &n, nil
}

func boundedIntOption(params *Params, key string, def, min int) (int, error) {
	raw, ok := params.Get(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &OptionValueError{Key: key, Value: raw, Constraint: "must be an integer"}
	}
	if n < min {
		return 0, &OptionValueError{Key: key, Value: raw, Constraint: fmt.Sprintf("must be at least %d", min)}
	}
	return n, nil
}

// Properties returns every raw parameter unchanged, in original casing and
// stored order. Intended for diagnostics and logging.
func (c *Config) Properties() []Property {
	return c.params.Pairs()
}

// ConnectionProperties returns the parameters handed to the JDBC driver:
// every reserved option is stripped, a staging location is synthesized when
// none was given, and instance-profile credentials are selected when no
// user/password pair is present. The view is computed once; the account
// lookup it may perform happens at most once per Config.
func (c *Config) ConnectionProperties(ctx context.Context) ([]Property, error) {
	c.connOnce.Do(func() {
		c.connProps, c.connErr = c.buildConnectionProperties(ctx)
	})
	return c.connProps, c.connErr
}

func (c *Config) buildConnectionProperties(ctx context.Context) ([]Property, error) {
	var hasStaging, hasCredentials bool
	props := make([]Property, 0, c.params.Len()+2)
	for _, p := range c.params.Pairs() {
		if IsReserved(p.Key) {
			continue
		}
		switch strings.ToLower(p.Key) {
		case StagingDirKey:
			hasStaging = true
		case userKey, passwordKey:
			hasCredentials = true
		}
		props = append(props, p)
	}

	if !hasStaging {
		account, err := c.identity.AccountID(ctx)
		if err != nil {
			return nil, &StagingLocationError{Err: err}
		}
		staging := fmt.Sprintf(stagingBucketTemplate, account, c.region)
		c.logger.Debug().Str("staging", staging).Msg("synthesized staging location")
		props = append(props, Property{Key: StagingDirKey, Value: staging})
	}
	if !hasCredentials {
		props = append(props, Property{Key: CredentialsProviderKey, Value: defaultCredentialsProvider})
	}
	return props, nil
}
