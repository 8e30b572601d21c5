// Package awsenv resolves region and account identity from the ambient AWS
// environment (env vars, shared config, instance credentials).
package awsenv

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Resolver answers region and account lookups from the default AWS config.
// The config is loaded lazily, once per Resolver; no lookup is retried.
type Resolver struct {
	profile string

	loadOnce sync.Once
	cfg      aws.Config
	loadErr  error
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithProfile selects a shared config profile instead of the default chain.
func WithProfile(profile string) Option {
	return func(r *Resolver) { r.profile = profile }
}

// New returns a Resolver over the ambient environment.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) load(ctx context.Context) (aws.Config, error) {
	r.loadOnce.Do(func() {
		var cfgOpts []func(*config.LoadOptions) error
		if r.profile != "" {
			cfgOpts = append(cfgOpts, config.WithSharedConfigProfile(r.profile))
		}
		r.cfg, r.loadErr = config.LoadDefaultConfig(ctx, cfgOpts...)
		if r.loadErr != nil {
			r.loadErr = fmt.Errorf("failed to load AWS config: %w", r.loadErr)
		}
	})
	return r.cfg, r.loadErr
}

// Region returns the region configured in the environment.
func (r *Resolver) Region(ctx context.Context) (string, error) {
	cfg, err := r.load(ctx)
	if err != nil {
		return "", err
	}
	if cfg.Region == "" {
		return "", fmt.Errorf("no region configured in the environment")
	}
	return cfg.Region, nil
}

// AccountID returns the caller's AWS account ID via STS.
func (r *Resolver) AccountID(ctx context.Context) (string, error) {
	cfg, err := r.load(ctx)
	if err != nil {
		return "", err
	}
	out, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to look up caller identity: %w", err)
	}
	return aws.ToString(out.Account), nil
}
