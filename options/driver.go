package options

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultDriverClass is the JDBC driver class used when none is configured.
const DefaultDriverClass = "com.simba.athena.jdbc.Driver"

const athenaURLScheme = "jdbc:awsathena://"

// DriverRegistry is the runtime driver manager the resolver registers
// explicit driver classes with and asks which class serves a URL.
type DriverRegistry interface {
	// Register records class as available to the runtime.
	Register(class string) error
	// DriverClassFor returns the canonical class of the driver that accepts
	// url, or an error when no registered driver does.
	DriverClassFor(url string) (string, error)
}

// driverRegistry is the built-in registry. It tracks registered class names
// and hands out the Athena driver for Athena URLs.
type driverRegistry struct {
	mu      sync.Mutex
	classes []string
}

// NewDriverRegistry returns the built-in driver registry.
func NewDriverRegistry() DriverRegistry {
	return &driverRegistry{}
}

func (r *driverRegistry) Register(class string) error {
	if class == "" {
		return fmt.Errorf("driver class must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.classes {
		if c == class {
			return nil
		}
	}
	r.classes = append(r.classes, class)
	return nil
}

func (r *driverRegistry) DriverClassFor(url string) (string, error) {
	if strings.HasPrefix(url, athenaURLScheme) {
		return DefaultDriverClass, nil
	}
	return "", fmt.Errorf("no registered driver accepts url %q", url)
}
