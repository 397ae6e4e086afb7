package measure

import (
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/metric"
)

// UnrelatedPolicy decides what Factor returns for two units with no
// registered or cascaded relationship.
type UnrelatedPolicy int

const (
	// UnrelatedIdentity treats unrelated units as a 1:1 conversion. This is
	// the default. It silently accepts cross-dimension mistakes such as
	// converting kilograms to meters, so callers must not rely on it for
	// correctness.
	UnrelatedIdentity UnrelatedPolicy = iota

	// UnrelatedError reports unrelated units as a KindUnresolvable error
	// and yields NaN from Scalar.Value.
	UnrelatedError
)

// String returns "identity" or "error".
func (p UnrelatedPolicy) String() string {
	switch p {
	case UnrelatedIdentity:
		return "identity"
	case UnrelatedError:
		return "error"
	default:
		return fmt.Sprintf("UnrelatedPolicy(%d)", int(p))
	}
}

// ParseUnrelatedPolicy parses "identity" or "error" (case-insensitive).
// An empty string yields UnrelatedIdentity.
func ParseUnrelatedPolicy(s string) (UnrelatedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "identity":
		return UnrelatedIdentity, nil
	case "error", "strict":
		return UnrelatedError, nil
	default:
		return UnrelatedIdentity, NewConfigurationError("ParseUnrelatedPolicy",
			fmt.Errorf("unknown policy %q", s))
	}
}

// Option configures a Registry.
type Option func(*registryConfig)

// registryConfig holds configuration for a Registry instance.
type registryConfig struct {
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	policy        UnrelatedPolicy
}

// WithLogger sets the logger used for registration and conversion
// diagnostics. If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *registryConfig) {
		c.logger = logger
	}
}

// WithMeterProvider enables OpenTelemetry metrics for the registry.
// Without it the registry records to a no-op meter.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *registryConfig) {
		c.meterProvider = mp
	}
}

// WithUnrelatedPolicy sets how conversions between unrelated units are
// resolved.
func WithUnrelatedPolicy(p UnrelatedPolicy) Option {
	return func(c *registryConfig) {
		c.policy = p
	}
}
