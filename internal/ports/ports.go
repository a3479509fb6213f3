package ports

import "context"

// HealthChecker is used to probe dependencies from the readiness endpoint.
type HealthChecker interface {
	Health(ctx context.Context) error
}
