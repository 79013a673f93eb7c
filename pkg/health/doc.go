// Package health provides HTTP handlers for health probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] executes a set of [Checks] in parallel and reports
// whether the service can take traffic. [Run] returns the same aggregated
// result without HTTP.
//
// # Quick Start
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "catalog": articles.Healthcheck(),
//	    "secret":  secretCheck,
//	}, health.WithTimeout(3*time.Second), health.WithLogger(log)))
//
// # Response Formats
//
// Handlers respond with plain text by default. Request JSON with an
// Accept: application/json header or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "catalog": {"status": "healthy"},
//	    "secret": {"status": "unhealthy", "error": "bookmark: secret required"}
//	  }
//	}
//
// Plain text responses:
//   - 200 OK: "OK"
//   - 503 Service Unavailable: "Service Unavailable"
//
// # Docker Healthcheck
//
//	HEALTHCHECK --interval=30s --timeout=3s --start-period=5s --retries=3 \
//	  CMD curl -f http://localhost:8080/health/ready || exit 1
//
// # Errors
//
//   - [ErrCheckFailed] - One or more checks failed
//   - [ErrCheckTimeout] - Check exceeded timeout
package health
