// Package observability bootstraps OpenTelemetry tracing and provides span
// helpers used by the client tracing middleware. Applications that already
// configure a global tracer provider can skip InitTracer; StartSpan uses
// whatever provider is registered.
package observability
