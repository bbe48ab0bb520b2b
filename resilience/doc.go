// Package resilience provides retry, circuit breaker, and rate limiting
// primitives. The httpclient package exposes each as an opt-in middleware;
// the engine adapter itself never applies any of them, so policy stays with
// the caller.
package resilience
