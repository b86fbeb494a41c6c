// Package metrics holds shared instrument defaults for the service.
package metrics

// DefaultBuckets are the latency histogram boundaries, in seconds, applied to
// the HTTP request-duration instrument by the API server's meter provider.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
