// Package describe defines the interface used to generate storefront menu
// copy for a product from its title and a handful of keywords.
package describe

import "context"

// Generator is the abstraction for text generation providers.
//
//go:generate mockgen -package mockdescribe -source=interface.go -destination=mock/mockdescribe.go *
type Generator interface {
	// Describe writes a short single-sentence menu description for the product
	// named title, working the given keywords in.
	Describe(ctx context.Context, title string, keywords []string) (string, error)
}
