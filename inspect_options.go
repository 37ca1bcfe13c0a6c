package pscript

import "github.com/tsawler/pscript/dsc"

// InspectOptions holds configuration for document inspection.
type InspectOptions struct {
	// Event filtering
	ignoreComments bool

	// Nested document handling
	skipEmbedded bool

	// Directive classification; nil means the standard catalog
	classifier dsc.Classifier
}

// defaultOptions returns the default inspection options.
func defaultOptions() InspectOptions {
	return InspectOptions{
		ignoreComments: false,
		skipEmbedded:   false,
		classifier:     nil,
	}
}

// clone creates a copy of InspectOptions.
func (o InspectOptions) clone() InspectOptions {
	return InspectOptions{
		ignoreComments: o.ignoreComments,
		skipEmbedded:   o.skipEmbedded,
		classifier:     o.classifier,
	}
}
