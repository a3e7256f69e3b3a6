// Package config loads the deliveries service settings.
//
// Sources are merged in this order, each overriding the non-zero fields of
// the one before it:
//  1. environment variables (tags on [StructuredConfig])
//  2. command-line flags
//  3. the JSON file named by either of the above
//
// Whatever is still empty afterwards comes from defaultConfig, and the result
// is validated before [GetStructuredConfig] hands it out.
package config
