// Package config manages git-trunk workflow configuration.
//
// Configuration lives in the repository's own git config under the trunk section:
//   - [trunk] holds the base options, [trunk "<section>"] the per-workflow ones
//   - nested repositories are scoped by their path relative to the root repository
//
// The option schema is static; Store reads it lazily, caches it and writes it back
// in a single config session.
package config
