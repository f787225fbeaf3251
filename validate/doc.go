// Package validate bundles the standalone format checks used across the
// client: emails, URLs, usernames and simple length and range constraints.
// Struct-level validation lives on the model types; these helpers cover
// loose values such as CLI flags and key=value payloads.
package validate
