// Package bootstrap prepares the scanner's runtime environment: a
// system python3, a private virtualenv under the user data dir, and
// the scanner's BLE dependency installed into it. Every step is
// idempotent and sequential; already-satisfied steps are skipped.
package bootstrap
