// Package differ computes value drift between two parsed configuration
// documents.
//
// The comparison is deliberately asymmetric: only keys present on both
// sides are considered, and a difference is reported when their values are
// not byte-for-byte equal. Keys that exist in just one document are not
// drift — they are additions or removals, which this tool does not audit.
//
// An IgnoreSet can suppress differences by exact section or property name,
// for keys that are expected to vary between environments (host names,
// credentials, generated timestamps).
package differ
