// Package diagnostic collects the errors, warnings and notes produced while
// checking that schemas can be probed.
//
// Key capabilities:
//   - Non-reflectable leaf types with a suggested registration
//   - Sequences of records whose element fields cannot be located
//   - Per-schema property and pass counts
package diagnostic
