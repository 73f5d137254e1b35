package common

// UnknownStr is the String() fallback for enum values outside their range.
const UnknownStr = "unknown"
