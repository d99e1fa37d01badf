// Package redact masks sensitive text and phone numbers and compares phone
// numbers by their trailing digits.
//
// Policies are plain values. Package-level helpers (CensorText, CensorPhone,
// IsValidPhoneNumber, SamePhoneNumbers) use the compiled-in defaults; callers
// that need other thresholds pass a CensorshipPolicy or build a PhoneMatcher.
package redact
