// Package base64 implements the Base64 encoding defined in RFC 4648
// Section 4, using the standard alphabet and '=' padding.
//
// Encode turns text into Base64 and Decode reverses it. Decode trusts its
// input and never reports an error; malformed input produces unspecified
// output. DecodeStrict runs Validate first and rejects anything that is not
// well-formed with an error matching ErrInvalidEncoding.
//
// The alphabet and the 256-entry decoding table are read-only after package
// initialization, so every function is safe for concurrent use.
//
// https://www.rfc-editor.org/rfc/rfc4648#section-4
package base64
