// Package base64js implements a text-oriented Base64 codec.
//
// The codec lives in the base64 subpackage.
//
// Related RFCs:
//  - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648 The Base16, Base32, and Base64 Data Encodings
//  - RFC3629 https://datatracker.ietf.org/doc/html/rfc3629 UTF-8, a transformation format of ISO 10646
package base64js
