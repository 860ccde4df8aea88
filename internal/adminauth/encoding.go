package adminauth

import "encoding/base64"

// EncodeBytes encodes b the way salts and hashes travel in AuthConfig:
// standard padded base64 without line breaks.
func EncodeBytes(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBytes reverses EncodeBytes.
func DecodeBytes(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
