// Package adminauth implements the password gate in front of the portfolio
// admin page.
//
// # Overview
//
// The gate is driven by a single record, AuthConfig, that the site publishes
// as a static JSON file (data/admin-auth.json):
//
//	{
//	  "version": 1,
//	  "algorithm": "PBKDF2-SHA-256",
//	  "iterations": 210000,
//	  "salt": "<16 bytes, standard base64>",
//	  "hash": "<32 bytes, standard base64>"
//	}
//
// The package provides:
//  1. Provider, which fetches that record (bypassing caches) and falls back to
//     a compiled-in default on any failure. Load never returns an error.
//  2. Verify, which derives PBKDF2-HMAC-SHA-256 from a candidate password and
//     compares it with the stored hash in constant time.
//  3. CreateAuthConfig, which provisions a new record with a fresh random salt.
//
// # Error Handling
//
// Verification has no failure path distinguishable from a wrong password:
// empty passwords, malformed records and length mismatches all yield false.
// The Provider logs why it fell back but hands the caller a usable record.
//
// # Security notes
//
// Any deployment that does not publish its own admin-auth.json is protected
// only by the default record, whose plaintext is known to the site authors.
// The comparison leaks the hash length through timing; all valid records use
// 32-byte hashes so this reveals nothing secret.
package adminauth
