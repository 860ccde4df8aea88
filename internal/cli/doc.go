// Package cli implements the portfolio command-line tool.
//
// Commands
//
//	portfolio auth create   provision a new admin credential record
//	portfolio auth verify   check a password against the published record
//	portfolio auth show     print the effective admin credential record
//	portfolio content show  print the loaded site content
//
// Configuration flags are shared by every command; see package config.
package cli
