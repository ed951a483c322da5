// Package utils provides shared helpers for the secretsanta application.
//
// # System Utilities
//
//   - GetHostname: returns the system hostname
//   - GetFQDN: resolves the machine's fully qualified domain name
//   - DefaultSender: builds the donotreply@<fqdn> sender address
//
// # String Utilities
//
//   - IsValidEmail: loose local@domain.tld check used for sender warnings
//   - Pluralize: picks the singular or plural form for a count
//
// # Terminal Utilities
//
//   - IsTerminal: checks whether stdout is a terminal
package utils
