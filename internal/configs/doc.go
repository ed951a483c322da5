// Package configs loads secretsanta settings.
//
// Settings are layered, lowest precedence first:
//
//  1. Built-in defaults (sender donotreply@<fqdn>, sample.csv, localhost:25)
//  2. The TOML file at ~/.config/secretsanta/config.toml or --config
//  3. Environment variables, optionally seeded from a .env file
//  4. Command-line flags, applied by the cmd package
//
// # File Format
//
//	[sender]
//	from = "santa@example.com"
//
//	[input]
//	csv = "people.csv"
//
//	[smtp]
//	host = "localhost"
//	port = 25
//
// # Environment
//
//	SECRETSANTA_FROM, SECRETSANTA_CSV, SECRETSANTA_SMTP_HOST, SECRETSANTA_SMTP_PORT
package configs
