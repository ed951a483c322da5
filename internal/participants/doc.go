// Package participants loads the people taking part in a gift exchange.
//
// Participants come from a CSV file whose header names at least a name and an
// email column. Rows are returned in file order with values exactly as
// written; email syntax is not checked and duplicates are allowed.
package participants
