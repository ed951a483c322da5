// Package ui provides semantic text formatting for CLI output.
//
// Each Formatter colors its text when the terminal supports it. When NO_COLOR
// is set or color is unavailable, a text decoration is used instead so the
// meaning survives:
//
//	ui.Code.Sprint("secretsanta run --send")  // `secretsanta run --send`
//	ui.Name.Sprint("Alice")                   // 'Alice'
//	ui.Email.Sprint("alice@example.com")      // <alice@example.com>
//	ui.Muted.Sprint("dry run")                // (dry run)
//	ui.Success.Sprint("✓")                    // ✓
package ui
