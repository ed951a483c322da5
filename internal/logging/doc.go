// Package logger provides the diagnostics handle for secretsanta commands.
//
// A Logger is built once by the root command from the --verbose, --debug and
// --logfile flags, then handed to workflows through their options. Nothing in
// internal/ looks a logger up globally.
//
// # Verbosity Levels
//
//   - default: warnings and errors only
//   - --verbose: adds info messages, including every composed email
//   - --debug: adds debug details such as the shuffle seed and SMTP endpoint
//
// # Destination
//
// Messages go to the standard error stream unless --logfile names a file,
// in which case they are appended to it.
//
// # Usage
//
//	log, closeLog, err := logger.Open(logfile, verbose, debug)
//	if err != nil {
//	    return err
//	}
//	defer closeLog()
//	log.Infof("Loaded %d participants", n)
package logger
