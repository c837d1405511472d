// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep personal identifiers out of logs.
//
// National ID numbers, phone numbers, tax numbers and IBANs are personal
// data. The CLI and any service embedding the validators should log them
// through MaskedID, MaskedPhone or MaskedIBAN, never as raw strings.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.DebugContext(ctx, "validated",
//	    logger.MaskedID("tckn", input),
//	    logger.Error(res.Err),
//	)
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the encoder.
//   - WithLevel sets the minimum level; ParseLevel converts config strings.
//   - WithOutput redirects output (stderr by default so stdout stays clean
//     for command results).
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context.
package logger
