// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// Guard returns the attribute used to report a rejected argument: when the
// error chain holds a *guard.Error it is logged as a "guard" group with its
// kind, parameter name and message.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("billing")),
//	)
//
//	if _, err := guard.CheckIsInsideRange(qty, 1, 100, "qty"); err != nil {
//	    log.Warn("rejected order", logger.Guard(err))
//	    return err
//	}
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check.
package logger
