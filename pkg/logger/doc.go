// Package logger builds *slog.Logger values for the refinegen tooling.
//
// New takes functional options for the output format (text or JSON), the
// minimum level, static attributes and ContextExtractor callbacks. Records
// pass through LogHandlerDecorator, which runs the extractors before
// delegating to the slog handler. KindFromContext is always registered, so a
// context produced by WithKind tags every record logged with it:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("refinegen")),
//	)
//	ctx = logger.WithKind(ctx, "NegInt")
//	log.InfoContext(ctx, "kind rendered", logger.File(path))
//
// ParseLevel and ParseFormat turn configuration strings into options.
//
// Helper constructors in attr.go keep attribute keys consistent. Error and
// Errors return an empty Attr for nil errors, which slog drops:
//
//	log.Info("generation finished", logger.Error(err))
package logger
