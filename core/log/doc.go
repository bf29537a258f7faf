// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides leveled, structured logging for corekit.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial documentation

// Package log provides leveled, structured logging for corekit components.
//
// The logger writes text or JSON lines to any io.Writer and carries context
// fields through With* copies:
//
//	logger := log.New().WithName("i18n").WithLevel(log.LevelDebug)
//	logger.Info("catalog reloaded", log.Field("locale", "de"))
//
// Library code that accepts an optional logger should default to log.Nop(),
// which discards all output.
package log
