// Package log provides structured, leveled logging for chrono.
//
// Package: log
// Title: chrono Structured Logging
// Description: Entries carry a level, message, logger name, fields and an
//              optional error. Structured errors from core/error are expanded
//              into code, operation and details by every formatter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON})
//	logger.Info("month resolved", log.Int("month", 11), log.String("resolver", "previous"))
//	logger.LogError(err)
package log
