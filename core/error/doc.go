// Package error provides the structured error type used throughout chrono.
//
// Package: error
// Title: chrono Error Handling
// Description: Errors carry a code, a severity derived from the code, the
//              operation that failed and structured details. Calendar code
//              reports rejected field values with "field", "value", "min" and
//              "max" details so diagnostics never need to re-derive context.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Calendar codes, errors.As based lookups
//
// Usage:
//
//	import mdwerror "github.com/msto63/chrono/core/error"
//
//	err := mdwerror.New("MonthOfYear 13 is out of range [1, 12]").
//		WithCode(mdwerror.CodeValueOutOfRange).
//		WithOperation("calendar.MonthOfYearOf").
//		WithDetail("value", 13)
//
//	if mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
//		// reject input
//	}
package error
