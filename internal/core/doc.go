// Package core is the service layer between transports and the metrics
// extractor.
//
// A [Service] accepts uploaded CSV text from the web handlers or the CLI,
// checks it at the boundary (file name, size, encoding), runs
// [metrics.Extract] under the [UploadLimiter], and keeps the result in a
// bounded [HistoryStore] so dashboards and exports can be served later.
//
// # Error Handling
//
// Errors returned by the service wrap sentinel values ([ErrNotCSV],
// [ErrFileTooLarge], [ErrTooManyUploads], [ErrAnalysisNotFound],
// [metrics.ErrEmptyInput]) and can be matched with errors.Is. [MapError]
// turns any of them into a [UserMessage] with a support code:
//
//   - FILE001-FILE006: upload and parse errors
//   - UPL002-UPL005: analysis slot and lookup errors
//   - EXP001: export errors
//   - AUTH001-AUTH002, RATE001: request gate errors
//
// # History
//
// Analyses are stored newest first. When the store is full the oldest entry
// is dropped. Nothing is persisted across restarts.
package core
