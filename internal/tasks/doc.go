// package tasks implements long-running operations over the task API.
//
// The core abstraction is ExportEngine, which walks every page of the remote
// task list with a bounded worker pool and renders the combined set to CSV,
// Markdown, JSON or plain text. Operations emit progress updates via channels
// for non-blocking status reporting to CLI/UI layers.
package tasks
