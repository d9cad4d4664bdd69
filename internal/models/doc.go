// Package models defines the domain entities for the task dashboard client.
//
// The package contains three categories of types:
//
//  1. [Task] : remote API records; the client holds transient, non-authoritative
//     copies replaced wholesale on every refetch
//  2. [TaskStatus] : the status enum with exhaustively-matched display attributes
//  3. [TaskDraft] : form input validated client-side before any transport call
//
// Timestamps arrive from the API as ISO 8601 strings without a guaranteed zone
// suffix, so Task keeps them as strings and parses lazily for display and
// overdue checks. Date comparisons ("due today", "not in the past") operate on
// the date component only, matching the string-prefix contract of the API.
package models
