// Package writers owns the output side of candidate generation.
//
// Design:
//   - LineSink applies the length window and buffers ordered writes.
//   - Output routing (stdout, single file, one file per word) lives here so the
//     engine stays domain-only and never opens files.
//   - Files are created exclusively; an existing dictionary is never touched.
package writers
