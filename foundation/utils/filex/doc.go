// Package filex implements the file access helpers of the analyzer CLI.
//
// Package: filex
// Title: File Access Utilities
// Description: Reads source text from files or streams and writes output
//              files. Failures are returned as coded errors so the caller can
//              map them to the input or output exit status directly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-16 v0.2.0: Reduced to read/write helpers returning coded errors
//
// # Reading
//
//	source, err := filex.ReadString("prog.ippc")   // INPUT_ACCESS on failure
//	source, err := filex.ReadAllString(os.Stdin, "stdin")
//
// # Writing
//
// WriteWith creates the file, hands it to the callback and closes it. A
// failure to create or close the file is an OUTPUT_ACCESS error; errors
// returned by the callback are passed through unchanged.
//
//	err := filex.WriteWith("prog.xml", 0o644, func(w io.Writer) error {
//		return emitter.Emit(w, prog)
//	})
package filex
