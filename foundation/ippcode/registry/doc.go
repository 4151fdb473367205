// File: doc.go
// Title: IPPcode24 Instruction Registry Package Documentation
// Description: Fixed table of IPPcode24 instructions and the argument kinds
//              each of them expects.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial registry implementation

/*
Package registry provides the IPPcode24 instruction table.

Every instruction name maps to a Signature listing the argument kinds it
expects in positional order. Lookups ignore letter case. The table is
built once and never changes afterwards, so a Registry may be shared
freely between goroutines.

The header marker .IPPcode24 is part of the table as a zero-argument
pseudo entry. Lookup never returns it; the parser checks the header with
Header instead.
*/
package registry
