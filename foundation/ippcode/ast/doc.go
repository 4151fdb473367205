// File: doc.go
// Title: IPPcode24 Program Tree Package Documentation
// Description: Defines the tree produced by the parser: a program holding
//              ordered instructions, each holding classified arguments.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial program tree implementation

/*
Package ast defines the program tree of an analyzed IPPcode24 source.

A Program is an ordered list of Instructions numbered 1..N. Every
Instruction carries its upper-case opcode and its Arguments, and every
Argument carries its 1-based position, its resolved ArgType and the
literal text extracted from the source token.

Trees are built with Program.Append, which assigns order numbers, and
checked with Validate. Consumers walk a tree with a Visitor.
*/
package ast
