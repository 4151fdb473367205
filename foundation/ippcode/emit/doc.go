// File: doc.go
// Title: IPPcode24 Tree Emitters Package Documentation
// Description: Serializes program trees as XML, YAML or a plain table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial emitters

/*
Package emit writes a finished program tree to an output stream.

	emitter, err := emit.ForFormat("xml", emit.Options{Indent: 4})
	if err != nil {
		return err // PARAMETER
	}
	if err := emitter.Emit(os.Stdout, prog); err != nil {
		return err // OUTPUT_ACCESS
	}

The XML form is the canonical one:

	<?xml version="1.0" encoding="UTF-8"?>
	<program language="IPPcode24">
	    <instruction order="1" opcode="DEFVAR">
	        <arg1 type="var">GF@x</arg1>
	    </instruction>
	</program>
*/
package emit
