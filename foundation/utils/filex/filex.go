// File: filex.go
// Title: Core File Utilities
// Description: Implements reading of source text and writing of output files
//              with coded errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-16 v0.2.0: Coded errors, stream reading, WriteWith

package filex

import (
	"errors"
	"io"
	"io/fs"
	"os"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
)

// DefaultFileMode is the permission of created output files
const DefaultFileMode os.FileMode = 0o644

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ===============================
// File Reading Operations
// ===============================

// ReadFile reads the entire file and returns its contents
func ReadFile(path string) ([]byte, error) {
	if IsDir(path) {
		return nil, mdwerror.New("path is a directory").
			WithCode(mdwerror.CodeInputAccess).
			WithOperation("filex.ReadFile").
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		message := "failed to read file"
		if errors.Is(err, fs.ErrNotExist) {
			message = "file not found"
		}
		return nil, mdwerror.Wrap(err, message).
			WithCode(mdwerror.CodeInputAccess).
			WithOperation("filex.ReadFile").
			WithDetail("path", path)
	}
	return content, nil
}

// ReadString reads the entire file and returns its contents as a string
func ReadString(path string) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReadAllString reads r to the end. name identifies the stream in errors.
func ReadAllString(r io.Reader, name string) (string, error) {
	if r == nil {
		return "", mdwerror.New("no input stream").
			WithCode(mdwerror.CodeInputAccess).
			WithOperation("filex.ReadAllString").
			WithDetail("path", name)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read stream").
			WithCode(mdwerror.CodeInputAccess).
			WithOperation("filex.ReadAllString").
			WithDetail("path", name)
	}
	return string(content), nil
}

// ===============================
// File Writing Operations
// ===============================

// WriteWith creates or truncates the file at path and passes it to write.
// The file is closed in every case.
func WriteWith(path string, perm os.FileMode, write func(io.Writer) error) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file").
			WithCode(mdwerror.CodeOutputAccess).
			WithOperation("filex.WriteWith").
			WithDetail("path", path)
	}

	if err := write(file); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return mdwerror.Wrap(err, "failed to close file").
			WithCode(mdwerror.CodeOutputAccess).
			WithOperation("filex.WriteWith").
			WithDetail("path", path)
	}
	return nil
}

// WriteString writes a string to a file
func WriteString(path, content string, perm os.FileMode) error {
	return WriteWith(path, perm, func(w io.Writer) error {
		if _, err := io.WriteString(w, content); err != nil {
			return mdwerror.Wrap(err, "failed to write file").
				WithCode(mdwerror.CodeOutputAccess).
				WithOperation("filex.WriteString").
				WithDetail("path", path)
		}
		return nil
	})
}
