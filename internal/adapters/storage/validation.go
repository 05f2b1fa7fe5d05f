package storage

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// MaxResumeSize is the upload size ceiling (5 MiB).
const MaxResumeSize = 5 * 1024 * 1024

// allowedExtensions are the accepted resume file extensions (lowercase).
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// extensionContentTypes maps allowed extensions to their MIME types for
// object-store uploads.
var extensionContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ValidateFileName checks that the file name carries an allowed resume
// extension. The check is case-insensitive.
func ValidateFileName(fileName string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		return fmt.Errorf("invalid file type %q, allowed: %s", ext, strings.Join(AllowedExtensions(), ", "))
	}
	return nil
}

// ValidateFileSize checks that the size is positive and within the ceiling.
func ValidateFileSize(sizeBytes int64) error {
	if sizeBytes <= 0 {
		return fmt.Errorf("file size must be greater than 0")
	}
	if sizeBytes > MaxResumeSize {
		return fmt.Errorf("file too large, maximum size is %d MB", MaxResumeSize/(1024*1024))
	}
	return nil
}

// AllowedExtensions returns the accepted extensions in stable order.
func AllowedExtensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ContentTypeForExtension returns the MIME type for an allowed extension,
// falling back to application/octet-stream.
func ContentTypeForExtension(fileName string) string {
	if ct, ok := extensionContentTypes[strings.ToLower(filepath.Ext(fileName))]; ok {
		return ct
	}
	return "application/octet-stream"
}
