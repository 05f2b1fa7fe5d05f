package storage

import "testing"

func TestValidateFileName(t *testing.T) {
	valid := []string{"resume.pdf", "resume.PDF", "cv.doc", "cv.docx", "My Resume.DocX"}
	for _, name := range valid {
		if err := ValidateFileName(name); err != nil {
			t.Errorf("ValidateFileName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"resume.txt", "resume", "resume.pdf.exe", "archive.zip", ""}
	for _, name := range invalid {
		if err := ValidateFileName(name); err == nil {
			t.Errorf("ValidateFileName(%q) = nil, want error", name)
		}
	}
}

func TestValidateFileSize(t *testing.T) {
	if err := ValidateFileSize(1); err != nil {
		t.Errorf("1 byte should be accepted: %v", err)
	}
	if err := ValidateFileSize(MaxResumeSize); err != nil {
		t.Errorf("exactly the ceiling should be accepted: %v", err)
	}
	if err := ValidateFileSize(MaxResumeSize + 1); err == nil {
		t.Error("over the ceiling must be rejected")
	}
	if err := ValidateFileSize(0); err == nil {
		t.Error("zero size must be rejected")
	}
	if err := ValidateFileSize(-1); err == nil {
		t.Error("negative size must be rejected")
	}
}

func TestContentTypeForExtension(t *testing.T) {
	if got := ContentTypeForExtension("resume.pdf"); got != "application/pdf" {
		t.Errorf("pdf content type = %q", got)
	}
	if got := ContentTypeForExtension("weird.bin"); got != "application/octet-stream" {
		t.Errorf("fallback content type = %q", got)
	}
}
