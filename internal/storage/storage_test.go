package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResumeKey(t *testing.T) {
	id := uuid.MustParse("5f3c1a2e-8a4d-4c6b-9b1e-2d7f8e9a0b1c")

	assert.Equal(t,
		"resumes/5f3c1a2e-8a4d-4c6b-9b1e-2d7f8e9a0b1c/resume.pdf",
		ResumeKey(id, "resume.pdf"))
}

func TestResumeKey_FlattensPaths(t *testing.T) {
	id := uuid.MustParse("5f3c1a2e-8a4d-4c6b-9b1e-2d7f8e9a0b1c")

	assert.Equal(t,
		"resumes/5f3c1a2e-8a4d-4c6b-9b1e-2d7f8e9a0b1c/cv.pdf",
		ResumeKey(id, "../../etc/cv.pdf"))
	assert.Equal(t,
		"resumes/5f3c1a2e-8a4d-4c6b-9b1e-2d7f8e9a0b1c/cv.pdf",
		ResumeKey(id, "C:\\Users\\alice\\cv.pdf"))
}
