package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown         MIME = "unknown"
	ApplicationJSON MIME = "application/json"
)

// Matches compares a detected media type, parameters ignored, to expected.
func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// DetectFile sniffs the file content and reports its media type.
func DetectFile(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return string(Unknown), err
	}
	return mtype.String(), nil
}
