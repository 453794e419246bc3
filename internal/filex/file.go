// Package filex contains file helpers for recitation audio uploads.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// audioContentTypes maps file extensions to the MIME types the backend's
// speech recognizer accepts.
var audioContentTypes = map[string]string{
	".webm": "audio/webm",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".opus": "audio/ogg; codecs=opus",
	".wav":  "audio/wav",
	".wave": "audio/wav",
}

// AudioContentType returns the MIME type for path based on its extension.
// Unknown extensions fall back to "audio/webm", matching the default the
// original recorder produced.
func AudioContentType(path string) string {
	if ct, ok := audioContentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "audio/webm"
}

// CheckAudioFile verifies that path exists, is a regular file, and is not
// empty, so an obviously unusable submission fails before any network work.
func CheckAudioFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("audio file: %w", err)
	}
	if fi.IsDir() {
		return fmt.Errorf("audio file %s is a directory", path)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("audio file %s is empty", path)
	}
	return nil
}
