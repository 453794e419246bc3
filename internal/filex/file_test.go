package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAudioContentType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"recitation.webm", "audio/webm"},
		{"take2.OGG", "audio/ogg"},
		{"fatihah.opus", "audio/ogg; codecs=opus"},
		{"x.wav", "audio/wav"},
		{"x.wave", "audio/wav"},
		{"unknown.mp3", "audio/webm"},
		{"noext", "audio/webm"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, AudioContentType(tt.path))
		})
	}
}

func TestCheckAudioFile_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.webm")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o660))
	require.NoError(t, CheckAudioFile(path))
}

func TestCheckAudioFile_Missing(t *testing.T) {
	require.Error(t, CheckAudioFile(filepath.Join(t.TempDir(), "absent.webm")))
}

func TestCheckAudioFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.webm")
	require.NoError(t, os.WriteFile(path, nil, 0o660))
	require.Error(t, CheckAudioFile(path))
}

func TestCheckAudioFile_Directory(t *testing.T) {
	require.Error(t, CheckAudioFile(t.TempDir()))
}
