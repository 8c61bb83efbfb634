package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderArt(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"none", nil, ""},
		{"single cover", []string{"cover.jpg"}, "cover.jpg"},
		{"cover beats folder", []string{"folder.jpg", "cover.jpg"}, "cover.jpg"},
		{"front as last resort", []string{"front.png"}, "front.png"},
		{"unrelated image ignored", []string{"scan.jpg"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("fake"), 0o600))
			}

			got := FolderArt(filepath.Join(dir, "track.mp3"))

			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, filepath.Join(dir, tt.want), got)
		})
	}
}
