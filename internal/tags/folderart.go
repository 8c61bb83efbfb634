package tags

import (
	"os"
	"path/filepath"
)

// folderArtNames lists album art file names in priority order.
var folderArtNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FolderArt returns the album art file next to a song, or "" if there is
// none. Desktop integrations show it; the player itself only uses embedded
// covers.
func FolderArt(songPath string) string {
	dir := filepath.Dir(songPath)
	for _, name := range folderArtNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
