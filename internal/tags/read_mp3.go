package tags

import (
	"github.com/bogem/id3v2/v2"
)

// readMP3 reads ID3v2 frames with bogem/id3v2.
// dhowden/tag has issues with some UTF-16 encoded ID3 tags.
func readMP3(path string) (*Metadata, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	md := &Metadata{
		Path:   path,
		Title:  id3tag.Title(),
		Artist: id3tag.Artist(),
		Album:  id3tag.Album(),
	}
	if md.Artist == "" {
		md.Artist = getID3TextFrame(id3tag, "TPE2") // album artist
	}

	if pic, ok := frontCover(id3tag); ok {
		md.Cover = pic.Picture
		md.CoverMIME = pic.MimeType
	}
	return md, nil
}

// frontCover returns the front cover APIC frame, or the first picture.
func frontCover(id3tag *id3v2.Tag) (id3v2.PictureFrame, bool) {
	var first *id3v2.PictureFrame
	for _, frame := range id3tag.GetFrames(id3tag.CommonID("Attached picture")) {
		pic, ok := frame.(id3v2.PictureFrame)
		if !ok || len(pic.Picture) == 0 {
			continue
		}
		if pic.PictureType == id3v2.PTFrontCover {
			return pic, true
		}
		if first == nil {
			first = &pic
		}
	}
	if first == nil {
		return id3v2.PictureFrame{}, false
	}
	return *first, true
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
