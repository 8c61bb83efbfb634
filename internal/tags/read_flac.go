package tags

import (
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// readFLAC reads Vorbis comments and the picture block with go-flac.
// dhowden/tag can fail on some FLAC files.
func readFLAC(path string) (*Metadata, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	md := &Metadata{Path: path}
	var fallbackPic *flacpicture.MetadataBlockPicture
	for _, meta := range f.Meta {
		switch meta.Type {
		case goflac.VorbisComment:
			cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
			if err != nil {
				continue
			}
			md.Title = firstComment(cmts, flacvorbis.FIELD_TITLE)
			md.Artist = firstComment(cmts, flacvorbis.FIELD_ARTIST)
			if md.Artist == "" {
				md.Artist = firstComment(cmts, "ALBUMARTIST")
			}
			md.Album = firstComment(cmts, flacvorbis.FIELD_ALBUM)
		case goflac.Picture:
			pic, err := flacpicture.ParseFromMetaDataBlock(*meta)
			if err != nil || len(pic.ImageData) == 0 {
				continue
			}
			if pic.PictureType == flacpicture.PictureTypeFrontCover && !md.HasCover() {
				md.Cover = pic.ImageData
				md.CoverMIME = pic.MIME
			} else if fallbackPic == nil {
				fallbackPic = pic
			}
		}
	}
	if !md.HasCover() && fallbackPic != nil {
		md.Cover = fallbackPic.ImageData
		md.CoverMIME = fallbackPic.MIME
	}
	return md, nil
}

func firstComment(cmts *flacvorbis.MetaDataBlockVorbisComment, key string) string {
	values, err := cmts.Get(key)
	if err != nil || len(values) == 0 {
		return ""
	}
	return values[0]
}
