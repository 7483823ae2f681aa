package tags

import (
	"strconv"

	"go.senan.xyz/taglib"
)

// readWithTaglib reads metadata through TagLib, used as a fallback for FLAC
// and Ogg files that dhowden/tag cannot parse.
func readWithTaglib(path string) (*Metadata, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	t := taglibTags(raw)

	return &Metadata{
		Path:        path,
		Title:       t.get(taglib.Title),
		Artist:      t.get(taglib.Artist),
		Album:       t.get(taglib.Album),
		TrackNumber: t.getInt(taglib.TrackNumber),
	}, nil
}

// taglibTags wraps a taglib result map with helper methods.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// getInt returns the first value as an integer, or 0 if absent or invalid.
func (t taglibTags) getInt(key string) int {
	if values, ok := t[key]; ok && len(values) > 0 {
		if n, err := strconv.Atoi(values[0]); err == nil {
			return n
		}
	}
	return 0
}
