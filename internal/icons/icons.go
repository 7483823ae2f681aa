package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play        string
	Pause       string
	Finished    string
	Rewind      string
	FastForward string
	Note        string
	Disc        string
}

var (
	nerdIcons = Icons{
		Play:        "", // nf-fa-play
		Pause:       "", // nf-fa-pause
		Finished:    "", // nf-fa-stop
		Rewind:      "", // nf-fa-backward
		FastForward: "", // nf-fa-forward
		Note:        " ", // nf-fa-music
		Disc:        "󰀥 ",      // nf-md-album
	}

	unicodeIcons = Icons{
		Play:        "▶",
		Pause:       "⏸",
		Finished:    "⏹",
		Rewind:      "⏪",
		FastForward: "⏩",
		Note:        "🎵 ",
		Disc:        "💿 ",
	}

	noneIcons = Icons{
		Play:        ">",
		Pause:       "||",
		Finished:    "[]",
		Rewind:      "<<",
		FastForward: ">>",
		Note:        "",
		Disc:        "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Play returns the playing indicator.
func Play() string {
	return current.Play
}

// Pause returns the paused indicator.
func Pause() string {
	return current.Pause
}

// Finished returns the end-of-track indicator.
func Finished() string {
	return current.Finished
}

// Rewind returns the backward seek indicator.
func Rewind() string {
	return current.Rewind
}

// FastForward returns the forward seek indicator.
func FastForward() string {
	return current.FastForward
}

// FormatTitle formats a track title with the note icon.
func FormatTitle(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Note + name
}

// FormatAlbum formats an album name with the disc icon.
func FormatAlbum(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Disc + name
}
