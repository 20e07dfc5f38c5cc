package schema

// Built-in schemas, one per poster type. Field order matches the editor's
// form layout.

// Album is the schema for music posters.
var Album = MustNew("album",
	Field{Key: "artistName", Label: "Artist Name", Kind: KindText, Default: "Artist name"},
	Field{Key: "albumName", Label: "Album Name", Kind: KindText, Default: "ALBUM NAME"},
	Field{Key: "fontSize", Label: "Font Size", Kind: KindRange, Min: 20, Max: 100, Default: 40.0},
	Field{Key: "outerMargin", Label: "Outer Margin Size", Kind: KindRange, Min: 0, Max: 100, Default: 10.0},
	Field{Key: "bgColor", Label: "Background Color", Kind: KindColor, Default: "#ffffff"},
	Field{Key: "useHighResCover", Label: "Use High-Resolution Cover", Kind: KindToggle, Default: false},
	Field{Key: "showScanCode", Label: "Show Scan Code", Kind: KindToggle, Default: false},
	Field{Key: "albumCover", Label: "Cover", Kind: KindFile, Default: "", Accept: "image/jpeg, image/png"},
)

// Movie is the schema for movie posters.
var Movie = MustNew("movie",
	Field{Key: "movieTitle", Label: "Movie Title", Kind: KindText, Default: "MOVIE TITLE"},
	Field{Key: "directorName", Label: "Director", Kind: KindText, Default: "Director name"},
	Field{Key: "fontSize", Label: "Font Size", Kind: KindRange, Min: 20, Max: 100, Default: 40.0},
	Field{Key: "outerMargin", Label: "Outer Margin Size", Kind: KindRange, Min: 0, Max: 100, Default: 10.0},
	Field{Key: "bgColor", Label: "Background Color", Kind: KindColor, Default: "#ffffff"},
	Field{Key: "posterOrientation", Label: "Poster Orientation", Kind: KindChoice,
		Options: []Option{
			{ID: "portrait", Label: "Portrait"},
			{ID: "landscape", Label: "Landscape"},
		},
		Default: "portrait"},
	Field{Key: "moviePoster", Label: "Movie Poster", Kind: KindFile, Default: "", Accept: "image/jpeg, image/png"},
)

// ByType returns the schema for a poster type name, or nil when the type
// is unknown.
func ByType(posterType string) *Schema {
	switch posterType {
	case "album", "music":
		return Album
	case "movie":
		return Movie
	}
	return nil
}
