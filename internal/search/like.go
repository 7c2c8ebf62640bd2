package search

import "strings"

var likeEscaper = strings.NewReplacer(
	LikeEscape, LikeEscape+LikeEscape,
	"%", LikeEscape+"%",
	"_", LikeEscape+"_",
)

// EscapeLike escapes LIKE metacharacters so text matches literally under
// ESCAPE '\'.
func EscapeLike(text string) string {
	return likeEscaper.Replace(text)
}

// ContainsPattern returns a LIKE pattern matching any value that contains
// text literally.
func ContainsPattern(text string) string {
	return "%" + EscapeLike(text) + "%"
}
