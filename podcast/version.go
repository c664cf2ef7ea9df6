package podcast

import "strings"

// Library identification used in the generator element.
const (
	LibraryName    = "podcast-feed"
	LibraryVersion = "1.0.0"
	LibraryWebsite = "https://github.com/reshetovitsme/podcast-feed"
)

func programString(name, version, uri string) string {
	var b strings.Builder
	b.WriteString(name)
	if version != "" {
		b.WriteString(" v" + version)
	}
	if uri != "" {
		b.WriteString(" " + uri)
	}
	return b.String()
}

func librarySignature() string {
	return programString(LibraryName, LibraryVersion, LibraryWebsite)
}
