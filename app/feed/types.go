package feed

import (
	"time"
)

// Raw entry types. Field presence is never guaranteed: feed dialects
// disagree on which fields they carry and in what shape, so every consumer
// treats each field as optional.

type Entry struct {
	GUID       string
	Title      string
	Link       string
	Links      []Link
	Authors    []string
	Published  *time.Time
	Summary    string
	Content    string
	Transcript string
	Enclosures []Enclosure
}

// Link is one outbound link relation of an entry. Rel and Type are empty
// for plain href lists.
type Link struct {
	Href string
	Rel  string
	Type string
}

type Enclosure struct {
	URL    string
	Type   string
	Length int64
}

// Item is the canonical record derived from one entry. Every field is
// resolved: a nil Published is the defined "unknown date" state, an empty
// Body on a news item means the summary line is omitted.
type Item struct {
	Title     string
	Author    string
	Published *time.Time
	Link      string
	Body      string
}

// Defaults substituted when an entry lacks a field.
const (
	NoTitle       = "No title"
	UnknownAuthor = "Unknown author"
	UnknownDate   = "Unknown date"
	NoLink        = "No link available"
	NoSummary     = "No summary available"
)

// PublishedLabel renders the publish time with the given layout, or the
// unknown-date label when the entry carried no timestamp.
func (i Item) PublishedLabel(layout string) string {
	if i.Published == nil {
		return UnknownDate
	}
	return i.Published.Format(layout)
}
