package youtube

import "strings"

// IdentifierKind classifies the lexical shape of a channel reference.
type IdentifierKind string

// IdentifierKind constants define the three lookup strategies.
const (
	IdentifierKindID       IdentifierKind = "ID"
	IdentifierKindHandle   IdentifierKind = "HANDLE"
	IdentifierKindUsername IdentifierKind = "USERNAME"
)

// ChannelIdentifier is a channel reference together with its resolved kind.
// Classification happens once, at construction; the value after that is
// read-only.
type ChannelIdentifier struct {
	Kind  IdentifierKind
	Value string
}

// ClassifyIdentifier determines which lookup strategy a raw identifier needs.
// First match wins:
//  1. "UC" prefix  -> canonical channel ID
//  2. "@" prefix   -> handle (prefix stripped from Value)
//  3. anything else -> legacy username
func ClassifyIdentifier(raw string) ChannelIdentifier {
	switch {
	case strings.HasPrefix(raw, "UC"):
		return ChannelIdentifier{Kind: IdentifierKindID, Value: raw}
	case strings.HasPrefix(raw, "@"):
		return ChannelIdentifier{Kind: IdentifierKindHandle, Value: strings.TrimPrefix(raw, "@")}
	default:
		return ChannelIdentifier{Kind: IdentifierKindUsername, Value: raw}
	}
}
