// Package text provides a display-facing string value that carries an
// optional localization identity (namespace and key) alongside its
// source text.
package text

// Text is a localizable display string. A Text created from a plain
// string is culture-invariant; one created with a namespace and key
// can be swapped by a localization table at display time.
type Text struct {
	Namespace string
	Key       string
	Source    string
}

// Empty is the zero text.
var Empty = Text{}

// FromString returns a culture-invariant text.
func FromString(source string) Text {
	return Text{Source: source}
}

// Localized returns a text with a localization identity and its
// source-language fallback.
func Localized(namespace, key, source string) Text {
	return Text{Namespace: namespace, Key: key, Source: source}
}

// String returns the source text.
func (t Text) String() string {
	return t.Source
}

// IsEmpty reports whether the text has no content and no identity.
func (t Text) IsEmpty() bool {
	return t == Empty
}

// IsLocalizable reports whether the text carries a localization
// identity.
func (t Text) IsLocalizable() bool {
	return t.Namespace != "" || t.Key != ""
}

// Identical reports whether two texts share the same localization
// identity, or the same source when neither is localizable.
func (t Text) Identical(other Text) bool {
	if t.IsLocalizable() || other.IsLocalizable() {
		return t.Namespace == other.Namespace && t.Key == other.Key
	}
	return t.Source == other.Source
}
