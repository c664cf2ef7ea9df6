package podcast

import (
	"strings"

	"github.com/samber/lo"
)

// Person is an author, webmaster or owner. At least one of Name and Email
// must be set.
type Person struct {
	Name  string
	Email string
}

// NewPerson returns ErrEmptyPerson if both name and email are blank.
func NewPerson(name, email string) (Person, error) {
	p := Person{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
	if !p.IsSet() {
		return Person{}, ErrEmptyPerson
	}
	return p, nil
}

// IsSet reports whether the person has a name or an email.
func (p Person) IsSet() bool {
	return p.Name != "" || p.Email != ""
}

// String returns the editor form, see editorString.
func (p Person) String() string {
	return p.editorString()
}

// editorString is the "email (name)" form used by managingEditor, webMaster
// and item author. A person without email renders as the bare name.
func (p Person) editorString() string {
	switch {
	case p.Email != "" && p.Name != "":
		return p.Email + " (" + p.Name + ")"
	case p.Email != "":
		return p.Email
	default:
		return p.Name
	}
}

// creatorString is the "name <email>" form used by dc:creator.
func (p Person) creatorString() string {
	switch {
	case p.Name != "" && p.Email != "":
		return p.Name + " <" + p.Email + ">"
	case p.Name != "":
		return p.Name
	default:
		return p.Email
	}
}

// joinNames joins the names of people that have one: "A", "A and B",
// "A, B and C".
func joinNames(people []Person) string {
	names := lo.FilterMap(people, func(p Person, _ int) (string, bool) {
		return p.Name, p.Name != ""
	})
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

func validatePeople(people []Person) error {
	for _, p := range people {
		if !p.IsSet() {
			return ErrEmptyPerson
		}
	}
	return nil
}
