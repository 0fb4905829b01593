package upload

import "errors"

var ErrUnknownCategory = errors.New("unknown upload category")

// Category identifies which competition phase a spreadsheet belongs to.
type Category string

const (
	Registered Category = "registered"
	Round1     Category = "round1"
	Winners    Category = "winners"
)

var Categories = []Category{Registered, Round1, Winners}

func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case Registered, Round1, Winners:
		return c, nil
	}
	return "", ErrUnknownCategory
}

// FileField is the multipart form field the front-end submits for this
// category ("registeredFile", "round1File", "winnersFile").
func (c Category) FileField() string {
	return string(c) + "File"
}

// Filename is the fixed on-disk name. One name per category, so an
// upload overwrites the category's prior file.
func (c Category) Filename() string {
	return string(c) + ".xlsx"
}
