package reminder

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/assistant/internal/field"
)

// rawPerson is the on-disk shape of a Person; birthdays are DD.MM.YYYY strings.
type rawPerson struct {
	Name     string `yaml:"name"`
	Birthday string `yaml:"birthday"`
}

// ParsePeople decodes a YAML list of {name, birthday} entries.
// Unknown keys and malformed birthdays are rejected.
func ParsePeople(data []byte) ([]Person, error) {
	var raw []rawPerson
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("reminder: parsing people: %w", err)
	}

	people := make([]Person, 0, len(raw))
	for i, r := range raw {
		name, err := field.NewName(r.Name)
		if err != nil {
			return nil, fmt.Errorf("reminder: entry %d: %w", i, err)
		}
		b, err := field.NewBirthday(r.Birthday)
		if err != nil {
			return nil, fmt.Errorf("reminder: entry %d (%s): %w", i, name, err)
		}
		people = append(people, Person{Name: name.String(), Birthday: b.Date()})
	}
	return people, nil
}
