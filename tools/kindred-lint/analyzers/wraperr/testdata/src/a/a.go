package a

import (
	"errors"
	"fmt"
)

func bad(err error) error {
	return fmt.Errorf("finding person: %v", err) // want "fmt.Errorf formats err without %w"
}

func badString(err error) error {
	return fmt.Errorf("finding person: %s", err) // want "fmt.Errorf formats err without %w"
}

func good(err error) error {
	return fmt.Errorf("finding person: %w", err)
}

func goodNoErr(id int64) error {
	return fmt.Errorf("person not found: %d", id)
}

func goodNew() error {
	return errors.New("target surname is required")
}
