package storage

import (
	"fmt"
	"regexp"

	"github.com/pixil98/go-errors"
)

var identifierPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidatingSpec is anything loadable as content: it can vet itself at load
// time so authoring mistakes fail the boot instead of the player.
type ValidatingSpec interface {
	Validate() error
}

// Asset is the on-disk envelope for one content record.
type Asset[T ValidatingSpec] struct {
	Version    uint   `json:"version"`
	Identifier string `json:"id"`
	Spec       T      `json:"spec"`
}

func (a *Asset[T]) Id() string {
	return a.Identifier
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	if a.Version == 0 {
		el.Add(fmt.Errorf("version must be set"))
	}

	if a.Identifier == "" {
		el.Add(fmt.Errorf("id must be set"))
	} else if !identifierPattern.MatchString(a.Identifier) {
		el.Add(fmt.Errorf("id must be lowercase alphanumeric with dashes"))
	}

	el.Add(a.Spec.Validate())

	return el.Err()
}
