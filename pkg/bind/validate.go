package bind

import (
	"github.com/bindkit-dev/bindkit/internal/errors"
)

// ValidateHandlers checks, in order, that every name resolves to a
// callable registry entry. It fails on the first offender without
// checking the rest, so a misconfigured element never partially binds.
func ValidateHandlers(names []string, reg Registry) error {
	for _, name := range names {
		switch _, res := reg.Lookup(name); res {
		case LookupMissing:
			return errors.New("B002").WithSubject(name)
		case LookupNotCallable:
			return errors.New("B003").WithSubject(name)
		}
	}
	return nil
}
