package kernel

import (
	"fmt"
	"strings"

	"pharmaledger/internal/pkg/errs"
	"pharmaledger/internal/pkg/guard"
)

// ErrKeyIsNotConstructed is returned when a Key was not created through
// NewKey or KeyFromString.
var ErrKeyIsNotConstructed = errs.NewValueIsRequiredError(
	"Key must be created via NewKey or KeyFromString")

// keySeparator joins the namespace tag and the record identifier in the
// canonical string form of a key. The identifier itself joins its business
// components with "-", matching the ledger's composite key layout.
const keySeparator = ":"

// Key is a composite ledger key: a namespace tag plus one or more business
// identifiers joined into a single record identifier. Keys are built from
// business data only, never from storage-generated surrogates, so the same
// entity always maps to the same key on every backend.
//
// Example:
//
//	key, err := kernel.NewKey("drug", "Paracetamol", "SR001")
//	key.Namespace() // "drug"
//	key.ID()        // "Paracetamol-SR001"
//	key.String()    // "drug:Paracetamol-SR001"
type Key struct {
	namespace string
	id        string

	guard guard.ConstructorGuard
}

// NewKey builds a composite key from a namespace tag and one or more
// business identifier components. Components are joined with "-" into the
// record identifier. Empty namespaces or components are rejected.
func NewKey(namespace string, components ...string) (Key, error) {
	if namespace == "" {
		return Key{}, errs.NewValueIsRequiredError("namespace")
	}
	if len(components) == 0 {
		return Key{}, errs.NewValueIsRequiredError("components")
	}
	for _, c := range components {
		if c == "" {
			return Key{}, errs.NewValueIsRequiredError("component")
		}
		if strings.Contains(c, keySeparator) {
			return Key{}, errs.NewValueIsInvalidErrorWithCause(
				"component", fmt.Errorf("%q contains reserved separator %q", c, keySeparator))
		}
	}

	return Key{
		namespace: namespace,
		id:        strings.Join(components, "-"),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// KeyFromString parses the canonical "namespace:id" form produced by
// String. Used when keys travel as owner or asset references inside other
// records.
func KeyFromString(s string) (Key, error) {
	namespace, id, found := strings.Cut(s, keySeparator)
	if !found || namespace == "" || id == "" {
		return Key{}, errs.NewValueIsInvalidErrorWithCause(
			"key", fmt.Errorf("%q is not in namespace:id form", s))
	}

	return Key{
		namespace: namespace,
		id:        id,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the key was created through a constructor.
func (k Key) Validate() error {
	return k.guard.Validate(ErrKeyIsNotConstructed)
}

// Namespace returns the key's namespace tag.
func (k Key) Namespace() string {
	return k.namespace
}

// ID returns the joined business identifier within the namespace.
func (k Key) ID() string {
	return k.id
}

// String returns the canonical "namespace:id" form.
func (k Key) String() string {
	return k.namespace + keySeparator + k.id
}

// IsEqual compares two keys by namespace and identifier.
func (k Key) IsEqual(other Key) bool {
	return k.namespace == other.namespace && k.id == other.id
}
