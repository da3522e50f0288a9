package entities

import (
	"errors"
	"strings"
	"time"
)

// TemporaryIDPrefix marks identifiers minted client-side for rows not yet persisted.
const TemporaryIDPrefix = "temp-"

var ErrInvalidDependentID = errors.New("invalid dependent id")

// DependentID is either a temporary identifier (never sent to the store as an
// update or delete target) or a persistent identifier assigned by the store.
// The zero value is invalid.
type DependentID struct {
	key       string
	temporary bool
}

func TemporaryDependentID(nonce string) DependentID {
	return DependentID{key: nonce, temporary: true}
}

func PersistentDependentID(key string) DependentID {
	return DependentID{key: key}
}

// ParseDependentID reads the wire form produced by String.
func ParseDependentID(raw string) (DependentID, error) {
	raw = strings.TrimSpace(raw)
	if nonce, ok := strings.CutPrefix(raw, TemporaryIDPrefix); ok {
		if nonce == "" {
			return DependentID{}, ErrInvalidDependentID
		}
		return TemporaryDependentID(nonce), nil
	}
	if raw == "" {
		return DependentID{}, ErrInvalidDependentID
	}
	return PersistentDependentID(raw), nil
}

func (id DependentID) IsTemporary() bool { return id.temporary }

func (id DependentID) IsZero() bool { return id.key == "" }

// Key is the nonce for temporary ids and the store key for persistent ones.
func (id DependentID) Key() string { return id.key }

func (id DependentID) String() string {
	if id.temporary {
		return TemporaryIDPrefix + id.key
	}
	return id.key
}

func (id DependentID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *DependentID) UnmarshalText(b []byte) error {
	parsed, err := ParseDependentID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Dependent (enfant) is a person accompanying a permanent residence applicant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (permanent_residence_id-index): permanent_residence_id
type Dependent struct {
	ID                   DependentID `json:"id"`
	LastName             string      `json:"last_name"`
	FirstName            string      `json:"first_name"`
	Age                  int         `json:"age"`
	PermanentResidenceID string      `json:"permanent_residence_id"`
	CreatedAt            time.Time   `json:"created_at"`
}
