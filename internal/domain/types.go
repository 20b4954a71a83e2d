package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Identity is an opaque caller identity already verified by the host's
// authentication layer. The module never derives identities from
// unauthenticated input.
type Identity string

func (i Identity) String() string {
	return string(i)
}

// ClassID identifies a class of assets sharing one metadata record.
type ClassID string

// LocalID identifies a single asset within its class. It is chosen by the
// minter and immutable for the life of the record.
type LocalID string

// DenomSeparator joins class and local IDs into a denomination. It is
// excluded from the ID alphabet, which makes the mapping
// (classID, localID) -> denom injective.
const DenomSeparator = "/"

// MaxIDLength caps class and local ID lengths
const MaxIDLength = 128

// idPattern is the shared alphabet for class and local IDs
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

func (c ClassID) String() string {
	return string(c)
}

// Valid checks if the class ID is well formed
func (c ClassID) Valid() bool {
	return len(c) <= MaxIDLength && idPattern.MatchString(string(c))
}

func (l LocalID) String() string {
	return string(l)
}

// Valid checks if the local ID is well formed
func (l LocalID) Valid() bool {
	return len(l) <= MaxIDLength && idPattern.MatchString(string(l))
}

// Denom is the collision-free string key bridging an asset record to exactly
// one unit of balance in the fungible ledger (e.g. "art/1").
type Denom string

// NewDenom derives the denomination for an asset record
func NewDenom(classID ClassID, localID LocalID) Denom {
	return Denom(fmt.Sprintf("%s%s%s", classID, DenomSeparator, localID))
}

func (d Denom) String() string {
	return string(d)
}

// Parse splits the denomination back into class and local IDs
func (d Denom) Parse() (ClassID, LocalID, error) {
	parts := strings.SplitN(string(d), DenomSeparator, 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("malformed denom %q", string(d))
	}

	classID := ClassID(parts[0])
	localID := LocalID(parts[1])
	if !classID.Valid() || !localID.Valid() {
		return "", "", fmt.Errorf("malformed denom %q", string(d))
	}

	return classID, localID, nil
}

// Valid checks if the denomination is well formed
func (d Denom) Valid() bool {
	_, _, err := d.Parse()
	return err == nil
}

// DenomMetadata is the descriptive record the fungible ledger keeps per
// denomination. It mirrors the class metadata and the record URI so clients
// reading only the ledger can render the asset.
type DenomMetadata struct {
	Denom  Denom  `json:"denom"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	URI    string `json:"uri"`
}
