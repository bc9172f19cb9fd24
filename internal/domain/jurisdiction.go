package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Jurisdiction is the administrative region a tenement is registered in.
type Jurisdiction string

const (
	WA  Jurisdiction = "WA"
	NSW Jurisdiction = "NSW"
	VIC Jurisdiction = "VIC"
	NT  Jurisdiction = "NT"
	QLD Jurisdiction = "QLD"
	TAS Jurisdiction = "TAS"
)

// Jurisdictions lists every supported jurisdiction in canonical order.
var Jurisdictions = []Jurisdiction{WA, NSW, VIC, NT, QLD, TAS}

var ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

// ParseJurisdiction normalises s and checks it against the closed set.
func ParseJurisdiction(s string) (Jurisdiction, error) {
	j := Jurisdiction(strings.ToUpper(strings.TrimSpace(s)))
	if !j.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownJurisdiction, s)
	}
	return j, nil
}

func (j Jurisdiction) Valid() bool {
	for _, known := range Jurisdictions {
		if j == known {
			return true
		}
	}
	return false
}

func (j Jurisdiction) String() string {
	return string(j)
}
