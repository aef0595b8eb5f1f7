package models

import (
	"encoding/json"
	"time"
)

// PackageSizes is the menu of session counts offered when a package is
// purchased. Stored sizes are not validated against it.
var PackageSizes = []int{1, 5, 10, 20}

// Package represents a purchased quota of training sessions
type Package struct {
	// ID is the unique identifier for the package
	ID string

	// Size is the total number of sessions purchased
	Size int

	// Used is the number of sessions consumed; written only by the reindexer
	Used int

	// AddedISO is the purchase date (yyyy-MM-dd), used as the tie-break
	// when a client has several eligible packages
	AddedISO string

	// Owner is the client or shared client group the quota belongs to
	Owner Owner
}

// Active reports whether the package still has unused quota.
func (p *Package) Active() bool {
	return p.Used < p.Size
}

// Exhausted reports whether the quota is fully consumed.
func (p *Package) Exhausted() bool {
	return p.Used >= p.Size
}

// PurchaseTime parses AddedISO for ordering. Missing or malformed dates
// sort as the zero time, so undated packages are charged first.
func (p *Package) PurchaseTime() time.Time {
	t, err := time.Parse("2006-01-02", p.AddedISO)
	if err != nil {
		return time.Time{}
	}
	return t
}

// packageDoc is the stored document shape: a sole owner is written as
// clientName, a shared group as clientNames, never both.
type packageDoc struct {
	ID          string   `json:"id"`
	Size        int      `json:"size"`
	Used        int      `json:"used"`
	AddedISO    string   `json:"addedISO"`
	ClientName  string   `json:"clientName,omitempty"`
	ClientNames []string `json:"clientNames,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (p *Package) MarshalJSON() ([]byte, error) {
	doc := packageDoc{
		ID:       p.ID,
		Size:     p.Size,
		Used:     p.Used,
		AddedISO: p.AddedISO,
	}
	if p.Owner.Shared() {
		doc.ClientNames = p.Owner.Names()
	} else {
		doc.ClientName = p.Owner.Primary()
	}
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler. Documents written with either
// owner field decode to the same tagged variant; clientNames wins when both
// are present.
func (p *Package) UnmarshalJSON(data []byte) error {
	var doc packageDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	p.ID = doc.ID
	p.Size = doc.Size
	p.Used = doc.Used
	p.AddedISO = doc.AddedISO
	if len(doc.ClientNames) > 0 {
		p.Owner = SharedOwner(doc.ClientNames)
	} else if doc.ClientName != "" {
		p.Owner = SingleOwner(doc.ClientName)
	} else {
		p.Owner = Owner{}
	}
	return nil
}
