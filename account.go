package peepsgo

// PeepIDKey is the reserved attribute key holding a peep's identifier.
// Caller-supplied attributes are never allowed to overwrite it.
const PeepIDKey = "peepId"

// Account is the aggregate root. Peeps are embedded in the account
// document; there is no standalone peep storage.
type Account struct {
	AccountID string `json:"accountId" bson:"accountId"`
	Peeps     []Peep `json:"peeps" bson:"peeps"`
}

// Peep is an open bag of caller-defined attributes plus the reserved
// PeepIDKey entry. Insertion order within Account.Peeps is significant.
type Peep map[string]interface{}

func (p Peep) ID() string {
	id, _ := p[PeepIDKey].(string)
	return id
}

func (p Peep) clone() Peep {
	cp := make(Peep, len(p))
	for k, v := range p {
		cp[k] = v
	}
	return cp
}

// merge returns a copy of p with attrs laid shallowly over it. Like-named
// fields are overwritten, unnamed fields survive, PeepIDKey is skipped.
func (p Peep) merge(attrs map[string]interface{}) Peep {
	out := p.clone()
	for k, v := range attrs {
		if k == PeepIDKey {
			continue
		}
		out[k] = v
	}
	return out
}
