package markets

import "golang.org/x/text/language"

// AttributeFlexScore marks markets whose outcome names are shifted by the current score.
const AttributeFlexScore = "is_flex_score"

// Attribute is a named flag attached to a market description.
type Attribute struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// OutcomeDescription holds the localized name templates for one outcome.
type OutcomeDescription struct {
	ID    string                  `json:"id"`
	Names map[language.Tag]string `json:"names"`
}

// Description is the catalog entry for a market, possibly specific to a variant.
type Description struct {
	ID      int                     `json:"id"`
	Variant string                  `json:"variant,omitempty"`
	Names   map[language.Tag]string `json:"names"`

	// Outcomes is nil when the catalog carried no outcome list at all.
	Outcomes   []OutcomeDescription `json:"outcomes,omitempty"`
	Attributes []Attribute          `json:"attributes,omitempty"`
}

// Name returns the market name template for locale.
func (d Description) Name(locale language.Tag) (string, bool) {
	return lookup(d.Names, locale)
}

// HasOutcomes reports whether the description carried an outcome list.
func (d Description) HasOutcomes() bool {
	return d.Outcomes != nil
}

// Outcome finds the outcome description with the given id.
func (d Description) Outcome(id string) (OutcomeDescription, bool) {
	for _, outcome := range d.Outcomes {
		if outcome.ID == id {
			return outcome, true
		}
	}
	return OutcomeDescription{}, false
}

// HasAttribute reports whether an attribute with the given name is present.
func (d Description) HasAttribute(name string) bool {
	for _, attr := range d.Attributes {
		if attr.Name == name {
			return true
		}
	}
	return false
}

// IsFlexScore reports whether outcome names are expressed relative to the current score.
func (d Description) IsFlexScore() bool {
	return d.HasAttribute(AttributeFlexScore)
}

// Clone returns a deep copy so callers can merge locales without sharing maps.
func (d Description) Clone() Description {
	out := d
	out.Names = cloneNames(d.Names)
	if d.Outcomes != nil {
		out.Outcomes = make([]OutcomeDescription, len(d.Outcomes))
		for i, outcome := range d.Outcomes {
			out.Outcomes[i] = OutcomeDescription{ID: outcome.ID, Names: cloneNames(outcome.Names)}
		}
	}
	if d.Attributes != nil {
		out.Attributes = append([]Attribute(nil), d.Attributes...)
	}
	return out
}

// Merge folds the names of other into a copy of d. Outcomes unknown to d are appended.
func (d Description) Merge(other Description) Description {
	out := d.Clone()
	if out.Names == nil {
		out.Names = make(map[language.Tag]string, len(other.Names))
	}
	for tag, name := range other.Names {
		out.Names[tag] = name
	}
	if other.Outcomes != nil && out.Outcomes == nil {
		out.Outcomes = []OutcomeDescription{}
	}
	for _, incoming := range other.Outcomes {
		idx := -1
		for i := range out.Outcomes {
			if out.Outcomes[i].ID == incoming.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			out.Outcomes = append(out.Outcomes, OutcomeDescription{ID: incoming.ID, Names: cloneNames(incoming.Names)})
			continue
		}
		if out.Outcomes[idx].Names == nil {
			out.Outcomes[idx].Names = make(map[language.Tag]string, len(incoming.Names))
		}
		for tag, name := range incoming.Names {
			out.Outcomes[idx].Names[tag] = name
		}
	}
	for _, attr := range other.Attributes {
		if !out.HasAttribute(attr.Name) {
			out.Attributes = append(out.Attributes, attr)
		}
	}
	return out
}

// Name returns the outcome name template for locale.
func (o OutcomeDescription) Name(locale language.Tag) (string, bool) {
	return lookup(o.Names, locale)
}

func lookup(names map[language.Tag]string, locale language.Tag) (string, bool) {
	name, ok := names[locale]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

func cloneNames(in map[language.Tag]string) map[language.Tag]string {
	if in == nil {
		return nil
	}
	out := make(map[language.Tag]string, len(in))
	for tag, name := range in {
		out[tag] = name
	}
	return out
}
