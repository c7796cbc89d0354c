package catalog

// marketsFile is the on-disk shape of markets/{locale}.yaml.
type marketsFile struct {
	Markets []marketRecord `yaml:"markets"`
}

type marketRecord struct {
	ID         int               `yaml:"id"`
	Variant    string            `yaml:"variant,omitempty"`
	Name       string            `yaml:"name"`
	Outcomes   []outcomeRecord   `yaml:"outcomes,omitempty"`
	Attributes []attributeRecord `yaml:"attributes,omitempty"`
}

type outcomeRecord struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type attributeRecord struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// profilesFile is the on-disk shape of profiles/{locale}.yaml.
type profilesFile struct {
	Competitors []competitorRecord `yaml:"competitors"`
}

type competitorRecord struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Abbreviation string         `yaml:"abbreviation,omitempty"`
	Country      string         `yaml:"country,omitempty"`
	Players      []playerRecord `yaml:"players,omitempty"`
}

type playerRecord struct {
	ID           string `yaml:"id"`
	FirstName    string `yaml:"first_name,omitempty"`
	LastName     string `yaml:"last_name,omitempty"`
	Name         string `yaml:"name,omitempty"`
	JerseyNumber string `yaml:"jersey_number,omitempty"`
}

// eventsFileRecord is the on-disk shape of events.yaml.
type eventsFileRecord struct {
	Events []eventRecord `yaml:"events"`
}

type eventRecord struct {
	ID          string              `yaml:"id"`
	Kind        string              `yaml:"kind"`
	Names       map[string]string   `yaml:"names,omitempty"`
	Competitors []participantRecord `yaml:"competitors,omitempty"`
}

type participantRecord struct {
	ID        string            `yaml:"id"`
	Qualifier string            `yaml:"qualifier,omitempty"`
	Names     map[string]string `yaml:"names,omitempty"`
}
