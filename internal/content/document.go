package content

// Document is one language's content for a site. Every section is optional and
// present or absent as a whole; renderers skip absent sections entirely.
type Document struct {
	Meta             Meta         `yaml:"meta"`
	CompanyInfo      CompanyInfo  `yaml:"companyInfo"`
	FocusAreas       []Item       `yaml:"focusAreas"`
	Advantages       *Section     `yaml:"advantages"`
	BrandPositioning *Section     `yaml:"brandPositioning"`
	BrandIdentity    *Section     `yaml:"brandIdentity"`
	ProductValue     *Section     `yaml:"productValue"`
	ScenarioDemand   *Section     `yaml:"scenarioDemand"`
	BrandSoul        *Section     `yaml:"brandSoul"`
	BrandNarrative   *Section     `yaml:"brandNarrative"`
	CaseStudies      *Section     `yaml:"caseStudies"`
	ContactInfo      *ContactInfo `yaml:"contactInfo"`

	// Brief is the project description shown in the "learn more" dialog. It is
	// loaded from brief.<lang>.md next to the content document.
	Brief *Brief `yaml:"-"`
}

// Meta carries the page metadata for one language.
type Meta struct {
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Keywords      []string `yaml:"keywords"`
	OGTitle       string   `yaml:"ogTitle"`
	OGDescription string   `yaml:"ogDescription"`
	SiteName      string   `yaml:"siteName"`
	Author        string   `yaml:"author"`
}

// CompanyInfo feeds the hero and the footer.
type CompanyInfo struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Slogan   string `yaml:"slogan"`
	Subtitle string `yaml:"subtitle"`
	Focus    string `yaml:"focus"`
}

// Section is a titled list of cards. Subtitle, when set, overrides the chrome subtitle.
type Section struct {
	Subtitle string `yaml:"subtitle"`
	Items    []Item `yaml:"items"`
}

// Item is a single card. Optional fields are used by the section types that need them.
type Item struct {
	ID           string   `yaml:"id"`
	Icon         string   `yaml:"icon"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Color        string   `yaml:"color"`
	Step         int      `yaml:"step"`
	Highlights   []string `yaml:"highlights"`
	Technologies []string `yaml:"technologies"`
	Input        []string `yaml:"input"`
	Output       []string `yaml:"output"`
	Templates    []string `yaml:"templates"`
	Client       string   `yaml:"client"`
	Metrics      []Metric `yaml:"metrics"`
}

// Metric is a headline number on a case study card.
type Metric struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// ContactInfo lists the ways to reach the company.
type ContactInfo struct {
	Email     string    `yaml:"email"`
	Phone     string    `yaml:"phone"`
	Address   string    `yaml:"address"`
	Inquiries []Inquiry `yaml:"inquiries"`
}

// Inquiry is a pre-filled mailto link for one contact intent.
type Inquiry struct {
	Icon    string `yaml:"icon"`
	Label   string `yaml:"label"`
	Subject string `yaml:"subject"`
}

// Brief is the Markdown project description.
type Brief struct {
	Title string
	Body  string
}

// Section keys, in page order. They double as anchor ids and UI text prefixes.
const (
	KeyFocusAreas       = "focusAreas"
	KeyAdvantages       = "advantages"
	KeyBrandPositioning = "brandPositioning"
	KeyBrandIdentity    = "brandIdentity"
	KeyProductValue     = "productValue"
	KeyScenarioDemand   = "scenarioDemand"
	KeyBrandSoul        = "brandSoul"
	KeyBrandNarrative   = "brandNarrative"
	KeyCaseStudies      = "caseStudies"
	KeyContactInfo      = "contactInfo"
)

// SectionKeys returns every section key in page order.
func SectionKeys() []string {
	return []string{
		KeyFocusAreas,
		KeyAdvantages,
		KeyBrandPositioning,
		KeyBrandIdentity,
		KeyProductValue,
		KeyScenarioDemand,
		KeyBrandSoul,
		KeyBrandNarrative,
		KeyCaseStudies,
		KeyContactInfo,
	}
}

// Section returns the card section stored under key, or nil when it is absent or
// key does not name a card section.
func (d *Document) Section(key string) *Section {
	if d == nil {
		return nil
	}
	switch key {
	case KeyAdvantages:
		return d.Advantages
	case KeyBrandPositioning:
		return d.BrandPositioning
	case KeyBrandIdentity:
		return d.BrandIdentity
	case KeyProductValue:
		return d.ProductValue
	case KeyScenarioDemand:
		return d.ScenarioDemand
	case KeyBrandSoul:
		return d.BrandSoul
	case KeyBrandNarrative:
		return d.BrandNarrative
	case KeyCaseStudies:
		return d.CaseStudies
	}
	return nil
}

// Has reports whether the section under key is present.
func (d *Document) Has(key string) bool {
	if d == nil {
		return false
	}
	switch key {
	case KeyFocusAreas:
		return len(d.FocusAreas) > 0
	case KeyContactInfo:
		return d.ContactInfo != nil
	}
	return d.Section(key) != nil
}

// Present returns the keys of the sections present in the document, in page order.
func (d *Document) Present() []string {
	var out []string
	for _, k := range SectionKeys() {
		if d.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// itemCount returns the number of cards under key (inquiries for contact info).
func (d *Document) itemCount(key string) int {
	switch key {
	case KeyFocusAreas:
		return len(d.FocusAreas)
	case KeyContactInfo:
		if d.ContactInfo == nil {
			return 0
		}
		return len(d.ContactInfo.Inquiries)
	}
	if s := d.Section(key); s != nil {
		return len(s.Items)
	}
	return 0
}
