package domain

const (
	VariantMarketing = "marketing"
	VariantClassic   = "classic"
)

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type PricingPlan struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
	Color       string   `json:"color"`
}

// CustomPrice marks a plan that is quoted by sales instead of listed.
const CustomPrice = "Custom"

func (p PricingPlan) IsCustom() bool {
	return p.Price == CustomPrice
}

// DisplayPrice is "$49" for listed plans and "Custom" for quoted ones.
func (p PricingPlan) DisplayPrice() string {
	if p.IsCustom() {
		return p.Price
	}
	return "$" + p.Price
}

func (p PricingPlan) CallToAction() string {
	if p.IsCustom() {
		return "Contact Sales"
	}
	return "Start Free Trial"
}

type Hero struct {
	Badge     string `json:"badge"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Primary   Link   `json:"primary"`
	Secondary Link   `json:"secondary"`
	ImageURL  string `json:"image_url,omitempty"`
}

type Callout struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Action Link   `json:"action"`
}

type FooterColumn struct {
	Heading string   `json:"heading"`
	Items   []string `json:"items"`
}

type Footer struct {
	Tagline   string         `json:"tagline"`
	Columns   []FooterColumn `json:"columns"`
	Copyright string         `json:"copyright"`
}

type LandingPage struct {
	Variant         string        `json:"variant"`
	Brand           string        `json:"brand"`
	Nav             []Link        `json:"nav"`
	Hero            Hero          `json:"hero"`
	Highlights      []Stat        `json:"highlights,omitempty"`
	Stats           []Stat        `json:"stats,omitempty"`
	FeaturesHeading string        `json:"features_heading"`
	FeaturesIntro   string        `json:"features_intro,omitempty"`
	Features        []Feature     `json:"features"`
	PricingHeading  string        `json:"pricing_heading,omitempty"`
	PricingIntro    string        `json:"pricing_intro,omitempty"`
	Plans           []PricingPlan `json:"plans,omitempty"`
	Callout         *Callout      `json:"callout,omitempty"`
	Footer          *Footer       `json:"footer,omitempty"`
}
