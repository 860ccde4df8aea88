package content

// Link is a labelled call-to-action.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Publication is an article listed on the site.
type Publication struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Site holds the page copy shared across sections.
type Site struct {
	Brand               string        `json:"brand"`
	TopCtaLabel         string        `json:"topCtaLabel"`
	Eyebrow             string        `json:"eyebrow"`
	HeroTitle           string        `json:"heroTitle"`
	HeroLede            string        `json:"heroLede"`
	HeroPrimary         Link          `json:"heroPrimary"`
	HeroSecondary       Link          `json:"heroSecondary"`
	FocusSummary        string        `json:"focusSummary"`
	WorkEyebrow         string        `json:"workEyebrow"`
	WorkTitle           string        `json:"workTitle"`
	StackEyebrow        string        `json:"stackEyebrow"`
	StackTitle          string        `json:"stackTitle"`
	TimelineEyebrow     string        `json:"timelineEyebrow"`
	TimelineTitle       string        `json:"timelineTitle"`
	ContactEyebrow      string        `json:"contactEyebrow"`
	ContactTitle        string        `json:"contactTitle"`
	ContactLede         string        `json:"contactLede"`
	ContactPrimary      Link          `json:"contactPrimary"`
	ContactSecondary    Link          `json:"contactSecondary"`
	SocialTwitter       string        `json:"socialTwitter"`
	SocialMedium        string        `json:"socialMedium"`
	SocialLinkedin      string        `json:"socialLinkedin"`
	SocialGithub        string        `json:"socialGithub"`
	LanguageProficiency string        `json:"languageProficiency"`
	AdditionalSkills    []string      `json:"additionalSkills"`
	Certifications      []string      `json:"certifications"`
	Publications        []Publication `json:"publications"`
	FooterText          string        `json:"footerText"`
}

// Project is a portfolio entry.
type Project struct {
	Title      string `json:"title"`
	Type       string `json:"type"`
	Summary    string `json:"summary"`
	Outcome    string `json:"outcome"`
	PreviewSrc string `json:"previewSrc"`
	PreviewAlt string `json:"previewAlt"`
	AppURL     string `json:"appUrl"`
	RepoURL    string `json:"repoUrl"`
}

// Experience is one position on the career timeline.
type Experience struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Period     string   `json:"period"`
	Detail     string   `json:"detail"`
	Highlights []string `json:"highlights"`
}

// Content is everything the public page renders.
type Content struct {
	Site       Site         `json:"site"`
	Projects   []Project    `json:"projects"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
}
