package recognition

// ComponentType is one label from the closed enumeration assigned to a DOM
// element. Exporters map these onto target widgets.
type ComponentType string

// Component type constants. The set is closed: registry construction rejects
// patterns referencing anything outside it.
const (
	TypeUnknown ComponentType = "unknown"

	// Text content
	TypeText        ComponentType = "text"
	TypeParagraph   ComponentType = "paragraph"
	TypeHeading     ComponentType = "heading"
	TypeHeroHeading ComponentType = "heroHeading"
	TypeBlockquote  ComponentType = "blockquote"
	TypeCodeBlock   ComponentType = "codeBlock"
	TypeTestimonial ComponentType = "testimonial"

	// Interactive
	TypeButton       ComponentType = "button"
	TypeCTAButton    ComponentType = "ctaButton"
	TypeSubmitButton ComponentType = "submitButton"
	TypeLink         ComponentType = "link"
	TypeNavItem      ComponentType = "navItem"

	// Media
	TypeImage       ComponentType = "image"
	TypeIcon        ComponentType = "icon"
	TypeAvatar      ComponentType = "avatar"
	TypeVideo       ComponentType = "video"
	TypeAudio       ComponentType = "audio"
	TypeEmbed       ComponentType = "embed"
	TypeMap         ComponentType = "map"
	TypeGallery     ComponentType = "gallery"
	TypeCarousel    ComponentType = "carousel"
	TypeSlider      ComponentType = "slider"
	TypeSocialIcons ComponentType = "socialIcons"

	// Lists and tables
	TypeList        ComponentType = "list"
	TypeOrderedList ComponentType = "orderedList"
	TypeListItem    ComponentType = "listItem"
	TypePriceList   ComponentType = "priceList"
	TypeTable       ComponentType = "table"

	// Forms
	TypeForm             ComponentType = "form"
	TypeInput            ComponentType = "input"
	TypeTextarea         ComponentType = "textarea"
	TypeSelect           ComponentType = "select"
	TypeCheckbox         ComponentType = "checkbox"
	TypeRadio            ComponentType = "radio"
	TypeRadioGroup       ComponentType = "radioGroup"
	TypeLabel            ComponentType = "label"
	TypeSearchBar        ComponentType = "searchBar"
	TypeNewsletterSignup ComponentType = "newsletterSignup"
	TypeLoginForm        ComponentType = "loginForm"
	TypeContactForm      ComponentType = "contactForm"

	// Structure
	TypeNav        ComponentType = "nav"
	TypeMenu       ComponentType = "menu"
	TypeBreadcrumb ComponentType = "breadcrumb"
	TypeHeader     ComponentType = "header"
	TypeFooter     ComponentType = "footer"
	TypeHero       ComponentType = "hero"
	TypeSection    ComponentType = "section"
	TypeContainer  ComponentType = "container"
	TypeGrid       ComponentType = "grid"
	TypeColumn     ComponentType = "column"
	TypeCard       ComponentType = "card"

	// Commerce
	TypePricingTable ComponentType = "pricingTable"
	TypePricingCard  ComponentType = "pricingCard"
	TypeProductCard  ComponentType = "productCard"

	// Decoration and feedback
	TypeDivider     ComponentType = "divider"
	TypeSpacer      ComponentType = "spacer"
	TypeBadge       ComponentType = "badge"
	TypeAlert       ComponentType = "alert"
	TypeTooltip     ComponentType = "tooltip"
	TypeProgressBar ComponentType = "progressBar"
	TypeAccordion   ComponentType = "accordion"
	TypeTabs        ComponentType = "tabs"
	TypeModal       ComponentType = "modal"
)

// knownTypes is the closed enumeration; registry validation checks against it.
var knownTypes = map[ComponentType]struct{}{
	TypeUnknown: {},
	TypeText: {}, TypeParagraph: {}, TypeHeading: {}, TypeHeroHeading: {},
	TypeBlockquote: {}, TypeCodeBlock: {}, TypeTestimonial: {},
	TypeButton: {}, TypeCTAButton: {}, TypeSubmitButton: {}, TypeLink: {}, TypeNavItem: {},
	TypeImage: {}, TypeIcon: {}, TypeAvatar: {}, TypeVideo: {}, TypeAudio: {},
	TypeEmbed: {}, TypeMap: {}, TypeGallery: {}, TypeCarousel: {}, TypeSlider: {},
	TypeSocialIcons: {},
	TypeList:        {}, TypeOrderedList: {}, TypeListItem: {}, TypePriceList: {}, TypeTable: {},
	TypeForm: {}, TypeInput: {}, TypeTextarea: {}, TypeSelect: {}, TypeCheckbox: {},
	TypeRadio: {}, TypeRadioGroup: {}, TypeLabel: {}, TypeSearchBar: {},
	TypeNewsletterSignup: {}, TypeLoginForm: {}, TypeContactForm: {},
	TypeNav: {}, TypeMenu: {}, TypeBreadcrumb: {}, TypeHeader: {}, TypeFooter: {},
	TypeHero: {}, TypeSection: {}, TypeContainer: {}, TypeGrid: {}, TypeColumn: {}, TypeCard: {},
	TypePricingTable: {}, TypePricingCard: {}, TypeProductCard: {},
	TypeDivider: {}, TypeSpacer: {}, TypeBadge: {}, TypeAlert: {}, TypeTooltip: {},
	TypeProgressBar: {}, TypeAccordion: {}, TypeTabs: {}, TypeModal: {},
}

// IsKnown reports whether t belongs to the closed enumeration.
func (t ComponentType) IsKnown() bool {
	_, ok := knownTypes[t]
	return ok
}

// Behavior groups the booster keys off. A type may appear in several groups.
var (
	repeatableTypes = map[ComponentType]struct{}{
		TypeList: {}, TypeOrderedList: {}, TypePriceList: {}, TypeGrid: {},
		TypeGallery: {}, TypeCarousel: {}, TypeSlider: {}, TypePricingTable: {},
		TypeMenu: {}, TypeTabs: {}, TypeAccordion: {}, TypeSocialIcons: {},
	}

	formAdjacentTypes = map[ComponentType]struct{}{
		TypeForm: {}, TypeLoginForm: {}, TypeContactForm: {}, TypeSearchBar: {},
		TypeNewsletterSignup: {}, TypeRadioGroup: {},
	}

	textHeavyTypes = map[ComponentType]struct{}{
		TypeParagraph: {}, TypeHeading: {}, TypeHeroHeading: {}, TypeBlockquote: {},
		TypeTestimonial: {}, TypeText: {},
	}

	imageDrivenTypes = map[ComponentType]struct{}{
		TypeGallery: {}, TypeCarousel: {}, TypeSlider: {},
	}
)
