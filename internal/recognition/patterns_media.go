package recognition

import (
	"github.com/pagelift/pagelift/backend/internal/dom"
	"github.com/pagelift/pagelift/backend/internal/styles"
)

// mediaPatterns covers images, av, embeds, and media collections.
func mediaPatterns() []Pattern {
	return []Pattern{
		{
			Type:           TypeImage,
			Tags:           []string{"img", "picture", "figure"},
			BaseConfidence: 95,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeAvatar,
			Tags:           []string{"img"},
			ClassKeywords:  []string{"avatar", "profile", "portrait"},
			BaseConfidence: 95,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeIcon,
			Tags:           []string{"i", "svg"},
			ClassKeywords:  []string{"icon", "fa-", "material"},
			BaseConfidence: 90,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeVideo,
			Tags:           []string{"video"},
			BaseConfidence: 95,
			Priority:       PriorityGeneric,
		},
		{
			Type: TypeVideo,
			Tags: []string{"iframe"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return attrContains(el, "src", "youtube") ||
					attrContains(el, "src", "vimeo") ||
					attrContains(el, "src", "wistia")
			}),
			BaseConfidence: 93,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeAudio,
			Tags:           []string{"audio"},
			BaseConfidence: 95,
			Priority:       PriorityGeneric,
		},
		{
			Type: TypeMap,
			Tags: []string{"iframe"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return attrContains(el, "src", "maps.google") ||
					attrContains(el, "src", "google.com/maps") ||
					attrContains(el, "src", "openstreetmap")
			}),
			BaseConfidence: 93,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeEmbed,
			Tags:           []string{"iframe", "embed", "object"},
			BaseConfidence: 85,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeGallery,
			ClassKeywords:  []string{"gallery", "masonry", "photo-grid"},
			BaseConfidence: 90,
			Priority:       PrioritySpecialized,
		},
		{
			// A container that is mostly images reads as a gallery even
			// without a telling class.
			Type: TypeGallery,
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				children := el.Children()
				imgs := 0
				for _, c := range children {
					switch c.Tag() {
					case "img", "picture", "figure":
						imgs++
					}
				}
				return imgs >= 4 && imgs*5 >= len(children)*4
			}),
			BaseConfidence: 80,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeCarousel,
			ClassKeywords:  []string{"carousel", "swiper", "slick", "slideshow"},
			BaseConfidence: 88,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeSlider,
			ClassKeywords:  []string{"slider"},
			BaseConfidence: 86,
			Priority:       PrioritySpecialized,
		},
		{
			Type:          TypeSocialIcons,
			ClassKeywords: []string{"social", "share"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return countDescendantTag(el, "a") >= 2
			}),
			BaseConfidence: 86,
			Priority:       PrioritySpecialized,
		},
	}
}
