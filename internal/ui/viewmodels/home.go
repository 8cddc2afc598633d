// internal/ui/viewmodels/home.go

package viewmodels

import (
	"github.com/petervdpas/folio/internal/config"
	"github.com/petervdpas/folio/internal/portfolio"
)

type SocialLink struct {
	Label string
	URL   string
	Icon  string
}

type HomeVM struct {
	BaseVM
	Tagline string
	Socials []SocialLink
	Pages   []portfolio.Page
	Boot    portfolio.Boot
}

func BuildSocials(in []config.Social) []SocialLink {
	out := make([]SocialLink, 0, len(in))
	for _, s := range in {
		icon := s.Icon
		if icon == "" {
			icon = "link"
		}
		out = append(out, SocialLink{Label: s.Label, URL: s.URL, Icon: icon})
	}
	return out
}
