package settingsapi

import "lawfirm-backend/internal/domain/settings"

// settingsPatch mirrors settings.Patch on the wire. Kept separate so
// sanitization happens here, before anything reaches the store.
type settingsPatch struct {
	LogoURL *string `json:"logo_url"`

	HeroTitleTR *string `json:"hero_title_tr"`
	HeroTitleEN *string `json:"hero_title_en"`
	HeroTitleDE *string `json:"hero_title_de"`
	HeroTitleRU *string `json:"hero_title_ru"`

	HeroSubtitleTR *string `json:"hero_subtitle_tr"`
	HeroSubtitleEN *string `json:"hero_subtitle_en"`
	HeroSubtitleDE *string `json:"hero_subtitle_de"`
	HeroSubtitleRU *string `json:"hero_subtitle_ru"`

	HeroDescriptionTR *string `json:"hero_description_tr"`
	HeroDescriptionEN *string `json:"hero_description_en"`
	HeroDescriptionDE *string `json:"hero_description_de"`
	HeroDescriptionRU *string `json:"hero_description_ru"`

	AboutCompanyTR *string `json:"about_company_tr"`
	AboutCompanyEN *string `json:"about_company_en"`
	AboutCompanyDE *string `json:"about_company_de"`
	AboutCompanyRU *string `json:"about_company_ru"`

	AboutFounderTR *string `json:"about_founder_tr"`
	AboutFounderEN *string `json:"about_founder_en"`
	AboutFounderDE *string `json:"about_founder_de"`
	AboutFounderRU *string `json:"about_founder_ru"`
}

func (p settingsPatch) toDomain() settings.Patch {
	return settings.Patch{
		LogoURL: sanitized(p.LogoURL),

		HeroTitleTR: sanitized(p.HeroTitleTR),
		HeroTitleEN: sanitized(p.HeroTitleEN),
		HeroTitleDE: sanitized(p.HeroTitleDE),
		HeroTitleRU: sanitized(p.HeroTitleRU),

		HeroSubtitleTR: sanitized(p.HeroSubtitleTR),
		HeroSubtitleEN: sanitized(p.HeroSubtitleEN),
		HeroSubtitleDE: sanitized(p.HeroSubtitleDE),
		HeroSubtitleRU: sanitized(p.HeroSubtitleRU),

		// HTML allowed from here down.
		HeroDescriptionTR: p.HeroDescriptionTR,
		HeroDescriptionEN: p.HeroDescriptionEN,
		HeroDescriptionDE: p.HeroDescriptionDE,
		HeroDescriptionRU: p.HeroDescriptionRU,

		AboutCompanyTR: p.AboutCompanyTR,
		AboutCompanyEN: p.AboutCompanyEN,
		AboutCompanyDE: p.AboutCompanyDE,
		AboutCompanyRU: p.AboutCompanyRU,

		AboutFounderTR: p.AboutFounderTR,
		AboutFounderEN: p.AboutFounderEN,
		AboutFounderDE: p.AboutFounderDE,
		AboutFounderRU: p.AboutFounderRU,
	}
}
