package settings

import "time"

// SiteSettings is a lazily-created singleton row holding the editable
// site content. Description and about fields carry raw HTML.
type SiteSettings struct {
	ID      string `gorm:"primaryKey" json:"id"`
	LogoURL string `gorm:"column:logo_url;default:''" json:"logo_url"`

	HeroTitleTR string `gorm:"column:hero_title_tr;default:''" json:"hero_title_tr"`
	HeroTitleEN string `gorm:"column:hero_title_en;default:''" json:"hero_title_en"`
	HeroTitleDE string `gorm:"column:hero_title_de;default:''" json:"hero_title_de"`
	HeroTitleRU string `gorm:"column:hero_title_ru;default:''" json:"hero_title_ru"`

	HeroSubtitleTR string `gorm:"column:hero_subtitle_tr;default:''" json:"hero_subtitle_tr"`
	HeroSubtitleEN string `gorm:"column:hero_subtitle_en;default:''" json:"hero_subtitle_en"`
	HeroSubtitleDE string `gorm:"column:hero_subtitle_de;default:''" json:"hero_subtitle_de"`
	HeroSubtitleRU string `gorm:"column:hero_subtitle_ru;default:''" json:"hero_subtitle_ru"`

	HeroDescriptionTR string `gorm:"column:hero_description_tr;default:''" json:"hero_description_tr"`
	HeroDescriptionEN string `gorm:"column:hero_description_en;default:''" json:"hero_description_en"`
	HeroDescriptionDE string `gorm:"column:hero_description_de;default:''" json:"hero_description_de"`
	HeroDescriptionRU string `gorm:"column:hero_description_ru;default:''" json:"hero_description_ru"`

	AboutCompanyTR string `gorm:"column:about_company_tr;default:''" json:"about_company_tr"`
	AboutCompanyEN string `gorm:"column:about_company_en;default:''" json:"about_company_en"`
	AboutCompanyDE string `gorm:"column:about_company_de;default:''" json:"about_company_de"`
	AboutCompanyRU string `gorm:"column:about_company_ru;default:''" json:"about_company_ru"`

	AboutFounderTR string `gorm:"column:about_founder_tr;default:''" json:"about_founder_tr"`
	AboutFounderEN string `gorm:"column:about_founder_en;default:''" json:"about_founder_en"`
	AboutFounderDE string `gorm:"column:about_founder_de;default:''" json:"about_founder_de"`
	AboutFounderRU string `gorm:"column:about_founder_ru;default:''" json:"about_founder_ru"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Patch is a partial update of SiteSettings. A nil field means "leave
// unchanged"; a pointer to "" means "clear". This keeps unset and empty
// unambiguous on the wire.
type Patch struct {
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

// Columns maps the set fields to their column names. Order is not
// significant; gorm builds a single UPDATE from the result.
func (p Patch) Columns() map[string]interface{} {
	out := map[string]interface{}{}
	put := func(column string, value *string) {
		if value != nil {
			out[column] = *value
		}
	}

	put("logo_url", p.LogoURL)

	put("hero_title_tr", p.HeroTitleTR)
	put("hero_title_en", p.HeroTitleEN)
	put("hero_title_de", p.HeroTitleDE)
	put("hero_title_ru", p.HeroTitleRU)

	put("hero_subtitle_tr", p.HeroSubtitleTR)
	put("hero_subtitle_en", p.HeroSubtitleEN)
	put("hero_subtitle_de", p.HeroSubtitleDE)
	put("hero_subtitle_ru", p.HeroSubtitleRU)

	put("hero_description_tr", p.HeroDescriptionTR)
	put("hero_description_en", p.HeroDescriptionEN)
	put("hero_description_de", p.HeroDescriptionDE)
	put("hero_description_ru", p.HeroDescriptionRU)

	put("about_company_tr", p.AboutCompanyTR)
	put("about_company_en", p.AboutCompanyEN)
	put("about_company_de", p.AboutCompanyDE)
	put("about_company_ru", p.AboutCompanyRU)

	put("about_founder_tr", p.AboutFounderTR)
	put("about_founder_en", p.AboutFounderEN)
	put("about_founder_de", p.AboutFounderDE)
	put("about_founder_ru", p.AboutFounderRU)

	return out
}
