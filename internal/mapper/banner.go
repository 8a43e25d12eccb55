package mapper

import "alwanstore/internal/domain"

func MapDbBannerToBanner(row domain.DbBanner) domain.Banner {
	b := domain.Banner{
		ID:           row.ID,
		Title:        row.Title,
		MediaType:    "image",
		SliderHeight: "500px",
		TextColor:    "#ffffff",
	}
	if row.Subtitle != nil {
		b.Subtitle = *row.Subtitle
	}
	if row.Image != nil {
		b.Image = *row.Image
	}
	if row.VideoURL != nil {
		b.VideoURL = *row.VideoURL
	}
	if row.MediaType != nil && *row.MediaType == "video" {
		b.MediaType = "video"
	}
	if row.CTAText != nil {
		b.CTAText = *row.CTAText
	}
	if row.CTALink != nil {
		b.CTALink = *row.CTALink
	}
	if row.OrderIndex != nil {
		b.OrderIndex = *row.OrderIndex
	}
	if row.SliderHeight != nil && *row.SliderHeight != "" {
		b.SliderHeight = *row.SliderHeight
	}
	if row.TextColor != nil && *row.TextColor != "" {
		b.TextColor = *row.TextColor
	}
	return b
}

func MapBannerPatchToRow(p domain.BannerPatch) map[string]any {
	row := map[string]any{}
	if p.Title != nil {
		row["title"] = *p.Title
	}
	if p.Subtitle != nil {
		row["subtitle"] = *p.Subtitle
	}
	if p.Image != nil {
		row["image"] = *p.Image
	}
	if p.VideoURL != nil {
		row["video_url"] = *p.VideoURL
	}
	if p.MediaType != nil {
		row["media_type"] = *p.MediaType
	}
	if p.CTAText != nil {
		row["cta_text"] = *p.CTAText
	}
	if p.CTALink != nil {
		row["cta_link"] = *p.CTALink
	}
	if p.OrderIndex != nil {
		row["order_index"] = *p.OrderIndex
	}
	if p.SliderHeight != nil {
		row["slider_height"] = *p.SliderHeight
	}
	if p.TextColor != nil {
		row["text_color"] = *p.TextColor
	}
	return row
}
