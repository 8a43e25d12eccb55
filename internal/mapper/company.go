package mapper

import (
	"encoding/json"

	"alwanstore/internal/domain"
)

// DefaultExchangeRate is used when company_info carries no exchange_rate.
const DefaultExchangeRate = 1450

func emptyContact() domain.ContactInfo {
	return domain.ContactInfo{SocialMedia: map[string]string{}}
}

// ExtractContactInfo parses the contact JSON column. The column has been
// written both as an object and as a JSON-encoded string over time; anything
// that is not ultimately an object yields the empty contact shape. Never
// fails.
func ExtractContactInfo(raw json.RawMessage) domain.ContactInfo {
	if len(raw) == 0 {
		return emptyContact()
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return emptyContact()
	}
	// String-encoded column: unwrap one level.
	if s, ok := v.(string); ok {
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return emptyContact()
		}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return emptyContact()
	}

	c := emptyContact()
	if s, ok := obj["address"].(string); ok {
		c.Address = s
	}
	if s, ok := obj["phone"].(string); ok {
		c.Phone = s
	}
	if s, ok := obj["email"].(string); ok {
		c.Email = s
	}
	if sm, ok := obj["socialMedia"].(map[string]any); ok {
		for k, val := range sm {
			if s, ok := val.(string); ok {
				c.SocialMedia[k] = s
			}
		}
	}
	return c
}

func MapDbCompanyInfoToCompanyInfo(row domain.DbCompanyInfo) domain.CompanyInfo {
	ci := domain.CompanyInfo{
		ID:           row.ID,
		Name:         row.Name,
		Contact:      ExtractContactInfo(row.Contact),
		ExchangeRate: DefaultExchangeRate,
	}
	if row.Slogan != nil {
		ci.Slogan = *row.Slogan
	}
	if row.About != nil {
		ci.About = *row.About
	}
	if row.Logo != nil {
		ci.Logo = *row.Logo
	}
	if row.ExchangeRate != nil && *row.ExchangeRate > 0 {
		ci.ExchangeRate = *row.ExchangeRate
	}
	return ci
}

func MapCompanyInfoPatchToRow(p domain.CompanyInfoPatch) map[string]any {
	row := map[string]any{}
	if p.Name != nil {
		row["name"] = *p.Name
	}
	if p.Slogan != nil {
		row["slogan"] = *p.Slogan
	}
	if p.About != nil {
		row["about"] = *p.About
	}
	if p.Logo != nil {
		row["logo"] = *p.Logo
	}
	if p.Contact != nil {
		row["contact"] = *p.Contact
	}
	if p.ExchangeRate != nil {
		row["exchange_rate"] = *p.ExchangeRate
	}
	return row
}
