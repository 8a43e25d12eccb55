package mapper

import "alwanstore/internal/domain"

func MapDbCategoryToCategory(row domain.DbCategory) domain.Category {
	c := domain.Category{
		ID:   row.ID,
		Name: row.Name,
		// No image column in the remote schema; always the placeholder.
		Image: domain.PlaceholderImage,
	}
	if row.Description != nil {
		c.Description = *row.Description
	}
	return c
}

func MapCategoryPatchToRow(p domain.CategoryPatch) map[string]any {
	row := map[string]any{}
	if p.Name != nil {
		row["name"] = *p.Name
	}
	if p.Description != nil {
		row["description"] = *p.Description
	}
	return row
}
