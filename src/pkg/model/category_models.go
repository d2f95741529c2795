package model

// CategoryGroup is one top-level entry of the user-editable taxonomy.
type CategoryGroup struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}
