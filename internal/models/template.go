package models

// Template is a reusable, ordered item list used to seed a game.
type Template struct {
	// ID is a stable slug for built-in templates and a generated hex id
	// for AI-produced ones.
	ID string `json:"id"`

	// Name is the display name of the template.
	Name string `json:"name"`

	// Description is a one-line blurb shown in the template picker.
	Description string `json:"description"`

	// Items are the template's items in auction order.
	Items []TemplateItem `json:"items"`
}

// TemplateItem is the raw material for an Item: no identity yet, identities
// are minted when a game is created from the template.
type TemplateItem struct {
	Emoji string `json:"emoji"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}
