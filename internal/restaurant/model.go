package restaurant

// Restaurant is owned by exactly one user. The slug is the public URL
// identity and never changes after creation.
type Restaurant struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Address     string `json:"address,omitempty"`
	CuisineType string `json:"cuisineType,omitempty"`
	Description string `json:"description,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
}
