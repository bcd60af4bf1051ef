package domain

// Marketing-content entities. All CRUD round-trips to the upstream; the
// gateway never keeps an authoritative copy.

type Blog struct {
	ID        string   `json:"_id"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Content   string   `json:"content"`
	CoverURL  string   `json:"coverUrl,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Published bool     `json:"published"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type NewsPost struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Published bool   `json:"published"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Testimonial struct {
	ID        string `json:"_id"`
	Author    string `json:"author"`
	Quote     string `json:"quote"`
	Rating    int    `json:"rating,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// DictionaryTerm is one financial-dictionary entry.
type DictionaryTerm struct {
	ID         string `json:"_id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Letter     string `json:"letter,omitempty"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type UTMLink struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	BaseURL   string `json:"baseUrl"`
	Source    string `json:"source"`
	Medium    string `json:"medium,omitempty"`
	Campaign  string `json:"campaign,omitempty"`
	FullURL   string `json:"fullUrl"`
	Clicks    int    `json:"clicks,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
