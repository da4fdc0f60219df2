package model

// Article is the flattened CMS article consumed by rendering code.
type Article struct {
	ID            int    `json:"id" yaml:"id"`
	DocumentID    string `json:"documentId" yaml:"documentId"`
	Title         string `json:"title" yaml:"title"`
	Slug          string `json:"slug" yaml:"slug"`
	Excerpt       string `json:"excerpt" yaml:"excerpt"`
	Content       string `json:"content" yaml:"content"`
	Category      string `json:"category" yaml:"category"`
	FeaturedImage string `json:"featuredImage,omitempty" yaml:"featuredImage,omitempty"`
	Author        string `json:"author" yaml:"author"`
	PublishedDate string `json:"publishedDate" yaml:"publishedDate"`
	CreatedAt     string `json:"createdAt" yaml:"createdAt"`
	UpdatedAt     string `json:"updatedAt" yaml:"updatedAt"`
	PublishedAt   string `json:"publishedAt" yaml:"publishedAt"`
}

// Pagination mirrors the CMS meta.pagination block.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// ArticlePage is one decoded response: the normalized records plus
// pagination metadata when the CMS supplied it.
type ArticlePage struct {
	Articles   []Article
	Pagination *Pagination
}
