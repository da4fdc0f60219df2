package strapi

import (
	"bytes"
	"encoding/json"

	"techstudio/internal/domain/model"
)

type envelope struct {
	Data []json.RawMessage `json:"data"`
	Meta *struct {
		Pagination *model.Pagination `json:"pagination"`
	} `json:"meta"`
}

type attributes struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       rawText  `json:"content"`
	Category      string   `json:"category"`
	FeaturedImage mediaURL `json:"featuredImage"`
	Author        string   `json:"author"`
	PublishedDate string   `json:"publishedDate"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
	PublishedAt   string   `json:"publishedAt"`
}

// record accepts both the nested v4 shape ({id, documentId, attributes})
// and the flattened v5 shape where fields sit beside the id.
type record struct {
	ID         int         `json:"id"`
	DocumentID string      `json:"documentId"`
	Attributes *attributes `json:"attributes"`
	attributes
}

func (r record) normalize() model.Article {
	attrs := r.attributes
	if r.Attributes != nil {
		attrs = *r.Attributes
	}

	article := model.Article{
		ID:            r.ID,
		DocumentID:    r.DocumentID,
		Title:         attrs.Title,
		Slug:          attrs.Slug,
		Excerpt:       attrs.Excerpt,
		Content:       string(attrs.Content),
		Category:      attrs.Category,
		FeaturedImage: string(attrs.FeaturedImage),
		Author:        attrs.Author,
		PublishedDate: attrs.PublishedDate,
		CreatedAt:     attrs.CreatedAt,
		UpdatedAt:     attrs.UpdatedAt,
		PublishedAt:   attrs.PublishedAt,
	}
	if article.PublishedDate == "" {
		article.PublishedDate = attrs.PublishedAt
	}
	return article
}

// rawText keeps a JSON string as-is and any other non-null value (such as
// a blocks rich-text array) as its raw JSON text.
type rawText string

func (t *rawText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = ""
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = rawText(s)
		return nil
	}
	*t = rawText(data)
	return nil
}

// mediaURL decodes featuredImage given as a plain string or as a populated
// media relation. Shapes it does not recognise decode to "".
type mediaURL string

func (m *mediaURL) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*m = ""
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = mediaURL(s)
		return nil
	}

	var media struct {
		URL  string `json:"url"`
		Data *struct {
			URL        string `json:"url"`
			Attributes struct {
				URL string `json:"url"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &media); err != nil {
		return nil
	}

	switch {
	case media.URL != "":
		*m = mediaURL(media.URL)
	case media.Data != nil && media.Data.Attributes.URL != "":
		*m = mediaURL(media.Data.Attributes.URL)
	case media.Data != nil:
		*m = mediaURL(media.Data.URL)
	}
	return nil
}
