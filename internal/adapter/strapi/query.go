package strapi

import (
	"fmt"
	"net/url"
	"strings"

	"techstudio/internal/domain/ports"
)

// EncodeQuery renders the query string for an article list request.
//
// Keys and the fixed populate/sort values are written verbatim so the
// request reads the way Strapi documents it; only filter values are
// escaped.
func EncodeQuery(query ports.ArticleQuery) string {
	parts := make([]string, 0, len(query.Filters)+2)
	for _, f := range query.Filters {
		parts = append(parts, fmt.Sprintf("filters[%s][$eq]=%s", f.Field, url.QueryEscape(f.Value)))
	}
	parts = append(parts, "populate=*")
	if query.Sort != "" {
		parts = append(parts, "sort="+query.Sort)
	}
	return strings.Join(parts, "&")
}
