package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"techstudio/internal/domain/model"
	"techstudio/internal/render"
	"techstudio/internal/usecase"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	titleWidth     = 60
	previewLength  = 600 // runes, the unit render.Summary cuts by
	columnSpacing  = "  "
	noArticlesText = "no articles"
)

func validateOutput(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func writeArticles(w io.Writer, format string, articles []model.Article) error {
	switch format {
	case formatJSON:
		return writeJSON(w, articles)
	case formatYAML:
		return writeYAML(w, articles)
	default:
		return writeTable(w, articles)
	}
}

func writeArticle(w io.Writer, format string, article model.Article) error {
	switch format {
	case formatJSON:
		return writeJSON(w, article)
	case formatYAML:
		return writeYAML(w, article)
	default:
		return writeDetail(w, article)
	}
}

func writeArticleHTML(w io.Writer, article model.Article) error {
	rendered, err := render.HTML(article.Content)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, rendered)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeTable(w io.Writer, articles []model.Article) error {
	if len(articles) == 0 {
		_, err := fmt.Fprintln(w, noArticlesText)
		return err
	}

	header := []string{"PUBLISHED", "CATEGORY", "SLUG", "TITLE"}
	rows := make([][]string, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, []string{
			usecase.FormatDate(a.PublishedDate),
			categoryLabel(a.Category),
			a.Slug,
			runewidth.Truncate(a.Title, titleWidth, "..."),
		})
	}

	table := append([][]string{header}, rows...)
	widths := make([]int, len(header))
	for _, row := range table {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range table {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, columnSpacing)); err != nil {
			return err
		}
	}
	return nil
}

func writeDetail(w io.Writer, a model.Article) error {
	var b strings.Builder

	b.WriteString(a.Title)
	b.WriteString("\n")

	meta := []string{usecase.FormatDate(a.PublishedDate)}
	if a.Author != "" {
		meta = append([]string{"By " + a.Author}, meta...)
	}
	if a.Category != "" {
		meta = append(meta, categoryLabel(a.Category))
	}
	b.WriteString(strings.Join(meta, " · "))
	b.WriteString("\n")

	if a.FeaturedImage != "" {
		fmt.Fprintf(&b, "Image: %s\n", a.FeaturedImage)
	}
	if a.Excerpt != "" {
		b.WriteString("\n")
		b.WriteString(a.Excerpt)
		b.WriteString("\n")
	}
	if body := render.PlainText(a.Content); body != "" {
		b.WriteString("\n")
		if utf8.RuneCountInString(body) > previewLength {
			body = render.Summary(body, previewLength)
		}
		b.WriteString(body)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func categoryLabel(category string) string {
	if category == "" {
		return "-"
	}
	return cases.Title(language.AmericanEnglish).String(strings.ReplaceAll(category, "-", " "))
}
