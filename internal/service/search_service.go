package service

import (
	"context"
	"encoding/json"
	"html"
	"log"
	"strings"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

const blogIndex = "blog_posts"

type PostHit struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	CreatedAt int64  `json:"created_at"`
}

// SearchService maintains the blog post search index. The service is
// optional; the blog module skips indexing when it is nil.
type SearchService interface {
	IndexPost(post *model.BlogPost) error
	DeletePost(id string) error
	Search(ctx context.Context, query string) ([]PostHit, error)
}

type meiliSearchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewMeiliSearchService(client meilisearch.ServiceManager) SearchService {
	s := &meiliSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndex()
	return s
}

func (s *meiliSearchService) initIndex() {
	filterableAttrs := []string{"status"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index(blogIndex).UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update %s filterable attributes: %v", blogIndex, err)
	}

	sortableAttrs := []string{"created_at"}
	if _, err := s.client.Index(blogIndex).UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update %s sortable attributes: %v", blogIndex, err)
	}
}

type meiliPostDoc struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	Tags      string `json:"tags"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

func (s *meiliSearchService) cleanContentForIndex(content string) string {
	// Block tags become spaces so words don't merge across paragraphs
	content = strings.ReplaceAll(content, "</p>", " ")
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</div>", " ")

	sanitized := s.sanitizer.Sanitize(content)
	cleanText := html.UnescapeString(sanitized)

	return strings.Join(strings.Fields(cleanText), " ")
}

func (s *meiliSearchService) IndexPost(post *model.BlogPost) error {
	doc := meiliPostDoc{
		ID:        post.ID.String(),
		Title:     post.Title,
		Slug:      post.Slug,
		Content:   s.cleanContentForIndex(post.Content),
		Tags:      post.Tags,
		Status:    post.Status,
		CreatedAt: post.CreatedAt.Unix(),
	}

	_, err := s.client.Index(blogIndex).AddDocuments([]meiliPostDoc{doc}, strPtr("id"))
	return err
}

func (s *meiliSearchService) DeletePost(id string) error {
	_, err := s.client.Index(blogIndex).DeleteDocument(id)
	return err
}

func (s *meiliSearchService) Search(ctx context.Context, query string) ([]PostHit, error) {
	resp, err := s.client.Index(blogIndex).Search(query, &meilisearch.SearchRequest{
		Limit:  20,
		Filter: "status = published",
	})
	if err != nil {
		return nil, err
	}

	hits := make([]PostHit, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}

		var doc meiliPostDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}

		hits = append(hits, PostHit{
			ID:        doc.ID,
			Title:     doc.Title,
			Slug:      doc.Slug,
			Excerpt:   truncate(doc.Content, 200),
			CreatedAt: doc.CreatedAt,
		})
	}

	return hits, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

func strPtr(s string) *string {
	return &s
}
