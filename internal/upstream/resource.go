package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

// Resource is a typed façade over one upstream CRUD entity. The content
// screens (blogs, news, testimonials, dictionary, UTM links, business) are
// all the same four verbs against different base paths, so the path template
// lives here exactly once.
type Resource[T any] struct {
	c    *Client
	base string
}

// NewResource builds a façade rooted at base, e.g. "/blogs".
func NewResource[T any](c *Client, base string) *Resource[T] {
	return &Resource[T]{c: c, base: base}
}

func (r *Resource[T]) GetAll(ctx context.Context, s *domain.Session, page ports.Page) ([]T, error) {
	var out []T
	if err := r.c.Do(ctx, s, http.MethodGet, withQuery(r.base, pageQuery(page)), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) GetByID(ctx context.Context, s *domain.Session, id string) (*T, error) {
	var out T
	if err := r.c.Do(ctx, s, http.MethodGet, r.base+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Create(ctx context.Context, s *domain.Session, item *T) (*T, error) {
	var out T
	if err := r.c.Do(ctx, s, http.MethodPost, r.base, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Update(ctx context.Context, s *domain.Session, id string, item *T) (*T, error) {
	var out T
	if err := r.c.Do(ctx, s, http.MethodPut, r.base+"/"+url.PathEscape(id), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, s *domain.Session, id string) error {
	return r.c.Do(ctx, s, http.MethodDelete, r.base+"/"+url.PathEscape(id), nil, nil)
}

// Content façade constructors, one per marketing resource.

func NewBlogs(c *Client) *Resource[domain.Blog] { return NewResource[domain.Blog](c, "/blogs") }

func NewNews(c *Client) *Resource[domain.NewsPost] { return NewResource[domain.NewsPost](c, "/news") }

func NewTestimonials(c *Client) *Resource[domain.Testimonial] {
	return NewResource[domain.Testimonial](c, "/testimonials")
}

func NewDictionary(c *Client) *Resource[domain.DictionaryTerm] {
	return NewResource[domain.DictionaryTerm](c, "/financial-dictionary")
}

func NewUTMLinks(c *Client) *Resource[domain.UTMLink] {
	return NewResource[domain.UTMLink](c, "/utm-links")
}

func NewBusiness(c *Client) *Resource[domain.Business] {
	return NewResource[domain.Business](c, "/business")
}
