package content

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type GuideLink struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// Guide is the structured how-to content behind a checklist item's info
// affordance. Lookup by item key; a missing guide is a normal outcome, not
// an error.
type Guide struct {
	Key         string      `yaml:"key" json:"key"`
	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description" json:"description"`
	Steps       []string    `yaml:"steps" json:"steps"`
	Tips        []string    `yaml:"tips" json:"tips"`
	Warnings    []string    `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Links       []GuideLink `yaml:"links,omitempty" json:"links,omitempty"`
}

type Partner struct {
	Name     string   `yaml:"name" json:"name"`
	Rating   float64  `yaml:"rating" json:"rating"`
	Reviews  int      `yaml:"reviews" json:"reviews"`
	Price    string   `yaml:"price" json:"price"`
	Features []string `yaml:"features" json:"features"`
	Discount string   `yaml:"discount" json:"discount"`
}

type PartnerCategory struct {
	Category string    `yaml:"category" json:"category"`
	Partners []Partner `yaml:"partners" json:"partners"`
}

type Product struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Price         int      `yaml:"price" json:"price"`
	OriginalPrice int      `yaml:"original_price" json:"original_price"`
	Rating        float64  `yaml:"rating" json:"rating"`
	Reviews       int      `yaml:"reviews" json:"reviews"`
	Category      string   `yaml:"category" json:"category"`
	Brand         string   `yaml:"brand" json:"brand"`
	Features      []string `yaml:"features" json:"features"`
}

type ProductCatalog struct {
	Furniture  []Product `yaml:"furniture" json:"furniture"`
	Appliances []Product `yaml:"appliances" json:"appliances"`
}

type BlogPost struct {
	Slug        string    `yaml:"slug" json:"slug"`
	Title       string    `yaml:"title" json:"title"`
	Excerpt     string    `yaml:"excerpt" json:"excerpt"`
	Content     string    `yaml:"content" json:"content"`
	Category    string    `yaml:"category" json:"category"`
	Author      string    `yaml:"author" json:"author"`
	Tags        []string  `yaml:"tags" json:"tags"`
	Featured    bool      `yaml:"featured" json:"featured"`
	PublishedAt time.Time `yaml:"published_at" json:"published_at"`
}

// Store holds the parsed static content. Loaded once at startup; read-only
// afterwards.
type Store struct {
	guides   map[string]Guide
	partners []PartnerCategory
	products ProductCatalog
	posts    []BlogPost
}

func Load() (*Store, error) {
	store := &Store{guides: make(map[string]Guide)}

	var guideList struct {
		Guides []Guide `yaml:"guides"`
	}
	if err := unmarshalFile("guides.yaml", &guideList); err != nil {
		return nil, err
	}
	for _, guide := range guideList.Guides {
		if guide.Key == "" {
			return nil, fmt.Errorf("guide %q has no key", guide.Title)
		}
		if _, exists := store.guides[guide.Key]; exists {
			return nil, fmt.Errorf("duplicate guide key %s", guide.Key)
		}
		store.guides[guide.Key] = guide
	}

	var partnerList struct {
		Categories []PartnerCategory `yaml:"categories"`
	}
	if err := unmarshalFile("partners.yaml", &partnerList); err != nil {
		return nil, err
	}
	store.partners = partnerList.Categories

	if err := unmarshalFile("products.yaml", &store.products); err != nil {
		return nil, err
	}

	var postList struct {
		Posts []BlogPost `yaml:"posts"`
	}
	if err := unmarshalFile("posts.yaml", &postList); err != nil {
		return nil, err
	}
	store.posts = postList.Posts
	sort.SliceStable(store.posts, func(i, j int) bool {
		return store.posts[i].PublishedAt.After(store.posts[j].PublishedAt)
	})

	return store, nil
}

func unmarshalFile(name string, target any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read embedded %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (store *Store) GuideByKey(key string) (Guide, bool) {
	guide, found := store.guides[strings.TrimSpace(key)]
	return guide, found
}

func (store *Store) PartnerCategories() []PartnerCategory {
	return store.partners
}

func (store *Store) Products() ProductCatalog {
	return store.products
}

// Posts filters by category and tag; empty filters match everything.
func (store *Store) Posts(category string, tag string, featuredOnly bool) []BlogPost {
	matched := make([]BlogPost, 0, len(store.posts))
	for _, post := range store.posts {
		if category != "" && post.Category != category {
			continue
		}
		if tag != "" && !containsString(post.Tags, tag) {
			continue
		}
		if featuredOnly && !post.Featured {
			continue
		}
		matched = append(matched, post)
	}
	return matched
}

func (store *Store) PostBySlug(slug string) (BlogPost, bool) {
	for _, post := range store.posts {
		if post.Slug == slug {
			return post, true
		}
	}
	return BlogPost{}, false
}

func (store *Store) BlogCategories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, post := range store.posts {
		if _, exists := seen[post.Category]; exists {
			continue
		}
		seen[post.Category] = struct{}{}
		categories = append(categories, post.Category)
	}
	sort.Strings(categories)
	return categories
}

func (store *Store) BlogTags() []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, post := range store.posts {
		for _, tag := range post.Tags {
			if _, exists := seen[tag]; exists {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

func containsString(values []string, needle string) bool {
	for _, value := range values {
		if value == needle {
			return true
		}
	}
	return false
}
