// Package stats computes summary statistics over blog collections.
// Every function is pure: no I/O, no mutation of the input slice, and a
// deterministic result for a given input order.
package stats

import (
	"bloglist/internal/model"
)

// Favorite is the projection of the most-liked single blog.
type Favorite struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// AuthorBlogs names the author with the most blogs and their count.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes names the author with the most accumulated likes.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// Snapshot bundles all statistics for the reporting endpoint and the cache.
type Snapshot struct {
	TotalLikes   int          `json:"total_likes"`
	FavoriteBlog *Favorite    `json:"favorite_blog"`
	MostBlogs    *AuthorBlogs `json:"most_blogs"`
	MostLikes    *AuthorLikes `json:"most_likes"`
}

// TotalLikes sums the likes of all blogs. An empty slice sums to 0.
func TotalLikes(blogs []model.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// slice. Ties keep the first blog encountered in input order.
func FavoriteBlog(blogs []model.Blog) *Favorite {
	if len(blogs) == 0 {
		return nil
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}

	return &Favorite{
		Title:  best.Title,
		Author: best.Author,
		Likes:  best.Likes,
	}
}

// MostBlogs returns the author with the most blogs, or nil for an empty
// slice. Authors are grouped by exact string match; blogs without an author
// form their own group. Ties keep the author whose first blog appears
// earliest in the input.
func MostBlogs(blogs []model.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, b := range blogs {
		if _, seen := counts[b.Author]; !seen {
			order = append(order, b.Author)
		}
		counts[b.Author]++
	}

	top := &AuthorBlogs{Author: order[0], Blogs: counts[order[0]]}
	for _, author := range order[1:] {
		if counts[author] > top.Blogs {
			top.Author = author
			top.Blogs = counts[author]
		}
	}
	return top
}

// MostLikes returns the author with the largest summed likes, or nil for an
// empty slice. Same grouping and tie-break rules as MostBlogs.
func MostLikes(blogs []model.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	likes := make(map[string]int)
	order := make([]string, 0)
	for _, b := range blogs {
		if _, seen := likes[b.Author]; !seen {
			order = append(order, b.Author)
		}
		likes[b.Author] += b.Likes
	}

	top := &AuthorLikes{Author: order[0], Likes: likes[order[0]]}
	for _, author := range order[1:] {
		if likes[author] > top.Likes {
			top.Author = author
			top.Likes = likes[author]
		}
	}
	return top
}

// Compute builds a full snapshot of the collection.
func Compute(blogs []model.Blog) *Snapshot {
	return &Snapshot{
		TotalLikes:   TotalLikes(blogs),
		FavoriteBlog: FavoriteBlog(blogs),
		MostBlogs:    MostBlogs(blogs),
		MostLikes:    MostLikes(blogs),
	}
}
