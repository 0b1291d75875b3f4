package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// GitLog pages through the commit history reachable from HEAD of a local
// repository, newest first.
type GitLog struct {
	Path     string
	PageSize int
}

// Fetch implements Source. Each item is the abbreviated hash followed by the
// commit subject.
func (g GitLog) Fetch(ctx context.Context, page int) (Page, error) {
	if page < 0 {
		return Page{}, fmt.Errorf("invalid page %d", page)
	}
	size := g.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	repo, err := git.PlainOpen(g.Path)
	if err != nil {
		return Page{}, fmt.Errorf("open repository %s: %w", g.Path, err)
	}
	iter, err := repo.Log(&git.LogOptions{Order: git.LogOrderCommitterTime})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return Page{}, nil
		}
		return Page{}, fmt.Errorf("read history: %w", err)
	}
	defer iter.Close()

	skip := page * size
	items := make([]string, 0, size)
	hasMore := false
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if skip > 0 {
			skip--
			return nil
		}
		if len(items) == size {
			hasMore = true
			return storer.ErrStop
		}
		items = append(items, summary(c))
		return nil
	})
	if err != nil {
		return Page{}, fmt.Errorf("walk history: %w", err)
	}
	return Page{Items: items, HasMore: hasMore}, nil
}

func summary(c *object.Commit) string {
	subject, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return c.Hash.String()[:7] + " " + subject
}

var _ Source = GitLog{}
