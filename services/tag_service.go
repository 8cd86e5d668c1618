package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mistake-tracker/models"
)

// TagService handles free-text tags and their links to mistakes. It tags
// mistakes that already exist; MistakeService.Create writes the tags of a new
// mistake inside the insert transaction, parsing them with the same ParseTags.
type TagService struct {
	repo   TagRepository
	logger *slog.Logger
}

// NewTagService creates a new tag service
func NewTagService(repo TagRepository, logger *slog.Logger) *TagService {
	return &TagService{repo: repo, logger: logger}
}

// ParseTags splits a comma separated tag string. Tokens are trimmed, empty
// ones dropped and repeats removed, keeping first-seen order.
func ParseTags(raw string) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, token := range strings.Split(raw, ",") {
		name := strings.TrimSpace(token)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		tags = append(tags, name)
	}
	return tags
}

// GetOrCreate returns the ID of the named tag, creating it on first use
func (ts *TagService) GetOrCreate(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fieldErr("name", "name is required")
	}

	id, err := ts.repo.GetOrCreateTag(ctx, name)
	if err != nil {
		return 0, logStoreErr(ts.logger, fmt.Sprintf("get or create tag %q", name), err)
	}
	return id, nil
}

// Link associates a tag with a mistake; repeating a link is a no-op
func (ts *TagService) Link(ctx context.Context, mistakeID, tagID int64) error {
	if err := ts.repo.LinkMistakeTag(ctx, mistakeID, tagID); err != nil {
		return logStoreErr(ts.logger, "link tag", err)
	}
	return nil
}

// Apply attaches every tag named in raw to an existing mistake. Tags already
// linked stay linked once.
func (ts *TagService) Apply(ctx context.Context, mistakeID int64, raw string) error {
	for _, name := range ParseTags(raw) {
		tagID, err := ts.GetOrCreate(ctx, name)
		if err != nil {
			return err
		}
		if err := ts.Link(ctx, mistakeID, tagID); err != nil {
			return err
		}
	}
	return nil
}

// List retrieves all tags sorted by name
func (ts *TagService) List(ctx context.Context) ([]models.Tag, error) {
	tags, err := ts.repo.GetTags(ctx)
	if err != nil {
		return nil, logStoreErr(ts.logger, "list tags", err)
	}
	return tags, nil
}
