package editor

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

// Store is the remote side of the editor. *client.Client satisfies it.
type Store interface {
	Create(ctx context.Context, candidate resume.Candidate) (*resume.Resume, error)
	List(ctx context.Context) ([]*resume.Resume, error)
	Get(ctx context.Context, id uuid.UUID) (*resume.Resume, error)
	Update(ctx context.Context, id uuid.UUID, candidate resume.Candidate) (*resume.Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Controller owns one draft and the cached list of saved resumes. It is not
// safe for concurrent use.
type Controller struct {
	store  Store
	draft  Draft
	saved  []*resume.Resume
	logger logger.Logger
}

func NewController(store Store, log logger.Logger) *Controller {
	return &Controller{
		store:  store,
		draft:  NewDraft(),
		saved:  []*resume.Resume{},
		logger: log,
	}
}

// Draft returns a copy of the working draft.
func (c *Controller) Draft() Draft { return c.draft.clone() }

func (c *Controller) State() State { return c.draft.State() }

// Saved returns the cached list from the last successful Refresh.
func (c *Controller) Saved() []*resume.Resume {
	return append([]*resume.Resume{}, c.saved...)
}

func (c *Controller) Edit(field Field, value string) error {
	return c.draft.set(field, value)
}

func (c *Controller) EditEntry(section Section, index int, field, value string) error {
	return c.draft.setEntry(section, index, field, value)
}

func (c *Controller) AddEntry(section Section) error {
	return c.draft.addEntry(section)
}

// RemoveEntry reports whether an entry was removed.
func (c *Controller) RemoveEntry(section Section, index int) (bool, error) {
	return c.draft.removeEntry(section, index)
}

// Import replaces the draft content with candidate, keeping the binding.
// Empty sections get one blank entry.
func (c *Controller) Import(candidate resume.Candidate) {
	c.draft = boundDraft(c.draft.ID, candidate)
	c.draft.edited = true
}

// Reset discards the draft and unbinds it.
func (c *Controller) Reset() {
	c.draft = NewDraft()
}

// Save creates the resume on the first call and replaces it afterwards. On
// failure the draft is left as it was.
func (c *Controller) Save(ctx context.Context) (*resume.Resume, error) {
	candidate := c.draft.clone().Candidate

	var (
		stored *resume.Resume
		err    error
	)
	if c.draft.Bound() {
		stored, err = c.store.Update(ctx, c.draft.ID, candidate)
	} else {
		stored, err = c.store.Create(ctx, candidate)
	}
	if err != nil {
		return nil, err
	}

	c.draft.ID = stored.ID
	c.draft.edited = false
	c.logger.Info("Resume saved", zap.String("resume_id", stored.ID.String()))

	if err := c.Refresh(ctx); err != nil {
		c.logger.Warn("Failed to refresh saved resumes", zap.Error(err))
	}
	return stored, nil
}

// Load replaces the draft with a stored resume and binds to it.
func (c *Controller) Load(ctx context.Context, id uuid.UUID) error {
	r, err := c.store.Get(ctx, id)
	if err != nil {
		return err
	}
	c.draft = DraftFromResume(r)
	return nil
}

// Delete removes a stored resume. Deleting the bound resume also resets the
// draft.
func (c *Controller) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}

	kept := make([]*resume.Resume, 0, len(c.saved))
	for _, r := range c.saved {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	c.saved = kept

	if c.draft.ID == id {
		c.Reset()
	}
	c.logger.Info("Resume deleted", zap.String("resume_id", id.String()))
	return nil
}

// Refresh re-fetches the saved list. The cached list is kept on failure.
func (c *Controller) Refresh(ctx context.Context) error {
	list, err := c.store.List(ctx)
	if err != nil {
		return err
	}
	if list == nil {
		list = []*resume.Resume{}
	}
	c.saved = list
	return nil
}

// Preview derives the read-only view of the current draft.
func (c *Controller) Preview() Preview {
	return DerivePreview(c.draft)
}
