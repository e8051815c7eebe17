package model

import "context"

// UserStore persists credentials. Email lookup is case-insensitive:
// implementations compare against the lower-cased canonical form.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// ProfileStore persists the singleton professor profile.
type ProfileStore interface {
	Get(ctx context.Context) (Profile, error)
	Upsert(ctx context.Context, p Profile) error
}

// StudentStore persists the student roster.
type StudentStore interface {
	List(ctx context.Context) ([]Student, error)
	Get(ctx context.Context, id string) (Student, error)
	Create(ctx context.Context, s Student) (Student, error)
	Update(ctx context.Context, s Student) (Student, error)
	Delete(ctx context.Context, id string) error
}

// PublicationStore persists publications.
type PublicationStore interface {
	List(ctx context.Context) ([]Publication, error)
	Get(ctx context.Context, id string) (Publication, error)
	Create(ctx context.Context, p Publication) (Publication, error)
	Update(ctx context.Context, p Publication) (Publication, error)
	Delete(ctx context.Context, id string) error
}

// ResearchStore persists research projects.
type ResearchStore interface {
	List(ctx context.Context) ([]ResearchProject, error)
	Get(ctx context.Context, id string) (ResearchProject, error)
	Create(ctx context.Context, r ResearchProject) (ResearchProject, error)
	Update(ctx context.Context, r ResearchProject) (ResearchProject, error)
	Delete(ctx context.Context, id string) error
}

// NotificationStore persists announcements. List returns active
// notifications only, newest first.
type NotificationStore interface {
	List(ctx context.Context) ([]Notification, error)
	Create(ctx context.Context, n Notification) (Notification, error)
	Delete(ctx context.Context, id string) error
}

// DocumentStore persists document library entries.
type DocumentStore interface {
	List(ctx context.Context) ([]Document, error)
	Get(ctx context.Context, id string) (Document, error)
	Create(ctx context.Context, d Document) (Document, error)
	Delete(ctx context.Context, id string) error
}

// Stores bundles one backend's full set of repositories.
type Stores struct {
	Users         UserStore
	Profile       ProfileStore
	Students      StudentStore
	Publications  PublicationStore
	Research      ResearchStore
	Notifications NotificationStore
	Documents     DocumentStore
}
