// Package store owns the canonical résumé document for one editing session.
//
// The store is the single source of truth: templates and the export
// pipeline only ever see snapshots. Mutations are synchronous, never fail,
// and notify every subscriber after commit. Update/remove against an
// unknown identifier is a silent no-op so that a stale editor racing a
// deletion cannot crash the session.
package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/resumekit/resumekit/internal/domain/document"
)

// Subscriber receives a snapshot of the document after each committed
// mutation.
type Subscriber func(document.Document)

type DocumentStore struct {
	mu      sync.Mutex
	doc     document.Document
	subs    map[int]Subscriber
	nextSub int
}

func New() *DocumentStore {
	return &DocumentStore{
		doc:  document.Default(),
		subs: make(map[int]Subscriber),
	}
}

// Snapshot returns a deep copy of the current document.
func (s *DocumentStore) Snapshot() document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Subscribe registers fn to run after every committed mutation and returns
// the matching unsubscribe function. Subscribers are invoked outside the
// store lock, so they may call back into the store.
func (s *DocumentStore) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// commit runs mutate under the lock, then notifies subscribers with a
// fresh snapshot.
func (s *DocumentStore) commit(mutate func(*document.Document)) {
	s.mu.Lock()
	mutate(&s.doc)
	snap := s.doc.Clone()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *DocumentStore) UpdatePersonalInfo(patch document.PersonalInfoPatch) {
	s.commit(func(d *document.Document) {
		d.PersonalInfo = d.PersonalInfo.Merge(patch)
	})
}

// AddEducation appends the record with a fresh identifier and returns the
// stored copy.
func (s *DocumentStore) AddEducation(e document.Education) document.Education {
	e.ID = uuid.NewString()
	s.commit(func(d *document.Document) {
		d.Education = append(d.Education, e)
	})
	return e
}

func (s *DocumentStore) UpdateEducation(e document.Education) {
	s.commit(func(d *document.Document) {
		for i := range d.Education {
			if d.Education[i].ID == e.ID {
				d.Education[i] = e
				return
			}
		}
	})
}

func (s *DocumentStore) RemoveEducation(id string) {
	s.commit(func(d *document.Document) {
		for i := range d.Education {
			if d.Education[i].ID == id {
				d.Education = append(d.Education[:i], d.Education[i+1:]...)
				return
			}
		}
	})
}

// AddWorkExperience appends the record with a fresh identifier. A record
// flagged current always carries the ongoing marker as its end date,
// whatever the caller supplied.
func (s *DocumentStore) AddWorkExperience(w document.WorkExperience) document.WorkExperience {
	w.ID = uuid.NewString()
	if w.Current {
		w.EndDate = document.OngoingMarker
	}
	s.commit(func(d *document.Document) {
		d.WorkExperience = append(d.WorkExperience, w)
	})
	return w
}

func (s *DocumentStore) UpdateWorkExperience(w document.WorkExperience) {
	if w.Current {
		w.EndDate = document.OngoingMarker
	}
	s.commit(func(d *document.Document) {
		for i := range d.WorkExperience {
			if d.WorkExperience[i].ID == w.ID {
				d.WorkExperience[i] = w
				return
			}
		}
	})
}

func (s *DocumentStore) RemoveWorkExperience(id string) {
	s.commit(func(d *document.Document) {
		for i := range d.WorkExperience {
			if d.WorkExperience[i].ID == id {
				d.WorkExperience = append(d.WorkExperience[:i], d.WorkExperience[i+1:]...)
				return
			}
		}
	})
}

// AddSkill appends the skill with a fresh identifier. The level is clamped
// into [1,5] defensively; a name that is blank after trimming is not
// admitted (the add becomes a no-op and the zero Skill is returned).
func (s *DocumentStore) AddSkill(sk document.Skill) document.Skill {
	sk.Name = strings.TrimSpace(sk.Name)
	if sk.Name == "" {
		return document.Skill{}
	}
	sk.ID = uuid.NewString()
	sk.Level = document.ClampSkillLevel(sk.Level)
	s.commit(func(d *document.Document) {
		d.Skills = append(d.Skills, sk)
	})
	return sk
}

func (s *DocumentStore) UpdateSkill(sk document.Skill) {
	sk.Level = document.ClampSkillLevel(sk.Level)
	s.commit(func(d *document.Document) {
		for i := range d.Skills {
			if d.Skills[i].ID == sk.ID {
				d.Skills[i] = sk
				return
			}
		}
	})
}

func (s *DocumentStore) RemoveSkill(id string) {
	s.commit(func(d *document.Document) {
		for i := range d.Skills {
			if d.Skills[i].ID == id {
				d.Skills = append(d.Skills[:i], d.Skills[i+1:]...)
				return
			}
		}
	})
}

// SetTemplate overwrites the selector. Unknown values are accepted here;
// the template engine resolves them to the default variant at render time.
func (s *DocumentStore) SetTemplate(t document.Template) {
	s.commit(func(d *document.Document) {
		d.Template = t
	})
}

// Reset replaces the whole document with the session default.
func (s *DocumentStore) Reset() {
	s.commit(func(d *document.Document) {
		*d = document.Default()
	})
}

// Restore replaces the document wholesale with a deserialized snapshot.
// It exists for persistence collaborators; the snapshot is taken verbatim.
func (s *DocumentStore) Restore(doc document.Document) {
	s.commit(func(d *document.Document) {
		*d = doc.Clone()
	})
}
