package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/models"
)

// Store is the single state-owning object for the application. All reads
// hand out deep copies; all writes replace whole records and mirror the
// resulting snapshot to the durable slot. Mirror failures are logged and
// never surface to callers: the in-memory mutation has already succeeded.
type Store struct {
	mu        sync.Mutex
	state     models.State
	snapshots SnapshotStore
	logger    *zap.Logger
}

// New constructs a store seeded with the given initial state.
func New(initial models.State, snapshots SnapshotStore, logger *zap.Logger) *Store {
	if snapshots == nil {
		snapshots = NopSnapshotStore{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{state: initial.Clone(), snapshots: snapshots, logger: logger}
}

// Snapshot returns a deep copy of the current state tree.
func (s *Store) Snapshot() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) mutate(ctx context.Context, apply func(*models.State)) {
	s.mu.Lock()
	next := s.state.Clone()
	apply(&next)
	s.state = next
	snapshot := next.Clone()
	s.mu.Unlock()

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		s.logger.Warn("state snapshot save failed", zap.Error(err))
	}
}

// AddTeacher appends a teacher record.
func (s *Store) AddTeacher(ctx context.Context, teacher models.Teacher) {
	s.mutate(ctx, func(st *models.State) {
		st.Teachers = append(st.Teachers, teacher)
	})
}

// UpdateTeacher replaces the teacher with the same id. Returns false when
// no such teacher exists.
func (s *Store) UpdateTeacher(ctx context.Context, teacher models.Teacher) bool {
	replaced := false
	s.mutate(ctx, func(st *models.State) {
		for i := range st.Teachers {
			if st.Teachers[i].ID == teacher.ID {
				st.Teachers[i] = teacher
				replaced = true
				return
			}
		}
	})
	return replaced
}

// DeleteTeacher removes the teacher and cascades to every lesson
// referencing it. Returns false when the teacher does not exist.
func (s *Store) DeleteTeacher(ctx context.Context, id string) bool {
	removed := false
	s.mutate(ctx, func(st *models.State) {
		st.Teachers, removed = removeTeacher(st.Teachers, id)
		if removed {
			st.Lessons = dropLessons(st.Lessons, func(l models.Lesson) bool { return l.TeacherID == id })
		}
	})
	return removed
}

// AddGroup appends a group record.
func (s *Store) AddGroup(ctx context.Context, group models.Group) {
	s.mutate(ctx, func(st *models.State) {
		st.Groups = append(st.Groups, group)
	})
}

// UpdateGroup replaces the group with the same id.
func (s *Store) UpdateGroup(ctx context.Context, group models.Group) bool {
	replaced := false
	s.mutate(ctx, func(st *models.State) {
		for i := range st.Groups {
			if st.Groups[i].ID == group.ID {
				st.Groups[i] = group
				replaced = true
				return
			}
		}
	})
	return replaced
}

// DeleteGroup removes the group and its dependent lessons.
func (s *Store) DeleteGroup(ctx context.Context, id string) bool {
	removed := false
	s.mutate(ctx, func(st *models.State) {
		kept := st.Groups[:0:0]
		for _, g := range st.Groups {
			if g.ID == id {
				removed = true
				continue
			}
			kept = append(kept, g)
		}
		st.Groups = kept
		if removed {
			st.Lessons = dropLessons(st.Lessons, func(l models.Lesson) bool { return l.GroupID == id })
		}
	})
	return removed
}

// AddClassroom appends a classroom record.
func (s *Store) AddClassroom(ctx context.Context, classroom models.Classroom) {
	s.mutate(ctx, func(st *models.State) {
		st.Classrooms = append(st.Classrooms, classroom)
	})
}

// UpdateClassroom replaces the classroom with the same id.
func (s *Store) UpdateClassroom(ctx context.Context, classroom models.Classroom) bool {
	replaced := false
	s.mutate(ctx, func(st *models.State) {
		for i := range st.Classrooms {
			if st.Classrooms[i].ID == classroom.ID {
				st.Classrooms[i] = classroom
				replaced = true
				return
			}
		}
	})
	return replaced
}

// DeleteClassroom removes the classroom and its dependent lessons.
func (s *Store) DeleteClassroom(ctx context.Context, id string) bool {
	removed := false
	s.mutate(ctx, func(st *models.State) {
		kept := st.Classrooms[:0:0]
		for _, c := range st.Classrooms {
			if c.ID == id {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		st.Classrooms = kept
		if removed {
			st.Lessons = dropLessons(st.Lessons, func(l models.Lesson) bool { return l.ClassroomID == id })
		}
	})
	return removed
}

// AddLesson appends a lesson record.
func (s *Store) AddLesson(ctx context.Context, lesson models.Lesson) {
	s.mutate(ctx, func(st *models.State) {
		st.Lessons = append(st.Lessons, lesson)
	})
}

// UpdateLesson replaces the lesson with the same id.
func (s *Store) UpdateLesson(ctx context.Context, lesson models.Lesson) bool {
	replaced := false
	s.mutate(ctx, func(st *models.State) {
		for i := range st.Lessons {
			if st.Lessons[i].ID == lesson.ID {
				st.Lessons[i] = lesson
				replaced = true
				return
			}
		}
	})
	return replaced
}

// DeleteLesson removes a lesson by id.
func (s *Store) DeleteLesson(ctx context.Context, id string) bool {
	removed := false
	s.mutate(ctx, func(st *models.State) {
		st.Lessons = dropLessons(st.Lessons, func(l models.Lesson) bool {
			if l.ID == id {
				removed = true
				return true
			}
			return false
		})
	})
	return removed
}

// LessonsReferencing returns the lessons that would be cascade-deleted if
// the given entity were removed.
func (s *Store) LessonsReferencing(entityID string) []models.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	var dependents []models.Lesson
	for _, lesson := range s.state.Lessons {
		if lesson.References(entityID) {
			dependents = append(dependents, lesson)
		}
	}
	return dependents
}

// UpdateSettings merges the given settings over the current ones.
func (s *Store) UpdateSettings(ctx context.Context, settings models.Settings) {
	s.mutate(ctx, func(st *models.State) {
		st.Settings = settings
	})
}

// ApplyBatch adds a staged import batch through the normal append
// operations in one atomic mutation.
func (s *Store) ApplyBatch(ctx context.Context, teachers []models.Teacher, groups []models.Group, classrooms []models.Classroom, lessons []models.Lesson) {
	s.mutate(ctx, func(st *models.State) {
		st.Teachers = append(st.Teachers, teachers...)
		st.Groups = append(st.Groups, groups...)
		st.Classrooms = append(st.Classrooms, classrooms...)
		st.Lessons = append(st.Lessons, lessons...)
	})
}

// Replace swaps in a whole new state tree.
func (s *Store) Replace(ctx context.Context, state models.State) {
	s.mutate(ctx, func(st *models.State) {
		*st = state.Clone()
	})
}

func removeTeacher(teachers []models.Teacher, id string) ([]models.Teacher, bool) {
	kept := teachers[:0:0]
	removed := false
	for _, t := range teachers {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	return kept, removed
}

func dropLessons(lessons []models.Lesson, match func(models.Lesson) bool) []models.Lesson {
	kept := lessons[:0:0]
	for _, l := range lessons {
		if match(l) {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}
