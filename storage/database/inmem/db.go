package inmemdb

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/tutorai/core/school"
)

var errReadOnly = errors.New("write attempted in a read-only transaction")

type (
	// DB keeps every collection in process memory. One lock guards all of them, so a
	// transaction sees and leaves the collections consistent.
	// A write transaction copies each table it writes once, before its first write to it,
	// so a mutation costs O(size of that table).
	DB struct {
		mu      sync.RWMutex
		student *studentTable
		course  *courseTable
		task    *taskTable
	}

	studentTable struct {
		pkCount int
		table   map[int]school.Student
	}

	courseTable struct {
		pkCount int
		table   map[int]school.Course
	}

	taskTable struct {
		pkCount int
		table   map[int]school.Task
	}

	// snapshot holds the tables saved by a write transaction; nil means not written.
	snapshot struct {
		students map[int]school.Student
		courses  map[int]school.Course
		tasks    map[int]school.Task
	}

	tx struct {
		db       *DB
		writable bool
		backup   snapshot
	}

	tableKind int
)

const (
	studentsTable tableKind = iota
	coursesTable
	tasksTable
)

var (
	_ school.Store = (*DB)(nil) // interface compliance check
	_ school.Tx    = (*tx)(nil)
)

func Open() *DB {
	return &DB{
		student: &studentTable{table: make(map[int]school.Student)},
		course:  &courseTable{table: make(map[int]school.Course)},
		task:    &taskTable{table: make(map[int]school.Task)},
	}
}

// Update runs fn with exclusive access. If fn fails, every write it made is undone.
func (db *DB) Update(fn func(tx school.Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	t := &tx{db: db, writable: true}
	if err := fn(t); err != nil {
		t.rollback()
		return err
	}
	return nil
}

// View runs fn with shared, read-only access.
func (db *DB) View(fn func(tx school.Tx) error) error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return fn(&tx{db: db})
}

// beforeWrite checks that writes are allowed and saves the table on its first write.
func (t *tx) beforeWrite(kind tableKind) error {
	if !t.writable {
		return errReadOnly
	}
	switch kind {
	case studentsTable:
		if t.backup.students == nil {
			t.backup.students = copyStudents(t.db.student.table)
		}
	case coursesTable:
		if t.backup.courses == nil {
			t.backup.courses = copyCourses(t.db.course.table)
		}
	case tasksTable:
		if t.backup.tasks == nil {
			t.backup.tasks = copyTasks(t.db.task.table)
		}
	}
	return nil
}

// rollback restores the tables saved before their first write.
// Id counters are left as they are: ids are never handed out twice.
func (t *tx) rollback() {
	if t.backup.students != nil {
		t.db.student.table = t.backup.students
	}
	if t.backup.courses != nil {
		t.db.course.table = t.backup.courses
	}
	if t.backup.tasks != nil {
		t.db.task.table = t.backup.tasks
	}
	t.backup = snapshot{}
}

// Stored entities never share relationship slices with callers, and Set* operations replace
// slices instead of mutating them, so copying the maps is enough for a snapshot.

func copyStudents(m map[int]school.Student) map[int]school.Student {
	res := make(map[int]school.Student, len(m))
	for k, v := range m {
		res[k] = v
	}
	return res
}

func copyCourses(m map[int]school.Course) map[int]school.Course {
	res := make(map[int]school.Course, len(m))
	for k, v := range m {
		res[k] = v
	}
	return res
}

func copyTasks(m map[int]school.Task) map[int]school.Task {
	res := make(map[int]school.Task, len(m))
	for k, v := range m {
		res[k] = v
	}
	return res
}

// sortedIDs returns the ids in insertion order (ids are monotonic).
func sortedIDs(ids []int) []int {
	sort.Ints(ids)
	return ids
}
