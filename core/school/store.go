package school

import "github.com/trezcool/tutorai/core"

var (
	// errors
	ErrStudentNotFound         = core.NewNotFoundError("student not found")
	ErrCourseNotFound          = core.NewNotFoundError("course not found")
	ErrTaskNotFound            = core.NewNotFoundError("task not found")
	ErrCourseOrStudentNotFound = core.NewNotFoundError("course or student not found")
)

type (
	// Store holds the student, course and task collections.
	// Update runs fn with exclusive access to every collection: nothing else reads or writes
	// them until fn returns. View runs fn with shared, read-only access.
	Store interface {
		Update(fn func(tx Tx) error) error
		View(fn func(tx Tx) error) error
	}

	// Tx is the set of collection operations available inside a Store transaction.
	// Create* assign the next id of that kind. Update* save scalar fields only and never touch
	// relationship sets; those change through the Set* operations. Query* return entities in
	// insertion order.
	Tx interface {
		StudentTx
		CourseTx
		TaskTx
	}

	StudentTx interface {
		CreateStudent(student Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		UpdateStudent(student Student) (Student, error)
		SetStudentCourses(id int, courseIDs IDs) error
		DeleteStudent(id int) error
		CountStudents() int
	}

	CourseTx interface {
		CreateCourse(course Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id int) (Course, error)
		UpdateCourse(course Course) (Course, error)
		SetCourseStudents(id int, studentIDs IDs) error
		SetCourseTasks(id int, taskIDs IDs) error
		DeleteCourse(id int) error
		CountCourses() int
	}

	TaskTx interface {
		CreateTask(task Task) (Task, error)
		QueryAllTasks() ([]Task, error)
		GetTaskByID(id int) (Task, error)
		UpdateTask(task Task) (Task, error)
		SetTaskStudents(id int, studentIDs IDs) error
		DeleteTask(id int) error
		CountTasks() int
	}
)
