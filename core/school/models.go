package school

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutorai/core"
)

// DefaultGrade is assigned to students created without a grade.
const DefaultGrade = "N/A"

// Student is a learner, enrolled in CourseIDs.
type Student struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Grade     string    `json:"grade"`
	CourseIDs IDs       `json:"courses"`
	CreatedAt time.Time `json:"createdAt"` // UTC
}

// Clone returns a copy that shares no slices with s.
func (s Student) Clone() Student {
	s.CourseIDs = s.CourseIDs.Clone()
	return s
}

// Course owns its tasks and lists its enrolled students.
type Course struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StudentIDs  IDs       `json:"students"`
	TaskIDs     IDs       `json:"tasks"`
	CreatedAt   time.Time `json:"createdAt"` // UTC
}

// Clone returns a copy that shares no slices with c.
func (c Course) Clone() Course {
	c.StudentIDs = c.StudentIDs.Clone()
	c.TaskIDs = c.TaskIDs.Clone()
	return c
}

// Task belongs to one course and is assigned to StudentIDs.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CourseID    int       `json:"courseId"`
	StudentIDs  IDs       `json:"studentIds"`
	DueDate     string    `json:"dueDate"` // YYYY-MM-DD
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"` // UTC
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	t.StudentIDs = t.StudentIDs.Clone()
	return t
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Grade string `json:"grade"`
}

// Validate checks ns without modifying it. Text is trimmed for the blank checks only;
// accepted values are stored as sent.
func (ns *NewStudent) Validate(validate *validator.Validate) error {
	check := *ns
	check.Name = core.CleanString(ns.Name)
	return validate.Struct(check)
}

// UpdateStudent defines what information may be provided to modify an existing Student.
// Omitted (nil) fields are left untouched.
type UpdateStudent struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,min=1,email"`
	Grade *string `json:"grade"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	check := *us
	check.Name = core.CleanStringPtr(us.Name)
	return validate.Struct(check)
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	check := *nc
	check.Title = core.CleanString(nc.Title)
	check.Description = core.CleanString(nc.Description)
	return validate.Struct(check)
}

// UpdateCourse defines what information may be provided to modify an existing Course.
type UpdateCourse struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	check := *uc
	check.Title = core.CleanStringPtr(uc.Title)
	check.Description = core.CleanStringPtr(uc.Description)
	return validate.Struct(check)
}

// NewTask contains information needed to create a new Task.
type NewTask struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	CourseID    int    `json:"courseId" validate:"required"`
	StudentIDs  IDs    `json:"studentIds"`
	DueDate     string `json:"dueDate" validate:"required,datetime=2006-01-02"`
}

func (nt *NewTask) Validate(validate *validator.Validate) error {
	check := *nt
	check.Title = core.CleanString(nt.Title)
	check.Description = core.CleanString(nt.Description)
	return validate.Struct(check)
}

// UpdateTask defines what information may be provided to modify an existing Task.
// A task's course and assignees are fixed at creation.
type UpdateTask struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	DueDate     *string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completed"`
}

func (ut *UpdateTask) Validate(validate *validator.Validate) error {
	check := *ut
	check.Title = core.CleanStringPtr(ut.Title)
	check.Description = core.CleanStringPtr(ut.Description)
	return validate.Struct(check)
}
