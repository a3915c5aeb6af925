package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trezcool/tutorai/core"
	"github.com/trezcool/tutorai/core/chat"
	"github.com/trezcool/tutorai/core/school"
)

// api is the part of apiclient.Client the view talks to.
type api interface {
	Students(ctx context.Context) ([]school.Student, error)
	CreateStudent(ctx context.Context, ns school.NewStudent) (school.Student, error)
	UpdateStudent(ctx context.Context, id int, us school.UpdateStudent) (school.Student, error)
	DeleteStudent(ctx context.Context, id int) error

	Courses(ctx context.Context) ([]school.Course, error)
	CreateCourse(ctx context.Context, nc school.NewCourse) (school.Course, error)
	UpdateCourse(ctx context.Context, id int, uc school.UpdateCourse) (school.Course, error)
	DeleteCourse(ctx context.Context, id int) error
	Enroll(ctx context.Context, courseID, studentID int) (string, error)
	Unenroll(ctx context.Context, courseID, studentID int) (string, error)

	Tasks(ctx context.Context) ([]school.Task, error)
	CreateTask(ctx context.Context, nt school.NewTask) (school.Task, error)
	UpdateTask(ctx context.Context, id int, ut school.UpdateTask) (school.Task, error)
	DeleteTask(ctx context.Context, id int) error

	Chat(ctx context.Context, message string) (chat.Reply, error)
}

const (
	senderUser = "user"
	senderAI   = "ai"
)

type ChatMessage struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// StudentForm holds the values of a student being created or edited.
type StudentForm struct {
	editID int // 0 while creating
	Name   string
	Email  string
	Grade  string
}

func (f *StudentForm) Editing() (int, bool) { return f.editID, f.editID != 0 }

type CourseForm struct {
	editID      int
	Title       string
	Description string
}

func (f *CourseForm) Editing() (int, bool) { return f.editID, f.editID != 0 }

// TaskForm only sends CourseID and StudentIDs when creating; a task's course and
// assignees are fixed afterwards.
type TaskForm struct {
	editID      int
	Title       string
	Description string
	CourseID    int
	StudentIDs  school.IDs
	DueDate     string
	Completed   *bool // nil leaves the task's status untouched
}

func (f *TaskForm) Editing() (int, bool) { return f.editID, f.editID != 0 }

// View mirrors the server collections and the chat transcript. The mirrors are only
// replaced by full re-fetches; a failed request is logged and leaves them as they were.
type View struct {
	api    api
	logger core.Logger
	now    func() time.Time

	Students []school.Student
	Courses  []school.Course
	Tasks    []school.Task
	Chat     []ChatMessage

	StudentForm StudentForm
	CourseForm  CourseForm
	TaskForm    TaskForm
}

func NewView(client api, logger core.Logger) *View {
	return &View{
		api:    client,
		logger: logger,
		now:    time.Now,
	}
}

// Load fetches the three collections.
func (v *View) Load(ctx context.Context) {
	v.fetchStudents(ctx)
	v.fetchCourses(ctx)
	v.fetchTasks(ctx)
}

func (v *View) fetchStudents(ctx context.Context) bool {
	students, err := v.api.Students(ctx)
	if err != nil {
		v.logger.Error("Error fetching students", err)
		return false
	}
	v.Students = students
	return true
}

func (v *View) fetchCourses(ctx context.Context) bool {
	courses, err := v.api.Courses(ctx)
	if err != nil {
		v.logger.Error("Error fetching courses", err)
		return false
	}
	v.Courses = courses
	return true
}

func (v *View) fetchTasks(ctx context.Context) bool {
	tasks, err := v.api.Tasks(ctx)
	if err != nil {
		v.logger.Error("Error fetching tasks", err)
		return false
	}
	v.Tasks = tasks
	return true
}

// Lookups

func (v *View) Student(id int) (school.Student, bool) {
	for _, s := range v.Students {
		if s.ID == id {
			return s, true
		}
	}
	return school.Student{}, false
}

func (v *View) Course(id int) (school.Course, bool) {
	for _, c := range v.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return school.Course{}, false
}

func (v *View) Task(id int) (school.Task, bool) {
	for _, t := range v.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return school.Task{}, false
}

func (v *View) StudentName(id int) string {
	if s, ok := v.Student(id); ok {
		return s.Name
	}
	return "Unknown Student"
}

func (v *View) CourseTitle(id int) string {
	if c, ok := v.Course(id); ok {
		return c.Title
	}
	return "Unknown Course"
}

// Students

// EditStudent loads the mirrored student into the form. It reports false if the
// student is not in the mirror.
func (v *View) EditStudent(id int) bool {
	s, ok := v.Student(id)
	if !ok {
		return false
	}
	v.StudentForm = StudentForm{editID: s.ID, Name: s.Name, Email: s.Email, Grade: s.Grade}
	return true
}

func (v *View) CancelStudent() {
	v.StudentForm = StudentForm{}
}

// SubmitStudent creates or updates the student in the form. On success the form is
// reset and the students are re-fetched.
func (v *View) SubmitStudent(ctx context.Context) bool {
	f := v.StudentForm
	var err error
	if id, editing := f.Editing(); editing {
		_, err = v.api.UpdateStudent(ctx, id, school.UpdateStudent{Name: &f.Name, Email: &f.Email, Grade: &f.Grade})
	} else {
		_, err = v.api.CreateStudent(ctx, school.NewStudent{Name: f.Name, Email: f.Email, Grade: f.Grade})
	}
	if err != nil {
		v.logger.Error("Error saving student", err)
		return false
	}

	v.CancelStudent()
	v.fetchStudents(ctx)
	return true
}

// DeleteStudent re-fetches every collection: the student disappears from courses and tasks too.
func (v *View) DeleteStudent(ctx context.Context, id int) bool {
	if err := v.api.DeleteStudent(ctx, id); err != nil {
		v.logger.Error("Error deleting student", err)
		return false
	}
	v.Load(ctx)
	return true
}

// Courses

func (v *View) EditCourse(id int) bool {
	c, ok := v.Course(id)
	if !ok {
		return false
	}
	v.CourseForm = CourseForm{editID: c.ID, Title: c.Title, Description: c.Description}
	return true
}

func (v *View) CancelCourse() {
	v.CourseForm = CourseForm{}
}

func (v *View) SubmitCourse(ctx context.Context) bool {
	f := v.CourseForm
	var err error
	if id, editing := f.Editing(); editing {
		_, err = v.api.UpdateCourse(ctx, id, school.UpdateCourse{Title: &f.Title, Description: &f.Description})
	} else {
		_, err = v.api.CreateCourse(ctx, school.NewCourse{Title: f.Title, Description: f.Description})
	}
	if err != nil {
		v.logger.Error("Error saving course", err)
		return false
	}

	v.CancelCourse()
	v.fetchCourses(ctx)
	return true
}

// DeleteCourse re-fetches courses and tasks, as the course's tasks are deleted with it.
func (v *View) DeleteCourse(ctx context.Context, id int) bool {
	if err := v.api.DeleteCourse(ctx, id); err != nil {
		v.logger.Error("Error deleting course", err)
		return false
	}
	v.fetchCourses(ctx)
	v.fetchTasks(ctx)
	return true
}

func (v *View) Enroll(ctx context.Context, courseID, studentID int) (string, bool) {
	msg, err := v.api.Enroll(ctx, courseID, studentID)
	if err != nil {
		v.logger.Error("Error enrolling student", err)
		return "", false
	}
	v.fetchCourses(ctx)
	v.fetchStudents(ctx)
	return msg, true
}

func (v *View) Unenroll(ctx context.Context, courseID, studentID int) (string, bool) {
	msg, err := v.api.Unenroll(ctx, courseID, studentID)
	if err != nil {
		v.logger.Error("Error unenrolling student", err)
		return "", false
	}
	v.fetchCourses(ctx)
	v.fetchStudents(ctx)
	return msg, true
}

// Tasks

func (v *View) EditTask(id int) bool {
	t, ok := v.Task(id)
	if !ok {
		return false
	}
	v.TaskForm = TaskForm{
		editID:      t.ID,
		Title:       t.Title,
		Description: t.Description,
		CourseID:    t.CourseID,
		StudentIDs:  t.StudentIDs.Clone(),
		DueDate:     t.DueDate,
	}
	return true
}

func (v *View) CancelTask() {
	v.TaskForm = TaskForm{}
}

// SubmitTask re-fetches tasks and courses, since a new task is listed by its course.
func (v *View) SubmitTask(ctx context.Context) bool {
	f := v.TaskForm
	var err error
	if id, editing := f.Editing(); editing {
		_, err = v.api.UpdateTask(ctx, id, school.UpdateTask{
			Title:       &f.Title,
			Description: &f.Description,
			DueDate:     &f.DueDate,
			Completed:   f.Completed,
		})
	} else {
		_, err = v.api.CreateTask(ctx, school.NewTask{
			Title:       f.Title,
			Description: f.Description,
			CourseID:    f.CourseID,
			StudentIDs:  f.StudentIDs,
			DueDate:     f.DueDate,
		})
	}
	if err != nil {
		v.logger.Error("Error saving task", err)
		return false
	}

	v.CancelTask()
	v.fetchTasks(ctx)
	v.fetchCourses(ctx)
	return true
}

func (v *View) DeleteTask(ctx context.Context, id int) bool {
	if err := v.api.DeleteTask(ctx, id); err != nil {
		v.logger.Error("Error deleting task", err)
		return false
	}
	v.fetchTasks(ctx)
	v.fetchCourses(ctx)
	return true
}

// Chat

// SendChat appends the message and, once the server answers, the reply to the transcript.
// Blank messages are ignored.
func (v *View) SendChat(ctx context.Context, text string) (ChatMessage, bool) {
	if strings.TrimSpace(text) == "" {
		return ChatMessage{}, false
	}
	v.Chat = append(v.Chat, ChatMessage{Text: text, Sender: senderUser, Timestamp: v.now()})

	reply, err := v.api.Chat(ctx, text)
	if err != nil {
		v.logger.Error("Error sending chat message", err)
		return ChatMessage{}, false
	}
	msg := ChatMessage{Text: reply.Response, Sender: senderAI, Timestamp: v.now()}
	v.Chat = append(v.Chat, msg)
	return msg, true
}

func (m ChatMessage) String() string {
	who := "You"
	if m.Sender == senderAI {
		who = "TutorAI"
	}
	return fmt.Sprintf("[%s] %s: %s", m.Timestamp.Format("15:04:05"), who, m.Text)
}
