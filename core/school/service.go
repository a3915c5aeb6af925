package school

import (
	"time"

	"github.com/pkg/errors"
)

type (
	ServiceInterface interface {
		CreateStudent(ns NewStudent) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		UpdateStudent(id int, us UpdateStudent) (Student, error)
		DeleteStudent(id int) error

		CreateCourse(nc NewCourse) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id int) (Course, error)
		UpdateCourse(id int, uc UpdateCourse) (Course, error)
		DeleteCourse(id int) error
		Enroll(courseID, studentID int) error
		Unenroll(courseID, studentID int) error

		CreateTask(nt NewTask) (Task, error)
		QueryAllTasks() ([]Task, error)
		GetTaskByID(id int) (Task, error)
		UpdateTask(id int, ut UpdateTask) (Task, error)
		DeleteTask(id int) error

		Counts() (Counts, error)
	}

	// FixtureLoader seeds a store with demo data.
	FixtureLoader interface {
		LoadFixtures() error
	}

	// Counts is the size of each collection.
	Counts struct {
		Students int `json:"students"`
		Courses  int `json:"courses"`
		Tasks    int `json:"tasks"`
	}

	Service struct {
		store Store
		now   func() time.Time
	}
)

var (
	_ ServiceInterface = (*Service)(nil)
	_ FixtureLoader    = (*Service)(nil)
)

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Students

func (svc *Service) CreateStudent(ns NewStudent) (Student, error) {
	grade := ns.Grade
	if grade == "" {
		grade = DefaultGrade
	}
	student := Student{
		Name:      ns.Name,
		Email:     ns.Email,
		Grade:     grade,
		CreatedAt: svc.now(),
	}

	err := svc.store.Update(func(tx Tx) (err error) {
		student, err = tx.CreateStudent(student)
		return err
	})
	return student, err
}

func (svc *Service) QueryAllStudents() (students []Student, err error) {
	err = svc.store.View(func(tx Tx) error {
		students, err = tx.QueryAllStudents()
		return err
	})
	return students, err
}

func (svc *Service) GetStudentByID(id int) (student Student, err error) {
	err = svc.store.View(func(tx Tx) error {
		student, err = tx.GetStudentByID(id)
		return err
	})
	return student, err
}

func (svc *Service) UpdateStudent(id int, us UpdateStudent) (student Student, err error) {
	err = svc.store.Update(func(tx Tx) error {
		if student, err = tx.GetStudentByID(id); err != nil {
			return err
		}
		if us.Name != nil {
			student.Name = *us.Name
		}
		if us.Email != nil {
			student.Email = *us.Email
		}
		if us.Grade != nil {
			student.Grade = *us.Grade
			if student.Grade == "" {
				student.Grade = DefaultGrade
			}
		}
		student, err = tx.UpdateStudent(student)
		return err
	})
	return student, err
}

func (svc *Service) DeleteStudent(id int) error {
	return svc.store.Update(func(tx Tx) error {
		if _, err := tx.GetStudentByID(id); err != nil {
			return err
		}
		if err := unlinkStudent(tx, id); err != nil {
			return errors.Wrap(err, "unlinking student")
		}
		return tx.DeleteStudent(id)
	})
}

// Courses

func (svc *Service) CreateCourse(nc NewCourse) (Course, error) {
	course := Course{
		Title:       nc.Title,
		Description: nc.Description,
		CreatedAt:   svc.now(),
	}

	err := svc.store.Update(func(tx Tx) (err error) {
		course, err = tx.CreateCourse(course)
		return err
	})
	return course, err
}

func (svc *Service) QueryAllCourses() (courses []Course, err error) {
	err = svc.store.View(func(tx Tx) error {
		courses, err = tx.QueryAllCourses()
		return err
	})
	return courses, err
}

func (svc *Service) GetCourseByID(id int) (course Course, err error) {
	err = svc.store.View(func(tx Tx) error {
		course, err = tx.GetCourseByID(id)
		return err
	})
	return course, err
}

func (svc *Service) UpdateCourse(id int, uc UpdateCourse) (course Course, err error) {
	err = svc.store.Update(func(tx Tx) error {
		if course, err = tx.GetCourseByID(id); err != nil {
			return err
		}
		if uc.Title != nil {
			course.Title = *uc.Title
		}
		if uc.Description != nil {
			course.Description = *uc.Description
		}
		course, err = tx.UpdateCourse(course)
		return err
	})
	return course, err
}

// DeleteCourse deletes the course, every task it owns and every enrollment in it.
func (svc *Service) DeleteCourse(id int) error {
	return svc.store.Update(func(tx Tx) error {
		if _, err := tx.GetCourseByID(id); err != nil {
			return err
		}
		if err := unlinkCourse(tx, id); err != nil {
			return errors.Wrap(err, "unlinking course")
		}
		return tx.DeleteCourse(id)
	})
}

func (svc *Service) Enroll(courseID, studentID int) error {
	return svc.store.Update(func(tx Tx) error {
		return enroll(tx, courseID, studentID)
	})
}

func (svc *Service) Unenroll(courseID, studentID int) error {
	return svc.store.Update(func(tx Tx) error {
		return unenroll(tx, courseID, studentID)
	})
}

// Tasks

func (svc *Service) CreateTask(nt NewTask) (Task, error) {
	task := Task{
		Title:       nt.Title,
		Description: nt.Description,
		CourseID:    nt.CourseID,
		StudentIDs:  nt.StudentIDs.Unique(),
		DueDate:     nt.DueDate,
		CreatedAt:   svc.now(),
	}

	err := svc.store.Update(func(tx Tx) (err error) {
		if _, err = tx.GetCourseByID(task.CourseID); err != nil {
			return err
		}
		for _, studentID := range task.StudentIDs {
			if _, err = tx.GetStudentByID(studentID); err != nil {
				return err
			}
		}
		if task, err = tx.CreateTask(task); err != nil {
			return err
		}
		return linkTask(tx, task)
	})
	return task, err
}

func (svc *Service) QueryAllTasks() (tasks []Task, err error) {
	err = svc.store.View(func(tx Tx) error {
		tasks, err = tx.QueryAllTasks()
		return err
	})
	return tasks, err
}

func (svc *Service) GetTaskByID(id int) (task Task, err error) {
	err = svc.store.View(func(tx Tx) error {
		task, err = tx.GetTaskByID(id)
		return err
	})
	return task, err
}

// UpdateTask saves the task's title, description, due date and completion.
// Its course and assignees cannot be changed.
func (svc *Service) UpdateTask(id int, ut UpdateTask) (task Task, err error) {
	err = svc.store.Update(func(tx Tx) error {
		if task, err = tx.GetTaskByID(id); err != nil {
			return err
		}
		if ut.Title != nil {
			task.Title = *ut.Title
		}
		if ut.Description != nil {
			task.Description = *ut.Description
		}
		if ut.DueDate != nil {
			task.DueDate = *ut.DueDate
		}
		if ut.Completed != nil {
			task.Completed = *ut.Completed
		}
		task, err = tx.UpdateTask(task)
		return err
	})
	return task, err
}

func (svc *Service) DeleteTask(id int) error {
	return svc.store.Update(func(tx Tx) error {
		task, err := tx.GetTaskByID(id)
		if err != nil {
			return err
		}
		return deleteTask(tx, task)
	})
}

func (svc *Service) Counts() (counts Counts, err error) {
	err = svc.store.View(func(tx Tx) error {
		counts = Counts{
			Students: tx.CountStudents(),
			Courses:  tx.CountCourses(),
			Tasks:    tx.CountTasks(),
		}
		return nil
	})
	return counts, err
}

// LoadFixtures creates the demo student, course and task, linked together.
// On an empty store they all get id 1.
func (svc *Service) LoadFixtures() error {
	student, err := svc.CreateStudent(NewStudent{Name: "John Doe", Email: "john@example.com", Grade: "A"})
	if err != nil {
		return errors.Wrap(err, "creating fixture student")
	}
	course, err := svc.CreateCourse(NewCourse{Title: "Mathematics 101", Description: "Basic mathematics course"})
	if err != nil {
		return errors.Wrap(err, "creating fixture course")
	}
	if err = svc.Enroll(course.ID, student.ID); err != nil {
		return errors.Wrap(err, "enrolling fixture student")
	}
	_, err = svc.CreateTask(NewTask{
		Title:       "Algebra Homework",
		Description: "Complete exercises 1-10",
		CourseID:    course.ID,
		StudentIDs:  IDs{student.ID},
		DueDate:     "2024-01-15",
	})
	return errors.Wrap(err, "creating fixture task")
}
