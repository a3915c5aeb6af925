package school

import "github.com/pkg/errors"

// This file keeps the student <-> course (enrollment), course <-> task (ownership) and
// task <-> student (assignment) links symmetric. Every function runs inside one Store.Update.

// unlinkStudent removes a student from every course roster and every task assignee list.
func unlinkStudent(tx Tx, studentID int) error {
	courses, err := tx.QueryAllCourses()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	for _, course := range courses {
		if course.StudentIDs.Has(studentID) {
			if err := tx.SetCourseStudents(course.ID, course.StudentIDs.Remove(studentID)); err != nil {
				return errors.Wrap(err, "removing student from course")
			}
		}
	}

	tasks, err := tx.QueryAllTasks()
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	for _, task := range tasks {
		if task.StudentIDs.Has(studentID) {
			if err := tx.SetTaskStudents(task.ID, task.StudentIDs.Remove(studentID)); err != nil {
				return errors.Wrap(err, "removing student from task")
			}
		}
	}
	return nil
}

// unlinkCourse deletes every task owned by the course, then removes the course from every
// student's enrollments.
func unlinkCourse(tx Tx, courseID int) error {
	tasks, err := tx.QueryAllTasks()
	if err != nil {
		return errors.Wrap(err, "querying tasks")
	}
	for _, task := range tasks {
		if task.CourseID == courseID {
			if err := deleteTask(tx, task); err != nil {
				return errors.Wrap(err, "deleting course task")
			}
		}
	}

	students, err := tx.QueryAllStudents()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	for _, student := range students {
		if student.CourseIDs.Has(courseID) {
			if err := tx.SetStudentCourses(student.ID, student.CourseIDs.Remove(courseID)); err != nil {
				return errors.Wrap(err, "removing course from student")
			}
		}
	}
	return nil
}

// linkTask appends a new task to its owning course.
func linkTask(tx Tx, task Task) error {
	course, err := tx.GetCourseByID(task.CourseID)
	if err != nil {
		return err
	}
	return tx.SetCourseTasks(course.ID, course.TaskIDs.Add(task.ID))
}

// unlinkTask removes a task from its owning course, if the course still exists.
func unlinkTask(tx Tx, task Task) error {
	course, err := tx.GetCourseByID(task.CourseID)
	if err != nil {
		if errors.Cause(err) == ErrCourseNotFound {
			return nil
		}
		return err
	}
	return tx.SetCourseTasks(course.ID, course.TaskIDs.Remove(task.ID))
}

func deleteTask(tx Tx, task Task) error {
	if err := unlinkTask(tx, task); err != nil {
		return errors.Wrap(err, "removing task from course")
	}
	return tx.DeleteTask(task.ID)
}

// enroll links a course and a student both ways. Linking an already linked pair is a no-op.
func enroll(tx Tx, courseID, studentID int) error {
	course, student, err := getCourseAndStudent(tx, courseID, studentID)
	if err != nil {
		return err
	}
	if err := tx.SetCourseStudents(course.ID, course.StudentIDs.Add(student.ID)); err != nil {
		return errors.Wrap(err, "adding student to course")
	}
	if err := tx.SetStudentCourses(student.ID, student.CourseIDs.Add(course.ID)); err != nil {
		return errors.Wrap(err, "adding course to student")
	}
	return nil
}

// unenroll removes the link between a course and a student both ways.
func unenroll(tx Tx, courseID, studentID int) error {
	course, student, err := getCourseAndStudent(tx, courseID, studentID)
	if err != nil {
		return err
	}
	if err := tx.SetCourseStudents(course.ID, course.StudentIDs.Remove(student.ID)); err != nil {
		return errors.Wrap(err, "removing student from course")
	}
	if err := tx.SetStudentCourses(student.ID, student.CourseIDs.Remove(course.ID)); err != nil {
		return errors.Wrap(err, "removing course from student")
	}
	return nil
}

func getCourseAndStudent(tx Tx, courseID, studentID int) (Course, Student, error) {
	course, cErr := tx.GetCourseByID(courseID)
	student, sErr := tx.GetStudentByID(studentID)
	for _, err := range []error{cErr, sErr} {
		if err == nil {
			continue
		}
		switch errors.Cause(err) {
		case ErrCourseNotFound, ErrStudentNotFound:
			return Course{}, Student{}, ErrCourseOrStudentNotFound
		default:
			return Course{}, Student{}, err
		}
	}
	return course, student, nil
}
