package inmemdb

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutorai/core/school"
)

func createStudent(t *testing.T, db *DB, name string) (student school.Student) {
	err := db.Update(func(tx school.Tx) (err error) {
		student, err = tx.CreateStudent(school.Student{Name: name, Email: name + "@test.cd", Grade: school.DefaultGrade})
		return err
	})
	require.NoError(t, err)
	return student
}

func TestDB_idsAreMonotonic(t *testing.T) {
	db := Open()

	s1 := createStudent(t, db, "ann")
	s2 := createStudent(t, db, "bob")
	assert.Equal(t, 1, s1.ID)
	assert.Equal(t, 2, s2.ID)

	require.NoError(t, db.Update(func(tx school.Tx) error { return tx.DeleteStudent(s2.ID) }))

	s3 := createStudent(t, db, "cid")
	assert.Equal(t, 3, s3.ID, "ids are never reused")

	// each kind has its own counter
	var course school.Course
	require.NoError(t, db.Update(func(tx school.Tx) (err error) {
		course, err = tx.CreateCourse(school.Course{Title: "Maths", Description: "Numbers"})
		return err
	}))
	assert.Equal(t, 1, course.ID)
}

func TestDB_queryAllInInsertionOrder(t *testing.T) {
	db := Open()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		createStudent(t, db, name)
	}

	var students []school.Student
	require.NoError(t, db.View(func(tx school.Tx) (err error) {
		students, err = tx.QueryAllStudents()
		return err
	}))
	require.Len(t, students, 12)
	for i, s := range students {
		assert.Equal(t, i+1, s.ID)
	}
}

func TestDB_updateKeepsRelationships(t *testing.T) {
	db := Open()
	student := createStudent(t, db, "ann")

	require.NoError(t, db.Update(func(tx school.Tx) error {
		return tx.SetStudentCourses(student.ID, school.IDs{4, 2})
	}))

	var updated school.Student
	require.NoError(t, db.Update(func(tx school.Tx) (err error) {
		updated, err = tx.UpdateStudent(school.Student{ID: student.ID, Name: "Ann", Email: "ann@x.com", Grade: "B"})
		return err
	}))
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, "B", updated.Grade)
	assert.Equal(t, school.IDs{4, 2}, updated.CourseIDs)
	assert.Equal(t, student.CreatedAt, updated.CreatedAt)
}

func TestDB_entitiesAreCopied(t *testing.T) {
	db := Open()
	student := createStudent(t, db, "ann")

	ids := school.IDs{1, 2}
	require.NoError(t, db.Update(func(tx school.Tx) error { return tx.SetStudentCourses(student.ID, ids) }))
	ids[0] = 99

	var got school.Student
	require.NoError(t, db.View(func(tx school.Tx) (err error) {
		got, err = tx.GetStudentByID(student.ID)
		return err
	}))
	assert.Equal(t, school.IDs{1, 2}, got.CourseIDs)

	got.CourseIDs[1] = 42
	require.NoError(t, db.View(func(tx school.Tx) (err error) {
		got, err = tx.GetStudentByID(student.ID)
		return err
	}))
	assert.Equal(t, school.IDs{1, 2}, got.CourseIDs)
}

func TestDB_notFound(t *testing.T) {
	db := Open()

	err := db.Update(func(tx school.Tx) error {
		_, err := tx.GetCourseByID(7)
		return err
	})
	assert.Equal(t, school.ErrCourseNotFound, err)

	err = db.Update(func(tx school.Tx) error { return tx.DeleteTask(7) })
	assert.Equal(t, school.ErrTaskNotFound, err)

	err = db.Update(func(tx school.Tx) error {
		_, err := tx.UpdateStudent(school.Student{ID: 7})
		return err
	})
	assert.Equal(t, school.ErrStudentNotFound, err)
}

func TestDB_viewIsReadOnly(t *testing.T) {
	db := Open()
	err := db.View(func(tx school.Tx) error {
		_, err := tx.CreateStudent(school.Student{Name: "ann"})
		return err
	})
	assert.Equal(t, errReadOnly, err)
	assert.Equal(t, 0, db.student.pkCount)
}

func TestDB_updateRollsBackOnError(t *testing.T) {
	db := Open()
	student := createStudent(t, db, "ann")
	errBoom := errors.New("boom")

	err := db.Update(func(tx school.Tx) error {
		if _, err := tx.CreateCourse(school.Course{Title: "Maths"}); err != nil {
			return err
		}
		if err := tx.SetStudentCourses(student.ID, school.IDs{1}); err != nil {
			return err
		}
		if err := tx.DeleteStudent(student.ID); err != nil {
			return err
		}
		return errBoom
	})
	assert.Equal(t, errBoom, err)

	require.NoError(t, db.View(func(tx school.Tx) error {
		assert.Equal(t, 0, tx.CountCourses())
		got, err := tx.GetStudentByID(student.ID)
		if err != nil {
			return err
		}
		assert.Empty(t, got.CourseIDs)
		return nil
	}))

	// the id handed out by the failed transaction is not reused
	var course school.Course
	require.NoError(t, db.Update(func(tx school.Tx) (err error) {
		course, err = tx.CreateCourse(school.Course{Title: "Maths"})
		return err
	}))
	assert.Equal(t, 2, course.ID)
}

func TestDB_updateSnapshotsOnlyWrittenTables(t *testing.T) {
	db := Open()
	student := createStudent(t, db, "ann")
	errBoom := errors.New("boom")

	err := db.Update(func(stx school.Tx) error {
		wtx := stx.(*tx)
		if err := wtx.SetStudentCourses(student.ID, school.IDs{1}); err != nil {
			return err
		}
		assert.NotNil(t, wtx.backup.students)
		assert.Nil(t, wtx.backup.courses)
		assert.Nil(t, wtx.backup.tasks)

		if _, err := wtx.CreateTask(school.Task{Title: "Essay", CourseID: 1}); err != nil {
			return err
		}
		assert.NotNil(t, wtx.backup.tasks)
		assert.Nil(t, wtx.backup.courses)
		return errBoom
	})
	assert.Equal(t, errBoom, err)

	require.NoError(t, db.View(func(tx school.Tx) error {
		assert.Equal(t, 0, tx.CountTasks())
		got, err := tx.GetStudentByID(student.ID)
		if err != nil {
			return err
		}
		assert.Empty(t, got.CourseIDs)
		return nil
	}))
}
