package inmemdb

import "github.com/trezcool/tutorai/core/school"

func (t *tx) CreateStudent(student school.Student) (school.Student, error) {
	if err := t.beforeWrite(studentsTable); err != nil {
		return school.Student{}, err
	}

	tbl := t.db.student
	tbl.pkCount++
	student.ID = tbl.pkCount
	student.CourseIDs = student.CourseIDs.Clone()
	tbl.table[student.ID] = student
	return student.Clone(), nil
}

func (t *tx) QueryAllStudents() ([]school.Student, error) {
	tbl := t.db.student
	ids := make([]int, 0, len(tbl.table))
	for id := range tbl.table {
		ids = append(ids, id)
	}
	students := make([]school.Student, 0, len(ids))
	for _, id := range sortedIDs(ids) {
		students = append(students, tbl.table[id].Clone())
	}
	return students, nil
}

func (t *tx) GetStudentByID(id int) (school.Student, error) {
	if student, ok := t.db.student.table[id]; ok {
		return student.Clone(), nil
	}
	return school.Student{}, school.ErrStudentNotFound
}

func (t *tx) UpdateStudent(student school.Student) (school.Student, error) {
	origStudent, ok := t.db.student.table[student.ID]
	if !ok {
		return school.Student{}, school.ErrStudentNotFound
	}
	if err := t.beforeWrite(studentsTable); err != nil {
		return school.Student{}, err
	}

	// only save scalar fields
	origStudent.Name = student.Name
	origStudent.Email = student.Email
	origStudent.Grade = student.Grade

	t.db.student.table[student.ID] = origStudent
	return origStudent.Clone(), nil
}

func (t *tx) SetStudentCourses(id int, courseIDs school.IDs) error {
	student, ok := t.db.student.table[id]
	if !ok {
		return school.ErrStudentNotFound
	}
	if err := t.beforeWrite(studentsTable); err != nil {
		return err
	}

	student.CourseIDs = courseIDs.Clone()
	t.db.student.table[id] = student
	return nil
}

func (t *tx) DeleteStudent(id int) error {
	if _, ok := t.db.student.table[id]; !ok {
		return school.ErrStudentNotFound
	}
	if err := t.beforeWrite(studentsTable); err != nil {
		return err
	}

	delete(t.db.student.table, id)
	return nil
}

func (t *tx) CountStudents() int {
	return len(t.db.student.table)
}
