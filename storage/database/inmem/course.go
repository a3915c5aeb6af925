package inmemdb

import "github.com/trezcool/tutorai/core/school"

func (t *tx) CreateCourse(course school.Course) (school.Course, error) {
	if err := t.beforeWrite(coursesTable); err != nil {
		return school.Course{}, err
	}

	tbl := t.db.course
	tbl.pkCount++
	course.ID = tbl.pkCount
	course = course.Clone()
	tbl.table[course.ID] = course
	return course.Clone(), nil
}

func (t *tx) QueryAllCourses() ([]school.Course, error) {
	tbl := t.db.course
	ids := make([]int, 0, len(tbl.table))
	for id := range tbl.table {
		ids = append(ids, id)
	}
	courses := make([]school.Course, 0, len(ids))
	for _, id := range sortedIDs(ids) {
		courses = append(courses, tbl.table[id].Clone())
	}
	return courses, nil
}

func (t *tx) GetCourseByID(id int) (school.Course, error) {
	if course, ok := t.db.course.table[id]; ok {
		return course.Clone(), nil
	}
	return school.Course{}, school.ErrCourseNotFound
}

func (t *tx) UpdateCourse(course school.Course) (school.Course, error) {
	origCourse, ok := t.db.course.table[course.ID]
	if !ok {
		return school.Course{}, school.ErrCourseNotFound
	}
	if err := t.beforeWrite(coursesTable); err != nil {
		return school.Course{}, err
	}

	// only save scalar fields
	origCourse.Title = course.Title
	origCourse.Description = course.Description

	t.db.course.table[course.ID] = origCourse
	return origCourse.Clone(), nil
}

func (t *tx) SetCourseStudents(id int, studentIDs school.IDs) error {
	course, ok := t.db.course.table[id]
	if !ok {
		return school.ErrCourseNotFound
	}
	if err := t.beforeWrite(coursesTable); err != nil {
		return err
	}

	course.StudentIDs = studentIDs.Clone()
	t.db.course.table[id] = course
	return nil
}

func (t *tx) SetCourseTasks(id int, taskIDs school.IDs) error {
	course, ok := t.db.course.table[id]
	if !ok {
		return school.ErrCourseNotFound
	}
	if err := t.beforeWrite(coursesTable); err != nil {
		return err
	}

	course.TaskIDs = taskIDs.Clone()
	t.db.course.table[id] = course
	return nil
}

func (t *tx) DeleteCourse(id int) error {
	if _, ok := t.db.course.table[id]; !ok {
		return school.ErrCourseNotFound
	}
	if err := t.beforeWrite(coursesTable); err != nil {
		return err
	}

	delete(t.db.course.table, id)
	return nil
}

func (t *tx) CountCourses() int {
	return len(t.db.course.table)
}
