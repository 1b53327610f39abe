package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		head_teacher_id INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS teachers (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		email VARCHAR(100) UNIQUE,
		phone VARCHAR(20),
		department_id INTEGER REFERENCES departments(id),
		hire_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS groups (
		id SERIAL PRIMARY KEY,
		name VARCHAR(20) NOT NULL,
		department_id INTEGER REFERENCES departments(id),
		start_date DATE,
		end_date DATE,
		curator_id INTEGER REFERENCES teachers(id)
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		email VARCHAR(100) UNIQUE,
		phone VARCHAR(20),
		group_id INTEGER REFERENCES groups(id),
		enrollment_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS subjects (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		department_id INTEGER REFERENCES departments(id)
	)`,
	`CREATE TABLE IF NOT EXISTS teaching (
		id SERIAL PRIMARY KEY,
		teacher_id INTEGER REFERENCES teachers(id),
		subject_id INTEGER REFERENCES subjects(id),
		group_id INTEGER REFERENCES groups(id)
	)`,
	`CREATE TABLE IF NOT EXISTS grades (
		id SERIAL PRIMARY KEY,
		student_id INTEGER REFERENCES students(id),
		subject_id INTEGER REFERENCES subjects(id),
		grade INTEGER CHECK (grade BETWEEN 1 AND 5),
		exam_date DATE,
		teacher_id INTEGER REFERENCES teachers(id)
	)`,
}

var seedStatements = []string{
	`INSERT INTO departments (name) VALUES ('Software Engineering') ON CONFLICT DO NOTHING`,
	`INSERT INTO departments (name) VALUES ('Design') ON CONFLICT DO NOTHING`,
	`INSERT INTO teachers (first_name, last_name, email, phone, department_id, hire_date)
	 VALUES
	 ('Ivan', 'Petrov', 'ivan@college.edu', '+79991112233', 1, '2020-01-15'),
	 ('Maria', 'Sidorova', 'maria@college.edu', '+79994445566', 2, '2019-03-20')
	 ON CONFLICT DO NOTHING`,
	`INSERT INTO groups (name, department_id, start_date, end_date, curator_id)
	 VALUES
	 ('SE-21', 1, '2023-09-01', '2025-06-30', 1),
	 ('DS-22', 2, '2023-09-01', '2025-06-30', 2)
	 ON CONFLICT DO NOTHING`,
	`INSERT INTO students (first_name, last_name, email, phone, group_id, enrollment_date)
	 VALUES
	 ('Alexey', 'Ivanov', 'alex@mail.com', '+79991234567', 1, '2023-09-01'),
	 ('Elena', 'Smirnova', 'elena@mail.com', '+79992345678', 1, '2023-09-01'),
	 ('Dmitry', 'Kozlov', 'dmitry@mail.com', '+79993456789', 2, '2023-09-01')
	 ON CONFLICT DO NOTHING`,
	`INSERT INTO subjects (name, department_id)
	 VALUES
	 ('Programming Fundamentals', 1),
	 ('Web Design', 2),
	 ('Databases', 1)
	 ON CONFLICT DO NOTHING`,
	`INSERT INTO grades (student_id, subject_id, grade, teacher_id, exam_date)
	 VALUES
	 (1, 1, 5, 1, '2024-01-20'),
	 (1, 3, 4, 1, '2024-01-25'),
	 (2, 1, 5, 1, '2024-01-20'),
	 (3, 2, 5, 2, '2024-01-22')
	 ON CONFLICT DO NOTHING`,
}

// Bootstrap creates the college schema if it does not exist yet. The grade
// range check lives in the table definition so it holds even when the
// dispatcher-level validation is bypassed.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}

// Seed inserts a small demo data set. Intended for development databases.
func Seed(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range seedStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed data: %w", err)
		}
	}
	return nil
}
