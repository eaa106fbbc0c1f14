package repository

const employeeColumns = `id, first_name, last_name, age, designation, phone_number,
	joined_on, address, date_of_birth, created_at, updated_at`

const selectAllEmployeesSQL = `SELECT ` + employeeColumns + ` FROM employee ORDER BY id`

const selectEmployeeByIDSQL = `SELECT ` + employeeColumns + ` FROM employee WHERE id = $1`

const insertEmployeeSQL = `
INSERT INTO employee (
    first_name, last_name, age, designation, phone_number,
    joined_on, address, date_of_birth, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + employeeColumns

const upsertEmployeeSQL = `
INSERT INTO employee (
    id, first_name, last_name, age, designation, phone_number,
    joined_on, address, date_of_birth, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    age = EXCLUDED.age,
    designation = EXCLUDED.designation,
    phone_number = EXCLUDED.phone_number,
    joined_on = EXCLUDED.joined_on,
    address = EXCLUDED.address,
    date_of_birth = EXCLUDED.date_of_birth,
    created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at
RETURNING ` + employeeColumns

const deleteEmployeeByIDSQL = `DELETE FROM employee WHERE id = $1`
