package service_test

import (
	"testing"
	"time"

	"github.com/Houeta/employee-service/internal/models"
	"github.com/Houeta/employee-service/internal/service"
	"pgregory.net/rapid"
)

func employeeGenerator() *rapid.Generator[models.Employee] {
	return rapid.Custom(func(t *rapid.T) models.Employee {
		return models.Employee{
			FirstName:   rapid.StringMatching(`[A-Z][a-z]{0,11}`).Draw(t, "firstName"),
			LastName:    rapid.String().Draw(t, "lastName"),
			Age:         rapid.IntRange(0, 120).Draw(t, "age"),
			Designation: rapid.SampledFrom([]string{"", "Software Engineer", "Designer", "QA"}).Draw(t, "designation"),
			PhoneNumber: rapid.StringMatching(`[0-9]{0,12}`).Draw(t, "phoneNumber"),
			Address:     rapid.String().Draw(t, "address"),
			JoinedOn: models.NewDate(
				rapid.IntRange(2000, 2030).Draw(t, "joinedYear"), time.Month(rapid.IntRange(1, 12).Draw(t, "joinedMonth")), 1,
			),
		}
	})
}

func TestSaveEmployee_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := employeeGenerator().Draw(rt, "employee")
		svc := service.NewEmployeeService(discardLogger, newMemoryRepository())

		saved, err := svc.SaveEmployee(t.Context(), input)
		if err != nil {
			rt.Fatalf("save failed: %v", err)
		}

		if saved.ID == 0 {
			rt.Fatalf("expected an assigned id")
		}
		if !saved.CreatedAt.Equal(saved.UpdatedAt.Time) {
			rt.Fatalf("createdAt %v != updatedAt %v", saved.CreatedAt, saved.UpdatedAt)
		}

		expected := input
		expected.ID = saved.ID
		expected.CreatedAt = saved.CreatedAt
		expected.UpdatedAt = saved.UpdatedAt
		if expected != saved {
			rt.Fatalf("saved %+v differs from input %+v", saved, input)
		}

		found, err := svc.GetEmployeeByID(t.Context(), saved.ID)
		if err != nil || found != saved {
			rt.Fatalf("read back %+v, %v; want %+v", found, err, saved)
		}
	})
}

func TestUpdateEmployee_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		step := time.Duration(rapid.Int64Range(0, int64(time.Hour)).Draw(rt, "step"))
		svc := service.NewEmployeeService(
			discardLogger, newMemoryRepository(), service.WithClock(fixedClock(start, step)),
		)

		created, err := svc.SaveEmployee(t.Context(), employeeGenerator().Draw(rt, "original"))
		if err != nil {
			rt.Fatalf("save failed: %v", err)
		}

		previous := created
		updates := rapid.IntRange(1, 5).Draw(rt, "updates")
		for range updates {
			change := employeeGenerator().Draw(rt, "change")
			change.ID = created.ID

			updated, updateErr := svc.UpdateEmployee(t.Context(), change)
			if updateErr != nil {
				rt.Fatalf("update failed: %v", updateErr)
			}
			if updated.CreatedAt != created.CreatedAt {
				rt.Fatalf("createdAt changed from %v to %v", created.CreatedAt, updated.CreatedAt)
			}
			if updated.UpdatedAt.Before(previous.UpdatedAt.Time) {
				rt.Fatalf("updatedAt went backwards: %v < %v", updated.UpdatedAt, previous.UpdatedAt)
			}
			previous = updated
		}

		all, err := svc.GetAllEmployees(t.Context())
		if err != nil || len(all) != 1 {
			rt.Fatalf("expected exactly one stored employee, got %d (%v)", len(all), err)
		}
	})
}
