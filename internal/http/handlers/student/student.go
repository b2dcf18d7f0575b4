// Package student contains all HTTP handlers related to the Student resource.
//
// HANDLER PATTERN USED HERE: THE CLOSURE / FACTORY PATTERN
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like the service.
// A factory function accepts the dependency and returns a function with
// the exact signature the router needs:
//
//	router.HandleFunc("POST /api/students", student.New(svc))
//	//                                              ^^^^^^^^
//	//                         New(svc) is called ONCE at startup.
//	//                         The returned func runs on EVERY request.
package student

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	studentsvc "github.com/aanand-mishra/students-service/internal/service/student"
	"github.com/aanand-mishra/students-service/internal/types"
	"github.com/aanand-mishra/students-service/internal/utils/response"
)

// Service is the part of the student service the handlers call.
// *studentsvc.Service satisfies it.
type Service interface {
	ListAll(ctx context.Context) ([]types.Student, error)
	FindByID(ctx context.Context, id int64) (types.Student, bool, error)
	Add(ctx context.Context, s types.Student) (types.Student, error)
	Delete(ctx context.Context, id int64) error
}

// validate is shared: a *validator.Validate caches struct metadata and
// is safe for concurrent use.
var validate = validator.New()

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/students
// Creates a new student from the JSON request body.
//
// Request body (JSON):
//
//	{ "name": "Arno", "email": "arno@student.com", "gender": "MALE" }
//
// Success response (201 Created), the stored student:
//
//	{ "id": 1, "name": "Arno", "email": "arno@student.com", "gender": "MALE" }
//
// Error responses:
//
//	400 Bad Request  empty body, malformed JSON, failed validation, or email taken
//	500 Internal     database error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		// ── Step 1: Decode JSON body into a Student struct ────────────
		var student types.Student
		err := json.NewDecoder(r.Body).Decode(&student)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// ── Step 2: Validate the decoded struct ───────────────────────
		if err := validate.Struct(student); err != nil {
			var validateErrs validator.ValidationErrors
			if errors.As(err, &validateErrs) {
				response.WriteJSON(w, http.StatusBadRequest,
					response.ValidationError(validateErrs))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// The store assigns ids; whatever the client sent is dropped.
		student.ID = 0

		// ── Step 3: Hand off to the service (uniqueness + persist) ────
		saved, err := svc.Add(r.Context(), student)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		slog.Info("student created", slog.Int64("id", saved.ID))
		response.WriteJSON(w, http.StatusCreated, saved)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/students/{id}
//
// Error responses:
//
//	400 Bad Request  id is not a valid integer
//	404 Not Found    no student with that id
//	500 Internal     database error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		slog.Info("getting a student", slog.Int64("id", id))

		student, found, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !found {
			response.WriteJSON(w, http.StatusNotFound,
				response.GeneralError(&studentsvc.NotFoundError{ID: id}))
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// GetList handles GET /api/students and returns a JSON array of all
// students. An empty store yields [] rather than null.
func GetList(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := svc.ListAll(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if students == nil {
			students = []types.Student{}
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/students/{id}
// Permanently removes a student record.
//
// Success response (200 OK):
//
//	{ "status": "deleted" }
//
// Error responses:
//
//	400 Bad Request  invalid id
//	404 Not Found    no student with that id
//	500 Internal     database error
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting a student", slog.Int64("id", id))

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		slog.Info("student deleted", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, response.OK(response.StatusDeleted))
	}
}

// parseID reads the {id} path segment. On failure it writes the 400
// response itself and returns ok == false.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be an integer")))
		return 0, false
	}
	return id, true
}

// writeServiceError maps service errors onto status codes: the two
// domain errors are the caller's fault, everything else is ours.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, studentsvc.ErrDuplicateEmail):
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
	case errors.Is(err, studentsvc.ErrNotFound):
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
	default:
		slog.Error("student service failed", slog.String("error", err.Error()))
		response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
	}
}
