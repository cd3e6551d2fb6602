// Package student contains the HTTP handlers for the Student resource.
//
// Each exported function is a factory: it receives the storage once at
// startup and returns the http.HandlerFunc that serves every request.
//
//	router.HandleFunc("POST /api/students", student.New(storage))
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-directory/internal/storage"
	"github.com/aanand-mishra/student-directory/internal/types"
	"github.com/aanand-mishra/student-directory/internal/utils/response"
)

var validate = validator.New()

// Register wires every student route plus the health check onto router.
//
//	POST   /api/students        create a student
//	GET    /api/students        list all students
//	GET    /api/students/{id}   get one student
//	PUT    /api/students/{id}   update name and email
//	DELETE /api/students/{id}   delete a student
//	GET    /healthz             liveness probe
func Register(router *http.ServeMux, s storage.Storage) {
	router.HandleFunc("POST /api/students", New(s))
	router.HandleFunc("GET /api/students", GetList(s))
	router.HandleFunc("GET /api/students/{id}", GetByID(s))
	router.HandleFunc("PUT /api/students/{id}", Update(s))
	router.HandleFunc("DELETE /api/students/{id}", Delete(s))
	router.HandleFunc("GET /healthz", Health())
}

// New handles POST /api/students.
//
// Request body:
//
//	{ "name": "Rakesh", "email": "rakesh@test.com" }
//
// Responds 201 with { "id": 3 }. An "id" in the body is only checked for
// collisions (409) and never becomes the stored id.
func New(s storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		student, ok := decodeStudent(w, r)
		if !ok {
			return
		}

		lastID, err := s.CreateStudent(student)
		if err != nil {
			fail(w, "error creating student", err)
			return
		}

		slog.Info("student created", slog.Int64("id", lastID))
		response.WriteJSON(w, http.StatusCreated, map[string]int64{"id": lastID})
	}
}

// GetByID handles GET /api/students/{id}. Unknown ids are a 404.
func GetByID(s storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("getting a student", slog.Int64("id", id))

		student, err := s.GetStudentByID(id)
		if err != nil {
			fail(w, "error getting student", err, slog.Int64("id", id))
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// GetList handles GET /api/students. The body is [] when there are no
// students.
func GetList(s storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := s.GetStudents()
		if err != nil {
			fail(w, "error getting students", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// Update handles PUT /api/students/{id}. Only name and email change; the
// id in the path wins over any id in the body.
func Update(s storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("updating a student", slog.Int64("id", id))

		student, ok := decodeStudent(w, r)
		if !ok {
			return
		}

		updated, err := s.UpdateStudentByID(id, student)
		if err != nil {
			fail(w, "error updating student", err, slog.Int64("id", id))
			return
		}

		slog.Info("student updated", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /api/students/{id}.
func Delete(s storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting a student", slog.Int64("id", id))

		if err := s.DeleteStudentByID(id); err != nil {
			fail(w, "error deleting student", err, slog.Int64("id", id))
			return
		}

		slog.Info("student deleted", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// Health handles GET /healthz.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
	}
}

// pathID parses {id}. It writes a 400 and returns false on bad input.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be an integer")))
		return 0, false
	}
	return id, true
}

// decodeStudent reads and validates the JSON body. It writes a 400 and
// returns false on bad input.
func decodeStudent(w http.ResponseWriter, r *http.Request) (types.Student, bool) {
	var student types.Student

	err := json.NewDecoder(r.Body).Decode(&student)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return types.Student{}, false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return types.Student{}, false
	}

	if err := validate.Struct(student); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(validateErrs))
			return types.Student{}, false
		}
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return types.Student{}, false
	}

	return student, true
}

func fail(w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", err.Error()))
	if response.StatusCode(err) == http.StatusInternalServerError {
		slog.Error(msg, attrs...)
	} else {
		slog.Warn(msg, attrs...)
	}
	response.WriteError(w, err)
}
