package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog_api/internal/models"
	"catalog_api/internal/service"
)

type StudentHandler struct {
	studentService *service.StudentService
	log            *slog.Logger
}

func NewStudentHandler(studentService *service.StudentService, log *slog.Logger) *StudentHandler {
	return &StudentHandler{studentService: studentService, log: log}
}

type CreateStudentInput struct {
	Name    Field `form:"NAME" json:"NAME" binding:"required"`
	Title   Field `form:"TITLE" json:"TITLE" binding:"required"`
	Class   Field `form:"CLASS" json:"CLASS" binding:"required"`
	Section Field `form:"SECTION" json:"SECTION" binding:"required"`
	RollID  Field `form:"ROLLID" json:"ROLLID" binding:"required"`
}

// ListStudents
//
//	@Description	Returns details of all students in database
//	@Produce		json
//	@Success		200	{array}		models.Student	"Returns details of students"
//	@Failure		500	{string}	string			"There is an internal server error"
//	@Router			/students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.ListStudents(c.Request.Context())
	if err != nil {
		writeStoreError(c, h.log, "the query to get the students information did not work", err)
		return
	}

	writeRows(c, h.log, students)
}

// CreateStudent
//
//	@Description	Creates a new student
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			student	body		CreateStudentInput	true	"Student to create"
//	@Success		201		{object}	models.Student		"New student was successfully created"
//	@Failure		400		{string}	string				"Missing required field(s)"
//	@Failure		500		{string}	string				"There is an internal server error"
//	@Router			/students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var input CreateStudentInput
	if !bindInput(c, &input) {
		return
	}

	student := models.Student{
		Name:    string(input.Name),
		Title:   string(input.Title),
		Class:   string(input.Class),
		Section: string(input.Section),
		RollID:  string(input.RollID),
	}
	if err := h.studentService.CreateStudent(c.Request.Context(), &student); err != nil {
		writeStoreError(c, h.log, "failed to create student", err)
		return
	}

	c.JSON(http.StatusCreated, student)
}
