package site

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Zachkp/portfolio/internal/view"
)

type viewQuery struct {
	Min *int `form:"min"`
}

// Only the name is required: the acknowledgment echoes it.
type contactForm struct {
	FullName string `form:"fullName" binding:"required,max=200"`
	Email    string `form:"email" binding:"omitempty,email"`
	Message  string `form:"message" binding:"max=5000"`
}

type contactError struct {
	Error    string
	Problems []string
}

var contactFieldLabels = map[string]string{
	"FullName": "Name",
	"Email":    "Email",
	"Message":  "Message",
}

// Full page; the section comes from the query string.
func (s *Server) handleIndex(c *gin.Context) {
	section, ok := view.ParseSection(c.Query("section"))
	if !ok {
		section = view.SectionAbout
	}
	c.HTML(http.StatusOK, "index.html", s.page(s.stateFromQuery(c, section)))
}

// HTMX fragment for one section.
func (s *Server) handleSection(c *gin.Context) {
	section, ok := view.ParseSection(c.Param("name"))
	if !ok {
		c.String(http.StatusNotFound, "unknown section %q", c.Param("name"))
		return
	}
	c.HTML(http.StatusOK, "section.html", s.page(s.stateFromQuery(c, section)))
}

// Contact submissions are echoed back, never delivered or stored.
func (s *Server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		problem := &contactError{
			Error:    "Please check the form and try again.",
			Problems: describeContactErrors(err),
		}
		if c.GetHeader("HX-Request") == "true" {
			c.HTML(http.StatusOK, "contact-error.html", problem)
			return
		}
		data := s.page(view.NewState(view.SectionContact))
		data.ContactError = problem
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	st := view.NewState(view.SectionContact).WithContact(view.ContactSubmission{
		Name:    form.FullName,
		Email:   form.Email,
		Message: form.Message,
	})
	data := s.page(st)

	if c.GetHeader("HX-Request") == "true" {
		c.HTML(http.StatusOK, "contact-success.html", data.Contact)
		return
	}
	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) stateFromQuery(c *gin.Context, section view.Section) view.State {
	var q viewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log.Printf("Ignoring malformed view query %q: %v", c.Request.URL.RawQuery, err)
	}

	st := view.NewState(section).WithMinLevel(s.defaultMin)
	if q.Min != nil {
		st = st.WithMinLevel(*q.Min)
	}
	if tech := c.Query("tech"); tech != "" {
		st = st.WithTechnology(tech)
	}
	return st
}

func describeContactErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label := contactFieldLabels[fe.Field()]
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required.", label))
		case "email":
			problems = append(problems, fmt.Sprintf("%s must be a valid email address.", label))
		case "max":
			problems = append(problems, fmt.Sprintf("%s is too long.", label))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid.", label))
		}
	}
	return problems
}
